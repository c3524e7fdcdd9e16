package ledger

import (
	"strings"

	"github.com/Astemirdum/library-link/librarylink/internal/model"
)

// Normalize strips every '-' from id. Case and all other characters are kept.
func Normalize(id string) string {
	return strings.ReplaceAll(id, "-", "")
}

// SameIdentity reports whether a and b name the same book for catalog
// lookup: equal ISBNs ignoring separators, else titles that are equal or
// contain one another ignoring case and surrounding space.
func SameIdentity(a, b model.BookIdentity) bool {
	return SameISBN(a.ISBN, b.ISBN) || SameTitle(a.Title, b.Title)
}

// SameISBN compares two non-empty ISBNs by their digit-only forms.
func SameISBN(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	if a == b {
		return true
	}
	digits := isbnDigits(a)
	return digits != "" && digits == isbnDigits(b)
}

// SameTitle is the loose title match used by the catalog.
func SameTitle(a, b string) bool {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == "" || b == "" {
		return false
	}
	return a == b || strings.Contains(a, b) || strings.Contains(b, a)
}

func isbnDigits(isbn string) string {
	var sb strings.Builder
	sb.Grow(len(isbn))
	for _, r := range isbn {
		if r >= '0' && r <= '9' {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
