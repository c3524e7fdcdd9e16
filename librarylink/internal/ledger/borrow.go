package ledger

import (
	"slices"
	"time"

	"github.com/Astemirdum/library-link/librarylink/internal/errs"
	"github.com/Astemirdum/library-link/librarylink/internal/model"
)

// BorrowBook adds book to the borrowed list and grows the savings total by
// its price, returning the new total. ISBNs are compared exactly here, not
// normalized.
func BorrowBook(st model.State, book model.BookRecord, now time.Time) (model.State, float64, error) {
	if book.ISBN == "" {
		return st, st.TotalSavings, errs.ErrEmptyISBN
	}
	if book.Price < 0 {
		return st, st.TotalSavings, errs.ErrNegativePrice
	}
	if IsBorrowed(st, book.ISBN) {
		return st, st.TotalSavings, errs.ErrAlreadyBorrowed
	}

	next := st.Clone()
	next.BorrowedBooks = append(next.BorrowedBooks, model.BorrowedBook{
		ISBN:         book.ISBN,
		Title:        book.Title,
		Author:       book.Author,
		Price:        book.Price,
		BorrowedDate: now,
	})
	next.TotalSavings += book.Price
	return next, next.TotalSavings, nil
}

func IsBorrowed(st model.State, isbn string) bool {
	return slices.ContainsFunc(st.BorrowedBooks, func(b model.BorrowedBook) bool {
		return b.ISBN == isbn
	})
}

func GetBorrowedBooks(st model.State) []model.BorrowedBook {
	return append([]model.BorrowedBook{}, st.BorrowedBooks...)
}

func GetSavings(st model.State) float64 {
	return st.TotalSavings
}
