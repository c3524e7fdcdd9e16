package ledger

import (
	"slices"
	"time"

	"github.com/Astemirdum/library-link/librarylink/internal/errs"
	"github.com/Astemirdum/library-link/librarylink/internal/model"
)

// AddRequest records that user asked the library to acquire book and
// returns the book's aggregate request count.
//
// A user may request a book once; a second request in any dash formatting
// fails with errs.ErrAlreadyRequested and reports the current count. The
// entry is matched by normalized key and created under the raw key
// (ISBN, else title) when none matches.
func AddRequest(st model.State, book model.BookRecord, user string, now time.Time) (model.State, int, error) {
	key := book.RequestKey()
	if key == "" {
		return st, 0, errs.ErrEmptyIdentity
	}
	norm := Normalize(key)

	if containsNormalized(st.UserRequests[user], norm) {
		count := 0
		if _, entry, ok := findRequest(&st.BookRequests, norm); ok {
			count = entry.RequestCount
		}
		return st, count, errs.ErrAlreadyRequested
	}

	next := st.Clone()
	count := 1
	if existingKey, entry, ok := findRequest(&next.BookRequests, norm); ok {
		entry.RequestCount++
		count = entry.RequestCount
		next.BookRequests.Set(existingKey, entry)
	} else {
		next.BookRequests.Set(key, model.RequestEntry{
			Book:          book,
			RequestCount:  1,
			RequestedDate: now,
		})
	}

	if next.UserRequests == nil {
		next.UserRequests = make(model.UserRequests)
	}
	next.UserRequests[user] = append(next.UserRequests[user], key)

	return next, count, nil
}

// RequestBookForCourse records a course-attributed request and returns the
// book's aggregate request count. Each course may request a book once.
//
// This path does not consult any user's request log, and AddRequest does
// not consult course requests: both increment the same count.
func RequestBookForCourse(
	st model.State,
	book model.BookRecord,
	courseCode string,
	classSize int,
	requestedBy string,
	now time.Time,
) (model.State, int, error) {
	key := book.RequestKey()
	if key == "" {
		return st, 0, errs.ErrEmptyIdentity
	}
	if classSize < 1 {
		return st, 0, errs.ErrClassSize
	}
	courseRequest := model.CourseRequest{
		CourseCode:    courseCode,
		ClassSize:     classSize,
		RequestedDate: now,
		RequestedBy:   requestedBy,
	}

	existingKey, entry, ok := findRequest(&st.BookRequests, Normalize(key))
	if !ok {
		next := st.Clone()
		next.BookRequests.Set(key, model.RequestEntry{
			Book:           book,
			RequestCount:   1,
			RequestedDate:  now,
			CourseRequests: []model.CourseRequest{courseRequest},
		})
		return next, 1, nil
	}

	if slices.ContainsFunc(entry.CourseRequests, func(cr model.CourseRequest) bool {
		return cr.CourseCode == courseCode
	}) {
		return st, 0, errs.ErrAlreadyRequestedForCourse
	}

	next := st.Clone()
	entry, _ = next.BookRequests.Get(existingKey)
	entry.CourseRequests = append(entry.CourseRequests, courseRequest)
	entry.RequestCount++
	next.BookRequests.Set(existingKey, entry)

	return next, entry.RequestCount, nil
}

// CheckUserRequest reports whether user has requested identifier, matching
// exactly or after normalization.
func CheckUserRequest(st model.State, identifier, user string) bool {
	if identifier == "" {
		return false
	}
	keys := st.UserRequests[user]
	if slices.Contains(keys, identifier) {
		return true
	}
	return containsNormalized(keys, Normalize(identifier))
}

// GetRequestCount returns the aggregate request count filed under
// identifier, trying the exact key before a normalized scan. Unknown books
// have a count of 0.
func GetRequestCount(st model.State, identifier string) int {
	if identifier == "" {
		return 0
	}
	if entry, ok := st.BookRequests.Get(identifier); ok && entry.RequestCount != 0 {
		return entry.RequestCount
	}
	if _, entry, ok := findRequest(&st.BookRequests, Normalize(identifier)); ok {
		return entry.RequestCount
	}
	return 0
}

// ListRequests returns every request entry in the order it was filed.
func ListRequests(st model.State) []model.RequestRecord {
	records := make([]model.RequestRecord, 0, st.BookRequests.Len())
	st.BookRequests.Range(func(key string, entry model.RequestEntry) bool {
		records = append(records, model.RequestRecord{Key: key, RequestEntry: entry})
		return true
	})
	return records
}

// findRequest returns the first entry, in insertion order, whose key
// normalizes to norm.
func findRequest(requests *model.BookRequests, norm string) (string, model.RequestEntry, bool) {
	var (
		foundKey   string
		foundEntry model.RequestEntry
		found      bool
	)
	requests.Range(func(key string, entry model.RequestEntry) bool {
		if Normalize(key) == norm {
			foundKey, foundEntry, found = key, entry, true
			return false
		}
		return true
	})
	return foundKey, foundEntry, found
}

func containsNormalized(keys []string, norm string) bool {
	return slices.ContainsFunc(keys, func(k string) bool {
		return Normalize(k) == norm
	})
}
