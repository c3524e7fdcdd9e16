package ledger

import (
	"time"

	"github.com/Astemirdum/library-link/librarylink/internal/model"
)

const day = 24 * time.Hour

// SeededKeys are the keys Initialize knows first-run values for.
var SeededKeys = []model.StateKey{
	model.KeyBorrowedBooks,
	model.KeyBookRequests,
	model.KeyTotalSavings,
	model.KeyCurrentPersona,
	model.KeyCourseReserves,
	model.KeyUserRequests,
}

// DefaultRequests are the pending requests a fresh install starts with.
func DefaultRequests(now time.Time) model.BookRequests {
	var requests model.BookRequests
	requests.Set("978-0-13-235088-4", model.RequestEntry{
		Book: model.BookRecord{
			ISBN:   "978-0-13-235088-4",
			Title:  "Clean Code: A Handbook of Agile Software Craftsmanship",
			Author: "Robert C. Martin",
			Price:  45.00,
		},
		RequestCount:  3,
		RequestedDate: now.Add(-7 * day),
	})
	requests.Set("978-0-201-63361-0", model.RequestEntry{
		Book: model.BookRecord{
			ISBN:   "978-0-201-63361-0",
			Title:  "Design Patterns: Elements of Reusable Object-Oriented Software",
			Author: "Erich Gamma, Richard Helm, Ralph Johnson, John Vlissides",
			Price:  55.00,
		},
		RequestCount:  5,
		RequestedDate: now.Add(-14 * day),
	})
	requests.Set("978-0-135-95705-9", model.RequestEntry{
		Book: model.BookRecord{
			ISBN:   "978-0-135-95705-9",
			Title:  "The Pragmatic Programmer",
			Author: "David Thomas, Andrew Hunt",
			Price:  50.00,
		},
		RequestCount:  2,
		RequestedDate: now.Add(-3 * day),
	})
	return requests
}

// Initialize fills the keys listed in missing with their first-run values
// and leaves every other key as it is.
func Initialize(st model.State, missing []model.StateKey, now time.Time) model.State {
	next := st.Clone()
	for _, key := range missing {
		switch key {
		case model.KeyBorrowedBooks:
			next.BorrowedBooks = []model.BorrowedBook{}
		case model.KeyBookRequests:
			next.BookRequests = DefaultRequests(now)
		case model.KeyTotalSavings:
			next.TotalSavings = 0
		case model.KeyCurrentPersona:
			next.CurrentPersona = model.PersonaStudent
		case model.KeyCourseReserves:
			next.CourseReserves = model.CourseReserves{}
		case model.KeyUserRequests:
			next.UserRequests = model.UserRequests{}
		}
	}
	return next
}
