package ledger

import (
	"slices"
	"time"

	"github.com/Astemirdum/library-link/librarylink/internal/errs"
	"github.com/Astemirdum/library-link/librarylink/internal/model"
)

// AddToCourseReserve puts book on reserve for courseCode. A course holds a
// given ISBN at most once, compared after normalization.
func AddToCourseReserve(
	st model.State,
	courseCode string,
	book model.BookRecord,
	classSize int,
	addedBy string,
	now time.Time,
) (model.State, error) {
	if book.ISBN == "" {
		return st, errs.ErrEmptyISBN
	}
	if classSize < 1 {
		return st, errs.ErrClassSize
	}
	norm := Normalize(book.ISBN)
	items, _ := st.CourseReserves.Get(courseCode)
	if slices.ContainsFunc(items, func(item model.CourseReserveItem) bool {
		return Normalize(item.Book.ISBN) == norm
	}) {
		return st, errs.ErrDuplicateInCourse
	}

	next := st.Clone()
	items, _ = next.CourseReserves.Get(courseCode)
	next.CourseReserves.Set(courseCode, append(items, model.CourseReserveItem{
		Book:      book,
		ClassSize: classSize,
		AddedDate: now,
		AddedBy:   addedBy,
	}))
	return next, nil
}

// RemoveFromCourseReserve takes the book with the given ISBN off the
// course's reserve list. The course stays registered even when its list
// becomes empty.
func RemoveFromCourseReserve(st model.State, courseCode, isbn string) (model.State, error) {
	items, ok := st.CourseReserves.Get(courseCode)
	if !ok {
		return st, errs.ErrCourseNotFound
	}
	norm := Normalize(isbn)
	kept := make([]model.CourseReserveItem, 0, len(items))
	for _, item := range items {
		if Normalize(item.Book.ISBN) != norm {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(items) {
		return st, errs.ErrBookNotInCourse
	}

	next := st.Clone()
	next.CourseReserves.Set(courseCode, kept)
	return next, nil
}

// GetCourseReserves returns the reserve list of one course, empty when the
// course is unknown.
func GetCourseReserves(st model.State, courseCode string) []model.CourseReserveItem {
	items, _ := st.CourseReserves.Get(courseCode)
	return append([]model.CourseReserveItem{}, items...)
}

// AllCourseReserves returns every course's reserve list.
func AllCourseReserves(st model.State) model.CourseReserves {
	return st.Clone().CourseReserves
}

// CheckBookInCourseReserves lists every course holding isbn. A book may be
// on reserve for several courses at once.
func CheckBookInCourseReserves(st model.State, isbn string) model.CourseReserveCheck {
	check := model.CourseReserveCheck{Courses: []model.CourseMembership{}}
	if isbn == "" {
		return check
	}
	norm := Normalize(isbn)
	st.CourseReserves.Range(func(courseCode string, items []model.CourseReserveItem) bool {
		for _, item := range items {
			if Normalize(item.Book.ISBN) == norm {
				check.Courses = append(check.Courses, model.CourseMembership{
					CourseCode: courseCode,
					ClassSize:  item.ClassSize,
					AddedDate:  item.AddedDate,
				})
				break
			}
		}
		return true
	})
	check.InCourseReserve = len(check.Courses) > 0
	return check
}
