package model

import (
	"slices"

	"github.com/pkg/errors"
)

// StateKey names one persisted value.
type StateKey string

const (
	KeyBorrowedBooks  StateKey = "borrowedBooks"
	KeyBookRequests   StateKey = "bookRequests"
	KeyTotalSavings   StateKey = "totalSavings"
	KeyCurrentPersona StateKey = "currentPersona"
	KeyCourseReserves StateKey = "courseReserves"
	KeyUserRequests   StateKey = "userRequests"
	KeyCurrentBook    StateKey = "currentBook"
)

var AllKeys = []StateKey{
	KeyBorrowedBooks,
	KeyBookRequests,
	KeyTotalSavings,
	KeyCurrentPersona,
	KeyCourseReserves,
	KeyUserRequests,
	KeyCurrentBook,
}

// Items holds raw JSON values by key, the shape the repository stores.
type Items map[StateKey][]byte

// State is everything the ledgers read and write. Absent keys decode to
// zero values.
type State struct {
	BorrowedBooks  []BorrowedBook
	BookRequests   BookRequests
	TotalSavings   float64
	CurrentPersona Persona
	CourseReserves CourseReserves
	UserRequests   UserRequests
	CurrentBook    *BookIdentity
}

// Clone returns a deep copy so that ledger operations never alias the
// caller's state.
func (s State) Clone() State {
	next := s
	next.BorrowedBooks = slices.Clone(s.BorrowedBooks)
	next.BookRequests = s.BookRequests.Clone(RequestEntry.clone)
	next.CourseReserves = s.CourseReserves.Clone(slices.Clone[[]CourseReserveItem])
	if s.UserRequests != nil {
		next.UserRequests = make(UserRequests, len(s.UserRequests))
		for user, keys := range s.UserRequests {
			next.UserRequests[user] = slices.Clone(keys)
		}
	}
	if s.CurrentBook != nil {
		book := *s.CurrentBook
		next.CurrentBook = &book
	}
	return next
}

func (s *State) field(key StateKey) (any, error) {
	switch key {
	case KeyBorrowedBooks:
		return &s.BorrowedBooks, nil
	case KeyBookRequests:
		return &s.BookRequests, nil
	case KeyTotalSavings:
		return &s.TotalSavings, nil
	case KeyCurrentPersona:
		return &s.CurrentPersona, nil
	case KeyCourseReserves:
		return &s.CourseReserves, nil
	case KeyUserRequests:
		return &s.UserRequests, nil
	case KeyCurrentBook:
		return &s.CurrentBook, nil
	}
	return nil, errors.Errorf("unknown state key %q", key)
}

// DecodeState builds a State from stored items; keys missing from items
// keep their zero value.
func DecodeState(items Items) (State, error) {
	var s State
	for key, raw := range items {
		dst, err := s.field(key)
		if err != nil {
			return State{}, err
		}
		if err := json.Unmarshal(raw, dst); err != nil {
			return State{}, errors.Wrapf(err, "decode %s", key)
		}
	}
	return s, nil
}

// Encode serializes the given keys of s.
func (s State) Encode(keys ...StateKey) (Items, error) {
	items := make(Items, len(keys))
	for _, key := range keys {
		src, err := s.field(key)
		if err != nil {
			return nil, err
		}
		raw, err := json.Marshal(src)
		if err != nil {
			return nil, errors.Wrapf(err, "encode %s", key)
		}
		items[key] = raw
	}
	return items, nil
}
