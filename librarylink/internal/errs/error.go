package errs

import (
	"github.com/pkg/errors"
)

var (
	ErrAlreadyRequested          = errors.New("You have already requested this book")
	ErrAlreadyRequestedForCourse = errors.New("Already requested for this course")
	ErrAlreadyBorrowed           = errors.New("Book already borrowed")
	ErrDuplicateInCourse         = errors.New("Book already in this course reserve")
	ErrCourseNotFound            = errors.New("Course not found")
	ErrBookNotInCourse           = errors.New("Book not found in course")
	ErrCatalogUnavailable        = errors.New("catalog unavailable")

	ErrEmptyIdentity  = errors.New("isbn or title is required")
	ErrEmptyISBN      = errors.New("isbn is required")
	ErrNegativePrice  = errors.New("price must not be negative")
	ErrClassSize      = errors.New("classSize must be at least 1")
	ErrInvalidPersona = errors.New("persona must be student or professor")
	ErrUnknownAction  = errors.New("unknown action")
	ErrMissingField   = errors.New("missing field")
	ErrConflict       = errors.New("concurrent update, try again")
)

// IsBusiness reports whether err is a refusal the caller can act on, as
// opposed to a storage or transport failure.
func IsBusiness(err error) bool {
	for _, target := range []error{
		ErrAlreadyRequested,
		ErrAlreadyRequestedForCourse,
		ErrAlreadyBorrowed,
		ErrDuplicateInCourse,
		ErrCourseNotFound,
		ErrBookNotInCourse,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// IsInvalid reports whether err rejects the message itself.
func IsInvalid(err error) bool {
	for _, target := range []error{
		ErrEmptyIdentity,
		ErrEmptyISBN,
		ErrNegativePrice,
		ErrClassSize,
		ErrInvalidPersona,
		ErrUnknownAction,
		ErrMissingField,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

type ValidationErrorResponse struct {
	Message string `json:"message"`
	Errors  struct {
		AdditionalProperties string `json:"additionalProperties"`
	} `json:"errors"`
}
