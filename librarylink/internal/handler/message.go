package handler

import (
	"github.com/Astemirdum/library-link/librarylink/internal/model"
)

const (
	ActionCheckBook                 = "checkBook"
	ActionBorrowBook                = "borrowBook"
	ActionAddRequest                = "addRequest"
	ActionCheckUserRequest          = "checkUserRequest"
	ActionGetRequestCount           = "getRequestCount"
	ActionGetSavings                = "getSavings"
	ActionSwitchPersona             = "switchPersona"
	ActionGetCurrentPersona         = "getCurrentPersona"
	ActionAddToCourseReserve        = "addToCourseReserve"
	ActionRemoveFromCourseReserve   = "removeFromCourseReserve"
	ActionGetCourseReserves         = "getCourseReserves"
	ActionCheckBookInCourseReserves = "checkBookInCourseReserves"
	ActionRequestBookForCourse      = "requestBookForCourse"
	ActionGetBorrowedBooks          = "getBorrowedBooks"
	ActionGetRequests               = "getRequests"
	ActionGetProfessorProfile       = "getProfessorProfile"
	ActionSetCurrentBook            = "setCurrentBook"
	ActionGetCurrentBook            = "getCurrentBook"
)

// Message is the envelope every action arrives in. Only the fields the
// action reads need to be set.
type Message struct {
	Action string `json:"action" validate:"required"`
	// UserName is read from Kafka envelopes only; HTTP callers use the header.
	UserName   string              `json:"username,omitempty"`
	BookInfo   *model.BookIdentity `json:"bookInfo,omitempty"`
	Book       *model.BookRecord   `json:"book,omitempty"`
	ISBN       string              `json:"isbn,omitempty"`
	Title      string              `json:"title,omitempty"`
	Persona    model.Persona       `json:"persona,omitempty"`
	CourseCode string              `json:"courseCode,omitempty"`
	ClassSize  int                 `json:"classSize,omitempty"`
}

// identifier is the ISBN when present, the title otherwise.
func (m Message) identifier() string {
	return model.BookIdentity{ISBN: m.ISBN, Title: m.Title}.Key()
}

// Status is the reply of a write, and the whole reply when it was refused.
type Status struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

type CheckBookReply struct {
	Found    bool               `json:"found"`
	BookData *model.CatalogBook `json:"bookData,omitempty"`
	Error    string             `json:"error,omitempty"`
}

type SavingsReply struct {
	Status
	TotalSavings float64 `json:"totalSavings"`
}

type RequestCountReply struct {
	Status
	RequestCount int `json:"requestCount"`
}

type CheckUserRequestReply struct {
	HasRequested bool `json:"hasRequested"`
}

type GetRequestCountReply struct {
	RequestCount int `json:"requestCount"`
}

type GetSavingsReply struct {
	TotalSavings float64 `json:"totalSavings"`
}

type PersonaReply struct {
	Success bool          `json:"success,omitempty"`
	Persona model.Persona `json:"persona"`
}

type CourseReply struct {
	Status
	CourseCode string `json:"courseCode"`
}

// ReservesReply carries one course's list, or every course when no code
// was given.
type ReservesReply struct {
	Reserves any `json:"reserves"`
}

type BorrowedBooksReply struct {
	Books []model.BorrowedBook `json:"books"`
	Count int                  `json:"count"`
}

type RequestsReply struct {
	Requests []model.RequestRecord `json:"requests"`
}

type ProfileReply struct {
	Persona model.Persona           `json:"persona"`
	Profile *model.ProfessorProfile `json:"profile,omitempty"`
}

type CurrentBookReply struct {
	Found    bool                `json:"found"`
	BookInfo *model.BookIdentity `json:"bookInfo,omitempty"`
}
