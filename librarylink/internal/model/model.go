package model

import (
	"slices"
	"time"
)

// BookIdentity is what a page observer knows about a book. At least one of
// the fields is set.
type BookIdentity struct {
	ISBN  string `json:"isbn,omitempty" yaml:"isbn"`
	Title string `json:"title,omitempty" yaml:"title"`
}

// Key is the ISBN when present, the title otherwise.
func (b BookIdentity) Key() string {
	if b.ISBN != "" {
		return b.ISBN
	}
	return b.Title
}

func (b BookIdentity) IsEmpty() bool {
	return b.ISBN == "" && b.Title == ""
}

type BookRecord struct {
	ISBN   string  `json:"isbn"`
	Title  string  `json:"title"`
	Author string  `json:"author"`
	Price  float64 `json:"price" validate:"gte=0"`
}

func (b BookRecord) Identity() BookIdentity {
	return BookIdentity{ISBN: b.ISBN, Title: b.Title}
}

// RequestKey is the key a new RequestEntry for this book is filed under.
func (b BookRecord) RequestKey() string {
	return b.Identity().Key()
}

type RequestEntry struct {
	Book           BookRecord      `json:"book"`
	RequestCount   int             `json:"requestCount"`
	RequestedDate  time.Time       `json:"requestedDate"`
	CourseRequests []CourseRequest `json:"courseRequests,omitempty"`
}

func (e RequestEntry) clone() RequestEntry {
	e.CourseRequests = slices.Clone(e.CourseRequests)
	return e
}

type CourseRequest struct {
	CourseCode    string    `json:"courseCode"`
	ClassSize     int       `json:"classSize"`
	RequestedDate time.Time `json:"requestedDate"`
	RequestedBy   string    `json:"requestedBy"`
}

// BookRequests maps request keys to entries in insertion order.
type BookRequests = Ordered[RequestEntry]

// RequestRecord is a RequestEntry together with the key it is filed under.
type RequestRecord struct {
	Key string `json:"key"`
	RequestEntry
}

// UserRequests maps a user name to the request keys that user submitted.
type UserRequests map[string][]string

type CourseReserveItem struct {
	Book      BookRecord `json:"book"`
	ClassSize int        `json:"classSize"`
	AddedDate time.Time  `json:"addedDate"`
	AddedBy   string     `json:"addedBy"`
}

// CourseReserves maps course codes to their reserve lists in insertion order.
type CourseReserves = Ordered[[]CourseReserveItem]

type CourseMembership struct {
	CourseCode string    `json:"courseCode"`
	ClassSize  int       `json:"classSize"`
	AddedDate  time.Time `json:"addedDate"`
}

type CourseReserveCheck struct {
	InCourseReserve bool               `json:"inCourseReserve"`
	Courses         []CourseMembership `json:"courses"`
}

type BorrowedBook struct {
	ISBN         string    `json:"isbn"`
	Title        string    `json:"title"`
	Author       string    `json:"author"`
	Price        float64   `json:"price"`
	BorrowedDate time.Time `json:"borrowedDate"`
}

type Persona string

const (
	PersonaStudent   Persona = "student"
	PersonaProfessor Persona = "professor"
)

func (p Persona) Valid() bool {
	return p == PersonaStudent || p == PersonaProfessor
}

// CatalogBook is a library holding from the static catalog.
type CatalogBook struct {
	ISBN            string  `json:"isbn" yaml:"isbn"`
	Title           string  `json:"title" yaml:"title"`
	Author          string  `json:"author" yaml:"author"`
	Price           float64 `json:"price" yaml:"price"`
	CopiesAvailable int     `json:"copiesAvailable" yaml:"copiesAvailable"`
	Location        string  `json:"location" yaml:"location"`
}

type Catalog struct {
	Books []CatalogBook `json:"books" yaml:"books"`
}

type Course struct {
	Code     string `json:"code" yaml:"code"`
	Name     string `json:"name" yaml:"name"`
	Semester string `json:"semester" yaml:"semester"`
	Section  string `json:"section" yaml:"section"`
}

type ProfessorProfile struct {
	Name       string   `json:"name" yaml:"name"`
	Email      string   `json:"email" yaml:"email"`
	Department string   `json:"department" yaml:"department"`
	Courses    []Course `json:"courses" yaml:"courses"`
}
