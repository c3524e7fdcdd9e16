package handler

import (
	"context"

	"github.com/Astemirdum/library-link/librarylink/internal/model"
	"github.com/Astemirdum/library-link/librarylink/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type LinkService interface {
	CheckBook(ctx context.Context, id model.BookIdentity) (model.CatalogBook, bool, error)
	BorrowBook(ctx context.Context, user string, book model.BookRecord) (float64, error)
	GetBorrowedBooks(ctx context.Context) ([]model.BorrowedBook, error)
	GetSavings(ctx context.Context) (float64, error)

	AddRequest(ctx context.Context, user string, book model.BookRecord) (int, error)
	CheckUserRequest(ctx context.Context, user, identifier string) (bool, error)
	GetRequestCount(ctx context.Context, identifier string) (int, error)
	GetRequests(ctx context.Context) ([]model.RequestRecord, error)

	SwitchPersona(ctx context.Context, user string, persona model.Persona) error
	CurrentPersona(ctx context.Context) (model.Persona, error)
	ProfessorProfile() model.ProfessorProfile

	AddToCourseReserve(ctx context.Context, courseCode string, book model.BookRecord, classSize int) error
	RemoveFromCourseReserve(ctx context.Context, courseCode, isbn string) error
	GetCourseReserves(ctx context.Context, courseCode string) ([]model.CourseReserveItem, error)
	AllCourseReserves(ctx context.Context) (model.CourseReserves, error)
	CheckBookInCourseReserves(ctx context.Context, isbn string) (model.CourseReserveCheck, error)
	RequestBookForCourse(ctx context.Context, courseCode string, book model.BookRecord, classSize int) (int, error)

	SetCurrentBook(ctx context.Context, book model.BookIdentity) error
	GetCurrentBook(ctx context.Context) (model.BookIdentity, bool, error)
}

var _ LinkService = (*service.Service)(nil)
