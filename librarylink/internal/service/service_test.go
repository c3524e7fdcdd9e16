package service_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/Astemirdum/library-link/librarylink/internal/errs"
	"github.com/Astemirdum/library-link/librarylink/internal/model"
	"github.com/Astemirdum/library-link/librarylink/internal/repository"
	"github.com/Astemirdum/library-link/librarylink/internal/service"
	"github.com/Astemirdum/library-link/pkg/kafka"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var (
	now = time.Date(2025, time.October, 6, 9, 30, 0, 0, time.UTC)

	profile = model.ProfessorProfile{
		Name:       "Dr. Sarah Johnson",
		Email:      "sarah.johnson@university.edu",
		Department: "Computer Science",
		Courses:    []model.Course{{Code: "CS101", Name: "Introduction to Programming"}},
	}

	refactoring = model.BookRecord{
		ISBN:   "978-0-13-475759-9",
		Title:  "Refactoring",
		Author: "Martin Fowler",
		Price:  47.5,
	}
)

type recorder struct {
	mu     sync.Mutex
	events []kafka.Event
}

func (r *recorder) Publish(_ context.Context, ev kafka.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

func (r *recorder) Close() error { return nil }

func (r *recorder) types() []kafka.EventType {
	r.mu.Lock()
	defer r.mu.Unlock()
	var types []kafka.EventType
	for _, ev := range r.events {
		types = append(types, ev.Type)
	}
	return types
}

type catalogFunc func(ctx context.Context, id model.BookIdentity) (model.CatalogBook, bool, error)

func (f catalogFunc) Find(ctx context.Context, id model.BookIdentity) (model.CatalogBook, bool, error) {
	return f(ctx, id)
}

// failingRepo fails every write.
type failingRepo struct {
	repository.Repository
}

func (failingRepo) Set(context.Context, model.Items) error {
	return errors.New("disk full")
}

func newService(t *testing.T, repo repository.Repository) (*service.Service, *recorder) {
	t.Helper()
	rec := &recorder{}
	noCatalog := catalogFunc(func(context.Context, model.BookIdentity) (model.CatalogBook, bool, error) {
		return model.CatalogBook{}, false, nil
	})
	svc := service.NewService(repo, noCatalog, profile, zap.NewNop(),
		service.WithClock(func() time.Time { return now }),
		service.WithEventLog(rec),
	)
	require.NoError(t, svc.Init(context.Background()))
	return svc, rec
}

func TestService_InitSeedsOnce(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemory()
	svc, _ := newService(t, repo)

	count, err := svc.GetRequestCount(ctx, "978-0-201-63361-0")
	require.NoError(t, err)
	assert.Equal(t, 5, count)

	_, err = svc.BorrowBook(ctx, "alice", refactoring)
	require.NoError(t, err)

	require.NoError(t, svc.Init(ctx))
	savings, err := svc.GetSavings(ctx)
	require.NoError(t, err)
	assert.Equal(t, 47.5, savings, "Init must not reset stored keys")

	requests, err := svc.GetRequests(ctx)
	require.NoError(t, err)
	require.Len(t, requests, 3)
	assert.Equal(t, "978-0-13-235088-4", requests[0].Key)
	assert.Equal(t, now.Add(-7*24*time.Hour), requests[0].RequestedDate)
}

func TestService_AddRequest(t *testing.T) {
	ctx := context.Background()
	svc, rec := newService(t, repository.NewMemory())

	count, err := svc.AddRequest(ctx, "alice", model.BookRecord{ISBN: "9780132350884", Title: "Clean Code", Price: 45})
	require.NoError(t, err)
	assert.Equal(t, 4, count, "seeded entry matched after normalization")

	count, err = svc.AddRequest(ctx, "alice", model.BookRecord{ISBN: "978-0-13-235088-4", Title: "Clean Code"})
	require.ErrorIs(t, err, errs.ErrAlreadyRequested)
	assert.Equal(t, 4, count)

	count, err = svc.AddRequest(ctx, "bob", model.BookRecord{ISBN: "978-0-13-235088-4", Title: "Clean Code"})
	require.NoError(t, err)
	assert.Equal(t, 5, count)

	requested, err := svc.CheckUserRequest(ctx, "alice", "978-0-13-235088-4")
	require.NoError(t, err)
	assert.True(t, requested)
	requested, err = svc.CheckUserRequest(ctx, "carol", "978-0-13-235088-4")
	require.NoError(t, err)
	assert.False(t, requested)

	assert.Equal(t, []kafka.EventType{kafka.EventBookRequested, kafka.EventBookRequested}, rec.types())
}

func TestService_BorrowBook(t *testing.T) {
	ctx := context.Background()
	svc, rec := newService(t, repository.NewMemory())

	savings, err := svc.BorrowBook(ctx, "alice", refactoring)
	require.NoError(t, err)
	assert.Equal(t, 47.5, savings)

	_, err = svc.BorrowBook(ctx, "alice", refactoring)
	require.ErrorIs(t, err, errs.ErrAlreadyBorrowed)

	books, err := svc.GetBorrowedBooks(ctx)
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, now, books[0].BorrowedDate)

	require.Len(t, rec.events, 1)
	ev := rec.events[0]
	assert.Equal(t, kafka.EventBookBorrowed, ev.Type)
	assert.Equal(t, 47.5, ev.TotalSavings)
	assert.NotEmpty(t, ev.ID)
	assert.Equal(t, now, ev.Timestamp)
}

func TestService_CourseReserves(t *testing.T) {
	ctx := context.Background()
	svc, rec := newService(t, repository.NewMemory())

	require.NoError(t, svc.AddToCourseReserve(ctx, "CS101", refactoring, 30))
	require.NoError(t, svc.AddToCourseReserve(ctx, "CS201", refactoring, 25))
	err := svc.AddToCourseReserve(ctx, "CS101", model.BookRecord{ISBN: "9780134757599", Title: "Refactoring"}, 40)
	require.ErrorIs(t, err, errs.ErrDuplicateInCourse)

	items, err := svc.GetCourseReserves(ctx, "CS101")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Dr. Sarah Johnson", items[0].AddedBy)

	check, err := svc.CheckBookInCourseReserves(ctx, "9780134757599")
	require.NoError(t, err)
	assert.True(t, check.InCourseReserve)
	require.Len(t, check.Courses, 2)

	require.NoError(t, svc.RemoveFromCourseReserve(ctx, "CS101", refactoring.ISBN))
	require.ErrorIs(t, svc.RemoveFromCourseReserve(ctx, "CS101", refactoring.ISBN), errs.ErrBookNotInCourse)
	require.ErrorIs(t, svc.RemoveFromCourseReserve(ctx, "CS999", refactoring.ISBN), errs.ErrCourseNotFound)

	all, err := svc.AllCourseReserves(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"CS101", "CS201"}, all.Keys())

	assert.Equal(t, []kafka.EventType{
		kafka.EventCourseReserveAdded,
		kafka.EventCourseReserveAdded,
		kafka.EventCourseReserveRemoved,
	}, rec.types())
}

func TestService_RequestBookForCourse(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t, repository.NewMemory())

	count, err := svc.RequestBookForCourse(ctx, "CS101", model.BookRecord{ISBN: "978-0-135-95705-9"}, 30)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	_, err = svc.RequestBookForCourse(ctx, "CS101", model.BookRecord{ISBN: "9780135957059"}, 30)
	require.ErrorIs(t, err, errs.ErrAlreadyRequestedForCourse)

	count, err = svc.AddRequest(ctx, "alice", model.BookRecord{ISBN: "978-0-135-95705-9"})
	require.NoError(t, err)
	assert.Equal(t, 4, count, "course and user requests share one count")
}

func TestService_ClassSizeRequired(t *testing.T) {
	ctx := context.Background()
	svc, rec := newService(t, repository.NewMemory())

	require.ErrorIs(t, svc.AddToCourseReserve(ctx, "CS101", refactoring, 0), errs.ErrClassSize)
	_, err := svc.RequestBookForCourse(ctx, "CS101", refactoring, 0)
	require.ErrorIs(t, err, errs.ErrClassSize)

	all, err := svc.AllCourseReserves(ctx)
	require.NoError(t, err)
	assert.Zero(t, all.Len())
	count, err := svc.GetRequestCount(ctx, refactoring.ISBN)
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Empty(t, rec.types())
}

func TestService_Persona(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t, repository.NewMemory())

	persona, err := svc.CurrentPersona(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.PersonaStudent, persona)

	require.NoError(t, svc.SwitchPersona(ctx, "alice", model.PersonaProfessor))
	require.ErrorIs(t, svc.SwitchPersona(ctx, "alice", "admin"), errs.ErrInvalidPersona)

	persona, err = svc.CurrentPersona(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.PersonaProfessor, persona)
	assert.Equal(t, profile, svc.ProfessorProfile())
}

func TestService_CurrentBook(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t, repository.NewMemory())

	_, found, err := svc.GetCurrentBook(ctx)
	require.NoError(t, err)
	assert.False(t, found)

	require.ErrorIs(t, svc.SetCurrentBook(ctx, model.BookIdentity{}), errs.ErrEmptyIdentity)
	require.NoError(t, svc.SetCurrentBook(ctx, model.BookIdentity{Title: "Refactoring"}))

	book, found, err := svc.GetCurrentBook(ctx)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "Refactoring", book.Title)
}

func TestService_FailedWriteChangesNothing(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemory()
	newService(t, repo)

	before, err := repo.Get(ctx, model.AllKeys...)
	require.NoError(t, err)

	rec := &recorder{}
	svc := service.NewService(failingRepo{repo}, nil, profile, zap.NewNop(), service.WithEventLog(rec))
	_, err = svc.BorrowBook(ctx, "alice", refactoring)
	require.Error(t, err)
	_, err = svc.AddRequest(ctx, "alice", refactoring)
	require.Error(t, err)

	after, err := repo.Get(ctx, model.AllKeys...)
	require.NoError(t, err)
	assert.Equal(t, before, after)
	assert.Empty(t, rec.events, "no event for an unsaved change")
}

func TestService_CheckBook(t *testing.T) {
	ctx := context.Background()
	book := model.CatalogBook{ISBN: "978-0-13-475759-9", Title: "Refactoring", CopiesAvailable: 1}
	svc := service.NewService(repository.NewMemory(), catalogFunc(func(_ context.Context, id model.BookIdentity) (model.CatalogBook, bool, error) {
		if id.ISBN == "" {
			return model.CatalogBook{}, false, errs.ErrCatalogUnavailable
		}
		return book, true, nil
	}), profile, zap.NewNop())

	got, found, err := svc.CheckBook(ctx, model.BookIdentity{ISBN: "9780134757599"})
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, book, got)

	_, _, err = svc.CheckBook(ctx, model.BookIdentity{Title: "x"})
	require.ErrorIs(t, err, errs.ErrCatalogUnavailable)
}
