package service

import (
	"context"

	"github.com/Astemirdum/library-link/librarylink/internal/ledger"
	"github.com/Astemirdum/library-link/librarylink/internal/model"
	"github.com/Astemirdum/library-link/pkg/kafka"
)

func (s *Service) CheckBook(ctx context.Context, id model.BookIdentity) (model.CatalogBook, bool, error) {
	return s.catalog.Find(ctx, id)
}

// BorrowBook returns the savings total after the book's price was added.
func (s *Service) BorrowBook(ctx context.Context, user string, book model.BookRecord) (float64, error) {
	var savings float64
	err := s.mutate(ctx, []model.StateKey{model.KeyBorrowedBooks, model.KeyTotalSavings}, func(st model.State) (model.State, error) {
		next, total, err := ledger.BorrowBook(st, book, s.now())
		savings = total
		return next, err
	})
	if err != nil {
		return 0, err
	}
	s.publish(ctx, kafka.Event{
		Type:         kafka.EventBookBorrowed,
		UserName:     user,
		ISBN:         book.ISBN,
		Title:        book.Title,
		TotalSavings: savings,
	})
	return savings, nil
}

// AddRequest returns the book's aggregate request count. The count is also
// returned alongside errs.ErrAlreadyRequested.
func (s *Service) AddRequest(ctx context.Context, user string, book model.BookRecord) (int, error) {
	var count int
	err := s.mutate(ctx, []model.StateKey{model.KeyBookRequests, model.KeyUserRequests}, func(st model.State) (model.State, error) {
		next, n, err := ledger.AddRequest(st, book, user, s.now())
		count = n
		return next, err
	})
	if err != nil {
		return count, err
	}
	s.publish(ctx, kafka.Event{
		Type:         kafka.EventBookRequested,
		UserName:     user,
		ISBN:         book.ISBN,
		Title:        book.Title,
		RequestCount: count,
	})
	return count, nil
}

func (s *Service) CheckUserRequest(ctx context.Context, user, identifier string) (bool, error) {
	var requested bool
	err := s.view(ctx, []model.StateKey{model.KeyUserRequests}, func(st model.State) {
		requested = ledger.CheckUserRequest(st, identifier, user)
	})
	return requested, err
}

func (s *Service) GetRequestCount(ctx context.Context, identifier string) (int, error) {
	var count int
	err := s.view(ctx, []model.StateKey{model.KeyBookRequests}, func(st model.State) {
		count = ledger.GetRequestCount(st, identifier)
	})
	return count, err
}

func (s *Service) GetRequests(ctx context.Context) ([]model.RequestRecord, error) {
	var requests []model.RequestRecord
	err := s.view(ctx, []model.StateKey{model.KeyBookRequests}, func(st model.State) {
		requests = ledger.ListRequests(st)
	})
	return requests, err
}

func (s *Service) GetSavings(ctx context.Context) (float64, error) {
	var savings float64
	err := s.view(ctx, []model.StateKey{model.KeyTotalSavings}, func(st model.State) {
		savings = ledger.GetSavings(st)
	})
	return savings, err
}

func (s *Service) GetBorrowedBooks(ctx context.Context) ([]model.BorrowedBook, error) {
	var books []model.BorrowedBook
	err := s.view(ctx, []model.StateKey{model.KeyBorrowedBooks}, func(st model.State) {
		books = ledger.GetBorrowedBooks(st)
	})
	return books, err
}

func (s *Service) SetCurrentBook(ctx context.Context, book model.BookIdentity) error {
	return s.mutate(ctx, []model.StateKey{model.KeyCurrentBook}, func(st model.State) (model.State, error) {
		return ledger.SetCurrentBook(st, book)
	})
}

func (s *Service) GetCurrentBook(ctx context.Context) (model.BookIdentity, bool, error) {
	var (
		book  model.BookIdentity
		found bool
	)
	err := s.view(ctx, []model.StateKey{model.KeyCurrentBook}, func(st model.State) {
		book, found = ledger.CurrentBook(st)
	})
	return book, found, err
}
