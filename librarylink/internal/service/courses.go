package service

import (
	"context"

	"github.com/Astemirdum/library-link/librarylink/internal/ledger"
	"github.com/Astemirdum/library-link/librarylink/internal/model"
	"github.com/Astemirdum/library-link/pkg/kafka"
)

var courseKeys = []model.StateKey{model.KeyCourseReserves}

// AddToCourseReserve files book under courseCode on behalf of the
// configured professor.
func (s *Service) AddToCourseReserve(ctx context.Context, courseCode string, book model.BookRecord, classSize int) error {
	err := s.mutate(ctx, courseKeys, func(st model.State) (model.State, error) {
		return ledger.AddToCourseReserve(st, courseCode, book, classSize, s.profile.Name, s.now())
	})
	if err != nil {
		return err
	}
	s.publish(ctx, kafka.Event{
		Type:       kafka.EventCourseReserveAdded,
		UserName:   s.profile.Name,
		ISBN:       book.ISBN,
		Title:      book.Title,
		CourseCode: courseCode,
	})
	return nil
}

func (s *Service) RemoveFromCourseReserve(ctx context.Context, courseCode, isbn string) error {
	err := s.mutate(ctx, courseKeys, func(st model.State) (model.State, error) {
		return ledger.RemoveFromCourseReserve(st, courseCode, isbn)
	})
	if err != nil {
		return err
	}
	s.publish(ctx, kafka.Event{
		Type:       kafka.EventCourseReserveRemoved,
		UserName:   s.profile.Name,
		ISBN:       isbn,
		CourseCode: courseCode,
	})
	return nil
}

func (s *Service) GetCourseReserves(ctx context.Context, courseCode string) ([]model.CourseReserveItem, error) {
	var items []model.CourseReserveItem
	err := s.view(ctx, courseKeys, func(st model.State) {
		items = ledger.GetCourseReserves(st, courseCode)
	})
	return items, err
}

func (s *Service) AllCourseReserves(ctx context.Context) (model.CourseReserves, error) {
	var reserves model.CourseReserves
	err := s.view(ctx, courseKeys, func(st model.State) {
		reserves = ledger.AllCourseReserves(st)
	})
	return reserves, err
}

func (s *Service) CheckBookInCourseReserves(ctx context.Context, isbn string) (model.CourseReserveCheck, error) {
	var check model.CourseReserveCheck
	err := s.view(ctx, courseKeys, func(st model.State) {
		check = ledger.CheckBookInCourseReserves(st, isbn)
	})
	return check, err
}

// RequestBookForCourse returns the book's aggregate request count.
func (s *Service) RequestBookForCourse(ctx context.Context, courseCode string, book model.BookRecord, classSize int) (int, error) {
	var count int
	err := s.mutate(ctx, []model.StateKey{model.KeyBookRequests}, func(st model.State) (model.State, error) {
		next, n, err := ledger.RequestBookForCourse(st, book, courseCode, classSize, s.profile.Name, s.now())
		count = n
		return next, err
	})
	if err != nil {
		return 0, err
	}
	s.publish(ctx, kafka.Event{
		Type:         kafka.EventBookRequestedForCourse,
		UserName:     s.profile.Name,
		ISBN:         book.ISBN,
		Title:        book.Title,
		CourseCode:   courseCode,
		RequestCount: count,
	})
	return count, nil
}

func (s *Service) SwitchPersona(ctx context.Context, user string, persona model.Persona) error {
	err := s.mutate(ctx, []model.StateKey{model.KeyCurrentPersona}, func(st model.State) (model.State, error) {
		return ledger.SwitchPersona(st, persona)
	})
	if err != nil {
		return err
	}
	s.publish(ctx, kafka.Event{
		Type:     kafka.EventPersonaSwitched,
		UserName: user,
		Persona:  string(persona),
	})
	return nil
}

func (s *Service) CurrentPersona(ctx context.Context) (model.Persona, error) {
	var persona model.Persona
	err := s.view(ctx, []model.StateKey{model.KeyCurrentPersona}, func(st model.State) {
		persona = ledger.CurrentPersona(st)
	})
	return persona, err
}

func (s *Service) ProfessorProfile() model.ProfessorProfile {
	return s.profile
}
