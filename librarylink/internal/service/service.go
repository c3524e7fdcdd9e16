package service

import (
	"bytes"
	"context"
	"sync"
	"time"

	"github.com/Astemirdum/library-link/librarylink/internal/ledger"
	"github.com/Astemirdum/library-link/librarylink/internal/model"
	"github.com/Astemirdum/library-link/librarylink/internal/repository"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Catalog interface {
	Find(ctx context.Context, id model.BookIdentity) (model.CatalogBook, bool, error)
}

// Service runs every message as load, compute, save. Messages are handled
// one at a time, so operations never interleave within a process.
type Service struct {
	log     *zap.Logger
	repo    repository.Repository
	catalog Catalog
	events  EventLog
	profile model.ProfessorProfile
	now     func() time.Time

	mu sync.Mutex
}

type Option func(s *Service)

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func WithEventLog(events EventLog) Option {
	return func(s *Service) {
		s.events = events
	}
}

func NewService(
	repo repository.Repository,
	catalog Catalog,
	profile model.ProfessorProfile,
	log *zap.Logger,
	opts ...Option,
) *Service {
	s := &Service{
		log:     log.Named("service"),
		repo:    repo,
		catalog: catalog,
		events:  NopEventLog{},
		profile: profile,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Init writes first-run values for every seeded key that is not stored yet.
func (s *Service) Init(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.repo.Get(ctx, ledger.SeededKeys...)
	if err != nil {
		return errors.Wrap(err, "load state")
	}
	var missing []model.StateKey
	for _, k := range ledger.SeededKeys {
		if _, ok := items[k]; !ok {
			missing = append(missing, k)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	st, err := model.DecodeState(items)
	if err != nil {
		return err
	}
	seeded, err := ledger.Initialize(st, missing, s.now()).Encode(missing...)
	if err != nil {
		return err
	}
	s.log.Info("seeding state", zap.Any("keys", missing))
	return s.repo.Set(ctx, seeded)
}

func (s *Service) load(ctx context.Context, keys []model.StateKey) (model.State, model.Items, error) {
	items, err := s.repo.Get(ctx, keys...)
	if err != nil {
		return model.State{}, nil, errors.Wrap(err, "load state")
	}
	st, err := model.DecodeState(items)
	if err != nil {
		return model.State{}, nil, err
	}
	return st, items, nil
}

// view hands the stored values of keys to fn.
func (s *Service) view(ctx context.Context, keys []model.StateKey, fn func(st model.State)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, _, err := s.load(ctx, keys)
	if err != nil {
		return err
	}
	fn(st)
	return nil
}

// mutate applies fn to the stored values of keys and saves the ones fn
// changed in a single write. Nothing is saved when fn fails.
func (s *Service) mutate(ctx context.Context, keys []model.StateKey, fn func(st model.State) (model.State, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, before, err := s.load(ctx, keys)
	if err != nil {
		return err
	}
	next, err := fn(st)
	if err != nil {
		return err
	}
	after, err := next.Encode(keys...)
	if err != nil {
		return err
	}
	for k, v := range after {
		if old, ok := before[k]; ok && bytes.Equal(old, v) {
			delete(after, k)
		}
	}
	if err := s.repo.Set(ctx, after); err != nil {
		return errors.Wrap(err, "save state")
	}
	return nil
}
