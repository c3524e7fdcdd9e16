package breaker

import (
	"sync"
	"time"

	"github.com/pkg/errors"
)

type Status uint8

const (
	Closed   Status = 1
	Open     Status = 2
	HalfOpen Status = 3
)

var ErrOpen = errors.New("circuit breaker is open")

type CircuitBreaker interface {
	Call(fn func() error) error
	Status() Status
	Reset()
}

type Config struct {
	// Window is the number of most recent calls considered.
	Window int `envconfig:"BREAKER_WINDOW" default:"20"`
	// FailureRatio in the window that opens the breaker.
	FailureRatio float64 `envconfig:"BREAKER_FAILURE_RATIO" default:"0.5"`
	// Cooldown before an open breaker lets a trial call through.
	Cooldown time.Duration `envconfig:"BREAKER_COOLDOWN" default:"10s"`
	// Recovery is the number of consecutive half-open successes needed to close.
	Recovery int `envconfig:"BREAKER_RECOVERY" default:"2"`
}

type circuitBreaker struct {
	cfg Config

	mu       sync.Mutex
	status   Status
	openedAt time.Time
	// results is a ring of the last cfg.Window outcomes, true = failed.
	results   []bool
	pos       int
	successes int
}

func New(cfg Config) CircuitBreaker {
	if cfg.Window <= 0 {
		cfg.Window = 1
	}
	return &circuitBreaker{
		cfg:     cfg,
		status:  Closed,
		results: make([]bool, cfg.Window),
	}
}

func (cb *circuitBreaker) Call(fn func() error) error {
	cb.mu.Lock()
	if cb.status == Open {
		if time.Since(cb.openedAt) <= cb.cfg.Cooldown {
			cb.mu.Unlock()
			return ErrOpen
		}
		cb.status = HalfOpen
		cb.successes = 0
	}
	cb.mu.Unlock()

	err := fn()

	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.results[cb.pos] = err != nil
	cb.pos = (cb.pos + 1) % len(cb.results)

	if cb.status == HalfOpen {
		if err != nil {
			cb.trip()
			return err
		}
		cb.successes++
		if cb.successes >= cb.cfg.Recovery {
			cb.reset()
		}
		return nil
	}

	fails := 0
	for _, failed := range cb.results {
		if failed {
			fails++
		}
	}
	if float64(fails)/float64(len(cb.results)) >= cb.cfg.FailureRatio {
		cb.trip()
	}
	return err
}

func (cb *circuitBreaker) Status() Status {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.status
}

func (cb *circuitBreaker) Reset() {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.reset()
}

func (cb *circuitBreaker) trip() {
	cb.status = Open
	cb.successes = 0
	cb.openedAt = time.Now()
}

func (cb *circuitBreaker) reset() {
	for i := range cb.results {
		cb.results[i] = false
	}
	cb.successes = 0
	cb.pos = 0
	cb.status = Closed
}
