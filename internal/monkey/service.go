package monkey

import (
	"context"
	"math/rand/v2"
	"sync"
	"sync/atomic"
)

// Service is the read API over a Store plus the random-pick access counter.
// One Service is built at startup and shared by every caller.
type Service struct {
	store   *Store
	metrics *Metrics

	randMu sync.Mutex
	rng    *rand.Rand

	picks atomic.Int64
}

type ServiceOption func(*Service)

// WithRand makes picks draw from r instead of the global generator.
func WithRand(r *rand.Rand) ServiceOption {
	return func(s *Service) { s.rng = r }
}

func WithPickMetrics(m *Metrics) ServiceOption {
	return func(s *Service) { s.metrics = m }
}

func NewService(store *Store, opts ...ServiceOption) *Service {
	s := &Service{store: store}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *Service) Store() *Store { return s.store }

func (s *Service) List(ctx context.Context) ([]Species, error) {
	c, err := s.store.EnsureLoaded(ctx)
	if err != nil {
		return nil, err
	}
	return c.All(), nil
}

func (s *Service) FindByName(ctx context.Context, name string) (Species, error) {
	c, err := s.store.EnsureLoaded(ctx)
	if err != nil {
		return Species{}, err
	}
	m, ok := c.find(name)
	if !ok {
		return Species{}, ErrNotFound
	}
	return m, nil
}

func (s *Service) PickRandom(ctx context.Context) (Species, error) {
	c, err := s.store.EnsureLoaded(ctx)
	if err != nil {
		return Species{}, err
	}
	n := c.Len()
	if n == 0 {
		return Species{}, ErrEmptyCatalog
	}

	m := c.At(s.intN(n))
	s.picks.Add(1)
	s.metrics.observePick()
	return m, nil
}

func (s *Service) AccessCount() int64 { return s.picks.Load() }

func (s *Service) intN(n int) int {
	if s.rng == nil {
		return rand.IntN(n)
	}
	s.randMu.Lock()
	defer s.randMu.Unlock()
	return s.rng.IntN(n)
}
