package monkey

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	loadKey = "catalog"

	// loadTimeout bounds a shared load once it is detached from the caller.
	loadTimeout = 30 * time.Second
)

// Store loads the catalog from its Source at most once per process.
// A failed load caches nothing; the next call loads again. The load is shared
// by every concurrent caller, so it does not stop when the caller that
// started it goes away.
type Store struct {
	src     Source
	log     *zap.Logger
	metrics *Metrics
	now     func() time.Time

	group   singleflight.Group
	catalog atomic.Pointer[Catalog]
}

type StoreOption func(*Store)

func WithLogger(log *zap.Logger) StoreOption {
	return func(s *Store) { s.log = log }
}

func WithMetrics(m *Metrics) StoreOption {
	return func(s *Store) { s.metrics = m }
}

func NewStore(src Source, opts ...StoreOption) *Store {
	s := &Store{
		src: src,
		log: zap.NewNop(),
		now: time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *Store) Loaded() bool { return s.catalog.Load() != nil }

func (s *Store) EnsureLoaded(ctx context.Context) (*Catalog, error) {
	if c := s.catalog.Load(); c != nil {
		return c, nil
	}

	ch := s.group.DoChan(loadKey, func() (any, error) {
		// A caller that missed the fast path may arrive after the previous load stored.
		if c := s.catalog.Load(); c != nil {
			return c, nil
		}
		lctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), loadTimeout)
		defer cancel()

		c, err := s.load(lctx)
		if err != nil {
			return nil, err
		}
		s.catalog.Store(c)
		return c, nil
	})

	select {
	case <-ctx.Done():
		// This caller stops waiting; the load carries on for everyone else.
		return nil, fmt.Errorf("%w: %w", ErrLoadFailure, context.Cause(ctx))
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*Catalog), nil
	}
}

func (s *Store) load(ctx context.Context) (*Catalog, error) {
	start := s.now()
	records, err := s.src.LoadAll(ctx)
	elapsed := s.now().Sub(start)
	s.metrics.observeLoad(s.src.Name(), elapsed, err)

	if err != nil {
		s.log.Warn("catalog load failed",
			zap.String("source", s.src.Name()),
			zap.Duration("duration", elapsed),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %s: %w", ErrLoadFailure, s.src.Name(), err)
	}

	c := newCatalog(uuid.NewString(), s.src.Name(), s.now().UTC(), records)
	if dups := c.duplicates(); len(dups) > 0 {
		s.log.Warn("duplicate monkey names, lookups return the first",
			zap.Strings("names", dups),
		)
	}
	if bad := c.negativePopulations(); len(bad) > 0 {
		s.log.Warn("negative population, kept as loaded",
			zap.Strings("names", bad),
		)
	}

	s.log.Info("catalog loaded",
		zap.String("source", c.Source),
		zap.String("load_id", c.LoadID),
		zap.Int("count", c.Len()),
		zap.Duration("duration", elapsed),
	)
	return c, nil
}
