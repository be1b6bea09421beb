package monkey_test

import (
	"context"
	"sync/atomic"
	"time"

	"MonkeyApp/internal/monkey"
)

// fakeSource counts LoadAll calls and fails while err is set.
type fakeSource struct {
	records []monkey.Species
	delay   time.Duration

	err   atomic.Pointer[error]
	calls atomic.Int32
}

func newFakeSource(names ...string) *fakeSource {
	f := &fakeSource{}
	for _, n := range names {
		f.records = append(f.records, monkey.Species{Name: n, Location: n + " land", Population: len(n)})
	}
	return f
}

func (f *fakeSource) Name() string { return "fake" }

func (f *fakeSource) failWith(err error) { f.err.Store(&err) }

func (f *fakeSource) heal() { f.err.Store(nil) }

func (f *fakeSource) LoadAll(ctx context.Context) ([]monkey.Species, error) {
	f.calls.Add(1)
	if f.delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(f.delay):
		}
	}
	if p := f.err.Load(); p != nil {
		return nil, *p
	}
	out := make([]monkey.Species, len(f.records))
	copy(out, f.records)
	return out, nil
}

func newService(src monkey.Source, opts ...monkey.ServiceOption) *monkey.Service {
	return monkey.NewService(monkey.NewStore(src), opts...)
}
