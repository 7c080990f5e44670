package lookup

import (
	"context"
	"fmt"

	"github.com/screwyprof/tokenscout/pkg/clock"
)

// Option configures the Service
type Option func(*Service)

// WithClock injects a custom Clock (e.g., for testing)
func WithClock(c clock.Clock) Option {
	return func(s *Service) { s.clock = c }
}

// WithObserver sets the receiver of lookup events
func WithObserver(o Observer) Option {
	return func(s *Service) { s.observe = o }
}

// Service runs the fetch, extract, resolve pipeline for one address at a time.
// It holds no per-lookup state and is safe for concurrent use.
type Service struct {
	fetcher SourceFetcher
	clock   clock.Clock
	observe Observer
}

// NewService constructs a Service with required dependencies and options
func NewService(fetcher SourceFetcher, opts ...Option) *Service {
	s := &Service{
		fetcher: fetcher,
		clock:   clock.SystemClock{},
		observe: func(Event) {},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Lookup fetches every source for address, extracts candidates from the ones
// that answered, and returns the consensus record.
// Failing sources only shrink the pool of candidates; with no sources at all
// every field of the record is absent.
func (s *Service) Lookup(ctx context.Context, address string) (Record, error) {
	if address == "" {
		return Record{}, ErrEmptyAddress
	}

	start := s.clock.Now()
	results := s.fetcher.FetchEach(ctx, address)

	candidates := make([]Candidates, 0, len(results))
	for _, res := range results {
		if !res.OK() {
			s.observe(SourceFailed{
				Address:  address,
				Source:   res.Source,
				URL:      res.URL,
				Err:      res.Err,
				Duration: res.Duration,
			})
			continue
		}

		s.observe(SourceFetched{
			Address:  address,
			Source:   res.Source,
			URL:      res.URL,
			Bytes:    len(res.Markup),
			Duration: res.Duration,
		})
		candidates = append(candidates, Extract(res.Document()))
	}

	// the caller went away while we were waiting on the sources
	if err := ctx.Err(); err != nil {
		return Record{}, fmt.Errorf("%w: %w", ErrLookupAborted, err)
	}

	record := Resolve(candidates)

	s.observe(LookupCompleted{
		Address:   address,
		Sources:   len(results),
		Succeeded: len(candidates),
		Record:    record,
		Duration:  clock.Since(s.clock, start),
	})

	return record, nil
}
