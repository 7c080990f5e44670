package lookup

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/screwyprof/tokenscout/pkg/clock"
)

// Document is the markup retrieved from one source
type Document struct {
	SourceURL string
	Markup    string
}

// Result is the outcome of fetching one source: a document or an error
type Result struct {
	Source   string
	URL      string
	Markup   string
	Err      error
	Duration time.Duration
}

// OK reports whether the source was fetched successfully
func (r Result) OK() bool {
	return r.Err == nil
}

// Document returns the fetched document; only meaningful when OK
func (r Result) Document() Document {
	return Document{SourceURL: r.URL, Markup: r.Markup}
}

// Successful keeps the documents of the successful results, preserving order
func Successful(results []Result) []Document {
	docs := make([]Document, 0, len(results))
	for _, r := range results {
		if r.OK() {
			docs = append(docs, r.Document())
		}
	}
	return docs
}

// FetcherOption configures the Fetcher
type FetcherOption func(*Fetcher)

// WithFetchClock injects the Clock used to time each source (e.g., for testing).
// It is called from concurrent fetches and must be safe for that.
func WithFetchClock(c clock.Clock) FetcherOption {
	return func(f *Fetcher) { f.clock = c }
}

// Fetcher retrieves every source of a catalog concurrently
type Fetcher struct {
	client  PageClient
	catalog Catalog
	clock   clock.Clock
}

// NewFetcher creates a Fetcher for the given catalog
func NewFetcher(client PageClient, catalog Catalog, opts ...FetcherOption) *Fetcher {
	f := &Fetcher{
		client:  client,
		catalog: catalog,
		clock:   clock.SystemClock{},
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// FetchEach fetches all sources in parallel and waits for every one of them.
// A failing source never affects the others; each gets its own slot in the result.
func (f *Fetcher) FetchEach(ctx context.Context, address string) []Result {
	results := make([]Result, len(f.catalog))

	var g errgroup.Group
	for i, source := range f.catalog {
		g.Go(func() error {
			results[i] = f.fetch(ctx, source, address)
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// FetchAll returns only the documents that were retrieved successfully
func (f *Fetcher) FetchAll(ctx context.Context, address string) []Document {
	return Successful(f.FetchEach(ctx, address))
}

func (f *Fetcher) fetch(ctx context.Context, source Source, address string) Result {
	start := f.clock.Now()
	url := source.URL(address)

	markup, err := f.client.GetPage(ctx, url)

	return Result{
		Source:   source.Name,
		URL:      url,
		Markup:   markup,
		Err:      err,
		Duration: clock.Since(f.clock, start),
	}
}
