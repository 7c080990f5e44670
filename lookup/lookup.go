// Package lookup finds out what a token contract is called and where its project lives
// by reading several public pages about the contract and voting on what they say.
package lookup

import (
	"context"
	"errors"
)

// Sentinel errors for failure cases
var (
	ErrEmptyAddress  = errors.New("contract address is empty")
	ErrLookupAborted = errors.New("lookup aborted")
)

// PageClient downloads a single page
type PageClient interface {
	GetPage(ctx context.Context, url string) (string, error)
}

// SourceFetcher retrieves every configured source for an address.
// The returned slice has one entry per configured source, in catalog order.
type SourceFetcher interface {
	FetchEach(ctx context.Context, address string) []Result
}
