// Package pagefetch retrieves HTML pages the way a desktop browser would
package pagefetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/net/html/charset"
)

// Default client settings
const (
	DefaultTimeout      = 5 * time.Second
	DefaultMaxBodyBytes = int64(5 << 20)
	DefaultUserAgent    = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"
)

// Sentinel errors for page retrieval
var (
	ErrRequestCreation  = errors.New("creating request")
	ErrRequestFailed    = errors.New("making request")
	ErrUnexpectedStatus = errors.New("unexpected status code")
	ErrReadBody         = errors.New("reading response body")
)

// Option configures the Client
type Option func(*Client)

// WithUserAgent overrides the User-Agent header sent with every request
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// WithTimeout bounds each request, including reading the body
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithMaxBodyBytes caps how much of a page body is read
func WithMaxBodyBytes(n int64) Option {
	return func(c *Client) { c.maxBodyBytes = n }
}

// Client fetches HTML pages
type Client struct {
	httpClient   *http.Client
	userAgent    string
	timeout      time.Duration
	maxBodyBytes int64
}

// NewClient creates a page client on top of httpClient
func NewClient(httpClient *http.Client, opts ...Option) *Client {
	c := &Client{
		httpClient:   httpClient,
		userAgent:    DefaultUserAgent,
		timeout:      DefaultTimeout,
		maxBodyBytes: DefaultMaxBodyBytes,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetPage downloads the page at url and returns its body decoded to UTF-8
func (c *Client) GetPage(ctx context.Context, url string) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrRequestCreation, err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml;q=0.9,*/*;q=0.8")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	var body io.Reader = resp.Body
	if c.maxBodyBytes > 0 {
		body = io.LimitReader(body, c.maxBodyBytes)
	}

	// the charset sniffer consumes the start of the body, so its errors are final
	utf8Reader, err := charset.NewReader(body, resp.Header.Get("Content-Type"))
	switch {
	case errors.Is(err, io.EOF):
		return "", nil
	case err != nil:
		return "", fmt.Errorf("%w: %w", ErrReadBody, err)
	}

	data, err := io.ReadAll(utf8Reader)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadBody, err)
	}

	return string(data), nil
}
