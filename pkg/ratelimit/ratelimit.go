// Package ratelimit limits how many requests each client may make per window
package ratelimit

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/screwyprof/tokenscout/pkg/clock"
)

// Default policy: 100 requests per client every 15 minutes
const (
	DefaultRequests = 100
	DefaultWindow   = 15 * time.Minute
)

// Decision describes the outcome of a single Allow call
type Decision struct {
	Allowed    bool
	Limit      int
	Remaining  int
	RetryAfter time.Duration
}

// KeyFunc extracts the client key from a request
type KeyFunc func(*http.Request) string

// Option configures the Limiter
type Option func(*Limiter)

// WithClock injects a custom Clock (e.g., for testing)
func WithClock(c clock.Clock) Option {
	return func(l *Limiter) { l.clock = c }
}

// Limiter counts requests per client in fixed windows.
// A client's window opens with its first request and lasts window;
// at most requests are allowed inside it.
type Limiter struct {
	mu        sync.Mutex
	clients   map[string]*client
	requests  int
	window    time.Duration
	clock     clock.Clock
	lastSweep time.Time
}

type client struct {
	windowStart time.Time
	hits        int
}

// New creates a Limiter allowing requests per window for each client.
// A non-positive requests or window disables limiting.
func New(requests int, window time.Duration, opts ...Option) *Limiter {
	l := &Limiter{
		clients:  make(map[string]*client),
		requests: requests,
		window:   window,
		clock:    clock.SystemClock{},
	}
	for _, opt := range opts {
		opt(l)
	}
	l.lastSweep = l.clock.Now()
	return l
}

// Enabled reports whether the limiter rejects anything at all
func (l *Limiter) Enabled() bool {
	return l.requests > 0 && l.window > 0
}

// Allow counts one request for key
func (l *Limiter) Allow(key string) Decision {
	if !l.Enabled() {
		return Decision{Allowed: true}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.clock.Now()
	l.sweep(now)

	c, ok := l.clients[key]
	if !ok || l.expired(c, now) {
		c = &client{windowStart: now}
		l.clients[key] = c
	}

	d := Decision{Limit: l.requests}
	if c.hits < l.requests {
		c.hits++
		d.Allowed = true
	} else {
		d.RetryAfter = c.windowStart.Add(l.window).Sub(now)
	}
	d.Remaining = l.requests - c.hits

	return d
}

// Clients returns the number of tracked clients
func (l *Limiter) Clients() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.clients)
}

// sweep forgets clients whose window has closed
func (l *Limiter) sweep(now time.Time) {
	if now.Sub(l.lastSweep) < l.window {
		return
	}
	for key, c := range l.clients {
		if l.expired(c, now) {
			delete(l.clients, key)
		}
	}
	l.lastSweep = now
}

func (l *Limiter) expired(c *client, now time.Time) bool {
	return now.Sub(c.windowStart) >= l.window
}

// Middleware rejects requests over the limit with the limited handler
func (l *Limiter) Middleware(key KeyFunc, limited http.Handler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			d := l.Allow(key(r))
			if l.Enabled() {
				w.Header().Set("RateLimit-Limit", strconv.Itoa(d.Limit))
				w.Header().Set("RateLimit-Remaining", strconv.Itoa(d.Remaining))
			}

			if !d.Allowed {
				w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(d.RetryAfter.Seconds()))))
				limited.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
