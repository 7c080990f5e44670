package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/screwyprof/tokenscout/pkg/httpkit"
	"github.com/screwyprof/tokenscout/web/api"
)

var (
	ErrPanic       = errors.New("handler panicked")
	ErrRateLimited = errors.New("rate limit exceeded")
)

// Panicked answers a recovered panic with a generic 500
func Panicked(recovered any) http.HandlerFunc {
	return httpkit.JsonError(api.InternalServerError(fmt.Errorf("%w: %v", ErrPanic, recovered)))
}

// RateLimited answers requests rejected by the rate limiter
func RateLimited() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		httpkit.JsonError(api.TooManyRequests(ErrRateLimited))(w, r)
	})
}
