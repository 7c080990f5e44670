// Package web assembles the HTTP surface of the lookup service
package web

import (
	"log/slog"
	"net/http"

	"github.com/rs/cors"

	"github.com/screwyprof/tokenscout/pkg/httpkit"
	"github.com/screwyprof/tokenscout/pkg/logger"
	"github.com/screwyprof/tokenscout/pkg/ratelimit"
	"github.com/screwyprof/tokenscout/web/handler"
)

// Deps are the collaborators of the HTTP surface
type Deps struct {
	Looker         handler.Looker
	Limiter        *ratelimit.Limiter
	Logger         *slog.Logger
	AllowedOrigins []string
}

// NewHandler builds the routed handler with its middleware chain.
// Outermost first: CORS, access log, rate limit, panic recovery.
func NewHandler(d Deps) http.Handler {
	mux := http.NewServeMux()
	handler.NewPostLookup(d.Looker).AddRoutes(mux)

	var h http.Handler = mux
	h = httpkit.Recover(handler.Panicked)(h)
	if d.Limiter != nil {
		h = d.Limiter.Middleware(logger.ClientAddr, handler.RateLimited())(h)
	}
	h = logger.NewMiddleware(d.Logger)(h)

	return cors.New(cors.Options{
		AllowedOrigins: d.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodHead, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler(h)
}
