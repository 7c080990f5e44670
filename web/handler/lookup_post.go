package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/screwyprof/tokenscout/lookup"
	"github.com/screwyprof/tokenscout/pkg/httpkit"
	"github.com/screwyprof/tokenscout/web/api"
	"github.com/screwyprof/tokenscout/web/handler/bind"
)

const PostLookupRoute = http.MethodPost + " " + "/api/lookup"

// Sentinel errors
var (
	ErrLookupFailed = errors.New("failed to look up token")
)

// Looker resolves what the sources say about a contract address
type Looker interface {
	Lookup(ctx context.Context, address string) (lookup.Record, error)
}

type PostLookup struct {
	looker Looker
}

func NewPostLookup(looker Looker) *PostLookup {
	return &PostLookup{
		looker: looker,
	}
}

func (h *PostLookup) AddRoutes(m *http.ServeMux) {
	m.Handle(PostLookupRoute, httpkit.HandlerFunc(h.Lookup))
}

func (h *PostLookup) Lookup(_ http.ResponseWriter, r *http.Request) http.HandlerFunc {
	req, err := bind.LookupRequest(r)
	switch {
	case errors.Is(err, bind.ErrContractRequired):
		return httpkit.JsonError(api.BadRequest(bind.ErrContractRequired))
	case err != nil:
		return httpkit.JsonError(api.BadRequestBecause(bind.ErrInvalidBody, err))
	}

	record, err := h.looker.Lookup(r.Context(), req.Contract)
	if err != nil {
		return httpkit.JsonError(api.InternalServerError(fmt.Errorf("%w: %w", ErrLookupFailed, err)))
	}

	return httpkit.JSON(bind.LookupResponse(record))
}
