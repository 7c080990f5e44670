package bind

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/screwyprof/tokenscout/lookup"
	"github.com/screwyprof/tokenscout/pkg/httpkit"
	"github.com/screwyprof/tokenscout/web/api"
)

// Sentinel errors for request binding; their text is shown to API users as is
var (
	ErrInvalidBody      = errors.New("Invalid request body")         //nolint:staticcheck
	ErrContractRequired = errors.New("Contract address is required") //nolint:staticcheck
	ErrContractNotText  = errors.New("contract must be a string")
)

// lookupBody accepts any JSON type for contract so falsy values can be told apart
// from values of the wrong type
type lookupBody struct {
	Contract any `json:"contract"`
}

// LookupRequest binds the JSON body of POST /api/lookup.
// An empty body is treated as an empty object.
func LookupRequest(r *http.Request) (api.LookupRequest, error) {
	var body lookupBody
	if err := httpkit.DecodeJSON(r, &body); err != nil {
		return api.LookupRequest{}, fmt.Errorf("%w: %w", ErrInvalidBody, err)
	}

	contract, err := contractAddress(body.Contract)
	if err != nil {
		return api.LookupRequest{}, err
	}

	return api.LookupRequest{Contract: contract}, nil
}

// contractAddress treats null, false, 0 and "" as a missing contract
func contractAddress(v any) (string, error) {
	switch c := v.(type) {
	case nil:
		return "", ErrContractRequired
	case string:
		if c == "" {
			return "", ErrContractRequired
		}
		return c, nil
	case bool:
		if !c {
			return "", ErrContractRequired
		}
	case float64:
		if c == 0 {
			return "", ErrContractRequired
		}
	}
	return "", fmt.Errorf("%w: %w: got %T", ErrInvalidBody, ErrContractNotText, v)
}

// LookupResponse binds a consensus record to the API response format
func LookupResponse(record lookup.Record) api.LookupResponse {
	return api.LookupResponse{
		Success: true,
		Data: api.TokenInfo{
			Name:        record.Name.Ptr(),
			Website:     record.Website.Ptr(),
			Twitter:     record.Twitter.Ptr(),
			Telegram:    record.Telegram.Ptr(),
			Dexscreener: record.Dexscreener.Ptr(),
		},
	}
}
