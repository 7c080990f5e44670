//go:build acceptance

package web_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/screwyprof/tokenscout/lookup"
	"github.com/screwyprof/tokenscout/pkg/logger"
	"github.com/screwyprof/tokenscout/pkg/pagefetch"
	"github.com/screwyprof/tokenscout/web"
	"github.com/screwyprof/tokenscout/web/api"
	"github.com/screwyprof/tokenscout/web/testcfg"
)

// TestLookupAcceptanceBehavior looks a real contract up on the live source sites.
// The sites may block automated clients, so only the response contract is asserted.
func TestLookupAcceptanceBehavior(t *testing.T) {
	t.Parallel()

	t.Run("it answers a lookup against the default sources", func(t *testing.T) {
		t.Parallel()

		// Arrange
		cfg := testcfg.New()
		server := createLiveServer(t, cfg)

		// Act
		response := makeLookupRequest(t, server.URL, `{"contract":"`+cfg.Contract+`"}`)
		lookupResp := parseJSONResponse[api.LookupResponse](t, response)

		// Assert
		assertStatus(t, response, http.StatusOK)
		assert.True(t, lookupResp.Success)
		if lookupResp.Data.Name != nil {
			t.Logf("Resolved name: %s", *lookupResp.Data.Name)
		} else {
			t.Logf("No source returned a name; the sites may be blocking us")
		}
	})
}

// createLiveServer serves the production handler chain over the built-in catalog
func createLiveServer(t *testing.T, cfg testcfg.Config) *httptest.Server {
	t.Helper()

	log := logger.NewFromConfig(logger.Config{
		LogLevel:         cfg.LogLevel,
		LogHumanFriendly: cfg.LogHumanFriendly,
	})

	client := pagefetch.NewClient(&http.Client{}, pagefetch.WithTimeout(cfg.FetchTimeout))
	service := lookup.NewService(lookup.NewFetcher(client, lookup.DefaultCatalog()))

	server := httptest.NewServer(web.NewHandler(web.Deps{
		Looker:         service,
		Logger:         log,
		AllowedOrigins: []string{"*"},
	}))
	t.Cleanup(server.Close)

	return server
}
