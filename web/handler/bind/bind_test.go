package bind_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/screwyprof/tokenscout/lookup"
	"github.com/screwyprof/tokenscout/pkg/httpkit"
	"github.com/screwyprof/tokenscout/web/api"
	"github.com/screwyprof/tokenscout/web/handler/bind"
)

func newLookupRequest(body string) *http.Request {
	return httptest.NewRequest(http.MethodPost, "/api/lookup", strings.NewReader(body))
}

func TestLookupRequest(t *testing.T) {
	t.Parallel()

	t.Run("it binds the contract address verbatim", func(t *testing.T) {
		t.Parallel()

		// Arrange
		r := newLookupRequest(`{"contract":"0xAbC123"}`)

		// Act
		req, err := bind.LookupRequest(r)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, api.LookupRequest{Contract: "0xAbC123"}, req)
	})

	t.Run("it ignores unknown fields", func(t *testing.T) {
		t.Parallel()

		// Arrange
		r := newLookupRequest(`{"contract":"0xabc","chain":"ethereum"}`)

		// Act
		req, err := bind.LookupRequest(r)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "0xabc", req.Contract)
	})

	t.Run("it keeps whitespace-only contracts", func(t *testing.T) {
		t.Parallel()

		// Arrange
		r := newLookupRequest(`{"contract":"   "}`)

		// Act
		req, err := bind.LookupRequest(r)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "   ", req.Contract)
	})

	t.Run("it requires a contract", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name string
			body string
		}{
			{name: "empty object", body: `{}`},
			{name: "empty body", body: ``},
			{name: "null body", body: `null`},
			{name: "null contract", body: `{"contract":null}`},
			{name: "empty contract", body: `{"contract":""}`},
			{name: "false contract", body: `{"contract":false}`},
			{name: "zero contract", body: `{"contract":0}`},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()

				// Act
				_, err := bind.LookupRequest(newLookupRequest(tt.body))

				// Assert
				require.ErrorIs(t, err, bind.ErrContractRequired)
				assert.Equal(t, "Contract address is required", err.Error())
			})
		}
	})

	t.Run("it rejects bodies it cannot read", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name string
			body string
			want error
		}{
			{name: "malformed json", body: `{"contract":`, want: httpkit.ErrMalformedBody},
			{name: "array body", body: `["0xabc"]`, want: httpkit.ErrMalformedBody},
			{name: "numeric contract", body: `{"contract":42}`, want: bind.ErrContractNotText},
			{name: "object contract", body: `{"contract":{"address":"0xabc"}}`, want: bind.ErrContractNotText},
			{name: "true contract", body: `{"contract":true}`, want: bind.ErrContractNotText},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()

				// Act
				_, err := bind.LookupRequest(newLookupRequest(tt.body))

				// Assert
				require.ErrorIs(t, err, bind.ErrInvalidBody)
				assert.ErrorIs(t, err, tt.want)
			})
		}
	})
}

func TestLookupResponse(t *testing.T) {
	t.Parallel()

	t.Run("it maps present values to strings and absent ones to nil", func(t *testing.T) {
		t.Parallel()

		// Arrange
		record := lookup.Record{
			Name:    lookup.Some("CoolCoin"),
			Twitter: lookup.Some("https://twitter.com/coolcoin"),
		}

		// Act
		resp := bind.LookupResponse(record)

		// Assert
		assert.True(t, resp.Success)
		require.NotNil(t, resp.Data.Name)
		assert.Equal(t, "CoolCoin", *resp.Data.Name)
		require.NotNil(t, resp.Data.Twitter)
		assert.Equal(t, "https://twitter.com/coolcoin", *resp.Data.Twitter)
		assert.Nil(t, resp.Data.Website)
		assert.Nil(t, resp.Data.Telegram)
		assert.Nil(t, resp.Data.Dexscreener)
	})

	t.Run("it keeps an empty but present value", func(t *testing.T) {
		t.Parallel()

		// Arrange
		record := lookup.Record{Website: lookup.Some("")}

		// Act
		resp := bind.LookupResponse(record)

		// Assert
		require.NotNil(t, resp.Data.Website)
		assert.Empty(t, *resp.Data.Website)
	})
}
