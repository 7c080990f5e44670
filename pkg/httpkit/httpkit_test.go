package httpkit_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/screwyprof/tokenscout/pkg/httpkit"
)

type testError struct {
	err  error
	code int
}

func (e testError) Error() string { return e.err.Error() }
func (e testError) HTTPCode() int { return e.code }
func (e testError) Cause() error  { return e.err }

type payload struct {
	Contract string `json:"contract"`
}

func TestJSONResponders(t *testing.T) {
	t.Parallel()

	t.Run("it writes JSON with the requested status code", func(t *testing.T) {
		t.Parallel()

		// Arrange
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)

		// Act
		httpkit.JSONWithStatus(http.StatusAccepted, map[string]bool{"success": true})(rec, req)

		// Assert
		assert.Equal(t, http.StatusAccepted, rec.Code)
		assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
		assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
		assert.JSONEq(t, `{"success":true}`, rec.Body.String())
	})

	t.Run("it records the error for middleware when writing an error response", func(t *testing.T) {
		t.Parallel()

		// Arrange
		apiErr := testError{err: errors.New("boom"), code: http.StatusTeapot}
		var tracked error
		handler := httpkit.HandlerFunc(func(w http.ResponseWriter, r *http.Request) http.HandlerFunc {
			return func(w http.ResponseWriter, r *http.Request) {
				httpkit.JsonError(apiErr)(w, r)
				tracked = httpkit.Error(r.Context())
			}
		})
		rec := httptest.NewRecorder()

		// Act
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		// Assert
		assert.Equal(t, http.StatusTeapot, rec.Code)
		assert.Equal(t, apiErr, tracked)
	})
}

func TestDecodeJSON(t *testing.T) {
	t.Parallel()

	t.Run("it decodes a well-formed body", func(t *testing.T) {
		t.Parallel()

		// Arrange
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"contract":"0xabc"}`))
		var dst payload

		// Act
		err := httpkit.DecodeJSON(req, &dst)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "0xabc", dst.Contract)
	})

	t.Run("it treats an empty body as an empty object", func(t *testing.T) {
		t.Parallel()

		// Arrange
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
		var dst payload

		// Act
		err := httpkit.DecodeJSON(req, &dst)

		// Assert
		require.NoError(t, err)
		assert.Empty(t, dst.Contract)
	})

	t.Run("it rejects malformed JSON", func(t *testing.T) {
		t.Parallel()

		// Arrange
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"contract":`))
		var dst payload

		// Act
		err := httpkit.DecodeJSON(req, &dst)

		// Assert
		assert.ErrorIs(t, err, httpkit.ErrMalformedBody)
	})

	t.Run("it rejects oversized bodies", func(t *testing.T) {
		t.Parallel()

		// Arrange
		huge := `{"contract":"` + strings.Repeat("a", httpkit.DefaultMaxBodyBytes) + `"}`
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(huge))
		var dst payload

		// Act
		err := httpkit.DecodeJSON(req, &dst)

		// Assert
		assert.ErrorIs(t, err, httpkit.ErrBodyTooLarge)
	})
}

func TestRecover(t *testing.T) {
	t.Parallel()

	t.Run("it turns a panic into the fallback response", func(t *testing.T) {
		t.Parallel()

		// Arrange
		var recovered any
		onPanic := func(rec any) http.HandlerFunc {
			recovered = rec
			return httpkit.JSONWithStatus(http.StatusInternalServerError, map[string]string{"error": "oops"})
		}
		panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			panic("extractor exploded")
		})
		rec := httptest.NewRecorder()

		// Act
		httpkit.Recover(onPanic)(panicking).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))

		// Assert
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"error":"oops"}`, rec.Body.String())
		assert.Equal(t, "extractor exploded", recovered)
	})

	t.Run("it passes through handlers that do not panic", func(t *testing.T) {
		t.Parallel()

		// Arrange
		onPanic := func(any) http.HandlerFunc {
			t.Fatal("onPanic must not be called")
			return nil
		}
		ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})
		rec := httptest.NewRecorder()

		// Act
		httpkit.Recover(onPanic)(ok).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		// Assert
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("it re-panics on http.ErrAbortHandler", func(t *testing.T) {
		t.Parallel()

		// Arrange
		aborting := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			panic(http.ErrAbortHandler)
		})
		handler := httpkit.Recover(func(any) http.HandlerFunc { return nil })(aborting)

		// Act & Assert
		assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
			handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		})
	})
}
