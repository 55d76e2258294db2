package httpguard_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/guardkit/pkg/guard"
	"github.com/dmitrymomot/guardkit/pkg/httpguard"
	"github.com/dmitrymomot/guardkit/pkg/is"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequire(t *testing.T) {
	t.Parallel()

	t.Run("passes matching requests through", func(t *testing.T) {
		mw := httpguard.Require(httpguard.Method("GET"), httpguard.Request())
		rec := httptest.NewRecorder()
		mw(okHandler()).ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("rejects with 400 by default", func(t *testing.T) {
		mw := httpguard.Require(httpguard.Method("GET"), httpguard.Request())
		rec := httptest.NewRecorder()
		mw(okHandler()).ServeHTTP(rec, httptest.NewRequest("POST", "/", nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), http.StatusText(http.StatusBadRequest))
	})

	t.Run("honors status and message options", func(t *testing.T) {
		mw := httpguard.Require(httpguard.Bearer, httpguard.Request(),
			httpguard.WithStatus(http.StatusUnauthorized),
			httpguard.WithMessage("token required"),
		)
		rec := httptest.NewRecorder()
		mw(okHandler()).ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "token required", strings.TrimSpace(rec.Body.String()))
	})

	t.Run("nil extractor defaults to the request", func(t *testing.T) {
		mw := httpguard.Require(httpguard.Method("GET"), nil)
		rec := httptest.NewRecorder()
		mw(okHandler()).ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("logs rejections through the configured logger", func(t *testing.T) {
		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))

		mw := httpguard.Require(httpguard.Method("GET"), httpguard.Request(), httpguard.WithLogger(logger))
		rec := httptest.NewRecorder()
		mw(okHandler()).ServeHTTP(rec, httptest.NewRequest("POST", "/ping", nil))

		assert.Contains(t, buf.String(), "guard rejected request")
		assert.Contains(t, buf.String(), "/ping")
		assert.Contains(t, buf.String(), "method")
	})

	t.Run("option validation panics on bad input", func(t *testing.T) {
		assert.Panics(t, func() { httpguard.WithLogger(nil) })
		assert.Panics(t, func() { httpguard.WithStatus(http.StatusOK) })
	})
}

func TestExtractors(t *testing.T) {
	t.Parallel()

	t.Run("query value reports absence", func(t *testing.T) {
		from := httpguard.QueryValue("page")
		assert.Equal(t, guard.Absent, from(httptest.NewRequest("GET", "/", nil)))
		assert.Equal(t, "2", from(httptest.NewRequest("GET", "/?page=2", nil)))
	})

	t.Run("header value reports absence", func(t *testing.T) {
		from := httpguard.HeaderValue("X-Trace")
		assert.Equal(t, guard.Absent, from(httptest.NewRequest("GET", "/", nil)))

		r := httptest.NewRequest("GET", "/", nil)
		r.Header.Set("x-trace", "abc")
		assert.Equal(t, "abc", from(r))
	})

	t.Run("param extracts chi route parameters", func(t *testing.T) {
		r := chi.NewRouter()
		r.With(httpguard.Require(is.UUID, httpguard.Param("id"))).
			Get("/users/{id}", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest("GET", "/users/550e8400-e29b-41d4-a716-446655440000", nil))
		require.Equal(t, http.StatusOK, rec.Code)

		rec = httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest("GET", "/users/42", nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("param reports absence outside a chi route", func(t *testing.T) {
		from := httpguard.Param("id")
		assert.Equal(t, guard.Absent, from(httptest.NewRequest("GET", "/", nil)))
	})

	t.Run("optional guards accept absent extractions", func(t *testing.T) {
		mw := httpguard.Require(is.NumericString.Optional(), httpguard.QueryValue("page"))
		rec := httptest.NewRecorder()
		mw(okHandler()).ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))
		assert.Equal(t, http.StatusOK, rec.Code)

		rec = httptest.NewRecorder()
		mw(okHandler()).ServeHTTP(rec, httptest.NewRequest("GET", "/?page=two", nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
