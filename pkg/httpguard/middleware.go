package httpguard

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/guardkit/pkg/guard"
)

// Extractor picks the value a guard should inspect out of a request.
// Extractors report a missing source as guard.Absent, so optional guards
// compose with them naturally.
type Extractor func(r *http.Request) any

// Request extracts the request itself, for guards over *http.Request.
func Request() Extractor {
	return func(r *http.Request) any { return r }
}

// Param extracts a chi route parameter, or guard.Absent when the parameter
// is not part of the matched route.
func Param(name string) Extractor {
	return func(r *http.Request) any {
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			for i, key := range rctx.URLParams.Keys {
				if key == name {
					return rctx.URLParams.Values[i]
				}
			}
		}
		return guard.Absent
	}
}

// QueryValue extracts the first value of a query parameter, or guard.Absent
// when the parameter is missing.
func QueryValue(name string) Extractor {
	return func(r *http.Request) any {
		values, ok := r.URL.Query()[name]
		if !ok || len(values) == 0 {
			return guard.Absent
		}
		return values[0]
	}
}

// HeaderValue extracts the first value of a header, or guard.Absent when the
// header is missing.
func HeaderValue(name string) Extractor {
	return func(r *http.Request) any {
		values, ok := r.Header[http.CanonicalHeaderKey(name)]
		if !ok || len(values) == 0 {
			return guard.Absent
		}
		return values[0]
	}
}

type config struct {
	logger  *slog.Logger
	status  int
	message string
}

// Option configures the Require middleware.
type Option func(*config)

// WithLogger sets the logger used for rejected requests. Rejections are
// logged at warn level; the default logger discards everything.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("WithLogger: logger cannot be nil")
	}
	return func(c *config) { c.logger = l }
}

// WithStatus sets the response status for rejected requests.
func WithStatus(code int) Option {
	if code < 400 || code > 599 {
		panic("WithStatus: code must be a client or server error status")
	}
	return func(c *config) { c.status = code }
}

// WithMessage sets the plain-text response body for rejected requests.
func WithMessage(msg string) Option {
	return func(c *config) { c.message = msg }
}

// Require builds middleware that runs the guard against the extracted value
// of every request and rejects the request when the guard fails. A nil
// extractor defaults to the request itself.
func Require(g guard.Guard, from Extractor, opts ...Option) func(http.Handler) http.Handler {
	if from == nil {
		from = Request()
	}
	cfg := config{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		status: http.StatusBadRequest,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := g.Strict(from(r)); err != nil {
				cfg.logger.WarnContext(r.Context(), "guard rejected request",
					slog.String("guard", g.Name()),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.Any("error", errors.Join(ErrGuardRejected, err)),
				)
				msg := cfg.message
				if msg == "" {
					msg = http.StatusText(cfg.status)
				}
				http.Error(w, msg, cfg.status)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
