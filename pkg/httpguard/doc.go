// Package httpguard builds request-shape guards and middleware on top of the
// guard package. The guards in this package validate *http.Request values
// (method, headers, content type, query parameters, bearer credentials); the
// Require middleware runs any guard against a value extracted from the
// request and rejects the request before it reaches the handler when the
// guard fails.
//
//	r := chi.NewRouter()
//	r.Use(httpguard.Require(httpguard.ContentType("application/json"), httpguard.Request()))
//	r.With(httpguard.Require(is.UUID, httpguard.Param("id"))).Get("/users/{id}", showUser)
//
// Rejections respond with 400 Bad Request by default and can be logged
// through an optional slog.Logger. The package adds no new validation
// semantics: every guard here is an ordinary guard.Guard lifted from a
// parser, so Or, NotEmpty, Optional, Strict and Assert all apply.
package httpguard
