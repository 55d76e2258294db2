package httpguard

import (
	"net/http"
	"net/textproto"
	"strings"

	"github.com/dmitrymomot/guardkit/pkg/guard"
)

// Method returns a guard matching a request whose method is one of the given
// set. Methods are compared case-insensitively.
func Method(methods ...string) guard.Guard {
	set := make([]any, len(methods))
	for i, m := range methods {
		set[i] = strings.ToUpper(m)
	}
	return guard.New("method", func(v any, h guard.Helpers) (any, bool) {
		r, ok := v.(*http.Request)
		if !ok || !h.Includes(set, strings.ToUpper(r.Method)) {
			return nil, false
		}
		return r, true
	})
}

// Header returns a guard matching a request that carries the named header
// and, when sub-guards are supplied, whose first header value satisfies all
// of them.
func Header(name string, guards ...guard.Guard) guard.Guard {
	key := textproto.CanonicalMIMEHeaderKey(name)
	return guard.New("header "+key, func(v any, h guard.Helpers) (any, bool) {
		r, ok := v.(*http.Request)
		if !ok || !h.HasProperty(headerMap(r.Header), key, guards...) {
			return nil, false
		}
		return r, true
	})
}

// OptionalHeader is the optional-field counterpart of Header: a missing
// header passes, a present one must satisfy the sub-guards.
func OptionalHeader(name string, guards ...guard.Guard) guard.Guard {
	key := textproto.CanonicalMIMEHeaderKey(name)
	return guard.New("optional header "+key, func(v any, h guard.Helpers) (any, bool) {
		r, ok := v.(*http.Request)
		if !ok || !h.HasOptionalProperty(headerMap(r.Header), key, guards...) {
			return nil, false
		}
		return r, true
	})
}

// ContentType returns a guard matching a request whose media type, with any
// parameters stripped, is one of the given set.
func ContentType(types ...string) guard.Guard {
	set := make([]any, len(types))
	for i, ct := range types {
		set[i] = strings.ToLower(strings.TrimSpace(ct))
	}
	return guard.New("content type", func(v any, h guard.Helpers) (any, bool) {
		r, ok := v.(*http.Request)
		if !ok {
			return nil, false
		}
		ct, _, _ := strings.Cut(r.Header.Get("Content-Type"), ";")
		ct = strings.ToLower(strings.TrimSpace(ct))
		if ct == "" || !h.Includes(set, ct) {
			return nil, false
		}
		return r, true
	})
}

// Query returns a guard matching a request whose URL carries the named query
// parameter and, when sub-guards are supplied, whose first value satisfies
// all of them.
func Query(name string, guards ...guard.Guard) guard.Guard {
	return guard.New("query "+name, func(v any, h guard.Helpers) (any, bool) {
		r, ok := v.(*http.Request)
		if !ok || !h.HasProperty(queryMap(r), name, guards...) {
			return nil, false
		}
		return r, true
	})
}

// Bearer matches a request carrying a non-empty bearer token in the
// Authorization header. On success the parsed value is the token itself, so
// Parse narrows straight to the credential.
var Bearer = guard.New("bearer token", func(v any, _ guard.Helpers) (any, bool) {
	r, ok := v.(*http.Request)
	if !ok {
		return nil, false
	}
	token, found := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if !found || strings.TrimSpace(token) == "" {
		return nil, false
	}
	return token, true
})

// headerMap projects the first value of each header into the keyed shape the
// structural helpers inspect.
func headerMap(header http.Header) map[string]any {
	m := make(map[string]any, len(header))
	for k, vs := range header {
		if len(vs) > 0 {
			m[k] = vs[0]
		}
	}
	return m
}

func queryMap(r *http.Request) map[string]any {
	values := r.URL.Query()
	m := make(map[string]any, len(values))
	for k, vs := range values {
		if len(vs) > 0 {
			m[k] = vs[0]
		}
	}
	return m
}
