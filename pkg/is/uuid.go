package is

import (
	"github.com/google/uuid"

	"github.com/dmitrymomot/guardkit/pkg/guard"
)

// UUID matches a canonical 36-character UUID string.
var UUID = guard.New("uuid", func(v any, _ guard.Helpers) (any, bool) {
	s, ok := v.(string)
	if !ok {
		return nil, false
	}

	// Fast rejection: check length and hyphen positions before parsing
	if len(s) != 36 {
		return nil, false
	}
	if s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
		return nil, false
	}

	if _, err := uuid.Parse(s); err != nil {
		return nil, false
	}
	return s, true
})
