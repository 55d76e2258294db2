package httpguard

import "errors"

// ErrGuardRejected indicates that a request was rejected by a guard before
// reaching its handler.
var ErrGuardRejected = errors.New("request rejected by guard")
