package auth

import "errors"

// Decision outcomes. All four are expected, caller-facing states mapped
// deterministically to protocol status codes; ErrStoreUnavailable is the only
// one that represents an internal fault.
var (
	ErrMissingCredential = errors.New("auth: missing credential")
	ErrInvalidSession    = errors.New("auth: invalid or expired session")
	ErrForbidden         = errors.New("auth: forbidden")
	ErrStoreUnavailable  = errors.New("auth: store unavailable")
)

// ErrInvalidCredentials is returned by Login for an unknown username or a
// wrong password. The two cases are deliberately indistinguishable.
var ErrInvalidCredentials = errors.New("auth: invalid login or password")

// Catalog errors.
var (
	ErrNotFound     = errors.New("auth: not found")
	ErrConflict     = errors.New("auth: resource conflict")
	ErrInvalidInput = errors.New("auth: invalid input")
)
