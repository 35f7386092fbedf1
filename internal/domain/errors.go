package domain

import "errors"

var (
	ErrNoToken              = errors.New("no authentication token set")
	ErrUnauthorized         = errors.New("authentication failed")
	ErrMalformedResponse    = errors.New("malformed API response")
	ErrNotFound             = errors.New("not found")
	ErrRejected             = errors.New("request rejected by server")
	ErrUnknownMode          = errors.New("unknown mode")
	ErrUnrecognizedWireCode = errors.New("unrecognized wire code")
	ErrAmbiguousAlias       = errors.New("ambiguous device alias")
)
