package api

import "errors"

// Transport-level sentinel errors produced by [mapHTTPError]. Callers match
// them with [errors.Is]; the wrapped message carries the response body.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrThrottled           = errors.New("request throttled")
	ErrInternalServerError = errors.New("internal server error")
	ErrServiceUnavailable  = errors.New("service unavailable")
)

// Application-level and pipeline errors.
var (
	// ErrPlatform is returned when the HTTP exchange succeeded but the
	// Bungie.net envelope carries a non-success ErrorCode.
	ErrPlatform = errors.New("platform error")

	// ErrSystemDisabled is the ErrPlatform special case for maintenance
	// windows; callers typically back off rather than fail hard.
	ErrSystemDisabled = errors.New("destiny system disabled")

	// ErrDownloadFailed is returned when fetching a manifest content bundle
	// fails for network or local-storage reasons.
	ErrDownloadFailed = errors.New("content download failed")

	// ErrTokenExchange is returned when the OAuth token endpoint rejects a
	// code exchange or refresh request.
	ErrTokenExchange = errors.New("oauth token exchange failed")
)
