package models

import "encoding/json"

// PlatformErrorCode is the Bungie.net application-level status code carried
// in every response envelope. The platform reports success as Success (1)
// even when the transport-level HTTP status is 200; any other value means
// the request failed at the application layer.
type PlatformErrorCode int

const (
	// PlatformSuccess indicates the request completed successfully.
	PlatformSuccess PlatformErrorCode = 1

	// PlatformSystemDisabled indicates the requested subsystem is disabled
	// for maintenance. Clients should back off and retry later.
	PlatformSystemDisabled PlatformErrorCode = 5

	// PlatformThrottled indicates per-application or per-user throttling.
	// The envelope's ThrottleSeconds says how long to wait.
	PlatformThrottled PlatformErrorCode = 51
)

// APIResponse is the envelope Bungie.net wraps around every JSON payload.
// Response is kept as raw JSON so the transport layer can unwrap the
// envelope once and let each operation decode its own payload type.
type APIResponse struct {
	// Response is the endpoint-specific payload, present only on success.
	Response json.RawMessage `json:"Response"`

	// ErrorCode is the application-level status; see [PlatformErrorCode].
	ErrorCode PlatformErrorCode `json:"ErrorCode"`

	// ErrorStatus is the symbolic name of ErrorCode (e.g. "Success",
	// "SystemDisabled").
	ErrorStatus string `json:"ErrorStatus"`

	// Message is the human-readable description accompanying ErrorCode.
	Message string `json:"Message"`

	// ThrottleSeconds is non-zero when the platform asks the caller to
	// back off before retrying.
	ThrottleSeconds int `json:"ThrottleSeconds"`
}

// Succeeded reports whether the platform accepted the request.
func (r *APIResponse) Succeeded() bool {
	return r.ErrorCode == PlatformSuccess
}
