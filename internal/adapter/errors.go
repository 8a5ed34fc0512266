package adapter

import "errors"

// Transport-agnostic errors returned by RemoteClient implementations.
var (
	// ErrNetwork wraps failures that never produced an HTTP response
	// (DNS, refused connection, timeout).
	ErrNetwork = errors.New("network error")

	ErrBadRequest   = errors.New("bad request")
	ErrUnauthorized = errors.New("client unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	// ErrServer covers every 5xx status.
	ErrServer = errors.New("server error")

	// ErrUnexpectedResponse is returned when a 2xx body cannot be decoded.
	ErrUnexpectedResponse = errors.New("unexpected response")
)
