package scanner

import "errors"

var (
	// ErrSessionNotFound means the handle does not match any known session.
	ErrSessionNotFound = errors.New("scan session not found")
	// ErrSessionClosed means the session already ended and released the camera.
	ErrSessionClosed = errors.New("scan session already closed")
)
