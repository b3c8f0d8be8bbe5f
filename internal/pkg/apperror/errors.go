package apperror

import "errors"

// Sentinels wrapped by services with fmt.Errorf("...: %w"); the HTTP layer maps them to status codes.
var (
	ErrNotFound    = errors.New("not found")
	ErrBadRequest  = errors.New("bad request")
	ErrUnavailable = errors.New("service unavailable")
)
