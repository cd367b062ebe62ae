package primepairs

import "errors"

var (
	// ErrClosed is returned when a pipeline is used after Close.
	ErrClosed = errors.New("primepairs: pipeline closed")
)
