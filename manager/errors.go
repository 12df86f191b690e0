package manager

import "errors"

var (
	// ErrAllSourcesClosed is returned by Read once every capture source has
	// terminated and no queued events remain, and on every Read after that.
	ErrAllSourcesClosed = errors.New("all capture sources closed")
	// ErrWriterClosed is returned by Write after Close.
	ErrWriterClosed = errors.New("event writer closed")
)
