package client

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned by GetProductBySlug when the catalog answers 404.
	ErrNotFound = errors.New("catalog: product not found")
	// ErrFetchFailed matches every other transport, status or decoding failure.
	ErrFetchFailed = errors.New("catalog: fetch failed")
)

// TransportError is a network-level failure: the catalog never produced a response.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("catalog: request to %s failed: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func (e *TransportError) Is(target error) bool {
	return target == ErrFetchFailed
}

// HTTPStatusError is a non-2xx catalog response.
type HTTPStatusError struct {
	StatusCode int
	Status     string
	URL        string
	Body       string

	notFound bool
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("catalog: %s returned %s", e.URL, e.Status)
}

// Is matches ErrNotFound for product lookups answered with 404, and ErrFetchFailed
// for everything else.
func (e *HTTPStatusError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.notFound
	case ErrFetchFailed:
		return !e.notFound
	}
	return false
}
