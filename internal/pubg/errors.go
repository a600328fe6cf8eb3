package pubg

import (
	"errors"
	"net/http"
)

var (
	// ErrRateLimited matches an *APIError carrying HTTP 429.
	ErrRateLimited = errors.New("pubg: rate limited")
	// ErrBadRequest matches an *APIError carrying HTTP 400.
	ErrBadRequest = errors.New("pubg: bad request")
	// ErrMalformedResponse is returned when a payload does not match its schema.
	ErrMalformedResponse = errors.New("pubg: malformed response")
)

// APIError is a non-2xx provider response. Detail is the first error detail
// of the provider's error document, or the status text when it sent none.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	return e.Detail
}

func (e *APIError) Is(target error) bool {
	switch target {
	case ErrRateLimited:
		return e.StatusCode == http.StatusTooManyRequests
	case ErrBadRequest:
		return e.StatusCode == http.StatusBadRequest
	}
	return false
}

// NetworkError wraps a failure that happened before a response was read.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return e.Err.Error()
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}
