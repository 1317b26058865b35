package client

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrUnavailable  = errors.New("record store unavailable")
	ErrBadRequest   = errors.New("bad request")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrServer       = errors.New("server error")
)

// StatusError is returned for every non-2xx response.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("record store: status %d", e.Code)
	}
	return fmt.Sprintf("record store: status %d: %s", e.Code, e.Message)
}

// Unwrap exposes the sentinel for the status, so errors.Is works on it.
func (e *StatusError) Unwrap() error {
	return mapStatus(e.Code)
}

func mapStatus(code int) error {
	switch {
	case code == http.StatusBadRequest:
		return ErrBadRequest
	case code == http.StatusUnauthorized, code == http.StatusForbidden:
		return ErrUnauthorized
	case code == http.StatusNotFound:
		return ErrNotFound
	case code == http.StatusConflict:
		return ErrConflict
	case code >= 500:
		return ErrServer
	default:
		return nil
	}
}
