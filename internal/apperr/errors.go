// Package apperr defines the error taxonomy shared by the analysis service and its client.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// ValidationError indicates missing input, caught before any network call
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ConfigurationError indicates a server-side setting is missing
type ConfigurationError struct {
	Setting string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("Server configuration error: %s is missing.", e.Setting)
}

// TransportError wraps a network failure on either hop
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// UpstreamError wraps a failure reported by the generative model API
type UpstreamError struct {
	Err error
}

func (e *UpstreamError) Error() string {
	return e.Err.Error()
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// ParseError indicates a body that is not valid JSON after fence stripping
type ParseError struct {
	Raw string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing analysis JSON: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// HTTPError is a non-2xx response from the analysis service
type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// HTTPStatus returns the status code the analysis service answers with for err
func HTTPStatus(err error) int {
	var (
		validation *ValidationError
		httpErr    *HTTPError
	)
	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.As(err, &httpErr):
		return httpErr.Status
	default:
		return http.StatusInternalServerError
	}
}
