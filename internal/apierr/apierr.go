// Package apierr holds the error taxonomy shared by the intake pipeline.
// Handlers translate these into HTTP status codes at the boundary; the
// client-visible message stays generic while the detail goes to the logs.
package apierr

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrInvalidPayload marks a body that could not be decoded into a
	// flat field map (malformed JSON, non-object top level, broken form).
	ErrInvalidPayload = errors.New("invalid payload")

	// ErrUnsupportedContentType marks a request whose declared media type
	// is none of JSON, url-encoded, or multipart form data.
	ErrUnsupportedContentType = errors.New("unsupported content type")
)

// ValidationError reports missing or malformed submission fields.
// Its message is safe to show to the client.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ConfigurationError reports a missing secret or setting. It is logged
// server-side only; clients get a generic failure message.
type ConfigurationError struct {
	Name string
}

func (e *ConfigurationError) Error() string {
	return e.Name + " is not configured"
}

// UpstreamError reports a non-success response from an external service.
type UpstreamError struct {
	Service string
	Status  int
	Body    string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s error (%d): %s", e.Service, e.Status, e.Body)
}

// HTTPStatus maps a pipeline error to the status code the handler returns.
func HTTPStatus(err error) int {
	var ve *ValidationError
	if errors.Is(err, ErrInvalidPayload) || errors.Is(err, ErrUnsupportedContentType) || errors.As(err, &ve) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
