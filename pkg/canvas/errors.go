package canvas

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// APIError is a non-2xx response from Canvas, carrying the HTTP status and
// whatever the error body decoded to.
type APIError struct {
	// StatusCode is the HTTP status of the failed response.
	StatusCode int

	// RequestID is the X-Request-Id sent with the failed request, for
	// correlating against server logs.
	RequestID string

	// Errors holds the messages from Canvas's {"errors": [...]} body.
	Errors []ErrorItem

	// Body is the raw response body, kept for error shapes the decoder
	// does not recognize.
	Body string
}

// ErrorItem is a single entry of a Canvas error body.
type ErrorItem struct {
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	if len(e.Errors) > 0 {
		msgs := make([]string, 0, len(e.Errors))
		for _, item := range e.Errors {
			msgs = append(msgs, item.Message)
		}
		return fmt.Sprintf("canvas: API error (status %d): %s",
			e.StatusCode, strings.Join(msgs, "; "))
	}
	return fmt.Sprintf("canvas: API returned status %d: %s", e.StatusCode, e.Body)
}

// newAPIError decodes a Canvas error body. Canvas uses a few shapes:
// {"errors": [{"message": ...}]}, {"errors": {"field": [{"message":...}]}}
// and the occasional bare {"message": ...}.
func newAPIError(statusCode int, requestID string, body []byte) *APIError {
	apiErr := &APIError{
		StatusCode: statusCode,
		RequestID:  requestID,
		Body:       string(body),
	}

	var listForm struct {
		Errors []ErrorItem `json:"errors"`
	}
	if err := json.Unmarshal(body, &listForm); err == nil && len(listForm.Errors) > 0 {
		apiErr.Errors = listForm.Errors
		return apiErr
	}

	var fieldForm struct {
		Errors map[string][]ErrorItem `json:"errors"`
	}
	if err := json.Unmarshal(body, &fieldForm); err == nil && len(fieldForm.Errors) > 0 {
		for field, items := range fieldForm.Errors {
			for _, item := range items {
				apiErr.Errors = append(apiErr.Errors, ErrorItem{
					Message: fmt.Sprintf("%s: %s", field, item.Message),
				})
			}
		}
		return apiErr
	}

	var bare struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &bare); err == nil && bare.Message != "" {
		apiErr.Errors = []ErrorItem{{Message: bare.Message}}
	}

	return apiErr
}

// IsNotFound reports whether err is an APIError with status 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// IsUnauthorized reports whether err is an APIError with status 401.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized
}
