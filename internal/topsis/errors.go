package topsis

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// APIError is a non-2xx response from the API.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("topsis api: %d", e.Status)
	}
	return fmt.Sprintf("topsis api: %d %s", e.Status, e.Detail)
}

// ErrorMessage returns the server-provided detail carried by err, or fallback
// when err is a transport failure or the server gave no detail.
func ErrorMessage(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		return apiErr.Detail
	}
	return fallback
}

// IsNotFound reports whether err is a 404 from the API.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == 404
}

type errorResponse struct {
	Detail  json.RawMessage `json:"detail"`
	Message string          `json:"message"`
}

func parseError(status int, body []byte) *APIError {
	apiErr := &APIError{Status: status}
	var resp errorResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return apiErr
	}
	if len(resp.Detail) > 0 && string(resp.Detail) != "null" {
		var s string
		if err := json.Unmarshal(resp.Detail, &s); err == nil {
			apiErr.Detail = s
		} else {
			// validation errors arrive as a list of objects
			apiErr.Detail = strings.TrimSpace(string(resp.Detail))
		}
		return apiErr
	}
	apiErr.Detail = resp.Message
	return apiErr
}
