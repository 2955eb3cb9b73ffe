package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Error is a backend rejection. Message carries whatever human-readable text
// the backend sent; pages surface it verbatim.
type Error struct {
	Status  int
	Code    string
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend returned %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("backend returned %d", e.Status)
}

// errorBody is the shape the backend (and the gateway it was modeled on) use
// for failures. Any of the fields may be absent.
type errorBody struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
	Details string `json:"details,omitempty"`
}

func decodeError(r *result) *Error {
	apiErr := &Error{Status: r.status}

	var body errorBody
	if err := json.Unmarshal(r.body, &body); err == nil {
		apiErr.Code = body.Code
		switch {
		case body.Error != "":
			apiErr.Message = body.Error
		case body.Message != "":
			apiErr.Message = body.Message
		case body.Details != "":
			apiErr.Message = body.Details
		}
	}
	// The backend sometimes answers with a bare text body.
	if apiErr.Message == "" {
		apiErr.Message = strings.TrimSpace(string(r.body))
	}
	return apiErr
}

// IsStatus reports whether err is a backend rejection with the given HTTP
// status.
func IsStatus(err error, status int) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status == status
}

// IsUnauthorized reports whether the backend refused the bearer token.
func IsUnauthorized(err error) bool {
	return IsStatus(err, http.StatusUnauthorized)
}
