package api

import (
	"encoding/json"
	"fmt"
	"strings"
)

// APIError is a non-2xx answer from the catalog API. The server message is
// kept verbatim so callers can show it to the operator; the caller decides
// presentation, the client never retries.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("API error (status %d)", e.Status)
	}

	return fmt.Sprintf("API error (status %d): %s", e.Status, e.Message)
}

// newAPIError extracts the server's message field from an error body. The
// API answers with either a string or a list of strings; anything else is
// kept as the raw body.
func newAPIError(status int, body []byte) *APIError {
	var withMessage struct {
		Message json.RawMessage `json:"message"`
	}

	if err := json.Unmarshal(body, &withMessage); err == nil && len(withMessage.Message) > 0 {
		var msg string
		if err := json.Unmarshal(withMessage.Message, &msg); err == nil {
			return &APIError{Status: status, Message: msg}
		}

		var msgs []string
		if err := json.Unmarshal(withMessage.Message, &msgs); err == nil {
			return &APIError{Status: status, Message: strings.Join(msgs, "; ")}
		}
	}

	return &APIError{Status: status, Message: strings.TrimSpace(string(body))}
}
