package summarizer

import (
	"encoding/json"
	"errors"
	"fmt"

	"ai-dvsum/internal/models"
)

const (
	// FallbackMessage is shown when the backend rejects a request without saying why.
	FallbackMessage = "Failed to generate summary"
	// TransportMessage is shown when the backend could not be reached or answered garbage.
	TransportMessage = "An error occurred. Please try again later."
)

// ErrTransport marks network failures, timeouts and unreadable responses.
var ErrTransport = errors.New("transport error")

// APIError is a non-2xx answer from the backend.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("backend returned status %d: %s", e.StatusCode, e.Message)
}

// Message converts a request error into the text shown to the user.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if apiErr.Message != "" {
			return apiErr.Message
		}
		return FallbackMessage
	}
	return TransportMessage
}

func transportError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrTransport, fmt.Sprintf(format, args...))
}

// extractMessage pulls a human readable message out of an error body.
// FastAPI sends {"detail": "..."} for HTTPException and
// {"detail": [{"msg": "..."}]} for request validation failures.
func extractMessage(body []byte) string {
	var resp models.ErrorResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return ""
	}

	if len(resp.Detail) > 0 {
		var detail string
		if err := json.Unmarshal(resp.Detail, &detail); err == nil && detail != "" {
			return detail
		}
		var items []struct {
			Msg string `json:"msg"`
		}
		if err := json.Unmarshal(resp.Detail, &items); err == nil && len(items) > 0 && items[0].Msg != "" {
			return items[0].Msg
		}
	}

	if resp.Message != "" {
		return resp.Message
	}
	return resp.Error
}
