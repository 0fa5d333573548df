package models

import (
	"encoding/json"
	"time"
)

// SummaryRequest is the body of POST /summarize.
type SummaryRequest struct {
	VideoURL string `json:"video_url"`
}

// SummaryResponse is the success body of POST /summarize.
type SummaryResponse struct {
	Summary string `json:"summary"`
}

// ErrorResponse is the best-effort failure body returned by the backend.
// FastAPI puts the message under "detail", which is either a string or a
// list of validation errors.
type ErrorResponse struct {
	Detail  json.RawMessage `json:"detail,omitempty"`
	Message string          `json:"message,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// GreetingResponse is the body of GET /.
type GreetingResponse struct {
	Message string `json:"message"`
}

// Summary is the outcome of one summarization request.
type Summary struct {
	URL       string
	VideoID   string
	Text      string
	RequestID string
	Duration  time.Duration
	Err       error
}

// OK reports whether the request produced a summary.
func (s Summary) OK() bool {
	return s.Err == nil
}
