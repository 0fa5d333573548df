package session

// Status is the lifecycle of the current summarization request.
type Status string

const (
	// StatusIdle means nothing has been submitted yet.
	StatusIdle Status = "Idle"

	// StatusLoading means a request is outstanding.
	StatusLoading Status = "Loading"

	// StatusSucceeded means the latest request returned a summary.
	StatusSucceeded Status = "Succeeded"

	// StatusFailed means validation or the latest request failed.
	StatusFailed Status = "Failed"
)

// String returns the string representation of Status
func (s Status) String() string {
	return string(s)
}

// IsFinished returns true once the latest submission has a result to show
func (s Status) IsFinished() bool {
	return s == StatusSucceeded || s == StatusFailed
}

// CopyFeedback is the label of the copy button.
type CopyFeedback string

const (
	CopyDefault CopyFeedback = "Copy to Clipboard"
	CopyCopied  CopyFeedback = "Copied!"
	CopyFailed  CopyFeedback = "Failed to copy"
)

// String returns the string representation of CopyFeedback
func (c CopyFeedback) String() string {
	return string(c)
}

// State is a snapshot of everything a view needs to draw the session.
type State struct {
	Input     string
	VideoID   string
	Thumbnail string

	Status  Status
	Summary string
	Error   string

	Copy CopyFeedback

	// Seq identifies the submission the Status belongs to. Zero before the
	// first submission.
	Seq uint64
}

// ShowThumbnail reports whether the preview image should be displayed:
// there is one, and no summary or spinner is occupying the view.
func (st State) ShowThumbnail() bool {
	return st.Thumbnail != "" && st.Status != StatusLoading && st.Summary == ""
}
