// Package session drives one summarization request at a time: it holds the
// entered URL and its derived preview, gates submission on validation, and
// moves through Idle, Loading, Succeeded and Failed.
//
// Submissions may overlap. Every submission takes a new sequence number and
// only the result tagged with the latest number is applied; older results are
// dropped when they arrive. Older requests are not cancelled.
package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"ai-dvsum/internal/models"
	"ai-dvsum/internal/modules/summarizer"
	"ai-dvsum/internal/modules/youtube"

	"go.uber.org/zap"
)

// DefaultCopyResetDelay is how long the copy button shows "Copied!".
const DefaultCopyResetDelay = 2 * time.Second

// Summarizer performs the single outbound request for a URL.
type Summarizer interface {
	Summarize(ctx context.Context, videoURL string) models.Summary
}

// Clipboard receives copied summaries.
type Clipboard interface {
	WriteText(text string) error
}

// Session is safe for concurrent use.
type Session struct {
	summarizer     Summarizer
	clipboard      Clipboard
	logger         *zap.Logger
	copyResetDelay time.Duration

	mu        sync.Mutex
	state     State
	seq       uint64
	version   uint64
	listeners []func(State)

	// notifyMu serializes listener calls; delivered is the newest version
	// handed to listeners.
	notifyMu  sync.Mutex
	delivered uint64
}

// Option customizes a Session.
type Option func(*Session)

// WithClipboard enables Copy. Without one Copy does nothing.
func WithClipboard(cb Clipboard) Option {
	return func(s *Session) {
		s.clipboard = cb
	}
}

// WithCopyResetDelay changes how long "Copied!" is shown.
func WithCopyResetDelay(d time.Duration) Option {
	return func(s *Session) {
		if d > 0 {
			s.copyResetDelay = d
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// New creates an idle Session that sends requests through sum.
func New(sum Summarizer, opts ...Option) *Session {
	s := &Session{
		summarizer:     sum,
		logger:         zap.NewNop(),
		copyResetDelay: DefaultCopyResetDelay,
		state: State{
			Status: StatusIdle,
			Copy:   CopyDefault,
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// OnChange registers fn to receive a snapshot after every state change.
// Listeners are called one at a time, in the order the changes were made,
// without the session lock held. A snapshot that is older than one already
// delivered is skipped. fn must not change the session.
func (s *Session) OnChange(fn func(State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// State returns the current snapshot.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// SetInput replaces the entered URL and recomputes the video id and thumbnail.
func (s *Session) SetInput(raw string) State {
	s.mu.Lock()
	s.setInputLocked(raw)
	snap, v := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snap, v)
	return snap
}

func (s *Session) setInputLocked(raw string) {
	s.state.Input = raw
	s.state.VideoID = youtube.ExtractVideoID(raw)
	s.state.Thumbnail = youtube.ThumbnailURL(s.state.VideoID)
}

// Submit validates the current input and, if it passes, sends exactly one
// request and blocks until it resolves. The returned snapshot is the state
// after this submission finished; if a later submission was made in the
// meantime, this submission's result is discarded and the current state is
// returned instead.
func (s *Session) Submit(ctx context.Context) State {
	s.mu.Lock()
	return s.submitLocked(ctx)
}

// SubmitInput replaces the entered URL and submits it in one step, so that
// concurrent callers each submit the URL they passed.
func (s *Session) SubmitInput(ctx context.Context, raw string) State {
	s.mu.Lock()
	s.setInputLocked(raw)
	return s.submitLocked(ctx)
}

// submitLocked is entered with s.mu held and releases it.
func (s *Session) submitLocked(ctx context.Context) State {
	s.seq++
	token := s.seq
	input := s.state.Input

	s.state.Seq = token
	s.state.Summary = ""
	s.state.Error = ""
	s.state.Copy = CopyDefault

	if err := youtube.Validate(input); err != nil {
		s.state.Status = StatusFailed
		s.state.Error = youtube.Message(err)
		snap, v := s.snapshotLocked()
		s.mu.Unlock()

		s.logger.Info("input rejected", zap.String("input", input), zap.Error(err))
		s.notify(snap, v)
		return snap
	}

	s.state.Status = StatusLoading
	snap, v := s.snapshotLocked()
	s.mu.Unlock()
	s.notify(snap, v)

	s.logger.Debug("submission started", zap.Uint64("seq", token), zap.String("video_url", input))
	result := s.request(ctx, input)

	s.mu.Lock()
	if token != s.seq {
		current := s.state
		s.mu.Unlock()
		s.logger.Debug("discarding stale result",
			zap.Uint64("seq", token),
			zap.Uint64("latest", current.Seq),
			zap.String("request_id", result.RequestID))
		return current
	}

	if result.Err != nil {
		s.state.Status = StatusFailed
		s.state.Error = summarizer.Message(result.Err)
	} else {
		s.state.Status = StatusSucceeded
		s.state.Summary = result.Text
	}
	snap, v = s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snap, v)
	return snap
}

// request calls the summarizer and turns a panic into a failed result so
// Loading is always left.
func (s *Session) request(ctx context.Context, videoURL string) (result models.Summary) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("summarizer panicked", zap.Any("panic", r))
			result = models.Summary{URL: videoURL, Err: fmt.Errorf("summarizer panicked: %v", r)}
		}
	}()
	return s.summarizer.Summarize(ctx, videoURL)
}

// Copy puts the current summary on the clipboard. It does nothing when there
// is no summary or no clipboard. After a successful copy the feedback returns
// to CopyDefault once the reset delay has passed; that timer is never
// cancelled. A failed copy stays CopyFailed until the next submission. If
// another submission starts while the clipboard is being written, the
// feedback is dropped since the summary it belongs to is gone.
func (s *Session) Copy() CopyFeedback {
	s.mu.Lock()
	text := s.state.Summary
	seq := s.state.Seq
	if s.clipboard == nil || s.state.Status != StatusSucceeded || text == "" {
		fb := s.state.Copy
		s.mu.Unlock()
		return fb
	}
	s.mu.Unlock()

	err := s.clipboard.WriteText(text)
	if err != nil {
		s.logger.Warn("copy to clipboard failed", zap.Error(err))
	}

	s.mu.Lock()
	if s.state.Seq != seq {
		fb := s.state.Copy
		s.mu.Unlock()
		s.logger.Debug("discarding copy feedback for replaced summary", zap.Uint64("seq", seq))
		return fb
	}
	if err != nil {
		s.state.Copy = CopyFailed
	} else {
		s.state.Copy = CopyCopied
		time.AfterFunc(s.copyResetDelay, s.resetCopy)
	}
	snap, v := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snap, v)
	return snap.Copy
}

func (s *Session) resetCopy() {
	s.mu.Lock()
	s.state.Copy = CopyDefault
	snap, v := s.snapshotLocked()
	s.mu.Unlock()
	s.notify(snap, v)
}

// snapshotLocked records a change and returns it with its version.
func (s *Session) snapshotLocked() (State, uint64) {
	s.version++
	return s.state, s.version
}

func (s *Session) notify(snap State, version uint64) {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()
	if version <= s.delivered {
		return
	}
	s.delivered = version

	s.mu.Lock()
	listeners := make([]func(State), len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(snap)
	}
}
