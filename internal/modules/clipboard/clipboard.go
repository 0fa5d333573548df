// Package clipboard places text on the system clipboard.
package clipboard

import (
	"errors"
	"fmt"
	"sync"

	xclipboard "golang.design/x/clipboard"
)

// ErrUnavailable is returned when the environment has no usable clipboard,
// e.g. a headless Linux box without X11.
var ErrUnavailable = errors.New("clipboard unavailable")

var (
	initOnce sync.Once
	initErr  error
)

// System writes to the OS clipboard.
type System struct{}

// New returns the system clipboard, or ErrUnavailable if it cannot be used.
func New() (*System, error) {
	initOnce.Do(func() {
		initErr = xclipboard.Init()
	})
	if initErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, initErr)
	}
	return &System{}, nil
}

// WriteText replaces the clipboard contents with text and reads it back to
// confirm the write took effect.
func (s *System) WriteText(text string) error {
	xclipboard.Write(xclipboard.FmtText, []byte(text))
	if got := string(xclipboard.Read(xclipboard.FmtText)); got != text {
		return errors.New("clipboard write was not applied")
	}
	return nil
}
