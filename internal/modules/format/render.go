package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const indent = "    "

// Renderer writes formatted output to a terminal. Colors are dropped
// automatically when the writer is not a terminal.
type Renderer struct {
	out       io.Writer
	timestamp lipgloss.Style
	heading   lipgloss.Style
	errorText lipgloss.Style
	muted     lipgloss.Style
}

// NewRenderer creates a Renderer for w.
func NewRenderer(w io.Writer) *Renderer {
	r := lipgloss.NewRenderer(w)
	return &Renderer{
		out:       w,
		timestamp: r.NewStyle().Foreground(lipgloss.Color("33")).Bold(true),
		heading:   r.NewStyle().Bold(true),
		errorText: r.NewStyle().Foreground(lipgloss.Color("160")),
		muted:     r.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

// Lines writes each line on its own row, indenting bullets and highlighting timestamps.
func (r *Renderer) Lines(lines []Line) error {
	for _, l := range lines {
		var b strings.Builder
		if l.Indented {
			b.WriteString(indent)
		}
		for _, s := range l.Spans {
			if s.Timestamp {
				b.WriteString(r.timestamp.Render(s.Text))
				continue
			}
			b.WriteString(s.Text)
		}
		b.WriteByte('\n')
		if _, err := io.WriteString(r.out, b.String()); err != nil {
			return err
		}
	}
	return nil
}

// Summary formats and writes a summary under a heading.
func (r *Renderer) Summary(text string) error {
	if err := r.Heading("Video Summary"); err != nil {
		return err
	}
	return r.Lines(Summary(text))
}

// Heading writes a bold title line.
func (r *Renderer) Heading(title string) error {
	_, err := fmt.Fprintln(r.out, r.heading.Render(title))
	return err
}

// Error writes a user facing error message.
func (r *Renderer) Error(msg string) error {
	_, err := fmt.Fprintln(r.out, r.errorText.Render(msg))
	return err
}

// Note writes a dimmed informational line.
func (r *Renderer) Note(format string, args ...any) error {
	_, err := fmt.Fprintln(r.out, r.muted.Render(fmt.Sprintf(format, args...)))
	return err
}
