// Package format turns summary text into styled lines for display.
package format

import (
	"regexp"
	"strings"
)

var timestampPattern = regexp.MustCompile(`\[\d+:\d+\]|\(\d+:\d+\)`)

const bulletPrefix = "- "

// Span is a run of text within a line.
type Span struct {
	Text      string
	Timestamp bool
}

// Line is one line of a summary.
type Line struct {
	Indented bool
	Spans    []Span
}

// Text joins the spans back into the source line.
func (l Line) Text() string {
	var b strings.Builder
	for _, s := range l.Spans {
		b.WriteString(s.Text)
	}
	return b.String()
}

// Summary splits text into lines and marks bullet lines and timestamp markers.
// It has no side effects; calling it twice on the same text gives equal results.
func Summary(text string) []Line {
	raw := strings.Split(text, "\n")
	lines := make([]Line, 0, len(raw))
	for _, l := range raw {
		lines = append(lines, parseLine(l))
	}
	return lines
}

func parseLine(line string) Line {
	out := Line{
		Indented: strings.HasPrefix(strings.TrimSpace(line), bulletPrefix),
		Spans:    []Span{},
	}

	last := 0
	for _, loc := range timestampPattern.FindAllStringIndex(line, -1) {
		if loc[0] > last {
			out.Spans = append(out.Spans, Span{Text: line[last:loc[0]]})
		}
		out.Spans = append(out.Spans, Span{Text: line[loc[0]:loc[1]], Timestamp: true})
		last = loc[1]
	}
	if last < len(line) {
		out.Spans = append(out.Spans, Span{Text: line[last:]})
	}
	return out
}
