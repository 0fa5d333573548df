package cmd

import (
	"strings"
	"testing"

	"ai-dvsum/internal/modules/session"
)

func TestView_IgnoresOlderSubmission(t *testing.T) {
	out := &syncBuffer{}
	v := newView(out)

	v.update(session.State{Seq: 2, Status: session.StatusSucceeded, Summary: "newest", Copy: session.CopyDefault})
	v.update(session.State{Seq: 1, Status: session.StatusLoading, Copy: session.CopyDefault})

	got := out.String()
	if !strings.Contains(got, "newest") {
		t.Errorf("expected latest summary:\n%s", got)
	}
	if strings.Contains(got, "Processing...") {
		t.Errorf("older loading state was printed:\n%s", got)
	}
	if v.last.Seq != 2 {
		t.Errorf("view kept seq %d, want 2", v.last.Seq)
	}
}
