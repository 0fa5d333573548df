package cmd

import (
	"io"
	"sync"

	"ai-dvsum/internal/modules/format"
	"ai-dvsum/internal/modules/session"
)

const loadingNote = "Processing... extracting transcript and generating summary. This may take up to 30 seconds for longer videos."

// view prints session changes as they happen. Updates may arrive from
// several goroutines; a snapshot from an older submission than the one
// already shown is ignored.
type view struct {
	mu   sync.Mutex
	r    *format.Renderer
	last session.State
}

func newView(w io.Writer) *view {
	return &view{
		r:    format.NewRenderer(w),
		last: session.State{Status: session.StatusIdle, Copy: session.CopyDefault},
	}
}

func (v *view) update(st session.State) {
	v.mu.Lock()
	defer v.mu.Unlock()

	prev := v.last
	if st.Seq < prev.Seq {
		return
	}
	v.last = st

	if st.Thumbnail != prev.Thumbnail && st.ShowThumbnail() {
		v.r.Note("Thumbnail: %s", st.Thumbnail)
	}

	if st.Seq != prev.Seq || st.Status != prev.Status {
		switch st.Status {
		case session.StatusLoading:
			v.r.Note(loadingNote)
		case session.StatusSucceeded:
			v.r.Summary(st.Summary)
		case session.StatusFailed:
			v.r.Error(st.Error)
		}
	}

	if st.Copy != prev.Copy && st.Copy != session.CopyDefault {
		v.r.Note("%s", st.Copy)
	}
}
