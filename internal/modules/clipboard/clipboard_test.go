package clipboard

import (
	"errors"
	"testing"
)

func TestSystem_WriteText(t *testing.T) {
	cb, err := New()
	if errors.Is(err, ErrUnavailable) {
		t.Skipf("no clipboard in this environment: %v", err)
	}
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if err := cb.WriteText("Intro\n[0:05] point one"); err != nil {
		t.Errorf("WriteText() error = %v", err)
	}
}
