package persistence

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"ai-dvsum/internal/models"

	"go.uber.org/zap/zaptest"
)

func TestFilePersister_Execute(t *testing.T) {
	logger := zaptest.NewLogger(t)

	tests := []struct {
		name        string
		summaries   []models.Summary
		expectFiles int
	}{
		{
			name: "successful export",
			summaries: []models.Summary{
				{URL: "https://youtu.be/aaaaaaaaaaa", VideoID: "aaaaaaaaaaa", Text: "Intro\n[0:05] point"},
			},
			expectFiles: 1,
		},
		{
			name: "with failed summary",
			summaries: []models.Summary{
				{URL: "https://youtu.be/aaaaaaaaaaa", VideoID: "aaaaaaaaaaa", Err: fmt.Errorf("quota exceeded")},
				{URL: "https://youtu.be/bbbbbbbbbbb", VideoID: "bbbbbbbbbbb", Text: "ok"},
			},
			expectFiles: 1,
		},
		{
			name:        "empty input",
			summaries:   []models.Summary{},
			expectFiles: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := filepath.Join(t.TempDir(), "out")
			fp := New(dir)

			input := make(chan any, len(tt.summaries))
			for _, s := range tt.summaries {
				input <- s
			}
			close(input)
			output := make(chan any, len(tt.summaries))

			if err := fp.Execute(context.Background(), input, output, logger); err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			close(output)

			forwarded := 0
			for range output {
				forwarded++
			}
			if forwarded != len(tt.summaries) {
				t.Errorf("expected %d forwarded summaries, got %d", len(tt.summaries), forwarded)
			}

			files, _ := filepath.Glob(filepath.Join(dir, "*.md"))
			if len(files) != tt.expectFiles {
				t.Errorf("expected %d files, got %d", tt.expectFiles, len(files))
			}
		})
	}
}

func TestFilePersister_Save(t *testing.T) {
	fp := New(t.TempDir())

	path, err := fp.Save(models.Summary{URL: "https://youtu.be/aaaaaaaaaaa", VideoID: "aaaaaaaaaaa", Text: "- [1:00] done"})
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if filepath.Base(path) != "aaaaaaaaaaa.md" {
		t.Errorf("unexpected file name %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "https://youtu.be/aaaaaaaaaaa") || !strings.Contains(string(data), "- [1:00] done") {
		t.Errorf("unexpected file content %q", data)
	}

	if _, err := fp.Save(models.Summary{URL: "x", Err: fmt.Errorf("boom")}); err == nil {
		t.Errorf("expected error saving failed summary")
	}
}

func TestFilename(t *testing.T) {
	if got := Filename(models.Summary{VideoID: "abc"}); got != "abc.md" {
		t.Errorf("Filename() = %s", got)
	}
	if got := Filename(models.Summary{URL: "https://x/y", VideoID: "../evil"}); strings.Contains(got, "/") {
		t.Errorf("Filename() escaped directory: %s", got)
	}
}
