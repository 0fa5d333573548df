package persistence

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"

	"ai-dvsum/internal/models"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// FilePersister implements pipeline.Stage for exporting summaries to files.
type FilePersister struct {
	dir string
}

// New creates a FilePersister that writes into dir.
func New(dir string) *FilePersister {
	return &FilePersister{dir: dir}
}

// Dir returns the export directory.
func (fp *FilePersister) Dir() string {
	return fp.dir
}

// Filename returns the file a summary is exported to. Summaries are keyed by
// video id; when there is none the URL is base64 encoded instead.
func Filename(s models.Summary) string {
	if s.VideoID != "" && filepath.Base(s.VideoID) == s.VideoID {
		return s.VideoID + ".md"
	}
	return base64.URLEncoding.EncodeToString([]byte(s.URL)) + ".md"
}

// Save writes one successful summary and returns the path written.
func (fp *FilePersister) Save(s models.Summary) (path string, err error) {
	if s.Err != nil {
		return "", fmt.Errorf("refusing to save failed summary: %w", s.Err)
	}
	if err := os.MkdirAll(fp.dir, 0755); err != nil {
		return "", err
	}

	path = filepath.Join(fp.dir, Filename(s))
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer func() {
		err = multierr.Append(err, f.Close())
		if err != nil {
			path = ""
		}
	}()

	_, err = fmt.Fprintf(f, "# %s\n\n%s\n", s.URL, s.Text)
	return path, err
}

// Execute saves every successful summary received on input, then forwards
// each summary, saved or not, to output.
func (fp *FilePersister) Execute(ctx context.Context, input <-chan any, output chan<- any, logger *zap.Logger) error {
	if err := os.MkdirAll(fp.dir, 0755); err != nil {
		return err
	}

	successCount := 0
	failCount := 0

	for item := range input {
		select {
		case <-ctx.Done():
			logger.Warn("export interrupted", zap.Error(ctx.Err()))
			return ctx.Err()
		default:
		}

		s, ok := item.(models.Summary)
		if !ok {
			logger.Warn("invalid input type, expected Summary", zap.Any("type", item))
			continue
		}

		if s.Err != nil {
			failCount++
			output <- s
			continue
		}

		path, err := fp.Save(s)
		if err != nil {
			logger.Warn("export failed",
				zap.String("url", s.URL),
				zap.Error(err))
			s.Err = fmt.Errorf("export failed: %w", err)
			failCount++
			output <- s
			continue
		}

		logger.Debug("exported summary", zap.String("path", path))
		successCount++
		output <- s
	}

	logger.Info("export statistics",
		zap.Int("successful", successCount),
		zap.Int("failed", failCount))
	return nil
}
