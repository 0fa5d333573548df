package filereader

import (
	"bufio"
	"context"
	"os"
	"strings"

	"ai-dvsum/internal/modules/youtube"

	"go.uber.org/zap"
)

// FileReader implements pipeline.Stage by emitting the video URLs listed in
// a file, one per line. Blank lines and lines starting with '#' are skipped.
// A single leading header line ("url", "urls" or "video_url") is ignored, as
// is anything after the first comma so exported CSV files work as is.
// A URL naming a video already listed is skipped, so every video is
// summarized and exported once.
type FileReader struct {
	path string
}

// New creates a new FileReader
func New(path string) *FileReader {
	return &FileReader{path: path}
}

// ReadAll returns every URL in the file.
func (fr *FileReader) ReadAll(ctx context.Context, logger *zap.Logger) ([]string, error) {
	out := make(chan any)
	urls := []string{}
	done := make(chan struct{})
	go func() {
		defer close(done)
		for u := range out {
			urls = append(urls, u.(string))
		}
	}()

	err := fr.Execute(ctx, nil, out, logger)
	close(out)
	<-done
	return urls, err
}

// Execute sends each URL in the file to output. input is ignored.
func (fr *FileReader) Execute(ctx context.Context, input <-chan any, output chan<- any, logger *zap.Logger) error {
	file, err := os.Open(fr.path)
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	first := true
	urlCount := 0
	seen := make(map[string]string)

	for scanner.Scan() {
		select {
		case <-ctx.Done():
			logger.Warn("file reading interrupted", zap.Error(ctx.Err()))
			return ctx.Err()
		default:
		}

		line := strings.TrimSpace(scanner.Text())
		if i := strings.IndexByte(line, ','); i != -1 {
			line = strings.TrimSpace(line[:i])
		}
		isFirst := first
		first = false

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if isFirst && isHeader(line) {
			continue
		}

		key := youtube.ExtractVideoID(line)
		if key == "" {
			key = line
		}
		if prev, ok := seen[key]; ok {
			logger.Warn("skipping duplicate video",
				zap.String("url", line),
				zap.String("first_listed_as", prev))
			continue
		}
		seen[key] = line

		logger.Debug("read URL", zap.String("url", line))
		output <- line
		urlCount++
	}

	if err := scanner.Err(); err != nil {
		return err
	}

	logger.Info("finished reading URLs", zap.Int("total_urls", urlCount))
	return nil
}

func isHeader(line string) bool {
	switch strings.ToLower(line) {
	case "url", "urls", "video_url":
		return true
	}
	return false
}
