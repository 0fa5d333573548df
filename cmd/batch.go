package cmd

import (
	"fmt"
	"os"
	"sync"
	"time"

	"ai-dvsum/internal/models"
	"ai-dvsum/internal/modules/filereader"
	"ai-dvsum/internal/modules/persistence"
	"ai-dvsum/internal/modules/pipeline"
	"ai-dvsum/internal/modules/summarizer"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newBatchCmd(a *app) *cobra.Command {
	var listPath string

	c := &cobra.Command{
		Use:   "batch",
		Short: "Summarize every URL in a file and save the summaries",
		Long: `Reads YouTube URLs from a file (one per line, '#' comments allowed, CSV
files use the first column) and writes each summary to <output>/<video id>.md.
A video listed more than once is summarized once.`,
		Example: `  dvsum batch --file talks.txt --output ./summaries --workers 4`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if _, err := os.Stat(listPath); err != nil {
				return fmt.Errorf("read url list: %w", err)
			}
			if a.cfg.Batch.Workers < 1 {
				return fmt.Errorf("workers must be at least 1, got %d", a.cfg.Batch.Workers)
			}

			a.logger.Info("starting batch",
				zap.String("file", listPath),
				zap.String("output", a.cfg.Batch.OutputDir),
				zap.Int("workers", a.cfg.Batch.Workers))

			p := pipeline.New(a.logger)
			p.AddStage(filereader.New(listPath))
			p.AddStage(a.client(summarizer.WithWorkers(a.cfg.Batch.Workers)))
			persister := persistence.New(a.cfg.Batch.OutputDir)
			p.AddStage(persister)

			var mu sync.Mutex
			var results []models.Summary
			p.OnOutput(func(item any) {
				if s, ok := item.(models.Summary); ok {
					mu.Lock()
					results = append(results, s)
					mu.Unlock()
				}
			})

			input := make(chan any)
			close(input)

			start := time.Now()
			if err := p.Run(ctx, input); err != nil {
				return fmt.Errorf("batch interrupted: %w", err)
			}

			mu.Lock()
			defer mu.Unlock()
			return report(cmd, results, persister.Dir(), time.Since(start))
		},
	}

	c.Flags().StringVarP(&listPath, "file", "f", "", "File listing YouTube URLs")
	c.Flags().StringVarP(&a.cfg.Batch.OutputDir, "output", "o", a.cfg.Batch.OutputDir, "Directory to write summaries to")
	c.Flags().IntVarP(&a.cfg.Batch.Workers, "workers", "w", a.cfg.Batch.Workers, "Number of requests to run at once")
	c.MarkFlagRequired("file")
	return c
}

func report(cmd *cobra.Command, results []models.Summary, dir string, elapsed time.Duration) error {
	out := cmd.OutOrStdout()
	failed := 0
	for _, s := range results {
		if s.OK() {
			fmt.Fprintf(out, "ok    %s -> %s\n", s.URL, persistence.Filename(s))
			continue
		}
		failed++
		fmt.Fprintf(out, "fail  %s: %s\n", s.URL, displayMessage(s.Err))
	}
	fmt.Fprintf(out, "%d summarized, %d failed in %s (output: %s)\n",
		len(results)-failed, failed, elapsed.Round(time.Millisecond), dir)

	if failed > 0 {
		return errReported
	}
	return nil
}
