package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"ai-dvsum/internal/modules/clipboard"
	"ai-dvsum/internal/modules/config"
	"ai-dvsum/internal/modules/session"
	"ai-dvsum/internal/modules/summarizer"
	"ai-dvsum/internal/modules/youtube"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// errReported means the failure was already shown to the user.
var errReported = errors.New("failure already reported")

// app carries what every command needs.
type app struct {
	cfg          *config.Config
	logger       *zap.Logger
	level        zap.AtomicLevel
	newClipboard func() (session.Clipboard, error)
}

func systemClipboard() (session.Clipboard, error) {
	cb, err := clipboard.New()
	if err != nil {
		return nil, err
	}
	return cb, nil
}

// Execute runs the command line and exits non-zero on failure.
func Execute(ctx context.Context, cfg *config.Config, logger *zap.Logger, level zap.AtomicLevel) {
	a := &app{
		cfg:          cfg,
		logger:       logger,
		level:        level,
		newClipboard: systemClipboard,
	}
	if err := newRootCmd(a).ExecuteContext(ctx); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		logger.Debug("execution failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "dvsum",
		Short: "Summarize YouTube videos with timestamps",
		Long: `AI-DVSum sends a YouTube video URL to a summarization backend and prints
the summary it returns, highlighting [mm:ss] timestamps.

The backend address comes from DVSUM_API_URL (or NEXT_PUBLIC_API_URL) and
defaults to ` + config.DefaultBaseURL + `.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}
			lvl, err := zapcore.ParseLevel(a.cfg.Log.Level)
			if err != nil {
				return err
			}
			a.level.SetLevel(lvl)
			a.logger.Debug("configuration loaded",
				zap.String("api_url", a.cfg.API.BaseURL),
				zap.Duration("timeout", a.cfg.API.Timeout))
			return nil
		},
	}

	a.cfg.BindFlags(root.PersistentFlags())

	root.AddCommand(
		newSummarizeCmd(a),
		newInteractiveCmd(a),
		newBatchCmd(a),
		newThumbnailCmd(a),
		newPingCmd(a),
	)
	return root
}

func (a *app) client(opts ...summarizer.Option) *summarizer.Client {
	return summarizer.New(a.cfg.API.BaseURL, a.cfg.API.Timeout, a.logger, opts...)
}

// session builds a Session; the clipboard is only opened when withClipboard is set.
func (a *app) session(out io.Writer, withClipboard bool) *session.Session {
	opts := []session.Option{
		session.WithLogger(a.logger),
		session.WithCopyResetDelay(a.cfg.Copy.ResetDelay),
	}
	if withClipboard {
		cb, err := a.newClipboard()
		if err != nil {
			a.logger.Warn("clipboard not available, copy disabled", zap.Error(err))
			fmt.Fprintln(out, "Clipboard not available; copy disabled.")
		} else {
			opts = append(opts, session.WithClipboard(cb))
		}
	}
	return session.New(a.client(), opts...)
}

// displayMessage turns any error from this program into user facing text.
func displayMessage(err error) string {
	var apiErr *summarizer.APIError
	switch {
	case errors.Is(err, youtube.ErrEmptyURL), errors.Is(err, youtube.ErrInvalidURL):
		return youtube.Message(err)
	case errors.As(err, &apiErr), errors.Is(err, summarizer.ErrTransport):
		return summarizer.Message(err)
	case err != nil:
		return err.Error()
	}
	return ""
}
