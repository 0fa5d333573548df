package cmd

import (
	"fmt"

	"ai-dvsum/internal/models"
	"ai-dvsum/internal/modules/persistence"
	"ai-dvsum/internal/modules/session"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newSummarizeCmd(a *app) *cobra.Command {
	var (
		copyResult bool
		outputDir  string
	)

	c := &cobra.Command{
		Use:   "summarize <youtube-url>",
		Short: "Summarize a single YouTube video",
		Long: `Submits one URL, waits for its summary and prints it.

With --copy the summary is also put on the clipboard. On X11 the clipboard
contents are served by the process that copied them, so they can be lost
once dvsum exits; use the interactive command to keep them available.`,
		Example: `  dvsum summarize https://www.youtube.com/watch?v=dQw4w9WgXcQ
  dvsum summarize https://youtu.be/dQw4w9WgXcQ --copy --output ./summaries`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			sess := a.session(out, copyResult)
			v := newView(out)
			sess.OnChange(v.update)

			sess.SetInput(args[0])
			st := sess.Submit(cmd.Context())
			if st.Status != session.StatusSucceeded {
				return errReported
			}

			if outputDir != "" {
				path, err := persistence.New(outputDir).Save(models.Summary{
					URL:     st.Input,
					VideoID: st.VideoID,
					Text:    st.Summary,
				})
				if err != nil {
					return fmt.Errorf("export summary: %w", err)
				}
				a.logger.Info("summary exported", zap.String("path", path))
				fmt.Fprintf(out, "Saved to %s\n", path)
			}

			if copyResult {
				sess.Copy()
			}
			return nil
		},
	}

	c.Flags().BoolVar(&copyResult, "copy", false, "Copy the summary to the clipboard (on X11 it may not outlive the process)")
	c.Flags().StringVarP(&outputDir, "output", "o", "", "Also save the summary as markdown in this directory")
	return c
}
