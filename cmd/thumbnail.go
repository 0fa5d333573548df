package cmd

import (
	"fmt"

	"ai-dvsum/internal/modules/youtube"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newThumbnailCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "thumbnail <youtube-url>",
		Short: "Show the video id and thumbnail derived from a URL",
		Long: `Prints the preview a URL would get without contacting any server. The
preview is best effort: a URL can have a thumbnail and still be rejected
by summarize.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			raw := args[0]

			id := youtube.ExtractVideoID(raw)
			if id == "" {
				fmt.Fprintln(out, "No video id found.")
			} else {
				fmt.Fprintf(out, "Video ID:  %s\nThumbnail: %s\n", id, youtube.ThumbnailURL(id))
			}

			if err := youtube.Validate(raw); err != nil {
				a.logger.Debug("thumbnail for unsubmittable url", zap.String("url", raw))
				fmt.Fprintf(out, "Submittable: no (%s)\n", youtube.Message(err))
				return nil
			}
			fmt.Fprintln(out, "Submittable: yes")
			return nil
		},
	}
}
