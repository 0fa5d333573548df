package cmd

import (
	"bufio"
	"fmt"
	"strings"
	"sync"

	"ai-dvsum/internal/modules/session"

	"github.com/spf13/cobra"
)

const interactiveHelp = `Paste a YouTube URL and press Enter to summarize it.
Commands: copy, status, help, quit`

func newInteractiveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "interactive",
		Aliases: []string{"i"},
		Short:   "Summarize videos one after another from a prompt",
		Long: `Reads URLs from standard input. Each URL is submitted right away; entering
a new URL before the previous summary arrives replaces it, and the late
result is ignored.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			sess := a.session(out, true)
			v := newView(out)
			sess.OnChange(v.update)

			fmt.Fprintln(out, interactiveHelp)

			var inflight sync.WaitGroup
			defer inflight.Wait()

			lines := make(chan string)
			done := make(chan struct{})
			defer close(done)
			go func() {
				defer close(lines)
				scanner := bufio.NewScanner(cmd.InOrStdin())
				for scanner.Scan() {
					select {
					case lines <- scanner.Text():
					case <-done:
						return
					}
				}
			}()

			for {
				var line string
				select {
				case <-ctx.Done():
					return nil
				case l, ok := <-lines:
					if !ok {
						return nil
					}
					line = strings.TrimSpace(l)
				}

				switch strings.ToLower(line) {
				case "":
					continue
				case "quit", "exit":
					return nil
				case "help":
					fmt.Fprintln(out, interactiveHelp)
				case "status":
					st := sess.State()
					fmt.Fprintf(out, "status: %s, copy: %s\n", st.Status, st.Copy)
				case "copy":
					if st := sess.State(); st.Status != session.StatusSucceeded {
						fmt.Fprintln(out, "Nothing to copy yet.")
						continue
					}
					sess.Copy()
				default:
					inflight.Add(1)
					go func(raw string) {
						defer inflight.Done()
						sess.SubmitInput(ctx, raw)
					}(line)
				}
			}
		},
	}
}
