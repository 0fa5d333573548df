package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPingCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Check that the summarization backend is reachable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client := a.client()
			msg, err := client.Greeting(cmd.Context())
			if err != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "%s is not reachable: %s\n", client.BaseURL(), displayMessage(err))
				return errReported
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", client.BaseURL(), msg)
			return nil
		},
	}
}
