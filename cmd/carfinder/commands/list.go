package commands

import (
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Fetches and shows the current car listings.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		a, err := newApp(ctx, cmd.OutOrStdout(), cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer a.Close()

		refreshErr := a.store.Refresh(ctx)
		a.renderListings(ctx)
		if refreshErr != nil {
			return errReported
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
