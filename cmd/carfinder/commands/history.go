package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"car_finder/internal/domain"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Shows the last archived scrape run and listing snapshot.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		a, err := newApp(ctx, cmd.OutOrStdout(), cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer a.Close()

		if a.db == nil {
			return errors.New("history needs database.enabled in the config")
		}

		run, err := a.runs.Latest(ctx)
		if err != nil {
			return fmt.Errorf("load last scrape run: %w", err)
		}
		a.renderer.Run(run)

		cars, err := a.archive.LatestSnapshot(ctx)
		if err != nil {
			return fmt.Errorf("load last snapshot: %w", err)
		}

		st := domain.ListingState{Listings: cars}
		a.renderer.Listings(st, a.voteLookup(ctx)(cars))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
}
