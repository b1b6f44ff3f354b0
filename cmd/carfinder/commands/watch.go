package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"car_finder/internal/scheduler"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Refreshes and shows the listings on an interval until interrupted.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		a, err := newApp(ctx, cmd.OutOrStdout(), cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer a.Close()

		unsubscribeListings := a.renderer.FollowListings(a.store, a.voteLookup(ctx))
		defer unsubscribeListings()

		sched := scheduler.NewScheduler(a.store, a.cfg.Watch.Interval, a.cfg.API.Timeout, a.logger)
		if err := sched.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
