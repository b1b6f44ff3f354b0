package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"car_finder/internal/domain"
)

var scrapeCmd = &cobra.Command{
	Use:   "scrape",
	Short: "Starts a backend scrape, follows its status and shows the refreshed listings.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		a, err := newApp(ctx, cmd.OutOrStdout(), cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer a.Close()

		unsubscribe := a.renderer.FollowSession(a.orch)
		defer unsubscribe()

		if err := a.orch.Trigger(ctx); err != nil {
			return errReported
		}

		waitCtx, cancel := context.WithTimeout(ctx, a.cfg.Scrape.MaxWait)
		defer cancel()

		if err := a.orch.Wait(waitCtx); err != nil {
			a.orch.Stop()
			return fmt.Errorf("wait for scrape: %w", err)
		}

		sess := a.orch.Session()
		// The store refreshes only after a terminal job status.
		if !a.store.State().Loading {
			a.renderListings(ctx)
		}
		if sess.Phase != domain.PhaseCompleted {
			return errReported
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(scrapeCmd)
}
