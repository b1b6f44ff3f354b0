package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"car_finder/internal/domain"
)

func feedbackCommand(pref domain.Preference) *cobra.Command {
	return &cobra.Command{
		Use:   fmt.Sprintf("%s <car-id>", pref),
		Short: fmt.Sprintf("Sends a %q signal for a listing.", pref),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			carID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid car id %q: %w", args[0], err)
			}

			ctx := cmd.Context()

			a, err := newApp(ctx, cmd.OutOrStdout(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer a.Close()

			msg, err := a.submitter.Submit(ctx, carID, pref)
			if err != nil {
				return err
			}

			a.renderer.Feedback(carID, pref, msg)
			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(feedbackCommand(domain.PreferenceLike))
	rootCmd.AddCommand(feedbackCommand(domain.PreferenceDislike))
}
