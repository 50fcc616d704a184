package main

import (
	"fmt"

	apperrors "github.com/harunnryd/karte/internal/errors"

	"github.com/spf13/cobra"
)

var insightsCmd = &cobra.Command{
	Use:   "insights <hcp-id>",
	Short: "Generate engagement insights for an HCP",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		hcpID, err := parseID(args[0])
		if err != nil {
			return err
		}

		actions, err := newActions()
		if err != nil {
			return err
		}

		insights, err := actions.Client.GenerateInsights(cmd.Context(), hcpID)
		if err != nil {
			return fmt.Errorf("%s", apperrors.Describe(err))
		}

		fmt.Println(insights)
		return nil
	},
}

var followupCmd = &cobra.Command{
	Use:   "followup <interaction-id> <date>",
	Short: "Schedule a follow-up for an interaction",
	Long:  `Mark an interaction for follow-up on the given date (YYYY-MM-DD).`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		actions, err := newActions()
		if err != nil {
			return err
		}

		message, err := actions.Client.ScheduleFollowup(cmd.Context(), id, args[1])
		if err != nil {
			return fmt.Errorf("%s", apperrors.Describe(err))
		}

		fmt.Println(message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(insightsCmd)
	rootCmd.AddCommand(followupCmd)
}
