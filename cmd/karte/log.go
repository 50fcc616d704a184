package main

import (
	"fmt"

	apperrors "github.com/harunnryd/karte/internal/errors"
	"github.com/harunnryd/karte/internal/formatter"

	"github.com/spf13/cobra"
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Log an interaction from the command line",
	Long:  `Fill the interaction form with flags and submit it in one shot. Unset fields keep their defaults.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		actions, err := newActions()
		if err != nil {
			return err
		}

		if err := applyFieldFlags(cmd, actions); err != nil {
			return fmt.Errorf("%s", apperrors.Describe(err))
		}

		rec, err := actions.SubmitDraft(cmd.Context())
		if err != nil {
			return fmt.Errorf("%s", apperrors.Describe(err))
		}

		fmt.Printf("✓ Interaction logged (ID: %d)\n", rec.ID)
		fmt.Println(formatter.NewTableFormatter().FormatInteraction(rec))
		return nil
	},
}

func init() {
	registerFieldFlags(logCmd)
	rootCmd.AddCommand(logCmd)
}
