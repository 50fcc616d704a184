package main

import (
	"fmt"

	apperrors "github.com/harunnryd/karte/internal/errors"
	"github.com/harunnryd/karte/internal/formatter"

	"github.com/spf13/cobra"
)

var interactionsCmd = &cobra.Command{
	Use:   "interactions",
	Short: "Manage logged interactions",
	Long:  `List, edit, and delete interactions recorded in the CRM.`,
}

var interactionsLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List logged interactions",
	RunE: func(cmd *cobra.Command, args []string) error {
		actions, err := newActions()
		if err != nil {
			return err
		}

		if err := actions.RefreshInteractions(cmd.Context()); err != nil {
			return fmt.Errorf("%s", apperrors.Describe(err))
		}

		fmt.Println(formatter.NewTableFormatter().FormatInteractions(actions.Store.Interactions()))
		return nil
	},
}

var interactionsRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete an interaction",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		actions, err := newActions()
		if err != nil {
			return err
		}

		if err := actions.DeleteInteraction(cmd.Context(), id); err != nil {
			return fmt.Errorf("%s", apperrors.Describe(err))
		}

		fmt.Printf("✓ Interaction %d deleted\n", id)
		return nil
	},
}

var interactionsEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit an interaction and resubmit it",
	Long:  `Load an existing interaction into the draft, apply the given field flags, and submit the result as an update.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		actions, err := newActions()
		if err != nil {
			return err
		}

		if err := actions.RefreshInteractions(cmd.Context()); err != nil {
			return fmt.Errorf("%s", apperrors.Describe(err))
		}

		if err := actions.BeginEditByID(id); err != nil {
			return fmt.Errorf("%s", apperrors.Describe(err))
		}

		if err := applyFieldFlags(cmd, actions); err != nil {
			return fmt.Errorf("%s", apperrors.Describe(err))
		}

		rec, err := actions.SubmitDraft(cmd.Context())
		if err != nil {
			return fmt.Errorf("%s", apperrors.Describe(err))
		}

		fmt.Printf("✓ Interaction %d updated\n", rec.ID)
		fmt.Println(formatter.NewTableFormatter().FormatInteraction(rec))
		return nil
	},
}

func init() {
	registerFieldFlags(interactionsEditCmd)
	interactionsCmd.AddCommand(interactionsLsCmd)
	interactionsCmd.AddCommand(interactionsRmCmd)
	interactionsCmd.AddCommand(interactionsEditCmd)
	rootCmd.AddCommand(interactionsCmd)
}
