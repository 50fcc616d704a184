package main

import (
	"fmt"
	"strings"

	apperrors "github.com/harunnryd/karte/internal/errors"
	"github.com/harunnryd/karte/internal/formatter"

	"github.com/spf13/cobra"
)

var hcpCmd = &cobra.Command{
	Use:   "hcp",
	Short: "Browse the HCP directory",
	Long:  `List and search the healthcare professional directory maintained by the CRM.`,
}

var hcpLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List all HCPs",
	RunE: func(cmd *cobra.Command, args []string) error {
		actions, err := newActions()
		if err != nil {
			return err
		}

		if err := actions.RefreshDirectory(cmd.Context()); err != nil {
			return fmt.Errorf("%s", apperrors.Describe(err))
		}

		fmt.Println(formatter.NewTableFormatter().FormatHCPs(actions.Store.HCPs()))
		return nil
	},
}

var hcpSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search HCPs by name, specialty, or hospital",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		actions, err := newActions()
		if err != nil {
			return err
		}

		results, err := actions.Client.SearchHCP(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			return fmt.Errorf("%s", apperrors.Describe(err))
		}

		fmt.Println(results)
		return nil
	},
}

func init() {
	hcpCmd.AddCommand(hcpLsCmd)
	hcpCmd.AddCommand(hcpSearchCmd)
	rootCmd.AddCommand(hcpCmd)
}
