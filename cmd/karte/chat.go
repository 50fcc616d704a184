package main

import (
	"github.com/spf13/cobra"
)

var chatExportPath string

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Talk to the CRM's AI agent",
	Long: `Start an interactive session with the CRM agent. Describe an interaction
("I met Dr. Smith today and we discussed Product X") and the agent logs it
for you. Type /help inside the session for commands.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		actions, err := newActions()
		if err != nil {
			return err
		}

		repl := NewREPL(actions, chatExportPath)
		return repl.Start(cmd.Context())
	},
}

func init() {
	chatCmd.Flags().StringVar(&chatExportPath, "export", "", "write the transcript to this file on exit")
	rootCmd.AddCommand(chatCmd)
}
