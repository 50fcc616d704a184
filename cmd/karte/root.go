package main

import (
	"fmt"
	"os"

	"github.com/harunnryd/karte/internal/config"
	"github.com/harunnryd/karte/internal/logger"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "karte",
	Short: "Karte HCP interaction logger",
	Long:  `Karte is a terminal client for logging healthcare professional interactions, by form or by talking to the CRM's AI agent.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load()

		var err error
		cfg, err = config.Load(cmd)
		if err != nil {
			return err
		}

		logger.Setup(cfg.Log.Level)
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.karte/config.yaml)")
	rootCmd.PersistentFlags().String("api.base_url", config.DefaultAPIBaseURL, "CRM service base URL")
	rootCmd.PersistentFlags().String("api.timeout", config.DefaultAPITimeout, "request timeout")
	rootCmd.PersistentFlags().String("log.level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
}
