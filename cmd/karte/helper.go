package main

import (
	"fmt"
	"strconv"

	"github.com/harunnryd/karte/internal/app"
	"github.com/harunnryd/karte/internal/config"
	"github.com/harunnryd/karte/internal/crm"
	"github.com/harunnryd/karte/internal/state"

	"github.com/spf13/cobra"
)

func newActions() (*app.Actions, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is not initialized")
	}

	timeout, err := config.DurationOrDefault(cfg.API.Timeout, config.DefaultAPITimeout)
	if err != nil {
		return nil, err
	}

	return &app.Actions{
		Store:        state.NewStore(),
		Client:       crm.NewClient(cfg.API.BaseURL, timeout),
		HistoryLimit: cfg.Chat.HistoryLimit,
	}, nil
}

func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%q is not a valid record id", arg)
	}
	return id, nil
}

// applyFieldFlags copies every changed schema-driven flag into the draft.
func applyFieldFlags(cmd *cobra.Command, actions *app.Actions) error {
	for _, spec := range state.Schema() {
		flag := cmd.Flags().Lookup(spec.Flag)
		if flag == nil || !flag.Changed {
			continue
		}
		if err := actions.Store.SetField(spec.Name, flag.Value.String()); err != nil {
			return err
		}
	}
	return nil
}

// registerFieldFlags declares one flag per form field, driven by the schema
// table so the form cannot drift from the model.
func registerFieldFlags(cmd *cobra.Command) {
	for _, spec := range state.Schema() {
		usage := spec.Label
		if len(spec.Options) > 0 {
			usage = fmt.Sprintf("%s (one of: %v)", spec.Label, spec.Options)
		}
		cmd.Flags().String(spec.Flag, "", usage)
	}
}
