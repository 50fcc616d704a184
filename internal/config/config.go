package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
)

type Config struct {
	API  APIConfig  `koanf:"api"`
	Log  LogConfig  `koanf:"log"`
	Chat ChatConfig `koanf:"chat"`
}

type APIConfig struct {
	BaseURL string `koanf:"base_url"`
	Timeout string `koanf:"timeout"`
}

type LogConfig struct {
	Level string `koanf:"level"`
}

type ChatConfig struct {
	HistoryLimit int `koanf:"history_limit"`
}

const (
	DefaultAPIBaseURL       = "http://localhost:8000"
	DefaultAPITimeout       = "30s"
	DefaultLogLevel         = "info"
	DefaultChatHistoryLimit = 50
)

// Load resolves configuration in layers: hardcoded defaults, then the config
// file (--config or $HOME/.karte/config.yaml), then KARTE_* environment
// variables, then CLI flags.
func Load(cmd *cobra.Command) (*Config, error) {
	k := koanf.New(".")

	defaults := map[string]interface{}{
		"api.base_url":       DefaultAPIBaseURL,
		"api.timeout":        DefaultAPITimeout,
		"log.level":          DefaultLogLevel,
		"chat.history_limit": DefaultChatHistoryLimit,
	}
	for key, value := range defaults {
		k.Set(key, value)
	}

	configPath := ""
	if cmd != nil {
		if flag := cmd.Flags().Lookup("config"); flag != nil {
			configPath = strings.TrimSpace(flag.Value.String())
		}
	}

	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, err
		}
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			globalPath := filepath.Join(home, ".karte", "config.yaml")
			if err := k.Load(file.Provider(globalPath), yaml.Parser()); err != nil {
				slog.Debug("Global config not found or invalid", "path", globalPath, "error", err)
			}
		}
	}

	k.Load(env.Provider("KARTE_", ".", func(s string) string {
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, "KARTE_")), "_", ".", -1)
	}), nil)

	if cmd != nil {
		k.Load(posflag.Provider(cmd.Flags(), ".", k), nil)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, err
	}

	cfg.API.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.API.BaseURL), "/")
	if cfg.Chat.HistoryLimit <= 0 {
		cfg.Chat.HistoryLimit = DefaultChatHistoryLimit
	}

	return &cfg, nil
}
