package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"copycat/internal/config"
	"copycat/internal/history"
	"copycat/internal/logging"
)

// bindViper wires a command's flags into a viper instance with the standard
// config file search order and COPYCAT_* env var prefix.
//
// Precedence (lowest → highest): defaults → config file → COPYCAT_* env vars → flags
func bindViper(cmd *cobra.Command, v *viper.Viper) error {
	configFlag, _ := cmd.Flags().GetString("config")
	if configFlag != "" {
		v.SetConfigFile(configFlag)
	} else {
		v.SetConfigName("copycat")
		v.SetConfigType("toml")
		v.AddConfigPath("/etc/copycat/")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(fmt.Sprintf("%s/.config/copycat", home))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("config: %w", err)
		}
	}

	v.SetEnvPrefix("COPYCAT")
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("binding flags: %w", err)
	}
	return nil
}

// addConfigFlag adds the --config flag to a command.
func addConfigFlag(cmd *cobra.Command) {
	cmd.Flags().String("config", "", "path to config file (overrides auto-discovery)")
}

// addLoggingFlags adds the standard logging flags to a command.
func addLoggingFlags(cmd *cobra.Command) {
	cmd.Flags().String("log-format", "auto", "log format: auto|text|json")
	cmd.Flags().String("log-level", "info", "log level: debug|info|warn|error")
}

// addStoreFlags adds the history store flags shared by every command that
// reads or writes the history file.
func addStoreFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("history-file", "", "history file path (default ~/.local/share/copycat/history.json)")
	f.Int("max-entries", 1000, "maximum number of history entries")
	f.Int("preview-width", 50, "characters of content shown per entry")
}

// setupLogging reads logging flags from viper and configures slog.
func setupLogging(v *viper.Viper) {
	logging.Setup(
		logging.ParseFormat(v.GetString("log-format")),
		logging.ParseLevel(v.GetString("log-level")),
	)
}

// openStore resolves the configuration and loads the history store. Call
// after setupLogging so load warnings reach the configured logger.
func openStore(v *viper.Viper) (config.Config, *history.Store) {
	cfg := config.FromViper(v)
	store := history.Open(cfg.HistoryFile, history.WithCapacity(cfg.MaxEntries))
	return cfg, store
}
