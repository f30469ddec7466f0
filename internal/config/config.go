// Package config holds the runtime settings for copycat. Values come from
// flags, COPYCAT_* env vars, or the config file via viper; out-of-range
// values fall back to defaults rather than failing.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config is the resolved application configuration.
type Config struct {
	HistoryFile  string        // path of the persisted JSON history
	MaxEntries   int           // capacity bound of the history store
	PollInterval time.Duration // minimum time between clipboard reads
	PreviewWidth int           // max characters of content shown per row
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		HistoryFile:  defaultHistoryFile(),
		MaxEntries:   1000,
		PollInterval: 500 * time.Millisecond,
		PreviewWidth: 50,
	}
}

// FromViper builds a Config from a bound viper instance. Unset or invalid
// values keep their defaults.
func FromViper(v *viper.Viper) Config {
	cfg := Default()
	if p := v.GetString("history-file"); p != "" {
		cfg.HistoryFile = p
	}
	if n := v.GetInt("max-entries"); n > 0 {
		cfg.MaxEntries = n
	}
	if d := v.GetDuration("poll-interval"); d > 0 {
		cfg.PollInterval = d
	}
	if w := v.GetInt("preview-width"); w >= 4 {
		cfg.PreviewWidth = w
	}
	return cfg
}

// defaultHistoryFile is ~/.local/share/copycat/history.json, or a file in
// the working directory when the home directory cannot be determined.
func defaultHistoryFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "copycat_history.json"
	}
	return filepath.Join(home, ".local", "share", "copycat", "history.json")
}
