// copycat: clipboard history for the terminal.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"copycat/internal/clip"
	"copycat/internal/ipc"
	"copycat/internal/ui"
)

// Version is set at build time via -ldflags "-X main.Version=x.y.z".
var Version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "copycat",
		Short: "Clipboard history for the terminal",
		Long: `copycat watches the system clipboard and keeps a searchable, persistent
history of everything you copy. Favorites survive eviction and bulk clears.

Run "copycat" with no arguments to open the interactive browser, which also
hosts the clipboard watcher. The subcommands (list, add, copy, favorite,
delete, clear) operate on the same history non-interactively.

Config file search order (first found wins):
  /etc/copycat/copycat.toml
  $HOME/.config/copycat/copycat.toml
  path supplied via --config

All flags can be set via COPYCAT_<FLAG> env vars or config-file keys.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		PreRunE:      func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE:         func(_ *cobra.Command, _ []string) error { return runBrowse(v) },
	}

	cmd.Flags().Duration("poll-interval", 500*time.Millisecond, "minimum time between clipboard reads")
	addStoreFlags(cmd)
	addLoggingFlags(cmd)
	addConfigFlag(cmd)

	cmd.AddCommand(
		newListCmd(),
		newAddCmd(),
		newCopyCmd(),
		newFavoriteCmd(),
		newDeleteCmd(),
		newClearCmd(),
		newVersionCmd(),
	)

	return cmd
}

// runBrowse opens the interactive browser. Clipboard access is mandatory
// here: without it the watcher has no purpose, so init failure is fatal.
func runBrowse(v *viper.Viper) error {
	setupLogging(v)

	guard, err := ipc.Acquire()
	if err != nil {
		return err
	}
	defer guard.Close()

	cfg, store := openStore(v)

	backend, err := clip.New()
	if err != nil {
		return fmt.Errorf("clipboard unavailable: %w", err)
	}
	defer backend.Close()

	slog.Info("watching clipboard",
		"backend", backend.Name(),
		"history", cfg.HistoryFile,
		"interval", cfg.PollInterval,
	)

	return ui.Run(cfg, store, backend)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("copycat %s\n", Version)
		},
	}
}
