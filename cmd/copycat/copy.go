package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"copycat/internal/clip"
)

func newCopyCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "copy <id>",
		Short: "Write a stored entry back to the OS clipboard",
		Long: `Looks up the history entry with the given id (see "copycat list") and
replaces the OS clipboard contents with it.`,
		Args:    cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE:    func(_ *cobra.Command, args []string) error { return runCopy(v, args[0]) },
	}

	addStoreFlags(cmd)
	addLoggingFlags(cmd)
	addConfigFlag(cmd)

	return cmd
}

func runCopy(v *viper.Viper, rawID string) error {
	setupLogging(v)

	id, err := parseID(rawID)
	if err != nil {
		return err
	}

	_, store := openStore(v)
	entry, ok := store.Get(id)
	if !ok {
		return fmt.Errorf("no history entry with id %d", id)
	}

	backend, err := clip.New()
	if err != nil {
		return fmt.Errorf("clipboard unavailable: %w", err)
	}
	defer backend.Close()

	if err := backend.WriteText(entry.Content); err != nil {
		return fmt.Errorf("clipboard write: %w", err)
	}
	return nil
}
