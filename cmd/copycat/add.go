package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"copycat/internal/ipc"
)

func newAddCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Ingest stdin into the clipboard history (like pbcopy, minus the clipboard)",
		Long: `Reads stdin and records it as a history entry without touching the OS
clipboard. Empty input and text already present in the history are ignored.`,
		Args:    cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE:    func(_ *cobra.Command, _ []string) error { return runAdd(v) },
	}

	addStoreFlags(cmd)
	addLoggingFlags(cmd)
	addConfigFlag(cmd)

	return cmd
}

func runAdd(v *viper.Viper) error {
	setupLogging(v)

	guard, err := ipc.Acquire()
	if err != nil {
		return err
	}
	defer guard.Close()

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}
	if len(data) == 0 {
		return nil
	}

	_, store := openStore(v)
	store.Ingest(string(data))
	return nil
}
