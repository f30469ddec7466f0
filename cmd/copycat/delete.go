package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"copycat/internal/ipc"
)

func newDeleteCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:     "delete <id>",
		Short:   "Remove one entry from the history",
		Args:    cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE:    func(_ *cobra.Command, args []string) error { return runDelete(v, args[0]) },
	}

	addStoreFlags(cmd)
	addLoggingFlags(cmd)
	addConfigFlag(cmd)

	return cmd
}

func runDelete(v *viper.Viper, rawID string) error {
	setupLogging(v)

	id, err := parseID(rawID)
	if err != nil {
		return err
	}

	guard, err := ipc.Acquire()
	if err != nil {
		return err
	}
	defer guard.Close()

	_, store := openStore(v)
	if !store.Delete(id) {
		return fmt.Errorf("no history entry with id %d", id)
	}
	return nil
}
