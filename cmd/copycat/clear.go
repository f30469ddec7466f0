package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"copycat/internal/ipc"
)

func newClearCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Empty the clipboard history",
		Long: `Removes all history entries. With --keep-favorites only non-favorited
entries are removed.`,
		Args:    cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE:    func(_ *cobra.Command, _ []string) error { return runClear(v) },
	}

	cmd.Flags().Bool("keep-favorites", false, "retain favorited entries")
	addStoreFlags(cmd)
	addLoggingFlags(cmd)
	addConfigFlag(cmd)

	return cmd
}

func runClear(v *viper.Viper) error {
	setupLogging(v)

	guard, err := ipc.Acquire()
	if err != nil {
		return err
	}
	defer guard.Close()

	_, store := openStore(v)
	before := store.Len()
	if v.GetBool("keep-favorites") {
		store.ClearNonFavorites()
	} else {
		store.ClearAll()
	}
	fmt.Printf("removed %d entries\n", before-store.Len())
	return nil
}
