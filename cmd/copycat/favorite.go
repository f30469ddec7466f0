package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"copycat/internal/ipc"
)

func newFavoriteCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "favorite <id>",
		Short: "Toggle the favorite flag on a history entry",
		Long: `Flips the favorite flag on the entry with the given id. Favorited entries
are skipped by eviction and survive "copycat clear --keep-favorites".`,
		Args:    cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE:    func(_ *cobra.Command, args []string) error { return runFavorite(v, args[0]) },
	}

	addStoreFlags(cmd)
	addLoggingFlags(cmd)
	addConfigFlag(cmd)

	return cmd
}

func runFavorite(v *viper.Viper, rawID string) error {
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
	if !store.ToggleFavorite(id) {
		return fmt.Errorf("no history entry with id %d", id)
	}
	if entry, _ := store.Get(id); entry.Favorite {
		fmt.Printf("favorited %d\n", id)
	} else {
		fmt.Printf("unfavorited %d\n", id)
	}
	return nil
}
