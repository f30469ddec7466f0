package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newListCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print clipboard history",
		Long: `Prints the recorded clipboard history, newest first.

The same filters the interactive browser offers are available as flags:

  copycat list --search token --favorites
  copycat list --json | jq '.[].content'`,
		Args:    cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE:    func(_ *cobra.Command, _ []string) error { return runList(v) },
	}

	f := cmd.Flags()
	f.String("search", "", "case-insensitive substring filter")
	f.Bool("favorites", false, "show only favorited entries")
	f.Int("limit", 0, "maximum entries to print (0 = all)")
	f.Bool("json", false, "output raw JSON")
	addStoreFlags(cmd)
	addLoggingFlags(cmd)
	addConfigFlag(cmd)

	return cmd
}

func runList(v *viper.Viper) error {
	setupLogging(v)
	cfg, store := openStore(v)

	entries := store.Filter(v.GetString("search"), v.GetBool("favorites"))
	if limit := v.GetInt("limit"); limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}

	if v.GetBool("json") {
		enc, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding history: %w", err)
		}
		fmt.Println(string(enc))
		return nil
	}

	if len(entries) == 0 {
		fmt.Println("History is empty.")
		return nil
	}

	now := time.Now()
	w := tabwriter.NewWriter(os.Stdout, 1, 0, 2, ' ', 0)
	_, _ = fmt.Fprintf(w, "ID\tAGE\tFAV\tCONTENT\n")
	for _, e := range entries {
		fav := ""
		if e.Favorite {
			fav = "*"
		}
		_, _ = fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", e.ID, e.Age(now), fav, oneLine(e.Preview(cfg.PreviewWidth)))
	}
	return w.Flush()
}

// oneLine flattens whitespace so an entry renders as a single table row.
func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
