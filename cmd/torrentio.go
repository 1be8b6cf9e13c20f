package cmd

import (
	"os"
	"time"

	"github.com/cine-cli/cine/inline"
	"github.com/cine-cli/cine/media"
	"github.com/cine-cli/cine/provider/torrentio"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(torrentioCmd)
	addTargetFlags(torrentioCmd)
	torrentioCmd.Flags().Int("timeout", 12, "Seconds per request")
	torrentioCmd.SetOut(os.Stdout)
}

var torrentioCmd = &cobra.Command{
	Use:       "torrentio movie|tv TMDB_ID",
	Short:     "List Torrentio torrents and stream one through webtorrent",
	Example:   "  cine torrentio movie 603 --json --first",
	Args:      cobra.ExactArgs(2),
	ValidArgs: media.Kinds(),
	Run: func(cmd *cobra.Command, args []string) {
		t := parseTarget(cmd, args)
		a := newApp()
		a.requireCatalog()

		cfg := addonConfig(a.settings)
		cfg.Timeout = time.Duration(lo.Must(cmd.Flags().GetInt("timeout"))) * time.Second
		a.torrentio = torrentio.New(cfg)

		sel := t.selection()
		if !lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(a.playTorrentio(cmd.Context(), sel))
			return
		}

		id, ok, err := a.imdbID(cmd.Context(), sel)
		handleErr(err)
		if !ok {
			os.Exit(1)
		}

		streams, err := a.torrentio.Streams(cmd.Context(), sel.target(id))
		handleErr(err)
		if len(streams) == 0 {
			cmd.Println("No Torrentio streams found.")
			return
		}

		handleErr(inline.Write(cmd.OutOrStdout(), inline.Torrents(streams), lo.Must(cmd.Flags().GetBool("first"))))
	},
}
