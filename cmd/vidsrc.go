package cmd

import (
	"os"
	"time"

	"github.com/cine-cli/cine/inline"
	"github.com/cine-cli/cine/media"
	"github.com/cine-cli/cine/provider/vidsrc"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(vidsrcCmd)
	addTargetFlags(vidsrcCmd)
	addLimitFlags(vidsrcCmd)
	vidsrcCmd.SetOut(os.Stdout)
}

var vidsrcCmd = &cobra.Command{
	Use:       "vidsrc movie|tv TMDB_ID",
	Short:     "Resolve playable stream URLs from the VidSrc embed mirrors",
	Example:   "  cine vidsrc movie 603 --first\n  cine vidsrc tv 1399 -s 1 -e 1 --json",
	Args:      cobra.ExactArgs(2),
	ValidArgs: media.Kinds(),
	Run: func(cmd *cobra.Command, args []string) {
		t := parseTarget(cmd, args)
		settings := loadSettings()

		limits := flagLimits(cmd, resolverLimits(settings))
		candidates, err := newResolver(settings).Resolve(cmd.Context(), t.selection().request(), limits)
		handleErr(err)

		if len(candidates) == 0 {
			cmd.Println("No streams found.")
			return
		}

		first := lo.Must(cmd.Flags().GetBool("first"))
		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(inline.Write(cmd.OutOrStdout(), inline.Candidates(candidates), first))
			return
		}

		if first {
			candidates = candidates[:1]
		}
		for _, c := range candidates {
			cmd.Println(c.String())
		}
	},
}


// addLimitFlags registers the crawl caps. Unset flags keep the configured values.
func addLimitFlags(cmd *cobra.Command) {
	cmd.Flags().Int("max-hosts", 3, "Embed mirrors to try (default from resolver.max_hosts)")
	cmd.Flags().Int("max-pages", 20, "Pages to fetch per mirror (default from resolver.max_pages)")
	cmd.Flags().Int("timeout", 8, "Seconds per request (default from resolver.timeout)")
}

// flagLimits overrides limits with the cap flags the user passed.
func flagLimits(cmd *cobra.Command, limits vidsrc.Limits) vidsrc.Limits {
	flags := cmd.Flags()
	if flags.Changed("max-hosts") {
		limits.MaxHosts = lo.Must(flags.GetInt("max-hosts"))
	}
	if flags.Changed("max-pages") {
		limits.MaxPages = lo.Must(flags.GetInt("max-pages"))
	}
	if flags.Changed("timeout") {
		limits.Timeout = time.Duration(lo.Must(flags.GetInt("timeout"))) * time.Second
	}
	return limits
}
