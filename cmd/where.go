package cmd

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/cine-cli/cine/color"
	"github.com/cine-cli/cine/style"
	"github.com/cine-cli/cine/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// location is a directory or file cine uses, printable alone with --<flag>.
type location struct {
	label string
	path  func() string
	short string
	// internal locations are only printed when asked for.
	internal bool
}

func (l location) flag() string {
	return strings.ToLower(l.label)
}

var locations = []location{
	{label: "Config", path: where.Config, short: "c"},
	{label: "Data", path: where.Data, short: "d"},
	{label: "Extractors", path: where.Extractors, short: "e"},
	{label: "Logs", path: where.Logs, short: "l"},
	{label: "Cache", path: where.Cache, internal: true},
	{label: "Dumps", path: where.Dumps, internal: true},
	{label: "History", path: where.History, internal: true},
	{label: "Queries", path: where.Queries, internal: true},
	{label: "Temp", path: where.Temp, internal: true},
}

func init() {
	rootCmd.AddCommand(whereCmd)

	flags := make([]string, 0, len(locations))
	for _, l := range locations {
		whereCmd.Flags().BoolP(l.flag(), l.short, false, "Print only the "+strings.ToLower(l.label)+" path")
		if l.internal {
			lo.Must0(whereCmd.Flags().MarkHidden(l.flag()))
		}
		flags = append(flags, l.flag())
	}
	whereCmd.Flags().Bool("json", false, "Print every location as a JSON object")

	whereCmd.MarkFlagsMutuallyExclusive(append(flags, "json")...)
	whereCmd.SetOut(os.Stdout)
}

var whereCmd = &cobra.Command{
	Use:   "where",
	Short: "Show where cine keeps its files",
	Run: func(cmd *cobra.Command, args []string) {
		for _, l := range locations {
			if lo.Must(cmd.Flags().GetBool(l.flag())) {
				cmd.Println(l.path())
				return
			}
		}

		if lo.Must(cmd.Flags().GetBool("json")) {
			paths := lo.SliceToMap(locations, func(l location) (string, string) {
				return l.flag(), l.path()
			})
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			handleErr(encoder.Encode(paths))
			return
		}

		header := style.New().Bold(true).Foreground(color.HiPurple).Render
		visible := lo.Reject(locations, func(l location, _ int) bool {
			return l.internal
		})
		for i, l := range visible {
			cmd.Printf("%s %s\n", header(l.label+"?"), style.Fg(color.Yellow)("--"+l.flag()))
			cmd.Println(l.path())

			if i < len(visible)-1 {
				cmd.Println()
			}
		}
	},
}
