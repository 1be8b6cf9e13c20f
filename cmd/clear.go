package cmd

import (
	"fmt"

	"github.com/cine-cli/cine/filesystem"
	"github.com/cine-cli/cine/icon"
	"github.com/cine-cli/cine/internal/cache"
	"github.com/cine-cli/cine/util"
	"github.com/cine-cli/cine/where"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

// clearTarget is something "cine clear" can remove.
type clearTarget struct {
	name     string
	argLong  string
	argShort mo.Option[string]
	clear    func() (string, error)
}

// removeAll deletes location and reports nothing beyond success.
func removeAll(location func() string) func() (string, error) {
	return func() (string, error) {
		return "", filesystem.API().RemoveAll(location())
	}
}

var clearTargets = []clearTarget{
	{"cache", "cache", mo.Some("c"), func() (string, error) {
		n, err := cache.Clear()
		return util.Quantify(n, "entry", "entries") + " removed", err
	}},
	{"history", "history", mo.Some("s"), removeAll(where.History)},
	{"search queries", "queries", mo.Some("q"), removeAll(where.Queries)},
	{"page dumps", "dumps", mo.Some("d"), removeAll(where.Dumps)},
	{"temporary files", "temp", mo.Some("t"), func() (string, error) {
		return "", util.Delete(where.Temp())
	}},
}

func init() {
	rootCmd.AddCommand(clearCmd)

	for _, target := range clearTargets {
		help := fmt.Sprintf("clear %s", target.name)
		if short, ok := target.argShort.Get(); ok {
			clearCmd.Flags().BoolP(target.argLong, short, false, help)
		} else {
			clearCmd.Flags().Bool(target.argLong, false, help)
		}
	}
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove cached responses, history and other local data",
	Run: func(cmd *cobra.Command, args []string) {
		var anyCleared bool

		for _, target := range clearTargets {
			if !lo.Must(cmd.Flags().GetBool(target.argLong)) {
				continue
			}
			anyCleared = true

			erase := util.PrintErasable(fmt.Sprintf("%s Clearing %s...", icon.Get(icon.Progress), target.name))
			detail, err := target.clear()
			erase()
			handleErr(err)

			msg := fmt.Sprintf("%s %s cleared", icon.Get(icon.Success), util.Capitalize(target.name))
			if detail != "" {
				msg += fmt.Sprintf(" (%s)", detail)
			}
			fmt.Println(msg)
		}

		if !anyCleared {
			handleErr(cmd.Help())
		}
	},
}
