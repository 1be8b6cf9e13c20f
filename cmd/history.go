package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/cine-cli/cine/history"
	"github.com/cine-cli/cine/icon"
	"github.com/cine-cli/cine/tui"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntP("limit", "n", 30, "Number of most recent entries")
	historyCmd.Flags().BoolP("summary", "s", false, "Fold entries into one line per title or episode")
	historyCmd.SetOut(os.Stdout)
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Print the watch history as JSON lines",
	Run: func(cmd *cobra.Command, args []string) {
		limit := lo.Must(cmd.Flags().GetInt("limit"))
		log := history.Default()

		var (
			lines []any
			err   error
		)
		if lo.Must(cmd.Flags().GetBool("summary")) {
			var summaries []history.Summary
			summaries, err = log.Summarize(limit)
			lines = lo.ToAnySlice(summaries)
		} else {
			var entries []history.Entry
			entries, err = log.List(limit)
			lines = lo.ToAnySlice(entries)
		}
		handleErr(err)

		if len(lines) == 0 {
			cmd.Println("No history yet.")
			return
		}

		for _, line := range lines {
			data, err := json.Marshal(line)
			handleErr(err)
			cmd.Println(string(data))
		}
	},
}

// historyLabel renders "🎬 Title (1999)  S01E02  ★7.4  [last: vidsrc]".
func historyLabel(s history.Summary) string {
	var b strings.Builder
	b.WriteString(kindIcon(s.Kind))
	b.WriteString(" ")
	b.WriteString(lo.Ternary(s.Title != "", s.Title, "Unknown"))

	if year, ok := s.ReleaseYear.Get(); ok {
		fmt.Fprintf(&b, " (%d)", year)
	}
	if ref, ok := s.Episode.Get(); ok && ref.Season > 0 && ref.Episode > 0 {
		fmt.Fprintf(&b, "  %s", ref)
	}
	if vote, ok := s.VoteAverage.Get(); ok {
		fmt.Fprintf(&b, "  %s%.1f", icon.Get(icon.Star), vote)
	}
	if s.LastMethod != "" {
		fmt.Fprintf(&b, "  [last: %s]", s.LastMethod)
	}
	return b.String()
}

func historyPreview(s history.Summary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", lo.Ternary(s.Title != "", s.Title, "Unknown"))
	fmt.Fprintf(&b, "Type: %s\n", s.Kind)
	if s.LastMethod != "" {
		fmt.Fprintf(&b, "Last method: %s\n", s.LastMethod)
	}
	fmt.Fprintf(&b, "Last seen: %s\n", s.LastSeen())
	if s.PosterURL != "" {
		fmt.Fprintf(&b, "Poster: %s\n", s.PosterURL)
	}
	return b.String()
}

func pickSummary(summaries []history.Summary) (history.Summary, bool, error) {
	return tui.PickValue[history.Summary]("History", lo.Map(summaries, func(s history.Summary, _ int) tui.Option {
		return tui.Option{Label: historyLabel(s), Preview: historyPreview(s), Value: s}
	}))
}
