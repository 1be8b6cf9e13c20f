package cmd

import (
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/cine-cli/cine/filesystem"
	"github.com/cine-cli/cine/inline"
	"github.com/cine-cli/cine/media"
	"github.com/cine-cli/cine/query"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inlineCmd)
}

var inlineCmd = &cobra.Command{
	Use:   "inline",
	Short: "Non-interactive commands for scripting",
}

func init() {
	inlineCmd.AddCommand(inlineSearchCmd)
	inlineSearchCmd.Flags().StringP("kind", "k", "", "Only keep movie or tv results")
	inlineSearchCmd.Flags().Bool("first", false, "Print only the first result")
	inlineSearchCmd.Flags().StringP("output", "o", "", "Write to a file instead of stdout")
	lo.Must0(inlineSearchCmd.RegisterFlagCompletionFunc("kind", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return media.Kinds(), cobra.ShellCompDirectiveNoFileComp
	}))
}

var inlineSearchCmd = &cobra.Command{
	Use:   "search QUERY",
	Short: "Search TMDB and print the results as JSON",
	Args:  cobra.MinimumNArgs(1),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return query.SuggestMany(toComplete), cobra.ShellCompDirectiveNoFileComp
	},
	Run: func(cmd *cobra.Command, args []string) {
		a := newApp()
		a.requireCatalog()

		q := strings.Join(args, " ")
		items, err := a.catalog.Search(cmd.Context(), q)
		handleErr(err)
		_ = query.Remember(q, query.Searched)

		if kind := lo.Must(cmd.Flags().GetString("kind")); kind != "" {
			k, err := media.ParseKind(kind)
			handleErr(err)
			items = lo.Filter(items, func(item media.Item, _ int) bool {
				return item.Kind == k
			})
		}

		out := writerFor(lo.Must(cmd.Flags().GetString("output")))
		handleErr(inline.Write(out, inline.Items(items), lo.Must(cmd.Flags().GetBool("first"))))
	},
}

func init() {
	inlineCmd.AddCommand(inlineSchemaCmd)
}

var inlineSchemaCmd = &cobra.Command{
	Use:       "schema [document]",
	Short:     "Print the JSON schema of an output document",
	Long:      "Print the JSON schema of the documents printed by the --json flags.\nDocuments: " + strings.Join(inline.SchemaNames(), ", "),
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: inline.SchemaNames(),
	Run: func(cmd *cobra.Command, args []string) {
		names := inline.SchemaNames()
		if len(args) == 1 {
			names = args
		}

		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		for _, name := range names {
			schema, err := inline.Schema(name)
			handleErr(err)
			handleErr(encoder.Encode(schema))
		}
	},
}

// writerFor opens path for writing, or returns stdout when path is empty.
func writerFor(path string) io.Writer {
	if path == "" {
		return os.Stdout
	}

	file, err := filesystem.API().Create(path)
	handleErr(err)
	return file
}
