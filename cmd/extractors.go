package cmd

import (
	"fmt"
	"io"
	"net/url"
	"os"
	"os/user"
	"path"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/cine-cli/cine/color"
	"github.com/cine-cli/cine/constant"
	"github.com/cine-cli/cine/filesystem"
	"github.com/cine-cli/cine/icon"
	"github.com/cine-cli/cine/internal/scraper"
	"github.com/cine-cli/cine/network"
	"github.com/cine-cli/cine/provider/custom"
	"github.com/cine-cli/cine/style"
	"github.com/cine-cli/cine/util"
	"github.com/cine-cli/cine/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(extractorsCmd)
}

var extractorsCmd = &cobra.Command{
	Use:     "extractors",
	Aliases: []string{"ext"},
	Short:   "Manage Lua scripts that find extra frame and player references",
	Long: `Manage Lua scripts that find extra frame and player references.

Every script in the extractors directory defines ` + constant.ChildReferencesFn + `(html) and
returns a table of URLs. Those URLs are followed after the built-in patterns.`,
}

func completionExtractorNames(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	paths, err := custom.Paths()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	return lo.Map(paths, func(p string, _ int) string {
		return util.FileStem(p)
	}), cobra.ShellCompDirectiveNoFileComp
}

func init() {
	extractorsCmd.AddCommand(extractorsListCmd)
	extractorsListCmd.SetOut(os.Stdout)
}

var extractorsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List installed extractors",
	Run: func(cmd *cobra.Command, args []string) {
		paths, err := custom.Paths()
		if err != nil && !os.IsNotExist(err) {
			handleErr(err)
		}

		if len(paths) == 0 {
			cmd.Println("No extractors installed.")
			return
		}

		for _, p := range paths {
			script, err := custom.Load(p)
			if err != nil {
				cmd.Printf("%s %s %s\n", icon.Get(icon.Fail), util.FileStem(p), style.Faint(err.Error()))
				continue
			}
			cmd.Printf("%s %s\n", icon.Get(icon.Lua), script.Name())
			script.Close()
		}
	},
}

func init() {
	extractorsCmd.AddCommand(extractorsRemoveCmd)
}

var extractorsRemoveCmd = &cobra.Command{
	Use:               "remove NAME...",
	Short:             "Uninstall extractors",
	Args:              cobra.MinimumNArgs(1),
	ValidArgsFunction: completionExtractorNames,
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range args {
			target := filepath.Join(where.Extractors(), name+custom.Extension)
			handleErr(filesystem.API().Remove(target))
			fmt.Printf("%s removed %s\n", icon.Get(icon.Success), style.Fg(color.Yellow)(name))
		}
	},
}

func init() {
	extractorsCmd.AddCommand(extractorsGenCmd)
	extractorsGenCmd.Flags().StringP("name", "n", "", "Name of the new extractor")
	lo.Must0(extractorsGenCmd.MarkFlagRequired("name"))
	extractorsGenCmd.SetOut(os.Stdout)
}

var extractorsGenCmd = &cobra.Command{
	Use:   "gen",
	Short: "Create an extractor from a template",
	Run: func(cmd *cobra.Command, args []string) {
		author := "Anonymous"
		if usr, err := user.Current(); err == nil {
			author = usr.Username
		}

		s := struct {
			Name   string
			Author string
			Fn     string
		}{
			Name:   lo.Must(cmd.Flags().GetString("name")),
			Author: author,
			Fn:     constant.ChildReferencesFn,
		}

		tmpl, err := template.New("extractor").Funcs(template.FuncMap{
			"repeat": strings.Repeat,
			"plus":   func(a, b int) int { return a + b },
			"max":    util.Max[int],
		}).Parse(constant.ExtractorTemplate)
		handleErr(err)

		handleErr(filesystem.API().MkdirAll(where.Extractors(), os.ModePerm))
		target := filepath.Join(where.Extractors(), util.SanitizeFilename(s.Name)+custom.Extension)
		f, err := filesystem.API().Create(target)
		handleErr(err)
		defer util.Ignore(f.Close)

		handleErr(tmpl.Execute(f, s))
		cmd.Println(target)
	},
}

func init() {
	extractorsCmd.AddCommand(extractorsInstallCmd)
	extractorsInstallCmd.Flags().StringP("name", "n", "", "Install under this name instead of the file name in the URL")
}

var extractorsInstallCmd = &cobra.Command{
	Use:     "install URL",
	Short:   "Download an extractor, or update an installed one",
	Example: "  cine extractors install https://example.com/extractors/embedsu.lua",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		remote, err := url.Parse(args[0])
		if err != nil || (remote.Scheme != "http" && remote.Scheme != "https") {
			handleErr(fmt.Errorf("not an http(s) URL: %s", args[0]))
		}

		name := lo.Must(cmd.Flags().GetString("name"))
		if name == "" {
			name = util.FileStem(path.Base(remote.Path))
		}
		name = util.SanitizeFilename(name)
		if name == "" {
			handleErr(fmt.Errorf("cannot derive a name from %s, use --name", args[0]))
		}

		handleErr(filesystem.API().MkdirAll(where.Extractors(), os.ModePerm))
		target := filepath.Join(where.Extractors(), name+custom.Extension)

		erase := util.PrintErasable(fmt.Sprintf("%s Downloading %s...", icon.Get(icon.Progress), name))
		changed, err := scraper.Install(cmd.Context(), network.Client, remote.String(), target)
		erase()
		handleErr(err)

		if !changed {
			fmt.Printf("%s %s is up to date\n", icon.Get(icon.Success), style.Fg(color.Yellow)(name))
			return
		}
		fmt.Printf("%s installed %s\n", icon.Get(icon.Success), style.Fg(color.Yellow)(name))
	},
}

func init() {
	extractorsCmd.AddCommand(extractorsRunCmd)
	extractorsRunCmd.SetOut(os.Stdout)
}

var extractorsRunCmd = &cobra.Command{
	Use:   "run SCRIPT [HTML_FILE]",
	Short: "Run an extractor against a saved page and print what it finds",
	Long: `Run an extractor against a saved page and print what it finds.
The page is read from HTML_FILE, or from stdin when omitted. Pages saved with
debug.dump_html are a good starting point.`,
	Example: "  cine extractors run ./embedsu.lua ~/.cache/cine/dumps/vidsrc_crawl_1700000000_1_2.html",
	Args:    cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		script, err := custom.Load(args[0])
		handleErr(err)
		defer script.Close()

		var page []byte
		if len(args) == 2 {
			page, err = filesystem.API().ReadFile(args[1])
		} else {
			page, err = io.ReadAll(os.Stdin)
		}
		handleErr(err)

		refs := script.Extract(string(page))
		if len(refs) == 0 {
			cmd.Println("No references found.")
			return
		}
		for _, ref := range refs {
			cmd.Println(ref)
		}
	},
}
