package cmd

import (
	"fmt"
	"os"
	"runtime"

	"github.com/cine-cli/cine/icon"
	"github.com/cine-cli/cine/player"
	"github.com/cine-cli/cine/style"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// dependency is an external program some actions hand off to.
type dependency struct {
	name    string
	purpose string
	install map[string]string
}

var dependencies = []dependency{
	{
		name:    player.MPV,
		purpose: "plays resolved streams",
		install: map[string]string{"darwin": "brew install mpv", "linux": "sudo apt install mpv", "windows": "scoop install mpv"},
	},
	{
		name:    player.VLC,
		purpose: "plays resolved streams when mpv is missing",
		install: map[string]string{"darwin": "brew install --cask vlc", "linux": "sudo apt install vlc", "windows": "scoop install vlc"},
	},
	{
		name:    player.Webtorrent,
		purpose: "streams and downloads torrents",
		install: map[string]string{"darwin": "npm i -g webtorrent-cli", "linux": "npm i -g webtorrent-cli", "windows": "npm i -g webtorrent-cli"},
	},
	{
		name:    player.YtDlp,
		purpose: "downloads resolved streams",
		install: map[string]string{"darwin": "brew install yt-dlp", "linux": "pipx install yt-dlp", "windows": "scoop install yt-dlp"},
	},
}

func findDependency(name string) (dependency, bool) {
	for _, d := range dependencies {
		if d.name == name {
			return d, true
		}
	}
	return dependency{}, false
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.SetOut(os.Stdout)
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check which external programs are installed",
	Run: func(cmd *cobra.Command, args []string) {
		ok := style.Fg(style.SuccessColor)
		missing := style.Fg(style.ErrorColor)

		for _, d := range dependencies {
			if player.Installed(d.name) {
				cmd.Printf("%s %s %s\n", icon.Get(icon.Success), ok(d.name), style.Faint(d.purpose))
				continue
			}
			cmd.Printf("%s %s %s\n", icon.Get(icon.Fail), missing(d.name), style.Faint(d.purpose))
		}
	},
}

// printMissingDependency explains how to install name, followed by the fallback the user can use by hand.
func printMissingDependency(name, fallback string) {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(style.HiRed).
		Padding(1, 2).
		Margin(1, 0)

	title := style.New().Bold(true).Foreground(style.HiRed).Render(fmt.Sprintf("%s Missing dependency", icon.Get(icon.Fail)))
	body := style.New().Foreground(style.Text).Render(fmt.Sprintf("%s was not found on PATH.", name))

	suggestion := ""
	if d, ok := findDependency(name); ok {
		if installCmd, ok := d.install[runtime.GOOS]; ok {
			suggestion = fmt.Sprintf("\n\nInstall with:\n  %s", style.New().Foreground(style.AccentColor).Bold(true).Render(installCmd))
		}
	}

	fmt.Println(box.Render(lipgloss.JoinVertical(lipgloss.Left, title, body, suggestion)))

	if fallback != "" {
		fmt.Println(fallback)
	}
}
