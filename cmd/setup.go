package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cine-cli/cine/auth"
	"github.com/cine-cli/cine/color"
	"github.com/cine-cli/cine/config"
	"github.com/cine-cli/cine/icon"
	"github.com/cine-cli/cine/key"
	"github.com/cine-cli/cine/log"
	"github.com/cine-cli/cine/player"
	"github.com/cine-cli/cine/style"
	"github.com/cine-cli/cine/tui"
	"github.com/cine-cli/cine/where"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// minAPIKeyLength rejects obvious typos before the first catalog call does.
const minAPIKeyLength = 10

func init() {
	rootCmd.AddCommand(setupCmd)
}

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Configure the TMDB key, player and optional sources interactively",
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(runSetup())
	},
}

// storeSecret keeps an API key in the keyring when possible, else in the config file.
func storeSecret(k string, secret auth.Secret, value string) {
	if value == "" {
		viper.Set(k, "")
		_ = auth.Delete(secret)
		return
	}

	if err := auth.Set(secret, value); err != nil {
		log.Warnf("keyring unavailable, storing %s in the config file: %v", k, err)
		viper.Set(k, value)
		return
	}

	viper.Set(k, "")
}

func runSetup() error {
	fmt.Println(style.New().Bold(true).Foreground(color.HiPurple).Render("cine setup"))

	var apiKey string
	for len(apiKey) < minAPIKeyLength {
		var err error
		if apiKey, err = tui.Secret("TMDB API key"); err != nil {
			return err
		}
		if len(apiKey) < minAPIKeyLength {
			fmt.Println("Invalid key, try again.")
		}
	}

	preferred, err := tui.Choose("Preferred player", player.Supported, viper.GetString(key.Player))
	if err != nil {
		return err
	}

	preview, err := tui.Confirm("Show the details preview next to lists?", viper.GetBool(key.PlayerImagePreview))
	if err != nil {
		return err
	}

	tmpDir := viper.GetString(key.WebtorrentTmpDir)
	if tmpDir == "" {
		tmpDir = filepath.Join(where.Cache(), "webtorrent")
	}
	if tmpDir, err = tui.Directory("Temp directory for webtorrent-cli", tmpDir); err != nil {
		return err
	}
	if err := os.MkdirAll(tmpDir, os.ModePerm); err != nil {
		fmt.Printf("Warning: could not create directory: %s\n", tmpDir)
	}

	torbox, err := tui.Input("TorBox API key (optional, press Enter to skip)", "")
	if err != nil {
		return err
	}

	streamthru, err := tui.Input("Streamthru manifest URL (optional)", viper.GetString(key.StreamthruManifest))
	if err != nil {
		return err
	}

	comet, err := tui.Input("Comet manifest URL (optional)", viper.GetString(key.CometManifest))
	if err != nil {
		return err
	}

	storeSecret(key.TMDBAPIKey, auth.TMDB, apiKey)
	storeSecret(key.TorboxAPIKey, auth.Torbox, torbox)
	viper.Set(key.Player, preferred)
	viper.Set(key.PlayerImagePreview, preview)
	viper.Set(key.WebtorrentTmpDir, tmpDir)
	viper.Set(key.StreamthruManifest, streamthru)
	viper.Set(key.CometManifest, comet)

	if err := config.Save(); err != nil {
		return err
	}

	fmt.Printf("%s Saved config to %s\n", icon.Get(icon.Success), configFile())
	return nil
}
