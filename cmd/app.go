package cmd

import (
	"fmt"
	"os"

	"github.com/cine-cli/cine/config"
	"github.com/cine-cli/cine/history"
	"github.com/cine-cli/cine/key"
	"github.com/cine-cli/cine/log"
	"github.com/cine-cli/cine/network"
	"github.com/cine-cli/cine/provider"
	"github.com/cine-cli/cine/provider/custom"
	"github.com/cine-cli/cine/provider/stremio"
	"github.com/cine-cli/cine/provider/torrentio"
	"github.com/cine-cli/cine/provider/vidsrc"
	"github.com/cine-cli/cine/tmdb"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// app bundles the clients a command needs, built from one settings snapshot.
type app struct {
	settings  *config.Settings
	catalog   *tmdb.Client
	resolver  *vidsrc.Resolver
	torrentio *torrentio.Client
	clients   *provider.Clients
	history   *history.Log
}

// loadSettings returns the validated settings, running the setup wizard when
// they are invalid and a terminal is attached.
func loadSettings() *config.Settings {
	settings, err := config.Load()
	if err == nil {
		return settings
	}

	log.Warn(err)
	if !isTerminal() {
		handleErr(err)
	}

	fmt.Fprintf(os.Stderr, "%s\n\n", err)
	handleErr(runSetup())

	settings, err = config.Load()
	handleErr(err)
	return settings
}

func newApp() *app {
	settings := loadSettings()

	return &app{
		settings:  settings,
		catalog:   tmdb.New(settings.TMDBAPIKey, settings.TMDBLanguage),
		resolver:  newResolver(settings),
		torrentio: torrentio.New(addonConfig(settings)),
		clients:   provider.NewClients(settings),
		history:   history.Default(),
	}
}

// requireCatalog stops the command when no TMDB key is configured.
func (a *app) requireCatalog() {
	if err := a.settings.RequireCatalog(); err != nil {
		handleErr(err)
	}
}

func newResolver(settings *config.Settings) *vidsrc.Resolver {
	cfg := vidsrc.DefaultConfig()
	if len(settings.Resolver.Domains) > 0 {
		cfg.Domains = settings.Resolver.Domains
	}
	cfg.RelayFallback = lo.CoalesceOrEmpty(settings.Resolver.RelayFallback, cfg.RelayFallback)
	cfg.UserAgent = lo.CoalesceOrEmpty(settings.Network.UserAgent, cfg.UserAgent)
	cfg.AcceptLanguage = lo.CoalesceOrEmpty(settings.Network.AcceptLanguage, cfg.AcceptLanguage)
	cfg.ProxyPrefix = settings.Network.ProxyPrefix
	cfg.DumpHTML = settings.DumpHTML

	opts := []vidsrc.Option{vidsrc.WithExtractors(custom.Extractors()...)}
	if settings.Network.TLSFingerprint {
		opts = append(opts, vidsrc.WithClient(network.NewClient(network.Options{
			Timeout:        settings.Resolver.Timeout,
			TLSFingerprint: true,
		})))
	}

	return vidsrc.New(cfg, opts...)
}

func resolverLimits(settings *config.Settings) vidsrc.Limits {
	return vidsrc.Limits{
		MaxHosts: settings.Resolver.MaxHosts,
		MaxPages: settings.Resolver.MaxPages,
		Timeout:  settings.Resolver.Timeout,
	}
}

func addonConfig(settings *config.Settings) stremio.Config {
	return stremio.Config{
		ProxyPrefix:    settings.Network.ProxyPrefix,
		AcceptLanguage: settings.Network.AcceptLanguage,
	}
}

// record appends to the history log unless history is disabled.
func (a *app) record(entry history.Entry) {
	if !viper.GetBool(key.HistoryWrite) {
		return
	}

	if err := a.history.Add(entry); err != nil {
		log.Warnf("history: %v", err)
	}
}
