package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/cine-cli/cine/auth"
	"github.com/cine-cli/cine/key"
	"github.com/cine-cli/cine/where"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// ErrMissingAPIKey is returned by RequireCatalog when no usable TMDB key is configured.
var ErrMissingAPIKey = errors.New("TMDB API key is not configured, run \"cine setup\"")

// Players lists the supported external players.
var Players = []string{"mpv", "vlc", "clapper", "iina"}

// Settings is a validated snapshot of the configuration used by commands.
type Settings struct {
	TMDBAPIKey         string `validate:"omitempty,min=10"`
	TMDBLanguage       string `validate:"required"`
	Player             string `validate:"oneof=mpv vlc clapper iina"`
	ImagePreview       bool
	WebtorrentTmpDir   string `validate:"required"`
	TorboxAPIKey       string
	StreamthruManifest string `validate:"omitempty,url"`
	CometManifest      string `validate:"omitempty,url"`
	Resolver           ResolverSettings
	Network            NetworkSettings
	DumpHTML           bool
}

// ResolverSettings bound the embed-page crawl.
type ResolverSettings struct {
	Domains       []string      `validate:"required,min=1,dive,hostname"`
	RelayFallback string        `validate:"omitempty,hostname"`
	MaxHosts      int           `validate:"min=1"`
	MaxPages      int           `validate:"min=1"`
	Timeout       time.Duration `validate:"gt=0"`
}

// NetworkSettings configure outgoing HTTP requests.
type NetworkSettings struct {
	ProxyPrefix    string `validate:"omitempty,url"`
	UserAgent      string `validate:"required"`
	AcceptLanguage string `validate:"required"`
	TLSFingerprint bool
}

var validate = validator.New()

// Load builds a Settings snapshot from viper, filling API keys from the keyring when unset.
func Load() (*Settings, error) {
	s := &Settings{
		TMDBAPIKey:         viper.GetString(key.TMDBAPIKey),
		TMDBLanguage:       viper.GetString(key.TMDBLanguage),
		Player:             viper.GetString(key.Player),
		ImagePreview:       viper.GetBool(key.PlayerImagePreview),
		WebtorrentTmpDir:   viper.GetString(key.WebtorrentTmpDir),
		TorboxAPIKey:       viper.GetString(key.TorboxAPIKey),
		StreamthruManifest: viper.GetString(key.StreamthruManifest),
		CometManifest:      viper.GetString(key.CometManifest),
		Resolver: ResolverSettings{
			Domains:       viper.GetStringSlice(key.ResolverDomains),
			RelayFallback: viper.GetString(key.ResolverRelayFallback),
			MaxHosts:      viper.GetInt(key.ResolverMaxHosts),
			MaxPages:      viper.GetInt(key.ResolverMaxPages),
			Timeout:       time.Duration(viper.GetInt(key.ResolverTimeout)) * time.Second,
		},
		Network: NetworkSettings{
			ProxyPrefix:    viper.GetString(key.NetworkProxyPrefix),
			UserAgent:      viper.GetString(key.NetworkUserAgent),
			AcceptLanguage: viper.GetString(key.NetworkAcceptLanguage),
			TLSFingerprint: viper.GetBool(key.NetworkTLSFingerprint),
		},
		DumpHTML: viper.GetBool(key.DebugDumpHTML),
	}

	if s.TMDBAPIKey == "" {
		if secret, err := auth.Get(auth.TMDB); err == nil {
			s.TMDBAPIKey = secret
		}
	}

	if s.TorboxAPIKey == "" {
		if secret, err := auth.Get(auth.Torbox); err == nil {
			s.TorboxAPIKey = secret
		}
	}

	if s.WebtorrentTmpDir == "" {
		s.WebtorrentTmpDir = filepath.Join(where.Cache(), "webtorrent")
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}

	return s, nil
}

// Validate checks every field constraint.
func (s *Settings) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// RequireCatalog reports whether catalog-backed commands can run.
func (s *Settings) RequireCatalog() error {
	if s.TMDBAPIKey == "" {
		return ErrMissingAPIKey
	}
	return nil
}
