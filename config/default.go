// Package config provides centralized management for application settings, defaults, and the Viper-based configuration engine.
package config

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"text/template"

	"github.com/cine-cli/cine/color"
	"github.com/cine-cli/cine/constant"
	"github.com/cine-cli/cine/key"
	"github.com/cine-cli/cine/style"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Field is one registered setting: its key, default value and help text.
type Field struct {
	Key         string
	Value       any
	Description string
	// Secret fields are masked whenever their current value is shown.
	Secret bool
}

// Pretty renders the field for "config info".
func (f *Field) Pretty() string {
	var b strings.Builder
	lo.Must0(prettyTemplate.Execute(&b, f))
	return b.String()
}

// Env is the environment variable bound to the field, e.g. CINE_RESOLVER_MAX_HOSTS.
func (f *Field) Env() string {
	env := strings.ToUpper(EnvKeyReplacer.Replace(f.Key))
	prefix := strings.ToUpper(constant.Cine + "_")
	if strings.HasPrefix(env, prefix) {
		return env
	}
	return prefix + env
}

// Current is the effective value, masked for secrets.
func (f *Field) Current() any {
	v := viper.Get(f.Key)
	if !f.Secret {
		return v
	}
	if s, ok := v.(string); ok && s != "" {
		return mask(s)
	}
	return v
}

func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Key         string `json:"key"`
		Value       any    `json:"value"`
		Default     any    `json:"default"`
		Description string `json:"description"`
		Type        string `json:"type"`
		Secret      bool   `json:"secret,omitempty"`
	}{
		Key:         f.Key,
		Value:       f.Current(),
		Default:     f.Value,
		Description: f.Description,
		Type:        f.typeName(),
		Secret:      f.Secret,
	})
}

func (f *Field) typeName() string {
	switch f.Value.(type) {
	case string:
		return "string"
	case int:
		return "int"
	case bool:
		return "bool"
	case []string:
		return "[]string"
	default:
		return "unknown"
	}
}

// mask keeps the last four characters of a secret.
func mask(s string) string {
	if len(s) <= 4 {
		return strings.Repeat("*", len(s))
	}
	return strings.Repeat("*", len(s)-4) + s[len(s)-4:]
}

// Default holds the map of all configuration fields.
var Default = make(map[string]Field)

// EnvExposed holds keys that are bound to environment variables.
var EnvExposed []string

func init() {
	add := func(f Field) {
		if _, exists := Default[f.Key]; exists {
			panic("duplicate config key: " + f.Key)
		}
		Default[f.Key] = f
		EnvExposed = append(EnvExposed, f.Key)
	}
	register := func(k string, v any, desc string) {
		add(Field{Key: k, Value: v, Description: desc})
	}
	secret := func(k, desc string) {
		add(Field{Key: k, Value: "", Description: desc, Secret: true})
	}

	secret(key.TMDBAPIKey, "TMDB API key (v3).\nFalls back to the system keyring and the TMDB_API_KEY environment variable")
	register(key.TMDBLanguage, "en-US", "Language used for catalog titles and overviews")
	register(key.Player, "mpv", "Media player to use.\nAvailable options are: mpv, vlc, clapper, iina")
	register(key.PlayerImagePreview, true, "Show the details preview panel next to catalog lists")
	register(key.WebtorrentTmpDir, "", "Temporary directory for webtorrent-cli streaming.\nEmpty means a directory inside the cache")
	secret(key.TorboxAPIKey, "TorBox API key.\nTorBox actions are hidden when empty")
	register(key.StreamthruManifest, "", "Streamthru addon manifest URL (ends with /manifest.json)")
	register(key.CometManifest, "", "Comet addon manifest URL (ends with /manifest.json)")
	register(key.ResolverDomains, []string{"vidsrc.xyz"}, "Embed mirror domains, tried in order")
	register(key.ResolverRelayFallback, "cloudnestra.com", "Relay host always tried after the discovered ones")
	register(key.ResolverMaxHosts, 3, "Maximum number of embed URLs tried per resolution")
	register(key.ResolverMaxPages, 20, "Maximum number of page fetches per embed URL")
	register(key.ResolverTimeout, 8, "Per-request timeout in seconds")
	register(key.NetworkProxyPrefix, "", "Proxy prefix the target URL is appended to, percent-encoded.\nExample: https://host/path?destination=")
	register(key.NetworkUserAgent, constant.UserAgent, "User-Agent sent to embed and relay pages")
	register(key.NetworkAcceptLanguage, "en-US,en;q=0.9", "Accept-Language sent with every request")
	register(key.NetworkTLSFingerprint, false, "Use a Chrome TLS fingerprint for outgoing requests")
	register(key.DebugDumpHTML, false, "Save fetched embed and relay pages to the dumps directory")
	register(key.HistoryWrite, true, "Record searches, plays and downloads in the history log")
	register(key.SearchShowQuerySuggestions, true, "Show query suggestions when searching")
	register(key.IconsVariant, "plain", "Icons variant.\nAvailable options are: emoji, kaomoji, plain, squares, nerd (nerd-font required)")
	register(key.TUIItemSpacing, 1, "Spacing between items in the TUI")
	register(key.LogsWrite, false, "Write logs")
	register(key.LogsLevel, "info", "Available options are: (from less to most verbose)\npanic, fatal, error, warn, info, debug, trace")
	register(key.LogsJson, false, "Use json format for logs")
	register(key.CliColored, true, "Enable colored CLI output")
	register(key.CliVersionCheck, false, "Enable automatic version check")
}

var prettyTemplate = lo.Must(template.New("pretty").Funcs(template.FuncMap{
	"faint":    style.Faint,
	"bold":     style.Bold,
	"purple":   style.Fg(color.Purple),
	"blue":     style.Fg(color.Blue),
	"cyan":     style.Fg(color.Cyan),
		"typename": func(v any) string { return reflect.TypeOf(v).String() },
	"hl": func(v any) string {
		switch value := v.(type) {
		case bool:
			b := strconv.FormatBool(value)
			if value {
				return style.Fg(color.Green)(b)
			}
			return style.Fg(color.Red)(b)
		case string:
			return style.Fg(color.Yellow)(value)
		default:
			return fmt.Sprint(value)
		}
	},
}).Parse(`{{ faint .Description }}
{{ blue "Key:" }}     {{ purple .Key }}
{{ blue "Env:" }}     {{ .Env }}
{{ blue "Value:" }}   {{ hl .Current }}
{{ blue "Default:" }} {{ hl (.Value) }}
{{ blue "Type:" }}    {{ typename .Value }}`))
