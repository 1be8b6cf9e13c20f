// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Catalog - these keys configure the TMDB metadata client.
const (
	TMDBAPIKey   = "tmdb.api_key"
	TMDBLanguage = "tmdb.language"
)

// Media Playback - these keys select and tune the external player.
const (
	Player             = "player.default"
	PlayerImagePreview = "player.image_preview"
)

// Torrent Streaming
const (
	WebtorrentTmpDir = "webtorrent.tmp_dir"
)

// Debrid and Stremio addon sources - empty values hide the corresponding actions.
const (
	TorboxAPIKey       = "torbox.api_key"
	StreamthruManifest = "streams.streamthru_manifest"
	CometManifest      = "streams.comet_manifest"
)

// Stream Resolver - these keys bound and target the embed-page crawl.
const (
	ResolverDomains       = "resolver.domains"
	ResolverRelayFallback = "resolver.relay_fallback"
	ResolverMaxHosts      = "resolver.max_hosts"
	ResolverMaxPages      = "resolver.max_pages"
	ResolverTimeout       = "resolver.timeout"
)

// Network
const (
	NetworkProxyPrefix    = "network.proxy_prefix"
	NetworkUserAgent      = "network.user_agent"
	NetworkAcceptLanguage = "network.accept_language"
	NetworkTLSFingerprint = "network.tls_fingerprint"
)

// Debugging
const (
	DebugDumpHTML = "debug.dump_html"
)

// History Tracking
const (
	HistoryWrite = "history.write"
)

// Search Interaction
const (
	SearchShowQuerySuggestions = "search.show_query_suggestions"
)

// Iconography
const (
	IconsVariant = "icons.variant"
)

// Terminal User Interface (TUI)
const (
	TUIItemSpacing = "tui.item_spacing"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
