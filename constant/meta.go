// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

import _ "embed"

const (
	// Cine is the canonical application identifier used for filesystem paths and CLI branding.
	Cine = "cine"

	// Version is the current application semantic version string.
	Version = "0.3.0"

	// UserAgent is the default desktop browser User-Agent sent to embed and relay pages.
	UserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/122.0.0.0 Safari/537.36"

	// Repository is the GitHub owner/name pair used for release discovery.
	Repository = "cine-cli/cine"
)

// Build metadata, overridden through -ldflags at release time.
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)

// runtime.GOOS values the launchers branch on.
const (
	Windows = "windows"
	Darwin  = "darwin"
	Linux   = "linux"
	Android = "android"
)

// Banner is shown at the top of the root help.
//
//go:embed ascii.txt
var Banner string
