package player

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
)

func mpvArgs(target, title, referrer string) []string {
	args := []string{
		"--force-window=yes",
	}

	if title != "" {
		args = append(args, "--force-media-title="+title)
	}

	if referrer != "" {
		args = append(args, "--referrer="+referrer)
	}

	return append(args, target)
}

// sanitizeMediaTarget keeps scraped URLs from being read as player flags.
func sanitizeMediaTarget(link string) (string, error) {
	l := strings.TrimSpace(link)
	if l == "" {
		return "", fmt.Errorf("empty URL")
	}

	if strings.ContainsAny(l, "\x00\n\r") {
		return "", fmt.Errorf("invalid control characters in URL")
	}

	if strings.HasPrefix(l, "-") {
		return "", fmt.Errorf("url must not start with '-' (looks like a flag)")
	}

	if strings.HasPrefix(strings.ToLower(l), "magnet:") {
		return l, nil
	}

	if strings.Contains(l, "://") {
		u, err := url.Parse(l)
		if err != nil {
			return "", fmt.Errorf("invalid URL: %w", err)
		}
		switch strings.ToLower(u.Scheme) {
		case "http", "https":
			return l, nil
		default:
			return "", fmt.Errorf("unsupported URL scheme: %s", u.Scheme)
		}
	}

	return filepath.Clean(l), nil
}

// sanitizeTitle flattens a title onto one line.
func sanitizeTitle(title string) string {
	t := strings.NewReplacer("\n", " ", "\r", " ", "\t", " ", "\x00", "").Replace(title)
	return strings.TrimSpace(t)
}
