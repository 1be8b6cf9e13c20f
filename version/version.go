// Package version checks GitHub releases for a newer build.
package version

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/cine-cli/cine/constant"
	"github.com/cine-cli/cine/filesystem"
	"github.com/cine-cli/cine/network"
	"github.com/cine-cli/cine/util"
	"github.com/cine-cli/cine/where"
	"github.com/metafates/gache"
)

// ReleasesAPI is the GitHub API root queried for releases.
var ReleasesAPI = "https://api.github.com/repos/" + constant.Repository

var cacher = gache.New[string](&gache.Options{
	Path:       filepath.Join(where.Cache(), "version.json"),
	Lifetime:   time.Hour * 24 * 2,
	FileSystem: &filesystem.GacheFs{},
})

// ReleaseURL links to the release page of version.
func ReleaseURL(version string) string {
	return fmt.Sprintf("https://github.com/%s/releases/tag/v%s", constant.Repository, version)
}

// Latest returns the newest released version without its "v" prefix.
// Answers are cached for two days.
func Latest(ctx context.Context) (string, error) {
	if cached, expired, err := cacher.Get(); err == nil && !expired && cached != "" {
		return cached, nil
	}

	version, err := fetchLatest(ctx, network.Client)
	if err != nil {
		return "", err
	}

	_ = cacher.Set(version)
	return version, nil
}

func fetchLatest(ctx context.Context, client *http.Client) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ReleasesAPI+"/releases/latest", nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer util.Ignore(resp.Body.Close)

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("github releases: %s", resp.Status)
	}

	var release struct {
		TagName string `json:"tag_name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return "", err
	}

	if release.TagName == "" {
		return "", errors.New("empty tag name")
	}

	return strings.TrimPrefix(release.TagName, "v"), nil
}
