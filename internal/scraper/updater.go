package scraper

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/cine-cli/cine/filesystem"
)

// maxScriptSize caps downloaded scripts.
const maxScriptSize = 1 << 20

// Install downloads the script at remoteURL into localPath.
// It reports false when the local copy is already identical.
// Scripts that do not compile are rejected and never written.
func Install(ctx context.Context, client *http.Client, remoteURL, localPath string) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, remoteURL, nil)
	if err != nil {
		return false, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("download %s: unexpected status %s", remoteURL, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxScriptSize))
	if err != nil {
		return false, err
	}

	if local, err := filesystem.API().ReadFile(localPath); err == nil && bytes.Equal(local, body) {
		return false, nil
	}

	if _, err := Compile(body, remoteURL); err != nil {
		return false, fmt.Errorf("downloaded script does not compile: %w", err)
	}

	if err := filesystem.WriteAtomic(localPath, body, 0o644); err != nil {
		return false, err
	}

	return true, nil
}
