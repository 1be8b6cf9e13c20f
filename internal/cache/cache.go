// Package cache stores catalog responses on disk for a limited time.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cine-cli/cine/filesystem"
	"github.com/cine-cli/cine/log"
	"github.com/cine-cli/cine/where"
)

// TTL is how long an entry stays fresh. Popular lists and ratings drift daily.
const TTL = 24 * time.Hour

// GenerateKey derives a file-safe key from a request and its namespace.
func GenerateKey(request, namespace string) string {
	sanitized := strings.ToLower(strings.ReplaceAll(request, " ", "")) + "|" + namespace
	hash := sha256.Sum256([]byte(sanitized))
	return hex.EncodeToString(hash[:])
}

// Read decodes a fresh entry into target and reports whether it did.
func Read(key string, target any) bool {
	path := filepath.Join(where.Catalog(), key)

	info, err := filesystem.API().Stat(path)
	if err != nil || time.Since(info.ModTime()) > TTL {
		return false
	}

	data, err := filesystem.API().ReadFile(path)
	if err != nil {
		return false
	}

	if err := json.Unmarshal(data, target); err != nil {
		log.Debugf("cache: dropping corrupt entry %s: %v", key, err)
		_ = filesystem.API().Remove(path)
		return false
	}
	return true
}

// Write stores data under key, replacing any previous entry atomically.
func Write(key string, data any) error {
	encoded, err := json.Marshal(data)
	if err != nil {
		return err
	}

	return filesystem.WriteAtomic(filepath.Join(where.Catalog(), key), encoded, 0o644)
}

// CollectGarbage removes expired entries.
func CollectGarbage() {
	dir := where.Catalog()
	_ = filesystem.API().Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return nil
		}
		if time.Since(info.ModTime()) > TTL {
			_ = filesystem.API().Remove(path)
		}
		return nil
	})
}

// Clear removes every entry and returns how many were removed.
func Clear() (int, error) {
	dir := where.Catalog()
	entries, err := filesystem.API().ReadDir(dir)
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if err := filesystem.API().Remove(filepath.Join(dir, e.Name())); err != nil {
			return removed, err
		}
		removed++
	}
	return removed, nil
}
