package player

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/samber/mo"
)

// Helper programs.
const (
	Webtorrent = "webtorrent"
	YtDlp      = "yt-dlp"
)

// Installed reports whether a helper program is on PATH.
func Installed(name string) bool {
	return installed(name)
}

func selectArgs(fileIdx mo.Option[int]) []string {
	if idx, ok := fileIdx.Get(); ok {
		return []string{"--select", strconv.Itoa(idx)}
	}
	return []string{"--interactive-select"}
}

// WebtorrentArgs builds the webtorrent-cli command line that streams magnet into player.
// Without a file index webtorrent asks which file to play.
func WebtorrentArgs(magnet, player string, fileIdx mo.Option[int], tmpDir string) ([]string, error) {
	magnet, err := sanitizeMediaTarget(magnet)
	if err != nil {
		return nil, err
	}

	args := []string{magnet, "--" + player}
	if tmpDir != "" {
		args = append(args, "--out", tmpDir)
	}
	return append(args, selectArgs(fileIdx)...), nil
}

// Stream plays magnet through webtorrent-cli and player, blocking until webtorrent exits.
func Stream(magnet, player string, fileIdx mo.Option[int], tmpDir string) error {
	args, err := WebtorrentArgs(magnet, player, fileIdx, tmpDir)
	if err != nil {
		return err
	}

	if tmpDir != "" {
		if err := os.MkdirAll(tmpDir, os.ModePerm); err != nil {
			return fmt.Errorf("create webtorrent directory: %w", err)
		}
	}

	return attach(Webtorrent, args...)
}

// DownloadTorrentArgs builds the webtorrent-cli command line that saves magnet into dir.
func DownloadTorrentArgs(magnet, dir string, fileIdx mo.Option[int]) ([]string, error) {
	magnet, err := sanitizeMediaTarget(magnet)
	if err != nil {
		return nil, err
	}

	args := []string{magnet, "--out", dir}
	return append(args, selectArgs(fileIdx)...), nil
}

// DownloadTorrent saves magnet into dir with webtorrent-cli.
func DownloadTorrent(magnet, dir string, fileIdx mo.Option[int]) error {
	args, err := DownloadTorrentArgs(magnet, dir, fileIdx)
	if err != nil {
		return err
	}
	return attach(Webtorrent, args...)
}

// DownloadDirectArgs builds the yt-dlp command line that saves link into dir.
func DownloadDirectArgs(link, dir, referrer string) ([]string, error) {
	link, err := sanitizeMediaTarget(link)
	if err != nil {
		return nil, err
	}

	args := []string{link, "-o", filepath.Join(dir, "%(title)s.%(ext)s")}
	if referrer != "" {
		args = append(args, "--referer", referrer)
	}
	return args, nil
}

// DownloadDirect saves link into dir with yt-dlp.
func DownloadDirect(link, dir, referrer string) error {
	args, err := DownloadDirectArgs(link, dir, referrer)
	if err != nil {
		return err
	}
	return attach(YtDlp, args...)
}
