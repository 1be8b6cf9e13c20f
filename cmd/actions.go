package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cine-cli/cine/history"
	"github.com/cine-cli/cine/icon"
	"github.com/cine-cli/cine/log"
	"github.com/cine-cli/cine/open"
	"github.com/cine-cli/cine/player"
	"github.com/cine-cli/cine/provider"
	"github.com/cine-cli/cine/provider/stremio"
	"github.com/cine-cli/cine/provider/torrentio"
	"github.com/cine-cli/cine/provider/vidsrc"
	"github.com/cine-cli/cine/tui"
	"github.com/cine-cli/cine/util"
	"github.com/samber/lo"
)

// action is one entry of the action picker.
type action struct {
	glyph icon.Icon
	label string
	run   func(a *app, ctx context.Context, sel selection) error
}

func (act action) String() string {
	if act.run == nil {
		return act.label
	}
	return icon.Get(act.glyph) + " " + act.label
}

var (
	playVidsrc        = action{icon.Play, "Play with VidSrc", (*app).playVidsrc}
	playTorrentio     = action{icon.Magnet, "Play with Torrentio", (*app).playTorrentio}
	downloadVidsrc    = action{icon.Download, "Download with VidSrc", (*app).downloadVidsrc}
	downloadTorrentio = action{icon.Download, "Download with Torrentio", (*app).downloadTorrentio}
	playDirect        = action{icon.Play, "Play a direct link", (*app).playDirect}
	downloadDirect    = action{icon.Download, "Download a direct link", (*app).downloadDirect}
	openCatalog       = action{icon.Link, "Open on TMDB", (*app).openCatalog}
	skip              = action{label: "Skip"}
)

// actions lists what can be done with a selection. Direct-link actions appear only when a source is configured.
func (a *app) actions() []action {
	actions := []action{playVidsrc, playTorrentio, downloadVidsrc, downloadTorrentio}
	if len(provider.Configured(a.settings, provider.Direct)) > 0 {
		actions = append(actions, playDirect, downloadDirect)
	}
	return append(actions, openCatalog, skip)
}

// act asks what to do with sel and does it.
func (a *app) act(ctx context.Context, sel selection, lastMethod string) error {
	title := "Action"
	if lastMethod != "" {
		title = fmt.Sprintf("Action (last: %s)", lastMethod)
	}

	options := lo.Map(a.actions(), func(act action, _ int) tui.Option {
		return tui.Option{Label: act.String(), Value: act}
	})

	chosen, ok, err := tui.PickValue[action](title, options)
	if err != nil {
		return err
	}
	if !ok || chosen.run == nil {
		fmt.Println("Skipped.")
		return nil
	}

	return chosen.run(a, ctx, sel)
}

// resolve runs the crawl for sel and returns the best candidate.
func (a *app) resolve(ctx context.Context, sel selection) (vidsrc.Candidate, bool, error) {
	erase := util.PrintErasable(fmt.Sprintf("%s Resolving %s...", icon.Get(icon.Progress), sel.displayTitle()))
	candidates, err := a.resolver.Resolve(ctx, sel.request(), resolverLimits(a.settings))
	erase()
	if err != nil {
		return vidsrc.Candidate{}, false, err
	}

	best, ok := vidsrc.Best(candidates).Get()
	if !ok {
		fmt.Println("No streams found via VidSrc.")
	}
	return best, ok, nil
}

func (a *app) playVidsrc(ctx context.Context, sel selection) error {
	best, ok, err := a.resolve(ctx, sel)
	if err != nil || !ok {
		return err
	}

	name, err := player.Choose(a.settings.Player)
	if err != nil {
		fmt.Println("No supported player (mpv/vlc) found on PATH.")
		fmt.Println(best.URL)
		return nil
	}

	fmt.Printf("%s Playing %s with %s\n", icon.Get(icon.Play), sel.displayTitle(), name)
	if _, err := player.Play(name, player.Target{URL: best.URL, Title: sel.displayTitle(), Referrer: best.Referrer()}); err != nil {
		return err
	}

	a.record(sel.entry(history.ActionPlay, "vidsrc"))
	return nil
}

func (a *app) downloadVidsrc(ctx context.Context, sel selection) error {
	best, ok, err := a.resolve(ctx, sel)
	if err != nil || !ok {
		return err
	}

	if !player.Installed(player.YtDlp) {
		printMissingDependency(player.YtDlp, "URL: "+best.URL)
		return nil
	}

	dir, ok, err := downloadDirectory()
	if err != nil || !ok {
		return err
	}

	fmt.Printf("%s Downloading with yt-dlp -> %s\n", icon.Get(icon.Download), filepath.Join(dir, "%(title)s.%(ext)s"))
	if err := player.DownloadDirect(best.URL, dir, best.Referrer()); err != nil {
		return err
	}

	entry := sel.entry(history.ActionDownload, "vidsrc")
	entry.OutDir = dir
	a.record(entry)
	return nil
}

// imdbID looks up the IMDb id the addons key their streams on.
func (a *app) imdbID(ctx context.Context, sel selection) (string, bool, error) {
	id, err := a.catalog.ExternalIDs(ctx, sel.item.Kind, sel.item.ID)
	if err != nil {
		return "", false, fmt.Errorf("failed to fetch external IDs: %w", err)
	}
	if id == "" {
		fmt.Println("No IMDb ID found for item.")
		return "", false, nil
	}
	return id, true, nil
}

// pickTorrent fetches the Torrentio streams of sel and lets the user pick one.
func (a *app) pickTorrent(ctx context.Context, sel selection) (torrentio.Stream, bool, error) {
	id, ok, err := a.imdbID(ctx, sel)
	if err != nil || !ok {
		return torrentio.Stream{}, false, err
	}

	streams, err := a.torrentio.Streams(ctx, sel.target(id))
	if err != nil {
		return torrentio.Stream{}, false, fmt.Errorf("failed to fetch Torrentio streams: %w", err)
	}
	if len(streams) == 0 {
		fmt.Println("No Torrentio streams found.")
		return torrentio.Stream{}, false, nil
	}

	stream, ok, err := tui.PickValue[torrentio.Stream]("Torrentio Stream", lo.Map(streams, func(s torrentio.Stream, _ int) tui.Option {
		return tui.Option{Label: s.Display(), Value: s}
	}))
	if err == nil && !ok {
		fmt.Println("Nothing selected.")
	}
	return stream, ok, err
}

func (a *app) playTorrentio(ctx context.Context, sel selection) error {
	stream, ok, err := a.pickTorrent(ctx, sel)
	if err != nil || !ok {
		return err
	}
	magnet := stream.Magnet()

	name, err := player.Choose(a.settings.Player)
	if err != nil {
		fmt.Println("No supported player (mpv/vlc) found on PATH.")
		fmt.Println("Magnet: " + magnet)
		return nil
	}

	if !player.Installed(player.Webtorrent) {
		printMissingDependency(player.Webtorrent, "Magnet: "+magnet)
		return nil
	}

	fmt.Printf("%s Launching webtorrent -> %s : %s\n", icon.Get(icon.Magnet), name, stream.DisplayName())
	err = player.Stream(magnet, name, stream.FileIdx, a.settings.WebtorrentTmpDir)
	if err != nil && !errors.Is(err, player.ErrMissingBinary) {
		log.Warnf("webtorrent: %v", err)
	}

	a.record(sel.entry(history.ActionPlay, "torrentio"))
	return nil
}

func (a *app) downloadTorrentio(ctx context.Context, sel selection) error {
	stream, ok, err := a.pickTorrent(ctx, sel)
	if err != nil || !ok {
		return err
	}
	magnet := stream.Magnet()

	if !player.Installed(player.Webtorrent) {
		printMissingDependency(player.Webtorrent, "Magnet: "+magnet)
		return nil
	}

	dir, ok, err := downloadDirectory()
	if err != nil || !ok {
		return err
	}

	fmt.Printf("%s Downloading with webtorrent -> %s\n", icon.Get(icon.Download), stream.DisplayName())
	if err := player.DownloadTorrent(magnet, dir, stream.FileIdx); err != nil {
		return err
	}

	entry := sel.entry(history.ActionDownload, "torrentio")
	entry.OutDir = dir
	a.record(entry)
	return nil
}

// gatherDirect queries every configured direct-link source for sel.
func (a *app) gatherDirect(ctx context.Context, sel selection) ([]stremio.DirectStream, error) {
	id, ok, err := a.imdbID(ctx, sel)
	if err != nil || !ok {
		return nil, err
	}

	erase := util.PrintErasable(fmt.Sprintf("%s Querying direct sources...", icon.Get(icon.Progress)))
	results := provider.Gather(ctx, a.clients, provider.Configured(a.settings, provider.Direct), sel.target(id))
	erase()

	for _, r := range results {
		if r.Err != nil {
			log.Warnf("%s: %v", r.Provider, r.Err)
			fmt.Printf("%s %s: %v\n", icon.Get(icon.Fail), r.Provider, r.Err)
		}
	}

	return provider.Flatten(results), nil
}

func (a *app) pickDirect(ctx context.Context, sel selection) (stremio.DirectStream, bool, error) {
	streams, err := a.gatherDirect(ctx, sel)
	if err != nil {
		return stremio.DirectStream{}, false, err
	}
	if len(streams) == 0 {
		fmt.Println("No direct streams found.")
		return stremio.DirectStream{}, false, nil
	}

	return tui.PickValue[stremio.DirectStream]("Direct Stream", lo.Map(streams, func(s stremio.DirectStream, _ int) tui.Option {
		return tui.Option{Label: s.Display(), Description: s.Source, Preview: s.Description, Value: s}
	}))
}

func (a *app) playDirect(ctx context.Context, sel selection) error {
	stream, ok, err := a.pickDirect(ctx, sel)
	if err != nil || !ok {
		return err
	}

	name, err := player.Choose(a.settings.Player)
	if err != nil {
		fmt.Println("No supported player (mpv/vlc) found on PATH.")
		fmt.Println(stream.URL)
		return nil
	}

	if _, err := player.Play(name, player.Target{URL: stream.URL, Title: sel.displayTitle()}); err != nil {
		return err
	}

	a.record(sel.entry(history.ActionPlay, stream.Source))
	return nil
}

func (a *app) downloadDirect(ctx context.Context, sel selection) error {
	stream, ok, err := a.pickDirect(ctx, sel)
	if err != nil || !ok {
		return err
	}

	if !player.Installed(player.YtDlp) {
		printMissingDependency(player.YtDlp, "URL: "+stream.URL)
		return nil
	}

	dir, ok, err := downloadDirectory()
	if err != nil || !ok {
		return err
	}

	if err := player.DownloadDirect(stream.URL, dir, ""); err != nil {
		return err
	}

	entry := sel.entry(history.ActionDownload, stream.Source)
	entry.OutDir = dir
	a.record(entry)
	return nil
}

func (a *app) openCatalog(_ context.Context, sel selection) error {
	return open.Start(fmt.Sprintf("https://www.themoviedb.org/%s/%d", sel.item.Kind, sel.item.ID))
}

// downloadDirectory prompts for a directory and creates it.
func downloadDirectory() (string, bool, error) {
	fallback, _ := os.Getwd()
	dir, err := tui.Directory("Download directory", fallback)
	if err != nil {
		return "", false, err
	}
	if dir == "" {
		fmt.Println("No directory provided.")
		return "", false, nil
	}

	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return "", false, fmt.Errorf("failed to create directory: %w", err)
	}
	return dir, true, nil
}
