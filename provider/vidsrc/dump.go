package vidsrc

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/cine-cli/cine/filesystem"
	"github.com/cine-cli/cine/log"
)

// dumpedHops is how many crawled pages are saved per embed attempt.
const dumpedHops = 3

// dumper saves fetched pages for offline inspection of markup changes.
type dumper struct {
	enabled bool
	dir     string
	stamp   int64
}

func newDumper(config Config) *dumper {
	return &dumper{
		enabled: config.DumpHTML && config.DumpDir != "",
		dir:     config.DumpDir,
		stamp:   time.Now().Unix(),
	}
}

func (d *dumper) embed(attempt int, html string) {
	d.write(fmt.Sprintf("vidsrc_embed_%d_%d.html", d.stamp, attempt), html)
}

func (d *dumper) hop(attempt, page int, html string) {
	if page > dumpedHops {
		return
	}
	d.write(fmt.Sprintf("vidsrc_crawl_%d_%d_%d.html", d.stamp, attempt, page), html)
}

func (d *dumper) write(name, html string) {
	if !d.enabled {
		return
	}

	path := filepath.Join(d.dir, name)
	if err := filesystem.API().MkdirAll(d.dir, 0o755); err != nil {
		log.Debugf("vidsrc: dump dir: %v", err)
		return
	}
	if err := filesystem.API().WriteFile(path, []byte(html), 0o644); err != nil {
		log.Debugf("vidsrc: dump %s: %v", name, err)
	}
}
