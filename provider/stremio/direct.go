package stremio

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// DirectStream is a ready-to-play HTTP link returned by a debrid-backed addon.
type DirectStream struct {
	URL         string            `json:"url"`
	Name        string            `json:"name,omitempty"`
	Title       string            `json:"title,omitempty"`
	Description string            `json:"description,omitempty"`
	Filename    string            `json:"filename,omitempty"`
	Size        mo.Option[uint64] `json:"size_bytes"`
	Source      string            `json:"source,omitempty"`
}

// Display renders the stream label: filename, else name, else title, else the URL tail,
// followed by the humanized size when known.
func (s DirectStream) Display() string {
	label := lo.CoalesceOrEmpty(oneLine(s.Filename), oneLine(s.Name), oneLine(s.Title))
	if label == "" {
		label = urlTail(s.URL, 40)
	}

	if size, ok := s.Size.Get(); ok && size > 0 {
		label += fmt.Sprintf("  (%s)", humanize.IBytes(size))
	}
	return label
}

// Document is the addon stream response.
type Document struct {
	Streams []map[string]any `json:"streams"`
}

// DirectStreams keeps the streams of doc that carry an HTTP link in url, file or src.
func DirectStreams(doc Document) []DirectStream {
	var out []DirectStream
	for _, raw := range doc.Streams {
		link := lo.CoalesceOrEmpty(str(raw, "url"), str(raw, "file"), str(raw, "src"))
		if link == "" {
			continue
		}

		out = append(out, DirectStream{
			URL:         link,
			Name:        str(raw, "name"),
			Title:       str(raw, "title"),
			Description: str(raw, "description"),
			Filename:    filenameOf(raw),
			Size:        sizeOf(raw["size"]),
		})
	}
	return out
}

func filenameOf(raw map[string]any) string {
	if hints, ok := raw["behaviorHints"].(map[string]any); ok {
		if name := str(hints, "filename"); name != "" {
			return name
		}
	}

	desc := str(raw, "description")
	i := strings.Index(strings.ToLower(desc), "filename:")
	if i < 0 {
		return ""
	}
	chunk := desc[i+len("filename:"):]
	chunk, _, _ = strings.Cut(chunk, "\n")
	chunk, _, _ = strings.Cut(chunk, `\n`)
	return strings.TrimSpace(chunk)
}

func sizeOf(v any) mo.Option[uint64] {
	switch size := v.(type) {
	case float64:
		if size >= 0 {
			return mo.Some(uint64(size))
		}
	case string:
		if n, err := strconv.ParseUint(size, 10, 64); err == nil {
			return mo.Some(n)
		}
	}
	return mo.None[uint64]()
}

func str(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

func oneLine(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, `\n`, " ")
}

func urlTail(u string, n int) string {
	parts := strings.SplitN(u, "/", 4)
	tail := parts[len(parts)-1]
	if len(tail) > n {
		tail = tail[:n]
	}
	return tail
}
