// Package history keeps an append-only log of what was played or downloaded.
package history

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/cine-cli/cine/filesystem"
	"github.com/cine-cli/cine/log"
	"github.com/cine-cli/cine/where"
)

// timestampLayout sorts lexicographically in time order.
const timestampLayout = "2006-01-02T15:04:05.000000Z"

// Log is a JSON-lines history file.
type Log struct {
	path string
	mu   sync.Mutex
	now  func() time.Time
}

// Open returns the log stored at path.
func Open(path string) *Log {
	return &Log{path: path, now: time.Now}
}

// Default returns the log in the data directory.
func Default() *Log {
	return Open(where.History())
}

// Add appends e, stamped with the current UTC time.
func (l *Log) Add(e Entry) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	e.Timestamp = l.now().UTC().Format(timestampLayout)
	line, err := json.Marshal(e)
	if err != nil {
		return err
	}

	if err := filesystem.API().MkdirAll(filepath.Dir(l.path), os.ModePerm); err != nil {
		return err
	}

	f, err := filesystem.API().OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(append(line, '\n'))
	return err
}

// List returns the last limit entries, oldest first. Malformed lines are skipped.
func (l *Log) List(limit int) ([]Entry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	data, err := filesystem.API().ReadFile(l.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var entries []Entry
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for n := 1; scanner.Scan(); n++ {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		var e Entry
		if err := json.Unmarshal(line, &e); err != nil {
			log.Warnf("history: skipping line %d: %v", n, err)
			continue
		}
		entries = append(entries, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if limit > 0 && len(entries) > limit {
		entries = entries[len(entries)-limit:]
	}
	return entries, nil
}

// Summary aggregates the entries about one movie or episode.
type Summary struct {
	Entry
	// LastMethod is the method of the latest play.
	LastMethod string `json:"last_method,omitempty"`
	LastPlay   string `json:"last_play_ts,omitempty"`
}

// LastSeen is the time used for ordering: the last play, else the last entry.
func (s Summary) LastSeen() string {
	if s.LastPlay != "" {
		return s.LastPlay
	}
	return s.Timestamp
}

// Summarize folds the last limit entries into one summary per movie or episode,
// most recently played first.
func (l *Log) Summarize(limit int) ([]Summary, error) {
	entries, err := l.List(limit)
	if err != nil {
		return nil, err
	}

	index := make(map[string]int)
	var summaries []Summary

	for _, e := range entries {
		if e.ID == 0 || e.Kind == "" {
			continue
		}

		k := e.key()
		i, ok := index[k]
		if !ok {
			index[k] = len(summaries)
			summaries = append(summaries, Summary{Entry: e})
			i = len(summaries) - 1
		}
		merge(&summaries[i], e)
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].LastSeen() > summaries[j].LastSeen()
	})
	return summaries, nil
}

func merge(s *Summary, e Entry) {
	if e.Title != "" {
		s.Title = e.Title
	}
	if e.PosterURL != "" {
		s.PosterURL = e.PosterURL
	}
	if e.BackdropURL != "" {
		s.BackdropURL = e.BackdropURL
	}
	if e.ReleaseYear.IsPresent() {
		s.ReleaseYear = e.ReleaseYear
	}
	if e.VoteAverage.IsPresent() {
		s.VoteAverage = e.VoteAverage
	}
	if e.Episode.IsPresent() {
		s.Episode = e.Episode
	}
	if e.Action == ActionPlay && e.Method != "" {
		s.LastMethod = e.Method
		s.LastPlay = e.Timestamp
	}
	if e.Timestamp != "" {
		s.Timestamp = e.Timestamp
	}
	s.Action, s.Method = e.Action, e.Method
}
