package vidsrc

import (
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/cine-cli/cine/filesystem"
)

func init() {
	filesystem.SetMemMapFs()
}

// site serves canned pages by exact URL and records every request it receives.
// Unknown URLs answer 404, unless a generator is set and produces a page.
type site struct {
	mu       sync.Mutex
	pages    map[string]string
	generate func(url string) (string, bool)
	requests []*http.Request
}

func newSite(pages map[string]string) *site {
	return &site{pages: pages}
}

func (s *site) RoundTrip(req *http.Request) (*http.Response, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.requests = append(s.requests, req)
	url := req.URL.String()

	body, ok := s.pages[url]
	if !ok && s.generate != nil {
		body, ok = s.generate(url)
	}

	status := http.StatusOK
	if !ok {
		status = http.StatusNotFound
	}

	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": {"text/html"}},
		Body:       io.NopCloser(strings.NewReader(body)),
		Request:    req,
	}, nil
}

func (s *site) client() *http.Client {
	return &http.Client{Transport: s}
}

func (s *site) fetched() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	urls := make([]string, 0, len(s.requests))
	for _, r := range s.requests {
		urls = append(urls, r.URL.String())
	}
	return urls
}

func (s *site) count(url string) int {
	n := 0
	for _, u := range s.fetched() {
		if u == url {
			n++
		}
	}
	return n
}

func (s *site) request(url string) *http.Request {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.requests {
		if r.URL.String() == url {
			return r
		}
	}
	return nil
}
