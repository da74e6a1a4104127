// Package scraper collects course listings and program requirements from the
// Berkeley catalog pages and writes them as CSV files the service can load.
package scraper

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	DefaultBaseURL   = "https://undergraduate.catalog.berkeley.edu"
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
	DefaultDelay     = time.Second
	DefaultMaxPages  = 5
	DefaultTimeout   = 30 * time.Second

	// maxBodyBytes caps a single page download
	maxBodyBytes = 8 << 20
)

// DefaultDepartments are checked for department course listings
var DefaultDepartments = []string{
	"COMPSCI", "MATH", "PHYSICS", "CHEM", "BIOLOGY", "ENGLISH", "HISTORY",
	"ECON", "PSYCH", "POLSCI", "SOCIOL", "ANTHRO", "ART", "MUSIC",
}

var errStatus = errors.New("unexpected status")

// Config controls where and how politely pages are fetched
type Config struct {
	BaseURL     string
	UserAgent   string
	Delay       time.Duration
	MaxPages    int
	Timeout     time.Duration
	Departments []string
}

func (c Config) withDefaults() Config {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")
	if c.UserAgent == "" {
		c.UserAgent = DefaultUserAgent
	}
	if c.Delay < 0 {
		c.Delay = 0
	}
	if c.MaxPages <= 0 {
		c.MaxPages = DefaultMaxPages
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.Departments == nil {
		c.Departments = DefaultDepartments
	}
	return c
}

// Scraper fetches catalog pages one at a time
type Scraper struct {
	cfg    Config
	client *http.Client
	log    zerolog.Logger
}

// New creates a scraper with its own HTTP client
func New(cfg Config, log zerolog.Logger) *Scraper {
	cfg = cfg.withDefaults()
	return &Scraper{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		log:    log,
	}
}

// fetch downloads and parses one page
func (s *Scraper) fetch(ctx context.Context, target string) (*Page, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", s.cfg.UserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", target, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("get %s: %w %d", target, errStatus, resp.StatusCode)
	}

	return ParsePage(io.LimitReader(resp.Body, maxBodyBytes))
}

// pause waits the configured delay between requests
func (s *Scraper) pause(ctx context.Context) error {
	if s.cfg.Delay == 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(s.cfg.Delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// links returns the absolute URLs of anchors whose href contains segment and
// whose text is longer than three characters, in page order without repeats
func (s *Scraper) links(p *Page, segment string) []Link {
	base, err := url.Parse(s.cfg.BaseURL + "/")
	if err != nil {
		return nil
	}

	seen := make(map[string]bool)
	var out []Link
	for _, l := range p.Links {
		if !strings.Contains(l.Href, segment) || len(l.Text) <= 3 {
			continue
		}
		ref, err := url.Parse(l.Href)
		if err != nil {
			continue
		}
		abs := base.ResolveReference(ref).String()
		if seen[abs] {
			continue
		}
		seen[abs] = true
		out = append(out, Link{Href: abs, Text: l.Text})
	}
	return out
}
