// Package history fetches "on this day" facts from the Wikimedia feed API.
package history

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"strings"
	"sync"
	"time"
)

const (
	// DefaultBaseURL is the English Wikipedia on-this-day events feed.
	DefaultBaseURL = "https://api.wikimedia.org/feed/v1/wikipedia/en/onthisday/events"

	// NoFacts is shown when nothing could be fetched for a date.
	NoFacts = "On this day: No historical events found"

	userAgent      = "termcal/1.0"
	requestTimeout = 5 * time.Second
	maxBodyBytes   = 8 << 20
)

// Fact is one historical event.
// Year is kept as the feed spells it, so "44 BC" survives.
type Fact struct {
	Year string `json:"year,omitempty"`
	Text string `json:"text"`
}

func (f Fact) String() string {
	if f.Year != "" {
		return fmt.Sprintf("%s: %s", f.Year, f.Text)
	}
	return f.Text
}

type rawFact struct {
	Year json.RawMessage `json:"year"`
	Text string          `json:"text"`
}

// year renders a feed year of any JSON type. Absent and null are empty.
func (r rawFact) year() string {
	raw := bytes.TrimSpace(r.Year)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s)
	}
	return string(raw)
}

type feed struct {
	Events []json.RawMessage `json:"events"`
}

type monthDay struct {
	month time.Month
	day   int
}

// Provider fetches and caches facts per month and day. It is safe for
// concurrent use.
type Provider struct {
	baseURL string
	client  *http.Client
	logger  *slog.Logger
	choose  func(n int) int

	mu    sync.Mutex
	cache map[monthDay][]Fact
}

// Option configures a Provider.
type Option func(*Provider)

// WithClient sets the HTTP client.
func WithClient(c *http.Client) Option {
	return func(p *Provider) { p.client = c }
}

// WithChooser sets the function picking a fact index in [0, n).
func WithChooser(choose func(n int) int) Option {
	return func(p *Provider) { p.choose = choose }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(p *Provider) { p.logger = l }
}

// NewProvider returns a provider for the feed rooted at baseURL, or
// DefaultBaseURL when empty.
func NewProvider(baseURL string, opts ...Option) *Provider {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	p := &Provider{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: requestTimeout},
		logger:  slog.Default(),
		choose:  rand.IntN,
		cache:   make(map[monthDay][]Fact),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Facts returns the facts for the month and day of d. ok is false when the
// fetch failed; failures are not cached so a later call retries.
func (p *Provider) Facts(ctx context.Context, d time.Time) (facts []Fact, ok bool) {
	key := monthDay{d.Month(), d.Day()}

	p.mu.Lock()
	cached, hit := p.cache[key]
	p.mu.Unlock()
	if hit {
		return cached, true
	}

	facts, err := p.fetch(ctx, key)
	if err != nil {
		p.logger.Warn("history fetch failed", "month", int(key.month), "day", key.day, "err", err)
		return nil, false
	}

	p.mu.Lock()
	p.cache[key] = facts
	p.mu.Unlock()
	return facts, true
}

func (p *Provider) fetch(ctx context.Context, key monthDay) ([]Fact, error) {
	url := fmt.Sprintf("%s/%d/%d", p.baseURL, int(key.month), key.day)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}

	var f feed
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&f); err != nil {
		return nil, fmt.Errorf("decoding feed: %w", err)
	}

	facts := make([]Fact, 0, len(f.Events))
	for i, raw := range f.Events {
		var r rawFact
		if err := json.Unmarshal(raw, &r); err != nil {
			p.logger.Debug("skipping history record", "index", i, "err", err)
			continue
		}
		if text := strings.TrimSpace(r.Text); text != "" {
			facts = append(facts, Fact{Year: r.year(), Text: text})
		}
	}
	p.logger.Debug("history fetched", "month", int(key.month), "day", key.day, "count", len(facts))
	return facts, nil
}

// Random returns a randomly chosen fact for d.
func (p *Provider) Random(ctx context.Context, d time.Time) (Fact, bool) {
	facts, ok := p.Facts(ctx, d)
	if !ok || len(facts) == 0 {
		return Fact{}, false
	}
	return facts[p.choose(len(facts))], true
}

// EventForDisplay returns the banner line for d.
func (p *Provider) EventForDisplay(ctx context.Context, d time.Time) string {
	fact, ok := p.Random(ctx, d)
	if !ok {
		return NoFacts
	}
	return "On this day: " + fact.String()
}
