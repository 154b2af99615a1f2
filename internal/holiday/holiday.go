// Package holiday answers "is this date a public holiday, and what is it
// called" for the configured country. Lookup tables are built one year at a
// time and kept until the settings change.
package holiday

import (
	"log/slog"
	"sync"
	"time"

	"github.com/chris-regnier/termcal/internal/calendar"
)

// Source produces the holidays of one year for a country and optional
// subdivision. Keys are normalized dates.
type Source interface {
	Holidays(country, subdivision string, year int) map[time.Time]string
}

// Settings selects which holidays are reported.
type Settings struct {
	Country      string
	Subdivision  string
	ShowHolidays bool
}

// Provider caches per-year holiday tables from a Source. It is safe for
// concurrent use.
type Provider struct {
	source Source
	logger *slog.Logger

	mu       sync.Mutex
	settings Settings
	years    map[int]map[time.Time]string
}

// NewProvider returns a provider reading from source, or from Registry when
// source is nil.
func NewProvider(settings Settings, source Source, logger *slog.Logger) *Provider {
	if source == nil {
		source = Registry{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	p := &Provider{
		source: source,
		logger: logger,
		years:  make(map[int]map[time.Time]string),
	}
	p.apply(settings)
	return p
}

// Settings returns the current settings.
func (p *Provider) Settings() Settings {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.settings
}

// Reconfigure replaces the settings and drops every cached year.
func (p *Provider) Reconfigure(settings Settings) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.apply(settings)
	p.years = make(map[int]map[time.Time]string)
}

// ClearCache drops every cached year.
func (p *Provider) ClearCache() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.years = make(map[int]map[time.Time]string)
}

func (p *Provider) apply(settings Settings) {
	if settings.ShowHolidays {
		if code, region, ok := Resolve(settings.Country, settings.Subdivision); !ok {
			p.logger.Warn("holiday calendar not available, using fallback",
				"country", settings.Country, "subdivision", settings.Subdivision,
				"using_country", code, "using_subdivision", region)
		}
	}
	p.settings = settings
}

// IsHoliday reports whether d is a holiday.
func (p *Provider) IsHoliday(d time.Time) bool {
	_, ok := p.Name(d)
	return ok
}

// Name returns the holiday name for d.
func (p *Provider) Name(d time.Time) (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.settings.ShowHolidays {
		return "", false
	}
	d = calendar.NormalizeDate(d)
	name, ok := p.year(d.Year())[d]
	return name, ok
}

// InMonth returns the holidays between the first and last day of the month.
func (p *Provider) InMonth(year int, month time.Month) map[time.Time]string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make(map[time.Time]string)
	if !p.settings.ShowHolidays {
		return out
	}
	for d, name := range p.year(year) {
		if d.Month() == month {
			out[d] = name
		}
	}
	return out
}

// year returns the cached table for year, building it on first use. The
// caller holds p.mu.
func (p *Provider) year(year int) map[time.Time]string {
	if table, ok := p.years[year]; ok {
		return table
	}
	table := p.source.Holidays(p.settings.Country, p.settings.Subdivision, year)
	if table == nil {
		table = make(map[time.Time]string)
	}
	p.years[year] = table
	p.logger.Debug("holiday table built", "year", year, "country", p.settings.Country, "count", len(table))
	return table
}
