package holiday

import (
	"slices"
	"strings"
	"time"

	"github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/ar"
	"github.com/rickar/cal/v2/at"
	"github.com/rickar/cal/v2/au"
	"github.com/rickar/cal/v2/be"
	"github.com/rickar/cal/v2/bg"
	"github.com/rickar/cal/v2/br"
	"github.com/rickar/cal/v2/ca"
	"github.com/rickar/cal/v2/ch"
	"github.com/rickar/cal/v2/cz"
	"github.com/rickar/cal/v2/de"
	"github.com/rickar/cal/v2/dk"
	"github.com/rickar/cal/v2/es"
	"github.com/rickar/cal/v2/fr"
	"github.com/rickar/cal/v2/gb"
	"github.com/rickar/cal/v2/gr"
	"github.com/rickar/cal/v2/hr"
	"github.com/rickar/cal/v2/ie"
	"github.com/rickar/cal/v2/it"
	"github.com/rickar/cal/v2/jp"
	"github.com/rickar/cal/v2/lt"
	"github.com/rickar/cal/v2/lv"
	"github.com/rickar/cal/v2/mw"
	"github.com/rickar/cal/v2/nc"
	"github.com/rickar/cal/v2/nl"
	"github.com/rickar/cal/v2/no"
	"github.com/rickar/cal/v2/nz"
	"github.com/rickar/cal/v2/pl"
	"github.com/rickar/cal/v2/ro"
	"github.com/rickar/cal/v2/ru"
	"github.com/rickar/cal/v2/se"
	"github.com/rickar/cal/v2/si"
	"github.com/rickar/cal/v2/sk"
	"github.com/rickar/cal/v2/ua"
	"github.com/rickar/cal/v2/us"
	"github.com/rickar/cal/v2/za"

	"github.com/chris-regnier/termcal/internal/calendar"
)

// FallbackCountry is used whenever the configured country has no holiday
// list.
const FallbackCountry = "US"

// countries maps ISO 3166-1 codes to their national lists.
var countries = map[string][]*cal.Holiday{
	"AR": ar.Holidays,
	"AT": at.Holidays,
	"BE": be.Holidays,
	"BG": bg.Holidays,
	"BR": br.Holidays,
	"CA": ca.Holidays,
	"CH": ch.Holidays,
	"CZ": cz.Holidays,
	"DE": de.Holidays,
	"DK": dk.Holidays,
	"ES": es.Holidays,
	"FR": fr.Holidays,
	"GB": gb.Holidays,
	"GR": gr.Holidays,
	"HR": hr.Holidays,
	"IE": ie.Holidays,
	"IT": it.Holidays,
	"JP": jp.Holidays,
	"LT": lt.Holidays,
	"LV": lv.Holidays,
	"MW": mw.Holidays,
	"NC": nc.Holidays,
	"NL": nl.Holidays,
	"NO": no.Holidays,
	"NZ": nz.Holidays,
	"PL": pl.Holidays,
	"RO": ro.Holidays,
	"RU": ru.Holidays,
	"SE": se.Holidays,
	"SI": si.Holidays,
	"SK": sk.Holidays,
	"UA": ua.Holidays,
	"US": us.Holidays,
	"ZA": za.Holidays,
}

// subdivisions maps a country to its regional lists, keyed by ISO 3166-2
// subdivision code. Australia has no national list; a state is required.
var subdivisions = map[string]map[string][]*cal.Holiday{
	"AU": {
		"ACT":  au.HolidaysACT,
		"NSW":  au.HolidaysNSW,
		"NT":   au.HolidaysNT,
		"QLD":  au.HolidaysQLD,
		"SA":   au.HolidaysSA,
		"TAS":  au.HolidaysTAS,
		"VIC":  au.HolidaysVIC,
		"WA":   au.HolidaysWA,
	},
	"CH": {
		"ZH": ch.HolidaysZH,
		"BE": ch.HolidaysBE,
		"LU": ch.HolidaysLU,
		"UR": ch.HolidaysUR,
		"SZ": ch.HolidaysSZ,
		"OW": ch.HolidaysOW,
		"NW": ch.HolidaysNW,
		"GL": ch.HolidaysGL,
		"ZG": ch.HolidaysZG,
		"FR": ch.HolidaysFR,
		"SO": ch.HolidaysSO,
		"BS": ch.HolidaysBS,
		"BL": ch.HolidaysBL,
		"SH": ch.HolidaysSH,
		"AR": ch.HolidaysAR,
		"AI": ch.HolidaysAI,
		"SG": ch.HolidaysSG,
		"GR": ch.HolidaysGR,
		"AG": ch.HolidaysAG,
		"TG": ch.HolidaysTG,
		"VD": ch.HolidaysVD,
		"TI": ch.HolidaysTI,
		"VS": ch.HolidaysVS,
		"NE": ch.HolidaysNE,
		"GE": ch.HolidaysGE,
		"JU": ch.HolidaysJU,
	},
	"DE": {
		"BW": de.HolidaysBW,
		"BY": de.HolidaysBY,
		"BE": de.HolidaysBE,
		"BB": de.HolidaysBB,
		"HB": de.HolidaysHB,
		"HH": de.HolidaysHH,
		"HE": de.HolidaysHE,
		"MV": de.HolidaysMV,
		"NI": de.HolidaysNI,
		"NW": de.HolidaysNW,
		"RP": de.HolidaysRP,
		"SL": de.HolidaysSL,
		"SN": de.HolidaysSN,
		"ST": de.HolidaysST,
		"SH": de.HolidaysSH,
		"TH": de.HolidaysTH,
	},
}

// SupportedCountries returns the registered ISO country codes, sorted.
func SupportedCountries() []string {
	out := make([]string, 0, len(countries)+1)
	for code := range countries {
		out = append(out, code)
	}
	for code := range subdivisions {
		if _, ok := countries[code]; !ok {
			out = append(out, code)
		}
	}
	slices.Sort(out)
	return out
}

// Subdivisions returns the subdivision codes registered for country, sorted.
func Subdivisions(country string) []string {
	regions := subdivisions[strings.ToUpper(strings.TrimSpace(country))]
	out := make([]string, 0, len(regions))
	for code := range regions {
		out = append(out, code)
	}
	slices.Sort(out)
	return out
}

// Resolve returns the country and subdivision whose list will actually be
// used, and whether that is the one asked for. A known country with an
// unknown subdivision uses its national list; an unknown country, or a
// country without a national list and no valid subdivision, uses
// FallbackCountry.
func Resolve(country, subdivision string) (code, region string, ok bool) {
	code = strings.ToUpper(strings.TrimSpace(country))
	region = strings.ToUpper(strings.TrimSpace(subdivision))
	if _, found := lookup(code, region); found {
		return code, region, true
	}
	if _, found := lookup(code, ""); found {
		return code, "", false
	}
	return FallbackCountry, "", false
}

func lookup(code, region string) ([]*cal.Holiday, bool) {
	if region == "" {
		list, ok := countries[code]
		return list, ok
	}
	list, ok := subdivisions[code][region]
	return list, ok
}

// Registry is the Source backed by the rickar/cal country packages.
type Registry struct{}

// Holidays returns every holiday falling in year. Observed days that differ
// from the actual date are listed under "<name> (Observed)", which can pull
// in a date from the following year's holiday (New Year's Day observed on
// December 31).
func (Registry) Holidays(country, subdivision string, year int) map[time.Time]string {
	code, region, _ := Resolve(country, subdivision)
	list, _ := lookup(code, region)
	out := make(map[time.Time]string)
	add := func(d time.Time, name string) {
		if d.IsZero() || d.Year() != year {
			return
		}
		d = calendar.NormalizeDate(d)
		if existing, ok := out[d]; ok {
			if existing == name || strings.Contains(existing, name) {
				return
			}
			name = existing + "; " + name
		}
		out[d] = name
	}

	for _, y := range []int{year, year + 1} {
		for _, h := range list {
			actual, observed := h.Calc(y)
			add(actual, h.Name)
			if !observed.IsZero() && !calendar.NormalizeDate(observed).Equal(calendar.NormalizeDate(actual)) {
				add(observed, h.Name+" (Observed)")
			}
		}
	}
	return out
}
