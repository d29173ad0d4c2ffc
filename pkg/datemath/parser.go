package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Parser resolves calendar dates in a fixed timezone.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "America/New_York"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Today returns midnight of now's calendar day in the parser's timezone.
func (p *Parser) Today(now time.Time) time.Time {
	return StartOfDay(now.In(p.location))
}

// ParseDate parses a calendar date in the parser's timezone.
func (p *Parser) ParseDate(s string) (time.Time, bool) {
	return ParseDate(s, p.location)
}

// StartOfDay returns midnight at the start of t's day in t's location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ParseUnit maps "day", "weeks", "Month" etc. to a Unit.
func ParseUnit(s string) (Unit, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case strings.HasPrefix(s, "day"):
		return UnitDay, true
	case strings.HasPrefix(s, "week"):
		return UnitWeek, true
	case strings.HasPrefix(s, "month"):
		return UnitMonth, true
	}
	return "", false
}

var (
	isoDateRe = regexp.MustCompile(`^(\d{4})[-/](\d{1,2})[-/](\d{1,2})$`)
	usDateRe  = regexp.MustCompile(`^(\d{1,2})[-/](\d{1,2})[-/](\d{2}|\d{4})$`)
)

// ParseDate parses YYYY-MM-DD, YYYY/MM/DD, MM/DD/YYYY, MM-DD-YYYY or MM/DD/YY
// (two-digit years are 20YY). RFC3339 timestamps are reduced to their date part.
// It reports false for anything that is not a real calendar date.
func ParseDate(s string, loc *time.Location) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if loc == nil {
		loc = time.UTC
	}

	if ts, err := time.Parse(time.RFC3339, s); err == nil {
		return date(ts.Year(), int(ts.Month()), ts.Day(), loc)
	}

	if m := isoDateRe.FindStringSubmatch(s); m != nil {
		return date(atoi(m[1]), atoi(m[2]), atoi(m[3]), loc)
	}

	if m := usDateRe.FindStringSubmatch(s); m != nil {
		year := atoi(m[3])
		if len(m[3]) == 2 {
			year += 2000
		}
		return date(year, atoi(m[1]), atoi(m[2]), loc)
	}

	return time.Time{}, false
}

// date builds a date and rejects values time.Date would normalize (Feb 30 etc).
func date(year, month, day int, loc *time.Location) (time.Time, bool) {
	if month < 1 || month > 12 || day < 1 {
		return time.Time{}, false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
