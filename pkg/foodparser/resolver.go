package foodparser

import (
	"time"

	"freezer-inventory/pkg/datemath"
)

// ResolveInput carries every candidate source for one expiration date.
type ResolveInput struct {
	// AIDate is the upstream model's date string; empty when absent.
	AIDate         string
	ExplicitDate   *time.Time
	ExplicitPeriod *datemath.Period
	ShelfLifeDays  int
	// DefaultDays is the caller's generic default, used only to label the
	// last tier as foodkeeper or default.
	DefaultDays int
	Today       time.Time
}

// Resolution is the chosen date and the tier that produced it.
type Resolution struct {
	Date   time.Time
	Source ExpirationSource
}

// maxYear keeps every resolved date printable as YYYY-MM-DD.
const maxYear = 9999

// Resolve picks the expiration date by fixed priority: a valid future AI date,
// then a future explicit date or period, then today + ShelfLifeDays. Past,
// same-day or out-of-range dates from the first two tiers are discarded,
// never adjusted. Day counts outside 1..MaxExpirationDays are ignored.
func Resolve(in ResolveInput) Resolution {
	today := datemath.StartOfDay(in.Today)
	loc := today.Location()

	if d, ok := datemath.ParseDate(in.AIDate, loc); ok && inRange(d, today) {
		return Resolution{Date: d, Source: SourceAI}
	}

	if d, ok := explicitDate(in, today); ok && inRange(d, today) {
		return Resolution{Date: d, Source: SourceExplicit}
	}

	defaultDays := in.DefaultDays
	if !validDays(defaultDays) {
		defaultDays = DefaultExpirationDays
	}
	days := in.ShelfLifeDays
	if !validDays(days) {
		days = defaultDays
	}

	source := SourceFoodKeeper
	if days == defaultDays {
		source = SourceDefault
	}
	return Resolution{Date: today.AddDate(0, 0, days), Source: source}
}

func validDays(days int) bool {
	return days > 0 && days <= MaxExpirationDays
}

// validPeriod rejects periods whose length could exceed MaxExpirationDays.
func validPeriod(p datemath.Period) bool {
	if p.Amount < 0 {
		return false
	}
	switch p.Unit {
	case datemath.UnitWeek:
		return p.Amount <= MaxExpirationDays/7
	case datemath.UnitMonth:
		return p.Amount <= MaxExpirationDays/31
	default:
		return p.Amount <= MaxExpirationDays
	}
}

func inRange(d, today time.Time) bool {
	return d.After(today) && d.Year() <= maxYear
}

func explicitDate(in ResolveInput, today time.Time) (time.Time, bool) {
	switch {
	case in.ExplicitDate != nil:
		d := *in.ExplicitDate
		return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, today.Location()), true
	case in.ExplicitPeriod != nil:
		if !validPeriod(*in.ExplicitPeriod) {
			return time.Time{}, false
		}
		return in.ExplicitPeriod.AddTo(today), true
	}
	return time.Time{}, false
}
