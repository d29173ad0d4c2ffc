package foodparser_test

import (
	"math"
	"testing"
	"time"

	"freezer-inventory/pkg/datemath"
	"freezer-inventory/pkg/foodparser"
)

var today = time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestResolve(t *testing.T) {
	twoWeeks := &datemath.Period{Amount: 2, Unit: datemath.UnitWeek}
	zeroDays := &datemath.Period{Amount: 0, Unit: datemath.UnitDay}
	hugeMonths := &datemath.Period{Amount: math.MaxInt32, Unit: datemath.UnitMonth}
	tooManyDays := &datemath.Period{Amount: foodparser.MaxExpirationDays + 1, Unit: datemath.UnitDay}
	past := day(2023, 1, 5)
	future := day(2024, 2, 1)

	tests := []struct {
		name       string
		in         foodparser.ResolveInput
		wantDate   time.Time
		wantSource foodparser.ExpirationSource
	}{
		{
			name:       "AI date wins over explicit",
			in:         foodparser.ResolveInput{AIDate: "2024-06-01", ExplicitPeriod: twoWeeks, ShelfLifeDays: 270, DefaultDays: 30, Today: today},
			wantDate:   day(2024, 6, 1),
			wantSource: foodparser.SourceAI,
		},
		{
			name:       "AI RFC3339 uses date part",
			in:         foodparser.ResolveInput{AIDate: "2024-05-01T12:00:00Z", ShelfLifeDays: 270, DefaultDays: 30, Today: today},
			wantDate:   day(2024, 5, 1),
			wantSource: foodparser.SourceAI,
		},
		{
			name:       "Past AI date falls through to explicit",
			in:         foodparser.ResolveInput{AIDate: "2023-12-01", ExplicitPeriod: twoWeeks, ShelfLifeDays: 270, DefaultDays: 30, Today: today},
			wantDate:   day(2024, 1, 24),
			wantSource: foodparser.SourceExplicit,
		},
		{
			name:       "Same-day AI date is not in the future",
			in:         foodparser.ResolveInput{AIDate: "2024-01-10", ShelfLifeDays: 270, DefaultDays: 30, Today: today},
			wantDate:   day(2024, 10, 6),
			wantSource: foodparser.SourceFoodKeeper,
		},
		{
			name:       "Unparseable AI date is ignored",
			in:         foodparser.ResolveInput{AIDate: "soon", ExplicitDate: &future, ShelfLifeDays: 270, DefaultDays: 30, Today: today},
			wantDate:   future,
			wantSource: foodparser.SourceExplicit,
		},
		{
			name:       "Past explicit date falls through to shelf life",
			in:         foodparser.ResolveInput{ExplicitDate: &past, ShelfLifeDays: 60, DefaultDays: 30, Today: today},
			wantDate:   day(2024, 3, 10),
			wantSource: foodparser.SourceFoodKeeper,
		},
		{
			name:       "Zero-length period is not in the future",
			in:         foodparser.ResolveInput{ExplicitPeriod: zeroDays, ShelfLifeDays: 30, DefaultDays: 30, Today: today},
			wantDate:   day(2024, 2, 9),
			wantSource: foodparser.SourceDefault,
		},
		{
			name:       "Shelf life equal to default is labeled default",
			in:         foodparser.ResolveInput{ShelfLifeDays: 60, DefaultDays: 60, Today: today},
			wantDate:   day(2024, 3, 10),
			wantSource: foodparser.SourceDefault,
		},
		{
			name:       "Missing shelf life uses default days",
			in:         foodparser.ResolveInput{DefaultDays: 45, Today: today},
			wantDate:   day(2024, 2, 24),
			wantSource: foodparser.SourceDefault,
		},
		{
			name:       "Huge default days fall back to the built-in default",
			in:         foodparser.ResolveInput{DefaultDays: math.MaxInt, Today: today},
			wantDate:   day(2024, 2, 9),
			wantSource: foodparser.SourceDefault,
		},
		{
			name:       "Huge shelf life falls back to default days",
			in:         foodparser.ResolveInput{ShelfLifeDays: math.MaxInt, DefaultDays: 45, Today: today},
			wantDate:   day(2024, 2, 24),
			wantSource: foodparser.SourceDefault,
		},
		{
			name:       "Longest allowed default",
			in:         foodparser.ResolveInput{DefaultDays: foodparser.MaxExpirationDays, Today: today},
			wantDate:   today.AddDate(0, 0, foodparser.MaxExpirationDays),
			wantSource: foodparser.SourceDefault,
		},
		{
			name:       "Oversized month period is discarded",
			in:         foodparser.ResolveInput{ExplicitPeriod: hugeMonths, ShelfLifeDays: 60, DefaultDays: 30, Today: today},
			wantDate:   day(2024, 3, 10),
			wantSource: foodparser.SourceFoodKeeper,
		},
		{
			name:       "Period past the day bound is discarded",
			in:         foodparser.ResolveInput{ExplicitPeriod: tooManyDays, DefaultDays: 30, Today: today},
			wantDate:   day(2024, 2, 9),
			wantSource: foodparser.SourceDefault,
		},
		{
			name:       "Last printable AI date is kept",
			in:         foodparser.ResolveInput{AIDate: "9999-12-31", DefaultDays: 30, Today: today},
			wantDate:   day(9999, 12, 31),
			wantSource: foodparser.SourceAI,
		},
		{
			name:       "Today is truncated to midnight",
			in:         foodparser.ResolveInput{ShelfLifeDays: 1, DefaultDays: 30, Today: today.Add(23 * time.Hour)},
			wantDate:   day(2024, 1, 11),
			wantSource: foodparser.SourceFoodKeeper,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := foodparser.Resolve(tt.in)
			if !got.Date.Equal(tt.wantDate) {
				t.Errorf("Date = %v, want %v", got.Date, tt.wantDate)
			}
			if got.Source != tt.wantSource {
				t.Errorf("Source = %q, want %q", got.Source, tt.wantSource)
			}
		})
	}
}

func TestResolveExplicitDateUsesTodayLocation(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}

	explicit := day(2024, 2, 1)
	got := foodparser.Resolve(foodparser.ResolveInput{
		ExplicitDate: &explicit,
		DefaultDays:  30,
		Today:        time.Date(2024, 1, 10, 0, 0, 0, 0, tokyo),
	})

	want := time.Date(2024, 2, 1, 0, 0, 0, 0, tokyo)
	if !got.Date.Equal(want) {
		t.Errorf("Date = %v, want %v", got.Date, want)
	}
	if got.Date.Location() != tokyo {
		t.Errorf("Location = %v, want %v", got.Date.Location(), tokyo)
	}
}
