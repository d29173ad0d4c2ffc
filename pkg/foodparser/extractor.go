package foodparser

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"freezer-inventory/pkg/datemath"
)

// DateKind distinguishes absolute dates from relative periods.
type DateKind string

const (
	KindExplicitDate   DateKind = "explicit-date"
	KindRelativePeriod DateKind = "relative-period"
)

// DateExpr is the value captured by a date pattern. Exactly one of Date and
// Period is set when the capture is valid.
type DateExpr struct {
	Kind   DateKind
	Date   *time.Time
	Period *datemath.Period
}

const (
	numberPattern = `(\d+|one|two|three|four|five|six|seven|eight|nine|ten)`
	unitPattern   = `(days?|weeks?|months?)`
	datePattern   = `(\d{4}[-/]\d{1,2}[-/]\d{1,2}|\d{1,2}[-/]\d{1,2}[-/]\d{2,4})`
)

var numberWords = map[string]int{
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
}

// parseNumber accepts a digit string or one of the words one..ten.
func parseNumber(s string) (int, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if n, ok := numberWords[s]; ok {
		return n, true
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

func absoluteDate(name, expr string) Rule[DateExpr] {
	return Rule[DateExpr]{
		Name:    name,
		Pattern: regexp.MustCompile(`(?i)` + expr + datePattern),
		Capture: func(m []string) (DateExpr, bool) {
			d, ok := datemath.ParseDate(m[1], time.UTC)
			if !ok {
				return DateExpr{Kind: KindExplicitDate}, false
			}
			return DateExpr{Kind: KindExplicitDate, Date: &d}, true
		},
	}
}

func relativePeriod(name, expr string) Rule[DateExpr] {
	return Rule[DateExpr]{
		Name:    name,
		Pattern: regexp.MustCompile(`(?i)` + expr + numberPattern + `\s+` + unitPattern + `\b`),
		Capture: func(m []string) (DateExpr, bool) {
			amount, ok := parseNumber(m[1])
			if !ok {
				return DateExpr{Kind: KindRelativePeriod}, false
			}
			unit, ok := datemath.ParseUnit(m[2])
			if !ok {
				return DateExpr{Kind: KindRelativePeriod}, false
			}
			period := datemath.Period{Amount: amount, Unit: unit}
			if !validPeriod(period) {
				return DateExpr{Kind: KindRelativePeriod}, false
			}
			return DateExpr{Kind: KindRelativePeriod, Period: &period}, true
		},
	}
}

// DatePatterns is tried top to bottom; only the first match is extracted.
var DatePatterns = []Rule[DateExpr]{
	absoluteDate("expires-on", `\bexpires?:?\s*`),
	relativePeriod("expires-in", `\bexpires?\s+in\s+`),
	absoluteDate("best-by", `\b(?:best|use)\s+by:?\s*`),
	relativePeriod("good-for", `\bgood\s+for\s+`),
	relativePeriod("for", `\bfor\s+`),
	relativePeriod("in", `\bin\s+`),
}

var tagRe = regexp.MustCompile(`#(\w+)`)

// SizePatterns captures a "<number><unit>" size.
var SizePatterns = []Rule[string]{
	{
		Name:    "size",
		Pattern: regexp.MustCompile(`(?i)\b\d+(?:\.\d+)?\s*(?:fl\.?\s*oz|lbs?|pounds?|kilograms?|kg|grams?|g|ounces?|oz|milliliters?|ml)\b`),
		Capture: func(m []string) (string, bool) {
			return strings.TrimSpace(m[0]), true
		},
	},
}

func quantityCapture(m []string) (int, bool) {
	n, ok := parseNumber(m[1])
	if !ok || n < 1 {
		return 0, false
	}
	return n, true
}

// QuantityPatterns are anchored at the start of the residual name.
var QuantityPatterns = []Rule[int]{
	{
		Name:    "count-of",
		Pattern: regexp.MustCompile(`(?i)^` + numberPattern + `\s+(?:(?:bags?|packs?|packages?|boxes?|cans?|jars?|bottles?|containers?|cartons?|tubs?|trays?|pieces?|portions?|servings?)\s+)?of\s+`),
		Capture: quantityCapture,
	},
	{
		Name:    "count",
		Pattern: regexp.MustCompile(`(?i)^` + numberPattern + `\s+`),
		Capture: quantityCapture,
	},
}

var leadingOfRe = regexp.MustCompile(`(?i)^of\s+`)

// Extract strips tags, one date expression, a size and a leading quantity from
// raw, in that order, and returns what is left as the name.
func Extract(raw string) Extraction {
	ex := Extraction{Quantity: 1, Tags: []string{}}
	text := squash(raw)

	ex.Tags, text = extractTags(text)

	if m, rest, ok := ApplyFirst(DatePatterns, text); ok {
		text = rest
		if m.Valid {
			ex.ExplicitDate = m.Value.Date
			ex.ExplicitPeriod = m.Value.Period
		}
	}

	if m, rest, ok := ApplyFirst(SizePatterns, text); ok {
		text = rest
		ex.Size = m.Value
	}

	if m, rest, ok := ApplyFirst(QuantityPatterns, text); ok {
		text = rest
		if m.Valid {
			ex.Quantity = m.Value
		}
		text = squash(leadingOfRe.ReplaceAllString(text, ""))
	}

	ex.Name = cleanName(text)
	return ex
}

// extractTags captures every #word and removes it from text.
func extractTags(text string) ([]string, string) {
	var tags []string
	for _, m := range tagRe.FindAllStringSubmatch(text, -1) {
		tags = append(tags, m[1])
	}
	return normalizeTags(tags), squash(tagRe.ReplaceAllString(text, " "))
}

// normalizeTags drops '#', blanks and case-insensitive duplicates and caps the
// result at MaxTags.
func normalizeTags(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]bool, len(in))
	for _, t := range in {
		t = strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(t), "#"))
		key := strings.ToLower(t)
		if t == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, t)
		if len(out) == MaxTags {
			break
		}
	}
	return out
}

func cleanName(s string) string {
	return strings.Trim(squash(s), " ,.;:-")
}
