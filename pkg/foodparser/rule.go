package foodparser

import (
	"regexp"
	"strings"
)

// Rule pairs a matcher with a value extractor. Capture returns false when the
// match is structurally present but yields no usable value (e.g. Feb 30).
type Rule[T any] struct {
	Name    string
	Pattern *regexp.Regexp
	Capture func(m []string) (T, bool)
}

// Match is the outcome of ApplyFirst.
type Match[T any] struct {
	Rule  string
	Value T
	Valid bool
}

// ApplyFirst tries rules top to bottom. The first rule whose pattern matches
// wins: its matched text is cut from text and no later rule runs. The bool
// result reports whether any rule matched.
func ApplyFirst[T any](rules []Rule[T], text string) (Match[T], string, bool) {
	for _, r := range rules {
		loc := r.Pattern.FindStringSubmatchIndex(text)
		if loc == nil {
			continue
		}

		groups := make([]string, len(loc)/2)
		for i := range groups {
			if loc[2*i] >= 0 {
				groups[i] = text[loc[2*i]:loc[2*i+1]]
			}
		}

		var m Match[T]
		m.Rule = r.Name
		if r.Capture != nil {
			m.Value, m.Valid = r.Capture(groups)
		}
		return m, cut(text, loc[0], loc[1]), true
	}
	return Match[T]{}, text, false
}

var spaceRe = regexp.MustCompile(`\s+`)

// cut removes text[start:end] and normalizes whitespace.
func cut(text string, start, end int) string {
	return squash(text[:start] + " " + text[end:])
}

func squash(s string) string {
	return strings.TrimSpace(spaceRe.ReplaceAllString(s, " "))
}
