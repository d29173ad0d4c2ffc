package foodparser

import "strings"

// LookupShelfLife returns freezer storage days for an item.
//
// The first shelf-life keyword contained in name wins. Otherwise the category
// default is used, but only when it differs from defaultDays: a category value
// equal to the generic default is reported as the generic default so callers
// can tell the two apart by comparing numbers. Otherwise defaultDays.
func (kb *KnowledgeBase) LookupShelfLife(name string, category Category, defaultDays int) int {
	lower := strings.ToLower(name)
	for _, e := range kb.ShelfLife {
		if e.Keyword != "" && strings.Contains(lower, e.Keyword) {
			return e.Days
		}
	}

	if days, ok := kb.CategoryDefaults[category]; ok && days != defaultDays {
		return days
	}

	return defaultDays
}
