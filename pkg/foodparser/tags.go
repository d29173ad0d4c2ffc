package foodparser

import "strings"

// SuggestTags derives fallback tags from category and name: a category base
// tag, meal-time tags, then PadTag when fewer than two tags were found.
func (kb *KnowledgeBase) SuggestTags(name string, category Category) []string {
	lower := strings.ToLower(name)

	var tags []string
	if category == CategoryFruitsVegetables {
		if containsAny(lower, kb.FruitKeywords) {
			tags = append(tags, "fruit")
		} else {
			tags = append(tags, "veggie")
		}
		tags = append(tags, "healthy")
	} else {
		tags = append(tags, kb.CategoryTags[category]...)
	}

	for _, r := range kb.MealTimeRules {
		if containsAny(lower, r.Keywords) {
			tags = append(tags, r.Tag)
		}
	}

	tags = normalizeTags(tags)
	if len(tags) < 2 && kb.PadTag != "" {
		tags = normalizeTags(append(tags, kb.PadTag))
	}
	return tags
}
