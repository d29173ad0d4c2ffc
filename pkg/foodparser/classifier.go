package foodparser

import "strings"

// Classify returns the category of the first classifier rule with a keyword
// contained in name, or CategoryOther.
func (kb *KnowledgeBase) Classify(name string) Category {
	lower := strings.ToLower(name)
	for _, r := range kb.ClassifierRules {
		if containsAny(lower, r.Keywords) {
			return r.Category
		}
	}
	return CategoryOther
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if kw != "" && strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
