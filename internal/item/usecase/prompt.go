package usecase

import (
	"strings"
	"time"

	"freezer-inventory/pkg/datemath"
	"freezer-inventory/pkg/foodparser"
)

const candidateSystemPrompt = `You extract structured data from a short description of a freezer item.

Return ONLY one JSON object with these optional keys. Omit a key when the text does not say it.
  "name":           the food itself, without quantity, size, dates or hashtags
  "quantity":       integer count of packages or pieces, at least 1
  "category":       exactly one of: %CATEGORIES%
  "size":           weight or volume as written, e.g. "500g", "2 lbs"
  "expirationDate": YYYY-MM-DD, only when the text states or implies a date
  "tags":           up to 3 short lowercase words

Today is %TODAY%. Resolve relative expressions such as "in 2 weeks" against today.
No markdown, no code fences, no explanation.`

func buildCandidatePrompt(today time.Time) string {
	names := make([]string, len(foodparser.Categories))
	for i, c := range foodparser.Categories {
		names[i] = `"` + string(c) + `"`
	}
	return strings.NewReplacer(
		"%CATEGORIES%", strings.Join(names, ", "),
		"%TODAY%", today.Format(datemath.DateLayout),
	).Replace(candidateSystemPrompt)
}
