package foodparser

import "strings"

// Category is the closed set of inventory categories. The zero value is not
// a member; use Other as the fallback.
type Category string

const (
	CategoryMeatPoultry       Category = "Meat & Poultry"
	CategorySeafood           Category = "Seafood"
	CategoryFruitsVegetables  Category = "Fruits & Vegetables"
	CategoryPreparedMeals     Category = "Prepared Meals"
	CategoryReadyToEat        Category = "Ready-to-Eat"
	CategoryBakeryBread       Category = "Bakery & Bread"
	CategoryDairyAlternatives Category = "Dairy & Alternatives"
	CategorySoupsBroths       Category = "Soups & Broths"
	CategoryHerbsSeasonings   Category = "Herbs & Seasonings"
	CategoryOther             Category = "Other"
)

// Categories lists every enum member in declaration order.
var Categories = []Category{
	CategoryMeatPoultry,
	CategorySeafood,
	CategoryFruitsVegetables,
	CategoryPreparedMeals,
	CategoryReadyToEat,
	CategoryBakeryBread,
	CategoryDairyAlternatives,
	CategorySoupsBroths,
	CategoryHerbsSeasonings,
	CategoryOther,
}

var categoryLookup = func() map[string]Category {
	m := make(map[string]Category, len(Categories)*2)
	for _, c := range Categories {
		m[strings.ToLower(string(c))] = c
		m[compactCategory(string(c))] = c
	}
	return m
}()

// compactCategory reduces "Ready-to-Eat" and "ReadyToEat" to "readytoeat".
func compactCategory(s string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// ParseCategory maps a display name ("Meat & Poultry") or identifier
// ("MeatPoultry") to its Category, case-insensitively.
func ParseCategory(s string) (Category, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	if c, ok := categoryLookup[strings.ToLower(s)]; ok {
		return c, true
	}
	c, ok := categoryLookup[compactCategory(s)]
	return c, ok
}

// Valid reports whether c is a member of the enum.
func (c Category) Valid() bool {
	for _, v := range Categories {
		if c == v {
			return true
		}
	}
	return false
}
