package foodparser_test

import (
	"reflect"
	"testing"

	"freezer-inventory/pkg/foodparser"
)

func TestClassify(t *testing.T) {
	kb := foodparser.DefaultKnowledgeBase()

	tests := []struct {
		name string
		want foodparser.Category
	}{
		{"Chicken breast", foodparser.CategoryMeatPoultry},
		{"Salmon fillets", foodparser.CategorySeafood},
		{"frozen peas", foodparser.CategoryFruitsVegetables},
		{"Mixed BERRIES", foodparser.CategoryFruitsVegetables},
		{"Mystery leftovers", foodparser.CategoryPreparedMeals},
		{"frozen pizza", foodparser.CategoryReadyToEat},
		{"Sourdough bread", foodparser.CategoryBakeryBread},
		{"Shredded cheese", foodparser.CategoryDairyAlternatives},
		{"Tomato sauce", foodparser.CategorySoupsBroths},
		{"Fresh basil", foodparser.CategoryHerbsSeasonings},
		{"Ice cubes", foodparser.CategoryOther},
		// Meat rule is evaluated before soups.
		{"Chicken soup", foodparser.CategoryMeatPoultry},
		// Seafood before bakery.
		{"Crab cakes", foodparser.CategorySeafood},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := kb.Classify(tt.name); got != tt.want {
				t.Errorf("Classify(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}

func TestLookupShelfLife(t *testing.T) {
	kb := foodparser.DefaultKnowledgeBase()

	tests := []struct {
		name        string
		item        string
		category    foodparser.Category
		defaultDays int
		want        int
	}{
		{"Keyword", "Chicken breast", foodparser.CategoryMeatPoultry, 30, 270},
		{"Keyword is case-insensitive", "WHOLE CHICKEN", foodparser.CategoryMeatPoultry, 30, 365},
		{"Earlier keyword wins", "Chicken soup", foodparser.CategoryMeatPoultry, 30, 90},
		{"Category default", "Mystery leftovers", foodparser.CategoryPreparedMeals, 30, 60},
		{"Category default equal to generic default", "Mystery leftovers", foodparser.CategoryPreparedMeals, 60, 60},
		{"No category default", "Ice cubes", foodparser.CategoryOther, 45, 45},
		{"Category without entry", "Dried oregano", foodparser.CategoryHerbsSeasonings, 30, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := kb.LookupShelfLife(tt.item, tt.category, tt.defaultDays); got != tt.want {
				t.Errorf("LookupShelfLife() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestLookupShelfLifeTableOrder(t *testing.T) {
	kb := &foodparser.KnowledgeBase{
		ShelfLife: []foodparser.ShelfLifeEntry{
			{Keyword: "chicken", Days: 270},
			{Keyword: "soup", Days: 90},
		},
	}
	if got := kb.LookupShelfLife("chicken soup", foodparser.CategoryOther, 30); got != 270 {
		t.Errorf("got %d, want 270 when chicken is listed first", got)
	}

	kb.ShelfLife[0], kb.ShelfLife[1] = kb.ShelfLife[1], kb.ShelfLife[0]
	if got := kb.LookupShelfLife("chicken soup", foodparser.CategoryOther, 30); got != 90 {
		t.Errorf("got %d, want 90 when soup is listed first", got)
	}
}

func TestSuggestTags(t *testing.T) {
	kb := foodparser.DefaultKnowledgeBase()

	tests := []struct {
		name     string
		item     string
		category foodparser.Category
		want     []string
	}{
		{"Meat padded", "Chicken breast", foodparser.CategoryMeatPoultry, []string{"protein", "freezer"}},
		{"Seafood", "Shrimp", foodparser.CategorySeafood, []string{"protein", "seafood"}},
		{"Fruit", "Mixed berries", foodparser.CategoryFruitsVegetables, []string{"fruit", "healthy"}},
		{"Veggie", "frozen peas", foodparser.CategoryFruitsVegetables, []string{"veggie", "healthy"}},
		{"Prepared meal with dinner", "Sunday dinner leftovers", foodparser.CategoryPreparedMeals, []string{"meal", "ready", "dinner"}},
		{"Bakery with dessert", "Chocolate cake", foodparser.CategoryBakeryBread, []string{"bakery", "dessert"}},
		{"Dairy padded", "Butter", foodparser.CategoryDairyAlternatives, []string{"dairy", "freezer"}},
		{"Other padded", "Ice cubes", foodparser.CategoryOther, []string{"freezer"}},
		{"Truncated to three", "Breakfast and dessert leftovers", foodparser.CategoryPreparedMeals, []string{"meal", "ready", "breakfast"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := kb.SuggestTags(tt.item, tt.category)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SuggestTags() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		in     string
		want   foodparser.Category
		wantOK bool
	}{
		{"Meat & Poultry", foodparser.CategoryMeatPoultry, true},
		{"meat & poultry", foodparser.CategoryMeatPoultry, true},
		{"MeatPoultry", foodparser.CategoryMeatPoultry, true},
		{"ReadyToEat", foodparser.CategoryReadyToEat, true},
		{"Ready-to-Eat", foodparser.CategoryReadyToEat, true},
		{"other", foodparser.CategoryOther, true},
		{"Frozen Stuff", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := foodparser.ParseCategory(tt.in)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("ParseCategory(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}

	if foodparser.Category("Frozen Stuff").Valid() {
		t.Error("expected out-of-enum category to be invalid")
	}
	for _, c := range foodparser.Categories {
		if !c.Valid() {
			t.Errorf("expected %q to be valid", c)
		}
	}
}
