package foodparser

// ShelfLifeEntry maps a name keyword to freezer storage days.
type ShelfLifeEntry struct {
	Keyword string
	Days    int
}

// ClassifierRule assigns Category when any keyword is a substring of the name.
type ClassifierRule struct {
	Category Category
	Keywords []string
}

// MealTimeRule appends Tag when any keyword is a substring of the name.
type MealTimeRule struct {
	Tag      string
	Keywords []string
}

// KnowledgeBase holds the ordered lookup tables behind classification,
// shelf-life lookup and tag suggestion. A KnowledgeBase must not be mutated
// once it is handed to a Parser. All keywords are lower case.
type KnowledgeBase struct {
	// ShelfLife is ordered; the first matching keyword wins.
	ShelfLife []ShelfLifeEntry
	// CategoryDefaults is sparse; absent categories use the caller's default.
	CategoryDefaults map[Category]int
	// ClassifierRules is ordered; the first matching rule wins.
	ClassifierRules []ClassifierRule
	// CategoryTags are the base tags suggested per category.
	CategoryTags map[Category][]string
	// FruitKeywords decide between "fruit" and "veggie" for produce.
	FruitKeywords []string
	MealTimeRules []MealTimeRule
	// PadTag fills suggestions that have fewer than two tags.
	PadTag string
}

// DefaultKnowledgeBase returns the compiled-in tables. Each call returns a
// fresh copy.
func DefaultKnowledgeBase() *KnowledgeBase {
	return &KnowledgeBase{
		ShelfLife: []ShelfLifeEntry{
			// Composite dishes come before their ingredients.
			{"soup", 90},
			{"stew", 90},
			{"broth", 90},
			{"chili", 120},
			{"casserole", 90},
			{"lasagna", 90},
			{"pizza", 60},
			{"burrito", 60},
			{"dumpling", 90},
			{"waffle", 60},
			{"whole chicken", 365},
			{"whole turkey", 365},
			{"ground beef", 120},
			{"ground turkey", 120},
			{"ground pork", 120},
			{"chicken", 270},
			{"turkey", 270},
			{"steak", 270},
			{"roast", 270},
			{"beef", 270},
			{"lamb", 270},
			{"pork", 180},
			{"hot dog", 60},
			{"sausage", 60},
			{"bacon", 30},
			{"burger", 120},
			{"salmon", 90},
			{"tuna", 90},
			{"scallop", 90},
			{"cod", 180},
			{"tilapia", 180},
			{"shrimp", 180},
			{"crab", 300},
			{"lobster", 300},
			{"fish", 180},
			{"berries", 240},
			{"berry", 240},
			{"peas", 240},
			{"sweet corn", 240},
			{"spinach", 240},
			{"broccoli", 240},
			{"green bean", 240},
			{"carrot", 240},
			{"banana", 90},
			{"mango", 300},
			{"peach", 300},
			{"apple", 240},
			{"vegetable", 240},
			{"fruit", 240},
			{"bread", 90},
			{"bagel", 90},
			{"muffin", 90},
			{"tortilla", 180},
			{"cookie dough", 60},
			{"cookie", 240},
			{"cake", 120},
			{"pie", 240},
			{"ice cream", 60},
			{"butter", 270},
			{"cheese", 180},
			{"milk", 90},
			{"yogurt", 60},
			{"cream", 120},
			{"basil", 180},
			{"herbs", 180},
			{"ginger", 180},
			{"garlic", 300},
		},
		CategoryDefaults: map[Category]int{
			CategoryMeatPoultry:       180,
			CategorySeafood:           120,
			CategoryFruitsVegetables:  240,
			CategoryPreparedMeals:     60,
			CategoryReadyToEat:        60,
			CategoryBakeryBread:       90,
			CategoryDairyAlternatives: 90,
			CategorySoupsBroths:       90,
		},
		ClassifierRules: []ClassifierRule{
			{CategoryMeatPoultry, []string{"chicken", "beef", "pork", "turkey", "lamb", "steak", "sausage", "bacon", "meat", "poultry", "duck", "veal", "venison", "burger", "ribs", "brisket"}},
			{CategorySeafood, []string{"fish", "salmon", "tuna", "shrimp", "prawn", "cod", "tilapia", "crab", "lobster", "scallop", "seafood", "halibut", "mussel", "clam"}},
			{CategoryFruitsVegetables, []string{"berry", "berries", "apple", "banana", "mango", "peach", "cherry", "cherries", "pineapple", "grape", "melon", "fruit", "avocado", "peas", "sweet corn", "spinach", "broccoli", "carrot", "bean", "kale", "cauliflower", "vegetable", "veggie", "edamame", "okra", "squash", "zucchini"}},
			{CategoryPreparedMeals, []string{"leftover", "meal prep", "casserole", "lasagna", "curry", "stir fry"}},
			{CategoryReadyToEat, []string{"dinner", "pizza", "breakfast", "burrito", "frozen meal", "waffle"}},
			{CategoryBakeryBread, []string{"bread", "bagel", "muffin", "croissant", "buns", "tortilla", "pastry", "cake", "cookie", "dough", "baguette", "naan", "pita", "pie"}},
			{CategoryDairyAlternatives, []string{"milk", "cheese", "butter", "yogurt", "cream", "dairy"}},
			{CategorySoupsBroths, []string{"soup", "broth", "stock", "stew", "chili", "sauce", "chowder", "bisque"}},
			{CategoryHerbsSeasonings, []string{"herb", "basil", "parsley", "cilantro", "dill", "thyme", "rosemary", "mint", "ginger", "garlic", "seasoning", "spice", "pesto"}},
		},
		CategoryTags: map[Category][]string{
			CategoryMeatPoultry:       {"protein"},
			CategorySeafood:           {"protein", "seafood"},
			CategoryPreparedMeals:     {"meal", "ready"},
			CategoryReadyToEat:        {"quick"},
			CategoryBakeryBread:       {"bakery"},
			CategoryDairyAlternatives: {"dairy"},
			CategorySoupsBroths:       {"soup"},
			CategoryHerbsSeasonings:   {"seasoning"},
		},
		FruitKeywords: []string{"berry", "berries", "apple", "banana", "mango", "peach", "cherr", "pineapple", "grape", "melon", "fruit", "avocado", "lemon", "orange"},
		MealTimeRules: []MealTimeRule{
			{"breakfast", []string{"breakfast", "waffle", "pancake", "oatmeal"}},
			{"lunch", []string{"lunch", "sandwich"}},
			{"dinner", []string{"dinner"}},
			{"dessert", []string{"dessert", "ice cream", "cake", "cookie", "pie"}},
		},
		PadTag: "freezer",
	}
}
