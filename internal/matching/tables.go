package matching

import "github.com/pantrysage/v2/internal/domain/pantry"

// Tables holds the static lookup data the matcher consults: the ingredient
// name to category map and the substitution table. Loaded once at startup
// and read-only afterwards, so it is safe to share across goroutines.
type Tables struct {
	categories    map[string]pantry.Category
	substitutions map[string][]string
}

// NewTables builds a Tables from explicit maps. Keys are canonicalized with
// the same name normalization the matcher applies.
func NewTables(categories map[string]pantry.Category, substitutions map[string][]string) *Tables {
	t := &Tables{
		categories:    make(map[string]pantry.Category, len(categories)),
		substitutions: make(map[string][]string, len(substitutions)),
	}
	for name, cat := range categories {
		t.categories[normalizeName(name)] = cat
	}
	for name, subs := range substitutions {
		canonical := make([]string, 0, len(subs))
		for _, s := range subs {
			canonical = append(canonical, normalizeName(s))
		}
		t.substitutions[normalizeName(name)] = canonical
	}
	return t
}

// CategoryFor returns the category a canonical ingredient name maps to.
func (t *Tables) CategoryFor(name string) (pantry.Category, bool) {
	cat, ok := t.categories[normalizeName(name)]
	return cat, ok
}

// SubstitutesFor returns the acceptable stand-ins for an ingredient name.
func (t *Tables) SubstitutesFor(name string) []string {
	return t.substitutions[normalizeName(name)]
}

// DefaultTables returns the built-in lookup data covering common household
// ingredients.
func DefaultTables() *Tables {
	return NewTables(defaultCategories, defaultSubstitutions)
}

var defaultCategories = map[string]pantry.Category{
	// produce
	"onion":        pantry.CategoryProduce,
	"garlic":       pantry.CategoryProduce,
	"tomato":       pantry.CategoryProduce,
	"potato":       pantry.CategoryProduce,
	"carrot":       pantry.CategoryProduce,
	"celery":       pantry.CategoryProduce,
	"bell pepper":  pantry.CategoryProduce,
	"mushrooms":    pantry.CategoryProduce,
	"spinach":      pantry.CategoryProduce,
	"lettuce":      pantry.CategoryProduce,
	"broccoli":     pantry.CategoryProduce,
	"zucchini":     pantry.CategoryProduce,
	"lemon":        pantry.CategoryProduce,
	"lime":         pantry.CategoryProduce,
	"apple":        pantry.CategoryProduce,
	"banana":       pantry.CategoryProduce,
	"cilantro":     pantry.CategoryProduce,
	"parsley":      pantry.CategoryProduce,
	"ginger":       pantry.CategoryProduce,
	"green onion":  pantry.CategoryProduce,
	"cucumber":     pantry.CategoryProduce,
	"avocado":      pantry.CategoryProduce,
	"cauliflower":  pantry.CategoryProduce,
	"sweet potato": pantry.CategoryProduce,

	// dairy
	"milk":         pantry.CategoryDairy,
	"butter":       pantry.CategoryDairy,
	"cheese":       pantry.CategoryDairy,
	"cheddar":      pantry.CategoryDairy,
	"mozzarella":   pantry.CategoryDairy,
	"parmesan":     pantry.CategoryDairy,
	"cream":        pantry.CategoryDairy,
	"heavy cream":  pantry.CategoryDairy,
	"sour cream":   pantry.CategoryDairy,
	"yogurt":       pantry.CategoryDairy,
	"greek yogurt": pantry.CategoryDairy,
	"cream cheese": pantry.CategoryDairy,
	"eggs":         pantry.CategoryDairy,
	"egg":          pantry.CategoryDairy,
	"buttermilk":   pantry.CategoryDairy,

	// meat
	"chicken":        pantry.CategoryMeat,
	"chicken breast": pantry.CategoryMeat,
	"chicken thigh":  pantry.CategoryMeat,
	"ground beef":    pantry.CategoryMeat,
	"beef":           pantry.CategoryMeat,
	"steak":          pantry.CategoryMeat,
	"pork":           pantry.CategoryMeat,
	"pork chop":      pantry.CategoryMeat,
	"bacon":          pantry.CategoryMeat,
	"sausage":        pantry.CategoryMeat,
	"ham":            pantry.CategoryMeat,
	"turkey":         pantry.CategoryMeat,
	"ground turkey":  pantry.CategoryMeat,
	"lamb":           pantry.CategoryMeat,

	// seafood
	"salmon":  pantry.CategorySeafood,
	"tuna":    pantry.CategorySeafood,
	"shrimp":  pantry.CategorySeafood,
	"cod":     pantry.CategorySeafood,
	"tilapia": pantry.CategorySeafood,
	"crab":    pantry.CategorySeafood,

	// grains
	"rice":        pantry.CategoryGrains,
	"white rice":  pantry.CategoryGrains,
	"brown rice":  pantry.CategoryGrains,
	"pasta":       pantry.CategoryGrains,
	"spaghetti":   pantry.CategoryGrains,
	"penne":       pantry.CategoryGrains,
	"bread":       pantry.CategoryGrains,
	"breadcrumbs": pantry.CategoryGrains,
	"tortillas":   pantry.CategoryGrains,
	"quinoa":      pantry.CategoryGrains,
	"oats":        pantry.CategoryGrains,
	"noodles":     pantry.CategoryGrains,
	"couscous":    pantry.CategoryGrains,

	// canned
	"canned tomatoes": pantry.CategoryCanned,
	"tomato paste":    pantry.CategoryCanned,
	"tomato sauce":    pantry.CategoryCanned,
	"black beans":     pantry.CategoryCanned,
	"chickpeas":       pantry.CategoryCanned,
	"kidney beans":    pantry.CategoryCanned,
	"corn":            pantry.CategoryCanned,
	"coconut milk":    pantry.CategoryCanned,
	"chicken broth":   pantry.CategoryCanned,
	"beef broth":      pantry.CategoryCanned,
	"vegetable broth": pantry.CategoryCanned,

	// condiments
	"soy sauce":      pantry.CategoryCondiments,
	"ketchup":        pantry.CategoryCondiments,
	"mustard":        pantry.CategoryCondiments,
	"mayonnaise":     pantry.CategoryCondiments,
	"hot sauce":      pantry.CategoryCondiments,
	"worcestershire": pantry.CategoryCondiments,
	"vinegar":        pantry.CategoryCondiments,
	"olive oil":      pantry.CategoryCondiments,
	"vegetable oil":  pantry.CategoryCondiments,
	"sesame oil":     pantry.CategoryCondiments,
	"honey":          pantry.CategoryCondiments,
	"maple syrup":    pantry.CategoryCondiments,
	"salsa":          pantry.CategoryCondiments,

	// spices
	"salt":          pantry.CategorySpices,
	"pepper":        pantry.CategorySpices,
	"black pepper":  pantry.CategorySpices,
	"paprika":       pantry.CategorySpices,
	"cumin":         pantry.CategorySpices,
	"chili powder":  pantry.CategorySpices,
	"oregano":       pantry.CategorySpices,
	"basil":         pantry.CategorySpices,
	"thyme":         pantry.CategorySpices,
	"rosemary":      pantry.CategorySpices,
	"cinnamon":      pantry.CategorySpices,
	"garlic powder": pantry.CategorySpices,
	"onion powder":  pantry.CategorySpices,
	"curry powder":  pantry.CategorySpices,
	"red pepper flakes": pantry.CategorySpices,

	// baking
	"flour":             pantry.CategoryBaking,
	"all purpose flour": pantry.CategoryBaking,
	"sugar":             pantry.CategoryBaking,
	"brown sugar":       pantry.CategoryBaking,
	"baking powder":     pantry.CategoryBaking,
	"baking soda":       pantry.CategoryBaking,
	"vanilla extract":   pantry.CategoryBaking,
	"chocolate chips":   pantry.CategoryBaking,
	"cocoa powder":      pantry.CategoryBaking,
	"yeast":             pantry.CategoryBaking,
	"cornstarch":        pantry.CategoryBaking,
}

var defaultSubstitutions = map[string][]string{
	"butter":          {"margarine", "coconut oil", "olive oil"},
	"margarine":       {"butter"},
	"buttermilk":      {"milk", "yogurt"},
	"heavy cream":     {"milk", "half and half", "coconut milk"},
	"sour cream":      {"greek yogurt", "yogurt"},
	"greek yogurt":    {"sour cream", "yogurt"},
	"milk":            {"almond milk", "soy milk", "oat milk"},
	"vegetable oil":   {"canola oil", "olive oil", "coconut oil"},
	"olive oil":       {"vegetable oil", "canola oil"},
	"honey":           {"maple syrup", "sugar", "agave"},
	"maple syrup":     {"honey", "agave"},
	"sugar":           {"honey", "brown sugar", "maple syrup"},
	"brown sugar":     {"sugar", "honey"},
	"breadcrumbs":     {"crushed crackers", "panko", "oats"},
	"chicken broth":   {"vegetable broth", "beef broth", "bouillon"},
	"vegetable broth": {"chicken broth", "water"},
	"lemon juice":     {"lime juice", "vinegar"},
	"lime juice":      {"lemon juice", "vinegar"},
	"white wine":      {"chicken broth", "apple juice"},
	"cornstarch":      {"flour", "arrowroot"},
	"fresh herbs":     {"dried herbs"},
	"green onion":     {"onion", "shallot", "chives"},
	"shallot":         {"onion", "green onion"},
	"ground beef":     {"ground turkey", "ground chicken"},
	"ground turkey":   {"ground beef", "ground chicken"},
	"spaghetti":       {"linguine", "fettuccine", "penne"},
	"white rice":      {"brown rice", "quinoa", "couscous"},
	"mayonnaise":      {"greek yogurt", "sour cream"},
	"cream cheese":    {"greek yogurt", "ricotta"},
	"parmesan":        {"pecorino", "asiago"},
	"mozzarella":      {"provolone", "cheddar"},
}
