package domain

// Category is the closed spending-category vocabulary shared by receipt
// extraction and product lookup. Every line item lands in exactly one bucket;
// CategoryOther is the catch-all for names no keyword list claims.
type Category string

// Category vocabulary
const (
	CategoryPantry    Category = "Pantry"
	CategoryProduce   Category = "Produce"
	CategoryBakery    Category = "Bakery"
	CategoryDairy     Category = "Dairy"
	CategoryMeatFish  Category = "Meat & Fish"
	CategoryBeverages Category = "Beverages"
	CategoryFrozen    Category = "Frozen"
	CategoryHousehold Category = "Household"
	CategoryHygiene   Category = "Hygiene"
	CategoryOther     Category = "Other"
)

// Categories returns the vocabulary in its fixed matching order, catch-all
// last.
func Categories() []Category {
	return []Category{
		CategoryPantry,
		CategoryProduce,
		CategoryBakery,
		CategoryDairy,
		CategoryMeatFish,
		CategoryBeverages,
		CategoryFrozen,
		CategoryHousehold,
		CategoryHygiene,
		CategoryOther,
	}
}
