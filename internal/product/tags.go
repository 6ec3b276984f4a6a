package product

import (
	"strings"

	"github.com/jpalmeida/household-scanner-service/internal/domain"
)

// tagEntry maps a catalog category-tag keyword to the shared category
// vocabulary.
type tagEntry struct {
	keyword  string
	category domain.Category
}

// tagTable is matched in fixed order against each lower-cased category tag;
// the first keyword hit wins.
var tagTable = []tagEntry{
	{"rice", domain.CategoryPantry},
	{"pasta", domain.CategoryPantry},
	{"cereal", domain.CategoryPantry},
	{"flour", domain.CategoryPantry},
	{"sugar", domain.CategoryPantry},
	{"oil", domain.CategoryPantry},
	{"canned", domain.CategoryPantry},
	{"vegetable", domain.CategoryProduce},
	{"fruit", domain.CategoryProduce},
	{"bread", domain.CategoryBakery},
	{"bakery", domain.CategoryBakery},
	{"biscuit", domain.CategoryBakery},
	{"milk", domain.CategoryDairy},
	{"cheese", domain.CategoryDairy},
	{"yogurt", domain.CategoryDairy},
	{"dairies", domain.CategoryDairy},
	{"meat", domain.CategoryMeatFish},
	{"fish", domain.CategoryMeatFish},
	{"poultry", domain.CategoryMeatFish},
	{"beverage", domain.CategoryBeverages},
	{"water", domain.CategoryBeverages},
	{"juice", domain.CategoryBeverages},
	{"soda", domain.CategoryBeverages},
	{"beer", domain.CategoryBeverages},
	{"frozen", domain.CategoryFrozen},
	{"ice-cream", domain.CategoryFrozen},
	{"cleaning", domain.CategoryHousehold},
	{"detergent", domain.CategoryHousehold},
	{"hygiene", domain.CategoryHygiene},
	{"soap", domain.CategoryHygiene},
	{"shampoo", domain.CategoryHygiene},
}

// categoryFromTags maps the catalog's category-tag list into the shared
// vocabulary, with the unconditional catch-all when no tag matches.
func categoryFromTags(tags []string) domain.Category {
	for _, entry := range tagTable {
		for _, tag := range tags {
			if strings.Contains(strings.ToLower(tag), entry.keyword) {
				return entry.category
			}
		}
	}
	return domain.CategoryOther
}
