package extract

import (
	"testing"

	"github.com/jpalmeida/household-scanner-service/internal/domain"
)

func TestCategorize(t *testing.T) {
	tests := []struct {
		name string
		want domain.Category
	}{
		{"Arroz Agulha 25kg", domain.CategoryPantry},
		{"ARROZ", domain.CategoryPantry},
		{"Tomate fresco", domain.CategoryProduce},
		{"Pão de forma", domain.CategoryBakery},
		{"Leite Longa Vida", domain.CategoryDairy},
		{"Frango inteiro", domain.CategoryMeatFish},
		{"Cerveja Cuca 33cl", domain.CategoryBeverages},
		{"Gelado de baunilha", domain.CategoryFrozen},
		{"Detergente em po", domain.CategoryHousehold},
		{"Sabonete glicerina", domain.CategoryHygiene},
		{"Artigo desconhecido", domain.CategoryOther},
		{"", domain.CategoryOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Categorize(tt.name); got != tt.want {
				t.Errorf("Categorize(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}

func TestCategorizeFirstCategoryWins(t *testing.T) {
	// "tomate pelado" is a Pantry keyword and "tomate" a Produce keyword;
	// Pantry is iterated first.
	if got := Categorize("Tomate pelado lata"); got != domain.CategoryPantry {
		t.Errorf("Categorize = %q, want Pantry by iteration order", got)
	}
}
