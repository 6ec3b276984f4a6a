package extract

import (
	"strings"

	"github.com/jpalmeida/household-scanner-service/internal/domain"
)

// categoryOrder is the fixed iteration order for keyword matching; the first
// category with any keyword hit wins.
var categoryOrder = []domain.Category{
	domain.CategoryPantry,
	domain.CategoryProduce,
	domain.CategoryBakery,
	domain.CategoryDairy,
	domain.CategoryMeatFish,
	domain.CategoryBeverages,
	domain.CategoryFrozen,
	domain.CategoryHousehold,
	domain.CategoryHygiene,
}

// categoryKeywords maps each category to its ordered keyword list. Keywords
// are lower-case and matched as substrings of the lower-cased item name;
// accents are listed both ways because OCR drops them unpredictably.
var categoryKeywords = map[domain.Category][]string{
	domain.CategoryPantry: {
		"arroz", "feijao", "feijão", "massa", "esparguete", "acucar", "açúcar",
		"sal ", "farinha", "oleo", "óleo", "fuba", "fubá", "atum", "conserva",
		"tomate pelado", "maionese", "cereal",
	},
	domain.CategoryProduce: {
		"tomate", "cebola", "batata", "banana", "alface", "cenoura", "alho",
		"maca", "maçã", "laranja", "limao", "limão", "abacaxi", "mandioca",
		"couve", "pimento",
	},
	domain.CategoryBakery: {
		"pao", "pão", "bolo", "bolacha", "biscoito", "croissant", "torrada",
	},
	domain.CategoryDairy: {
		"leite", "queijo", "iogurte", "manteiga", "natas", "requeijao",
		"requeijão",
	},
	domain.CategoryMeatFish: {
		"frango", "carne", "peixe", "bife", "salsicha", "fiambre", "chourico",
		"chouriço", "ovo", "camarao", "camarão", "cabrito", "porco",
	},
	domain.CategoryBeverages: {
		"agua", "água", "sumo", "refrigerante", "cerveja", "cuca", "coca",
		"fanta", "sprite", "vinho", "cafe", "café", "cha ", "chá",
	},
	domain.CategoryFrozen: {
		"congelado", "congelada", "gelado", "gelo",
	},
	domain.CategoryHousehold: {
		"sabao", "sabão", "detergente", "lixivia", "lixívia", "esfregona",
		"papel higienico", "papel higiénico", "guardanapo", "fosforo",
		"fósforo", "vela", "pilha",
	},
	domain.CategoryHygiene: {
		"sabonete", "champo", "champô", "pasta dent", "escova", "desodorizante",
		"fralda", "penso",
	},
}

// Categorize assigns a cleaned item name to its spending category. Every name
// gets a bucket: names no keyword list claims land in the catch-all.
func Categorize(name string) domain.Category {
	lower := strings.ToLower(name)
	for _, category := range categoryOrder {
		for _, keyword := range categoryKeywords[category] {
			if strings.Contains(lower, keyword) {
				return category
			}
		}
	}
	return domain.CategoryOther
}
