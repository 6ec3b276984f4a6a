package extract

import (
	"strconv"
	"strings"

	"github.com/jpalmeida/household-scanner-service/internal/domain"
)

// parseItemLine attempts to reduce one raw line to a (name, quantity, price)
// triple. Lines matching an administrative pattern, lines with no positive
// trailing price, and priced lines with no recoverable name all contribute
// nothing; they stay in the raw-line audit trail only.
func parseItemLine(line string) (domain.LineItem, bool) {
	if isHeaderOrFooter(line) {
		return domain.LineItem{}, false
	}

	for _, pattern := range pricePatterns {
		loc := pattern.FindStringSubmatchIndex(line)
		if loc == nil {
			continue
		}

		price, ok := normalizeAmount(line[loc[2]:loc[3]])
		if !ok || price <= 0 {
			continue
		}

		name := line[:loc[0]]
		quantity := 1
		if qm := quantityPattern.FindStringSubmatchIndex(name); qm != nil {
			if q, err := strconv.Atoi(name[qm[2]:qm[3]]); err == nil && q >= 1 {
				quantity = q
			}
			name = name[:qm[0]] + name[qm[1]:]
		}

		name = cleanName(name)
		if len([]rune(name)) < 2 {
			return domain.LineItem{}, false
		}

		return domain.LineItem{
			Name:     name,
			Quantity: quantity,
			Price:    price,
			Category: Categorize(name),
		}, true
	}

	return domain.LineItem{}, false
}

func isHeaderOrFooter(line string) bool {
	for _, pattern := range headerPatterns {
		if pattern.MatchString(line) {
			return true
		}
	}
	return false
}

// cleanName strips residual separator punctuation and collapses the interior
// whitespace left behind by price and quantity removal.
func cleanName(name string) string {
	name = strings.Trim(name, " \t-=*_.:·#|,")
	return strings.Join(strings.Fields(name), " ")
}
