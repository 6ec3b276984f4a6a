package extract

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// currencyLetters matches currency tokens (Kz, AKZ, AOA) and any other stray
// letters inside a captured amount.
var currencyLetters = regexp.MustCompile(`(?i)[a-z]+`)

// normalizeAmount reduces a captured numeric token to integer minor currency
// units: currency letters and whitespace are stripped, a comma decimal
// separator becomes a period, and the parsed value is rounded to the nearest
// integer. An unparsable token yields no value, never zero.
func normalizeAmount(raw string) (int64, bool) {
	s := currencyLetters.ReplaceAllString(raw, "")
	s = strings.Join(strings.Fields(s), "")
	s = strings.ReplaceAll(s, ",", ".")
	if s == "" {
		return 0, false
	}

	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return int64(math.Round(value)), true
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
