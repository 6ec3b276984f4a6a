// Package extract implements the heuristic receipt parser: it turns noisy
// recognized text into a structured receipt with per-field absence rather
// than errors. Extraction never fails; worst case it returns a receipt with
// every optional field unset, an empty item list and the raw lines intact
// for manual review.
package extract

import (
	"strings"
	"time"

	"github.com/jpalmeida/household-scanner-service/internal/domain"
)

// Parse extracts a structured receipt from raw recognized text. It is a pure
// function: the same text always yields the same receipt.
func Parse(text string) domain.ParsedReceipt {
	lines := splitLines(text)

	receipt := domain.ParsedReceipt{
		Items:    []domain.LineItem{},
		RawLines: lines,
	}

	if name, ok := extractStoreName(lines); ok {
		receipt.StoreName = &name
	}
	if date, ok := extractDate(text); ok {
		receipt.Date = &date
	}
	if total, ok := extractTotal(text); ok {
		receipt.Total = &total
	}

	for _, line := range lines {
		if item, ok := parseItemLine(line); ok {
			receipt.Items = append(receipt.Items, item)
		}
	}

	return receipt
}

// splitLines tokenizes the text into trimmed, non-empty lines. The result is
// retained verbatim as the receipt's audit trail.
func splitLines(text string) []string {
	lines := []string{}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(strings.TrimSuffix(line, "\r"))
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// extractStoreName scans at most the first five lines against the retailer
// dictionary; the first match wins. When no dictionary pattern matches, the
// first line stands in as the store name so the field is populated whenever
// any line exists.
func extractStoreName(lines []string) (string, bool) {
	if len(lines) == 0 {
		return "", false
	}

	limit := len(lines)
	if limit > storeNameScanLines {
		limit = storeNameScanLines
	}
	for i := 0; i < limit; i++ {
		for _, entry := range storeDictionary {
			if entry.pattern.MatchString(lines[i]) {
				return entry.name, true
			}
		}
	}

	return lines[0], true
}

// extractDate searches the whole text against the date pattern families in
// priority order. A match that fails to construct a calendar date discards
// that family and falls through to the next; only when every family misses is
// the date reported absent.
func extractDate(text string) (string, bool) {
	for _, p := range datePatterns {
		m := p.pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if date, ok := p.interpret(m); ok {
			return date, true
		}
	}
	return "", false
}

// buildDate validates a calendar triple; time.Date silently normalizes
// overflow (day 32 becomes the 1st of the next month), so the components are
// checked against the round trip.
func buildDate(year, month, day int) (string, bool) {
	if year < 1 || month < 1 || month > 12 || day < 1 || day > 31 {
		return "", false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		return "", false
	}
	return t.Format("2006-01-02"), true
}

// extractTotal tries the label-anchored total patterns in priority order and
// returns the first captured value that normalizes to something positive.
// Zero or unparsable captures reject the pattern, not the whole search.
func extractTotal(text string) (int64, bool) {
	for _, pattern := range totalPatterns {
		m := pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if value, ok := normalizeAmount(m[1]); ok && value > 0 {
			return value, true
		}
	}
	return 0, false
}
