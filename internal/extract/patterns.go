package extract

import "regexp"

// storeNameScanLines bounds how deep into the receipt the retailer dictionary
// looks.
const storeNameScanLines = 5

// storeEntry pairs a retailer match pattern with its display name.
type storeEntry struct {
	pattern *regexp.Regexp
	name    string
}

// storeDictionary holds the known-retailer patterns in match order.
var storeDictionary = []storeEntry{
	{regexp.MustCompile(`(?i)\bkero\b`), "Kero"},
	{regexp.MustCompile(`(?i)shoprite`), "Shoprite"},
	{regexp.MustCompile(`(?i)candando`), "Candando"},
	{regexp.MustCompile(`(?i)\bmaxi\b`), "Maxi"},
	{regexp.MustCompile(`(?i)\bjumbo\b`), "Jumbo"},
	{regexp.MustCompile(`(?i)nosso\s+super`), "Nosso Super"},
	{regexp.MustCompile(`(?i)intermarket`), "Intermarket"},
	{regexp.MustCompile(`(?i)angomart`), "Angomart"},
	{regexp.MustCompile(`(?i)deskont[aã]o`), "Deskontão"},
	{regexp.MustCompile(`(?i)alimenta\s+angola`), "Alimenta Angola"},
}

// datePattern pairs a date-shape regex with its positional interpreter.
type datePattern struct {
	pattern   *regexp.Regexp
	interpret func(m []string) (string, bool)
}

// datePatterns is evaluated in fixed priority order: day-first with a
// four-digit year, then ISO year-first, then day-first with a two-digit year
// expanded by adding 2000. The order is a tested constant; do not rely on it
// implicitly.
var datePatterns = []datePattern{
	{
		pattern: regexp.MustCompile(`\b(\d{1,2})[/.\-](\d{1,2})[/.\-](\d{4})\b`),
		interpret: func(m []string) (string, bool) {
			return buildDate(atoi(m[3]), atoi(m[2]), atoi(m[1]))
		},
	},
	{
		pattern: regexp.MustCompile(`\b(\d{4})[/.\-](\d{1,2})[/.\-](\d{1,2})\b`),
		interpret: func(m []string) (string, bool) {
			return buildDate(atoi(m[1]), atoi(m[2]), atoi(m[3]))
		},
	},
	{
		pattern: regexp.MustCompile(`\b(\d{1,2})[/.\-](\d{1,2})[/.\-](\d{2})\b`),
		interpret: func(m []string) (string, bool) {
			return buildDate(2000+atoi(m[3]), atoi(m[2]), atoi(m[1]))
		},
	},
}

// totalPatterns is the label-anchored total search in priority order:
// "total:" outranks "valor total:" outranks "a pagar:" outranks "subtotal:".
// The word boundary keeps "total" from matching inside "subtotal".
var totalPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\btotal\s*:\s*(\d[\d.,]*)`),
	regexp.MustCompile(`(?i)\bvalor\s+total\s*:\s*(\d[\d.,]*)`),
	regexp.MustCompile(`(?i)\ba\s+pagar\s*:\s*(\d[\d.,]*)`),
	regexp.MustCompile(`(?i)\bsubtotal\s*:\s*(\d[\d.,]*)`),
}

// headerPatterns reject administrative lines that never carry a priced item:
// tax-ID labels, receipt/terminal/operator labels, footer courtesy phrases,
// separator rules and bare digit runs (barcodes or document IDs).
var headerPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bnif\b`),
	regexp.MustCompile(`(?i)\b(recibo|fatura|factura|tal[aã]o|terminal|operador|caixa|loja)\b`),
	regexp.MustCompile(`(?i)(obrigad|thank\s+you|volte\s+sempre|iva\s+inclu)`),
	regexp.MustCompile(`^[-=*_.~#·]{3,}$`),
	regexp.MustCompile(`^\d{4,}$`),
}

// pricePatterns isolate the price on a line's trailing portion, in fixed
// order: currency-suffixed, currency-prefixed, then a bare trailing number
// with optional thousands separators. First match wins and fixes where the
// item name ends.
var pricePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\d[\d.,]*)\s*(?:kz|akz|aoa)\s*$`),
	regexp.MustCompile(`(?i)(?:kz|akz|aoa)\s*\$?\s*(\d[\d.,]*)\s*$`),
	regexp.MustCompile(`(\d+(?:[.,]\d{3})*(?:[.,]\d{1,2})?)\s*$`),
}

// quantityPattern finds an explicit "<digits> x " multiplier inside the name
// candidate.
var quantityPattern = regexp.MustCompile(`(\d+)\s*[xX]\s+`)
