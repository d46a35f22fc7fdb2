package extract

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	// Unit-bearing amounts are preferred over bare numerals so that
	// "beli 2 nasi 15 ribu" captures 15000, not 2.
	amountWithUnitRe = regexp.MustCompile(`(?i)(?:rp\.?\s*)?(\d+(?:[.,]\d+)*)\s*(ribu|rb|juta|jt|k|rupiah)\b`)
	amountBareRe     = regexp.MustCompile(`(?i)(?:rp\.?\s*)?(\d+(?:[.,]\d+)*)`)

	thousandsDotRe   = regexp.MustCompile(`^\d{1,3}(\.\d{3})+$`)
	thousandsCommaRe = regexp.MustCompile(`^\d{1,3}(,\d{3})+$`)
)

// Amount parses the rupiah amount from a message. Unit words apply a
// multiplier: ribu/rb/k = 1e3, juta/jt = 1e6. When no unit word is present
// and the parsed magnitude is below 1000, an implicit x1000 applies (a bare
// "5" means "5 ribu" in everyday usage). Returns false when the text carries
// no numeric token at all.
func Amount(text string) (int64, bool) {
	if m := amountWithUnitRe.FindStringSubmatch(text); m != nil {
		v := parseNumber(m[1])
		switch strings.ToLower(m[2]) {
		case "ribu", "rb", "k":
			v *= 1_000
		case "juta", "jt":
			v *= 1_000_000
		}
		return int64(v), true
	}

	if m := amountBareRe.FindStringSubmatch(text); m != nil {
		v := parseNumber(m[1])
		if v < 1_000 {
			v *= 1_000
		}
		return int64(v), true
	}

	return 0, false
}

// parseNumber normalizes Indonesian numeric notation: "12.000" and "12,000"
// are thousands-grouped integers, while a remaining comma is a decimal mark.
func parseNumber(s string) float64 {
	switch {
	case thousandsDotRe.MatchString(s):
		s = strings.ReplaceAll(s, ".", "")
	case thousandsCommaRe.MatchString(s):
		s = strings.ReplaceAll(s, ",", "")
	default:
		s = strings.Replace(s, ",", ".", 1)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
