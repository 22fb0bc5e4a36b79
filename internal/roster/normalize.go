package roster

import "strings"

// offset between '０' (U+FF10) and '0'
const fullwidthDigitDelta = '０' - '0'

// NormalizeDigits maps the full-width digits ０-９ to their half-width
// ASCII equivalents. Every other rune passes through unchanged, so the
// function is total and idempotent.
func NormalizeDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '０' && r <= '９' {
			return r - fullwidthDigitDelta
		}
		return r
	}, s)
}

// OCR frequently reads a hyphen in a phone number or block-lot number as
// the katakana long vowel mark, the ideographic numeral one, or "=".
var hyphenReplacer = strings.NewReplacer("ー", "-", "一", "-", "=", "-")

func normalizeHyphens(s string) string {
	return hyphenReplacer.Replace(s)
}
