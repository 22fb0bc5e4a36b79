package roster

import (
	"regexp"
	"strings"

	"github.com/zerobacojp/ocr-normalizer/constants"
)

// Contact is the result of splitting a free-text contact span.
type Contact struct {
	Address string
	Tel     string
	Email   string
}

// The whitespace classes below spell out the ideographic space U+3000,
// which OCR of Japanese text produces constantly.
var (
	reEmail      = regexp.MustCompile(`[\w.\-]+@[\w.\-]+\.\w+`)
	reContactTel = regexp.MustCompile(`[(（]?\d{2,4}[-ー]\d{2,4}[-ー]\d{4}[)）]?`)
	reEdgeSep    = regexp.MustCompile(`^[、,\s　]+|[、,\s　]+$`)
	reSepRun     = regexp.MustCompile(`[、,\s　]+`)
)

// SplitContact splits a span expected to hold at most one address, any
// number of phone numbers and at most one email. Each step removes its
// match from the working text, so later steps never re-claim an already
// claimed substring. Absent fields come back as the sentinel; absence is
// a normal outcome, not an error.
func SplitContact(text string) Contact {
	var c Contact
	text = NormalizeDigits(text)

	if m := reEmail.FindString(text); m != "" {
		c.Email = m
		text = strings.ReplaceAll(text, m, "")
	}
	if tels := reContactTel.FindAllString(text, -1); len(tels) > 0 {
		c.Tel = strings.Join(tels, constants.Delimiter)
		for _, tel := range tels {
			text = strings.ReplaceAll(text, tel, "")
		}
	}

	// whatever remains is the address
	addr := reEdgeSep.ReplaceAllString(strings.TrimSpace(text), "")
	c.Address = reSepRun.ReplaceAllString(addr, constants.Delimiter)

	if c.Address == "" {
		c.Address = constants.Sentinel
	}
	if c.Tel == "" {
		c.Tel = constants.Sentinel
	}
	if c.Email == "" {
		c.Email = constants.Sentinel
	}
	return c
}
