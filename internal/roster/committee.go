package roster

import (
	"regexp"
	"strings"
)

// Priority marker pattern families, applied in order: circled numeral
// directly before a name fragment, plain digit before a name fragment,
// and either marker followed by separator punctuation. A later family's
// match overwrites an earlier assignment for the same committee; that
// overwrite order is load-bearing given how noisy the source scans are.
var priorityPatterns = []*regexp.Regexp{
	regexp.MustCompile(`([①②③])[\s　]*([^、,\s　]+)`),
	regexp.MustCompile(`([1-3])[\s　]*([^、,\s　]+)`),
	regexp.MustCompile(`([①②③1-3])[.．)）][\s　]*([^、,\s　]+)`),
}

// digit and circled forms both canonicalize to the circled numeral
var priorityMarks = map[string]string{
	"1": "①", "2": "②", "3": "③",
	"①": "①", "②": "②", "③": "③",
}

// ParsePriorities extracts committee priority ranks from a span. The
// result always carries every known committee as a key; committees the
// span does not mention map to the empty string.
func (p *Parser) ParsePriorities(text string) map[string]string {
	result := make(map[string]string, len(p.cfg.Committees))
	for _, dept := range p.cfg.Committees {
		result[dept] = ""
	}
	if text == "" {
		return result
	}
	text = NormalizeDigits(text)

	for _, re := range priorityPatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			mark, frag := priorityMarks[m[1]], m[2]
			for _, dept := range p.cfg.Committees {
				if strings.Contains(frag, dept) {
					result[dept] = mark
					break
				}
			}
		}
	}
	return result
}
