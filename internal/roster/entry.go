package roster

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/zerobacojp/ocr-normalizer/constants"
	"github.com/zerobacojp/ocr-normalizer/internal/entity"
)

var (
	reGroupID = regexp.MustCompile(`(\d+)[\s　]*班`)
	// one or two whitespace-separated tokens following the group marker
	reNameAfterGroup = regexp.MustCompile(`\d+[\s　]*班[\s　]+([^\s　]+(?:[\s　]+[^\s　]+)?)`)
	// a pure-hiragana candidate is a furigana line OCR split out, not a name
	reFurigana    = regexp.MustCompile(`^[ぁ-ん\s　]+$`)
	reEntryTel    = regexp.MustCompile(`[(（]?\d{2,4}[-ー一=]\d{2,4}[-ー一=]\d{4}[)）]?`)
	reTrailingSep = regexp.MustCompile(`[、,\s　]+$`)

	// remark candidates: text after the third-priority marker, then
	// parenthesized asides (half-width, then full-width)
	remarkPatterns = []*regexp.Regexp{
		regexp.MustCompile(`③[^①②③\n]+([^\n①②③]+)`),
		regexp.MustCompile(`\(([^)]+)\)`),
		regexp.MustCompile(`（([^）]+)）`),
	}
	rePriorityLead = regexp.MustCompile(`^[①②③]`)
)

// ExtractEntry parses the full text span of one roster entry. It never
// fails: any field that cannot be located resolves to the sentinel.
func (p *Parser) ExtractEntry(span string) *entity.RosterEntry {
	e := &entity.RosterEntry{Committees: make(map[string]string, len(p.cfg.Committees))}
	text := NormalizeDigits(strings.TrimSpace(span))

	if m := reGroupID.FindStringSubmatch(text); m != nil {
		e.GroupID = m[1] + "班"
	}
	if m := reNameAfterGroup.FindStringSubmatch(text); m != nil {
		if !reFurigana.MatchString(m[1]) {
			e.Name = m[1]
		}
	}
	if m := reEmail.FindString(text); m != "" {
		e.Email = m
	}
	if tels := reEntryTel.FindAllString(text, -1); len(tels) > 0 {
		for i, tel := range tels {
			tels[i] = normalizeHyphens(tel)
		}
		e.Tel = strings.Join(tels, constants.Delimiter)
	}
	if m := p.reAddress.FindString(text); m != "" {
		addr := normalizeHyphens(NormalizeDigits(m))
		e.Address = reTrailingSep.ReplaceAllString(addr, "")
	}
	for dept, mark := range p.ParsePriorities(text) {
		e.Committees[dept] = mark
	}
	e.Remarks = p.extractRemarks(text)

	p.finalize(e)
	return e
}

func (p *Parser) extractRemarks(text string) string {
	var remarks []string
	for _, re := range remarkPatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			cand := strings.TrimSpace(m[1])
			if cand == "" || rePriorityLead.MatchString(cand) || utf8.RuneCountInString(cand) <= 1 {
				continue
			}
			if p.isCommitteeMention(cand) {
				continue
			}
			remarks = append(remarks, cand)
		}
	}
	return strings.Join(remarks, constants.Delimiter)
}

// isCommitteeMention flags a short fragment containing a committee name:
// a mis-captured ranking rather than a genuine remark.
func (p *Parser) isCommitteeMention(cand string) bool {
	if utf8.RuneCountInString(cand) >= 10 {
		return false
	}
	for _, dept := range p.cfg.Committees {
		if strings.Contains(cand, dept) {
			return true
		}
	}
	return false
}

// finalize replaces every still-empty field, committee columns included,
// with the sentinel. After this the entry holds no empty strings.
func (p *Parser) finalize(e *entity.RosterEntry) {
	for _, f := range []*string{&e.GroupID, &e.Name, &e.Address, &e.Tel, &e.Email, &e.Remarks} {
		if *f == "" {
			*f = constants.Sentinel
		}
	}
	for _, dept := range p.cfg.Committees {
		if e.Committees[dept] == "" {
			e.Committees[dept] = constants.Sentinel
		}
	}
}
