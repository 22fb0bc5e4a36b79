package roster

import (
	"regexp"
	"strings"

	"github.com/zerobacojp/ocr-normalizer/constants"
	"github.com/zerobacojp/ocr-normalizer/internal/entity"
)

var (
	// page-break markers inserted by the OCR stage; pure join points
	rePageMarker = regexp.MustCompile(`===[\s　]*ページ[\s　]*[0-9０-９]+[\s　]*===`)
	// group markers anchor entry boundaries (digits already normalized)
	reGroupAnchor = regexp.MustCompile(`\d+[\s　]*班`)
)

// SegmentDocument splits a whole OCR document into roster entries. Every
// group-marker occurrence opens a span running to the next marker or end
// of stream. Spans without a recoverable group id are dropped as noise.
// Duplicate group ids are kept as independent records: OCR noise can
// duplicate a marker, and collapsing them would hide a data-quality
// problem the downstream reviewer needs to see.
func (p *Parser) SegmentDocument(text string) []*entity.RosterEntry {
	pages := rePageMarker.Split(text, -1)
	combined := NormalizeDigits(strings.Join(pages, "\n"))

	anchors := reGroupAnchor.FindAllStringIndex(combined, -1)
	entries := make([]*entity.RosterEntry, 0, len(anchors))
	for i, loc := range anchors {
		end := len(combined)
		if i+1 < len(anchors) {
			end = anchors[i+1][0]
		}
		e := p.ExtractEntry(combined[loc[0]:end])
		if e.GroupID == constants.Sentinel {
			continue
		}
		p.logger.Debug("parsed roster entry", "group", e.GroupID)
		entries = append(entries, e)
	}
	p.logger.Info("document segmented", "anchors", len(anchors), "entries", len(entries))
	return entries
}
