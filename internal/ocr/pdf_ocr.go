package ocr

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/zerobacojp/ocr-normalizer/constants"
)

// PageMarker renders the page-break marker inserted between OCR'd pages.
// The roster segmenter treats it purely as a stream-join point.
func PageMarker(n int) string {
	return fmt.Sprintf("=== ページ %d ===", n)
}

func (e *Extractor) extractPDF(ctx context.Context, path string) (Result, error) {
	tmpDir, err := os.MkdirTemp("", "roster-pp-*")
	if err != nil {
		return Result{SourceType: constants.PDF}, err
	}
	defer func() {
		if rerr := os.RemoveAll(tmpDir); rerr != nil {
			e.logger.Warn("failed to remove temp dir", "dir", tmpDir, "error", rerr)
		}
	}()

	prefix := filepath.Join(tmpDir, "page")
	// pdftoppm -r 300 -png <in.pdf> <tmp/page>
	_, errb, err := e.runner.Run(ctx, e.cfg.Pdftoppm, "-r", fmt.Sprintf("%d", e.cfg.DPI), "-png", path, prefix)
	if err != nil {
		return Result{SourceType: constants.PDF, Warnings: []string{string(errb)}}, fmt.Errorf("pdftoppm: %w", err)
	}

	// collect generated pngs (prefix-1.png, prefix-2.png, ...)
	matches, _ := filepath.Glob(prefix + "-*.png")
	sort.Strings(matches)
	if e.cfg.MaxPages > 0 && len(matches) > e.cfg.MaxPages {
		matches = matches[:e.cfg.MaxPages]
	}
	if len(matches) == 0 {
		return Result{SourceType: constants.PDF}, fmt.Errorf("pdftoppm produced no pages for %s", path)
	}

	var b strings.Builder
	var warns []string
	for i, img := range matches {
		e.logger.Info("ocr page", "page", i+1, "pages", len(matches))
		txt, w, err := e.tesseractOCR(ctx, img)
		warns = append(warns, w...)
		if err != nil {
			return Result{SourceType: constants.PDF, Pages: i, Warnings: warns}, err
		}
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(PageMarker(i + 1))
		b.WriteString("\n")
		b.WriteString(txt)
		b.WriteString("\n")
	}
	return Result{
		Text:       b.String(),
		Pages:      len(matches),
		SourceType: constants.PDF,
		Language:   e.cfg.Lang,
		Warnings:   warns,
	}, nil
}
