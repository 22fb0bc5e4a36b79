package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/zerobacojp/ocr-normalizer/constants"
	"github.com/zerobacojp/ocr-normalizer/internal/common"
	"github.com/zerobacojp/ocr-normalizer/internal/export"
	"github.com/zerobacojp/ocr-normalizer/internal/ocr"
	"github.com/zerobacojp/ocr-normalizer/internal/repository"
	"github.com/zerobacojp/ocr-normalizer/internal/roster"
)

// TextExtractor is the OCR collaborator: file path in, page-markered
// document text out. Its failures are fatal to the run and propagate
// unchanged.
type TextExtractor interface {
	Extract(ctx context.Context, path string) (ocr.Result, error)
}

type Pipeline struct {
	extractor TextExtractor
	parser    *roster.Parser
	runs      repository.ParseRunRepository
	logger    *slog.Logger
}

// Result lists the artifacts one run produced.
type Result struct {
	RunID    uuid.UUID
	TextFile string
	XLSXFile string
	CSVFile  string
	JSONFile string
	Entries  int
}

func New(extractor TextExtractor, parser *roster.Parser, runs repository.ParseRunRepository, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{extractor: extractor, parser: parser, runs: runs, logger: logger}
}

// Run drives OCR → segmentation → archive → export for one input file.
// TXT inputs are treated as already-extracted text and skip OCR. A run
// that fails reports the failure once; entries with unparseable fields
// still complete the run with sentinel values.
func (p *Pipeline) Run(ctx context.Context, inputPath, outDir string) (Result, error) {
	start := time.Now()
	res := Result{RunID: uuid.New()}

	if _, err := os.Stat(inputPath); err != nil {
		return res, common.NewAppError("INPUT_MISSING", fmt.Sprintf("input file %q", inputPath), err)
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return res, common.WrapError(err, "create output dir")
	}

	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))

	var text string
	if constants.MapExtToFormat(filepath.Ext(inputPath)) == constants.TXT {
		raw, err := os.ReadFile(inputPath)
		if err != nil {
			return res, common.WrapError(err, "read text file")
		}
		text = string(raw)
		p.logger.Info("using pre-extracted text", "path", inputPath, "chars", len(text))
	} else {
		ocrRes, err := p.extractor.Extract(ctx, inputPath)
		if err != nil {
			return res, common.WrapError(err, "ocr extraction")
		}
		text = ocrRes.Text
		p.logger.Info("ocr complete",
			"pages", ocrRes.Pages,
			"chars", len(text),
			"duration_ms", ocrRes.Duration.Milliseconds(),
		)
	}

	res.TextFile = filepath.Join(outDir, base+"_extracted.txt")
	if err := os.WriteFile(res.TextFile, []byte(text), 0o644); err != nil {
		return res, common.WrapError(err, "write text artifact")
	}

	entries := p.parser.SegmentDocument(text)
	res.Entries = len(entries)

	if p.runs != nil {
		run := repository.ParseRun{
			ID:         res.RunID,
			SourcePath: inputPath,
			StartedAt:  start,
			FinishedAt: time.Now(),
			EntryCount: len(entries),
		}
		if err := p.runs.SaveRun(ctx, run, entries); err != nil {
			return res, common.WrapError(err, "archive run")
		}
	}

	res.XLSXFile = filepath.Join(outDir, base+"_output.xlsx")
	if err := export.WriteXLSX(entries, res.XLSXFile, p.logger); err != nil {
		return res, common.WrapError(err, "export xlsx")
	}
	res.CSVFile = filepath.Join(outDir, base+"_output.csv")
	if err := export.WriteCSV(entries, res.CSVFile, p.logger); err != nil {
		return res, common.WrapError(err, "export csv")
	}
	res.JSONFile = filepath.Join(outDir, base+"_output.json")
	if err := export.WriteJSON(entries, res.JSONFile, p.logger); err != nil {
		return res, common.WrapError(err, "export json")
	}

	p.logger.Info("pipeline complete",
		"run_id", res.RunID,
		"entries", res.Entries,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return res, nil
}
