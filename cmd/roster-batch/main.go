package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/zerobacojp/ocr-normalizer/internal/common"
	"github.com/zerobacojp/ocr-normalizer/internal/ocr"
	"github.com/zerobacojp/ocr-normalizer/internal/pipeline"
	repo "github.com/zerobacojp/ocr-normalizer/internal/repository"
	"github.com/zerobacojp/ocr-normalizer/internal/roster"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		out   = flag.String("out", "", "output directory (defaults to OUTPUT_DIR or ./output)")
		lang  = flag.String("lang", "", "tesseract language code (defaults to OCR_LANG or jpn)")
		dpi   = flag.Int("dpi", 0, "rasterization DPI for PDF inputs")
		inmem = flag.Bool("inmem", false, "use an in-memory sqlite archive")
	)
	flag.Parse()

	if flag.NArg() != 1 {
		printError("usage: roster-batch [flags] <input.pdf|input.png|input.txt>\n")
		os.Exit(2)
	}
	input := flag.Arg(0)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if *out != "" {
		cfg.OutputDir = *out
	}
	if *lang != "" {
		cfg.OCR.Lang = *lang
	}
	if *dpi > 0 {
		cfg.OCR.DPI = *dpi
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	dbPath := cfg.DBPath
	if *inmem {
		dbPath = ":memory:"
	}
	db, err := repo.Open(ctx, dbPath, logger)
	if err != nil {
		logger.Error("open archive", "error", err)
		os.Exit(1)
	}
	defer func() {
		if cerr := db.Close(); cerr != nil {
			logger.Error("close archive", "error", cerr)
		}
	}()

	extractor := ocr.NewExtractor(ocr.Config{
		Pdftoppm:    cfg.OCR.Pdftoppm,
		Tesseract:   cfg.OCR.Tesseract,
		Lang:        cfg.OCR.Lang,
		DPI:         cfg.OCR.DPI,
		MaxPages:    cfg.OCR.MaxPages,
		TessdataDir: cfg.OCR.TessdataDir,
		PSM:         cfg.OCR.PSM,
	}, logger)
	parser := roster.NewParser(roster.Config{}, logger)
	runs := repo.NewParseRunRepository(db, logger)

	p := pipeline.New(extractor, parser, runs, logger)
	res, err := p.Run(ctx, input, cfg.OutputDir)
	if err != nil {
		logger.Error("pipeline failed", "input", input, "error", err)
		os.Exit(1)
	}

	fmt.Printf("parsed %d entries from %s (run %s)\n", res.Entries, input, res.RunID)
	fmt.Printf("  text: %s\n  xlsx: %s\n  csv:  %s\n  json: %s\n",
		res.TextFile, res.XLSXFile, res.CSVFile, res.JSONFile)
}
