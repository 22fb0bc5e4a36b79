package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/zerobacojp/ocr-normalizer/internal/export"
	"github.com/zerobacojp/ocr-normalizer/internal/roster"
)

// rosterparse parses an already-OCR'd roster text file and prints the
// validated records as JSON on stdout.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if len(os.Args) != 2 {
		logger.Error("usage", "cmd", "rosterparse <extracted-text-file>")
		os.Exit(2)
	}

	raw, err := os.ReadFile(os.Args[1])
	if err != nil {
		logger.Error("read input", "path", os.Args[1], "error", err)
		os.Exit(1)
	}

	parser := roster.NewParser(roster.Config{}, logger)
	entries := parser.SegmentDocument(string(raw))

	data, err := export.EncodeJSON(entries)
	if err != nil {
		logger.Error("encode entries", "error", err)
		os.Exit(1)
	}
	fmt.Println(string(data))
}
