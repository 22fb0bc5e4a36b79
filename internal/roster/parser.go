package roster

import (
	"log/slog"
	"regexp"

	"github.com/zerobacojp/ocr-normalizer/constants"
)

// Config holds the fixed vocabulary the parser matches against. Both
// values are bound at construction and read-only afterwards.
type Config struct {
	Committees    []string // closed committee ranking vocabulary, in column order
	AddressAnchor string   // locality token addresses start with
}

// Parser turns OCR document text into roster entries. All parsing
// operations are total: malformed input yields sentinel fields, never an
// error.
type Parser struct {
	cfg       Config
	reAddress *regexp.Regexp
	logger    *slog.Logger
}

func NewParser(cfg Config, logger *slog.Logger) *Parser {
	if logger == nil {
		logger = slog.Default()
	}
	if len(cfg.Committees) == 0 {
		cfg.Committees = constants.Committees
	}
	if cfg.AddressAnchor == "" {
		cfg.AddressAnchor = constants.AddressAnchor
	}
	return &Parser{
		cfg: cfg,
		// anchor, then anything up to a digit, priority marker or line
		// break, then the digit/hyphen-like tail of a block-lot number
		reAddress: regexp.MustCompile(regexp.QuoteMeta(cfg.AddressAnchor) + `[^0-9①②③\n]*[0-9０-９一ー=-]+`),
		logger:    logger,
	}
}
