package export

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"

	"github.com/zerobacojp/ocr-normalizer/constants"
	"github.com/zerobacojp/ocr-normalizer/internal/entity"
)

// WriteCSV writes the entries as UTF-8 CSV with a header row, preserving
// input order and sentinel literals.
func WriteCSV(entries []*entity.RosterEntry, path string, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			logger.Warn("close csv", "error", cerr)
		}
	}()

	w := csv.NewWriter(f)
	if err := w.Write(constants.Columns); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, entry := range entries {
		if err := w.Write(entry.Row()); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	logger.Info("wrote csv", "path", path, "rows", len(entries))
	return nil
}
