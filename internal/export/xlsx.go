package export

import (
	"fmt"
	"log/slog"

	"github.com/xuri/excelize/v2"

	"github.com/zerobacojp/ocr-normalizer/constants"
	"github.com/zerobacojp/ocr-normalizer/internal/entity"
)

// SheetName is the single worksheet the roster export writes.
const SheetName = "班長役員希望内訳"

// WriteXLSX renders the entries into a single-sheet workbook at path.
// Row order follows the input, and absent fields keep the literal
// sentinel so a reviewer can tell "not found" from a blank cell.
func WriteXLSX(entries []*entity.RosterEntry, path string, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); cerr != nil {
			logger.Warn("close workbook", "error", cerr)
		}
	}()

	if _, err := f.NewSheet(SheetName); err != nil {
		return fmt.Errorf("new sheet: %w", err)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("delete default sheet: %w", err)
	}
	index, err := f.GetSheetIndex(SheetName)
	if err != nil {
		return fmt.Errorf("sheet index: %w", err)
	}
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}

	widths := make([]int, len(constants.Columns))
	for i, col := range constants.Columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(SheetName, cell, col); err != nil {
			return fmt.Errorf("write header %q: %w", col, err)
		}
		if err := f.SetCellStyle(SheetName, cell, cell, headerStyle); err != nil {
			return fmt.Errorf("style header %q: %w", col, err)
		}
		widths[i] = len([]rune(col))
	}

	for r, entry := range entries {
		for c, v := range entry.Row() {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			if err := f.SetCellValue(SheetName, cell, v); err != nil {
				return fmt.Errorf("write row %d: %w", r+2, err)
			}
			if n := len([]rune(v)); n > widths[c] {
				widths[c] = n
			}
		}
	}

	// widen columns to fit content, capped at 50 characters
	for i := range constants.Columns {
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return fmt.Errorf("column name: %w", err)
		}
		w := float64(widths[i] + 2)
		if w > 50 {
			w = 50
		}
		if err := f.SetColWidth(SheetName, name, name, w); err != nil {
			return fmt.Errorf("set column width: %w", err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	logger.Info("wrote xlsx", "path", path, "rows", len(entries))
	return nil
}
