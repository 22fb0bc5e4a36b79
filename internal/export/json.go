package export

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/zerobacojp/ocr-normalizer/constants"
	"github.com/zerobacojp/ocr-normalizer/internal/entity"
)

// recordMaps flattens entries into column-keyed maps for JSON output.
func recordMaps(entries []*entity.RosterEntry) []map[string]string {
	out := make([]map[string]string, len(entries))
	for i, entry := range entries {
		m := make(map[string]string, len(constants.Columns))
		for _, col := range constants.Columns {
			m[col] = entry.Field(col)
		}
		out[i] = m
	}
	return out
}

// EncodeJSON marshals the entries and validates the payload against the
// roster schema before returning it.
func EncodeJSON(entries []*entity.RosterEntry) ([]byte, error) {
	data, err := json.MarshalIndent(recordMaps(entries), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal entries: %w", err)
	}
	if err := ValidateJSONAgainstSchema(BuildRosterJSONSchema(), data); err != nil {
		return nil, err
	}
	return data, nil
}

// WriteJSON writes the validated JSON artifact to path.
func WriteJSON(entries []*entity.RosterEntry, path string, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	data, err := EncodeJSON(entries)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	logger.Info("wrote json", "path", path, "rows", len(entries))
	return nil
}
