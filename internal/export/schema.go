package export

import "github.com/zerobacojp/ocr-normalizer/constants"

// BuildRosterJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map describing the exported record list: every column is a
// required non-empty string, and committee columns are constrained to the
// rank marks or the sentinel. Used to validate JSON output before it is
// written.
func BuildRosterJSONSchema() map[string]any {
	props := map[string]any{}
	required := make([]string, 0, len(constants.Columns))
	for _, col := range constants.Columns {
		props[col] = map[string]any{"type": "string", "minLength": 1}
		required = append(required, col)
	}
	for _, dept := range constants.Committees {
		props[dept] = map[string]any{
			"enum": []string{"①", "②", "③", constants.Sentinel},
		}
	}
	return map[string]any{
		"type": "array",
		"items": map[string]any{
			"type":                 "object",
			"additionalProperties": false,
			"properties":           props,
			"required":             required,
		},
	}
}
