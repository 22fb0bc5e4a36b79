package entity

import "github.com/zerobacojp/ocr-normalizer/constants"

// RosterEntry represents one parsed 班長 (group leader) roster entry for
// data transfer between layers. Once produced by the segmenter every
// field is either a non-empty string or the literal sentinel; records are
// never mutated afterwards.
type RosterEntry struct {
	GroupID    string
	Name       string
	Address    string
	Tel        string
	Email      string
	Committees map[string]string
	Remarks    string
}

// Field returns the entry's value for an output column name.
func (e *RosterEntry) Field(column string) string {
	switch column {
	case "班":
		return e.GroupID
	case "氏名":
		return e.Name
	case "住所":
		return e.Address
	case "TEL":
		return e.Tel
	case "メールアドレス":
		return e.Email
	case "補足事項":
		return e.Remarks
	}
	if v, ok := e.Committees[column]; ok {
		return v
	}
	return constants.Sentinel
}

// Row lists the entry's values in the fixed output column order.
func (e *RosterEntry) Row() []string {
	row := make([]string, 0, len(constants.Columns))
	for _, col := range constants.Columns {
		row = append(row, e.Field(col))
	}
	return row
}
