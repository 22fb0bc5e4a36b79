package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/zerobacojp/ocr-normalizer/constants"
	"github.com/zerobacojp/ocr-normalizer/internal/entity"
)

func sampleEntry() *entity.RosterEntry {
	committees := make(map[string]string, len(constants.Committees))
	for _, dept := range constants.Committees {
		committees[dept] = constants.Sentinel
	}
	committees["回覧広報"] = "①"
	return &entity.RosterEntry{
		GroupID:    "3班",
		Name:       "山田 太郎",
		Address:    "虹ヶ丘1-2-3",
		Tel:        "044-988-4952",
		Email:      constants.Sentinel,
		Committees: committees,
		Remarks:    constants.Sentinel,
	}
}

func TestWriteXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.xlsx")
	require.NoError(t, WriteXLSX([]*entity.RosterEntry{sampleEntry()}, path, nil))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, constants.Columns, rows[0])
	assert.Equal(t, "3班", rows[1][0])
	assert.Equal(t, "山田 太郎", rows[1][1])
	assert.Equal(t, "①", rows[1][10])
	// absent fields carry the literal sentinel, never a blank cell
	assert.Equal(t, constants.Sentinel, rows[1][4])
	assert.Equal(t, constants.Sentinel, rows[1][14])
}

func TestWriteXLSXPreservesOrder(t *testing.T) {
	first := sampleEntry()
	second := sampleEntry()
	second.GroupID = "1班"
	path := filepath.Join(t.TempDir(), "roster.xlsx")
	require.NoError(t, WriteXLSX([]*entity.RosterEntry{first, second}, path, nil))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "3班", rows[1][0])
	assert.Equal(t, "1班", rows[2][0])
}

func TestWriteCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.csv")
	require.NoError(t, WriteCSV([]*entity.RosterEntry{sampleEntry()}, path, nil))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, constants.Columns, records[0])
	assert.Equal(t, sampleEntry().Row(), records[1])
}

func TestEncodeJSON(t *testing.T) {
	data, err := EncodeJSON([]*entity.RosterEntry{sampleEntry()})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"班": "3班"`)
	assert.Contains(t, string(data), `"メールアドレス": "null"`)
}

func TestEncodeJSONEmptyList(t *testing.T) {
	data, err := EncodeJSON(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestEncodeJSONRejectsEmptyField(t *testing.T) {
	e := sampleEntry()
	e.Tel = ""
	_, err := EncodeJSON([]*entity.RosterEntry{e})
	assert.Error(t, err)
}

func TestEncodeJSONRejectsNumeralPriority(t *testing.T) {
	e := sampleEntry()
	e.Committees["会計"] = "2"
	_, err := EncodeJSON([]*entity.RosterEntry{e})
	assert.Error(t, err)
}

func TestWriteJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.json")
	require.NoError(t, WriteJSON([]*entity.RosterEntry{sampleEntry()}, path, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, ValidateJSONAgainstSchema(BuildRosterJSONSchema(), data))
}
