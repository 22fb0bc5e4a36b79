package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zerobacojp/ocr-normalizer/constants"
	"github.com/zerobacojp/ocr-normalizer/internal/ocr"
	"github.com/zerobacojp/ocr-normalizer/internal/repository"
	"github.com/zerobacojp/ocr-normalizer/internal/roster"
)

const sampleDoc = `=== ページ 1 ===
1班 佐藤 一郎
虹ヶ丘１ー２ー３
①回覧広報
2班 鈴木 次郎
044-988-4952
`

type fakeExtractor struct {
	text string
	err  error
}

func (f *fakeExtractor) Extract(context.Context, string) (ocr.Result, error) {
	if f.err != nil {
		return ocr.Result{}, f.err
	}
	return ocr.Result{Text: f.text, Pages: 1, SourceType: constants.IMAGE, Language: "jpn"}, nil
}

func newTestPipeline(t *testing.T, ex TextExtractor) (*Pipeline, repository.ParseRunRepository) {
	t.Helper()
	db, err := repository.Open(context.Background(), ":memory:", nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	runs := repository.NewParseRunRepository(db, nil)
	parser := roster.NewParser(roster.Config{}, nil)
	return New(ex, parser, runs, nil), runs
}

func TestPipelineRun(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "roster.png")
	require.NoError(t, os.WriteFile(input, []byte("img"), 0o644))

	p, runs := newTestPipeline(t, &fakeExtractor{text: sampleDoc})
	res, err := p.Run(context.Background(), input, filepath.Join(dir, "out"))
	require.NoError(t, err)

	assert.Equal(t, 2, res.Entries)
	for _, path := range []string{res.TextFile, res.XLSXFile, res.CSVFile, res.JSONFile} {
		_, err := os.Stat(path)
		assert.NoError(t, err, path)
	}

	archived, err := runs.ListEntries(context.Background(), res.RunID)
	require.NoError(t, err)
	require.Len(t, archived, 2)
	assert.Equal(t, "1班", archived[0].GroupID)
	assert.Equal(t, "2班", archived[1].GroupID)
	assert.Equal(t, "044-988-4952", archived[1].Tel)
}

func TestPipelineTXTSkipsOCR(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "roster.txt")
	require.NoError(t, os.WriteFile(input, []byte(sampleDoc), 0o644))

	// the extractor would fail if the pipeline invoked it
	p, _ := newTestPipeline(t, &fakeExtractor{err: errors.New("ocr must not run")})
	res, err := p.Run(context.Background(), input, filepath.Join(dir, "out"))
	require.NoError(t, err)
	assert.Equal(t, 2, res.Entries)
}

func TestPipelineMissingInput(t *testing.T) {
	dir := t.TempDir()
	p, _ := newTestPipeline(t, &fakeExtractor{text: sampleDoc})

	_, err := p.Run(context.Background(), filepath.Join(dir, "absent.pdf"), filepath.Join(dir, "out"))
	assert.ErrorContains(t, err, "INPUT_MISSING")
}

func TestPipelineOCRFailurePropagates(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "roster.png")
	require.NoError(t, os.WriteFile(input, []byte("img"), 0o644))

	p, _ := newTestPipeline(t, &fakeExtractor{err: errors.New("tesseract: exit status 1")})
	res, err := p.Run(context.Background(), input, filepath.Join(dir, "out"))
	assert.ErrorContains(t, err, "tesseract")
	// the failed run leaves no parsed artifacts behind
	_, statErr := os.Stat(filepath.Join(dir, "out", "roster_output.xlsx"))
	assert.True(t, os.IsNotExist(statErr))
	assert.Empty(t, res.XLSXFile)
}

func TestPipelineEmptyDocument(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "roster.txt")
	require.NoError(t, os.WriteFile(input, []byte("班番号のない文書"), 0o644))

	p, runs := newTestPipeline(t, &fakeExtractor{})
	res, err := p.Run(context.Background(), input, filepath.Join(dir, "out"))
	require.NoError(t, err)
	assert.Equal(t, 0, res.Entries)

	archived, err := runs.ListEntries(context.Background(), res.RunID)
	require.NoError(t, err)
	assert.Empty(t, archived)
}
