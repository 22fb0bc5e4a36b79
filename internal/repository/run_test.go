package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zerobacojp/ocr-normalizer/constants"
	"github.com/zerobacojp/ocr-normalizer/internal/common"
	"github.com/zerobacojp/ocr-normalizer/internal/entity"
)

func testEntry(groupID, name string) *entity.RosterEntry {
	committees := make(map[string]string, len(constants.Committees))
	for _, dept := range constants.Committees {
		committees[dept] = constants.Sentinel
	}
	committees["厚生福祉"] = "①"
	return &entity.RosterEntry{
		GroupID:    groupID,
		Name:       name,
		Address:    "虹ヶ丘1-2-3",
		Tel:        constants.Sentinel,
		Email:      constants.Sentinel,
		Committees: committees,
		Remarks:    constants.Sentinel,
	}
}

func TestParseRunRoundTrip(t *testing.T) {
	ctx := context.Background()
	db, err := Open(ctx, ":memory:", nil)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	repo := NewParseRunRepository(db, nil)
	run := ParseRun{
		ID:         uuid.New(),
		SourcePath: "roster.pdf",
		StartedAt:  time.Now().Add(-time.Minute),
		FinishedAt: time.Now(),
		EntryCount: 2,
	}
	entries := []*entity.RosterEntry{
		testEntry("1班", "佐藤 一郎"),
		testEntry("2班", "鈴木 次郎"),
	}
	require.NoError(t, repo.SaveRun(ctx, run, entries))

	got, err := repo.GetRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, run.ID, got.ID)
	assert.Equal(t, "roster.pdf", got.SourcePath)
	assert.Equal(t, 2, got.EntryCount)
	assert.Equal(t, run.StartedAt.Unix(), got.StartedAt.Unix())

	list, err := repo.ListEntries(ctx, run.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "1班", list[0].GroupID)
	assert.Equal(t, "鈴木 次郎", list[1].Name)
	assert.Equal(t, entries[1].Committees, list[1].Committees)
}

func TestGetRunNotFound(t *testing.T) {
	ctx := context.Background()
	db, err := Open(ctx, ":memory:", nil)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	repo := NewParseRunRepository(db, nil)
	_, err = repo.GetRun(ctx, uuid.New())
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestListEntriesEmptyRun(t *testing.T) {
	ctx := context.Background()
	db, err := Open(ctx, ":memory:", nil)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	repo := NewParseRunRepository(db, nil)
	run := ParseRun{ID: uuid.New(), SourcePath: "empty.txt", StartedAt: time.Now(), FinishedAt: time.Now()}
	require.NoError(t, repo.SaveRun(ctx, run, nil))

	list, err := repo.ListEntries(ctx, run.ID)
	require.NoError(t, err)
	assert.Empty(t, list)
}
