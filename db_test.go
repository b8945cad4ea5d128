package warp

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testJournal(t *testing.T, db Journal) {
	defer func() {
		assert.Nil(t, db.Close())
	}()

	records, err := db.ListInteractions("", 0)
	assert.Nil(t, err)
	assert.Empty(t, records)

	_, err = db.GetInteraction("missing")
	assert.ErrorIs(t, err, ErrInteractionNotFound)

	err = db.AddInteraction(InteractionRecord{})
	assert.ErrorIs(t, err, ErrArgument, "expected error adding a record without id")

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, r := range []struct {
		id       string
		contract string
	}{
		{"tx1", "contractA"},
		{"tx2", "contractB"},
		{"tx3", "contractA"},
	} {
		err = db.AddInteraction(InteractionRecord{
			ID:        r.id,
			Contract:  r.contract,
			Input:     `{"function":"x"}`,
			Timestamp: int64(1000 + i),
			Block:     int64(i),
			Public:    "pub",
			Signature: "sig",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
		assert.Nil(t, err)
	}

	record, err := db.GetInteraction("tx2")
	assert.Nil(t, err)
	assert.Equal(t, "contractB", record.Contract)
	assert.Equal(t, int64(1001), record.Timestamp)
	assert.Equal(t, `{"function":"x"}`, record.Input)
	assert.True(t, base.Add(time.Minute).Equal(record.CreatedAt))

	records, err = db.ListInteractions("", 0)
	assert.Nil(t, err)
	ids := make([]string, 0, len(records))
	for _, r := range records {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []string{"tx3", "tx2", "tx1"}, ids, "newest first")

	records, err = db.ListInteractions("contractA", 1)
	assert.Nil(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "tx3", records[0].ID)

	record.Block = 99
	assert.Nil(t, db.AddInteraction(record), "re-adding an id should replace it")
	record, err = db.GetInteraction("tx2")
	assert.Nil(t, err)
	assert.Equal(t, int64(99), record.Block)

	records, err = db.ListInteractions("", 0)
	assert.Nil(t, err)
	assert.Len(t, records, 3)
}

func TestInMemoryJournal(t *testing.T) {
	testJournal(t, NewInMemoryJournal())
}

func TestSqliteJournal(t *testing.T) {
	db, err := NewSqliteJournal(filepath.Join(t.TempDir(), "warp-test.db"))
	require.Nil(t, err)
	testJournal(t, db)
}

func TestNewInteractionRecord(t *testing.T) {
	record := NewInteractionRecord("contract", `{}`, &InteractionResponse{
		ID:        "id",
		Timestamp: 5,
		Public:    "pub",
		Signature: "sig",
		Block:     7,
	})

	assert.Equal(t, "id", record.ID)
	assert.Equal(t, "contract", record.Contract)
	assert.Equal(t, int64(7), record.Block)
	assert.False(t, record.CreatedAt.IsZero())
}
