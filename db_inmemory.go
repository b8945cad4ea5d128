package warp

import (
	"sort"
	"sync"

	"github.com/pkg/errors"
)

type InMemoryJournal struct {
	records map[string]InteractionRecord
	mu      sync.RWMutex
}

var _ Journal = &InMemoryJournal{}

func NewInMemoryJournal() *InMemoryJournal {
	return &InMemoryJournal{
		records: make(map[string]InteractionRecord),
	}
}

func (db *InMemoryJournal) AddInteraction(record InteractionRecord) error {
	if record.ID == "" {
		return errors.Wrap(ErrArgument, "interaction id must be set")
	}

	db.mu.Lock()
	defer db.mu.Unlock()

	db.records[record.ID] = record
	return nil
}

func (db *InMemoryJournal) GetInteraction(id string) (record InteractionRecord, err error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	record, ok := db.records[id]
	if !ok {
		return InteractionRecord{}, errors.Wrapf(ErrInteractionNotFound, "interaction not found by id %s", id)
	}

	return record, nil
}

func (db *InMemoryJournal) ListInteractions(contract string, limit int) (records []InteractionRecord, err error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	records = make([]InteractionRecord, 0, len(db.records))
	for _, record := range db.records {
		if contract != "" && record.Contract != contract {
			continue
		}
		records = append(records, record)
	}

	sort.Slice(records, func(i, j int) bool {
		if records[i].CreatedAt.Equal(records[j].CreatedAt) {
			return records[i].ID > records[j].ID
		}
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})

	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}

	return records, nil
}

func (db *InMemoryJournal) Close() error {
	return nil
}
