package warp

import (
	"database/sql"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
)

type SqliteJournal struct {
	db *sql.DB
	mu sync.Mutex
}

var _ Journal = &SqliteJournal{}

func NewSqliteJournal(path string) (db *SqliteJournal, err error) {
	log.Info().Msgf("opening sqlite journal at: '%s'", path)

	sqldb, err := sql.Open("sqlite3", path)
	if err != nil {
		err = errors.Wrap(err, "failed to open database")
		return
	}

	if err = sqldb.Ping(); err != nil {
		_ = sqldb.Close()
		err = errors.Wrap(err, "failed to ping database")
		return
	}

	db = &SqliteJournal{db: sqldb}
	if err = db.initTables(); err != nil {
		_ = sqldb.Close()
		db = nil
		err = errors.Wrap(err, "failed to init tables")
		return
	}

	return
}

func (s *SqliteJournal) initTables() (err error) {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS interaction (
			id TEXT PRIMARY KEY,
			contract TEXT NOT NULL,
			input TEXT NOT NULL,
			timestamp INTEGER,
			block INTEGER,
			public TEXT,
			signature TEXT,
			created_at INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_interaction_contract ON interaction(contract)`,
		`CREATE INDEX IF NOT EXISTS idx_interaction_created_at ON interaction(created_at)`,
	}

	for i, query := range queries {
		_, err = s.db.Exec(query)
		if err != nil {
			err = errors.Wrapf(err, "failed to execute query: %d", i)
			return
		}
	}

	return
}

func (s *SqliteJournal) AddInteraction(record InteractionRecord) (err error) {
	if record.ID == "" {
		return errors.Wrap(ErrArgument, "interaction id must be set")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err = s.db.Exec(`
		INSERT OR REPLACE INTO interaction (id, contract, input, timestamp, block, public, signature, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		record.ID,
		record.Contract,
		record.Input,
		record.Timestamp,
		record.Block,
		record.Public,
		record.Signature,
		record.CreatedAt.UnixNano(),
	)

	return errors.WithStack(err)
}

func (s *SqliteJournal) GetInteraction(id string) (record InteractionRecord, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	row := s.db.QueryRow(`
		SELECT id, contract, input, timestamp, block, public, signature, created_at
		FROM interaction
		WHERE id = ?`,
		id)

	record, err = scanInteraction(row)
	if errors.Is(err, sql.ErrNoRows) {
		err = errors.Wrapf(ErrInteractionNotFound, "interaction not found by id %s", id)
		return
	}
	err = errors.WithStack(err)

	return
}

func (s *SqliteJournal) ListInteractions(contract string, limit int) (records []InteractionRecord, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if limit <= 0 {
		limit = -1
	}

	rows, err := s.db.Query(`
		SELECT id, contract, input, timestamp, block, public, signature, created_at
		FROM interaction
		WHERE ? = '' OR contract = ?
		ORDER BY created_at DESC, id DESC
		LIMIT ?`,
		contract, contract, limit)
	if err != nil {
		err = errors.Wrap(err, "failed to query interactions")
		return
	}
	defer rows.Close()

	records = make([]InteractionRecord, 0)
	for rows.Next() {
		var record InteractionRecord
		if record, err = scanInteraction(rows); err != nil {
			err = errors.Wrap(err, "failed to scan row")
			return
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		err = errors.Wrap(err, "error during row iteration")
		return
	}

	return
}

func (s *SqliteJournal) Close() error {
	return errors.WithStack(s.db.Close())
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanInteraction(row rowScanner) (record InteractionRecord, err error) {
	var createdAt int64
	err = row.Scan(
		&record.ID,
		&record.Contract,
		&record.Input,
		&record.Timestamp,
		&record.Block,
		&record.Public,
		&record.Signature,
		&createdAt,
	)
	if err != nil {
		return
	}

	record.CreatedAt = time.Unix(0, createdAt).UTC()
	return
}
