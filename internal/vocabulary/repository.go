package vocabulary

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// cachedWord is one row of the local vocabulary cache. The word itself is
// kept as a JSON blob; the cache only needs to replay the last good payload.
type cachedWord struct {
	ID     string          `db:"id"`
	Level  string          `db:"level"`
	Record json.RawMessage `db:"record"`
}

// CacheRepository persists the last successfully fetched vocabulary set.
type CacheRepository interface {
	FindAll(ctx context.Context) (map[string][]Word, error)
	ReplaceAll(ctx context.Context, leveled map[string][]Word) error
}

// DBCacheRepository implements CacheRepository on SQLite.
type DBCacheRepository struct {
	db *sqlx.DB
}

const cacheSchema = `CREATE TABLE IF NOT EXISTS words (
	id TEXT PRIMARY KEY,
	level TEXT NOT NULL,
	record TEXT NOT NULL
)`

// NewDBCacheRepository creates the repository and its schema.
func NewDBCacheRepository(db *sqlx.DB) (*DBCacheRepository, error) {
	if _, err := db.Exec(cacheSchema); err != nil {
		return nil, fmt.Errorf("db.Exec(create words) > %w", err)
	}
	return &DBCacheRepository{db: db}, nil
}

// FindAll returns the cached vocabulary set grouped by level.
func (r *DBCacheRepository) FindAll(ctx context.Context) (map[string][]Word, error) {
	var rows []cachedWord
	if err := r.db.SelectContext(ctx, &rows, "SELECT id, level, record FROM words ORDER BY id"); err != nil {
		return nil, fmt.Errorf("db.SelectContext(words) > %w", err)
	}

	leveled := make(map[string][]Word)
	for _, row := range rows {
		var word Word
		if err := json.Unmarshal(row.Record, &word); err != nil {
			return nil, fmt.Errorf("json.Unmarshal(word %s) > %w", row.ID, err)
		}
		leveled[row.Level] = append(leveled[row.Level], word)
	}
	return leveled, nil
}

// ReplaceAll swaps the cache contents for the given set in one transaction.
func (r *DBCacheRepository) ReplaceAll(ctx context.Context, leveled map[string][]Word) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("db.BeginTxx() > %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, "DELETE FROM words"); err != nil {
		return fmt.Errorf("tx.ExecContext(delete words) > %w", err)
	}

	for level, words := range leveled {
		for _, word := range words {
			record, err := json.Marshal(word)
			if err != nil {
				return fmt.Errorf("json.Marshal(word %s) > %w", word.ID, err)
			}
			if _, err := tx.ExecContext(ctx,
				"INSERT INTO words (id, level, record) VALUES (?, ?, ?)",
				word.ID, level, record); err != nil {
				return fmt.Errorf("tx.ExecContext(insert word %s) > %w", word.ID, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("tx.Commit() > %w", err)
	}
	return nil
}
