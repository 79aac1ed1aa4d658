package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/cognicore/polarity/pkg/polarity/internalerr"
	"github.com/cognicore/polarity/pkg/polarity/store"
)

// sqliteStore implements the Store interface using SQLite
type sqliteStore struct {
	db *sql.DB
}

// Open opens a SQLite database with WAL mode enabled and initializes the
// schema.
func Open(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", internalerr.ErrStoreUnavailable, path, err)
	}

	// Enable WAL mode for better concurrency
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: open %s: %v", internalerr.ErrStoreUnavailable, path, err)
	}

	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: open %s: %v", internalerr.ErrStoreUnavailable, path, err)
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: init schema %s: %v", internalerr.ErrStoreUnavailable, path, err)
	}

	return &sqliteStore{db: db}, nil
}

// Close closes the database connection
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

// initSchema creates tables if they don't exist
func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS runs (
	id TEXT PRIMARY KEY,
	source TEXT NOT NULL,
	created_at TEXT NOT NULL,
	total_docs INTEGER NOT NULL DEFAULT 0,
	total_tokens INTEGER NOT NULL DEFAULT 0,
	total_pos INTEGER NOT NULL DEFAULT 0,
	total_neg INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS sentiment (
	run_id TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
	word TEXT NOT NULL,
	context_count INTEGER NOT NULL,
	pos_count INTEGER NOT NULL,
	neg_count INTEGER NOT NULL,
	score REAL NOT NULL,
	PRIMARY KEY (run_id, word)
);

CREATE TABLE IF NOT EXISTS word_freq (
	run_id TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
	word TEXT NOT NULL,
	count INTEGER NOT NULL,
	PRIMARY KEY (run_id, word)
);

CREATE INDEX IF NOT EXISTS idx_sentiment_score ON sentiment(run_id, score);
CREATE INDEX IF NOT EXISTS idx_word_freq_count ON word_freq(run_id, count DESC);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}

// SaveRun stores a run and its result tables in one transaction.
func (s *sqliteStore) SaveRun(ctx context.Context, r store.Run) error {
	if r.ID == "" {
		return fmt.Errorf("%w: run id is empty", internalerr.ErrInvalidInput)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO runs (id, source, created_at, total_docs, total_tokens, total_pos, total_neg)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			source=excluded.source, created_at=excluded.created_at,
			total_docs=excluded.total_docs, total_tokens=excluded.total_tokens,
			total_pos=excluded.total_pos, total_neg=excluded.total_neg`,
		r.ID, r.Source, r.CreatedAt.UTC().Format(time.RFC3339), r.TotalDocs, r.TotalTokens, r.TotalPos, r.TotalNeg)
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM sentiment WHERE run_id = ?", r.ID); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM word_freq WHERE run_id = ?", r.ID); err != nil {
		return err
	}

	for _, rec := range r.Sentiment {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO sentiment (run_id, word, context_count, pos_count, neg_count, score)
			VALUES (?, ?, ?, ?, ?, ?)`,
			r.ID, rec.Word, rec.ContextCount, rec.PosCount, rec.NegCount, rec.Score)
		if err != nil {
			return err
		}
	}

	for _, wc := range r.WordFreq {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO word_freq (run_id, word, count) VALUES (?, ?, ?)`,
			r.ID, wc.Word, wc.Count)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// GetRun loads a run with its full result tables.
func (s *sqliteStore) GetRun(ctx context.Context, id string) (store.Run, error) {
	var r store.Run
	var createdAt string
	err := s.db.QueryRowContext(ctx, `
		SELECT id, source, created_at, total_docs, total_tokens, total_pos, total_neg
		FROM runs WHERE id = ?`, id).
		Scan(&r.ID, &r.Source, &createdAt, &r.TotalDocs, &r.TotalTokens, &r.TotalPos, &r.TotalNeg)
	if err == sql.ErrNoRows {
		return store.Run{}, fmt.Errorf("%w: run %s", internalerr.ErrNotFound, id)
	}
	if err != nil {
		return store.Run{}, err
	}
	if t, perr := time.Parse(time.RFC3339, createdAt); perr == nil {
		r.CreatedAt = t
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT word, context_count, pos_count, neg_count, score
		FROM sentiment WHERE run_id = ? ORDER BY word`, id)
	if err != nil {
		return store.Run{}, err
	}
	defer rows.Close()
	for rows.Next() {
		var rec store.SentimentRecord
		if err := rows.Scan(&rec.Word, &rec.ContextCount, &rec.PosCount, &rec.NegCount, &rec.Score); err != nil {
			return store.Run{}, err
		}
		r.Sentiment = append(r.Sentiment, rec)
	}
	if err := rows.Err(); err != nil {
		return store.Run{}, err
	}

	wrows, err := s.db.QueryContext(ctx, `
		SELECT word, count FROM word_freq WHERE run_id = ? ORDER BY count DESC, word`, id)
	if err != nil {
		return store.Run{}, err
	}
	defer wrows.Close()
	for wrows.Next() {
		var wc store.WordCount
		if err := wrows.Scan(&wc.Word, &wc.Count); err != nil {
			return store.Run{}, err
		}
		r.WordFreq = append(r.WordFreq, wc)
	}
	return r, wrows.Err()
}

// ListRuns returns run summaries, newest first.
func (s *sqliteStore) ListRuns(ctx context.Context, limit int) ([]store.RunSummary, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, source, created_at, total_docs, total_tokens
		FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []store.RunSummary
	for rows.Next() {
		var rs store.RunSummary
		var createdAt string
		if err := rows.Scan(&rs.ID, &rs.Source, &createdAt, &rs.TotalDocs, &rs.TotalTokens); err != nil {
			return nil, err
		}
		if t, perr := time.Parse(time.RFC3339, createdAt); perr == nil {
			rs.CreatedAt = t
		}
		out = append(out, rs)
	}
	return out, rows.Err()
}

// TopSentiment returns the k highest-scoring records when positive is true,
// or the k lowest-scoring when false.
func (s *sqliteStore) TopSentiment(ctx context.Context, runID string, positive bool, k int) ([]store.SentimentRecord, error) {
	if k <= 0 {
		k = 10
	}
	order := "DESC"
	if !positive {
		order = "ASC"
	}
	rows, err := s.db.QueryContext(ctx, fmt.Sprintf(`
		SELECT word, context_count, pos_count, neg_count, score
		FROM sentiment WHERE run_id = ?
		ORDER BY score %s, word LIMIT ?`, order), runID, k)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []store.SentimentRecord
	for rows.Next() {
		var rec store.SentimentRecord
		if err := rows.Scan(&rec.Word, &rec.ContextCount, &rec.PosCount, &rec.NegCount, &rec.Score); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// TopWords returns the n most frequent words for a run.
func (s *sqliteStore) TopWords(ctx context.Context, runID string, n int) ([]store.WordCount, error) {
	if n <= 0 {
		n = 100
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT word, count FROM word_freq WHERE run_id = ?
		ORDER BY count DESC, word LIMIT ?`, runID, n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []store.WordCount
	for rows.Next() {
		var wc store.WordCount
		if err := rows.Scan(&wc.Word, &wc.Count); err != nil {
			return nil, err
		}
		out = append(out, wc)
	}
	return out, rows.Err()
}
