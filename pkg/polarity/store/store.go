package store

import (
	"context"
	"crypto/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// Store persists sentiment analysis runs for downstream consumers
// (dashboards read the ranked tables straight from here).
type Store interface {
	Close() error

	// Runs
	SaveRun(ctx context.Context, r Run) error
	GetRun(ctx context.Context, id string) (Run, error)
	ListRuns(ctx context.Context, limit int) ([]RunSummary, error)

	// Result tables
	TopSentiment(ctx context.Context, runID string, positive bool, k int) ([]SentimentRecord, error)
	TopWords(ctx context.Context, runID string, n int) ([]WordCount, error)
}

// Run is one complete pipeline execution with its result tables.
type Run struct {
	ID          string
	Source      string
	CreatedAt   time.Time
	TotalDocs   int64
	TotalTokens int64
	TotalPos    int64
	TotalNeg    int64
	Sentiment   []SentimentRecord
	WordFreq    []WordCount
}

// RunSummary is a Run without its result tables.
type RunSummary struct {
	ID          string
	Source      string
	CreatedAt   time.Time
	TotalDocs   int64
	TotalTokens int64
}

// SentimentRecord is one row of the sentiment table.
type SentimentRecord struct {
	Word         string
	ContextCount int64
	PosCount     int64
	NegCount     int64
	Score        float64
}

// WordCount is one row of the word-frequency table.
type WordCount struct {
	Word  string
	Count int64
}

var (
	entropyMu sync.Mutex
	entropy   = ulid.Monotonic(rand.Reader, 0)
)

// NewRunID returns a fresh lexicographically sortable run identifier.
func NewRunID() string {
	entropyMu.Lock()
	defer entropyMu.Unlock()
	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
}
