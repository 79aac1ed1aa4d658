package memstore

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/cognicore/polarity/pkg/polarity/internalerr"
	"github.com/cognicore/polarity/pkg/polarity/store"
)

// Store is an in-memory implementation of store.Store for tests.
type Store struct {
	mu   sync.RWMutex
	runs map[string]store.Run
}

// New creates a new in-memory store.
func New() *Store {
	return &Store{runs: make(map[string]store.Run)}
}

// Close implements store.Store.
func (s *Store) Close() error { return nil }

// SaveRun inserts or replaces a run, keyed by ID.
func (s *Store) SaveRun(ctx context.Context, r store.Run) error {
	if r.ID == "" {
		return fmt.Errorf("%w: run id is empty", internalerr.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs[r.ID] = copyRun(r)
	return nil
}

// GetRun returns a run by ID.
func (s *Store) GetRun(ctx context.Context, id string) (store.Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if r, ok := s.runs[id]; ok {
		return copyRun(r), nil
	}
	return store.Run{}, fmt.Errorf("%w: run %s", internalerr.ErrNotFound, id)
}

// ListRuns returns run summaries, newest first (ULIDs sort by time).
func (s *Store) ListRuns(ctx context.Context, limit int) ([]store.RunSummary, error) {
	if limit <= 0 {
		limit = 50
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]store.RunSummary, 0, len(s.runs))
	for _, r := range s.runs {
		out = append(out, store.RunSummary{
			ID:          r.ID,
			Source:      r.Source,
			CreatedAt:   r.CreatedAt,
			TotalDocs:   r.TotalDocs,
			TotalTokens: r.TotalTokens,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// TopSentiment returns the k highest- or lowest-scoring records for a run.
func (s *Store) TopSentiment(ctx context.Context, runID string, positive bool, k int) ([]store.SentimentRecord, error) {
	if k <= 0 {
		k = 10
	}

	s.mu.RLock()
	r, ok := s.runs[runID]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: run %s", internalerr.ErrNotFound, runID)
	}

	recs := make([]store.SentimentRecord, len(r.Sentiment))
	copy(recs, r.Sentiment)
	sort.SliceStable(recs, func(i, j int) bool {
		if positive {
			return recs[i].Score > recs[j].Score
		}
		return recs[i].Score < recs[j].Score
	})
	if len(recs) > k {
		recs = recs[:k]
	}
	return recs, nil
}

// TopWords returns the n most frequent words for a run.
func (s *Store) TopWords(ctx context.Context, runID string, n int) ([]store.WordCount, error) {
	if n <= 0 {
		n = 100
	}

	s.mu.RLock()
	r, ok := s.runs[runID]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: run %s", internalerr.ErrNotFound, runID)
	}

	words := make([]store.WordCount, len(r.WordFreq))
	copy(words, r.WordFreq)
	sort.SliceStable(words, func(i, j int) bool {
		if words[i].Count != words[j].Count {
			return words[i].Count > words[j].Count
		}
		return words[i].Word < words[j].Word
	})
	if len(words) > n {
		words = words[:n]
	}
	return words, nil
}

func copyRun(r store.Run) store.Run {
	out := r
	out.Sentiment = make([]store.SentimentRecord, len(r.Sentiment))
	copy(out.Sentiment, r.Sentiment)
	out.WordFreq = make([]store.WordCount, len(r.WordFreq))
	copy(out.WordFreq, r.WordFreq)
	return out
}
