package pmi

import (
	"math"
	"sort"

	"github.com/cognicore/polarity/pkg/polarity/freq"
	"github.com/cognicore/polarity/pkg/polarity/lexicon"
)

// Config controls PMI scoring and ranking.
type Config struct {
	Alpha           float64 // additive smoothing constant
	MinContextCount int64   // frequency floor for ranked output
	TopK            int     // size of each ranked sentiment list
	FreqTableSize   int     // size of the word-frequency table
}

// DefaultConfig returns the standard configuration: alpha 1, frequency floor
// 5, top 10 per sentiment list, top 100 word frequencies.
func DefaultConfig() Config {
	return Config{
		Alpha:           1.0,
		MinContextCount: 5,
		TopK:            10,
		FreqTableSize:   100,
	}
}

// Record is the scored output for a single token.
type Record struct {
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

// Scorer computes smoothed lexicon-PMI sentiment scores.
//
// For token t with context count c, positive count p, negative count n,
// corpus total N and class totals P, Q:
//
//	score(t) = log2((p+α)/N / (c/N * P/N)) - log2((n+α)/N / (c/N * Q/N))
//
// The class probabilities come from the raw seed-word frequencies, not from
// co-occurrence within a context window. Empty class totals default to 1 and
// zero-context tokens are filtered out before the division.
type Scorer struct {
	cfg       Config
	ambiguous lexicon.Set
}

// NewScorer creates a scorer with the given config and ambiguous-word
// exclusion set. Non-positive config fields fall back to defaults.
func NewScorer(cfg Config, ambiguous lexicon.Set) *Scorer {
	def := DefaultConfig()
	if cfg.Alpha <= 0 {
		cfg.Alpha = def.Alpha
	}
	if cfg.MinContextCount <= 0 {
		cfg.MinContextCount = def.MinContextCount
	}
	if cfg.TopK <= 0 {
		cfg.TopK = def.TopK
	}
	if cfg.FreqTableSize <= 0 {
		cfg.FreqTableSize = def.FreqTableSize
	}
	return &Scorer{cfg: cfg, ambiguous: ambiguous}
}

// ScoreAll computes one record per token with a non-zero context count,
// in sorted token order. An empty corpus yields an empty slice.
func (s *Scorer) ScoreAll(c *freq.Counter) []Record {
	n := c.TotalTokens()
	if n == 0 {
		return nil
	}

	totalPos := c.TotalPos()
	if totalPos == 0 {
		totalPos = 1
	}
	totalNeg := c.TotalNeg()
	if totalNeg == 0 {
		totalNeg = 1
	}

	fN := float64(n)
	pPos := float64(totalPos) / fN
	pNeg := float64(totalNeg) / fN

	records := make([]Record, 0, c.UniqueTokens())
	for _, tok := range c.Tokens() {
		cc := c.ContextCount(tok)
		if cc == 0 {
			continue
		}
		pc := c.PosCount(tok)
		nc := c.NegCount(tok)

		pW := float64(cc) / fN
		pWPos := (float64(pc) + s.cfg.Alpha) / fN
		pWNeg := (float64(nc) + s.cfg.Alpha) / fN

		pmiPos := math.Log2(pWPos / (pW * pPos))
		pmiNeg := math.Log2(pWNeg / (pW * pNeg))

		records = append(records, Record{
			Word:         tok,
			ContextCount: cc,
			PosCount:     pc,
			NegCount:     nc,
			Score:        pmiPos - pmiNeg,
		})
	}
	return records
}

// Rank applies the frequency floor and the ambiguous-word exclusion, then
// returns the top-K records by descending score (positive list) and by
// ascending score (negative list). Sorting is stable, so ties keep the
// deterministic token order produced by ScoreAll.
func (s *Scorer) Rank(records []Record) (positive, negative []Record) {
	kept := make([]Record, 0, len(records))
	for _, r := range records {
		if r.ContextCount < s.cfg.MinContextCount {
			continue
		}
		if s.ambiguous.Contains(r.Word) {
			continue
		}
		kept = append(kept, r)
	}

	positive = make([]Record, len(kept))
	copy(positive, kept)
	sort.SliceStable(positive, func(i, j int) bool {
		return positive[i].Score > positive[j].Score
	})
	if len(positive) > s.cfg.TopK {
		positive = positive[:s.cfg.TopK]
	}

	negative = make([]Record, len(kept))
	copy(negative, kept)
	sort.SliceStable(negative, func(i, j int) bool {
		return negative[i].Score < negative[j].Score
	})
	if len(negative) > s.cfg.TopK {
		negative = negative[:s.cfg.TopK]
	}

	return positive, negative
}

// WordFreq returns the most frequent tokens, descending by count with
// lexicographic tie-break, independent of any sentiment filtering.
func (s *Scorer) WordFreq(c *freq.Counter) []WordCount {
	out := make([]WordCount, 0, c.UniqueTokens())
	for _, tok := range c.Tokens() {
		out = append(out, WordCount{Word: tok, Count: c.ContextCount(tok)})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	if len(out) > s.cfg.FreqTableSize {
		out = out[:s.cfg.FreqTableSize]
	}
	return out
}
