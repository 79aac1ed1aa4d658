// Package polarity scores review corpora with a smoothed lexicon-PMI
// sentiment model: normalize text into tokens, aggregate frequency tables
// against positive/negative seed lexicons, then rank tokens by the
// difference of their PMI with each sentiment class.
package polarity

import (
	"sync"

	"github.com/cognicore/polarity/pkg/polarity/freq"
	"github.com/cognicore/polarity/pkg/polarity/lexicon"
	"github.com/cognicore/polarity/pkg/polarity/normalize"
	"github.com/cognicore/polarity/pkg/polarity/pmi"
)

// Pipeline runs the normalize → aggregate → score stages over a corpus.
// A Pipeline is constructed per run and holds only configuration; Run does
// not mutate it, so a Pipeline may be reused across corpora.
type Pipeline struct {
	normalizer *normalize.Normalizer
	positive   lexicon.Set
	negative   lexicon.Set
	scorer     *pmi.Scorer
	workers    int
}

// Options configures a Pipeline.
type Options struct {
	Normalizer *normalize.Normalizer
	Positive   lexicon.Set
	Negative   lexicon.Set
	Ambiguous  lexicon.Set
	Scorer     pmi.Config
	// Workers shards document tokenization and counting across goroutines.
	// Values <= 1 run the fold sequentially. Results are identical either
	// way because shard tables merge by per-key summation.
	Workers int
}

// New creates a Pipeline. A nil Normalizer falls back to the default
// stopword and noise lists.
func New(opts Options) *Pipeline {
	n := opts.Normalizer
	if n == nil {
		n = normalize.New(normalize.DefaultStopwords(), lexicon.DefaultNoise())
	}
	return &Pipeline{
		normalizer: n,
		positive:   opts.Positive,
		negative:   opts.Negative,
		scorer:     pmi.NewScorer(opts.Scorer, opts.Ambiguous),
		workers:    opts.Workers,
	}
}

// Report is the full pipeline output.
type Report struct {
	TopPositive []pmi.Record
	TopNegative []pmi.Record
	WordFreq    []pmi.WordCount

	TotalDocs   int
	TotalTokens int64
	TotalPos    int64
	TotalNeg    int64
}

// Run processes the corpus and returns the ranked sentiment lists plus the
// word-frequency table. An empty corpus produces an empty report, never an
// error.
func (p *Pipeline) Run(docs []string) Report {
	var counter *freq.Counter
	if p.workers > 1 && len(docs) > 1 {
		counter = p.countParallel(docs)
	} else {
		counter = freq.NewCounter(p.positive, p.negative)
		for _, doc := range docs {
			counter.Add(p.normalizer.Tokenize(doc))
		}
	}

	records := p.scorer.ScoreAll(counter)
	topPos, topNeg := p.scorer.Rank(records)

	return Report{
		TopPositive: topPos,
		TopNegative: topNeg,
		WordFreq:    p.scorer.WordFreq(counter),
		TotalDocs:   len(docs),
		TotalTokens: counter.TotalTokens(),
		TotalPos:    counter.TotalPos(),
		TotalNeg:    counter.TotalNeg(),
	}
}

// countParallel builds one partial counter per worker over a contiguous
// shard of the corpus, then merges them. Merge order is irrelevant.
func (p *Pipeline) countParallel(docs []string) *freq.Counter {
	workers := p.workers
	if workers > len(docs) {
		workers = len(docs)
	}

	parts := make([]*freq.Counter, workers)
	var wg sync.WaitGroup
	chunk := (len(docs) + workers - 1) / workers

	for i := 0; i < workers; i++ {
		lo := i * chunk
		hi := lo + chunk
		if hi > len(docs) {
			hi = len(docs)
		}
		if lo >= hi {
			parts[i] = freq.NewCounter(p.positive, p.negative)
			continue
		}

		wg.Add(1)
		go func(i int, shard []string) {
			defer wg.Done()
			c := freq.NewCounter(p.positive, p.negative)
			for _, doc := range shard {
				c.Add(p.normalizer.Tokenize(doc))
			}
			parts[i] = c
		}(i, docs[lo:hi])
	}
	wg.Wait()

	merged := parts[0]
	for _, part := range parts[1:] {
		merged.Merge(part)
	}
	return merged
}
