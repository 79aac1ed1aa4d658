package freq

import (
	"sort"

	"github.com/cognicore/polarity/pkg/polarity/lexicon"
)

// Counter maintains the three frequency tables consumed by the PMI scorer:
// total occurrences per token, and occurrences restricted to the positive and
// negative seed lexicons.
//
// The seed tables are direct frequency counts of the seed words themselves,
// not co-occurrence counts with the rest of the document. The scorer reuses
// them as class totals, so this shape must be preserved for output parity
// with downstream consumers.
type Counter struct {
	context map[string]int64
	pos     map[string]int64
	neg     map[string]int64
	total   int64

	positive lexicon.Set
	negative lexicon.Set
}

// NewCounter creates an empty counter classifying tokens against the given
// seed lexicons.
func NewCounter(positive, negative lexicon.Set) *Counter {
	return &Counter{
		context:  make(map[string]int64),
		pos:      make(map[string]int64),
		neg:      make(map[string]int64),
		positive: positive,
		negative: negative,
	}
}

// Add updates counts for one document's normalized tokens.
func (c *Counter) Add(tokens []string) {
	for _, t := range tokens {
		if t == "" {
			continue
		}
		c.context[t]++
		c.total++
		if c.positive.Contains(t) {
			c.pos[t]++
		}
		if c.negative.Contains(t) {
			c.neg[t]++
		}
	}
}

// Merge folds another counter's tables into this one by per-key summation.
// Addition over counts is associative and commutative, so shard merge order
// does not affect the result.
func (c *Counter) Merge(other *Counter) {
	for t, n := range other.context {
		c.context[t] += n
	}
	for t, n := range other.pos {
		c.pos[t] += n
	}
	for t, n := range other.neg {
		c.neg[t] += n
	}
	c.total += other.total
}

// ContextCount returns the total occurrences of a token, 0 when absent.
func (c *Counter) ContextCount(t string) int64 {
	return c.context[t]
}

// PosCount returns the positive-lexicon occurrences of a token, 0 when absent.
func (c *Counter) PosCount(t string) int64 {
	return c.pos[t]
}

// NegCount returns the negative-lexicon occurrences of a token, 0 when absent.
func (c *Counter) NegCount(t string) int64 {
	return c.neg[t]
}

// TotalTokens returns the total number of token occurrences in the corpus.
func (c *Counter) TotalTokens() int64 {
	return c.total
}

// TotalPos returns the summed positive-lexicon occurrences.
func (c *Counter) TotalPos() int64 {
	var sum int64
	for _, n := range c.pos {
		sum += n
	}
	return sum
}

// TotalNeg returns the summed negative-lexicon occurrences.
func (c *Counter) TotalNeg() int64 {
	var sum int64
	for _, n := range c.neg {
		sum += n
	}
	return sum
}

// UniqueTokens returns the number of distinct tokens seen.
func (c *Counter) UniqueTokens() int {
	return len(c.context)
}

// Tokens returns all distinct tokens in sorted order. Sorting makes every
// downstream pass deterministic regardless of map iteration order.
func (c *Counter) Tokens() []string {
	out := make([]string, 0, len(c.context))
	for t := range c.context {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}
