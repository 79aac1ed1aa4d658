package pmi

import (
	"math"
	"testing"

	"github.com/cognicore/polarity/pkg/polarity/freq"
	"github.com/cognicore/polarity/pkg/polarity/lexicon"
)

func seedSets() (lexicon.Set, lexicon.Set) {
	return lexicon.NewSet([]string{"good", "fun"}), lexicon.NewSet([]string{"bad", "boring"})
}

func TestScoreAllKnownValue(t *testing.T) {
	pos, neg := seedSets()
	c := freq.NewCounter(pos, neg)
	c.Add([]string{"good", "good", "good", "good", "good", "good"})

	s := NewScorer(DefaultConfig(), lexicon.NewSet(nil))
	records := s.ScoreAll(c)

	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	r := records[0]

	// N=6, c=6, p=6, n=0, P=6, Q=0 -> 1.
	// pmi_pos = log2((7/6) / (1 * 1)) ; pmi_neg = log2((1/6) / (1 * 1/6)) = 0
	want := math.Log2(7.0 / 6.0)
	if math.Abs(r.Score-want) > 1e-12 {
		t.Errorf("score = %v, want %v", r.Score, want)
	}
}

func TestScoreAllEmptyCorpus(t *testing.T) {
	pos, neg := seedSets()
	c := freq.NewCounter(pos, neg)

	s := NewScorer(DefaultConfig(), lexicon.NewSet(nil))
	if records := s.ScoreAll(c); len(records) != 0 {
		t.Errorf("empty corpus should yield no records, got %d", len(records))
	}

	topPos, topNeg := s.Rank(nil)
	if len(topPos) != 0 || len(topNeg) != 0 {
		t.Error("ranking an empty record set should yield empty lists")
	}
	if wf := s.WordFreq(c); len(wf) != 0 {
		t.Errorf("empty corpus should yield empty frequency table, got %d rows", len(wf))
	}
}

func TestScoreSwapAntisymmetry(t *testing.T) {
	pos, neg := seedSets()
	tokens := []string{
		"good", "good", "fun", "bad", "boring", "boring",
		"combat", "combat", "stealth", "good", "bad",
	}

	forward := freq.NewCounter(pos, neg)
	forward.Add(tokens)
	swapped := freq.NewCounter(neg, pos)
	swapped.Add(tokens)

	s := NewScorer(DefaultConfig(), lexicon.NewSet(nil))
	fRecords := s.ScoreAll(forward)
	sRecords := s.ScoreAll(swapped)

	if len(fRecords) != len(sRecords) {
		t.Fatalf("record counts differ: %d vs %d", len(fRecords), len(sRecords))
	}
	for i := range fRecords {
		if fRecords[i].Word != sRecords[i].Word {
			t.Fatalf("record order differs at %d: %s vs %s", i, fRecords[i].Word, sRecords[i].Word)
		}
		if math.Abs(fRecords[i].Score+sRecords[i].Score) > 1e-12 {
			t.Errorf("swap symmetry broken for %q: %v vs %v",
				fRecords[i].Word, fRecords[i].Score, sRecords[i].Score)
		}
	}
}

func TestRankFrequencyFloorBoundary(t *testing.T) {
	pos, neg := seedSets()
	c := freq.NewCounter(pos, neg)

	// "alpha" hits the floor exactly, "beta" falls one short.
	c.Add([]string{"alpha", "alpha", "alpha", "alpha", "alpha"})
	c.Add([]string{"beta", "beta", "beta", "beta"})

	s := NewScorer(DefaultConfig(), lexicon.NewSet(nil))
	topPos, topNeg := s.Rank(s.ScoreAll(c))

	if !containsWord(topPos, "alpha") && !containsWord(topNeg, "alpha") {
		t.Error("token with context_count == 5 must appear in ranked output")
	}
	if containsWord(topPos, "beta") || containsWord(topNeg, "beta") {
		t.Error("token with context_count == 4 must not appear in ranked output")
	}
}

func TestRankTinyCorpusYieldsEmptyLists(t *testing.T) {
	pos := lexicon.NewSet([]string{
		"good", "great", "love", "amazing", "fun", "best",
		"better", "awesome", "excellent", "beautiful", "perfect",
		"incredible", "fantastic", "wonderful", "enjoy", "enjoyed",
	})
	neg := lexicon.NewSet([]string{
		"bad", "terrible", "awful", "worst", "boring",
		"hate", "issue", "problem", "disappointing", "broken",
		"bug", "bugs", "glitch", "crash", "frustrating", "repetitive",
	})

	c := freq.NewCounter(pos, neg)
	c.Add([]string{"good", "game", "good"})
	c.Add([]string{"bad", "game", "bad"})

	if c.TotalTokens() != 6 {
		t.Fatalf("TotalTokens = %d, want 6", c.TotalTokens())
	}

	s := NewScorer(DefaultConfig(), lexicon.NewSet(nil))
	records := s.ScoreAll(c)
	if len(records) != 3 {
		t.Fatalf("expected 3 scored tokens, got %d", len(records))
	}

	// Nothing reaches the >=5 floor; the result is empty, not an error.
	topPos, topNeg := s.Rank(records)
	if len(topPos) != 0 {
		t.Errorf("positive list should be empty, got %v", topPos)
	}
	if len(topNeg) != 0 {
		t.Errorf("negative list should be empty, got %v", topNeg)
	}
}

func TestScoresAlwaysFinite(t *testing.T) {
	pos, neg := seedSets()
	c := freq.NewCounter(pos, neg)

	// "good" never appears in negative contexts; smoothing must keep its
	// negative PMI finite.
	c.Add([]string{"good", "good", "good", "good", "good", "combat", "stealth"})

	s := NewScorer(DefaultConfig(), lexicon.NewSet(nil))
	for _, r := range s.ScoreAll(c) {
		if math.IsNaN(r.Score) || math.IsInf(r.Score, 0) {
			t.Errorf("score for %q is not finite: %v", r.Word, r.Score)
		}
	}
}

func TestRankExcludesAmbiguousWords(t *testing.T) {
	pos, neg := seedSets()
	c := freq.NewCounter(pos, neg)
	c.Add([]string{"good", "good", "good", "good", "good"})
	c.Add([]string{"combat", "combat", "combat", "combat", "combat"})

	s := NewScorer(DefaultConfig(), lexicon.NewSet([]string{"combat"}))
	topPos, topNeg := s.Rank(s.ScoreAll(c))

	if containsWord(topPos, "combat") || containsWord(topNeg, "combat") {
		t.Error("ambiguous word must not appear in ranked output")
	}
	if !containsWord(topPos, "good") {
		t.Error("seed word 'good' should rank in the positive list")
	}
}

func TestWordFreqOrderingAndLimit(t *testing.T) {
	pos, neg := seedSets()
	c := freq.NewCounter(pos, neg)
	c.Add([]string{"zeta", "zeta", "zeta", "eta", "eta", "theta", "iota", "iota"})

	cfg := DefaultConfig()
	cfg.FreqTableSize = 3
	s := NewScorer(cfg, lexicon.NewSet(nil))

	wf := s.WordFreq(c)
	if len(wf) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(wf))
	}
	if wf[0].Word != "zeta" || wf[0].Count != 3 {
		t.Errorf("first row = %+v, want zeta/3", wf[0])
	}
	// "eta" and "iota" both count 2; lexicographic tie-break.
	if wf[1].Word != "eta" || wf[2].Word != "iota" {
		t.Errorf("tie-break order wrong: %+v, %+v", wf[1], wf[2])
	}
}

func TestRankTopKLimit(t *testing.T) {
	pos, neg := seedSets()
	c := freq.NewCounter(pos, neg)
	words := []string{"one", "two", "three", "four", "five", "six"}
	for _, w := range words {
		for i := 0; i < 5; i++ {
			c.Add([]string{w})
		}
	}

	cfg := DefaultConfig()
	cfg.TopK = 4
	s := NewScorer(cfg, lexicon.NewSet(nil))
	topPos, topNeg := s.Rank(s.ScoreAll(c))

	if len(topPos) != 4 {
		t.Errorf("positive list has %d entries, want 4", len(topPos))
	}
	if len(topNeg) != 4 {
		t.Errorf("negative list has %d entries, want 4", len(topNeg))
	}
}

func containsWord(records []Record, word string) bool {
	for _, r := range records {
		if r.Word == word {
			return true
		}
	}
	return false
}
