package polarity

import (
	"reflect"
	"testing"

	"github.com/cognicore/polarity/pkg/polarity/lexicon"
	"github.com/cognicore/polarity/pkg/polarity/normalize"
)

func testCorpus() []string {
	docs := make([]string, 0, 12)
	for i := 0; i < 6; i++ {
		docs = append(docs, "The masterpiece combat is good and fun throughout")
		docs = append(docs, "A broken mess, the missions are bad and boring")
	}
	return docs
}

func testPipeline(workers int) *Pipeline {
	return New(Options{
		Normalizer: normalize.New(normalize.DefaultStopwords(), nil),
		Positive:   lexicon.NewSet([]string{"good", "fun"}),
		Negative:   lexicon.NewSet([]string{"bad", "boring"}),
		Ambiguous:  lexicon.NewSet(nil),
		Workers:    workers,
	})
}

func TestRunRanksSeedWords(t *testing.T) {
	report := testPipeline(1).Run(testCorpus())

	if report.TotalDocs != 12 {
		t.Errorf("TotalDocs = %d, want 12", report.TotalDocs)
	}
	if report.TotalTokens == 0 {
		t.Fatal("no tokens counted")
	}

	if len(report.TopPositive) == 0 || report.TopPositive[0].Score <= 0 {
		t.Fatalf("expected a positive-scored leader, got %+v", report.TopPositive)
	}
	if w := report.TopPositive[0].Word; w != "good" && w != "fun" {
		t.Errorf("positive leader = %q, want a positive seed word", w)
	}

	if len(report.TopNegative) == 0 || report.TopNegative[0].Score >= 0 {
		t.Fatalf("expected a negative-scored leader, got %+v", report.TopNegative)
	}
	if w := report.TopNegative[0].Word; w != "bad" && w != "boring" {
		t.Errorf("negative leader = %q, want a negative seed word", w)
	}
}

func TestRunIdempotent(t *testing.T) {
	p := testPipeline(1)
	docs := testCorpus()

	first := p.Run(docs)
	second := p.Run(docs)

	if !reflect.DeepEqual(first, second) {
		t.Error("two runs over identical input produced different reports")
	}
}

func TestRunParallelMatchesSequential(t *testing.T) {
	docs := testCorpus()

	sequential := testPipeline(1).Run(docs)
	parallel := testPipeline(4).Run(docs)

	if !reflect.DeepEqual(sequential, parallel) {
		t.Error("parallel run differs from sequential run")
	}
}

func TestRunMoreWorkersThanDocs(t *testing.T) {
	docs := []string{"good good good good good masterpiece"}

	report := testPipeline(8).Run(docs)
	if report.TotalTokens == 0 {
		t.Error("single-document parallel run counted nothing")
	}
}

func TestRunEmptyCorpus(t *testing.T) {
	report := testPipeline(1).Run(nil)

	if report.TotalDocs != 0 || report.TotalTokens != 0 {
		t.Errorf("empty corpus should have zero totals, got %+v", report)
	}
	if len(report.TopPositive) != 0 || len(report.TopNegative) != 0 || len(report.WordFreq) != 0 {
		t.Error("empty corpus should produce empty result tables, not an error")
	}
}

func TestRunDominanceInvariant(t *testing.T) {
	report := testPipeline(1).Run(testCorpus())

	for _, r := range append(report.TopPositive, report.TopNegative...) {
		if r.ContextCount < r.PosCount || r.ContextCount < r.NegCount {
			t.Errorf("dominance invariant broken for %q: %+v", r.Word, r)
		}
	}
}

func TestNewDefaultsNormalizer(t *testing.T) {
	p := New(Options{
		Positive: lexicon.NewSet([]string{"good"}),
		Negative: lexicon.NewSet([]string{"bad"}),
	})

	// Stopwords and noise words are filtered by the default normalizer.
	report := p.Run([]string{"the game is good good good good good"})
	for _, wc := range report.WordFreq {
		if wc.Word == "the" || wc.Word == "game" {
			t.Errorf("default normalizer kept filtered word %q", wc.Word)
		}
	}
}
