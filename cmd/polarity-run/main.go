// Command polarity-run scores a collector CSV with the lexicon-PMI sentiment
// pipeline and writes the ranked result tables.
package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/cognicore/polarity/internal/dataset"
	"github.com/cognicore/polarity/pkg/polarity"
	"github.com/cognicore/polarity/pkg/polarity/config"
	"github.com/cognicore/polarity/pkg/polarity/pmi"
	"github.com/cognicore/polarity/pkg/polarity/store"
	"github.com/cognicore/polarity/pkg/polarity/store/sqlite"
)

func main() {
	var (
		input     = flag.String("input", "", "Path to collector CSV (required)")
		lexicons  = flag.String("lexicons", "", "Lexicons YAML (optional, defaults embedded)")
		stopwords = flag.String("stopwords", "", "Stopwords YAML (optional, defaults embedded)")
		outDir    = flag.String("out", "results/pmi", "Output directory for result CSVs")
		dbPath    = flag.String("db", "", "Optional SQLite database to persist the run")
		source    = flag.String("source", "", "Source label for the run (default: input file name)")
		workers   = flag.Int("workers", 1, "Tokenization workers (1 = sequential)")
		minCount  = flag.Int64("min-count", 5, "Frequency floor for ranked output")
		topK      = flag.Int("top", 10, "Entries per ranked sentiment list")
	)
	flag.Parse()

	if *input == "" {
		log.Fatal("--input required")
	}
	label := *source
	if label == "" {
		label = filepath.Base(*input)
	}

	loader := config.Loader{
		LexiconsPath:  *lexicons,
		StopwordsPath: *stopwords,
	}
	components, err := loader.Load()
	if err != nil {
		log.Fatalf("load configs: %v", err)
	}

	docs, err := dataset.Load(*input)
	if err != nil {
		log.Fatalf("load dataset: %v", err)
	}
	log.Printf("Loaded %d documents from %s", len(docs), *input)

	pipeline := polarity.New(polarity.Options{
		Normalizer: components.Normalizer,
		Positive:   components.Positive,
		Negative:   components.Negative,
		Ambiguous:  components.Ambiguous,
		Scorer: pmi.Config{
			MinContextCount: *minCount,
			TopK:            *topK,
		},
		Workers: *workers,
	})

	report := pipeline.Run(dataset.Comments(docs))
	log.Printf("Scored %d token occurrences (%d positive, %d negative seeds)",
		report.TotalTokens, report.TotalPos, report.TotalNeg)

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		log.Fatalf("create output directory: %v", err)
	}
	if err := writeSentimentCSV(filepath.Join(*outDir, "pmi_positive.csv"), report.TopPositive); err != nil {
		log.Fatalf("write positive table: %v", err)
	}
	if err := writeSentimentCSV(filepath.Join(*outDir, "pmi_negative.csv"), report.TopNegative); err != nil {
		log.Fatalf("write negative table: %v", err)
	}
	if err := writeFreqCSV(filepath.Join(*outDir, "word_freq.csv"), report.WordFreq); err != nil {
		log.Fatalf("write frequency table: %v", err)
	}
	log.Printf("✓ Wrote result tables to %s", *outDir)

	if *dbPath != "" {
		if err := persist(*dbPath, label, report); err != nil {
			log.Fatalf("persist run: %v", err)
		}
	}
}

func writeSentimentCSV(path string, records []pmi.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"word", "context_count", "sentiment_score"}); err != nil {
		return err
	}
	for _, r := range records {
		row := []string{
			r.Word,
			strconv.FormatInt(r.ContextCount, 10),
			strconv.FormatFloat(r.Score, 'g', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func writeFreqCSV(path string, words []pmi.WordCount) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"word", "count"}); err != nil {
		return err
	}
	for _, wc := range words {
		if err := w.Write([]string{wc.Word, strconv.FormatInt(wc.Count, 10)}); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func persist(dbPath, source string, report polarity.Report) error {
	ctx := context.Background()
	st, err := sqlite.Open(ctx, dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	run := store.Run{
		ID:          store.NewRunID(),
		Source:      source,
		CreatedAt:   time.Now(),
		TotalDocs:   int64(report.TotalDocs),
		TotalTokens: report.TotalTokens,
		TotalPos:    report.TotalPos,
		TotalNeg:    report.TotalNeg,
	}
	seen := make(map[string]struct{})
	for _, lists := range [][]pmi.Record{report.TopPositive, report.TopNegative} {
		for _, r := range lists {
			if _, ok := seen[r.Word]; ok {
				continue
			}
			seen[r.Word] = struct{}{}
			run.Sentiment = append(run.Sentiment, store.SentimentRecord{
				Word:         r.Word,
				ContextCount: r.ContextCount,
				PosCount:     r.PosCount,
				NegCount:     r.NegCount,
				Score:        r.Score,
			})
		}
	}
	for _, wc := range report.WordFreq {
		run.WordFreq = append(run.WordFreq, store.WordCount{Word: wc.Word, Count: wc.Count})
	}

	if err := st.SaveRun(ctx, run); err != nil {
		return err
	}
	log.Printf("✓ Persisted run %s to %s", run.ID, dbPath)
	return nil
}
