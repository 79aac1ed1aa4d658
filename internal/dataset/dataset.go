// Package dataset loads collector output CSVs into documents for the
// sentiment pipeline.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/cognicore/polarity/pkg/polarity/internalerr"
)

// Document is one input record. Only Comment feeds the pipeline; User and
// Date are carried for provenance.
type Document struct {
	User    string
	Date    string
	Comment string
}

// MinCommentLength is the shortest comment kept, exclusive. Shorter rows are
// considered noise (emotes, "+1" replies) and dropped during loading.
const MinCommentLength = 20

// Load reads documents from a collector CSV. The header must contain a
// "comment" column; "user" and "date" are optional. Rows with missing or
// short comments are skipped, malformed rows are skipped with a warning.
func Load(path string) ([]Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read header of %s: %w", path, err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	commentIdx, ok := cols["comment"]
	if !ok {
		return nil, fmt.Errorf("%w: dataset %s has no \"comment\" column (found: %s)",
			internalerr.ErrMissingField, path, strings.Join(header, ", "))
	}
	userIdx, hasUser := cols["user"]
	dateIdx, hasDate := cols["date"]

	var docs []Document
	line := 1
	for {
		record, err := r.Read()
		line++
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Printf("Warning: skipping malformed row at line %d in %s: %v", line, path, err)
			continue
		}
		if commentIdx >= len(record) {
			continue
		}

		comment := strings.TrimSpace(record[commentIdx])
		if len(comment) <= MinCommentLength {
			continue
		}

		doc := Document{Comment: comment}
		if hasUser && userIdx < len(record) {
			doc.User = record[userIdx]
		}
		if hasDate && dateIdx < len(record) {
			doc.Date = record[dateIdx]
		}
		docs = append(docs, doc)
	}

	return docs, nil
}

// Comments extracts just the comment texts from loaded documents.
func Comments(docs []Document) []string {
	out := make([]string, len(docs))
	for i, d := range docs {
		out[i] = d.Comment
	}
	return out
}
