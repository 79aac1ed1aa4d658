package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/polarity/pkg/polarity/internalerr"
)

// Lexicons holds the four curated word lists driving the pipeline.
type Lexicons struct {
	Positive  []string `yaml:"positive"`
	Negative  []string `yaml:"negative"`
	Noise     []string `yaml:"noise"`
	Ambiguous []string `yaml:"ambiguous"`
}

// LoadLexicons loads lexicon lists from a YAML file. The positive and
// negative seed lists must be non-empty; noise and ambiguous may be.
func LoadLexicons(path string) (*Lexicons, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var lex Lexicons
	if err := yaml.Unmarshal(data, &lex); err != nil {
		return nil, err
	}

	if len(lex.Positive) == 0 {
		return nil, fmt.Errorf("%w: lexicons %s: empty positive seed list", internalerr.ErrInvalidConfig, path)
	}
	if len(lex.Negative) == 0 {
		return nil, fmt.Errorf("%w: lexicons %s: empty negative seed list", internalerr.ErrInvalidConfig, path)
	}

	return &lex, nil
}

// Stopwords represents the stopword list configuration.
type Stopwords struct {
	Terms []string `yaml:"terms"`
}

// LoadStopwords loads stopwords from a YAML file.
func LoadStopwords(path string) (*Stopwords, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var sw Stopwords
	if err := yaml.Unmarshal(data, &sw); err != nil {
		return nil, err
	}

	return &sw, nil
}
