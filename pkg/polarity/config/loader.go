package config

import (
	"fmt"

	"github.com/cognicore/polarity/pkg/polarity/lexicon"
	"github.com/cognicore/polarity/pkg/polarity/normalize"
)

// Loader loads configuration files and constructs pipeline components.
// Empty paths fall back to the embedded defaults.
type Loader struct {
	LexiconsPath  string
	StopwordsPath string
}

// Components holds the assembled pipeline inputs.
type Components struct {
	Normalizer *normalize.Normalizer
	Positive   lexicon.Set
	Negative   lexicon.Set
	Ambiguous  lexicon.Set
}

// Load reads the configuration files and returns initialized components.
func (l Loader) Load() (*Components, error) {
	positive := lexicon.DefaultPositive()
	negative := lexicon.DefaultNegative()
	noise := lexicon.DefaultNoise()
	ambiguous := lexicon.DefaultAmbiguous()

	if l.LexiconsPath != "" {
		lex, err := LoadLexicons(l.LexiconsPath)
		if err != nil {
			return nil, fmt.Errorf("load lexicons: %w", err)
		}
		positive = lex.Positive
		negative = lex.Negative
		noise = lex.Noise
		ambiguous = lex.Ambiguous
	}

	stopwords := normalize.DefaultStopwords()
	if l.StopwordsPath != "" {
		sw, err := LoadStopwords(l.StopwordsPath)
		if err != nil {
			return nil, fmt.Errorf("load stopwords: %w", err)
		}
		stopwords = sw.Terms
	}

	return &Components{
		Normalizer: normalize.New(stopwords, noise),
		Positive:   lexicon.NewSet(positive),
		Negative:   lexicon.NewSet(negative),
		Ambiguous:  lexicon.NewSet(ambiguous),
	}, nil
}
