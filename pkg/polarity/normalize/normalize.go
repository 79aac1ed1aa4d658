package normalize

import "strings"

// Normalizer turns raw review text into a clean token stream.
//
// The steps, in order: lowercase, replace every character outside [a-zA-Z]
// with a word boundary, split on whitespace, drop stopwords and noise words,
// drop tokens of length <= 2, and drop URL fragments.
type Normalizer struct {
	stopwords map[string]struct{}
	noise     map[string]struct{}
	minLen    int
}

// MinTokenLength is the shortest token the normalizer keeps. Tokens of two
// characters or fewer are discarded.
const MinTokenLength = 3

// New creates a normalizer with the given stopword and noise-word lists.
func New(stopwords, noise []string) *Normalizer {
	n := &Normalizer{
		stopwords: make(map[string]struct{}, len(stopwords)),
		noise:     make(map[string]struct{}, len(noise)),
		minLen:    MinTokenLength,
	}
	for _, w := range stopwords {
		n.stopwords[strings.ToLower(w)] = struct{}{}
	}
	for _, w := range noise {
		n.noise[strings.ToLower(w)] = struct{}{}
	}
	return n
}

// Tokenize splits text into normalized tokens. Empty or missing text yields
// an empty result. Calling Tokenize again on the same text restarts the
// sequence and produces identical output.
func (n *Normalizer) Tokenize(text string) []string {
	var tokens []string
	var current strings.Builder

	flush := func() {
		if current.Len() == 0 {
			return
		}
		word := current.String()
		current.Reset()
		if n.keep(word) {
			tokens = append(tokens, word)
		}
	}

	// Only ASCII letters survive; everything else is a boundary. This folds
	// the lowercase/strip/trim/split steps into one pass over the text.
	for _, r := range text {
		switch {
		case r >= 'a' && r <= 'z':
			current.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			current.WriteRune(r + ('a' - 'A'))
		default:
			flush()
		}
	}
	flush()

	return tokens
}

// keep applies the stopword, noise, length, and URL-fragment filters.
func (n *Normalizer) keep(word string) bool {
	if _, ok := n.stopwords[word]; ok {
		return false
	}
	if _, ok := n.noise[word]; ok {
		return false
	}
	if len(word) < n.minLen {
		return false
	}
	// Tokens are lowercase already, so these checks are case-insensitive.
	// "https" is covered by the "http" substring.
	if strings.Contains(word, "http") || strings.Contains(word, "www") {
		return false
	}
	return true
}

// AddStopword adds a word to the stopword list.
func (n *Normalizer) AddStopword(word string) {
	n.stopwords[strings.ToLower(word)] = struct{}{}
}

// AddNoiseWord adds a word to the noise list.
func (n *Normalizer) AddNoiseWord(word string) {
	n.noise[strings.ToLower(word)] = struct{}{}
}
