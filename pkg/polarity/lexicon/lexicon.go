package lexicon

import (
	"sort"
	"strings"
)

// Set is an immutable membership set of lowercase words.
type Set struct {
	words map[string]struct{}
}

// NewSet creates a set from the given words, lowercasing each entry.
func NewSet(words []string) Set {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		m[w] = struct{}{}
	}
	return Set{words: m}
}

// Contains reports whether the set holds the given word.
func (s Set) Contains(word string) bool {
	_, ok := s.words[word]
	return ok
}

// Len returns the number of words in the set.
func (s Set) Len() int {
	return len(s.words)
}

// Words returns all words in sorted order.
func (s Set) Words() []string {
	out := make([]string, 0, len(s.words))
	for w := range s.words {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}
