package normalize

import (
	"reflect"
	"testing"
)

func TestTokenizeBasic(t *testing.T) {
	n := New(DefaultStopwords(), []string{"game"})

	tokens := n.Tokenize("I LOVED the game!!! Combat feels great.")

	want := []string{"loved", "combat", "feels", "great"}
	if !reflect.DeepEqual(tokens, want) {
		t.Errorf("Tokenize = %v, want %v", tokens, want)
	}
}

func TestTokenizeStripsNonAlphabetic(t *testing.T) {
	n := New(nil, nil)

	tokens := n.Tokenize("score: 100% (really)! half-baked")

	// Digits and punctuation are boundaries; "half-baked" splits in two.
	want := []string{"score", "really", "half", "baked"}
	if !reflect.DeepEqual(tokens, want) {
		t.Errorf("Tokenize = %v, want %v", tokens, want)
	}
}

func TestTokenizeDropsShortTokens(t *testing.T) {
	n := New(nil, nil)

	tokens := n.Tokenize("ab abc a xy xyz")

	want := []string{"abc", "xyz"}
	if !reflect.DeepEqual(tokens, want) {
		t.Errorf("Tokenize = %v, want %v", tokens, want)
	}
}

func TestTokenizeDropsURLFragments(t *testing.T) {
	n := New(nil, nil)

	tokens := n.Tokenize("see HTTPS://example.com or wwwmirror for details")

	for _, tok := range tokens {
		if tok == "https" || tok == "wwwmirror" {
			t.Errorf("URL fragment %q survived filtering", tok)
		}
	}

	want := []string{"see", "example", "com", "for", "details"}
	if !reflect.DeepEqual(tokens, want) {
		t.Errorf("Tokenize = %v, want %v", tokens, want)
	}
}

func TestTokenizeEmptyText(t *testing.T) {
	n := New(DefaultStopwords(), nil)

	if got := n.Tokenize(""); len(got) != 0 {
		t.Errorf("empty text should yield no tokens, got %v", got)
	}
	if got := n.Tokenize("   \t\n  "); len(got) != 0 {
		t.Errorf("whitespace-only text should yield no tokens, got %v", got)
	}
}

func TestTokenizeRestartable(t *testing.T) {
	n := New(DefaultStopwords(), []string{"game"})
	text := "An amazing game, truly amazing!"

	first := n.Tokenize(text)
	second := n.Tokenize(text)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated tokenization differs: %v vs %v", first, second)
	}
}

func TestAddStopword(t *testing.T) {
	n := New(nil, nil)

	before := n.Tokenize("combat combat stealth")
	if len(before) != 3 {
		t.Fatalf("expected 3 tokens before, got %v", before)
	}

	n.AddStopword("Combat")
	after := n.Tokenize("combat combat stealth")
	want := []string{"stealth"}
	if !reflect.DeepEqual(after, want) {
		t.Errorf("Tokenize after AddStopword = %v, want %v", after, want)
	}
}
