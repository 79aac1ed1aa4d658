package lexicon

// Curated default word lists for game-review corpora. The seed lexicons define
// the positive/negative sentiment classes; the noise and ambiguous lists remove
// tokens that are frequent in the dataset but carry no sentiment signal.

// DefaultPositive returns the positive seed lexicon.
func DefaultPositive() []string {
	return []string{
		"good", "great", "love", "amazing", "fun", "best",
		"better", "awesome", "excellent", "beautiful", "perfect",
		"incredible", "fantastic", "wonderful", "enjoy", "enjoyed",
	}
}

// DefaultNegative returns the negative seed lexicon.
func DefaultNegative() []string {
	return []string{
		"bad", "terrible", "awful", "worst", "boring",
		"hate", "issue", "problem", "disappointing", "broken",
		"bug", "bugs", "glitch", "crash", "frustrating", "repetitive",
	}
}

// DefaultNoise returns filler words removed during normalization.
// These are contraction remnants and high-frequency verbs that survive
// standard stopword removal.
func DefaultNoise() []string {
	return []string{
		"im", "ive", "dont", "didnt", "thats", "theres", "cant", "doesnt",
		"also", "really", "much", "many", "one", "even", "still", "lot",
		"way", "got", "get", "going", "go", "say", "see", "know", "think",
		"would", "could", "just", "like", "game", "games", "play",
		"played", "playing", "its", "youre", "theyre", "weve",
	}
}

// DefaultAmbiguous returns words excluded from the ranked sentiment output.
// They pass the frequency floor but are topical rather than sentiment-bearing
// (proper nouns, mechanics vocabulary, neutral high-frequency terms).
func DefaultAmbiguous() []string {
	return []string{
		"never", "since", "think", "going", "way", "say", "something", "put",
		"actually", "still", "see", "odyssey", "shadows", "assassin", "creed",
		"understand", "buy", "japanese", "thing", "video", "channel",
		"missions", "much", "want", "know", "people", "ubisoft", "naoe", "yasuke",
		"time", "first", "new", "world", "feel", "combat", "stealth", "series",
		"make", "well", "main", "hours", "feels", "back", "japan", "story",
		"character", "characters", "graphics", "gameplay",
	}
}
