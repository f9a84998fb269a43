package wordle

import "math"

// Histogram counts how many candidates fall into each pattern when guess is played
func Histogram(guess Word, candidates []Word) [NumCodes]int {
	var buckets [NumCodes]int
	for _, answer := range candidates {
		buckets[MatchCode(answer, guess)]++
	}
	return buckets
}

// Entropy is the expected information in bits from playing guess against the
// candidates, the Shannon entropy of the Histogram. It is 0 when every candidate
// gives the same pattern and at most log2(len(candidates)).
func Entropy(guess Word, candidates []Word) float64 {
	if len(candidates) <= 1 {
		return 0
	}
	buckets := Histogram(guess, candidates)
	n := float64(len(candidates))
	h := 0.0
	for _, c := range buckets {
		if c == 0 {
			continue
		}
		p := float64(c) / n
		h -= p * math.Log2(p)
	}
	return h
}
