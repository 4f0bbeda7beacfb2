package game

import "math/rand"

// sharedLetterRatio measures how lexically close two words are: the number
// of distinct letters they share divided by the larger distinct-letter count.
func sharedLetterRatio(a, b string) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	setA := make(map[rune]bool)
	for _, r := range a {
		setA[r] = true
	}
	setB := make(map[rune]bool)
	for _, r := range b {
		setB[r] = true
	}
	shared := 0
	for r := range setA {
		if setB[r] {
			shared++
		}
	}
	denom := len(setA)
	if len(setB) > denom {
		denom = len(setB)
	}
	return float64(shared) / float64(denom)
}

// SimilarWord picks a decoy for the secret word: a random pool word whose
// shared-letter ratio with the secret is at least the threshold, falling
// back to any other random pool word when nothing is close enough.
func SimilarWord(secret string, pool []string, threshold float64) string {
	candidates := make([]string, 0, len(pool))
	fallback := make([]string, 0, len(pool))
	for _, w := range pool {
		if w == secret {
			continue
		}
		fallback = append(fallback, w)
		if sharedLetterRatio(secret, w) >= threshold {
			candidates = append(candidates, w)
		}
	}
	if len(candidates) > 0 {
		return candidates[rand.Intn(len(candidates))]
	}
	if len(fallback) > 0 {
		return fallback[rand.Intn(len(fallback))]
	}
	return secret
}
