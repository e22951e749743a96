package matching

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// normalizeName lowercases, trims, and collapses internal whitespace so
// name comparisons ignore spelling noise.
func normalizeName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}

// similarity returns a [0,1] similarity between two canonical names. It
// takes the better of normalized edit distance and token overlap, so both
// near-spellings ("tomatoes" vs "tomato") and reordered compounds
// ("breast chicken" vs "chicken breast") score high.
func similarity(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return 1
	}

	edit := editSimilarity(a, b)
	token := tokenOverlap(a, b)
	if token > edit {
		return token
	}
	return edit
}

func editSimilarity(a, b string) float64 {
	longest := len([]rune(a))
	if l := len([]rune(b)); l > longest {
		longest = l
	}
	if longest == 0 {
		return 0
	}
	dist := levenshtein.ComputeDistance(a, b)
	return 1.0 - float64(dist)/float64(longest)
}

// tokenOverlap is the Jaccard index over whitespace-separated tokens.
func tokenOverlap(a, b string) float64 {
	tokensA := strings.Fields(a)
	tokensB := strings.Fields(b)
	if len(tokensA) == 0 || len(tokensB) == 0 {
		return 0
	}

	setA := make(map[string]struct{}, len(tokensA))
	for _, t := range tokensA {
		setA[t] = struct{}{}
	}
	union := make(map[string]struct{}, len(tokensA)+len(tokensB))
	for t := range setA {
		union[t] = struct{}{}
	}

	shared := 0
	for _, t := range tokensB {
		if _, seen := union[t]; !seen {
			union[t] = struct{}{}
			continue
		}
		if _, ok := setA[t]; ok {
			delete(setA, t)
			shared++
		}
	}
	return float64(shared) / float64(len(union))
}
