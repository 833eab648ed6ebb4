package common

import "strings"

// EditDistance returns the number of single-byte insertions, deletions or
// substitutions that turn a into b.
func EditDistance(a, b string) int {
	if a == b {
		return 0
	}

	if len(a) > len(b) {
		a, b = b, a
	}

	if a == "" {
		return len(b)
	}

	// Two rows over the shorter string.
	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)

	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(b); j++ {
		curr[0] = j

		for i := 1; i <= len(a); i++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}

			curr[i] = min(prev[i]+1, curr[i-1]+1, prev[i-1]+cost)
		}

		prev, curr = curr, prev
	}

	return prev[len(a)]
}

// Closest returns the candidate nearest to input, compared case-insensitively,
// when it is at most maxDistance edits away. Ties go to the earlier candidate.
func Closest(input string, candidates []string, maxDistance int) (string, bool) {
	input = strings.ToLower(input)

	best, bestDistance := "", maxDistance+1
	for _, c := range candidates {
		if d := EditDistance(input, strings.ToLower(c)); d < bestDistance {
			best, bestDistance = c, d
		}
	}

	return best, best != ""
}
