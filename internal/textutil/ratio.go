package textutil

// Ratio returns the Ratcliff/Obershelp similarity of two strings in [0, 1].
// The score is 2*M/T where M counts characters in recursively located
// longest common substrings and T is the combined length. Two empty strings
// are identical by convention and score 1.
func Ratio(a, b string) float64 {
	left := []rune(a)
	right := []rune(b)
	total := len(left) + len(right)
	if total == 0 {
		return 1
	}
	return 2 * float64(matchTotal(left, right)) / float64(total)
}

// Similarity scores two strings after normalization. Equal inputs always
// score 1 regardless of accents, qualifiers, or casing.
func Similarity(a, b string) float64 {
	return Ratio(Normalize(a), Normalize(b))
}

func matchTotal(a, b []rune) int {
	ai, bi, size := longestMatch(a, b)
	if size == 0 {
		return 0
	}
	total := size
	total += matchTotal(a[:ai], b[:bi])
	total += matchTotal(a[ai+size:], b[bi+size:])
	return total
}

// longestMatch locates the longest common substring of a and b, returning its
// start offsets and length. Standard dynamic-programming row sweep; the
// strings involved are short (titles, artist names), so the quadratic cost is
// irrelevant.
func longestMatch(a, b []rune) (int, int, int) {
	if len(a) == 0 || len(b) == 0 {
		return 0, 0, 0
	}
	var bestA, bestB, bestSize int
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for i := range a {
		for j := range b {
			if a[i] != b[j] {
				curr[j+1] = 0
				continue
			}
			curr[j+1] = prev[j] + 1
			if curr[j+1] > bestSize {
				bestSize = curr[j+1]
				bestA = i - bestSize + 1
				bestB = j - bestSize + 1
			}
		}
		prev, curr = curr, prev
		clear(curr)
	}
	return bestA, bestB, bestSize
}
