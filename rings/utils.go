// Helpers for canonical ring signatures: index search, reversal, lexicographic
// comparison and Booth's minimal-rotation algorithm.
package rings

import (
	"cmp"
	"strconv"
	"strings"

	"github.com/katalvlaran/neta/species"
)

// indexOf returns the first index of a in path, or -1.
func indexOf(path []*species.Atom, a *species.Atom) int {
	for i, x := range path {
		if x == a {
			return i
		}
	}
	return -1
}

// reverse returns a reversed copy of s.
func reverse[T any](s []T) []T {
	out := make([]T, len(s))
	for i := range s {
		out[i] = s[len(s)-1-i]
	}
	return out
}

// compareSlices lexicographically compares two equal-length slices.
func compareSlices[T cmp.Ordered](a, b []T) int {
	for i := range a {
		if c := cmp.Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return 0
}

// minimalRotation implements Booth's algorithm, returning the lexicographically
// minimal rotation of s in O(n).
func minimalRotation[T cmp.Ordered](s []T) []T {
	n := len(s)
	if n == 0 {
		return nil
	}
	doubled := make([]T, 0, 2*n)
	doubled = append(append(doubled, s...), s...)

	f := make([]int, 2*n) // failure links
	for i := range f {
		f[i] = -1
	}
	k := 0 // start of the best rotation so far
	for j := 1; j < 2*n; j++ {
		i := f[j-k-1]
		for i != -1 && doubled[j] != doubled[k+i+1] {
			if doubled[j] < doubled[k+i+1] {
				k = j - i - 1
			}
			i = f[i]
		}
		if doubled[j] != doubled[k+i+1] { // i == -1
			if doubled[j] < doubled[k] {
				k = j
			}
			f[j-k] = -1
		} else {
			f[j-k] = i + 1
		}
	}

	out := make([]T, n)
	copy(out, doubled[k:k+n])
	return out
}

// canonical picks the smaller of the minimal forward rotation and the minimal
// rotation of the reversed sequence.
func canonical(seq []int) []int {
	fwd := minimalRotation(seq)
	bwd := minimalRotation(reverse(seq))
	if compareSlices(bwd, fwd) < 0 {
		return bwd
	}
	return fwd
}

// joinSig renders an index sequence as a comma-separated signature.
func joinSig(seq []int) string {
	parts := make([]string, len(seq))
	for i, v := range seq {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}
