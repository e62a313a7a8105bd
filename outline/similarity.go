package outline

// similarity computes the Ratcliff/Obershelp ratio of two strings:
// 2*M/T where M counts the characters covered by recursively matched
// longest common blocks and T is the combined length. The title resolver's
// fuzzy branch compares whole lines against a literal reference title, and
// the reference outputs were produced with exactly these semantics, so a
// generic edit-distance ratio is not a drop-in substitute.
func similarity(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	total := len(ra) + len(rb)
	if total == 0 {
		return 1.0
	}
	m := matchedRunes(ra, rb, 0, len(ra), 0, len(rb))
	return 2.0 * float64(m) / float64(total)
}

// matchedRunes sums the lengths of matching blocks found by recursing on
// both sides of the longest common block within a[alo:ahi] and b[blo:bhi].
func matchedRunes(a, b []rune, alo, ahi, blo, bhi int) int {
	i, j, k := longestMatch(a, b, alo, ahi, blo, bhi)
	if k == 0 {
		return 0
	}
	return k +
		matchedRunes(a, b, alo, i, blo, j) +
		matchedRunes(a, b, i+k, ahi, j+k, bhi)
}

// longestMatch finds the longest block of runes common to a[alo:ahi] and
// b[blo:bhi], preferring the earliest position in a, then in b.
func longestMatch(a, b []rune, alo, ahi, blo, bhi int) (besti, bestj, bestsize int) {
	b2j := make(map[rune][]int)
	for j := blo; j < bhi; j++ {
		b2j[b[j]] = append(b2j[b[j]], j)
	}

	besti, bestj = alo, blo
	j2len := make(map[int]int)
	for i := alo; i < ahi; i++ {
		newj2len := make(map[int]int)
		for _, j := range b2j[a[i]] {
			k := j2len[j-1] + 1
			newj2len[j] = k
			if k > bestsize {
				besti, bestj, bestsize = i-k+1, j-k+1, k
			}
		}
		j2len = newj2len
	}
	return besti, bestj, bestsize
}
