package match

// EditDistance returns the number of single-rune insertions, deletions
// and substitutions that turn a into b. Keywords in translation tables
// are ASCII in practice, but comparing runes keeps a stray UTF-8 quote
// or accent from counting twice.
func EditDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}

	// row[i] holds the distance between ra[:i] and the prefix of rb seen so far.
	row := make([]int, len(ra)+1)
	for i := range row {
		row[i] = i
	}

	for j, cb := range rb {
		diag := row[0]
		row[0] = j + 1

		for i, ca := range ra {
			sub := diag
			if ca != cb {
				sub++
			}

			diag = row[i+1]
			row[i+1] = min(row[i+1]+1, row[i]+1, sub)
		}
	}

	return row[len(ra)]
}

// Similarity scores a against b in [0, 1], 1 meaning equal.
func Similarity(a, b string) float64 {
	n := max(len([]rune(a)), len([]rune(b)))
	if n == 0 {
		return 1
	}

	return 1 - float64(EditDistance(a, b))/float64(n)
}

// KeywordScore is the Similarity of two table keywords after
// NormalizeKeyword, so "input_key" and "InputKey" score 1.
func KeywordScore(a, b string) float64 {
	return Similarity(NormalizeKeyword(a), NormalizeKeyword(b))
}
