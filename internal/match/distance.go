package match

// Score rates candidate as a replacement for name. Both names are normalized
// and the better of the plain and the accessor-stripped similarity wins, so
// "getSecret" scores 1 against "secret".
func Score(name, candidate string) float64 {
	plain := similarity(NormalizeIdent(name), NormalizeIdent(candidate))
	stripped := similarity(NormalizeIdentWithPrefixStrip(name), NormalizeIdentWithPrefixStrip(candidate))

	return max(plain, stripped)
}

// similarity is 1 - distance/longest, in runes.
func similarity(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)

	longest := max(len(ra), len(rb))
	if longest == 0 {
		return 1
	}

	return 1 - float64(distance(ra, rb))/float64(longest)
}

// distance counts the single-rune insertions, deletions and substitutions
// turning a into b. It keeps one row of the edit matrix.
func distance(a, b []rune) int {
	if len(a) > len(b) {
		a, b = b, a
	}

	row := make([]int, len(a)+1)
	for i := range row {
		row[i] = i
	}

	for j, rb := range b {
		diag := row[0]
		row[0] = j + 1

		for i, ra := range a {
			sub := diag
			if ra != rb {
				sub++
			}

			diag = row[i+1]
			row[i+1] = min(row[i+1]+1, row[i]+1, sub)
		}
	}

	return row[len(a)]
}
