package match

// Distance returns the Levenshtein edit distance between a and b counted in
// runes: the fewest single-rune insertions, deletions and substitutions that
// turn one string into the other.
func Distance(a, b string) int {
	ra, rb := []rune(a), []rune(b)

	// Keep the row as short as the shorter string
	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}

	if len(ra) == 0 {
		return len(rb)
	}

	row := make([]int, len(ra)+1)
	for i := range row {
		row[i] = i
	}

	for j := 1; j <= len(rb); j++ {
		diag := row[0]
		row[0] = j

		for i := 1; i <= len(ra); i++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}

			above := row[i]
			row[i] = min(
				above+1,    // deletion
				row[i-1]+1, // insertion
				diag+cost,  // substitution
			)
			diag = above
		}
	}

	return row[len(ra)]
}

// similarity scores two normalized identifiers between 0 (nothing shared)
// and 1 (identical) as 1 - distance/longest length.
func similarity(a, b string) float64 {
	longest := max(len([]rune(a)), len([]rune(b)))
	if longest == 0 {
		return 1
	}

	return 1 - float64(Distance(a, b))/float64(longest)
}
