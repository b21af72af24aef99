package match

import (
	"sort"
	"strings"
)

// MinSuggestScore is the lowest normalized similarity a candidate needs to be suggested.
const MinSuggestScore = 0.5

// Suggestion is a candidate name with its similarity to the requested name.
type Suggestion struct {
	Name  string
	Score float64
}

// Rank scores every candidate against name and returns those that are
// similar enough, best first. Ties are broken by name.
func Rank(name string, candidates []string) []Suggestion {
	target := NormalizeIdent(name)

	var ranked []Suggestion

	for _, c := range candidates {
		norm := NormalizeIdent(c)

		score := similarity(target, norm)
		if target != "" && score < MinSuggestScore && strings.Contains(norm, target) {
			// A prefix like "Perm" for PermissionList is still a good hint.
			score = MinSuggestScore
		}

		if score < MinSuggestScore {
			continue
		}

		ranked = append(ranked, Suggestion{Name: c, Score: score})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}

		return ranked[i].Name < ranked[j].Name
	})

	return ranked
}

// Suggest returns at most n candidate names close to name, best first.
func Suggest(name string, candidates []string, n int) []string {
	ranked := Rank(name, candidates)
	if n >= 0 && len(ranked) > n {
		ranked = ranked[:n]
	}

	names := make([]string, 0, len(ranked))
	for _, s := range ranked {
		names = append(names, s.Name)
	}

	return names
}
