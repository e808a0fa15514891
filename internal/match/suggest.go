package match

import "sort"

// DefaultMinScore is the minimum similarity for a name to be suggested.
const DefaultMinScore = 0.5

// Suggestion is a candidate name scored against a requested name.
type Suggestion struct {
	Name  string
	Score float64 // similarity in [0, 1], higher is better
}

// Suggestions is a list of suggestions with ranking functionality.
type Suggestions []Suggestion

// Rank scores every candidate against name and sorts them by score,
// descending.
func Rank(name string, candidates []string) Suggestions {
	ranked := make(Suggestions, 0, len(candidates))

	for _, c := range candidates {
		ranked = append(ranked, Suggestion{Name: c, Score: Score(name, c)})
	}

	sort.Sort(ranked)

	return ranked
}

// Closest returns up to n candidate names scoring at least DefaultMinScore
// against name, best first. Candidates equal to name are skipped.
func Closest(name string, candidates []string, n int) []string {
	var names []string

	for _, s := range Rank(name, candidates).AboveThreshold(DefaultMinScore) {
		if s.Name == name {
			continue
		}

		if len(names) == n {
			break
		}

		names = append(names, s.Name)
	}

	return names
}

// Len implements sort.Interface.
func (s Suggestions) Len() int { return len(s) }

// Swap implements sort.Interface.
func (s Suggestions) Swap(i, j int) { s[i], s[j] = s[j], s[i] }

// Less implements sort.Interface.
// Sorts by score descending, then by name for determinism.
func (s Suggestions) Less(i, j int) bool {
	if s[i].Score != s[j].Score {
		return s[i].Score > s[j].Score
	}

	return s[i].Name < s[j].Name
}

// Top returns the top n suggestions.
func (s Suggestions) Top(n int) Suggestions {
	if n >= len(s) {
		return s
	}

	return s[:n]
}

// Best returns the best suggestion, or nil if there is none.
func (s Suggestions) Best() *Suggestion {
	if len(s) == 0 {
		return nil
	}

	return &s[0]
}

// AboveThreshold returns suggestions scoring at least threshold.
func (s Suggestions) AboveThreshold(threshold float64) Suggestions {
	var result Suggestions
	for _, sug := range s {
		if sug.Score >= threshold {
			result = append(result, sug)
		}
	}

	return result
}
