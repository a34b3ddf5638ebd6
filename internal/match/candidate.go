package match

import "sort"

// DefaultSuggestThreshold is the minimum score for a tag to be offered as a
// replacement for a misspelled one.
const DefaultSuggestThreshold = 0.7

// Candidate is a known tag scored against an unknown one.
type Candidate struct {
	Name  string
	Score float64
}

// CandidateList is a list of candidates sorted by descending score.
type CandidateList []Candidate

// Rank scores every known tag against tag and returns them best first.
// Ties are broken by name so the order is deterministic.
func Rank(tag string, known []string) CandidateList {
	list := make(CandidateList, 0, len(known))
	for _, name := range known {
		list = append(list, Candidate{Name: name, Score: TagScore(tag, name)})
	}

	sort.Sort(list)

	return list
}

// Len implements sort.Interface.
func (c CandidateList) Len() int { return len(c) }

// Swap implements sort.Interface.
func (c CandidateList) Swap(i, j int) { c[i], c[j] = c[j], c[i] }

// Less implements sort.Interface.
// Sorts by descending score, then by name.
func (c CandidateList) Less(i, j int) bool {
	if c[i].Score != c[j].Score {
		return c[i].Score > c[j].Score
	}

	return c[i].Name < c[j].Name
}

// AboveThreshold returns the candidates scoring at least threshold.
func (c CandidateList) AboveThreshold(threshold float64) CandidateList {
	var result CandidateList

	for _, cand := range c {
		if cand.Score >= threshold {
			result = append(result, cand)
		}
	}

	return result
}

// Names returns the candidate names in order.
func (c CandidateList) Names() []string {
	names := make([]string, len(c))
	for i, cand := range c {
		names[i] = cand.Name
	}

	return names
}

// Suggest returns the known tags close enough to tag to be offered as a fix,
// best first. An exact match after normalization is still returned, since a
// tag like "!Include" is not itself recognized.
func Suggest(tag string, known []string) []string {
	return Rank(tag, known).AboveThreshold(DefaultSuggestThreshold).Names()
}
