package relate

import (
	"github.com/crimewebhq/crimeweb-go/internal/apptype"
	"github.com/crimewebhq/crimeweb-go/internal/extract"
)

// Reduced title-pattern matcher used by the case-suggestion flow. It looks
// at person names in titles only and assigns a flat confidence per match
// type; locations and years are never consulted. Kept separate from the
// full scorer because the two call sites historically diverged and are not
// drop-in equivalent.

const (
	suggestExactScore   = 0.75
	suggestSurnameScore = 0.55
)

// SuggestCases returns candidates whose titles share a person name with the
// source title, strongest signal first. maxResults <= 0 falls back to the
// ranker default.
func SuggestCases(source apptype.Episode, pool []apptype.Episode, maxResults int) []apptype.MatchResult {
	if maxResults <= 0 {
		maxResults = apptype.DefaultMaxResults
	}

	srcNames := extract.SortedSet(extract.Terms(source.Title).Names)
	if len(srcNames) == 0 {
		return []apptype.MatchResult{}
	}

	results := make([]apptype.MatchResult, 0, len(pool))
	for _, candidate := range pool {
		if candidate.ID == source.ID {
			continue
		}
		score, reason := suggestScore(srcNames, candidate)
		if score == 0 {
			continue
		}
		results = append(results, toMatchResult(candidate, score, reason))
	}

	sortResults(results)

	if len(results) > maxResults {
		results = results[:maxResults]
	}
	return results
}

// suggestScore takes the strongest title-name signal for one candidate.
func suggestScore(srcNames []string, candidate apptype.Episode) (float64, string) {
	candNames := extract.SortedSet(extract.Terms(candidate.Title).Names)

	var (
		best   float64
		reason string
	)
	for _, sn := range srcNames {
		for _, cn := range candNames {
			switch {
			case sn == cn && best < suggestExactScore:
				best = suggestExactScore
				reason = titleCase(sn)
			case surnamesEqual(sn, cn) && best < suggestSurnameScore:
				best = suggestSurnameScore
				reason = titleCase(sn) + " (last name)"
			}
		}
	}
	return best, reason
}
