// Package extract pulls candidate person names, locations, and years out of
// episode text with fixed regex rules and curated pattern tables. Output is
// deterministic for a given input.
package extract

import (
	"sort"

	"github.com/crimewebhq/crimeweb-go/internal/apptype"
)

// Terms runs every extraction rule over text and returns the union of their
// results. An empty input yields three empty sets; malformed input simply
// finds no matches.
func Terms(text string) apptype.ExtractedTerms {
	terms := apptype.NewExtractedTerms()
	if text == "" {
		return terms
	}

	extractPairNames(text, terms.Names)
	extractPossessiveNames(text, terms.Names)
	extractRoleCueNames(text, terms.Names)

	extractCityState(text, terms.Locations)
	extractCounties(text, terms.Locations)
	extractForts(text, terms.Locations)
	extractStates(text, terms.Locations)

	extractYears(text, terms.Years)

	return terms
}

// EpisodeTerms extracts terms from an episode's title plus overview.
func EpisodeTerms(e apptype.Episode) apptype.ExtractedTerms {
	return Terms(e.Text())
}

// SortedSet returns the members of a term set in lexical order, for stable
// display and structured tool output.
func SortedSet(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
