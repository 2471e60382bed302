// Package relate scores pairs of true-crime episodes for likely same-case
// coverage and ranks candidate pools. Scores are a pure function of the
// episode text; a shared person name is a mandatory gate, locations and
// years only ever add on top of it.
package relate

import (
	"regexp"
	"strings"

	"github.com/crimewebhq/crimeweb-go/internal/apptype"
	"github.com/crimewebhq/crimeweb-go/internal/extract"
)

// Score contributions. A single name match starts at 0.65 and each further
// match adds a step, capped at three counted matches.
const (
	nameMatchBase  = 0.5
	nameMatchStep  = 0.15
	nameMatchCap   = 3
	locationBonus  = 0.2
	locationAlone  = 0.1
	yearBonus      = 0.1
	reasonTakeMost = 2
)

var bareYearPattern = regexp.MustCompile(`\d{4}`)

// ScoreEpisodes computes (score, reason) for a source/candidate pair,
// extracting terms fresh for both sides. Self-pairs score zero.
func ScoreEpisodes(source, candidate apptype.Episode) (float64, string) {
	if source.ID == candidate.ID {
		return 0, ""
	}
	return scoreTerms(extract.EpisodeTerms(source), extract.EpisodeTerms(candidate))
}

// scoreTerms implements the pairwise contract over already-extracted term
// sets. All set walks are in lexical order so the reason string is
// reproducible for the same inputs.
func scoreTerms(src, cand apptype.ExtractedTerms) (float64, string) {
	var (
		score     float64
		fragments []string
	)

	// Name matching: exact full-name equality, or equal surnames when both
	// names carry at least two tokens.
	var matched []string
	candNames := extract.SortedSet(cand.Names)
	for _, sn := range extract.SortedSet(src.Names) {
		for _, cn := range candNames {
			switch {
			case sn == cn:
				matched = append(matched, titleCase(sn))
			case surnamesEqual(sn, cn):
				matched = append(matched, titleCase(sn)+" (last name)")
			}
		}
	}
	if len(matched) > 0 {
		n := len(matched)
		if n > nameMatchCap {
			n = nameMatchCap
		}
		score += nameMatchBase + nameMatchStep*float64(n)
		fragments = append(fragments, strings.Join(firstUnique(matched, reasonTakeMost), ", "))
	}

	// Location matching: only meaningful alongside a name signal; alone it
	// nudges the score but contributes no reason text.
	sharedLocations := intersect(src.Locations, cand.Locations)
	if len(sharedLocations) > 0 {
		if len(matched) > 0 {
			score += locationBonus
			fragments = append(fragments, titleCase(sharedLocations[0]))
		} else {
			score += locationAlone
		}
	}

	// Year matching rides on an established name or location signal.
	sharedYears := intersect(src.Years, cand.Years)
	if len(sharedYears) > 0 && (len(matched) > 0 || len(sharedLocations) > 0) {
		score += yearBonus
		if !bareYearPattern.MatchString(strings.Join(fragments, " - ")) {
			fragments = append(fragments, sharedYears[0])
		}
	}

	// Person-name correspondence is mandatory; without it the pair scores
	// zero no matter what else lined up.
	if len(matched) == 0 {
		return 0, ""
	}
	if score > 1 {
		score = 1
	}
	return score, strings.Join(fragments, " - ")
}

// surnamesEqual reports whether two multi-token names share a final token.
func surnamesEqual(a, b string) bool {
	aw := strings.Fields(a)
	bw := strings.Fields(b)
	if len(aw) < 2 || len(bw) < 2 {
		return false
	}
	return aw[len(aw)-1] == bw[len(bw)-1]
}

// intersect returns the sorted members present in both sets.
func intersect(a, b map[string]struct{}) []string {
	var shared []string
	for _, s := range extract.SortedSet(a) {
		if _, ok := b[s]; ok {
			shared = append(shared, s)
		}
	}
	return shared
}

// firstUnique keeps the first n distinct entries, preserving order.
func firstUnique(list []string, n int) []string {
	seen := make(map[string]struct{}, len(list))
	var out []string
	for _, s := range list {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
		if len(out) == n {
			break
		}
	}
	return out
}

// titleCase uppercases the first letter of each space-separated word.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
