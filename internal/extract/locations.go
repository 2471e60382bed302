package extract

import (
	"regexp"
	"sort"
	"strings"
)

// Geographic term detection. Four rules, union of matches. All emitted
// terms are lowercase.

var (
	// "City, State" or "City, ST". The trailing token is validated against
	// the state lists before anything is emitted.
	cityStatePattern = regexp.MustCompile(`\b([A-Z][a-z]+(?: [A-Z][a-z]+)?),\s+([A-Z]{2}\b|[A-Z][a-z]+(?: [A-Z][a-z]+)?)`)

	countyPattern = regexp.MustCompile(`\b([A-Z][a-z]+(?: [A-Z][a-z]+)*) County\b`)

	fortPattern = regexp.MustCompile(`\bFort ([A-Z][a-z]+)\b`)

	statePattern = buildStatePattern()
)

// buildStatePattern compiles a case-insensitive alternation of the 50 full
// state names, longest first so "west virginia" wins over "virginia".
func buildStatePattern() *regexp.Regexp {
	alts := make([]string, len(stateNames))
	copy(alts, stateNames)
	sort.Slice(alts, func(i, j int) bool { return len(alts[i]) > len(alts[j]) })
	return regexp.MustCompile(`(?i)\b(` + strings.Join(alts, `|`) + `)\b`)
}

// extractCityState finds "City, State" pairs. This is the only rule allowed
// to emit a bare city term, so it refuses to emit anything unless the
// trailing token resolves to a real state or USPS abbreviation.
func extractCityState(text string, out map[string]struct{}) {
	for _, m := range cityStatePattern.FindAllStringSubmatch(text, -1) {
		state := lookupState(m[2])
		if state == "" {
			// A greedy two-word tail ("Texas Rangers") may hide a valid
			// one-word state; retry on the first word alone.
			words := strings.Fields(m[2])
			if len(words) == 2 {
				state = lookupState(words[0])
			}
			if state == "" {
				continue
			}
		}
		out[strings.ToLower(m[1])] = struct{}{}
		out[state] = struct{}{}
	}
}

// extractCounties finds "[Phrase] County" locations.
func extractCounties(text string, out map[string]struct{}) {
	for _, m := range countyPattern.FindAllStringSubmatch(text, -1) {
		phrase := strings.ToLower(m[1])
		if isStopWord(phrase) {
			continue
		}
		out[phrase+" county"] = struct{}{}
	}
}

// extractForts finds military-base style "Fort X" bigrams.
func extractForts(text string, out map[string]struct{}) {
	for _, m := range fortPattern.FindAllStringSubmatch(text, -1) {
		out["fort "+strings.ToLower(m[1])] = struct{}{}
	}
}

// extractStates finds standalone full state names anywhere in the text.
// Independent of the city rule; sets dedupe exact strings only.
func extractStates(text string, out map[string]struct{}) {
	for _, m := range statePattern.FindAllString(text, -1) {
		out[strings.ToLower(m)] = struct{}{}
	}
}
