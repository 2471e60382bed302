package extract

import (
	"regexp"
	"strings"
)

// Person-name detection. Three rules feed the same set: capitalized word
// pairs, possessive forms, and role-cue phrases. Stored lowercase as
// "first last".

var (
	namePairPattern = regexp.MustCompile(`\b([A-Z][a-z]+)\s+([A-Z][a-z]+)\b`)

	// One or two capitalized words directly before a possessive marker.
	possessivePattern = regexp.MustCompile(`\b([A-Z][a-z]+(?:\s+[A-Z][a-z]+)?)'s\b`)

	// Role noun followed by a two-word capitalized name. The cue word is
	// case-insensitive; the name is not.
	roleCuePattern = regexp.MustCompile(`\b(?i:victim|accused|suspect|defendant|nurse|doctor|dr\.?|specialist)\s+([A-Z][a-z]+)\s+([A-Z][a-z]+)\b`)
)

// acceptNamePair applies the shared candidate filters: identical words,
// stop words, state fragments, and known place-name bigrams.
func acceptNamePair(first, second string) bool {
	if strings.EqualFold(first, second) {
		// Title+overview concatenation artifacts ("... Smith Smith ...").
		return false
	}
	if isStopWord(first) || isStopWord(second) {
		return false
	}
	if isStateFragment(first) || isStateFragment(second) {
		return false
	}
	if isKnownGeoBigram(first + " " + second) {
		return false
	}
	return true
}

// extractPairNames finds capitalized word pairs, left to right,
// non-overlapping.
func extractPairNames(text string, out map[string]struct{}) {
	for _, m := range namePairPattern.FindAllStringSubmatch(text, -1) {
		if !acceptNamePair(m[1], m[2]) {
			continue
		}
		out[strings.ToLower(m[1]+" "+m[2])] = struct{}{}
	}
}

// extractPossessiveNames finds names in possessive position ("John Smith's").
// Only two-word forms not already captured contribute.
func extractPossessiveNames(text string, out map[string]struct{}) {
	for _, m := range possessivePattern.FindAllStringSubmatch(text, -1) {
		words := strings.Fields(m[1])
		if len(words) != 2 {
			continue
		}
		if !acceptNamePair(words[0], words[1]) {
			continue
		}
		name := strings.ToLower(words[0] + " " + words[1])
		if _, seen := out[name]; seen {
			continue
		}
		out[name] = struct{}{}
	}
}

// extractRoleCueNames finds names introduced by a role noun
// ("suspect John Smith"). The pair rule misses these when the cue itself is
// capitalized and swallows the first name word.
func extractRoleCueNames(text string, out map[string]struct{}) {
	for _, m := range roleCuePattern.FindAllStringSubmatch(text, -1) {
		if !acceptNamePair(m[1], m[2]) {
			continue
		}
		out[strings.ToLower(m[1]+" "+m[2])] = struct{}{}
	}
}
