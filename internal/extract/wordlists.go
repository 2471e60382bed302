package extract

import "strings"

// Curated word lists backing the extraction rules. These are fixed
// configuration data, kept in one place so they can be audited and tested as
// a unit.

// stopWords are words that disqualify a capitalized-pair name candidate.
// Common English function words, crime-show vocabulary, pronouns, and
// temporal words.
var stopWords = map[string]struct{}{}

var stopWordList = []string{
	// function words
	"the", "a", "an", "and", "or", "but", "in", "on", "at", "to", "for",
	"of", "with", "by", "from", "as", "is", "was", "are", "were", "be",
	"been", "this", "that", "these", "those", "there", "then", "than",
	"into", "over", "under", "about", "after", "before", "during",
	"between", "behind", "inside", "outside", "without", "within",
	// pronouns
	"it", "its", "he", "she", "they", "them", "his", "her", "hers",
	"their", "theirs", "our", "ours", "your", "yours", "my", "mine",
	"who", "whom", "whose", "what", "when", "where", "why", "how",
	// temporal words
	"today", "tonight", "yesterday", "tomorrow", "night", "day", "week",
	"month", "year", "years", "morning", "evening", "midnight", "summer",
	"winter", "spring", "autumn", "fall", "monday", "tuesday", "wednesday",
	"thursday", "friday", "saturday", "sunday", "january", "february",
	"march", "april", "may", "june", "july", "august", "september",
	"october", "november", "december",
	// crime-show vocabulary
	"murder", "murders", "murdered", "murderer", "killer", "killers",
	"killed", "killing", "kills", "death", "deaths", "dead", "deadly",
	"victim", "victims", "crime", "crimes", "criminal", "case", "cases",
	"cold", "mystery", "mysteries", "missing", "vanished", "disappearance",
	"evidence", "secrets", "secret", "confession", "betrayal", "deception",
	"justice", "injustice", "guilty", "innocent", "accused", "suspect",
	"suspects", "defendant", "detective", "detectives", "police", "sheriff",
	"investigators", "investigation", "trial", "jury", "court", "judge",
	"prison", "jail", "nurse", "doctor", "officer", "agent", "specialist",
	"body", "bones", "blood", "poison", "fatal", "final",
	"last", "first", "new", "true", "real", "untold", "story", "stories",
	"episode", "season", "part", "special", "exclusive", "inside",
	"man", "woman", "girl", "boy", "mother", "father", "husband", "wife",
	"family", "friend", "stranger", "neighbor", "town", "city", "county",
	"house", "home", "road", "river", "lake", "woods",
}

// stateNames are the 50 full U.S. state names, lowercase.
var stateNames = []string{
	"alabama", "alaska", "arizona", "arkansas", "california", "colorado",
	"connecticut", "delaware", "florida", "georgia", "hawaii", "idaho",
	"illinois", "indiana", "iowa", "kansas", "kentucky", "louisiana",
	"maine", "maryland", "massachusetts", "michigan", "minnesota",
	"mississippi", "missouri", "montana", "nebraska", "nevada",
	"new hampshire", "new jersey", "new mexico", "new york",
	"north carolina", "north dakota", "ohio", "oklahoma", "oregon",
	"pennsylvania", "rhode island", "south carolina", "south dakota",
	"tennessee", "texas", "utah", "vermont", "virginia", "washington",
	"west virginia", "wisconsin", "wyoming",
}

// stateAbbreviations maps USPS two-letter codes to the full state name.
var stateAbbreviations = map[string]string{
	"AL": "alabama", "AK": "alaska", "AZ": "arizona", "AR": "arkansas",
	"CA": "california", "CO": "colorado", "CT": "connecticut",
	"DE": "delaware", "FL": "florida", "GA": "georgia", "HI": "hawaii",
	"ID": "idaho", "IL": "illinois", "IN": "indiana", "IA": "iowa",
	"KS": "kansas", "KY": "kentucky", "LA": "louisiana", "ME": "maine",
	"MD": "maryland", "MA": "massachusetts", "MI": "michigan",
	"MN": "minnesota", "MS": "mississippi", "MO": "missouri",
	"MT": "montana", "NE": "nebraska", "NV": "nevada",
	"NH": "new hampshire", "NJ": "new jersey", "NM": "new mexico",
	"NY": "new york", "NC": "north carolina", "ND": "north dakota",
	"OH": "ohio", "OK": "oklahoma", "OR": "oregon", "PA": "pennsylvania",
	"RI": "rhode island", "SC": "south carolina", "SD": "south dakota",
	"TN": "tennessee", "TX": "texas", "UT": "utah", "VT": "vermont",
	"VA": "virginia", "WA": "washington", "WV": "west virginia",
	"WI": "wisconsin", "WY": "wyoming",
}

// stateFragments holds every word that appears in a state name, so that
// "New York" or "Carolina Smith" never survive as person names.
var stateFragments = map[string]struct{}{}

// knownGeoBigrams are two-word place names that the capitalized-pair rule
// would otherwise read as person names.
var knownGeoBigrams = map[string]struct{}{}

var knownGeoBigramList = []string{
	"new york", "new orleans", "new haven", "los angeles", "las vegas",
	"san francisco", "san diego", "san antonio", "san jose", "santa fe",
	"santa monica", "fort bragg", "fort worth", "fort hood", "fort wayne",
	"fort lauderdale", "rhode island", "long island", "staten island",
	"salt lake", "baton rouge", "little rock", "grand rapids",
	"sioux falls", "palm springs", "colorado springs", "oklahoma city",
	"kansas city", "jersey city", "atlantic city", "lake charles",
	"cape cod", "el paso", "des moines", "saint louis", "saint paul",
}

func init() {
	for _, w := range stopWordList {
		stopWords[w] = struct{}{}
	}
	for _, s := range stateNames {
		for _, frag := range strings.Fields(s) {
			stateFragments[frag] = struct{}{}
		}
	}
	for _, b := range knownGeoBigramList {
		knownGeoBigrams[b] = struct{}{}
	}
}

// isStopWord reports whether the lowercased word is in the stop list.
func isStopWord(word string) bool {
	_, ok := stopWords[strings.ToLower(word)]
	return ok
}

// isStateFragment reports whether the lowercased word occurs in a state name.
func isStateFragment(word string) bool {
	_, ok := stateFragments[strings.ToLower(word)]
	return ok
}

// isKnownGeoBigram reports whether the lowercased two-word phrase is a
// known place name.
func isKnownGeoBigram(phrase string) bool {
	_, ok := knownGeoBigrams[strings.ToLower(phrase)]
	return ok
}

// lookupState resolves token to a full lowercase state name. It accepts a
// full state name in any case or a USPS two-letter abbreviation, and returns
// "" when token is neither.
func lookupState(token string) string {
	if full, ok := stateAbbreviations[token]; ok {
		return full
	}
	lower := strings.ToLower(token)
	for _, s := range stateNames {
		if lower == s {
			return s
		}
	}
	return ""
}
