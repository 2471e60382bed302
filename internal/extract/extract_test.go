package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crimewebhq/crimeweb-go/internal/apptype"
)

func names(text string) []string     { return SortedSet(Terms(text).Names) }
func locations(text string) []string { return SortedSet(Terms(text).Locations) }
func years(text string) []string     { return SortedSet(Terms(text).Years) }

func TestTermsEmptyInput(t *testing.T) {
	terms := Terms("")
	assert.Empty(t, terms.Names)
	assert.Empty(t, terms.Locations)
	assert.Empty(t, terms.Years)
}

func TestPairNames(t *testing.T) {
	assert.Equal(t, []string{"john smith"}, names("The murder of John Smith shocked the town."))

	// Stop words on either side disqualify the pair.
	assert.Empty(t, names("The Smith Murder Case"))
	assert.Empty(t, names("Cold Case Files"))

	// State fragments never survive as person names.
	assert.Empty(t, names("She moved to New York for work"))
	assert.NotContains(t, names("Carolina Smith was never found"), "carolina smith")

	// Known place-name bigrams are not people.
	assert.Empty(t, names("A body surfaced near Los Angeles last week"))

	// Repeated-word artifacts are dropped.
	assert.Empty(t, names("Smith Smith"))
}

func TestPossessiveNames(t *testing.T) {
	assert.Equal(t, []string{"laci peterson"}, names("Laci Peterson's disappearance gripped the nation"))

	// One-word possessives contribute nothing.
	assert.Empty(t, names("Smith's confession"))
}

func TestRoleCueNames(t *testing.T) {
	// The cue word is matched case-insensitively.
	assert.Contains(t, names("suspect Scott Peterson denied everything"), "scott peterson")
	assert.Contains(t, names("Nurse Charles Cullen worked nights"), "charles cullen")
	assert.Contains(t, names("Dr. Henry Lee testified"), "henry lee")
}

func TestCityStateLocations(t *testing.T) {
	assert.Equal(t, []string{"austin", "texas"}, locations("found in Austin, Texas that summer"))

	// USPS abbreviations resolve to the full state name.
	assert.Equal(t, []string{"austin", "texas"}, locations("found in Austin, TX that summer"))

	// A greedy two-word tail still resolves when its first word is a state.
	locs := locations("He fled from Dallas, Texas Rangers caught up with him")
	assert.Contains(t, locs, "dallas")
	assert.Contains(t, locs, "texas")

	// No valid state, no emission.
	assert.Empty(t, locations("interviewed in Paris, France"))
}

func TestCountyAndFortLocations(t *testing.T) {
	assert.Contains(t, locations("deputies in Walker County searched for weeks"), "walker county")
	assert.Contains(t, locations("stationed at Fort Bragg in 1985"), "fort bragg")
}

func TestStandaloneStates(t *testing.T) {
	assert.Contains(t, locations("somewhere in rural Oregon"), "oregon")

	// Longest alternation first: West Virginia is not two matches.
	locs := locations("a tip came from West Virginia")
	assert.Contains(t, locs, "west virginia")
	assert.NotContains(t, locs, "virginia")

	// Case-insensitive.
	assert.Contains(t, locations("JOHN LEFT TEXAS"), "texas")
}

func TestYears(t *testing.T) {
	assert.Equal(t, []string{"1994", "2021"}, years("cold since 1994, reopened in 2021"))

	// Outside the 1970-2029 window.
	assert.Empty(t, years("born in 1969, predicted for 2030"))

	// Digits inside longer tokens do not count.
	assert.Empty(t, years("case number 219940"))
}

func TestEpisodeTerms(t *testing.T) {
	ep := apptype.Episode{
		Title:    "Who Killed Laci Peterson",
		Overview: "Modesto, California mourns. The 2002 case drew national attention.",
	}
	terms := EpisodeTerms(ep)
	assert.Contains(t, terms.Names, "laci peterson")
	assert.Contains(t, terms.Locations, "modesto")
	assert.Contains(t, terms.Locations, "california")
	assert.Contains(t, terms.Years, "2002")
}

func TestSortedSetDeterminism(t *testing.T) {
	set := map[string]struct{}{"c": {}, "a": {}, "b": {}}
	require.Equal(t, []string{"a", "b", "c"}, SortedSet(set))
	assert.Empty(t, SortedSet(nil))
}

func FuzzTerms(f *testing.F) {
	f.Add("The murder of John Smith in Austin, Texas in 1994")
	f.Add("")
	f.Add("Fort Bragg Walker County TX 2029")
	f.Add("victim's 's ,, New New York")
	f.Fuzz(func(t *testing.T, text string) {
		terms := Terms(text)
		// Extraction never panics and only emits lowercase terms.
		for n := range terms.Names {
			if n != "" && n != toLowerASCII(n) {
				t.Fatalf("name %q is not lowercase", n)
			}
		}
	})
}

func toLowerASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + 32
		}
	}
	return string(b)
}
