package relate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/crimewebhq/crimeweb-go/internal/apptype"
)

func episode(id, showID, title, overview string) apptype.Episode {
	return apptype.Episode{ID: id, ShowID: showID, ShowName: showID, Title: title, Overview: overview}
}

func TestScoreFullCorrespondence(t *testing.T) {
	src := episode("a", "s1", "The Crimes of John Smith",
		"John Smith was killed in Austin, Texas in 1994.")
	cand := episode("b", "s2", "Justice Delayed",
		"Detectives revisit John Smith and the Austin, Texas killing of 1994.")

	score, reason := ScoreEpisodes(src, cand)
	// One name match (0.65) plus location (0.2) plus year (0.1).
	assert.InDelta(t, 0.95, score, 1e-9)
	assert.Equal(t, "John Smith - Austin - 1994", reason)
}

func TestScoreNameOnly(t *testing.T) {
	src := episode("a", "s1", "The Crimes of John Smith", "")
	cand := episode("b", "s2", "A Second Look", "New evidence in the John Smith investigation.")

	score, reason := ScoreEpisodes(src, cand)
	assert.InDelta(t, 0.65, score, 1e-9)
	assert.Equal(t, "John Smith", reason)
}

func TestScoreNameGate(t *testing.T) {
	// Shared location and year but no shared person name scores zero.
	src := episode("a", "s1", "A Town on Edge", "Panic spread through Austin, Texas in 1994.")
	cand := episode("b", "s2", "Silent Streets", "Austin, Texas remembers 1994.")

	score, reason := ScoreEpisodes(src, cand)
	assert.Zero(t, score)
	assert.Empty(t, reason)
}

func TestScoreSharedCaseAcrossShows(t *testing.T) {
	src := episode("a", "s1", "The Smith Murder Case",
		"The murder of John Smith shocked everyone.")
	cand := episode("b", "s2", "Who Killed John Smith?",
		"The murder of John Smith shocks the town.")

	score, reason := ScoreEpisodes(src, cand)
	assert.GreaterOrEqual(t, score, 0.65)
	assert.Contains(t, reason, "John Smith")
}

func TestScoreStateAbbreviationNormalized(t *testing.T) {
	// "Austin, TX" and "Austin, Texas" intersect on both city and state.
	src := episode("a", "s1", "",
		"Police investigate the death of Mary Johnson in Austin, Texas.")
	cand := episode("b", "s2", "",
		"New evidence in the Mary Johnson case from Austin, TX.")

	score, reason := ScoreEpisodes(src, cand)
	assert.InDelta(t, 0.85, score, 1e-9)
	assert.Equal(t, "Mary Johnson - Austin", reason)
}

func TestScoreSurnameMatch(t *testing.T) {
	src := episode("a", "s1", "", "The trial of John Smith began quietly.")
	cand := episode("b", "s2", "", "Neighbors say Robert Smith kept to himself.")

	score, reason := ScoreEpisodes(src, cand)
	assert.InDelta(t, 0.65, score, 1e-9)
	assert.Equal(t, "John Smith (last name)", reason)
}

func TestScoreClampedToOne(t *testing.T) {
	src := episode("a", "s1", "",
		"John Smith, Mary Jones and Peter Brown vanished from Austin, Texas in 1994.")
	cand := episode("b", "s2", "",
		"The cases of John Smith, Mary Jones and Peter Brown in Austin, Texas, all in 1994.")

	score, _ := ScoreEpisodes(src, cand)
	assert.Equal(t, 1.0, score)
}

func TestScoreSymmetric(t *testing.T) {
	src := episode("a", "s1", "", "John Smith disappeared near Walker County in 2001.")
	cand := episode("b", "s2", "", "What happened to John Smith in Walker County? The 2001 files.")

	forward, _ := ScoreEpisodes(src, cand)
	backward, _ := ScoreEpisodes(cand, src)
	assert.Equal(t, forward, backward)
}

func TestScoreSelfPair(t *testing.T) {
	ep := episode("a", "s1", "", "John Smith in Austin, Texas in 1994.")
	score, reason := ScoreEpisodes(ep, ep)
	assert.Zero(t, score)
	assert.Empty(t, reason)
}

func TestScoreYearNotRepeatedInReason(t *testing.T) {
	// When a matched name already carries the year digits, the year fragment
	// is not appended a second time.
	score, reason := scoreTerms(
		apptype.ExtractedTerms{
			Names: set("case 1994 team"), Locations: set(), Years: set("1994"),
		},
		apptype.ExtractedTerms{
			Names: set("case 1994 team"), Locations: set(), Years: set("1994"),
		},
	)
	assert.Greater(t, score, 0.0)
	assert.Equal(t, "Case 1994 Team", reason)
}

func TestScoreReasonKeepsTwoNamesMost(t *testing.T) {
	src := apptype.ExtractedTerms{
		Names: set("alan apt", "bob briar", "carl crest"), Locations: set(), Years: set(),
	}
	score, reason := scoreTerms(src, src)
	// Three matches hit the cap: 0.5 + 3*0.15.
	assert.InDelta(t, 0.95, score, 1e-9)
	assert.Equal(t, "Alan Apt, Bob Briar", reason)
}

func set(members ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(members))
	for _, s := range members {
		m[s] = struct{}{}
	}
	return m
}
