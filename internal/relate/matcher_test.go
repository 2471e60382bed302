package relate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/crimewebhq/crimeweb-go/internal/apptype"
)

func TestMatcherScoreMatchesScoreEpisodes(t *testing.T) {
	m := NewMatcher()
	src := episode("a", "s1", "The Crimes of John Smith",
		"John Smith was killed in Austin, Texas in 1994.")
	cand := episode("b", "s2", "Justice Delayed",
		"Detectives revisit John Smith and the Austin, Texas killing of 1994.")

	wantScore, wantReason := ScoreEpisodes(src, cand)
	gotScore, gotReason := m.Score(src, cand)
	assert.Equal(t, wantScore, gotScore)
	assert.Equal(t, wantReason, gotReason)

	// Second call hits the cache and must agree.
	gotScore, gotReason = m.Score(src, cand)
	assert.Equal(t, wantScore, gotScore)
	assert.Equal(t, wantReason, gotReason)
}

func TestMatcherFindRelatedMatchesPackageFindRelated(t *testing.T) {
	m := NewMatcher()
	src := aired("src", "s0", "John Smith was killed in Austin, Texas in 1994.", "")
	pool := []apptype.Episode{
		aired("full", "s1", "Detectives revisit John Smith and Austin, Texas, 1994.", "2015-01-01"),
		aired("name-only", "s2", "A file on John Smith.", "2018-01-01"),
		aired("unrelated", "s3", "A quiet year in Portland, Oregon.", ""),
	}
	opts := apptype.MatchOptions{}

	want := FindRelated(src, pool, opts)
	got := m.FindRelated(src, pool, opts)
	assert.Equal(t, want, got)
}

func TestMatcherSelfPairScoresZero(t *testing.T) {
	m := NewMatcher()
	e := episode("a", "s1", "The Crimes of John Smith", "")

	score, reason := m.Score(e, e)
	assert.Zero(t, score)
	assert.Empty(t, reason)
}

func TestMatcherCachesByID(t *testing.T) {
	m := NewMatcher()
	src := episode("a", "s1", "The Crimes of John Smith", "")
	cand := episode("b", "s2", "", "New evidence in the John Smith investigation.")

	score, _ := m.Score(src, cand)
	assert.InDelta(t, 0.65, score, 1e-9)

	// Stored episode text is immutable in practice, so a mutated copy with
	// the same id still scores from the cached terms.
	cand.Overview = "A quiet year in Portland, Oregon."
	score, _ = m.Score(src, cand)
	assert.InDelta(t, 0.65, score, 1e-9)

	// An episode without an id bypasses the cache and sees the new text.
	cand.ID = ""
	score, _ = m.Score(src, cand)
	assert.Zero(t, score)
}
