package relate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crimewebhq/crimeweb-go/internal/apptype"
)

func aired(id, showID, overview string, airDate string) apptype.Episode {
	ep := episode(id, showID, "", overview)
	if airDate != "" {
		t, err := time.Parse("2006-01-02", airDate)
		if err != nil {
			panic(err)
		}
		ep.AirDate = &t
	}
	return ep
}

func TestFindRelatedFiltersAndSorts(t *testing.T) {
	src := aired("src", "s0", "John Smith was killed in Austin, Texas in 1994.", "")
	pool := []apptype.Episode{
		src, // self, never a match
		aired("full", "s1", "Detectives revisit John Smith and Austin, Texas, 1994.", "2015-01-01"),
		aired("name-only", "s2", "A file on John Smith.", "2018-01-01"),
		aired("no-name", "s3", "A killing in Austin, Texas in 1994.", "2020-01-01"),
	}

	results := FindRelated(src, pool, apptype.MatchOptions{})
	require.Len(t, results, 2)
	// The 0.95 full match outranks the 0.65 name match despite being older.
	assert.Equal(t, "full", results[0].EpisodeID)
	assert.Equal(t, "name-only", results[1].EpisodeID)
	for _, r := range results {
		assert.NotEqual(t, "src", r.EpisodeID)
		assert.GreaterOrEqual(t, r.Score, apptype.DefaultMinScore)
		assert.NotEmpty(t, r.Reason)
	}
}

func TestFindRelatedTieBandPrefersNewer(t *testing.T) {
	src := aired("src", "s0", "The investigation of John Smith.", "")
	pool := []apptype.Episode{
		aired("older", "s1", "John Smith, twenty years on.", "2012-06-01"),
		aired("newer", "s2", "More about John Smith.", "2022-06-01"),
		aired("undated", "s3", "Who was John Smith, really?", ""),
	}

	// All three score 0.65; within the tie band, newer air dates win and
	// missing dates sort last.
	results := FindRelated(src, pool, apptype.MatchOptions{})
	require.Len(t, results, 3)
	assert.Equal(t, "newer", results[0].EpisodeID)
	assert.Equal(t, "older", results[1].EpisodeID)
	assert.Equal(t, "undated", results[2].EpisodeID)
}

func TestSortResultsTieBandEdgeInclusive(t *testing.T) {
	// 0.10 and 0.05 differ by exactly the band width in float64, so the
	// boundary itself must count as tied and fall back to air date.
	newer := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	results := []apptype.MatchResult{
		{EpisodeID: "higher-older", Score: 0.10},
		{EpisodeID: "lower-newer", Score: 0.05, AirDate: &newer},
	}

	sortResults(results)
	assert.Equal(t, "lower-newer", results[0].EpisodeID)
	assert.Equal(t, "higher-older", results[1].EpisodeID)
}

func TestFindRelatedMaxResults(t *testing.T) {
	src := aired("src", "s0", "The investigation of John Smith.", "")
	pool := make([]apptype.Episode, 0, 8)
	for _, id := range []string{"c1", "c2", "c3", "c4", "c5", "c6", "c7", "c8"} {
		pool = append(pool, aired(id, "show-"+id, "More on John Smith.", ""))
	}

	results := FindRelated(src, pool, apptype.MatchOptions{})
	assert.Len(t, results, apptype.DefaultMaxResults)

	results = FindRelated(src, pool, apptype.MatchOptions{MaxResults: 2})
	assert.Len(t, results, 2)
}

func TestFindRelatedMinScore(t *testing.T) {
	src := aired("src", "s0", "John Smith was killed in Austin, Texas in 1994.", "")
	pool := []apptype.Episode{
		aired("full", "s1", "Detectives revisit John Smith and Austin, Texas, 1994.", ""),
		aired("name-only", "s2", "A file on John Smith.", ""),
	}

	results := FindRelated(src, pool, apptype.MatchOptions{MinScore: 0.9})
	require.Len(t, results, 1)
	assert.Equal(t, "full", results[0].EpisodeID)
}

func TestFindRelatedExcludeSameShow(t *testing.T) {
	src := aired("src", "s0", "The investigation of John Smith.", "")
	pool := []apptype.Episode{
		aired("sibling", "s0", "John Smith, part two.", ""),
		aired("other", "s1", "John Smith elsewhere.", ""),
	}

	results := FindRelated(src, pool, apptype.MatchOptions{ExcludeSameShow: true})
	require.Len(t, results, 1)
	assert.Equal(t, "other", results[0].EpisodeID)

	results = FindRelated(src, pool, apptype.MatchOptions{})
	assert.Len(t, results, 2)
}

func TestFindRelatedEmptyPool(t *testing.T) {
	src := aired("src", "s0", "The investigation of John Smith.", "")
	assert.Empty(t, FindRelated(src, nil, apptype.MatchOptions{}))
}

func TestMatchResultCopiesCandidateFields(t *testing.T) {
	src := aired("src", "s0", "The investigation of John Smith.", "")
	cand := apptype.Episode{
		ID: "c", ShowID: "s1", ShowName: "Forensic Hour",
		Title: "Finding John Smith", Overview: "More on John Smith.",
		SeasonNumber: 3, EpisodeNumber: 7, StillPath: "/stills/c.jpg",
	}

	results := FindRelated(src, []apptype.Episode{cand}, apptype.MatchOptions{})
	require.Len(t, results, 1)
	r := results[0]
	assert.Equal(t, cand.ID, r.EpisodeID)
	assert.Equal(t, cand.ShowName, r.ShowName)
	assert.Equal(t, cand.Title, r.Title)
	assert.Equal(t, cand.SeasonNumber, r.SeasonNumber)
	assert.Equal(t, cand.EpisodeNumber, r.EpisodeNumber)
	assert.Equal(t, cand.StillPath, r.StillPath)
}

func BenchmarkFindRelated(b *testing.B) {
	src := aired("src", "s0", "John Smith was killed in Austin, Texas in 1994.", "")
	pool := make([]apptype.Episode, 0, 200)
	for i := 0; i < 200; i++ {
		id := string(rune('a'+i%26)) + "-cand"
		pool = append(pool, aired(id, "s1", "Detectives revisit John Smith and Austin, Texas, 1994.", ""))
	}
	m := NewMatcher()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.FindRelated(src, pool, apptype.MatchOptions{})
	}
}
