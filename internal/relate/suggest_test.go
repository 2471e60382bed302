package relate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crimewebhq/crimeweb-go/internal/apptype"
)

func TestSuggestExactTitleName(t *testing.T) {
	src := episode("src", "s0", "The Disappearance of Laci Peterson", "")
	pool := []apptype.Episode{
		episode("exact", "s1", "Laci Peterson: The Final Days", ""),
		episode("unrelated", "s2", "A Quiet Town", ""),
	}

	results := SuggestCases(src, pool, 0)
	require.Len(t, results, 1)
	assert.Equal(t, "exact", results[0].EpisodeID)
	assert.InDelta(t, 0.75, results[0].Score, 1e-9)
	assert.Equal(t, "Laci Peterson", results[0].Reason)
}

func TestSuggestSurnameTitleName(t *testing.T) {
	src := episode("src", "s0", "The Trial of Scott Peterson", "")
	pool := []apptype.Episode{
		episode("surname", "s1", "Laci Peterson: The Final Days", ""),
	}

	results := SuggestCases(src, pool, 0)
	require.Len(t, results, 1)
	assert.InDelta(t, 0.55, results[0].Score, 1e-9)
	assert.Equal(t, "Scott Peterson (last name)", results[0].Reason)
}

func TestSuggestExactBeatsSurname(t *testing.T) {
	src := episode("src", "s0", "The Trial of Scott Peterson", "")
	pool := []apptype.Episode{
		episode("surname", "s1", "Justice for Laci Peterson", ""),
		episode("exact", "s2", "The Hunt for Scott Peterson", ""),
	}

	results := SuggestCases(src, pool, 0)
	require.Len(t, results, 2)
	assert.Equal(t, "exact", results[0].EpisodeID)
	assert.Equal(t, "surname", results[1].EpisodeID)
}

func TestSuggestNoNamesInSourceTitle(t *testing.T) {
	// A title with no recognizable person name suggests nothing, even when
	// the overviews would have matched.
	src := episode("src", "s0", "Cold Case Files", "All about John Smith.")
	pool := []apptype.Episode{
		episode("cand", "s1", "The Hunt for John Smith", "All about John Smith."),
	}

	results := SuggestCases(src, pool, 0)
	require.NotNil(t, results)
	assert.Empty(t, results)
}

func TestSuggestSkipsSelf(t *testing.T) {
	src := episode("src", "s0", "The Hunt for John Smith", "")
	pool := []apptype.Episode{src}

	assert.Empty(t, SuggestCases(src, pool, 0))
}

func TestSuggestMaxResults(t *testing.T) {
	src := episode("src", "s0", "The Hunt for John Smith", "")
	var pool []apptype.Episode
	for _, id := range []string{"c1", "c2", "c3"} {
		pool = append(pool, episode(id, "s1", "More About John Smith", ""))
	}

	assert.Len(t, SuggestCases(src, pool, 2), 2)
	assert.Len(t, SuggestCases(src, pool, 0), 3)
}
