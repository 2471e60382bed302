package crimeweb

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func airDate(s string) *time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return &t
}

func setupService(t *testing.T) *Service {
	t.Helper()
	svc, err := NewService(&Config{URL: "file:" + t.Name() + "?mode=memory&cache=shared"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = svc.Close() })
	return svc
}

func catalog() []Episode {
	return []Episode{
		{
			ID: "cw-1", ShowID: "ccf", ShowName: "Cold Case Files",
			SeasonNumber: 1, EpisodeNumber: 3,
			Title:    "The Smith Murder Case",
			Overview: "John Smith was killed in Austin, Texas in 1994.",
			AirDate:  airDate("2019-03-01"),
		},
		{
			ID: "cw-2", ShowID: "fh", ShowName: "Forensic Hour",
			SeasonNumber: 2, EpisodeNumber: 1,
			Title:    "Justice for John Smith",
			Overview: "Detectives revisit John Smith and the Austin, Texas killing of 1994.",
			AirDate:  airDate("2021-06-10"),
		},
		{
			ID: "cw-3", ShowID: "fh", ShowName: "Forensic Hour",
			SeasonNumber: 2, EpisodeNumber: 4,
			Title:    "The Riverside Strangler",
			Overview: "A string of attacks near Portland, Oregon went unsolved.",
		},
	}
}

func TestServiceImportAndQuery(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()
	require.NoError(t, svc.ImportEpisodes(ctx, "default", catalog()))

	ep, err := svc.GetEpisode(ctx, "default", "cw-1")
	require.NoError(t, err)
	assert.Equal(t, "The Smith Murder Case", ep.Title)

	eps, err := svc.ListEpisodes(ctx, "default", "fh", 0, 0)
	require.NoError(t, err)
	assert.Len(t, eps, 2)

	found, err := svc.SearchEpisodes(ctx, "default", "Smith", 0, 0)
	require.NoError(t, err)
	assert.Len(t, found, 2)
}

func TestServiceFindRelatedFlow(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()
	require.NoError(t, svc.ImportEpisodes(ctx, "default", catalog()))

	source, matches, err := svc.FindRelatedByID(ctx, "default", "cw-1", MatchOptions{})
	require.NoError(t, err)
	assert.Equal(t, "cw-1", source.ID)
	require.Len(t, matches, 1)
	assert.Equal(t, "cw-2", matches[0].EpisodeID)
	assert.InDelta(t, 0.95, matches[0].Score, 1e-9)
	assert.Equal(t, "John Smith - Austin - 1994", matches[0].Reason)
}

func TestServiceDecisionAndViewedFlow(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()
	require.NoError(t, svc.ImportEpisodes(ctx, "default", catalog()))

	require.NoError(t, svc.ConfirmMatch(ctx, "default", "cw-1", "cw-2", 0.95, "John Smith - Austin - 1994"))

	dec, err := svc.GetDecision(ctx, "default", "cw-2", "cw-1")
	require.NoError(t, err)
	require.NotNil(t, dec)
	assert.Equal(t, "confirmed", dec.Decision)

	// Marking one episode viewed propagates across the confirmed link.
	changed, err := svc.MarkViewed(ctx, "default", "cw-1", true)
	require.NoError(t, err)
	assert.Equal(t, []string{"cw-1", "cw-2"}, changed)

	viewed, err := svc.IsViewed(ctx, "default", "cw-2")
	require.NoError(t, err)
	assert.True(t, viewed)

	viewed, err = svc.IsViewed(ctx, "default", "cw-3")
	require.NoError(t, err)
	assert.False(t, viewed)
}

func TestServiceExtractTerms(t *testing.T) {
	svc := setupService(t)

	names, locations, years := svc.ExtractTerms("John Smith vanished near Austin, Texas in 1994.")
	assert.Equal(t, []string{"john smith"}, names)
	assert.Equal(t, []string{"austin", "texas"}, locations)
	assert.Equal(t, []string{"1994"}, years)
}
