package server

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crimewebhq/crimeweb-go/internal/apptype"
	"github.com/crimewebhq/crimeweb-go/internal/database"
)

func setupServer(t *testing.T) *MCPServer {
	t.Helper()
	cfg := database.NewConfig()
	cfg.URL = "file:" + t.Name() + "?mode=memory&cache=shared"
	dbm, err := database.NewDBManager(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = dbm.Close() })
	return NewMCPServer(dbm)
}

func seedCorpus(t *testing.T, srv *MCPServer) {
	t.Helper()
	err := srv.db.UpsertEpisodes(context.Background(), defaultProject, []apptype.Episode{
		{
			ID: "src", ShowID: "s0", ShowName: "s0", Title: "Source episode",
			Overview: "John Smith was killed in Austin, Texas in 1994.",
		},
		{
			ID: "full", ShowID: "s1", ShowName: "s1", Title: "Full signal",
			Overview: "Detectives revisit John Smith and Austin, Texas, 1994.",
		},
		{
			ID: "name-only", ShowID: "s2", ShowName: "s2", Title: "Name only",
			Overview: "A file on John Smith.",
		},
	})
	require.NoError(t, err)
}

func TestFindRelatedUsesConfiguredDefaults(t *testing.T) {
	srv := setupServer(t)
	seedCorpus(t, srv)
	srv.SetMatchDefaults(apptype.MatchOptions{MaxResults: 1, MinScore: 0.9})
	ctx := context.Background()

	// No per-call options: the configured defaults apply.
	res, err := srv.handleFindRelated(ctx, nil, &mcp.CallToolParamsFor[apptype.FindRelatedArgs]{
		Arguments: apptype.FindRelatedArgs{EpisodeID: "src"},
	})
	require.NoError(t, err)
	require.Len(t, res.StructuredContent.Matches, 1)
	assert.Equal(t, "full", res.StructuredContent.Matches[0].EpisodeID)

	// Explicit per-call options win over the configured defaults.
	res, err = srv.handleFindRelated(ctx, nil, &mcp.CallToolParamsFor[apptype.FindRelatedArgs]{
		Arguments: apptype.FindRelatedArgs{EpisodeID: "src", MaxResults: 5, MinScore: 0.3},
	})
	require.NoError(t, err)
	assert.Len(t, res.StructuredContent.Matches, 2)
}

func TestFindRelatedCompiledDefaultsWithoutConfig(t *testing.T) {
	srv := setupServer(t)
	seedCorpus(t, srv)

	res, err := srv.handleFindRelated(context.Background(), nil, &mcp.CallToolParamsFor[apptype.FindRelatedArgs]{
		Arguments: apptype.FindRelatedArgs{EpisodeID: "src"},
	})
	require.NoError(t, err)
	assert.Len(t, res.StructuredContent.Matches, 2)
}
