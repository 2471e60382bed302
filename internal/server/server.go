package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/modelcontextprotocol/go-sdk/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/crimewebhq/crimeweb-go/internal/apptype"
	"github.com/crimewebhq/crimeweb-go/internal/buildinfo"
	"github.com/crimewebhq/crimeweb-go/internal/database"
	"github.com/crimewebhq/crimeweb-go/internal/extract"
	"github.com/crimewebhq/crimeweb-go/internal/metrics"
	"github.com/crimewebhq/crimeweb-go/internal/relate"
)

const defaultProject = "default"

// MCPServer handles MCP protocol communication
type MCPServer struct {
	server        *mcp.Server
	db            *database.DBManager
	matcher       *relate.Matcher
	matchDefaults apptype.MatchOptions
}

// NewMCPServer creates a new MCP server
func NewMCPServer(db *database.DBManager) *MCPServer {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "crimeweb-go",
		Version: buildinfo.Version,
	}, nil)

	mcpServer := &MCPServer{
		server:  server,
		db:      db,
		matcher: relate.NewMatcher(),
	}

	// initialize metrics from env (no-op if disabled)
	metrics.InitFromEnv()
	mcpServer.setupToolHandlers()
	return mcpServer
}

// SetMatchDefaults installs configured fallback ranking options for tool
// calls that do not pass their own. Must be called before the server starts
// serving; zero-valued fields keep the compiled-in defaults.
func (s *MCPServer) SetMatchDefaults(opts apptype.MatchOptions) {
	s.matchDefaults = opts
}

// setupToolHandlers registers all MCP tools
func (s *MCPServer) setupToolHandlers() {
	importEpisodesInputSchema, err := jsonschema.For[apptype.ImportEpisodesArgs]()
	if err != nil {
		panic(fmt.Sprintf("failed to create schema for ImportEpisodesArgs: %v", err))
	}
	// Tools that return plain text do not need an output schema. Only
	// tools returning structured content should declare OutputSchema.
	listEpisodesInputSchema, err := jsonschema.For[apptype.ListEpisodesArgs]()
	if err != nil {
		panic(fmt.Sprintf("failed to create schema for ListEpisodesArgs: %v", err))
	}
	listEpisodesOutputSchema, err := jsonschema.For[apptype.EpisodesResult]()
	if err != nil {
		panic(fmt.Sprintf("failed to create schema for EpisodesResult (list): %v", err))
	}
	getEpisodeInputSchema, err := jsonschema.For[apptype.GetEpisodeArgs]()
	if err != nil {
		panic(fmt.Sprintf("failed to create schema for GetEpisodeArgs: %v", err))
	}
	getEpisodeOutputSchema, err := jsonschema.For[apptype.Episode]()
	if err != nil {
		panic(fmt.Sprintf("failed to create schema for Episode: %v", err))
	}
	deleteEpisodeInputSchema, err := jsonschema.For[apptype.DeleteEpisodeArgs]()
	if err != nil {
		panic(fmt.Sprintf("failed to create schema for DeleteEpisodeArgs: %v", err))
	}
	searchEpisodesInputSchema, err := jsonschema.For[apptype.SearchEpisodesArgs]()
	if err != nil {
		panic(fmt.Sprintf("failed to create schema for SearchEpisodesArgs: %v", err))
	}
	// Create a fresh EpisodesResult schema for search to avoid re-resolving the same root
	searchEpisodesOutputSchema, err := jsonschema.For[apptype.EpisodesResult]()
	if err != nil {
		panic(fmt.Sprintf("failed to create schema for EpisodesResult (search): %v", err))
	}
	findRelatedInputSchema, err := jsonschema.For[apptype.FindRelatedArgs]()
	if err != nil {
		panic(fmt.Sprintf("failed to create schema for FindRelatedArgs: %v", err))
	}
	findRelatedOutputSchema, err := jsonschema.For[apptype.RelatedResult]()
	if err != nil {
		panic(fmt.Sprintf("failed to create schema for RelatedResult (find): %v", err))
	}
	suggestCasesInputSchema, err := jsonschema.For[apptype.SuggestCasesArgs]()
	if err != nil {
		panic(fmt.Sprintf("failed to create schema for SuggestCasesArgs: %v", err))
	}
	suggestCasesOutputSchema, err := jsonschema.For[apptype.RelatedResult]()
	if err != nil {
		panic(fmt.Sprintf("failed to create schema for RelatedResult (suggest): %v", err))
	}
	extractTermsInputSchema, err := jsonschema.For[apptype.ExtractTermsArgs]()
	if err != nil {
		panic(fmt.Sprintf("failed to create schema for ExtractTermsArgs: %v", err))
	}
	extractTermsOutputSchema, err := jsonschema.For[apptype.TermsResult]()
	if err != nil {
		panic(fmt.Sprintf("failed to create schema for TermsResult: %v", err))
	}
	decideMatchInputSchema, err := jsonschema.For[apptype.DecideMatchArgs]()
	if err != nil {
		panic(fmt.Sprintf("failed to create schema for DecideMatchArgs: %v", err))
	}
	rejectMatchInputSchema, err := jsonschema.For[apptype.DecideMatchArgs]()
	if err != nil {
		panic(fmt.Sprintf("failed to create schema for DecideMatchArgs (reject): %v", err))
	}
	markViewedInputSchema, err := jsonschema.For[apptype.MarkViewedArgs]()
	if err != nil {
		panic(fmt.Sprintf("failed to create schema for MarkViewedArgs: %v", err))
	}
	markViewedOutputSchema, err := jsonschema.For[apptype.MarkViewedResult]()
	if err != nil {
		panic(fmt.Sprintf("failed to create schema for MarkViewedResult: %v", err))
	}
	healthInputSchema, err := jsonschema.For[apptype.HealthArgs]()
	if err != nil {
		panic(fmt.Sprintf("failed to create schema for HealthArgs: %v", err))
	}
	healthOutputSchema, err := jsonschema.For[apptype.HealthResult]()
	if err != nil {
		panic(fmt.Sprintf("failed to create schema for HealthResult: %v", err))
	}

	importEpisodesAnnotations := mcp.ToolAnnotations{
		Title: "Import Episodes",
	}

	mcp.AddTool(s.server, &mcp.Tool{
		Annotations: &importEpisodesAnnotations,
		Name:        "import_episodes",
		Title:       "Import Episodes",
		Description: "Create or update episodes in the catalog.",
		InputSchema: importEpisodesInputSchema,
	}, s.handleImportEpisodes)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:         "list_episodes",
		Title:        "List Episodes",
		Description:  "List episodes, optionally restricted to one show.",
		InputSchema:  listEpisodesInputSchema,
		OutputSchema: listEpisodesOutputSchema,
	}, s.handleListEpisodes)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:         "get_episode",
		Title:        "Get Episode",
		Description:  "Fetch a single episode by id.",
		InputSchema:  getEpisodeInputSchema,
		OutputSchema: getEpisodeOutputSchema,
	}, s.handleGetEpisode)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "delete_episode",
		Title:       "Delete Episode",
		Description: "Delete an episode and all its associated data (verdicts and viewed flag).",
		InputSchema: deleteEpisodeInputSchema,
	}, s.handleDeleteEpisode)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:         "search_episodes",
		Title:        "Search Episodes",
		Description:  "Search episode titles and overviews by text.",
		InputSchema:  searchEpisodesInputSchema,
		OutputSchema: searchEpisodesOutputSchema,
	}, s.handleSearchEpisodes)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:         "find_related_episodes",
		Title:        "Find Related Episodes",
		Description:  "Rank the catalog against a source episode and return scored matches with reasons.",
		InputSchema:  findRelatedInputSchema,
		OutputSchema: findRelatedOutputSchema,
	}, s.handleFindRelated)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:         "suggest_case_matches",
		Title:        "Suggest Case Matches",
		Description:  "Title-only matching for episodes that have no overview yet.",
		InputSchema:  suggestCasesInputSchema,
		OutputSchema: suggestCasesOutputSchema,
	}, s.handleSuggestCases)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:         "extract_terms",
		Title:        "Extract Terms",
		Description:  "Extract person names, locations and years from free text.",
		InputSchema:  extractTermsInputSchema,
		OutputSchema: extractTermsOutputSchema,
	}, s.handleExtractTerms)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "confirm_match",
		Title:       "Confirm Match",
		Description: "Record that two episodes cover the same case.",
		InputSchema: decideMatchInputSchema,
	}, s.handleConfirmMatch)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "reject_match",
		Title:       "Reject Match",
		Description: "Record that a suggested pair does not cover the same case.",
		InputSchema: rejectMatchInputSchema,
	}, s.handleRejectMatch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:         "mark_viewed",
		Title:        "Mark Viewed",
		Description:  "Flag an episode as viewed, propagating across confirmed matches.",
		InputSchema:  markViewedInputSchema,
		OutputSchema: markViewedOutputSchema,
	}, s.handleMarkViewed)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:         "health_check",
		Title:        "Health Check",
		Description:  "Returns server and configuration information.",
		InputSchema:  healthInputSchema,
		OutputSchema: healthOutputSchema,
	}, s.handleHealth)
}

func (s *MCPServer) getProjectName(providedName string) string {
	if providedName != "" {
		return providedName
	}
	return defaultProject
}

// handleImportEpisodes handles the import_episodes tool call
func (s *MCPServer) handleImportEpisodes(
	ctx context.Context,
	session *mcp.ServerSession,
	params *mcp.CallToolParamsFor[apptype.ImportEpisodesArgs],
) (*mcp.CallToolResultFor[any], error) {
	done := metrics.TimeTool("import_episodes")
	var success bool
	defer func() { done(success) }()
	projectName := s.getProjectName(params.Arguments.ProjectArgs.ProjectName)
	episodes := params.Arguments.Episodes

	if err := s.db.UpsertEpisodes(ctx, projectName, episodes); err != nil {
		success = false
		return nil, fmt.Errorf("failed to import episodes: %w", err)
	}
	success = true

	result := &mcp.CallToolResultFor[any]{
		Content: []mcp.Content{
			&mcp.TextContent{
				Text: fmt.Sprintf("Successfully processed %d episodes in project %s", len(episodes), projectName),
			},
		},
	}
	return result, nil
}

// handleListEpisodes handles the list_episodes tool call
func (s *MCPServer) handleListEpisodes(
	ctx context.Context,
	session *mcp.ServerSession,
	params *mcp.CallToolParamsFor[apptype.ListEpisodesArgs],
) (*mcp.CallToolResultFor[apptype.EpisodesResult], error) {
	done := metrics.TimeTool("list_episodes")
	var success bool
	defer func() { done(success) }()
	projectName := s.getProjectName(params.Arguments.ProjectArgs.ProjectName)

	episodes, err := s.db.ListEpisodes(ctx, projectName, params.Arguments.ShowID, params.Arguments.Limit, params.Arguments.Offset)
	if err != nil {
		success = false
		return nil, fmt.Errorf("list failed: %w", err)
	}
	success = true

	return &mcp.CallToolResultFor[apptype.EpisodesResult]{
		Content: []mcp.Content{
			&mcp.TextContent{
				Text: fmt.Sprintf("Listed %d episodes", len(episodes)),
			},
		},
		StructuredContent: apptype.EpisodesResult{Episodes: episodes},
	}, nil
}

// handleGetEpisode handles the get_episode tool call
func (s *MCPServer) handleGetEpisode(
	ctx context.Context,
	session *mcp.ServerSession,
	params *mcp.CallToolParamsFor[apptype.GetEpisodeArgs],
) (*mcp.CallToolResultFor[apptype.Episode], error) {
	done := metrics.TimeTool("get_episode")
	var success bool
	defer func() { done(success) }()
	projectName := s.getProjectName(params.Arguments.ProjectArgs.ProjectName)

	episode, err := s.db.GetEpisode(ctx, projectName, params.Arguments.ID)
	if err != nil {
		success = false
		return nil, fmt.Errorf("get failed: %w", err)
	}
	success = true

	return &mcp.CallToolResultFor[apptype.Episode]{
		Content: []mcp.Content{
			&mcp.TextContent{
				Text: fmt.Sprintf("%s (%s S%02dE%02d)", episode.Title, episode.ShowName, episode.SeasonNumber, episode.EpisodeNumber),
			},
		},
		StructuredContent: *episode,
	}, nil
}

// handleDeleteEpisode handles the delete_episode tool call
func (s *MCPServer) handleDeleteEpisode(
	ctx context.Context,
	session *mcp.ServerSession,
	params *mcp.CallToolParamsFor[apptype.DeleteEpisodeArgs],
) (*mcp.CallToolResultFor[any], error) {
	done := metrics.TimeTool("delete_episode")
	var success bool
	defer func() { done(success) }()
	projectName := s.getProjectName(params.Arguments.ProjectArgs.ProjectName)
	id := params.Arguments.ID

	if err := s.db.DeleteEpisode(ctx, projectName, id); err != nil {
		success = false
		return nil, fmt.Errorf("failed to delete episode: %w", err)
	}
	success = true

	return &mcp.CallToolResultFor[any]{
		Content: []mcp.Content{
			&mcp.TextContent{
				Text: fmt.Sprintf("Successfully deleted episode %q in project %s", id, projectName),
			},
		},
	}, nil
}

// handleSearchEpisodes handles the search_episodes tool call
func (s *MCPServer) handleSearchEpisodes(
	ctx context.Context,
	session *mcp.ServerSession,
	params *mcp.CallToolParamsFor[apptype.SearchEpisodesArgs],
) (*mcp.CallToolResultFor[apptype.EpisodesResult], error) {
	done := metrics.TimeTool("search_episodes")
	var success bool
	defer func() { done(success) }()
	projectName := s.getProjectName(params.Arguments.ProjectArgs.ProjectName)

	episodes, err := s.db.SearchEpisodes(ctx, projectName, params.Arguments.Query, params.Arguments.Limit, params.Arguments.Offset)
	if err != nil {
		success = false
		return nil, fmt.Errorf("search failed: %w", err)
	}
	success = true

	return &mcp.CallToolResultFor[apptype.EpisodesResult]{
		Content: []mcp.Content{
			&mcp.TextContent{
				Text: "Search completed successfully",
			},
		},
		StructuredContent: apptype.EpisodesResult{Episodes: episodes},
	}, nil
}

// handleFindRelated handles the find_related_episodes tool call
func (s *MCPServer) handleFindRelated(
	ctx context.Context,
	session *mcp.ServerSession,
	params *mcp.CallToolParamsFor[apptype.FindRelatedArgs],
) (*mcp.CallToolResultFor[apptype.RelatedResult], error) {
	done := metrics.TimeTool("find_related_episodes")
	var success bool
	defer func() { done(success) }()
	projectName := s.getProjectName(params.Arguments.ProjectArgs.ProjectName)

	var source apptype.Episode
	switch {
	case params.Arguments.EpisodeID != "":
		ep, err := s.db.GetEpisode(ctx, projectName, params.Arguments.EpisodeID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve source episode: %w", err)
		}
		source = *ep
	case params.Arguments.Episode != nil:
		source = *params.Arguments.Episode
	default:
		return nil, fmt.Errorf("either episodeId or episode must be provided")
	}

	pool, err := s.db.AllEpisodes(ctx, projectName)
	if err != nil {
		return nil, fmt.Errorf("failed to load corpus: %w", err)
	}

	opts := apptype.MatchOptions{
		MaxResults:      params.Arguments.MaxResults,
		MinScore:        params.Arguments.MinScore,
		ExcludeSameShow: params.Arguments.ExcludeSameShow,
	}
	matches := s.matcher.FindRelated(source, pool, opts.WithFallback(s.matchDefaults))
	success = true

	return &mcp.CallToolResultFor[apptype.RelatedResult]{
		Content: []mcp.Content{
			&mcp.TextContent{
				Text: fmt.Sprintf("Found %d related episodes for %q", len(matches), source.Title),
			},
		},
		StructuredContent: apptype.RelatedResult{Source: source, Matches: matches},
	}, nil
}

// handleSuggestCases handles the suggest_case_matches tool call
func (s *MCPServer) handleSuggestCases(
	ctx context.Context,
	session *mcp.ServerSession,
	params *mcp.CallToolParamsFor[apptype.SuggestCasesArgs],
) (*mcp.CallToolResultFor[apptype.RelatedResult], error) {
	done := metrics.TimeTool("suggest_case_matches")
	var success bool
	defer func() { done(success) }()
	projectName := s.getProjectName(params.Arguments.ProjectArgs.ProjectName)

	source, err := s.db.GetEpisode(ctx, projectName, params.Arguments.EpisodeID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve source episode: %w", err)
	}
	pool, err := s.db.AllEpisodes(ctx, projectName)
	if err != nil {
		return nil, fmt.Errorf("failed to load corpus: %w", err)
	}

	maxResults := params.Arguments.MaxResults
	if maxResults <= 0 {
		maxResults = s.matchDefaults.MaxResults
	}
	matches := relate.SuggestCases(*source, pool, maxResults)
	success = true

	return &mcp.CallToolResultFor[apptype.RelatedResult]{
		Content: []mcp.Content{
			&mcp.TextContent{
				Text: fmt.Sprintf("Found %d case suggestions for %q", len(matches), source.Title),
			},
		},
		StructuredContent: apptype.RelatedResult{Source: *source, Matches: matches},
	}, nil
}

// handleExtractTerms handles the extract_terms tool call
func (s *MCPServer) handleExtractTerms(
	ctx context.Context,
	session *mcp.ServerSession,
	params *mcp.CallToolParamsFor[apptype.ExtractTermsArgs],
) (*mcp.CallToolResultFor[apptype.TermsResult], error) {
	done := metrics.TimeTool("extract_terms")
	defer func() { done(true) }()

	terms := extract.Terms(params.Arguments.Text)
	res := apptype.TermsResult{
		Names:     extract.SortedSet(terms.Names),
		Locations: extract.SortedSet(terms.Locations),
		Years:     extract.SortedSet(terms.Years),
	}

	return &mcp.CallToolResultFor[apptype.TermsResult]{
		Content: []mcp.Content{
			&mcp.TextContent{
				Text: fmt.Sprintf("Extracted %d names, %d locations, %d years", len(res.Names), len(res.Locations), len(res.Years)),
			},
		},
		StructuredContent: res,
	}, nil
}

// handleConfirmMatch handles the confirm_match tool call
func (s *MCPServer) handleConfirmMatch(
	ctx context.Context,
	session *mcp.ServerSession,
	params *mcp.CallToolParamsFor[apptype.DecideMatchArgs],
) (*mcp.CallToolResultFor[any], error) {
	done := metrics.TimeTool("confirm_match")
	var success bool
	defer func() { done(success) }()
	if err := s.saveDecision(ctx, params, apptype.DecisionConfirmed); err != nil {
		return nil, err
	}
	success = true
	return &mcp.CallToolResultFor[any]{
		Content: []mcp.Content{&mcp.TextContent{Text: fmt.Sprintf("Confirmed match between %s and %s", params.Arguments.EpisodeA, params.Arguments.EpisodeB)}},
	}, nil
}

// handleRejectMatch handles the reject_match tool call
func (s *MCPServer) handleRejectMatch(
	ctx context.Context,
	session *mcp.ServerSession,
	params *mcp.CallToolParamsFor[apptype.DecideMatchArgs],
) (*mcp.CallToolResultFor[any], error) {
	done := metrics.TimeTool("reject_match")
	var success bool
	defer func() { done(success) }()
	if err := s.saveDecision(ctx, params, apptype.DecisionRejected); err != nil {
		return nil, err
	}
	success = true
	return &mcp.CallToolResultFor[any]{
		Content: []mcp.Content{&mcp.TextContent{Text: fmt.Sprintf("Rejected match between %s and %s", params.Arguments.EpisodeA, params.Arguments.EpisodeB)}},
	}, nil
}

func (s *MCPServer) saveDecision(ctx context.Context, params *mcp.CallToolParamsFor[apptype.DecideMatchArgs], verdict string) error {
	projectName := s.getProjectName(params.Arguments.ProjectArgs.ProjectName)
	if err := s.db.SaveDecision(ctx, projectName, apptype.Decision{
		EpisodeA: params.Arguments.EpisodeA,
		EpisodeB: params.Arguments.EpisodeB,
		Decision: verdict,
		Score:    params.Arguments.Score,
		Reason:   params.Arguments.Reason,
	}); err != nil {
		return fmt.Errorf("failed to record verdict: %w", err)
	}
	return nil
}

// handleMarkViewed handles the mark_viewed tool call
func (s *MCPServer) handleMarkViewed(
	ctx context.Context,
	session *mcp.ServerSession,
	params *mcp.CallToolParamsFor[apptype.MarkViewedArgs],
) (*mcp.CallToolResultFor[apptype.MarkViewedResult], error) {
	done := metrics.TimeTool("mark_viewed")
	var success bool
	defer func() { done(success) }()
	projectName := s.getProjectName(params.Arguments.ProjectArgs.ProjectName)

	changed, err := s.db.SetViewed(ctx, projectName, params.Arguments.EpisodeID, params.Arguments.Viewed)
	if err != nil {
		return nil, fmt.Errorf("failed to set viewed flag: %w", err)
	}
	success = true

	return &mcp.CallToolResultFor[apptype.MarkViewedResult]{
		Content: []mcp.Content{
			&mcp.TextContent{
				Text: fmt.Sprintf("Updated viewed flag on %d episodes", len(changed)),
			},
		},
		StructuredContent: apptype.MarkViewedResult{EpisodeIDs: changed, Viewed: params.Arguments.Viewed},
	}, nil
}

// handleHealth returns basic server health information
func (s *MCPServer) handleHealth(
	ctx context.Context,
	session *mcp.ServerSession,
	params *mcp.CallToolParamsFor[apptype.HealthArgs],
) (*mcp.CallToolResultFor[apptype.HealthResult], error) {
	done := metrics.TimeTool("health_check")
	defer func() { done(true) }()
	cfg := s.db.Config()
	// observe current pool gauges
	inUse, idle := s.db.PoolStats()
	metrics.Default().ObservePoolStats(inUse, idle)
	res := &apptype.HealthResult{
		Name:         "crimeweb-go",
		Version:      buildinfo.Version,
		Revision:     buildinfo.Revision,
		BuildDate:    buildinfo.BuildDate,
		MultiProject: cfg.MultiProjectMode,
	}
	return &mcp.CallToolResultFor[apptype.HealthResult]{
		Content:           []mcp.Content{&mcp.TextContent{Text: "ok"}},
		StructuredContent: *res,
	}, nil
}

// Run starts the MCP server with stdio transport
func (s *MCPServer) Run(ctx context.Context) error {
	s.startPoolStatsReporter(ctx)
	transport := mcp.NewStdioTransport()
	return s.server.Run(ctx, transport)
}

// RunSSE starts the MCP server over SSE at the given address and endpoint
func (s *MCPServer) RunSSE(ctx context.Context, addr string, endpoint string) error {
	s.startPoolStatsReporter(ctx)
	handler := mcp.NewSSEHandler(func(r *http.Request) *mcp.Server { return s.server })
	mux := http.NewServeMux()
	mux.Handle(endpoint, handler)
	srv := &http.Server{Addr: addr, Handler: mux}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 0)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Printf("SSE MCP server listening on %s%s", addr, endpoint)
	return srv.ListenAndServe()
}

// startPoolStatsReporter reports DB pool gauges every 5 seconds until ctx ends.
func (s *MCPServer) startPoolStatsReporter(ctx context.Context) {
	ticker := time.NewTicker(5 * time.Second)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				inUse, idle := s.db.PoolStats()
				metrics.Default().ObservePoolStats(inUse, idle)
			}
		}
	}()
}
