package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/crimewebhq/crimeweb-go/internal/apptype"
)

type StepResult struct {
	Name      string `json:"name"`
	Success   bool   `json:"success"`
	Error     string `json:"error,omitempty"`
	ElapsedMs int64  `json:"elapsed_ms"`
}

type Report struct {
	SSEURL     string       `json:"sse_url"`
	StartedAt  time.Time    `json:"started_at"`
	DurationMs int64        `json:"duration_ms"`
	Steps      []StepResult `json:"steps"`
	Passed     bool         `json:"passed"`
}

func main() {
	sseURL := flag.String("sse-url", "http://localhost:8080/sse", "SSE endpoint URL")
	project := flag.String("project", "default", "Project name to use")
	timeout := flag.Duration("timeout", 30*time.Second, "Overall timeout")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	client := mcp.NewClient(&mcp.Implementation{Name: "integration-tester", Version: "dev"}, nil)
	transport := mcp.NewSSEClientTransport(*sseURL, nil)

	start := time.Now()
	report := Report{SSEURL: *sseURL, StartedAt: start}
	steps := make([]StepResult, 0, 16)

	// Connect
	tConn := time.Now()
	connRes := StepResult{Name: "connect"}
	session, err := client.Connect(ctx, transport)
	if err != nil {
		connRes.Success = false
		connRes.Error = err.Error()
		connRes.ElapsedMs = elapsedMsSince(tConn)
		steps = append(steps, connRes)
		report.Steps = steps
		report.DurationMs = elapsedMsSince(start)
		report.Passed = false
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(report)
		os.Exit(1)
	}
	defer session.Close()
	connRes.Success = true
	connRes.ElapsedMs = elapsedMsSince(tConn)
	steps = append(steps, connRes)

	// Individual steps
	steps = append(steps, runListTools(ctx, session))
	steps = append(steps, runImportEpisodes(ctx, session, *project))
	steps = append(steps, runSearchEpisodes(ctx, session, *project, "Smith"))
	steps = append(steps, runExtractTerms(ctx, session))
	steps = append(steps, runFindRelated(ctx, session, *project, "it-ep-1"))
	steps = append(steps, runSuggestCases(ctx, session, *project, "it-ep-3"))
	steps = append(steps, runConfirmMatch(ctx, session, *project, "it-ep-1", "it-ep-2"))
	steps = append(steps, runMarkViewed(ctx, session, *project, "it-ep-1"))
	steps = append(steps, runHealth(ctx, session))
	// DELETE tests on fresh instance
	steps = append(steps, runDeleteEpisode(ctx, session, *project, "it-ep-3"))

	// finalize report
	report.Steps = steps
	report.DurationMs = elapsedMsSince(start)
	report.Passed = true
	for _, s := range steps {
		if !s.Success {
			report.Passed = false
			break
		}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(report)

	if !report.Passed {
		os.Exit(1)
	}
}

func runListTools(ctx context.Context, session *mcp.ClientSession) StepResult {
	t0 := time.Now()
	res := StepResult{Name: "list_tools"}
	if _, err := session.ListTools(ctx, &mcp.ListToolsParams{}); err != nil {
		res.Success = false
		res.Error = err.Error()
	} else {
		res.Success = true
	}
	res.ElapsedMs = elapsedMsSince(t0)
	return res
}

func runImportEpisodes(ctx context.Context, session *mcp.ClientSession, project string) StepResult {
	t0 := time.Now()
	res := StepResult{Name: "import_episodes"}
	args := apptype.ImportEpisodesArgs{
		ProjectArgs: apptype.ProjectArgs{ProjectName: project},
		Episodes: []apptype.Episode{
			{ID: "it-ep-1", ShowID: "it-show-a", ShowName: "Cold Case Files", Title: "Who Killed John Smith",
				Overview: "The 1994 murder of John Smith in Austin, Texas.", SeasonNumber: 1, EpisodeNumber: 1},
			{ID: "it-ep-2", ShowID: "it-show-b", ShowName: "Forensic Hour", Title: "Justice for John Smith",
				Overview: "Detectives revisit the John Smith case in Austin, TX in 1994.", SeasonNumber: 2, EpisodeNumber: 5},
			{ID: "it-ep-3", ShowID: "it-show-b", ShowName: "Forensic Hour", Title: "The John Smith Files",
				SeasonNumber: 2, EpisodeNumber: 6},
		},
	}
	raw, _ := json.Marshal(args)
	_, err := session.CallTool(ctx, &mcp.CallToolParams{Name: "import_episodes", Arguments: json.RawMessage(raw)})
	if err != nil {
		res.Success = false
		res.Error = err.Error()
	} else {
		res.Success = true
	}
	res.ElapsedMs = elapsedMsSince(t0)
	return res
}

func runSearchEpisodes(ctx context.Context, session *mcp.ClientSession, project, q string) StepResult {
	t0 := time.Now()
	res := StepResult{Name: "search_episodes"}
	args := apptype.SearchEpisodesArgs{ProjectArgs: apptype.ProjectArgs{ProjectName: project}, Query: q, Limit: 10}
	raw, _ := json.Marshal(args)
	_, err := session.CallTool(ctx, &mcp.CallToolParams{Name: "search_episodes", Arguments: json.RawMessage(raw)})
	if err != nil {
		res.Success = false
		res.Error = err.Error()
	} else {
		res.Success = true
	}
	res.ElapsedMs = elapsedMsSince(t0)
	return res
}

func runExtractTerms(ctx context.Context, session *mcp.ClientSession) StepResult {
	t0 := time.Now()
	res := StepResult{Name: "extract_terms"}
	args := apptype.ExtractTermsArgs{Text: "The murder of John Smith in Austin, Texas in 1994"}
	raw, _ := json.Marshal(args)
	_, err := session.CallTool(ctx, &mcp.CallToolParams{Name: "extract_terms", Arguments: json.RawMessage(raw)})
	if err != nil {
		res.Success = false
		res.Error = err.Error()
	} else {
		res.Success = true
	}
	res.ElapsedMs = elapsedMsSince(t0)
	return res
}

func runFindRelated(ctx context.Context, session *mcp.ClientSession, project, episodeID string) StepResult {
	t0 := time.Now()
	res := StepResult{Name: "find_related_episodes"}
	args := map[string]any{
		"projectArgs": map[string]any{"projectName": project},
		"episodeId":   episodeID,
		"maxResults":  5,
	}
	raw, _ := json.Marshal(args)
	_, err := session.CallTool(ctx, &mcp.CallToolParams{Name: "find_related_episodes", Arguments: json.RawMessage(raw)})
	if err != nil {
		res.Success = false
		res.Error = err.Error()
	} else {
		res.Success = true
	}
	res.ElapsedMs = elapsedMsSince(t0)
	return res
}

func runSuggestCases(ctx context.Context, session *mcp.ClientSession, project, episodeID string) StepResult {
	t0 := time.Now()
	res := StepResult{Name: "suggest_case_matches"}
	args := map[string]any{
		"projectArgs": map[string]any{"projectName": project},
		"episodeId":   episodeID,
	}
	raw, _ := json.Marshal(args)
	_, err := session.CallTool(ctx, &mcp.CallToolParams{Name: "suggest_case_matches", Arguments: json.RawMessage(raw)})
	if err != nil {
		res.Success = false
		res.Error = err.Error()
	} else {
		res.Success = true
	}
	res.ElapsedMs = elapsedMsSince(t0)
	return res
}

func runConfirmMatch(ctx context.Context, session *mcp.ClientSession, project, a, b string) StepResult {
	t0 := time.Now()
	res := StepResult{Name: "confirm_match"}
	args := apptype.DecideMatchArgs{
		ProjectArgs: apptype.ProjectArgs{ProjectName: project},
		EpisodeA:    a,
		EpisodeB:    b,
		Score:       0.9,
		Reason:      "John Smith - austin, texas - 1994",
	}
	raw, _ := json.Marshal(args)
	_, err := session.CallTool(ctx, &mcp.CallToolParams{Name: "confirm_match", Arguments: json.RawMessage(raw)})
	if err != nil {
		res.Success = false
		res.Error = err.Error()
	} else {
		res.Success = true
	}
	res.ElapsedMs = elapsedMsSince(t0)
	return res
}

func runMarkViewed(ctx context.Context, session *mcp.ClientSession, project, episodeID string) StepResult {
	t0 := time.Now()
	res := StepResult{Name: "mark_viewed"}
	args := apptype.MarkViewedArgs{
		ProjectArgs: apptype.ProjectArgs{ProjectName: project},
		EpisodeID:   episodeID,
		Viewed:      true,
	}
	raw, _ := json.Marshal(args)
	_, err := session.CallTool(ctx, &mcp.CallToolParams{Name: "mark_viewed", Arguments: json.RawMessage(raw)})
	if err != nil {
		res.Success = false
		res.Error = err.Error()
	} else {
		res.Success = true
	}
	res.ElapsedMs = elapsedMsSince(t0)
	return res
}

func runHealth(ctx context.Context, session *mcp.ClientSession) StepResult {
	t0 := time.Now()
	res := StepResult{Name: "health_check"}
	_, err := session.CallTool(ctx, &mcp.CallToolParams{Name: "health_check", Arguments: json.RawMessage(`{}`)})
	if err != nil {
		res.Success = false
		res.Error = err.Error()
	} else {
		res.Success = true
	}
	res.ElapsedMs = elapsedMsSince(t0)
	return res
}

func runDeleteEpisode(ctx context.Context, session *mcp.ClientSession, project, id string) StepResult {
	t0 := time.Now()
	res := StepResult{Name: "delete_episode"}
	args := apptype.DeleteEpisodeArgs{
		ProjectArgs: apptype.ProjectArgs{ProjectName: project},
		ID:          id,
	}
	raw, _ := json.Marshal(args)
	_, err := session.CallTool(ctx, &mcp.CallToolParams{Name: "delete_episode", Arguments: json.RawMessage(raw)})
	if err != nil {
		res.Success = false
		res.Error = err.Error()
	} else {
		res.Success = true
	}
	res.ElapsedMs = elapsedMsSince(t0)
	return res
}

// elapsedMsSince returns max(1ms, elapsed) to avoid zero durations on fast steps
func elapsedMsSince(t0 time.Time) int64 {
	d := time.Since(t0) / time.Millisecond
	if d <= 0 {
		return 1
	}
	return int64(d)
}
