package apptype

// ProjectArgs provides a standard way to pass project context to tools.
type ProjectArgs struct {
	ProjectName string `json:"projectName,omitempty" jsonschema:"The name of the project catalog to operate on. If not provided, the default project is used."`
}

// ImportEpisodesArgs represents the arguments for the import_episodes tool.
type ImportEpisodesArgs struct {
	ProjectArgs ProjectArgs `json:"projectArgs,omitempty" jsonschema:"Project context for the operation."`
	Episodes    []Episode   `json:"episodes" jsonschema:"A list of episodes to create or update."`
}

// ListEpisodesArgs represents the arguments for the list_episodes tool.
type ListEpisodesArgs struct {
	ProjectArgs ProjectArgs `json:"projectArgs,omitempty" jsonschema:"Project context for the operation."`
	ShowID      string      `json:"showId,omitempty" jsonschema:"Restrict the listing to a single show."`
	Limit       int         `json:"limit,omitempty" jsonschema:"Maximum number of episodes to return (default 50)."`
	Offset      int         `json:"offset,omitempty" jsonschema:"Number of episodes to skip (for pagination)."`
}

// GetEpisodeArgs represents the arguments for the get_episode tool.
type GetEpisodeArgs struct {
	ProjectArgs ProjectArgs `json:"projectArgs,omitempty" jsonschema:"Project context for the operation."`
	ID          string      `json:"id" jsonschema:"The id of the episode to fetch."`
}

// DeleteEpisodeArgs represents the arguments for the delete_episode tool.
type DeleteEpisodeArgs struct {
	ProjectArgs ProjectArgs `json:"projectArgs,omitempty" jsonschema:"Project context for the operation."`
	ID          string      `json:"id" jsonschema:"The id of the episode to delete."`
}

// SearchEpisodesArgs represents the arguments for the search_episodes tool.
type SearchEpisodesArgs struct {
	ProjectArgs ProjectArgs `json:"projectArgs,omitempty" jsonschema:"Project context for the operation."`
	Query       string      `json:"query" jsonschema:"Text to search episode titles and overviews for."`
	Limit       int         `json:"limit,omitempty" jsonschema:"Maximum number of results to return (default 20)."`
	Offset      int         `json:"offset,omitempty" jsonschema:"Number of results to skip (for pagination)."`
}

// FindRelatedArgs represents the arguments for the find_related_episodes tool.
// Either EpisodeID (resolved against the store) or Episode (inline) must be set.
type FindRelatedArgs struct {
	ProjectArgs     ProjectArgs `json:"projectArgs,omitempty" jsonschema:"Project context for the operation."`
	EpisodeID       string      `json:"episodeId,omitempty" jsonschema:"Id of the source episode, resolved against the stored corpus."`
	Episode         *Episode    `json:"episode,omitempty" jsonschema:"Inline source episode, used when it is not stored."`
	MaxResults      int         `json:"maxResults,omitempty" jsonschema:"Maximum number of matches to return (default 5)."`
	MinScore        float64     `json:"minScore,omitempty" jsonschema:"Minimum confidence score to include a match (default 0.3)."`
	ExcludeSameShow bool        `json:"excludeSameShow,omitempty" jsonschema:"Skip candidates from the source episode's own show."`
}

// SuggestCasesArgs represents the arguments for the suggest_case_matches tool.
type SuggestCasesArgs struct {
	ProjectArgs ProjectArgs `json:"projectArgs,omitempty" jsonschema:"Project context for the operation."`
	EpisodeID   string      `json:"episodeId" jsonschema:"Id of the source episode."`
	MaxResults  int         `json:"maxResults,omitempty" jsonschema:"Maximum number of suggestions to return (default 5)."`
}

// RelatedResult is the structured payload of the ranking tools.
type RelatedResult struct {
	Source  Episode       `json:"source"`
	Matches []MatchResult `json:"matches"`
}

// EpisodesResult is the structured payload of the listing and search tools.
type EpisodesResult struct {
	Episodes []Episode `json:"episodes"`
}

// ExtractTermsArgs represents the arguments for the extract_terms tool.
type ExtractTermsArgs struct {
	Text string `json:"text" jsonschema:"Free text to extract names, locations and years from."`
}

// TermsResult is the structured payload of extract_terms.
type TermsResult struct {
	Names     []string `json:"names"`
	Locations []string `json:"locations"`
	Years     []string `json:"years"`
}

// DecideMatchArgs represents the arguments for confirm_match and reject_match.
type DecideMatchArgs struct {
	ProjectArgs ProjectArgs `json:"projectArgs,omitempty" jsonschema:"Project context for the operation."`
	EpisodeA    string      `json:"episodeA" jsonschema:"One episode id of the pair."`
	EpisodeB    string      `json:"episodeB" jsonschema:"The other episode id of the pair."`
	Score       float64     `json:"score,omitempty" jsonschema:"Score of the suggestion being decided, if known."`
	Reason      string      `json:"reason,omitempty" jsonschema:"Reason string of the suggestion being decided, if known."`
}

// MarkViewedArgs represents the arguments for the mark_viewed tool.
type MarkViewedArgs struct {
	ProjectArgs ProjectArgs `json:"projectArgs,omitempty" jsonschema:"Project context for the operation."`
	EpisodeID   string      `json:"episodeId" jsonschema:"The episode to flag."`
	Viewed      bool        `json:"viewed" jsonschema:"New viewed state."`
}

// MarkViewedResult reports every episode whose flag changed, including those
// reached through confirmed matches.
type MarkViewedResult struct {
	EpisodeIDs []string `json:"episodeIds"`
	Viewed     bool     `json:"viewed"`
}

// Health
type HealthArgs struct{}

type HealthResult struct {
	Name         string `json:"name"`
	Version      string `json:"version"`
	Revision     string `json:"revision"`
	BuildDate    string `json:"buildDate"`
	MultiProject bool   `json:"multiProject"`
}
