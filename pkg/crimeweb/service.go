// Package crimeweb provides a library-first API for the episode relatedness
// engine without MCP transport: import a catalog, find related episodes,
// record verdicts, and flag clusters as viewed.
package crimeweb

import (
	"context"
	"fmt"

	"github.com/crimewebhq/crimeweb-go/internal/apptype"
	"github.com/crimewebhq/crimeweb-go/internal/database"
	"github.com/crimewebhq/crimeweb-go/internal/extract"
	"github.com/crimewebhq/crimeweb-go/internal/relate"
)

// Re-exported types so library users avoid importing internal packages.
type (
	Episode      = apptype.Episode
	MatchResult  = apptype.MatchResult
	MatchOptions = apptype.MatchOptions
	Decision     = apptype.Decision
)

// Service wires the store and the matcher together.
type Service struct {
	db      *database.DBManager
	matcher *relate.Matcher
}

// NewService constructs a Service with the provided config. A nil config
// falls back to environment-driven defaults.
func NewService(cfg *Config) (*Service, error) {
	var internal *database.Config
	if cfg != nil {
		internal = cfg.toInternal()
	} else {
		internal = database.NewConfig()
	}
	dm, err := database.NewDBManager(internal)
	if err != nil {
		return nil, err
	}
	return &Service{db: dm, matcher: relate.NewMatcher()}, nil
}

// Close releases resources.
func (s *Service) Close() error { return s.db.Close() }

// ImportEpisodes creates or updates episodes.
func (s *Service) ImportEpisodes(ctx context.Context, project string, episodes []Episode) error {
	return s.db.UpsertEpisodes(ctx, project, episodes)
}

// GetEpisode fetches one episode by id.
func (s *Service) GetEpisode(ctx context.Context, project, id string) (*Episode, error) {
	return s.db.GetEpisode(ctx, project, id)
}

// ListEpisodes lists episodes, optionally restricted to a show.
func (s *Service) ListEpisodes(ctx context.Context, project, showID string, limit, offset int) ([]Episode, error) {
	return s.db.ListEpisodes(ctx, project, showID, limit, offset)
}

// DeleteEpisode removes an episode and its verdicts and viewed flag.
func (s *Service) DeleteEpisode(ctx context.Context, project, id string) error {
	return s.db.DeleteEpisode(ctx, project, id)
}

// SearchEpisodes runs a text search over titles and overviews.
func (s *Service) SearchEpisodes(ctx context.Context, project, query string, limit, offset int) ([]Episode, error) {
	return s.db.SearchEpisodes(ctx, project, query, limit, offset)
}

// FindRelated ranks the stored corpus against the given source episode.
func (s *Service) FindRelated(ctx context.Context, project string, source Episode, opts MatchOptions) ([]MatchResult, error) {
	pool, err := s.db.AllEpisodes(ctx, project)
	if err != nil {
		return nil, err
	}
	return s.matcher.FindRelated(source, pool, opts), nil
}

// FindRelatedByID resolves the source episode from the store and ranks
// everything else against it.
func (s *Service) FindRelatedByID(ctx context.Context, project, episodeID string, opts MatchOptions) (*Episode, []MatchResult, error) {
	source, err := s.db.GetEpisode(ctx, project, episodeID)
	if err != nil {
		return nil, nil, err
	}
	matches, err := s.FindRelated(ctx, project, *source, opts)
	if err != nil {
		return nil, nil, err
	}
	return source, matches, nil
}

// SuggestCases runs the title-only reduced matcher for an episode without an
// overview yet.
func (s *Service) SuggestCases(ctx context.Context, project, episodeID string, maxResults int) (*Episode, []MatchResult, error) {
	source, err := s.db.GetEpisode(ctx, project, episodeID)
	if err != nil {
		return nil, nil, err
	}
	pool, err := s.db.AllEpisodes(ctx, project)
	if err != nil {
		return nil, nil, err
	}
	return source, relate.SuggestCases(*source, pool, maxResults), nil
}

// Score returns the pairwise score and reason for two episodes.
func (s *Service) Score(source, candidate Episode) (float64, string) {
	return s.matcher.Score(source, candidate)
}

// ExtractTerms pulls names, locations and years out of free text.
func (s *Service) ExtractTerms(text string) (names, locations, years []string) {
	terms := extract.Terms(text)
	return extract.SortedSet(terms.Names), extract.SortedSet(terms.Locations), extract.SortedSet(terms.Years)
}

// ConfirmMatch records a confirmed verdict for a pair.
func (s *Service) ConfirmMatch(ctx context.Context, project, a, b string, score float64, reason string) error {
	return s.saveDecision(ctx, project, a, b, apptype.DecisionConfirmed, score, reason)
}

// RejectMatch records a rejected verdict for a pair.
func (s *Service) RejectMatch(ctx context.Context, project, a, b string, score float64, reason string) error {
	return s.saveDecision(ctx, project, a, b, apptype.DecisionRejected, score, reason)
}

func (s *Service) saveDecision(ctx context.Context, project, a, b, verdict string, score float64, reason string) error {
	if err := s.db.SaveDecision(ctx, project, apptype.Decision{
		EpisodeA: a,
		EpisodeB: b,
		Decision: verdict,
		Score:    score,
		Reason:   reason,
	}); err != nil {
		return fmt.Errorf("failed to record %s verdict: %w", verdict, err)
	}
	return nil
}

// GetDecision returns the verdict for a pair, nil when undecided.
func (s *Service) GetDecision(ctx context.Context, project, a, b string) (*Decision, error) {
	return s.db.GetDecision(ctx, project, a, b)
}

// ListDecisions returns verdicts, optionally filtered to one episode.
func (s *Service) ListDecisions(ctx context.Context, project, episodeID string) ([]Decision, error) {
	return s.db.ListDecisions(ctx, project, episodeID)
}

// MarkViewed sets the viewed flag on an episode and every episode linked to
// it through confirmed verdicts. Returns the ids whose flag changed.
func (s *Service) MarkViewed(ctx context.Context, project, episodeID string, viewed bool) ([]string, error) {
	return s.db.SetViewed(ctx, project, episodeID, viewed)
}

// IsViewed reports the viewed flag of one episode.
func (s *Service) IsViewed(ctx context.Context, project, episodeID string) (bool, error) {
	return s.db.GetViewed(ctx, project, episodeID)
}
