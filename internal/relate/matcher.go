package relate

import (
	"sync"

	"github.com/crimewebhq/crimeweb-go/internal/apptype"
	"github.com/crimewebhq/crimeweb-go/internal/extract"
)

// Matcher is a FindRelated/Score front end with a per-episode-id term
// cache. Extraction is recomputed on every bare call; for repeated ranking
// over the same stored corpus the cache avoids rescanning unchanged text.
// It is a pure cache: results are identical with or without it, and there
// is no invalidation because stored episode text is immutable for the
// lifetime of a process run.
type Matcher struct {
	mu    sync.RWMutex
	terms map[string]apptype.ExtractedTerms
}

// NewMatcher returns a Matcher with an empty cache.
func NewMatcher() *Matcher {
	return &Matcher{terms: make(map[string]apptype.ExtractedTerms)}
}

// termsFor returns the episode's extracted terms, consulting the cache for
// episodes that carry an id.
func (m *Matcher) termsFor(e apptype.Episode) apptype.ExtractedTerms {
	if e.ID == "" {
		return extract.EpisodeTerms(e)
	}

	m.mu.RLock()
	t, ok := m.terms[e.ID]
	m.mu.RUnlock()
	if ok {
		return t
	}

	t = extract.EpisodeTerms(e)
	m.mu.Lock()
	m.terms[e.ID] = t
	m.mu.Unlock()
	return t
}

// Score computes (score, reason) for a pair using cached terms.
func (m *Matcher) Score(source, candidate apptype.Episode) (float64, string) {
	if source.ID == candidate.ID {
		return 0, ""
	}
	return scoreTerms(m.termsFor(source), m.termsFor(candidate))
}

// FindRelated ranks pool against source using cached terms.
func (m *Matcher) FindRelated(source apptype.Episode, pool []apptype.Episode, opts apptype.MatchOptions) []apptype.MatchResult {
	return rank(source, pool, opts, m.Score)
}
