package apptype

import "time"

// Episode represents one aired installment of a show as known to the matcher.
// The matcher never mutates episodes; they are supplied by the caller.
type Episode struct {
	ID            string     `json:"id"`
	ShowID        string     `json:"showId"`
	ShowName      string     `json:"showName"`
	Title         string     `json:"title"`
	Overview      string     `json:"overview,omitempty"`
	AirDate       *time.Time `json:"airDate,omitempty"`
	SeasonNumber  int        `json:"seasonNumber"`
	EpisodeNumber int        `json:"episodeNumber"`
	StillPath     string     `json:"stillPath,omitempty"`
}

// Text returns the blob the extractor runs over: title plus overview.
func (e Episode) Text() string {
	if e.Overview == "" {
		return e.Title
	}
	return e.Title + " " + e.Overview
}

// ExtractedTerms holds the normalized entities pulled out of one text blob.
// All members are lowercase; uniqueness is exact string equality.
type ExtractedTerms struct {
	Names     map[string]struct{}
	Locations map[string]struct{}
	Years     map[string]struct{}
}

// NewExtractedTerms returns an empty term set.
func NewExtractedTerms() ExtractedTerms {
	return ExtractedTerms{
		Names:     make(map[string]struct{}),
		Locations: make(map[string]struct{}),
		Years:     make(map[string]struct{}),
	}
}

// MatchResult is one scored relationship between a source episode and a
// candidate. Candidate display fields are copied through unchanged.
type MatchResult struct {
	EpisodeID     string     `json:"episodeId"`
	ShowID        string     `json:"showId"`
	ShowName      string     `json:"showName"`
	Title         string     `json:"title"`
	Overview      string     `json:"overview,omitempty"`
	AirDate       *time.Time `json:"airDate,omitempty"`
	SeasonNumber  int        `json:"seasonNumber"`
	EpisodeNumber int        `json:"episodeNumber"`
	StillPath     string     `json:"stillPath,omitempty"`
	Score         float64    `json:"score"`
	Reason        string     `json:"reason"`
}

// MatchOptions controls a ranking call.
type MatchOptions struct {
	MaxResults      int     `json:"maxResults,omitempty"`
	MinScore        float64 `json:"minScore,omitempty"`
	ExcludeSameShow bool    `json:"excludeSameShow,omitempty"`
}

// Ranker defaults.
const (
	DefaultMaxResults = 5
	DefaultMinScore   = 0.3
)

// WithFallback fills zero-valued options from d. Fields still zero
// afterwards fall through to Normalize's compiled-in defaults.
func (o MatchOptions) WithFallback(d MatchOptions) MatchOptions {
	if o.MaxResults <= 0 {
		o.MaxResults = d.MaxResults
	}
	if o.MinScore <= 0 {
		o.MinScore = d.MinScore
	}
	if !o.ExcludeSameShow {
		o.ExcludeSameShow = d.ExcludeSameShow
	}
	return o
}

// Normalize fills zero-valued options with their defaults.
func (o MatchOptions) Normalize() MatchOptions {
	if o.MaxResults <= 0 {
		o.MaxResults = DefaultMaxResults
	}
	if o.MinScore <= 0 {
		o.MinScore = DefaultMinScore
	}
	return o
}

// Decision is a persisted user verdict on a suggested match pair.
type Decision struct {
	PairKey   string    `json:"pairKey"`
	EpisodeA  string    `json:"episodeA"`
	EpisodeB  string    `json:"episodeB"`
	Decision  string    `json:"decision"`
	Score     float64   `json:"score"`
	Reason    string    `json:"reason,omitempty"`
	DecidedAt time.Time `json:"decidedAt"`
}

// Decision verdicts.
const (
	DecisionConfirmed = "confirmed"
	DecisionRejected  = "rejected"
)
