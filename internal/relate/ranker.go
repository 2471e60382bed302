package relate

import (
	"sort"
	"time"

	"github.com/crimewebhq/crimeweb-go/internal/apptype"
)

// tieBand is the score window within which two results count as tied and
// fall back to air date ordering. Heuristic scores this close are not a
// meaningful ranking signal on their own.
const tieBand = 0.05

// FindRelated ranks pool against source and returns at most
// opts.MaxResults matches scoring at least opts.MinScore. Pure function of
// its inputs; an empty pool yields an empty slice.
func FindRelated(source apptype.Episode, pool []apptype.Episode, opts apptype.MatchOptions) []apptype.MatchResult {
	return rank(source, pool, opts, func(s, c apptype.Episode) (float64, string) {
		return ScoreEpisodes(s, c)
	})
}

// rank applies score across the pool, filters, sorts, and truncates.
func rank(source apptype.Episode, pool []apptype.Episode, opts apptype.MatchOptions, score func(s, c apptype.Episode) (float64, string)) []apptype.MatchResult {
	opts = opts.Normalize()

	results := make([]apptype.MatchResult, 0, len(pool))
	for _, candidate := range pool {
		if candidate.ID == source.ID {
			continue
		}
		if opts.ExcludeSameShow && candidate.ShowID == source.ShowID {
			continue
		}
		s, reason := score(source, candidate)
		if s < opts.MinScore {
			continue
		}
		results = append(results, toMatchResult(candidate, s, reason))
	}

	sortResults(results)

	if len(results) > opts.MaxResults {
		results = results[:opts.MaxResults]
	}
	return results
}

// sortResults orders by score descending; scores within tieBand of each
// other, band edge included, are broken by air date descending, missing
// dates sorting oldest.
func sortResults(results []apptype.MatchResult) {
	sort.SliceStable(results, func(i, j int) bool {
		di := results[i].Score - results[j].Score
		if di >= -tieBand && di <= tieBand {
			return airTime(results[i].AirDate).After(airTime(results[j].AirDate))
		}
		return results[i].Score > results[j].Score
	})
}

func airTime(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}

func toMatchResult(c apptype.Episode, score float64, reason string) apptype.MatchResult {
	return apptype.MatchResult{
		EpisodeID:     c.ID,
		ShowID:        c.ShowID,
		ShowName:      c.ShowName,
		Title:         c.Title,
		Overview:      c.Overview,
		AirDate:       c.AirDate,
		SeasonNumber:  c.SeasonNumber,
		EpisodeNumber: c.EpisodeNumber,
		StillPath:     c.StillPath,
		Score:         score,
		Reason:        reason,
	}
}
