// Package snapshot loads episode catalogs exported from the web app as JSON
// files and can keep a project in sync when the file changes on disk.
package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/crimewebhq/crimeweb-go/internal/apptype"
)

// episodeRecord is the on-disk shape. Air dates are plain dates, not
// timestamps, so we parse them ourselves.
type episodeRecord struct {
	ID            string `json:"id"`
	ShowID        string `json:"showId"`
	ShowName      string `json:"showName"`
	Title         string `json:"title"`
	Overview      string `json:"overview"`
	AirDate       string `json:"airDate"`
	SeasonNumber  int    `json:"seasonNumber"`
	EpisodeNumber int    `json:"episodeNumber"`
	StillPath     string `json:"stillPath"`
}

type snapshotFile struct {
	Episodes []episodeRecord `json:"episodes"`
}

// Load reads a snapshot file. The file is either a bare JSON array of
// episodes or an object with an "episodes" key. Records without an id are
// assigned one.
func Load(path string) ([]apptype.Episode, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes snapshot bytes. See Load for the accepted shapes.
func Parse(data []byte) ([]apptype.Episode, error) {
	var records []episodeRecord
	if err := json.Unmarshal(data, &records); err != nil {
		var file snapshotFile
		if err2 := json.Unmarshal(data, &file); err2 != nil {
			return nil, fmt.Errorf("snapshot is neither an episode array nor an episodes object: %w", err)
		}
		records = file.Episodes
	}

	episodes := make([]apptype.Episode, 0, len(records))
	for i, r := range records {
		if strings.TrimSpace(r.Title) == "" {
			return nil, fmt.Errorf("snapshot record %d has no title", i)
		}
		ep := apptype.Episode{
			ID:            r.ID,
			ShowID:        r.ShowID,
			ShowName:      r.ShowName,
			Title:         r.Title,
			Overview:      r.Overview,
			SeasonNumber:  r.SeasonNumber,
			EpisodeNumber: r.EpisodeNumber,
			StillPath:     r.StillPath,
		}
		if ep.ID == "" {
			ep.ID = uuid.NewString()
		}
		if r.AirDate != "" {
			t, err := parseAirDate(r.AirDate)
			if err != nil {
				return nil, fmt.Errorf("snapshot record %q has bad air date %q: %w", ep.ID, r.AirDate, err)
			}
			ep.AirDate = &t
		}
		episodes = append(episodes, ep)
	}
	return episodes, nil
}

func parseAirDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
