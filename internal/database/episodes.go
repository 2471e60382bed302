package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/crimewebhq/crimeweb-go/internal/apptype"
	"github.com/crimewebhq/crimeweb-go/internal/metrics"
)

const airDateLayout = "2006-01-02"

const episodeColumns = "id, show_id, show_name, title, overview, air_date, season_number, episode_number, still_path"

// UpsertEpisodes creates or updates episodes, one transaction per episode so
// a bad record in a snapshot does not abort the whole import.
func (dm *DBManager) UpsertEpisodes(ctx context.Context, projectName string, episodes []apptype.Episode) error {
	done := metrics.TimeOp("upsert_episodes")
	success := false
	defer func() { done(success) }()

	db, err := dm.getDB(projectName)
	if err != nil {
		return err
	}

	for _, ep := range episodes {
		if strings.TrimSpace(ep.ID) == "" {
			return fmt.Errorf("episode id must be a non-empty string")
		}
		if strings.TrimSpace(ep.Title) == "" {
			return fmt.Errorf("episode %q must have a title", ep.ID)
		}

		tx, err := db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("failed to begin transaction for episode %q: %w", ep.ID, err)
		}

		airDate := airDateValue(ep.AirDate)
		result, uErr := tx.ExecContext(ctx,
			`UPDATE episodes SET show_id = ?, show_name = ?, title = ?, overview = ?,
                air_date = ?, season_number = ?, episode_number = ?, still_path = ?
             WHERE id = ?`,
			ep.ShowID, ep.ShowName, ep.Title, ep.Overview, airDate,
			ep.SeasonNumber, ep.EpisodeNumber, ep.StillPath, ep.ID)
		if uErr != nil {
			tx.Rollback()
			return fmt.Errorf("failed to update episode %q: %w", ep.ID, uErr)
		}

		rowsAffected, raErr := result.RowsAffected()
		if raErr != nil {
			tx.Rollback()
			return fmt.Errorf("failed to get rows affected for update: %w", raErr)
		}

		if rowsAffected == 0 {
			_, iErr := tx.ExecContext(ctx,
				`INSERT INTO episodes (id, show_id, show_name, title, overview, air_date,
                    season_number, episode_number, still_path)
                 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				ep.ID, ep.ShowID, ep.ShowName, ep.Title, ep.Overview, airDate,
				ep.SeasonNumber, ep.EpisodeNumber, ep.StillPath)
			if iErr != nil {
				tx.Rollback()
				return fmt.Errorf("failed to insert episode %q: %w", ep.ID, iErr)
			}
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit episode %q: %w", ep.ID, err)
		}
	}

	success = true
	return nil
}

// GetEpisode retrieves a single episode by id
func (dm *DBManager) GetEpisode(ctx context.Context, projectName string, id string) (*apptype.Episode, error) {
	done := metrics.TimeOp("get_episode")
	success := false
	defer func() { done(success) }()

	db, err := dm.getDB(projectName)
	if err != nil {
		return nil, err
	}

	stmt, err := dm.getPreparedStmt(ctx, projectName, db,
		"SELECT "+episodeColumns+" FROM episodes WHERE id = ?")
	if err != nil {
		return nil, err
	}

	ep, err := scanEpisode(stmt.QueryRowContext(ctx, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("episode not found: %s", id)
		}
		return nil, fmt.Errorf("failed to scan episode: %w", err)
	}

	success = true
	return ep, nil
}

// ListEpisodes returns episodes ordered by show, season, and episode number.
// showID restricts the listing when non-empty.
func (dm *DBManager) ListEpisodes(ctx context.Context, projectName string, showID string, limit, offset int) ([]apptype.Episode, error) {
	done := metrics.TimeOp("list_episodes")
	success := false
	defer func() { done(success) }()

	db, err := dm.getDB(projectName)
	if err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	var rows *sql.Rows
	if showID != "" {
		rows, err = db.QueryContext(ctx,
			"SELECT "+episodeColumns+` FROM episodes WHERE show_id = ?
             ORDER BY show_name, season_number, episode_number LIMIT ? OFFSET ?`,
			showID, limit, offset)
	} else {
		rows, err = db.QueryContext(ctx,
			"SELECT "+episodeColumns+` FROM episodes
             ORDER BY show_name, season_number, episode_number LIMIT ? OFFSET ?`,
			limit, offset)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query episodes: %w", err)
	}
	defer rows.Close()

	episodes, err := collectEpisodes(rows)
	if err != nil {
		return nil, err
	}
	success = true
	return episodes, nil
}

// AllEpisodes returns the full corpus for a project, the candidate pool of a
// ranking call.
func (dm *DBManager) AllEpisodes(ctx context.Context, projectName string) ([]apptype.Episode, error) {
	done := metrics.TimeOp("all_episodes")
	success := false
	defer func() { done(success) }()

	db, err := dm.getDB(projectName)
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, "SELECT "+episodeColumns+" FROM episodes ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to query corpus: %w", err)
	}
	defer rows.Close()

	episodes, err := collectEpisodes(rows)
	if err != nil {
		return nil, err
	}
	success = true
	return episodes, nil
}

// DeleteEpisode deletes an episode and all associated data
func (dm *DBManager) DeleteEpisode(ctx context.Context, projectName string, id string) error {
	done := metrics.TimeOp("delete_episode")
	success := false
	defer func() { done(success) }()

	db, err := dm.getDB(projectName)
	if err != nil {
		return err
	}

	if id == "" {
		return fmt.Errorf("episode id cannot be empty")
	}

	row := db.QueryRowContext(ctx, "SELECT id FROM episodes WHERE id = ?", id)
	var existing string
	if err := row.Scan(&existing); err != nil {
		if err == sql.ErrNoRows {
			return fmt.Errorf("episode not found: %s", id)
		}
		return fmt.Errorf("failed to check episode existence: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, "DELETE FROM episode_views WHERE episode_id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete viewed flag: %w", err)
	}

	_, err = tx.ExecContext(ctx, "DELETE FROM match_decisions WHERE episode_a = ? OR episode_b = ?", id, id)
	if err != nil {
		return fmt.Errorf("failed to delete decisions: %w", err)
	}

	_, err = tx.ExecContext(ctx, "DELETE FROM episodes WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete episode: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	success = true
	return nil
}

// rowScanner covers *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanEpisode(row rowScanner) (*apptype.Episode, error) {
	var (
		ep      apptype.Episode
		airDate sql.NullString
	)
	if err := row.Scan(&ep.ID, &ep.ShowID, &ep.ShowName, &ep.Title, &ep.Overview,
		&airDate, &ep.SeasonNumber, &ep.EpisodeNumber, &ep.StillPath); err != nil {
		return nil, err
	}
	if airDate.Valid && airDate.String != "" {
		if t, err := time.Parse(airDateLayout, airDate.String); err == nil {
			ep.AirDate = &t
		} else {
			// Malformed dates are tolerated; the ranker treats them as absent.
			log.Printf("Warning: ignoring malformed air date %q for episode %s", airDate.String, ep.ID)
		}
	}
	return &ep, nil
}

func collectEpisodes(rows *sql.Rows) ([]apptype.Episode, error) {
	var episodes []apptype.Episode
	for rows.Next() {
		ep, err := scanEpisode(rows)
		if err != nil {
			log.Printf("Warning: Failed to scan episode row: %v", err)
			continue
		}
		episodes = append(episodes, *ep)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating episodes: %w", err)
	}
	return episodes, nil
}

func airDateValue(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.Format(airDateLayout)
}
