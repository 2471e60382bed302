package database

import (
	"context"
	"database/sql"
	"fmt"
	"sort"

	"github.com/crimewebhq/crimeweb-go/internal/metrics"
)

// SetViewed flags an episode as viewed and propagates the flag across the
// cluster of episodes reachable through confirmed verdicts, so a curator who
// watched one telling of a case sees the whole cluster marked. Returns the
// ids whose flag actually changed, sorted.
func (dm *DBManager) SetViewed(ctx context.Context, projectName string, episodeID string, viewed bool) ([]string, error) {
	done := metrics.TimeOp("set_viewed")
	success := false
	defer func() { done(success) }()

	db, err := dm.getDB(projectName)
	if err != nil {
		return nil, err
	}

	var existing string
	if err := db.QueryRowContext(ctx, "SELECT id FROM episodes WHERE id = ?", episodeID).Scan(&existing); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("episode not found: %s", episodeID)
		}
		return nil, fmt.Errorf("failed to check episode existence: %w", err)
	}

	// BFS over confirmed verdicts from the seed episode.
	visited := map[string]struct{}{episodeID: {}}
	queue := []string{episodeID}
	for len(queue) > 0 {
		current := queue
		queue = nil
		for _, id := range current {
			neighbors, err := dm.confirmedNeighbors(ctx, projectName, db, id)
			if err != nil {
				return nil, err
			}
			for _, n := range neighbors {
				if _, ok := visited[n]; ok {
					continue
				}
				visited[n] = struct{}{}
				queue = append(queue, n)
			}
		}
	}

	cluster := make([]string, 0, len(visited))
	for id := range visited {
		cluster = append(cluster, id)
	}
	sort.Strings(cluster)

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	flag := 0
	if viewed {
		flag = 1
	}

	changed := make([]string, 0, len(cluster))
	for _, id := range cluster {
		var current sql.NullInt64
		err := tx.QueryRowContext(ctx, "SELECT viewed FROM episode_views WHERE episode_id = ?", id).Scan(&current)
		if err != nil && err != sql.ErrNoRows {
			return nil, fmt.Errorf("failed to read viewed flag for %s: %w", id, err)
		}
		if err == nil && current.Valid && int(current.Int64) == flag {
			continue
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO episode_views (episode_id, viewed, viewed_at)
             VALUES (?, ?, CURRENT_TIMESTAMP)
             ON CONFLICT(episode_id) DO UPDATE SET
                 viewed = excluded.viewed,
                 viewed_at = CURRENT_TIMESTAMP`,
			id, flag)
		if err != nil {
			return nil, fmt.Errorf("failed to set viewed flag for %s: %w", id, err)
		}
		changed = append(changed, id)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	success = true
	return changed, nil
}

// GetViewed reports whether an episode carries the viewed flag.
func (dm *DBManager) GetViewed(ctx context.Context, projectName string, episodeID string) (bool, error) {
	db, err := dm.getDB(projectName)
	if err != nil {
		return false, err
	}

	stmt, err := dm.getPreparedStmt(ctx, projectName, db,
		"SELECT viewed FROM episode_views WHERE episode_id = ?")
	if err != nil {
		return false, err
	}

	var flag int
	if err := stmt.QueryRowContext(ctx, episodeID).Scan(&flag); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("failed to read viewed flag: %w", err)
	}
	return flag == 1, nil
}
