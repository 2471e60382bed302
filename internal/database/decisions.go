package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/crimewebhq/crimeweb-go/internal/apptype"
	"github.com/crimewebhq/crimeweb-go/internal/metrics"
)

// PairKey returns the canonical key for an unordered episode pair. Both
// orderings of the same two ids map to the same key.
func PairKey(a, b string) string {
	if a > b {
		a, b = b, a
	}
	return a + "|" + b
}

// SaveDecision records a curator verdict for an episode pair, replacing any
// earlier verdict for the same pair.
func (dm *DBManager) SaveDecision(ctx context.Context, projectName string, d apptype.Decision) error {
	done := metrics.TimeOp("save_decision")
	success := false
	defer func() { done(success) }()

	if d.EpisodeA == "" || d.EpisodeB == "" {
		return fmt.Errorf("decision requires two episode ids")
	}
	if d.EpisodeA == d.EpisodeB {
		return fmt.Errorf("cannot decide a match of an episode with itself")
	}
	if d.Decision != apptype.DecisionConfirmed && d.Decision != apptype.DecisionRejected {
		return fmt.Errorf("unknown decision %q", d.Decision)
	}

	db, err := dm.getDB(projectName)
	if err != nil {
		return err
	}

	// Both episodes must exist before a verdict can reference them.
	for _, id := range []string{d.EpisodeA, d.EpisodeB} {
		var existing string
		if err := db.QueryRowContext(ctx, "SELECT id FROM episodes WHERE id = ?", id).Scan(&existing); err != nil {
			if err == sql.ErrNoRows {
				return fmt.Errorf("episode not found: %s", id)
			}
			return fmt.Errorf("failed to check episode existence: %w", err)
		}
	}

	a, b := d.EpisodeA, d.EpisodeB
	if a > b {
		a, b = b, a
	}

	_, err = db.ExecContext(ctx,
		`INSERT INTO match_decisions (pair_key, episode_a, episode_b, decision, score, reason)
         VALUES (?, ?, ?, ?, ?, ?)
         ON CONFLICT(pair_key) DO UPDATE SET
             decision = excluded.decision,
             score = excluded.score,
             reason = excluded.reason,
             decided_at = CURRENT_TIMESTAMP`,
		PairKey(a, b), a, b, d.Decision, d.Score, d.Reason)
	if err != nil {
		return fmt.Errorf("failed to save decision: %w", err)
	}

	success = true
	return nil
}

// GetDecision returns the recorded verdict for a pair, or nil when the pair
// is undecided.
func (dm *DBManager) GetDecision(ctx context.Context, projectName string, a, b string) (*apptype.Decision, error) {
	done := metrics.TimeOp("get_decision")
	success := false
	defer func() { done(success) }()

	db, err := dm.getDB(projectName)
	if err != nil {
		return nil, err
	}

	stmt, err := dm.getPreparedStmt(ctx, projectName, db,
		"SELECT episode_a, episode_b, decision, score, reason FROM match_decisions WHERE pair_key = ?")
	if err != nil {
		return nil, err
	}

	var d apptype.Decision
	err = stmt.QueryRowContext(ctx, PairKey(a, b)).Scan(&d.EpisodeA, &d.EpisodeB, &d.Decision, &d.Score, &d.Reason)
	if err != nil {
		if err == sql.ErrNoRows {
			success = true
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan decision: %w", err)
	}
	d.PairKey = PairKey(d.EpisodeA, d.EpisodeB)

	success = true
	return &d, nil
}

// ListDecisions returns verdicts, optionally filtered to those touching one
// episode.
func (dm *DBManager) ListDecisions(ctx context.Context, projectName string, episodeID string) ([]apptype.Decision, error) {
	done := metrics.TimeOp("list_decisions")
	success := false
	defer func() { done(success) }()

	db, err := dm.getDB(projectName)
	if err != nil {
		return nil, err
	}

	var rows *sql.Rows
	if episodeID != "" {
		rows, err = db.QueryContext(ctx,
			`SELECT episode_a, episode_b, decision, score, reason FROM match_decisions
             WHERE episode_a = ? OR episode_b = ? ORDER BY decided_at DESC`,
			episodeID, episodeID)
	} else {
		rows, err = db.QueryContext(ctx,
			"SELECT episode_a, episode_b, decision, score, reason FROM match_decisions ORDER BY decided_at DESC")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query decisions: %w", err)
	}
	defer rows.Close()

	var decisions []apptype.Decision
	for rows.Next() {
		var d apptype.Decision
		if err := rows.Scan(&d.EpisodeA, &d.EpisodeB, &d.Decision, &d.Score, &d.Reason); err != nil {
			log.Printf("Warning: Failed to scan decision row: %v", err)
			continue
		}
		d.PairKey = PairKey(d.EpisodeA, d.EpisodeB)
		decisions = append(decisions, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating decisions: %w", err)
	}

	success = true
	return decisions, nil
}

// confirmedNeighbors returns the ids directly linked to episodeID by a
// confirmed verdict.
func (dm *DBManager) confirmedNeighbors(ctx context.Context, projectName string, db *sql.DB, episodeID string) ([]string, error) {
	stmt, err := dm.getPreparedStmt(ctx, projectName, db,
		`SELECT episode_a, episode_b FROM match_decisions
         WHERE decision = 'confirmed' AND (episode_a = ? OR episode_b = ?)`)
	if err != nil {
		return nil, err
	}

	rows, err := stmt.QueryContext(ctx, episodeID, episodeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query confirmed links: %w", err)
	}
	defer rows.Close()

	var neighbors []string
	for rows.Next() {
		var a, b string
		if err := rows.Scan(&a, &b); err != nil {
			return nil, fmt.Errorf("failed to scan confirmed link: %w", err)
		}
		if a == episodeID {
			neighbors = append(neighbors, b)
		} else {
			neighbors = append(neighbors, a)
		}
	}
	return neighbors, rows.Err()
}
