package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/crimewebhq/crimeweb-go/internal/apptype"
	"github.com/crimewebhq/crimeweb-go/internal/metrics"
)

// SearchEpisodes runs a text search over episode titles and overviews. The
// FTS5 mirror is used when the libSQL build supports it; otherwise the query
// falls back to LIKE matching.
func (dm *DBManager) SearchEpisodes(ctx context.Context, projectName string, query string, limit, offset int) ([]apptype.Episode, error) {
	done := metrics.TimeOp("search_episodes")
	success := false
	defer func() { done(success) }()

	db, err := dm.getDB(projectName)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("search query cannot be empty")
	}
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	var rows *sql.Rows
	if dm.hasFTS(projectName) {
		stmt, perr := dm.getPreparedStmt(ctx, projectName, db,
			`SELECT e.`+strings.ReplaceAll(episodeColumns, ", ", ", e.")+`
             FROM fts_episodes f JOIN episodes e ON e.id = f.id
             WHERE fts_episodes MATCH ?
             ORDER BY rank LIMIT ? OFFSET ?`)
		if perr != nil {
			return nil, perr
		}
		rows, err = stmt.QueryContext(ctx, ftsQuery(query), limit, offset)
		if err != nil {
			// A query that trips the FTS5 parser still gets LIKE results.
			rows = nil
		}
	}
	if rows == nil {
		like := fmt.Sprintf("%%%s%%", query)
		stmt, perr := dm.getPreparedStmt(ctx, projectName, db,
			"SELECT "+episodeColumns+` FROM episodes
             WHERE title LIKE ? OR overview LIKE ?
             ORDER BY show_name, season_number, episode_number LIMIT ? OFFSET ?`)
		if perr != nil {
			return nil, perr
		}
		rows, err = stmt.QueryContext(ctx, like, like, limit, offset)
		if err != nil {
			return nil, fmt.Errorf("failed to execute episode search: %w", err)
		}
	}
	defer rows.Close()

	episodes, err := collectEpisodes(rows)
	if err != nil {
		return nil, err
	}
	success = true
	return episodes, nil
}

// ftsQuery quotes each term so user input cannot inject FTS5 operators.
func ftsQuery(query string) string {
	fields := strings.Fields(query)
	quoted := make([]string, 0, len(fields))
	for _, f := range fields {
		quoted = append(quoted, `"`+strings.ReplaceAll(f, `"`, `""`)+`"`)
	}
	return strings.Join(quoted, " ")
}
