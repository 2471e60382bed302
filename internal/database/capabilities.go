package database

import (
	"context"
	"database/sql"
	"time"
)

// capFlags stores capability detection for a specific project/DB handle
type capFlags struct {
	checked bool
	fts5    bool
}

// detectCapabilitiesForProject probes FTS5 support for the project's handle
// and, when present, ensures the episode FTS mirror and its triggers exist.
func (dm *DBManager) detectCapabilitiesForProject(ctx context.Context, projectName string, db *sql.DB) {
	dm.capMu.RLock()
	caps, ok := dm.capsByProject[projectName]
	dm.capMu.RUnlock()
	if ok && caps.checked {
		return
	}

	// Detect FTS5 support by attempting to create a temporary virtual table
	ctx2, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
	defer cancel()
	if _, err := db.ExecContext(ctx2, "CREATE VIRTUAL TABLE IF NOT EXISTS temp._fts5_probe USING fts5(x)"); err == nil {
		// Clean up probe table
		_, _ = db.ExecContext(ctx2, "DROP TABLE IF EXISTS temp._fts5_probe")
		caps.fts5 = true
		// Ensure FTS schema/triggers exist for episodes
		if ferr := dm.ensureFTSSchema(context.Background(), db); ferr != nil {
			caps.fts5 = false
		}
		// Verify FTS table exists; if not, disable FTS capability
		if caps.fts5 {
			if _, verr := db.ExecContext(context.Background(), "SELECT 1 FROM fts_episodes WHERE 1=0"); verr != nil {
				caps.fts5 = false
			}
		}
	} else {
		caps.fts5 = false
	}
	caps.checked = true

	dm.capMu.Lock()
	dm.capsByProject[projectName] = caps
	dm.capMu.Unlock()
}

// ensureFTSSchema applies the FTS mirror DDL.
func (dm *DBManager) ensureFTSSchema(ctx context.Context, db *sql.DB) error {
	for _, statement := range ftsSchema {
		if _, err := db.ExecContext(ctx, statement); err != nil {
			return err
		}
	}
	return nil
}

// hasFTS reports whether the project's DB handle supports FTS5 search.
func (dm *DBManager) hasFTS(projectName string) bool {
	dm.capMu.RLock()
	defer dm.capMu.RUnlock()
	return dm.capsByProject[projectName].fts5
}
