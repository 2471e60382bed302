package database

// schema is the DDL applied to every project database on first open.
var schema = []string{
	// Episode corpus, mirrored from the metadata layer's snapshot
	`CREATE TABLE IF NOT EXISTS episodes (
        id TEXT PRIMARY KEY,
        show_id TEXT NOT NULL,
        show_name TEXT NOT NULL,
        title TEXT NOT NULL,
        overview TEXT NOT NULL DEFAULT '',
        air_date TEXT,
        season_number INTEGER NOT NULL DEFAULT 0,
        episode_number INTEGER NOT NULL DEFAULT 0,
        still_path TEXT NOT NULL DEFAULT '',
        created_at DATETIME DEFAULT CURRENT_TIMESTAMP
    )`,

	// User verdicts on suggested matches, keyed order-independently
	`CREATE TABLE IF NOT EXISTS match_decisions (
        pair_key TEXT PRIMARY KEY,
        episode_a TEXT NOT NULL,
        episode_b TEXT NOT NULL,
        decision TEXT NOT NULL CHECK (decision IN ('confirmed', 'rejected')),
        score REAL NOT NULL DEFAULT 0,
        reason TEXT NOT NULL DEFAULT '',
        decided_at DATETIME DEFAULT CURRENT_TIMESTAMP,
        FOREIGN KEY (episode_a) REFERENCES episodes(id),
        FOREIGN KEY (episode_b) REFERENCES episodes(id)
    )`,

	// Per-episode viewed flags
	`CREATE TABLE IF NOT EXISTS episode_views (
        episode_id TEXT PRIMARY KEY,
        viewed INTEGER NOT NULL DEFAULT 0,
        viewed_at DATETIME,
        FOREIGN KEY (episode_id) REFERENCES episodes(id)
    )`,

	// Create indexes
	`CREATE INDEX IF NOT EXISTS idx_episodes_show ON episodes(show_id)`,
	`CREATE INDEX IF NOT EXISTS idx_episodes_air_date ON episodes(air_date)`,
	`CREATE INDEX IF NOT EXISTS idx_episodes_created_at ON episodes(created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_decisions_a ON match_decisions(episode_a)`,
	`CREATE INDEX IF NOT EXISTS idx_decisions_b ON match_decisions(episode_b)`,
	`CREATE INDEX IF NOT EXISTS idx_decisions_verdict ON match_decisions(decision)`,
}

// ftsSchema sets up the optional FTS5 mirror of episode text, applied only
// when the driver supports fts5 virtual tables.
var ftsSchema = []string{
	`CREATE VIRTUAL TABLE IF NOT EXISTS fts_episodes USING fts5(
        id UNINDEXED,
        title,
        overview
    )`,
	`CREATE TRIGGER IF NOT EXISTS trg_episodes_ai AFTER INSERT ON episodes BEGIN
        INSERT INTO fts_episodes(id, title, overview) VALUES (new.id, new.title, new.overview);
    END`,
	`CREATE TRIGGER IF NOT EXISTS trg_episodes_ad AFTER DELETE ON episodes BEGIN
        DELETE FROM fts_episodes WHERE id = old.id;
    END`,
	`CREATE TRIGGER IF NOT EXISTS trg_episodes_au AFTER UPDATE ON episodes BEGIN
        DELETE FROM fts_episodes WHERE id = old.id;
        INSERT INTO fts_episodes(id, title, overview) VALUES (new.id, new.title, new.overview);
    END`,
}
