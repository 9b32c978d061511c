// Package sqlite implements the SQLite storage backend supplying stash and
// pattern-catalog snapshots to the matching engine, plus the write surface
// the CLI needs to manage both.
package sqlite

// Schema DDL. Tables are created on Attach if missing; data persists across
// attaches.
const (
	createStashEntries = `CREATE TABLE IF NOT EXISTS stash_entries (
    entry_id TEXT PRIMARY KEY,
    user_id TEXT NOT NULL,
    weight_label TEXT NOT NULL,
    yardage REAL NOT NULL CHECK (yardage >= 0),
    created_at TEXT NOT NULL
);`

	createStashUserIndex = `CREATE INDEX IF NOT EXISTS idx_stash_user
    ON stash_entries(user_id);`

	createPatterns = `CREATE TABLE IF NOT EXISTS patterns (
    pattern_id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    designer TEXT NOT NULL DEFAULT '',
    weight_label TEXT NOT NULL DEFAULT '',
    yardage_min REAL,
    yardage_max REAL,
    project_type TEXT NOT NULL DEFAULT '',
    craft_type TEXT NOT NULL DEFAULT '',
    url TEXT NOT NULL DEFAULT '',
    price TEXT NOT NULL DEFAULT '',
    image_ref TEXT NOT NULL DEFAULT '',
    doc_ref TEXT NOT NULL DEFAULT '',
    created_at TEXT NOT NULL
);`

	createPatternsWeightIndex = `CREATE INDEX IF NOT EXISTS idx_patterns_weight
    ON patterns(weight_label);`
)

// schemaStatements lists the DDL in execution order.
var schemaStatements = []string{
	createStashEntries,
	createStashUserIndex,
	createPatterns,
	createPatternsWeightIndex,
}
