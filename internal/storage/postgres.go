package storage

import (
	"strings"

	_ "github.com/lib/pq" // PostgreSQL driver
)

var postgresDialect = dialect{
	name:      "postgres",
	driver:    "postgres",
	numbered:  true,
	returning: true,
	schema: `
		CREATE TABLE IF NOT EXISTS scores (
			id BIGSERIAL PRIMARY KEY,
			game_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			level INTEGER NOT NULL DEFAULT 1,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		);
		CREATE INDEX IF NOT EXISTS idx_scores_game_id ON scores(game_id);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(game_id, score DESC);
	`,
}

// isPostgresDSN reports whether dsn is a PostgreSQL connection URL.
func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}
