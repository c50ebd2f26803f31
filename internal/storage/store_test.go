package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
	if store.Backend() != "sqlite" {
		t.Errorf("Backend() = %q, expected sqlite", store.Backend())
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	runs := []struct {
		game  string
		score int
		level int
	}{
		{"vibe", 100, 1},
		{"vibe", 50, 1},
		{"vibe", 1200, 3},
		{"other", 500, 2},
	}
	for _, r := range runs {
		if _, err := store.SaveScore(r.game, r.score, r.level); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores("vibe", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	if scores[0].Score != 1200 || scores[0].Level != 3 {
		t.Errorf("Expected top run 1200 at level 3, got %+v", scores[0])
	}
	if scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not sorted descending: %+v", scores)
	}
	if scores[0].CreatedAt.IsZero() || time.Since(scores[0].CreatedAt) > 24*time.Hour {
		t.Errorf("CreatedAt not parsed: %v", scores[0].CreatedAt)
	}

	other, err := store.TopScores("other", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(other) != 1 {
		t.Errorf("Expected 1 score for other game, got %d", len(other))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("vibe", (i+1)*100, 1)
	}

	scores, err := store.TopScores("vibe", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	// Non-positive limit falls back to 10
	all, _ := store.TopScores("vibe", 0)
	if len(all) != 5 {
		t.Errorf("Expected 5 scores with default limit, got %d", len(all))
	}
}

func TestStoreTopScoresTieBreak(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("vibe", 600, 1)
	store.SaveScore("vibe", 600, 2)

	scores, _ := store.TopScores("vibe", 10)
	if len(scores) != 2 || scores[0].Level != 2 {
		t.Errorf("Equal scores should rank the higher level first: %+v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("vibe")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("vibe", 100, 1)
	store.SaveScore("vibe", 300, 2)
	store.SaveScore("vibe", 200, 1)

	high, err = store.HighScore("vibe")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("vibe", 100, 1)
	store.SaveScore("vibe", 200, 1)
	store.SaveScore("other", 300, 1)

	if err := store.ClearScores("vibe"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores("vibe", 10); len(scores) != 0 {
		t.Errorf("Expected 0 vibe scores after clear, got %d", len(scores))
	}
	if scores, _ := store.TopScores("other", 10); len(scores) != 1 {
		t.Error("Other game scores should not be affected")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("vibe")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", empty)
	}

	store.SaveScore("vibe", 100, 1)
	store.SaveScore("vibe", 700, 3)

	stats, err := store.GetGameStats("vibe")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 700 || stats.BestLevel != 3 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
	if stats.AvgScore != 400 || stats.TotalScore != 800 {
		t.Errorf("Unexpected aggregates: avg %.1f total %d", stats.AvgScore, stats.TotalScore)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.vibe/scores.db")
	if err != nil {
		t.Fatalf("Open() with ~ path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".vibe", "scores.db")); err != nil {
		t.Errorf("Database not created under home: %v", err)
	}
}

func TestRebind(t *testing.T) {
	query := "SELECT * FROM scores WHERE game_id = ? AND score > ? LIMIT ?"

	sqlite := &Store{dialect: sqliteDialect}
	if got := sqlite.rebind(query); got != query {
		t.Errorf("sqlite rebind changed the query: %q", got)
	}

	pg := &Store{dialect: postgresDialect}
	want := "SELECT * FROM scores WHERE game_id = $1 AND score > $2 LIMIT $3"
	if got := pg.rebind(query); got != want {
		t.Errorf("postgres rebind = %q, expected %q", got, want)
	}
}

func TestIsPostgresDSN(t *testing.T) {
	tests := []struct {
		dsn  string
		want bool
	}{
		{"postgres://arcade@localhost/scores?sslmode=disable", true},
		{"postgresql://localhost/scores", true},
		{"~/.vibe/scores.db", false},
		{"/tmp/postgres.db", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := isPostgresDSN(tt.dsn); got != tt.want {
			t.Errorf("isPostgresDSN(%q) = %v, expected %v", tt.dsn, got, tt.want)
		}
	}
}
