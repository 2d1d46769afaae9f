package storage

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"
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

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	entries := []ScoreEntry{
		{GameID: "concentration", Variant: "medium", Score: 10, Moves: 30},
		{GameID: "concentration", Variant: "medium", Score: -3, Moves: 40},
		{GameID: "concentration", Variant: "master", Score: 18, Moves: 70},
		{GameID: "concentration", Variant: "medium", Score: 10, Moves: 24},
		{GameID: "other", Score: 500},
	}
	for _, e := range entries {
		if _, err := store.SaveScoreEntry(e); err != nil {
			t.Fatalf("SaveScoreEntry() failed: %v", err)
		}
	}

	scores, err := store.TopScores("concentration", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 4 {
		t.Fatalf("Expected 4 scores, got %d", len(scores))
	}

	// Score descending, fewer moves first on ties
	want := []struct{ score, moves int }{{18, 70}, {10, 24}, {10, 30}, {-3, 40}}
	for i, w := range want {
		if scores[i].Score != w.score || scores[i].Moves != w.moves {
			t.Errorf("scores[%d] = %d/%d, want %d/%d", i, scores[i].Score, scores[i].Moves, w.score, w.moves)
		}
	}
	if scores[0].Variant != "master" {
		t.Errorf("Expected variant master, got %q", scores[0].Variant)
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestStoreTopScoresByVariant(t *testing.T) {
	store := openTestStore(t)

	store.SaveScoreEntry(ScoreEntry{GameID: "concentration", Variant: "beginner", Score: 8, Moves: 8})
	store.SaveScoreEntry(ScoreEntry{GameID: "concentration", Variant: "master", Score: 20, Moves: 60})
	store.SaveScoreEntry(ScoreEntry{GameID: "concentration", Variant: "beginner", Score: 6, Moves: 12})

	scores, err := store.TopScoresByVariant("concentration", "beginner", 10)
	if err != nil {
		t.Fatalf("TopScoresByVariant() failed: %v", err)
	}
	if len(scores) != 2 {
		t.Fatalf("Expected 2 beginner scores, got %d", len(scores))
	}
	if scores[0].Score != 8 || scores[1].Score != 6 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	none, err := store.TopScoresByVariant("concentration", "medium", 10)
	if err != nil {
		t.Fatalf("TopScoresByVariant() failed: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("Expected no medium scores, got %d", len(none))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	// Save 5 scores
	for i := 0; i < 5; i++ {
		store.SaveScore("test", (i+1)*100)
	}

	// Request only top 3
	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}

	// Should be 500, 400, 300 (top 3)
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	// Non-positive limit falls back to 10
	all, _ := store.TopScores("test", 0)
	if len(all) != 5 {
		t.Errorf("Expected 5 scores with default limit, got %d", len(all))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	// No scores yet
	high, ok, err := store.HighScore("concentration")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if ok || high != 0 {
		t.Errorf("Expected no high score for empty game, got %d, %v", high, ok)
	}

	// Negative scores are real scores
	store.SaveScore("concentration", -4)
	store.SaveScore("concentration", -1)

	high, ok, err = store.HighScore("concentration")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if !ok || high != -1 {
		t.Errorf("Expected high score of -1, got %d, %v", high, ok)
	}
}

func TestStoreSaveResult(t *testing.T) {
	store := openTestStore(t)

	first := Result{
		GameID: "concentration", Variant: "beginner", Theme: "Fruits",
		Score: 6, Flips: 12, Pairs: 4, HintUsed: true, Duration: 35, Completed: true,
	}
	second := Result{
		GameID: "concentration", Variant: "master", Theme: "Flags",
		Score: -2, Flips: 90, Pairs: 12, Duration: 240, Completed: true,
	}

	for _, r := range []Result{first, second} {
		id, err := store.SaveResult(r)
		if err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
		if id <= 0 {
			t.Errorf("Expected positive result ID, got %d", id)
		}
	}

	results, err := store.RecentResults("concentration", 10)
	if err != nil {
		t.Fatalf("RecentResults() failed: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(results))
	}

	// Newest first
	got := results[0]
	if got.Variant != "master" || got.Theme != "Flags" || got.Score != -2 || got.Flips != 90 || got.Pairs != 12 {
		t.Errorf("Unexpected newest result: %+v", got)
	}
	if got.HintUsed || !got.Completed || got.Duration != 240 {
		t.Errorf("Flags not round-tripped: %+v", got)
	}
	if !results[1].HintUsed {
		t.Error("HintUsed should be true for the first result")
	}

	// Each result also lands in the score table
	scores, _ := store.TopScores("concentration", 10)
	if len(scores) != 2 || scores[0].Score != 6 || scores[0].Moves != 12 {
		t.Errorf("Score rows not written with results: %v", scores)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveResult(Result{GameID: "concentration", Score: 4, Completed: true})
	store.SaveScore("concentration", 200)
	store.SaveScore("other", 300)

	// Clear only concentration
	if err := store.ClearScores("concentration"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("concentration", 10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	results, _ := store.RecentResults("concentration", 10)
	if len(results) != 0 {
		t.Errorf("Expected 0 results after clear, got %d", len(results))
	}

	otherScores, _ := store.TopScores("other", 10)
	if len(otherScores) != 1 {
		t.Errorf("Other scores should not be affected by clearing concentration")
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)

	// Add many scores
	for i := 0; i < 20; i++ {
		store.SaveScore("test", i*10)
	}

	scores, err := store.AllScores("test")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}

	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("concentration")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", empty)
	}

	store.SaveScoreEntry(ScoreEntry{GameID: "concentration", Score: 10, Moves: 20})
	store.SaveScoreEntry(ScoreEntry{GameID: "concentration", Score: -2, Moves: 16})
	store.SaveScoreEntry(ScoreEntry{GameID: "concentration", Score: 4})
	store.SaveScore("other", 7)

	stats, err := store.GetGameStats("concentration")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 3 || stats.HighScore != 10 || stats.TotalScore != 12 || stats.AvgScore != 4 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
	if stats.BestMoves != 16 {
		t.Errorf("Expected best moves 16, got %d", stats.BestMoves)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 || all["other"].HighScore != 7 || all["concentration"].GamesCount != 3 {
		t.Errorf("Unexpected all-games stats: %v", all)
	}
}

func TestStoreMigratesOldScoreTable(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "old.db")

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("sql.Open() failed: %v", err)
	}
	_, err = db.Exec(`
		CREATE TABLE scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		INSERT INTO scores (game_id, score) VALUES ('concentration', 5);
	`)
	db.Close()
	if err != nil {
		t.Fatalf("seed old schema: %v", err)
	}

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() on old schema failed: %v", err)
	}
	defer store.Close()

	store.SaveScoreEntry(ScoreEntry{GameID: "concentration", Variant: "master", Score: 3, Moves: 50})

	scores, err := store.TopScores("concentration", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 2 || scores[0].Variant != "" || scores[1].Variant != "master" {
		t.Errorf("Unexpected scores after migration: %v", scores)
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/nested/deep/test.db")
	if err != nil {
		t.Fatalf("Open() with ~ path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created under home
	if _, err := os.Stat(filepath.Join(home, "nested", "deep", "test.db")); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
