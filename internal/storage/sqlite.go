// Package storage provides SQLite-based persistence for game scores and
// finished-game results. Uses the pure-Go modernc.org/sqlite driver to
// avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for score persistence.
type Store struct {
	db *sql.DB
}

// ScoreEntry represents a single high score record.
type ScoreEntry struct {
	ID        int64
	GameID    string
	Variant   string // e.g. difficulty; empty for games without variants
	Score     int
	Moves     int
	CreatedAt time.Time
}

// Result is the full record of a finished game.
type Result struct {
	ID        int64
	GameID    string
	Variant   string
	Theme     string
	Score     int
	Flips     int
	Pairs     int
	HintUsed  bool
	Duration  int // Duration in seconds
	Completed bool
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			variant TEXT NOT NULL DEFAULT '',
			score INTEGER NOT NULL,
			moves INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_game_id ON scores(game_id);

		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			variant TEXT NOT NULL DEFAULT '',
			theme TEXT NOT NULL DEFAULT '',
			score INTEGER NOT NULL,
			flips INTEGER NOT NULL DEFAULT 0,
			pairs INTEGER NOT NULL DEFAULT 0,
			hint_used INTEGER NOT NULL DEFAULT 0,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			completed INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_game_id ON results(game_id);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return err
	}

	// Score tables created before variants existed lack two columns.
	for _, col := range []struct{ name, def string }{
		{"variant", "TEXT NOT NULL DEFAULT ''"},
		{"moves", "INTEGER NOT NULL DEFAULT 0"},
	} {
		exists, err := s.columnExists("scores", col.name)
		if err != nil {
			return err
		}
		if !exists {
			if _, err := s.db.Exec(fmt.Sprintf("ALTER TABLE scores ADD COLUMN %s %s", col.name, col.def)); err != nil {
				return err
			}
		}
	}

	_, err := s.db.Exec(`CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(game_id, variant, score DESC)`)
	return err
}

// columnExists reports whether table has the named column.
func (s *Store) columnExists(table, column string) (bool, error) {
	rows, err := s.db.Query(fmt.Sprintf("PRAGMA table_info(%s)", table))
	if err != nil {
		return false, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			cid      int
			name     string
			typ      string
			notNull  int
			defValue sql.NullString
			pk       int
		)
		if err := rows.Scan(&cid, &name, &typ, &notNull, &defValue, &pk); err != nil {
			return false, err
		}
		if name == column {
			return true, nil
		}
	}
	return false, rows.Err()
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// parseTime converts a DATETIME column value into a time.Time.
// The driver returns either time.Time or a string depending on how the
// value was written.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// SaveScore records a new score for the given game.
// Returns the ID of the inserted record.
func (s *Store) SaveScore(gameID string, score int) (int64, error) {
	return s.SaveScoreEntry(ScoreEntry{GameID: gameID, Score: score})
}

// SaveScoreEntry records a score with its variant and move count.
// Returns the ID of the inserted record.
func (s *Store) SaveScoreEntry(e ScoreEntry) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO scores (game_id, variant, score, moves) VALUES (?, ?, ?, ?)",
		e.GameID, e.Variant, e.Score, e.Moves,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// SaveResult records a finished game and its score row in one transaction.
// Returns the ID of the result record.
func (s *Store) SaveResult(r Result) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	res, err := tx.Exec(
		`INSERT INTO results
		 (game_id, variant, theme, score, flips, pairs, hint_used, duration_secs, completed)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.GameID, r.Variant, r.Theme, r.Score, r.Flips, r.Pairs, r.HintUsed, r.Duration, r.Completed,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	if _, err := tx.Exec(
		"INSERT INTO scores (game_id, variant, score, moves) VALUES (?, ?, ?, ?)",
		r.GameID, r.Variant, r.Score, r.Flips,
	); err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit result: %w", err)
	}
	return id, nil
}

// TopScores retrieves the top N scores for the given game across variants.
// Results are ordered by score descending, fewer moves first on ties.
func (s *Store) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryScores(
		`SELECT id, game_id, variant, score, moves, created_at
		 FROM scores
		 WHERE game_id = ?
		 ORDER BY score DESC, moves ASC, id ASC
		 LIMIT ?`,
		gameID, limit,
	)
}

// TopScoresByVariant retrieves the top N scores for one variant of a game.
func (s *Store) TopScoresByVariant(gameID, variant string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryScores(
		`SELECT id, game_id, variant, score, moves, created_at
		 FROM scores
		 WHERE game_id = ? AND variant = ?
		 ORDER BY score DESC, moves ASC, id ASC
		 LIMIT ?`,
		gameID, variant, limit,
	)
}

// AllScores retrieves all scores for the given game (no limit).
func (s *Store) AllScores(gameID string) ([]ScoreEntry, error) {
	return s.queryScores(
		`SELECT id, game_id, variant, score, moves, created_at
		 FROM scores
		 WHERE game_id = ?
		 ORDER BY score DESC, moves ASC, id ASC`,
		gameID,
	)
}

func (s *Store) queryScores(query string, args ...any) ([]ScoreEntry, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.GameID, &e.Variant, &e.Score, &e.Moves, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// HighScore returns the highest score for the given game.
// The bool is false when no scores exist; concentration scores can be
// zero or negative, so 0 alone does not mean "no score".
func (s *Store) HighScore(gameID string) (int, bool, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM scores WHERE game_id = ?",
		gameID,
	).Scan(&score)

	if err != nil {
		return 0, false, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, false, nil
	}

	return int(score.Int64), true, nil
}

// ClearScores deletes all scores and results for the given game.
func (s *Store) ClearScores(gameID string) error {
	if _, err := s.db.Exec("DELETE FROM scores WHERE game_id = ?", gameID); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	if _, err := s.db.Exec("DELETE FROM results WHERE game_id = ?", gameID); err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}

// RecentResults retrieves the most recent results for a game, newest first.
func (s *Store) RecentResults(gameID string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, variant, theme, score, flips, pairs,
		        hint_used, duration_secs, completed, created_at
		 FROM results
		 WHERE game_id = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var r Result
		var createdAt any
		if err := rows.Scan(
			&r.ID,
			&r.GameID,
			&r.Variant,
			&r.Theme,
			&r.Score,
			&r.Flips,
			&r.Pairs,
			&r.HintUsed,
			&r.Duration,
			&r.Completed,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// GameStats contains aggregated statistics for a game.
type GameStats struct {
	GameID     string
	GamesCount int
	HighScore  int
	AvgScore   float64
	TotalScore int64
	BestMoves  int // Fewest moves in a recorded game, 0 if none
	LastPlayed time.Time
}

// GetGameStats retrieves aggregated statistics for a specific game.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	stats := &GameStats{GameID: gameID}

	// Get count, high, avg, total, best moves
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), COALESCE(SUM(score), 0),
		        COALESCE(MIN(NULLIF(moves, 0)), 0)
		 FROM scores WHERE game_id = ?`,
		gameID,
	).Scan(&stats.GamesCount, &stats.HighScore, &stats.AvgScore, &stats.TotalScore, &stats.BestMoves)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}

	// Get last played
	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM scores WHERE game_id = ? ORDER BY created_at DESC, id DESC LIMIT 1`,
		gameID,
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

// GetAllGamesStats retrieves statistics for all games that have been played.
func (s *Store) GetAllGamesStats() (map[string]*GameStats, error) {
	rows, err := s.db.Query(
		`SELECT game_id, COUNT(*), MAX(score), AVG(score), SUM(score),
		        COALESCE(MIN(NULLIF(moves, 0)), 0), MAX(created_at)
		 FROM scores
		 GROUP BY game_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all games stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*GameStats)
	for rows.Next() {
		var gs GameStats
		var lastPlayed any
		if err := rows.Scan(&gs.GameID, &gs.GamesCount, &gs.HighScore, &gs.AvgScore, &gs.TotalScore, &gs.BestMoves, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		gs.LastPlayed = parseTime(lastPlayed)
		stats[gs.GameID] = &gs
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}
