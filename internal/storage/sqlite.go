// Package storage provides SQLite-based persistence for scores, session
// results, and the local puzzle table.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/bitbreak/minicade/internal/content"
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// ScoreEntry represents a single high score record.
type ScoreEntry struct {
	ID        int64
	GameID    string
	Score     int
	CreatedAt time.Time
}

// SessionRecord represents a completed arcade session: one run through a
// sequence of games with their scores aggregated by the host wrapper.
type SessionRecord struct {
	ID          int64
	SessionID   string // UUID assigned by the session runner
	TotalScore  int
	GamesPlayed int
	Duration    int // Duration in seconds
	CreatedAt   time.Time
}

// SessionGame represents one game's result within a session.
type SessionGame struct {
	ID        int64
	SessionID string
	GameID    string
	Score     int
	Completed bool // False if the tick budget ran out first
	Position  int  // Order within the session
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

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

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
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_game_id ON scores(game_id);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(game_id, score DESC);

		CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL UNIQUE,
			total_score INTEGER NOT NULL DEFAULT 0,
			games_played INTEGER NOT NULL DEFAULT 0,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_created ON sessions(created_at DESC);

		CREATE TABLE IF NOT EXISTS session_games (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL,
			game_id TEXT NOT NULL,
			score INTEGER NOT NULL DEFAULT 0,
			completed INTEGER NOT NULL DEFAULT 0,
			position INTEGER NOT NULL DEFAULT 0
		);
		CREATE INDEX IF NOT EXISTS idx_session_games_session ON session_games(session_id);

		CREATE TABLE IF NOT EXISTS puzzles (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game TEXT NOT NULL,
			prompt TEXT NOT NULL,
			choices TEXT,
			answer INTEGER NOT NULL DEFAULT 0,
			pair TEXT
		);
		CREATE INDEX IF NOT EXISTS idx_puzzles_game ON puzzles(game);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveScore records a new score for the given game.
// Returns the ID of the inserted record.
func (s *Store) SaveScore(gameID string, score int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO scores (game_id, score) VALUES (?, ?)",
		gameID, score,
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

// TopScores retrieves the top N scores for the given game.
// Results are ordered by score descending.
func (s *Store) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, score, created_at
		 FROM scores
		 WHERE game_id = ?
		 ORDER BY score DESC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.GameID, &e.Score, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTimestamp(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// HighScore returns the highest score for the given game.
// Returns 0 if no scores exist.
func (s *Store) HighScore(gameID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM scores WHERE game_id = ?",
		gameID,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearScores deletes all scores for the given game.
func (s *Store) ClearScores(gameID string) error {
	_, err := s.db.Exec("DELETE FROM scores WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// SaveSession records a completed session and its per-game results.
// Returns the ID of the inserted session record.
func (s *Store) SaveSession(record SessionRecord, games []SessionGame) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // No-op after commit

	result, err := tx.Exec(
		`INSERT INTO sessions (session_id, total_score, games_played, duration_secs)
		 VALUES (?, ?, ?, ?)`,
		record.SessionID, record.TotalScore, record.GamesPlayed, record.Duration,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save session: %w", err)
	}

	for _, g := range games {
		completed := 0
		if g.Completed {
			completed = 1
		}
		if _, err := tx.Exec(
			`INSERT INTO session_games (session_id, game_id, score, completed, position)
			 VALUES (?, ?, ?, ?, ?)`,
			record.SessionID, g.GameID, g.Score, completed, g.Position,
		); err != nil {
			return 0, fmt.Errorf("storage: cannot save session game: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit session: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// SessionByID retrieves a session record by its session ID.
// Returns nil if no such session exists.
func (s *Store) SessionByID(sessionID string) (*SessionRecord, error) {
	var record SessionRecord
	var createdAt any

	err := s.db.QueryRow(
		`SELECT id, session_id, total_score, games_played, duration_secs, created_at
		 FROM sessions
		 WHERE session_id = ?`,
		sessionID,
	).Scan(
		&record.ID,
		&record.SessionID,
		&record.TotalScore,
		&record.GamesPlayed,
		&record.Duration,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query session: %w", err)
	}

	record.CreatedAt = parseTimestamp(createdAt)
	return &record, nil
}

// SessionGames retrieves the per-game results for a session, in play order.
func (s *Store) SessionGames(sessionID string) ([]SessionGame, error) {
	rows, err := s.db.Query(
		`SELECT id, session_id, game_id, score, completed, position
		 FROM session_games
		 WHERE session_id = ?
		 ORDER BY position ASC`,
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query session games: %w", err)
	}
	defer rows.Close()

	var games []SessionGame
	for rows.Next() {
		var g SessionGame
		var completed int
		if err := rows.Scan(&g.ID, &g.SessionID, &g.GameID, &g.Score, &completed, &g.Position); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		g.Completed = completed != 0
		games = append(games, g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return games, nil
}

// RecentSessions retrieves the most recent session records.
func (s *Store) RecentSessions(limit int) ([]SessionRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, session_id, total_score, games_played, duration_secs, created_at
		 FROM sessions
		 ORDER BY created_at DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var records []SessionRecord
	for rows.Next() {
		var record SessionRecord
		var createdAt any
		if err := rows.Scan(
			&record.ID,
			&record.SessionID,
			&record.TotalScore,
			&record.GamesPlayed,
			&record.Duration,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		record.CreatedAt = parseTimestamp(createdAt)
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// SavePuzzles inserts puzzle rows into the local content table.
func (s *Store) SavePuzzles(puzzles []content.Puzzle) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // No-op after commit

	for _, p := range puzzles {
		var choices []byte
		if len(p.Choices) > 0 {
			choices, err = json.Marshal(p.Choices)
			if err != nil {
				return fmt.Errorf("storage: cannot encode choices: %w", err)
			}
		}
		if _, err := tx.Exec(
			`INSERT INTO puzzles (game, prompt, choices, answer, pair)
			 VALUES (?, ?, ?, ?, ?)`,
			p.Game, p.Prompt, nullableString(choices), p.Answer, p.Pair,
		); err != nil {
			return fmt.Errorf("storage: cannot save puzzle: %w", err)
		}
	}

	return tx.Commit()
}

// PuzzlesByGame retrieves up to limit puzzle rows for the given game.
// Implements content.PuzzleSource for the self-hosted content server.
func (s *Store) PuzzlesByGame(game string, limit int) ([]content.Puzzle, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, game, prompt, choices, answer, pair
		 FROM puzzles
		 WHERE game = ?
		 LIMIT ?`,
		game, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query puzzles: %w", err)
	}
	defer rows.Close()

	var puzzles []content.Puzzle
	for rows.Next() {
		var p content.Puzzle
		var choices sql.NullString
		var pair sql.NullString
		if err := rows.Scan(&p.ID, &p.Game, &p.Prompt, &choices, &p.Answer, &pair); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		if choices.Valid && choices.String != "" {
			if err := json.Unmarshal([]byte(choices.String), &p.Choices); err != nil {
				return nil, fmt.Errorf("storage: cannot decode choices: %w", err)
			}
		}
		if pair.Valid {
			p.Pair = pair.String
		}
		puzzles = append(puzzles, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return puzzles, nil
}

// ClearPuzzles deletes all puzzle rows for the given game.
func (s *Store) ClearPuzzles(game string) error {
	_, err := s.db.Exec("DELETE FROM puzzles WHERE game = ?", game)
	if err != nil {
		return fmt.Errorf("storage: cannot clear puzzles: %w", err)
	}
	return nil
}

// GameStats contains aggregated statistics for a game.
type GameStats struct {
	GameID     string
	GamesCount int
	HighScore  int
	AvgScore   float64
	TotalScore int64
	LastPlayed time.Time
}

// GetGameStats retrieves aggregated statistics for a specific game.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	stats := &GameStats{GameID: gameID}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), COALESCE(SUM(score), 0)
		 FROM scores WHERE game_id = ?`,
		gameID,
	).Scan(&stats.GamesCount, &stats.HighScore, &stats.AvgScore, &stats.TotalScore)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM scores WHERE game_id = ? ORDER BY created_at DESC LIMIT 1`,
		gameID,
	).Scan(&lastPlayed)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTimestamp(lastPlayed)
	}

	return stats, nil
}

// parseTimestamp normalizes sqlite datetime values, which scan as either
// time.Time or string depending on how the row was written.
func parseTimestamp(v any) time.Time {
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

// nullableString converts empty byte slices to nil for NULL-able columns.
func nullableString(b []byte) any {
	if len(b) == 0 {
		return nil
	}
	return string(b)
}
