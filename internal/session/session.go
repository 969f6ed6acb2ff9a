// Package session implements the host wrapper around minigames: it supplies
// each game's time budget, receives score callbacks, and aggregates per-game
// results into a session total. This is a UI contract between shell and game,
// not a network protocol.
package session

import (
	"time"

	"github.com/google/uuid"
)

// ID uniquely identifies an arcade session.
type ID string

// NewID generates a fresh session identifier.
func NewID() ID {
	return ID(uuid.NewString())
}

// Hooks are the callbacks a running game reports through.
// Either hook may be nil.
type Hooks struct {
	// OnScoreUpdate fires whenever a game's score changes.
	OnScoreUpdate func(gameID string, score int)

	// OnComplete fires once when a game ends, either by its own game over
	// or because the host's tick budget ran out.
	OnComplete func(gameID string, result GameResult)
}

// GameResult is the outcome of one game within a session.
type GameResult struct {
	GameID    string
	Score     int
	Completed bool // True if the game ended on its own, false if time ran out
	Ticks     int  // Simulation ticks consumed
}

// PlannedGame is one entry in a session plan.
type PlannedGame struct {
	GameID string
	Budget int // Tick budget; 0 means play until game over
}

// Plan is the ordered list of games a session runs through.
type Plan struct {
	Games []PlannedGame
}

// Session aggregates scores across a planned sequence of games.
// Not safe for concurrent use; the tick loop is single-threaded.
type Session struct {
	id        ID
	plan      Plan
	hooks     Hooks
	results   []GameResult
	lastScore map[string]int
	startedAt time.Time
}

// New creates a session for the given plan.
func New(plan Plan, hooks Hooks) *Session {
	return &Session{
		id:        NewID(),
		plan:      plan,
		hooks:     hooks,
		lastScore: make(map[string]int),
		startedAt: time.Now(),
	}
}

// ID returns the session identifier.
func (s *Session) ID() ID {
	return s.id
}

// Plan returns the session's game plan.
func (s *Session) Plan() Plan {
	return s.plan
}

// ReportScore forwards a score change to the host.
// Duplicate reports of an unchanged score are suppressed.
func (s *Session) ReportScore(gameID string, score int) {
	if prev, ok := s.lastScore[gameID]; ok && prev == score {
		return
	}
	s.lastScore[gameID] = score

	if s.hooks.OnScoreUpdate != nil {
		s.hooks.OnScoreUpdate(gameID, score)
	}
}

// CompleteGame records a finished game and fires the completion hook.
func (s *Session) CompleteGame(result GameResult) {
	s.results = append(s.results, result)

	if s.hooks.OnComplete != nil {
		s.hooks.OnComplete(result.GameID, result)
	}
}

// Results returns the per-game results recorded so far, in play order.
func (s *Session) Results() []GameResult {
	return s.results
}

// TotalScore returns the sum of all recorded game scores.
func (s *Session) TotalScore() int {
	total := 0
	for _, r := range s.results {
		total += r.Score
	}
	return total
}

// GamesPlayed returns how many games have finished.
func (s *Session) GamesPlayed() int {
	return len(s.results)
}

// Duration returns how long the session has been running.
func (s *Session) Duration() time.Duration {
	return time.Since(s.startedAt)
}

// Done reports whether every planned game has a recorded result.
func (s *Session) Done() bool {
	return len(s.results) >= len(s.plan.Games)
}

// NextGame returns the plan entry for the next unplayed game.
// Returns false when the plan is exhausted.
func (s *Session) NextGame() (PlannedGame, bool) {
	if s.Done() {
		return PlannedGame{}, false
	}
	return s.plan.Games[len(s.results)], true
}
