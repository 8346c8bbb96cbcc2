package session

import (
	"sync"
	"time"

	"voice-assistant-backend/internal/model"
)

// maxHistoryTurns bounds in-memory conversation history per session.
// The conversational context window only ever reads the most recent turns,
// so older ones are dropped rather than kept for the life of the session.
const maxHistoryTurns = 50

// Session is the per-user conversational and calculator state.
// All methods are safe for concurrent use; the mutex is per-session, so
// commands for different users never serialize on each other.
type Session struct {
	UserID string

	mu           sync.Mutex
	history      []model.Turn
	lastResult   *float64
	calculations []model.Calculation
	lastAccess   time.Time
}

func newSession(userID string, now time.Time) *Session {
	return &Session{
		UserID:     userID,
		lastAccess: now,
	}
}

// AppendTurn records one conversation turn, trimming the oldest once the
// retention bound is hit.
func (s *Session) AppendTurn(role model.TurnRole, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = append(s.history, model.Turn{Role: role, Content: content})
	if len(s.history) > maxHistoryTurns {
		s.history = s.history[len(s.history)-maxHistoryTurns:]
	}
}

// RecentTurns returns a copy of the last n turns, oldest first.
func (s *Session) RecentTurns(n int) []model.Turn {
	s.mu.Lock()
	defer s.mu.Unlock()
	start := len(s.history) - n
	if start < 0 {
		start = 0
	}
	out := make([]model.Turn, len(s.history)-start)
	copy(out, s.history[start:])
	return out
}

// HistoryLen returns the number of retained turns.
func (s *Session) HistoryLen() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.history)
}

// LastResult returns the running arithmetic total, if any.
func (s *Session) LastResult() (float64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lastResult == nil {
		return 0, false
	}
	return *s.lastResult, true
}

// RecordCalculation appends to the audit log and updates the running total.
func (s *Session) RecordCalculation(expression string, result float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calculations = append(s.calculations, model.Calculation{
		Expression: expression,
		Result:     result,
	})
	s.lastResult = &result
}

// Calculations returns a copy of the arithmetic audit log.
func (s *Session) Calculations() []model.Calculation {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Calculation, len(s.calculations))
	copy(out, s.calculations)
	return out
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastAccess = now
}

// LastAccess returns the time of the session's most recent activity.
func (s *Session) LastAccess() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastAccess
}
