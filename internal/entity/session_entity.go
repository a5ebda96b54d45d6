package entity

import "sync"

// Session holds the mutable per-player state: running score plus the
// answer key of the round currently in flight. CreatedAt is kept as an
// ISO-8601 string so that a corrupt value survives round-tripping and
// can be detected and purged by the cleanup sweep.
//
// The embedded mutex serializes concurrent requests against the same
// session id. Sessions are independent; there is no cross-session locking.
type Session struct {
	mu sync.Mutex

	ID                string    `json:"id"`
	Score             int       `json:"score"`
	Streak            int       `json:"streak"`
	TotalAttempts     int       `json:"total_attempts"`
	CorrectAttempts   int       `json:"correct_attempts"`
	CurrentLog        string    `json:"current_log"`
	CorrectPhase      string    `json:"correct_phase"`
	CorrectMitigation string    `json:"correct_mitigation"`
	LogData           *LogEntry `json:"-"`
	CreatedAt         string    `json:"created_at"`
}

func (s *Session) Lock()   { s.mu.Lock() }
func (s *Session) Unlock() { s.mu.Unlock() }
