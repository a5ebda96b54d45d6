package contract

import "killchain-analyzer-be/internal/entity"

// SessionRepository owns every session record. Callers never hold
// session data outside the repository; mutations go through the pointer
// returned by Get under the session's own lock.
type SessionRepository interface {
	Get(sessionID string) (*entity.Session, bool)
	Save(session *entity.Session)
	// Delete removes a session and reports whether it existed.
	Delete(sessionID string) bool
	// All snapshots the current id -> session mapping for sweeps.
	All() map[string]*entity.Session
	Count() int
}
