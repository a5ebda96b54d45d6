package service

import (
	"math"
	"time"

	"killchain-analyzer-be/internal/dto"
	"killchain-analyzer-be/internal/entity"
	"killchain-analyzer-be/internal/pkg/logger"
	"killchain-analyzer-be/internal/repository/contract"
)

const DefaultSessionMaxAgeHours = 24

type ISessionService interface {
	GetOrCreate(sessionID string) *entity.Session
	RecordOutcome(sessionID string, points int, correct bool) *dto.SessionStatsResponse
	Statistics(sessionID string) *dto.SessionStatsResponse
	Reset(sessionID string) bool
	Cleanup(maxAgeHours int) int
	Count() int
}

type sessionService struct {
	sessions contract.SessionRepository
	log      logger.ILogger
}

func NewSessionService(sessions contract.SessionRepository, log logger.ILogger) ISessionService {
	return &sessionService{
		sessions: sessions,
		log:      log,
	}
}

// GetOrCreate returns the session for an id, creating one with zeroed
// counters on first reference. A session deleted by the cleanup sweep
// mid-round simply comes back fresh on the next operation, without an
// error.
func (s *sessionService) GetOrCreate(sessionID string) *entity.Session {
	if session, ok := s.sessions.Get(sessionID); ok {
		return session
	}

	session := &entity.Session{
		ID:        sessionID,
		CreatedAt: time.Now().Format(time.RFC3339Nano),
	}
	s.sessions.Save(session)
	s.log.Info("session", "created new session", map[string]interface{}{
		"session_id": sessionID,
	})
	return session
}

// RecordOutcome folds one finished round into the session's rolling
// stats. Score and attempt counters only ever grow; the streak resets
// to zero on an incorrect outcome.
func (s *sessionService) RecordOutcome(sessionID string, points int, correct bool) *dto.SessionStatsResponse {
	session := s.GetOrCreate(sessionID)

	session.Lock()
	session.Score += points
	session.TotalAttempts++
	if correct {
		session.CorrectAttempts++
		session.Streak++
	} else {
		session.Streak = 0
	}
	stats := snapshotStats(session)
	session.Unlock()

	s.log.Info("session", "stats updated", map[string]interface{}{
		"session_id":   sessionID,
		"points_added": points,
		"is_correct":   correct,
		"new_score":    stats.CurrentScore,
		"new_streak":   stats.CurrentStreak,
	})
	return stats
}

func (s *sessionService) Statistics(sessionID string) *dto.SessionStatsResponse {
	session := s.GetOrCreate(sessionID)

	session.Lock()
	stats := snapshotStats(session)
	session.Unlock()
	return stats
}

func (s *sessionService) Reset(sessionID string) bool {
	existed := s.sessions.Delete(sessionID)
	if existed {
		s.log.Info("session", "session reset", map[string]interface{}{
			"session_id": sessionID,
		})
	}
	return existed
}

// Cleanup sweeps the whole store and removes every session older than
// the cutoff, plus any session whose creation timestamp fails to parse.
// An unparsable timestamp means the record is corrupt, so it is purged
// rather than kept around forever.
func (s *sessionService) Cleanup(maxAgeHours int) int {
	cutoff := time.Now().Add(-time.Duration(maxAgeHours) * time.Hour)

	removed := 0
	for id, session := range s.sessions.All() {
		createdAt, err := time.Parse(time.RFC3339Nano, session.CreatedAt)
		if err != nil || createdAt.Before(cutoff) {
			if s.sessions.Delete(id) {
				removed++
			}
		}
	}

	if removed > 0 {
		s.log.Info("session", "cleaned up old sessions", map[string]interface{}{
			"removed":       removed,
			"max_age_hours": maxAgeHours,
		})
	}
	return removed
}

func (s *sessionService) Count() int {
	return s.sessions.Count()
}

// snapshotStats derives the client-facing stats view. Accuracy defaults
// to 100.0 for a session with no attempts: "no data" is not "0%".
func snapshotStats(session *entity.Session) *dto.SessionStatsResponse {
	accuracy := 100.0
	if session.TotalAttempts > 0 {
		accuracy = math.Round(float64(session.CorrectAttempts)/float64(session.TotalAttempts)*100*100) / 100
	}

	return &dto.SessionStatsResponse{
		TotalGames:     session.TotalAttempts,
		CorrectAnswers: session.CorrectAttempts,
		CurrentScore:   session.Score,
		CurrentStreak:  session.Streak,
		Accuracy:       accuracy,
		SessionCreated: session.CreatedAt,
	}
}
