package service

import (
	"math/rand"

	"killchain-analyzer-be/internal/catalog"
	"killchain-analyzer-be/internal/dto"
	"killchain-analyzer-be/internal/entity"
	"killchain-analyzer-be/internal/pkg/logger"
)

type IGameService interface {
	GenerateLog(sessionID, difficulty string, stats map[string]interface{}) (*dto.GenerateLogResponse, error)
	ValidatePhase(sessionID, selectedPhase string) (*dto.ValidatePhaseResponse, error)
	ValidateMitigation(sessionID, selectedMitigation string, timeRemaining int, difficulty string) (*dto.ValidateMitigationResponse, error)
}

type gameService struct {
	catalog  *catalog.Catalog
	sessions ISessionService
	log      logger.ILogger

	// pick returns a random index in [0, n). Injectable for tests.
	pick func(n int) int
}

func NewGameService(cat *catalog.Catalog, sessions ISessionService, log logger.ILogger) IGameService {
	return &gameService{
		catalog:  cat,
		sessions: sessions,
		log:      log,
		pick:     rand.Intn,
	}
}

// playerStats is the validated form of the rolling stats a client sends
// along with a round request. The values are advisory and untrusted.
type playerStats struct {
	Score    float64
	Streak   float64
	Accuracy float64
}

// normalizeStats clamps each field to a non-negative number. Missing or
// non-numeric fields fall back to safe defaults (accuracy defaults to
// 100 so a brand-new player is not treated as a failing one).
func normalizeStats(raw map[string]interface{}) playerStats {
	stats := playerStats{Score: 0, Streak: 0, Accuracy: 100}
	if raw == nil {
		return stats
	}
	stats.Score = numericField(raw, "score", 0)
	stats.Streak = numericField(raw, "streak", 0)
	stats.Accuracy = numericField(raw, "accuracy", 100)
	return stats
}

func numericField(raw map[string]interface{}, key string, fallback float64) float64 {
	v, ok := raw[key]
	if !ok {
		return fallback
	}
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	default:
		return fallback
	}
	if f < 0 {
		return 0
	}
	return f
}

// dynamicDifficulty recomputes the level from rolling performance.
func dynamicDifficulty(stats playerStats) string {
	performance := stats.Score*0.3 + stats.Streak*10 + stats.Accuracy*0.4
	switch {
	case performance < 50:
		return catalog.DifficultyBeginner
	case performance < 150:
		return catalog.DifficultyIntermediate
	default:
		return catalog.DifficultyExpert
	}
}

// escalateDifficulty applies the one-directional ratchet: the computed
// dynamic level can raise the requested one but never lower it.
func escalateDifficulty(requested, dynamic string) string {
	if dynamic == catalog.DifficultyExpert {
		return dynamic
	}
	if dynamic == catalog.DifficultyIntermediate && requested == catalog.DifficultyBeginner {
		return dynamic
	}
	return requested
}

// calculatePoints scores one round. No points without a correct phase;
// a correct mitigation doubles the base and adds a speed bonus of half
// the remaining seconds, truncated. Never negative.
func calculatePoints(basePoints, timeRemaining int, phaseCorrect, mitigationCorrect bool) int {
	points := 0
	if phaseCorrect {
		points += basePoints
		if mitigationCorrect {
			points += basePoints
			if timeRemaining > 0 {
				points += timeRemaining / 2
			}
		}
	}
	if points < 0 {
		return 0
	}
	return points
}

func (s *gameService) GenerateLog(sessionID, difficulty string, stats map[string]interface{}) (*dto.GenerateLogResponse, error) {
	difficulty = catalog.NormalizeDifficulty(difficulty)
	playerStats := normalizeStats(stats)
	difficulty = escalateDifficulty(difficulty, dynamicDifficulty(playerStats))

	profile := s.catalog.Difficulty(difficulty)

	var available []*entity.LogEntry
	for _, phase := range profile.Phases {
		available = append(available, s.catalog.LogsForPhase(phase)...)
	}
	if len(available) == 0 {
		// Unreachable with a validated catalog, but handled anyway.
		return nil, dto.ErrNoContent
	}

	selected := available[s.pick(len(available))]

	session := s.sessions.GetOrCreate(sessionID)
	session.Lock()
	// Starting a new round silently abandons any unanswered one: the new
	// answer key overwrites the old, with no penalty applied.
	session.CurrentLog = selected.Id
	session.CorrectPhase = selected.Phase
	session.CorrectMitigation = ""
	session.LogData = selected
	session.Unlock()

	s.log.Info("game", "log generated", map[string]interface{}{
		"session_id": sessionID,
		"log_id":     selected.Id,
		"difficulty": difficulty,
		"phase":      selected.Phase,
	})

	return &dto.GenerateLogResponse{
		Log:        sanitizeLog(selected),
		TimeLimit:  profile.TimeLimit,
		Difficulty: difficulty,
	}, nil
}

func (s *gameService) ValidatePhase(sessionID, selectedPhase string) (*dto.ValidatePhaseResponse, error) {
	if !s.catalog.ValidPhase(selectedPhase) {
		return nil, dto.ErrInvalidPhase
	}

	session := s.sessions.GetOrCreate(sessionID)
	session.Lock()
	defer session.Unlock()

	correctPhase := session.CorrectPhase
	logData := session.LogData
	if correctPhase == "" || logData == nil {
		return nil, dto.ErrNoActiveRound
	}

	if selectedPhase == correctPhase {
		options := s.catalog.MitigationsForPhase(correctPhase)
		best := s.catalog.BestMitigation(correctPhase)
		session.CorrectMitigation = best.Id

		s.log.Info("game", "phase correct", map[string]interface{}{
			"session_id":     sessionID,
			"selected_phase": selectedPhase,
			"log_id":         session.CurrentLog,
		})

		return &dto.ValidatePhaseResponse{
			IsCorrect:            true,
			MitigationStrategies: options,
			Explanation:          logData.Explanation,
			Indicators:           logData.Indicators,
		}, nil
	}

	phaseInfo, _ := s.catalog.Phase(correctPhase)
	s.log.Info("game", "phase incorrect", map[string]interface{}{
		"session_id":     sessionID,
		"selected_phase": selectedPhase,
		"correct_phase":  correctPhase,
		"log_id":         session.CurrentLog,
	})

	return &dto.ValidatePhaseResponse{
		IsCorrect:    false,
		CorrectPhase: correctPhase,
		PhaseInfo:    phaseInfo,
		Explanation:  logData.Explanation,
		Indicators:   logData.Indicators,
	}, nil
}

func (s *gameService) ValidateMitigation(sessionID, selectedMitigation string, timeRemaining int, difficulty string) (*dto.ValidateMitigationResponse, error) {
	difficulty = catalog.NormalizeDifficulty(difficulty)
	if timeRemaining < 0 {
		timeRemaining = 0
	}

	session := s.sessions.GetOrCreate(sessionID)
	session.Lock()
	defer session.Unlock()

	correctPhase := session.CorrectPhase
	if correctPhase == "" {
		return nil, dto.ErrNoActivePhase
	}

	selected, ok := s.catalog.Mitigation(correctPhase, selectedMitigation)
	if !ok {
		return nil, dto.ErrInvalidMitigation
	}

	// A pick counts as correct when its tier is High or Very High, not
	// only when it matches the single recorded best option. Several
	// options can be valid answers for the same round.
	isCorrect := selected.Effectiveness.IsEffective()

	profile := s.catalog.Difficulty(difficulty)
	points := calculatePoints(profile.BasePoints, timeRemaining, true, isCorrect)

	var best *entity.MitigationOption
	if session.CorrectMitigation != "" {
		best, _ = s.catalog.Mitigation(correctPhase, session.CorrectMitigation)
	}

	s.log.Info("game", "mitigation validated", map[string]interface{}{
		"session_id":          sessionID,
		"selected_mitigation": selectedMitigation,
		"is_correct":          isCorrect,
		"points":              points,
		"time_remaining":      timeRemaining,
		"effectiveness":       string(selected.Effectiveness),
	})

	return &dto.ValidateMitigationResponse{
		IsCorrect:             isCorrect,
		Points:                points,
		SelectedEffectiveness: selected.Effectiveness,
		BestMitigation:        best,
	}, nil
}

func sanitizeLog(l *entity.LogEntry) dto.LogView {
	return dto.LogView{
		Id:        l.Id,
		Raw:       l.Raw,
		Source:    l.Source,
		Severity:  l.Severity,
		Timestamp: l.Timestamp,
		Metadata:  l.Metadata,
	}
}
