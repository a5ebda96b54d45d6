package dto

import "killchain-analyzer-be/internal/entity"

type GenerateLogRequest struct {
	SessionId  string                 `json:"session_id" validate:"required,min=5,max=50,session_id"`
	Difficulty string                 `json:"difficulty" validate:"omitempty,oneof=beginner intermediate expert"`
	Stats      map[string]interface{} `json:"stats"`
}

// LogView is the sanitized projection of a LogEntry sent to the client
// before the round is answered. It deliberately omits the phase, the
// explanation, and the indicator list.
type LogView struct {
	Id        string                 `json:"id"`
	Raw       string                 `json:"raw"`
	Source    string                 `json:"source"`
	Severity  string                 `json:"severity"`
	Timestamp string                 `json:"timestamp"`
	Metadata  map[string]interface{} `json:"metadata"`
}

type GenerateLogResponse struct {
	Log        LogView `json:"log"`
	TimeLimit  int     `json:"time_limit"`
	Difficulty string  `json:"difficulty"`
}

type ValidatePhaseRequest struct {
	SessionId     string `json:"session_id" validate:"required,min=5,max=50,session_id"`
	SelectedPhase string `json:"selected_phase" validate:"required"`
}

type ValidatePhaseResponse struct {
	IsCorrect            bool                       `json:"is_correct"`
	MitigationStrategies []*entity.MitigationOption `json:"mitigation_strategies,omitempty"`
	CorrectPhase         string                     `json:"correct_phase,omitempty"`
	PhaseInfo            *entity.Phase              `json:"phase_info,omitempty"`
	Explanation          string                     `json:"explanation"`
	Indicators           []string                   `json:"indicators"`
}

type ValidateMitigationRequest struct {
	SessionId          string `json:"session_id" validate:"required,min=5,max=50,session_id"`
	SelectedMitigation string `json:"selected_mitigation" validate:"required,min=1,max=100"`
	TimeRemaining      int    `json:"time_remaining" validate:"omitempty,min=0,max=300"`
	Difficulty         string `json:"difficulty" validate:"omitempty,oneof=beginner intermediate expert"`
}

type ValidateMitigationResponse struct {
	IsCorrect             bool                     `json:"is_correct"`
	Points                int                      `json:"points"`
	SelectedEffectiveness entity.Effectiveness     `json:"selected_effectiveness"`
	BestMitigation        *entity.MitigationOption `json:"best_mitigation"`
	Stats                 *SessionStatsResponse    `json:"stats,omitempty"`
}
