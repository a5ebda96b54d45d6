package dto

type SessionRequest struct {
	SessionId string `json:"session_id" validate:"required,min=5,max=50,session_id"`
}

type SessionStatsResponse struct {
	TotalGames     int     `json:"total_games"`
	CorrectAnswers int     `json:"correct_answers"`
	CurrentScore   int     `json:"current_score"`
	CurrentStreak  int     `json:"current_streak"`
	Accuracy       float64 `json:"accuracy"`
	SessionCreated string  `json:"session_created"`
}

type ResetSessionResponse struct {
	Existed bool `json:"existed"`
}

type CleanupSessionsRequest struct {
	MaxAgeHours *int `json:"max_age_hours" validate:"omitempty,min=0,max=8760"`
}

type CleanupSessionsResponse struct {
	Removed int `json:"removed"`
}

type SessionCountResponse struct {
	ActiveSessions int `json:"active_sessions"`
}
