package service

import "killchain-analyzer-be/internal/dto"

type ILeaderboardService interface {
	Top(limit int) []dto.LeaderboardEntry
}

type leaderboardService struct{}

// NewLeaderboardService serves a static demo leaderboard. A production
// deployment would back this with real per-player scores in a database.
func NewLeaderboardService() ILeaderboardService {
	return &leaderboardService{}
}

var mockLeaderboard = []dto.LeaderboardEntry{
	{Rank: 1, Name: "CyberHunter", Score: 2150, Mastery: "7/7 phases"},
	{Rank: 2, Name: "SecurityPro", Score: 1890, Mastery: "6/7 phases"},
	{Rank: 3, Name: "KillChainMaster", Score: 1750, Mastery: "7/7 phases"},
	{Rank: 4, Name: "ThreatAnalyst", Score: 1620, Mastery: "5/7 phases"},
	{Rank: 5, Name: "BlueTeamer", Score: 1500, Mastery: "4/7 phases"},
	{Rank: 6, Name: "SOCAnalyst", Score: 1350, Mastery: "5/7 phases"},
	{Rank: 7, Name: "InfoSecPro", Score: 1200, Mastery: "4/7 phases"},
	{Rank: 8, Name: "CyberDefender", Score: 1100, Mastery: "3/7 phases"},
	{Rank: 9, Name: "SecurityNinja", Score: 950, Mastery: "4/7 phases"},
	{Rank: 10, Name: "ThreatHunter", Score: 850, Mastery: "3/7 phases"},
}

func (s *leaderboardService) Top(limit int) []dto.LeaderboardEntry {
	if limit <= 0 || limit > len(mockLeaderboard) {
		limit = len(mockLeaderboard)
	}
	out := make([]dto.LeaderboardEntry, limit)
	copy(out, mockLeaderboard[:limit])
	return out
}
