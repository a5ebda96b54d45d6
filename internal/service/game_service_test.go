package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"killchain-analyzer-be/internal/catalog"
	"killchain-analyzer-be/internal/dto"
	"killchain-analyzer-be/internal/pkg/logger"
	"killchain-analyzer-be/internal/repository/memory"
)

func newGameService(t *testing.T) (*gameService, ISessionService, *catalog.Catalog) {
	t.Helper()
	cat, err := catalog.New()
	require.NoError(t, err)

	sessions := NewSessionService(memory.NewSessionRepository(), logger.NewNopLogger())
	svc := NewGameService(cat, sessions, logger.NewNopLogger()).(*gameService)
	return svc, sessions, cat
}

func phaseSet(phases []string) map[string]bool {
	set := make(map[string]bool, len(phases))
	for _, p := range phases {
		set[p] = true
	}
	return set
}

func TestGenerateLogStaysWithinEligiblePhases(t *testing.T) {
	for _, level := range []string{"beginner", "intermediate", "expert"} {
		t.Run(level, func(t *testing.T) {
			svc, sessions, cat := newGameService(t)
			profile := cat.Difficulty(level)
			eligible := phaseSet(profile.Phases)

			poolSize := 0
			for _, p := range profile.Phases {
				poolSize += len(cat.LogsForPhase(p))
			}
			require.Greater(t, poolSize, 0)

			// Force every index in the candidate pool in turn.
			for i := 0; i < poolSize; i++ {
				idx := i
				svc.pick = func(n int) int {
					require.Equal(t, poolSize, n)
					return idx
				}

				res, err := svc.GenerateLog("table-test-session", level, nil)
				require.NoError(t, err)
				assert.Equal(t, level, res.Difficulty)
				assert.Equal(t, profile.TimeLimit, res.TimeLimit)

				session := sessions.GetOrCreate("table-test-session")
				assert.True(t, eligible[session.CorrectPhase],
					"drew log %s from phase %s, not eligible at %s", res.Log.Id, session.CorrectPhase, level)
			}
		})
	}
}

func TestGenerateLogSanitizesSpoilers(t *testing.T) {
	svc, sessions, _ := newGameService(t)

	res, err := svc.GenerateLog("spoiler-check", "beginner", nil)
	require.NoError(t, err)

	assert.NotEmpty(t, res.Log.Id)
	assert.NotEmpty(t, res.Log.Raw)
	assert.NotEmpty(t, res.Log.Source)

	// The full entry stays server-side in the session.
	session := sessions.GetOrCreate("spoiler-check")
	require.NotNil(t, session.LogData)
	assert.Equal(t, res.Log.Id, session.LogData.Id)
	assert.NotEmpty(t, session.LogData.Explanation)
	assert.NotEmpty(t, session.CorrectPhase)
	assert.Empty(t, session.CorrectMitigation)
}

func TestGenerateLogInvalidDifficultyFallsBack(t *testing.T) {
	svc, _, _ := newGameService(t)

	res, err := svc.GenerateLog("fallback-check", "impossible", nil)
	require.NoError(t, err)
	assert.Equal(t, "beginner", res.Difficulty)
	assert.Equal(t, 60, res.TimeLimit)
}

func TestGenerateLogAbandonsPreviousRound(t *testing.T) {
	svc, sessions, _ := newGameService(t)

	svc.pick = func(n int) int { return 0 }
	_, err := svc.GenerateLog("abandon-check", "beginner", nil)
	require.NoError(t, err)
	session := sessions.GetOrCreate("abandon-check")
	firstLog := session.CurrentLog

	svc.pick = func(n int) int { return n - 1 }
	res, err := svc.GenerateLog("abandon-check", "beginner", nil)
	require.NoError(t, err)

	// The second draw's key is authoritative; the first is just gone.
	assert.NotEqual(t, firstLog, session.CurrentLog)
	assert.Equal(t, res.Log.Id, session.CurrentLog)
	assert.Empty(t, session.CorrectMitigation)
}

func TestDynamicDifficultyRatchet(t *testing.T) {
	tests := []struct {
		name      string
		requested string
		stats     map[string]interface{}
		want      string
	}{
		{
			name:      "fresh player stays at beginner",
			requested: "beginner",
			stats:     map[string]interface{}{"score": 0, "streak": 0, "accuracy": 100},
			want:      "beginner",
		},
		{
			name:      "mid performance escalates beginner to intermediate",
			requested: "beginner",
			stats:     map[string]interface{}{"score": 200, "streak": 2, "accuracy": 80},
			want:      "intermediate",
		},
		{
			name:      "high performance escalates to expert",
			requested: "beginner",
			stats:     map[string]interface{}{"score": 400, "streak": 5, "accuracy": 90},
			want:      "expert",
		},
		{
			name:      "never de-escalates below request",
			requested: "expert",
			stats:     map[string]interface{}{"score": 0, "streak": 0, "accuracy": 0},
			want:      "expert",
		},
		{
			name:      "intermediate request not lowered by beginner performance",
			requested: "intermediate",
			stats:     map[string]interface{}{"score": 0, "streak": 0, "accuracy": 0},
			want:      "intermediate",
		},
		{
			name:      "no stats defaults keep requested level",
			requested: "intermediate",
			stats:     nil,
			want:      "intermediate",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _ := newGameService(t)
			res, err := svc.GenerateLog("ratchet-check", tt.requested, tt.stats)
			require.NoError(t, err)
			assert.Equal(t, tt.want, res.Difficulty)
		})
	}
}

func TestNormalizeStats(t *testing.T) {
	tests := []struct {
		name string
		in   map[string]interface{}
		want playerStats
	}{
		{
			name: "nil map uses defaults",
			in:   nil,
			want: playerStats{Score: 0, Streak: 0, Accuracy: 100},
		},
		{
			name: "numeric values pass through",
			in:   map[string]interface{}{"score": 120.0, "streak": 3, "accuracy": 75.5},
			want: playerStats{Score: 120, Streak: 3, Accuracy: 75.5},
		},
		{
			name: "negative values clamp to zero",
			in:   map[string]interface{}{"score": -10.0, "streak": -1, "accuracy": -5.0},
			want: playerStats{Score: 0, Streak: 0, Accuracy: 0},
		},
		{
			name: "non-numeric fields fall back to defaults",
			in:   map[string]interface{}{"score": "lots", "streak": true, "accuracy": []int{1}},
			want: playerStats{Score: 0, Streak: 0, Accuracy: 100},
		},
		{
			name: "missing fields fall back individually",
			in:   map[string]interface{}{"score": 50.0},
			want: playerStats{Score: 50, Streak: 0, Accuracy: 100},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeStats(tt.in))
		})
	}
}

func TestValidatePhaseExactMatchAlwaysCorrect(t *testing.T) {
	svc, sessions, cat := newGameService(t)

	// Every log/phase pair in the catalog validates against itself.
	for _, p := range cat.Phases() {
		for _, entry := range cat.LogsForPhase(p.Id) {
			session := sessions.GetOrCreate("exact-match-check")
			session.CurrentLog = entry.Id
			session.CorrectPhase = entry.Phase
			session.CorrectMitigation = ""
			session.LogData = entry

			res, err := svc.ValidatePhase("exact-match-check", entry.Phase)
			require.NoError(t, err)
			assert.True(t, res.IsCorrect, "log %s phase %s", entry.Id, entry.Phase)
			assert.NotEmpty(t, res.MitigationStrategies)
			assert.Equal(t, entry.Explanation, res.Explanation)
			assert.Equal(t, entry.Indicators, res.Indicators)

			// The stored best option has to be High or Very High.
			best := cat.BestMitigation(entry.Phase)
			assert.Equal(t, best.Id, session.CorrectMitigation)
			assert.True(t, best.Effectiveness.IsEffective())
		}
	}
}

func TestValidatePhaseMismatchRevealsTruth(t *testing.T) {
	svc, sessions, cat := newGameService(t)

	svc.pick = func(n int) int { return 0 }
	_, err := svc.GenerateLog("mismatch-check", "beginner", nil)
	require.NoError(t, err)

	session := sessions.GetOrCreate("mismatch-check")
	truth := session.CorrectPhase

	wrong := "actions_objectives"
	if truth == wrong {
		wrong = "reconnaissance"
	}

	res, err := svc.ValidatePhase("mismatch-check", wrong)
	require.NoError(t, err)
	assert.False(t, res.IsCorrect)
	assert.Equal(t, truth, res.CorrectPhase)
	require.NotNil(t, res.PhaseInfo)
	assert.Equal(t, truth, res.PhaseInfo.Id)
	assert.NotEmpty(t, res.Explanation)

	// The round stays open and no mitigation key was set.
	assert.Equal(t, truth, session.CorrectPhase)
	assert.Empty(t, session.CorrectMitigation)

	_, ok := cat.Phase(truth)
	assert.True(t, ok)
}

func TestValidatePhaseErrors(t *testing.T) {
	svc, _, _ := newGameService(t)

	_, err := svc.ValidatePhase("error-check", "no_such_phase")
	assert.ErrorIs(t, err, dto.ErrInvalidPhase)

	// Valid phase, but nothing was drawn for this session yet.
	_, err = svc.ValidatePhase("error-check", "delivery")
	assert.ErrorIs(t, err, dto.ErrNoActiveRound)
}

func TestValidateMitigationTierRule(t *testing.T) {
	svc, sessions, cat := newGameService(t)

	// Correct iff High or Very High, even when the option does not
	// match the recorded best id.
	for _, p := range cat.Phases() {
		entry := cat.LogsForPhase(p.Id)[0]
		for _, option := range cat.MitigationsForPhase(p.Id) {
			session := sessions.GetOrCreate("tier-check")
			session.CurrentLog = entry.Id
			session.CorrectPhase = p.Id
			session.CorrectMitigation = cat.BestMitigation(p.Id).Id
			session.LogData = entry

			res, err := svc.ValidateMitigation("tier-check", option.Id, 0, "beginner")
			require.NoError(t, err)
			assert.Equal(t, option.Effectiveness.IsEffective(), res.IsCorrect,
				"phase %s option %s (%s)", p.Id, option.Id, option.Effectiveness)
			assert.Equal(t, option.Effectiveness, res.SelectedEffectiveness)
			require.NotNil(t, res.BestMitigation)
			assert.Equal(t, cat.BestMitigation(p.Id).Id, res.BestMitigation.Id)
		}
	}
}

func TestValidateMitigationErrors(t *testing.T) {
	svc, sessions, _ := newGameService(t)

	_, err := svc.ValidateMitigation("mit-error-check", "recon_mit_1", 10, "beginner")
	assert.ErrorIs(t, err, dto.ErrNoActivePhase)

	session := sessions.GetOrCreate("mit-error-check")
	session.CorrectPhase = "delivery"

	// Option from another phase does not resolve.
	_, err = svc.ValidateMitigation("mit-error-check", "recon_mit_1", 10, "beginner")
	assert.ErrorIs(t, err, dto.ErrInvalidMitigation)

	_, err = svc.ValidateMitigation("mit-error-check", "garbage", 10, "beginner")
	assert.ErrorIs(t, err, dto.ErrInvalidMitigation)
}

func TestValidateMitigationWithoutPhaseStepHasNoBest(t *testing.T) {
	svc, sessions, _ := newGameService(t)

	// Round open, but the phase guess never succeeded, so no best
	// mitigation was recorded.
	session := sessions.GetOrCreate("no-best-check")
	session.CorrectPhase = "delivery"
	session.CorrectMitigation = ""

	res, err := svc.ValidateMitigation("no-best-check", "delivery_mit_4", 10, "beginner")
	require.NoError(t, err)
	assert.True(t, res.IsCorrect)
	assert.Nil(t, res.BestMitigation)
}

func TestCalculatePoints(t *testing.T) {
	tests := []struct {
		name              string
		basePoints        int
		timeRemaining     int
		phaseCorrect      bool
		mitigationCorrect bool
		want              int
	}{
		{
			name:       "beginner both correct with time bonus",
			basePoints: 10, timeRemaining: 20, phaseCorrect: true, mitigationCorrect: true,
			want: 30, // 10 + 10 + floor(20*0.5)
		},
		{
			name:       "expert phase only, no time left",
			basePoints: 50, timeRemaining: 0, phaseCorrect: true, mitigationCorrect: false,
			want: 50,
		},
		{
			name:       "phase incorrect scores nothing",
			basePoints: 50, timeRemaining: 30, phaseCorrect: false, mitigationCorrect: true,
			want: 0,
		},
		{
			name:       "odd seconds truncate",
			basePoints: 25, timeRemaining: 7, phaseCorrect: true, mitigationCorrect: true,
			want: 53, // 25 + 25 + floor(3.5)
		},
		{
			name:       "intermediate both correct",
			basePoints: 25, timeRemaining: 40, phaseCorrect: true, mitigationCorrect: true,
			want: 70,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calculatePoints(tt.basePoints, tt.timeRemaining, tt.phaseCorrect, tt.mitigationCorrect)
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got, 0)
		})
	}
}

func TestValidateMitigationClampsNegativeTime(t *testing.T) {
	svc, sessions, cat := newGameService(t)

	session := sessions.GetOrCreate("clamp-check")
	session.CorrectPhase = "exploitation"
	session.CorrectMitigation = cat.BestMitigation("exploitation").Id

	res, err := svc.ValidateMitigation("clamp-check", "exploit_mit_1", -50, "expert")
	require.NoError(t, err)
	assert.True(t, res.IsCorrect)
	// 50 base + 50 mitigation + no negative time bonus.
	assert.Equal(t, 100, res.Points)
}
