package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidatesCleanly(t *testing.T) {
	c, err := New()
	require.NoError(t, err)
	require.NotNil(t, c)

	assert.Len(t, c.Phases(), 7)
	for _, p := range c.Phases() {
		assert.True(t, c.ValidPhase(p.Id))
		assert.NotEmpty(t, c.LogsForPhase(p.Id), "phase %s has no logs", p.Id)
		assert.NotEmpty(t, c.MitigationsForPhase(p.Id), "phase %s has no mitigations", p.Id)
	}
}

func TestLogEntriesBelongToDeclaredPhase(t *testing.T) {
	c, err := New()
	require.NoError(t, err)

	for _, p := range c.Phases() {
		for _, l := range c.LogsForPhase(p.Id) {
			assert.Equal(t, p.Id, l.Phase)
			assert.NotEmpty(t, l.Explanation)
			assert.NotEmpty(t, l.Indicators)
		}
	}
}

func TestDifficultyPhaseSubsetsAreNested(t *testing.T) {
	c, err := New()
	require.NoError(t, err)

	beginner := c.Difficulty(DifficultyBeginner)
	intermediate := c.Difficulty(DifficultyIntermediate)
	expert := c.Difficulty(DifficultyExpert)

	assert.Subset(t, intermediate.Phases, beginner.Phases)
	assert.Subset(t, expert.Phases, intermediate.Phases)
	assert.Len(t, expert.Phases, 7)

	assert.Equal(t, 10, beginner.BasePoints)
	assert.Equal(t, 25, intermediate.BasePoints)
	assert.Equal(t, 50, expert.BasePoints)
	assert.Equal(t, 60, beginner.TimeLimit)
	assert.Equal(t, 40, intermediate.TimeLimit)
	assert.Equal(t, 30, expert.TimeLimit)
}

func TestBestMitigationIsDeterministicFirstMax(t *testing.T) {
	c, err := New()
	require.NoError(t, err)

	tests := []struct {
		phase  string
		wantId string
	}{
		// Two High options; the first in catalog order wins the tie.
		{phase: "reconnaissance", wantId: "recon_mit_1"},
		// Single Very High option beats earlier High ones.
		{phase: "delivery", wantId: "delivery_mit_4"},
		// Very High listed first.
		{phase: "exploitation", wantId: "exploit_mit_1"},
		{phase: "installation", wantId: "install_mit_1"},
		{phase: "actions_objectives", wantId: "action_mit_1"},
	}

	for _, tt := range tests {
		t.Run(tt.phase, func(t *testing.T) {
			best := c.BestMitigation(tt.phase)
			require.NotNil(t, best)
			assert.Equal(t, tt.wantId, best.Id)
			assert.True(t, best.Effectiveness.IsEffective())

			// Stable across repeated calls.
			for i := 0; i < 5; i++ {
				assert.Equal(t, tt.wantId, c.BestMitigation(tt.phase).Id)
			}
		})
	}
}

func TestEveryPhaseHasEffectiveMitigation(t *testing.T) {
	c, err := New()
	require.NoError(t, err)

	for _, p := range c.Phases() {
		best := c.BestMitigation(p.Id)
		require.NotNil(t, best, "phase %s", p.Id)
		assert.True(t, best.Effectiveness.IsEffective(), "phase %s best option is only %s", p.Id, best.Effectiveness)
	}
}

func TestNormalizeDifficulty(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"beginner", "beginner"},
		{"intermediate", "intermediate"},
		{"expert", "expert"},
		{"", "beginner"},
		{"nightmare", "beginner"},
		{"Expert", "beginner"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeDifficulty(tt.in), "input %q", tt.in)
	}
}

func TestMitigationLookupScopedToPhase(t *testing.T) {
	c, err := New()
	require.NoError(t, err)

	_, ok := c.Mitigation("reconnaissance", "recon_mit_1")
	assert.True(t, ok)

	// Valid id, wrong phase: not resolvable.
	_, ok = c.Mitigation("delivery", "recon_mit_1")
	assert.False(t, ok)

	_, ok = c.Mitigation("delivery", "no_such_option")
	assert.False(t, ok)
}
