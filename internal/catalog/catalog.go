// Package catalog holds the static game content: kill chain phases,
// security log samples, mitigation options, and difficulty profiles.
// Everything is loaded once at startup and never mutated afterwards;
// cross-invariants between the tables are checked at load time so a
// broken catalog fails the process instead of the first request.
package catalog

import (
	"fmt"

	"killchain-analyzer-be/internal/entity"
)

type Catalog struct {
	phases       []entity.Phase
	phaseById    map[string]*entity.Phase
	logsByPhase  map[string][]*entity.LogEntry
	mitsByPhase  map[string][]*entity.MitigationOption
	difficulties map[string]*entity.DifficultyProfile
}

// New indexes the static tables and validates them. It returns an error
// when a log or mitigation references an unknown phase, a phase has no
// High/Very High mitigation, or a difficulty lists a phase without logs.
func New() (*Catalog, error) {
	c := &Catalog{
		phases:       killChainPhases,
		phaseById:    make(map[string]*entity.Phase, len(killChainPhases)),
		logsByPhase:  make(map[string][]*entity.LogEntry),
		mitsByPhase:  make(map[string][]*entity.MitigationOption),
		difficulties: make(map[string]*entity.DifficultyProfile, len(difficultyProfiles)),
	}

	for i := range killChainPhases {
		p := &killChainPhases[i]
		if _, dup := c.phaseById[p.Id]; dup {
			return nil, fmt.Errorf("catalog: duplicate phase %q", p.Id)
		}
		c.phaseById[p.Id] = p
	}

	for i := range logEntries {
		l := &logEntries[i]
		if _, ok := c.phaseById[l.Phase]; !ok {
			return nil, fmt.Errorf("catalog: log %q references unknown phase %q", l.Id, l.Phase)
		}
		c.logsByPhase[l.Phase] = append(c.logsByPhase[l.Phase], l)
	}

	for i := range mitigationOptions {
		m := &mitigationOptions[i]
		if _, ok := c.phaseById[m.Phase]; !ok {
			return nil, fmt.Errorf("catalog: mitigation %q references unknown phase %q", m.Id, m.Phase)
		}
		c.mitsByPhase[m.Phase] = append(c.mitsByPhase[m.Phase], m)
	}

	// Every phase needs at least one option the engine can call "best".
	for id := range c.phaseById {
		effective := false
		for _, m := range c.mitsByPhase[id] {
			if m.Effectiveness.IsEffective() {
				effective = true
				break
			}
		}
		if !effective {
			return nil, fmt.Errorf("catalog: phase %q has no High or Very High mitigation", id)
		}
	}

	for i := range difficultyProfiles {
		d := &difficultyProfiles[i]
		if len(d.Phases) == 0 {
			return nil, fmt.Errorf("catalog: difficulty %q has no eligible phases", d.Level)
		}
		for _, phase := range d.Phases {
			if _, ok := c.phaseById[phase]; !ok {
				return nil, fmt.Errorf("catalog: difficulty %q references unknown phase %q", d.Level, phase)
			}
			if len(c.logsByPhase[phase]) == 0 {
				return nil, fmt.Errorf("catalog: difficulty %q lists phase %q which has no logs", d.Level, phase)
			}
		}
		c.difficulties[d.Level] = d
	}

	return c, nil
}

// Phases returns the 7 phases in attack order.
func (c *Catalog) Phases() []entity.Phase {
	return c.phases
}

// Phase looks up one phase by id.
func (c *Catalog) Phase(id string) (*entity.Phase, bool) {
	p, ok := c.phaseById[id]
	return p, ok
}

// ValidPhase reports whether id names one of the 7 phases.
func (c *Catalog) ValidPhase(id string) bool {
	_, ok := c.phaseById[id]
	return ok
}

// LogsForPhase returns the log samples belonging to one phase.
func (c *Catalog) LogsForPhase(phase string) []*entity.LogEntry {
	return c.logsByPhase[phase]
}

// MitigationsForPhase returns the phase's options in fixed catalog order.
func (c *Catalog) MitigationsForPhase(phase string) []*entity.MitigationOption {
	return c.mitsByPhase[phase]
}

// Mitigation resolves an option id within one phase's option set.
func (c *Catalog) Mitigation(phase, id string) (*entity.MitigationOption, bool) {
	for _, m := range c.mitsByPhase[phase] {
		if m.Id == id {
			return m, true
		}
	}
	return nil, false
}

// BestMitigation picks the option with the highest effectiveness tier.
// Ties break to the first option in catalog order, never randomly.
func (c *Catalog) BestMitigation(phase string) *entity.MitigationOption {
	var best *entity.MitigationOption
	for _, m := range c.mitsByPhase[phase] {
		if best == nil || m.Effectiveness.Rank() > best.Effectiveness.Rank() {
			best = m
		}
	}
	return best
}

// Difficulty returns the profile for a level.
func (c *Catalog) Difficulty(level string) *entity.DifficultyProfile {
	if d, ok := c.difficulties[level]; ok {
		return d
	}
	return c.difficulties[DifficultyBeginner]
}

// NormalizeDifficulty maps anything that is not a known level to beginner.
func NormalizeDifficulty(level string) string {
	switch level {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyExpert:
		return level
	default:
		return DifficultyBeginner
	}
}
