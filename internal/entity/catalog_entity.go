package entity

// Effectiveness is the ordinal rating of a mitigation's defensive value.
type Effectiveness string

const (
	EffectivenessLow      Effectiveness = "Low"
	EffectivenessMedium   Effectiveness = "Medium"
	EffectivenessHigh     Effectiveness = "High"
	EffectivenessVeryHigh Effectiveness = "Very High"
)

// Rank maps the tier to a comparable score. Unknown tiers rank lowest.
func (e Effectiveness) Rank() int {
	switch e {
	case EffectivenessVeryHigh:
		return 4
	case EffectivenessHigh:
		return 3
	case EffectivenessMedium:
		return 2
	default:
		return 1
	}
}

// IsEffective reports whether picking this tier counts as a correct answer.
// High and Very High are both accepted, regardless of which single option
// was recorded as the best one for the round.
func (e Effectiveness) IsEffective() bool {
	return e == EffectivenessHigh || e == EffectivenessVeryHigh
}

// Phase is one of the 7 Lockheed Martin Cyber Kill Chain stages.
type Phase struct {
	Id          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// LogEntry is a security log sample tied to exactly one kill chain phase.
// Phase, Explanation and Indicators are spoilers and must be stripped
// before the entry is shown to a player.
type LogEntry struct {
	Id          string                 `json:"id"`
	Phase       string                 `json:"phase"`
	Raw         string                 `json:"raw"`
	Source      string                 `json:"source"`
	Severity    string                 `json:"severity"`
	Timestamp   string                 `json:"timestamp"`
	Metadata    map[string]interface{} `json:"metadata"`
	Explanation string                 `json:"explanation"`
	Indicators  []string               `json:"indicators"`
}

// MitigationOption is a defensive measure for one phase.
type MitigationOption struct {
	Id            string        `json:"id"`
	Phase         string        `json:"phase"`
	Name          string        `json:"name"`
	Description   string        `json:"description"`
	Icon          string        `json:"icon"`
	Effectiveness Effectiveness `json:"effectiveness"`
}

// DifficultyProfile configures one difficulty level: which phases can
// appear, how long the player has, and how many base points a correct
// answer is worth.
type DifficultyProfile struct {
	Level      string   `json:"level"`
	Phases     []string `json:"phases"`
	TimeLimit  int      `json:"time_limit"`
	BasePoints int      `json:"base_points"`
}
