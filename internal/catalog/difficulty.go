package catalog

import "killchain-analyzer-be/internal/entity"

const (
	DifficultyBeginner     = "beginner"
	DifficultyIntermediate = "intermediate"
	DifficultyExpert       = "expert"
)

// Difficulty profiles. The phase subsets are strictly nested: expert
// covers intermediate, intermediate covers beginner.
var difficultyProfiles = []entity.DifficultyProfile{
	{
		Level:      DifficultyBeginner,
		Phases:     []string{"reconnaissance", "weaponization", "delivery"},
		TimeLimit:  60,
		BasePoints: 10,
	},
	{
		Level:      DifficultyIntermediate,
		Phases:     []string{"reconnaissance", "weaponization", "delivery", "exploitation", "installation"},
		TimeLimit:  40,
		BasePoints: 25,
	},
	{
		Level:      DifficultyExpert,
		Phases:     []string{"reconnaissance", "weaponization", "delivery", "exploitation", "installation", "command_control", "actions_objectives"},
		TimeLimit:  30,
		BasePoints: 50,
	},
}
