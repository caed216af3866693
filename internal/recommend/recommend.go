package recommend

// Level is the concern band a mood/stress pair falls into
type Level int

const (
	LevelPositive Level = iota
	LevelModerate
	LevelHighConcern
)

const (
	HighConcernMessage = "We recommend checking out our Stress Management Strategies and scheduling a coaching session."
	ModerateMessage    = "Consider exploring mindfulness exercises to boost your mood."
	PositiveMessage    = "Great job! Keep up the good work and remember to take short breaks."
)

// Thresholds shared with the department alert in the manager overview.
const (
	LowMoodBelow      = 4
	ModerateMoodBelow = 6
	HighStressAbove   = 7
)

// Classify maps a mood/stress pair in [1,10]x[1,10] to a concern level.
// Rules are checked in order and the first match wins.
func Classify(mood, stress int) Level {
	if mood < LowMoodBelow || stress > HighStressAbove {
		return LevelHighConcern
	}
	if mood < ModerateMoodBelow {
		return LevelModerate
	}
	return LevelPositive
}

// Recommend returns the advice text for a mood/stress pair.
// Inputs outside [1,10] must be clamped by the caller.
func Recommend(mood, stress int) string {
	return Classify(mood, stress).Message()
}

// Message returns the fixed text for a level
func (l Level) Message() string {
	switch l {
	case LevelHighConcern:
		return HighConcernMessage
	case LevelModerate:
		return ModerateMessage
	default:
		return PositiveMessage
	}
}

func (l Level) String() string {
	switch l {
	case LevelHighConcern:
		return "high"
	case LevelModerate:
		return "moderate"
	default:
		return "positive"
	}
}
