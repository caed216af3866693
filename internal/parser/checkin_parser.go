package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const (
	MinScore     = 1
	MaxScore     = 10
	DefaultScore = 5
)

// ParsedCheckIn represents a check-in parsed from quick syntax
type ParsedCheckIn struct {
	Mood      int
	Stress    int
	MoodSet   bool
	StressSet bool
	Comment   string
	Warnings  []string
	Errors    []string
}

var (
	moodRegex   = regexp.MustCompile(`(?i)\b(?:mood|m):(\S+)`)
	stressRegex = regexp.MustCompile(`(?i)\b(?:stress|s):(\S+)`)
)

// ParseCheckIn extracts scores from a one-line check-in.
// Syntax: "mood:3 stress:8 long week" (or "m:3 s:8 ...").
// Missing scores default to 5; out-of-range scores are clamped to [1,10]
// with a warning; whatever text is left becomes the comment.
func ParseCheckIn(input string) ParsedCheckIn {
	result := ParsedCheckIn{
		Mood:     DefaultScore,
		Stress:   DefaultScore,
		Warnings: []string{},
		Errors:   []string{},
	}

	if m := moodRegex.FindStringSubmatch(input); len(m) > 1 {
		score, warning, err := parseScore("mood", m[1])
		if err != nil {
			result.Errors = append(result.Errors, err.Error())
		} else {
			result.Mood = score
			result.MoodSet = true
			if warning != "" {
				result.Warnings = append(result.Warnings, warning)
			}
		}
		input = moodRegex.ReplaceAllString(input, "")
	}

	if m := stressRegex.FindStringSubmatch(input); len(m) > 1 {
		score, warning, err := parseScore("stress", m[1])
		if err != nil {
			result.Errors = append(result.Errors, err.Error())
		} else {
			result.Stress = score
			result.StressSet = true
			if warning != "" {
				result.Warnings = append(result.Warnings, warning)
			}
		}
		input = stressRegex.ReplaceAllString(input, "")
	}

	// Clean up the comment (remove extra spaces)
	result.Comment = strings.Join(strings.Fields(input), " ")

	return result
}

// parseScore converts a raw score and clamps it into range
func parseScore(field, raw string) (int, string, error) {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, "", fmt.Errorf("invalid %s %q: use a whole number from %d to %d", field, raw, MinScore, MaxScore)
	}
	clamped := ClampScore(value)
	if clamped != value {
		return clamped, fmt.Sprintf("%s %d is out of range, using %d", field, value, clamped), nil
	}
	return clamped, "", nil
}

// ClampScore forces a score into [1,10]
func ClampScore(score int) int {
	if score < MinScore {
		return MinScore
	}
	if score > MaxScore {
		return MaxScore
	}
	return score
}
