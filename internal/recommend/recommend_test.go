package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecommend_Boundaries(t *testing.T) {
	tests := []struct {
		name   string
		mood   int
		stress int
		want   string
	}{
		{"mood 4 stress 5 is moderate", 4, 5, ModerateMessage},
		{"low mood wins", 3, 1, HighConcernMessage},
		{"high stress overrides moderate mood", 5, 8, HighConcernMessage},
		{"nothing matches", 6, 7, PositiveMessage},
		{"stress 7 is not high", 4, 7, ModerateMessage},
		{"stress 8 with great mood", 10, 8, HighConcernMessage},
		{"mood 5 is moderate", 5, 1, ModerateMessage},
		{"top of range", 10, 10, HighConcernMessage},
		{"bottom of range", 1, 1, HighConcernMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Recommend(tt.mood, tt.stress))
		})
	}
}

func TestRecommend_TotalOverDomain(t *testing.T) {
	counts := map[Level]int{}
	for mood := 1; mood <= 10; mood++ {
		for stress := 1; stress <= 10; stress++ {
			level := Classify(mood, stress)

			var want Level
			switch {
			case mood < 4 || stress > 7:
				want = LevelHighConcern
			case mood < 6:
				want = LevelModerate
			default:
				want = LevelPositive
			}
			assert.Equal(t, want, level, "mood=%d stress=%d", mood, stress)
			assert.Equal(t, level.Message(), Recommend(mood, stress))
			counts[level]++
		}
	}

	// 3 low-mood rows (30) + stress 8-10 for moods 4-10 (21)
	assert.Equal(t, 51, counts[LevelHighConcern])
	// moods 4-5 with stress 1-7
	assert.Equal(t, 14, counts[LevelModerate])
	// moods 6-10 with stress 1-7
	assert.Equal(t, 35, counts[LevelPositive])
}

func TestRecommend_Idempotent(t *testing.T) {
	first := Recommend(5, 5)
	second := Recommend(5, 5)
	assert.Equal(t, first, second)
}

func TestLevel_String(t *testing.T) {
	assert.Equal(t, "high", LevelHighConcern.String())
	assert.Equal(t, "moderate", LevelModerate.String())
	assert.Equal(t, "positive", LevelPositive.String())
}
