package db

import (
	"fmt"
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/balkashynov/wellbeing/internal/models"
)

// CheckinStore is the append-only check-in log of one session.
// It exposes no update or delete.
type CheckinStore struct {
	db *gorm.DB
}

// NewCheckinStore wraps an opened session database
func NewCheckinStore(db *gorm.DB) *CheckinStore {
	return &CheckinStore{db: db}
}

// Append adds a check-in to the end of the log and returns the stored copy.
// Mood and stress are stored as given.
func (s *CheckinStore) Append(checkin models.CheckIn) (models.CheckIn, error) {
	checkin.ID = 0
	checkin.Timestamp = checkin.Timestamp.Truncate(time.Second)

	if err := s.db.Create(&checkin).Error; err != nil {
		return models.CheckIn{}, fmt.Errorf("failed to save check-in: %w", err)
	}
	return checkin, nil
}

// All returns every check-in, oldest first
func (s *CheckinStore) All() ([]models.CheckIn, error) {
	checkins := []models.CheckIn{}
	if err := s.db.Order("id ASC").Find(&checkins).Error; err != nil {
		return nil, fmt.Errorf("failed to load check-ins: %w", err)
	}
	return checkins, nil
}

// Count returns how many check-ins have been recorded
func (s *CheckinStore) Count() (int, error) {
	var n int64
	if err := s.db.Model(&models.CheckIn{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count check-ins: %w", err)
	}
	return int(n), nil
}

// Summary averages mood and stress over the whole log.
// An empty log yields a zero summary.
func (s *CheckinStore) Summary() (models.CheckInSummary, error) {
	var summary models.CheckInSummary
	err := s.db.Model(&models.CheckIn{}).
		Select("COUNT(*) AS count, COALESCE(AVG(mood), 0) AS avg_mood, COALESCE(AVG(stress), 0) AS avg_stress").
		Scan(&summary).Error
	if err != nil {
		return models.CheckInSummary{}, fmt.Errorf("failed to summarize check-ins: %w", err)
	}
	return summary, nil
}

// DailyAverages groups check-ins by calendar day and averages each day,
// returning days in ascending order
func (s *CheckinStore) DailyAverages() ([]models.DailyAverage, error) {
	checkins, err := s.All()
	if err != nil {
		return nil, err
	}

	days := []models.DailyAverage{}
	index := make(map[time.Time]int)
	moodSums := []int{}
	stressSums := []int{}

	for _, c := range checkins {
		ts := c.Timestamp
		day := time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, ts.Location())

		i, ok := index[day]
		if !ok {
			i = len(days)
			index[day] = i
			days = append(days, models.DailyAverage{Day: day})
			moodSums = append(moodSums, 0)
			stressSums = append(stressSums, 0)
		}
		days[i].Entries++
		moodSums[i] += c.Mood
		stressSums[i] += c.Stress
	}

	for i := range days {
		days[i].AvgMood = float64(moodSums[i]) / float64(days[i].Entries)
		days[i].AvgStress = float64(stressSums[i]) / float64(days[i].Entries)
	}

	// Caller-supplied timestamps are not guaranteed to be monotonic
	sort.Slice(days, func(i, j int) bool {
		return days[i].Day.Before(days[j].Day)
	})
	return days, nil
}
