package models

import "time"

// CheckIn is a single wellness entry. Rows are only ever inserted.
type CheckIn struct {
	ID        uint      `gorm:"primarykey" json:"-"`
	Timestamp time.Time `gorm:"not null" json:"timestamp"`
	Mood      int       `gorm:"not null" json:"mood"`   // 1-10, clamped by the caller
	Stress    int       `gorm:"not null" json:"stress"` // 1-10, clamped by the caller
	Comment   string    `json:"comment"`
}

// CheckInSummary aggregates a set of check-ins
type CheckInSummary struct {
	Count     int     `json:"count"`
	AvgMood   float64 `json:"avg_mood"`
	AvgStress float64 `json:"avg_stress"`
}

// DailyAverage is the per-day mean of mood and stress
type DailyAverage struct {
	Day       time.Time `json:"day"`
	Entries   int       `json:"entries"`
	AvgMood   float64   `json:"avg_mood"`
	AvgStress float64   `json:"avg_stress"`
}
