package models

import "time"

// Resource is a static wellness reference entry
type Resource struct {
	Title    string `yaml:"title" json:"title"`
	Category string `yaml:"category" json:"category"`
}

// Coach is a static coaching contact
type Coach struct {
	Name      string `yaml:"name" json:"name"`
	Specialty string `yaml:"specialty" json:"specialty"`
}

// DepartmentMetric is an illustrative per-department aggregate shown to managers
type DepartmentMetric struct {
	Department string  `yaml:"department" json:"department"`
	AvgMood    float64 `yaml:"avg_mood" json:"avg_mood"`
	AvgStress  float64 `yaml:"avg_stress" json:"avg_stress"`
	EntryCount int     `yaml:"entry_count" json:"entry_count"`
}

// CoachingRequest records a requested coaching session
type CoachingRequest struct {
	ID          string    `json:"id"`
	Coach       Coach     `json:"coach"`
	ScheduledAt time.Time `json:"scheduled_at"`
	RequestedAt time.Time `json:"requested_at"`
}
