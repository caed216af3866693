package session

import (
	"time"

	"github.com/balkashynov/wellbeing/internal/models"
	"github.com/balkashynov/wellbeing/internal/recommend"
)

const (
	CheckInSubmittedMessage = "Your check-in has been submitted!"
	NoHistoryMessage        = "No check-in data available yet."
	NoReportMessage         = "No check-in data available for detailed reports."
	NoCriticalAlert         = "Automated Alert: No departments with critical wellness issues at this time."
)

// CheckInResult is returned after a check-in is submitted
type CheckInResult struct {
	CheckIn        models.CheckIn  `json:"checkin"`
	Message        string          `json:"message"`
	Recommendation string          `json:"recommendation"`
	Level          recommend.Level `json:"-"`
}

// TrendPoint is one point of the mood-over-time series
type TrendPoint struct {
	At     time.Time `json:"at"`
	Mood   int       `json:"mood"`
	Stress int       `json:"stress"`
}

// HistoryView backs the employee History section
type HistoryView struct {
	CheckIns []models.CheckIn `json:"checkins"`
	Trend    []TrendPoint     `json:"trend"`
	Empty    bool             `json:"empty"`
	Message  string           `json:"message,omitempty"`
}

// ResourcesView backs the Resource Hub
type ResourcesView struct {
	Category  string            `json:"category"`
	Options   []string          `json:"options"`
	Resources []models.Resource `json:"resources"`
}

// CoachingView backs the coaching section
type CoachingView struct {
	Coaches  []models.Coach           `json:"coaches"`
	Requests []models.CoachingRequest `json:"requests"`
}

// CoachingConfirmation is returned after a coaching request
type CoachingConfirmation struct {
	Request models.CoachingRequest `json:"request"`
	Message string                 `json:"message"`
}

// OverviewView backs the manager Overview section
type OverviewView struct {
	Departments []models.DepartmentMetric `json:"departments"`
	Critical    []models.DepartmentMetric `json:"critical"`
	Alert       string                    `json:"alert"`
}

// ReportView backs the manager Detailed Reports section
type ReportView struct {
	CheckIns []models.CheckIn      `json:"checkins"`
	Trend    []TrendPoint          `json:"trend"`
	Daily    []models.DailyAverage `json:"daily"`
	Summary  models.CheckInSummary `json:"summary"`
	Empty    bool                  `json:"empty"`
	Message  string                `json:"message,omitempty"`
}

func trendOf(checkins []models.CheckIn) []TrendPoint {
	points := make([]TrendPoint, 0, len(checkins))
	for _, c := range checkins {
		points = append(points, TrendPoint{At: c.Timestamp, Mood: c.Mood, Stress: c.Stress})
	}
	return points
}
