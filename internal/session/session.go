package session

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/balkashynov/wellbeing/internal/catalog"
	"github.com/balkashynov/wellbeing/internal/clock"
	"github.com/balkashynov/wellbeing/internal/db"
	"github.com/balkashynov/wellbeing/internal/models"
	"github.com/balkashynov/wellbeing/internal/parser"
	"github.com/balkashynov/wellbeing/internal/recommend"
)

// Session is the state of one user's use of the dashboard. It owns the
// check-in store, the login flag and the role; nothing is shared between
// sessions and nothing outlives Close.
//
// A Session is not safe for concurrent use.
type Session struct {
	ID string

	catalog *catalog.Catalog
	conn    *gorm.DB
	store   *db.CheckinStore
	clock   clock.Clock
	logger  *zap.Logger

	loggedIn bool
	username string
	role     models.Role
	coaching []models.CoachingRequest
}

// Option configures a Session
type Option func(*Session)

// WithClock replaces the system clock
func WithClock(c clock.Clock) Option {
	return func(s *Session) { s.clock = c }
}

// WithLogger sets the logger; the default discards everything
func WithLogger(l *zap.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// AsUser starts the session already logged in, for callers that have
// established identity some other way (the one-shot CLI commands)
func AsUser(username string, role models.Role) Option {
	return func(s *Session) {
		s.loggedIn = true
		s.username = username
		s.role = role
	}
}

// New opens a session with its own empty check-in store
func New(cat *catalog.Catalog, opts ...Option) (*Session, error) {
	conn, err := db.Open()
	if err != nil {
		return nil, err
	}

	s := &Session{
		ID:      uuid.NewString(),
		catalog: cat,
		conn:    conn,
		store:   db.NewCheckinStore(conn),
		clock:   clock.SystemClock{},
		logger:  zap.NewNop(),
		role:    models.RoleEmployee,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With(zap.String("session", s.ID))
	s.logger.Debug("Session opened")
	return s, nil
}

// Close ends the session and discards its check-ins
func (s *Session) Close() error {
	s.logger.Debug("Session closed")
	return db.Close(s.conn)
}

// Login marks the session as logged in. Credentials are not verified;
// both fields are required. Usernames containing "hr" get the manager role.
func (s *Session) Login(username, password string) error {
	if strings.TrimSpace(username) == "" || password == "" {
		return ErrMissingCredentials
	}

	s.loggedIn = true
	s.username = strings.TrimSpace(username)
	s.role = RoleForUsername(s.username)

	s.logger.Info("Logged in", zap.String("user", s.username), zap.String("role", string(s.role)))
	return nil
}

// RoleForUsername derives the initial role from a username
func RoleForUsername(username string) models.Role {
	if strings.Contains(strings.ToLower(username), "hr") {
		return models.RoleHRManager
	}
	return models.RoleEmployee
}

// Logout clears the login flag. Check-ins stay until Close.
func (s *Session) Logout() {
	s.logger.Info("Logged out", zap.String("user", s.username))
	s.loggedIn = false
	s.username = ""
	s.role = models.RoleEmployee
}

func (s *Session) LoggedIn() bool            { return s.loggedIn }
func (s *Session) Username() string          { return s.username }
func (s *Session) Role() models.Role         { return s.role }
func (s *Session) Catalog() *catalog.Catalog { return s.catalog }

// SelectRole switches the dashboard shown to a logged-in user
func (s *Session) SelectRole(role models.Role) error {
	if !s.loggedIn {
		return ErrNotLoggedIn
	}
	switch role {
	case models.RoleEmployee, models.RoleHRManager:
	default:
		return fmt.Errorf("unknown role %q", role)
	}
	s.role = role
	s.logger.Debug("Role selected", zap.String("role", string(role)))
	return nil
}

// SubmitCheckIn records a check-in and returns the recommendation for it.
// Scores are clamped into [1,10] before they reach the store.
func (s *Session) SubmitCheckIn(mood, stress int, comment string) (CheckInResult, error) {
	if !s.loggedIn {
		return CheckInResult{}, ErrNotLoggedIn
	}

	mood = parser.ClampScore(mood)
	stress = parser.ClampScore(stress)

	stored, err := s.store.Append(models.CheckIn{
		Timestamp: s.clock.Now(),
		Mood:      mood,
		Stress:    stress,
		Comment:   comment,
	})
	if err != nil {
		return CheckInResult{}, err
	}

	level := recommend.Classify(mood, stress)
	s.logger.Info("Check-in submitted",
		zap.Int("mood", mood),
		zap.Int("stress", stress),
		zap.Stringer("level", level))

	return CheckInResult{
		CheckIn:        stored,
		Message:        CheckInSubmittedMessage,
		Recommendation: level.Message(),
		Level:          level,
	}, nil
}

// History returns the session's check-ins, oldest first
func (s *Session) History() (HistoryView, error) {
	if !s.loggedIn {
		return HistoryView{}, ErrNotLoggedIn
	}

	checkins, err := s.store.All()
	if err != nil {
		return HistoryView{}, err
	}

	view := HistoryView{
		CheckIns: checkins,
		Trend:    trendOf(checkins),
		Empty:    len(checkins) == 0,
	}
	if view.Empty {
		view.Message = NoHistoryMessage
	}
	return view, nil
}

// Resources filters the resource catalog; "All" or "" selects everything
func (s *Session) Resources(category string) (ResourcesView, error) {
	if !s.loggedIn {
		return ResourcesView{}, ErrNotLoggedIn
	}

	category, err := s.catalog.NormalizeCategory(category)
	if err != nil {
		return ResourcesView{}, err
	}
	resources, err := s.catalog.Resources(category)
	if err != nil {
		return ResourcesView{}, err
	}

	s.logger.Debug("Resources filtered", zap.String("category", category), zap.Int("count", len(resources)))
	return ResourcesView{
		Category:  category,
		Options:   s.catalog.CategoryOptions(),
		Resources: resources,
	}, nil
}

// Coaching lists the coaches and the requests made so far
func (s *Session) Coaching() (CoachingView, error) {
	if !s.loggedIn {
		return CoachingView{}, ErrNotLoggedIn
	}
	return CoachingView{
		Coaches:  s.catalog.Coaches(),
		Requests: append([]models.CoachingRequest(nil), s.coaching...),
	}, nil
}

// RequestCoaching schedules a session with a coach. An empty date means
// tomorrow and an empty time means the current time of day.
func (s *Session) RequestCoaching(coachName, date, timeOfDay string) (CoachingConfirmation, error) {
	if !s.loggedIn {
		return CoachingConfirmation{}, ErrNotLoggedIn
	}

	coach, ok := s.catalog.CoachByName(coachName)
	if !ok {
		return CoachingConfirmation{}, fmt.Errorf("%w %q", ErrUnknownCoach, coachName)
	}

	now := s.clock.Now()
	at, err := parser.ParseSchedule(date, timeOfDay, now)
	if err != nil {
		return CoachingConfirmation{}, fmt.Errorf("%w: %v", ErrInvalidSchedule, err)
	}

	req := models.CoachingRequest{
		ID:          uuid.NewString(),
		Coach:       coach,
		ScheduledAt: at,
		RequestedAt: now,
	}
	s.coaching = append(s.coaching, req)

	s.logger.Info("Coaching requested",
		zap.String("coach", coach.Name),
		zap.Time("scheduled_at", at))

	return CoachingConfirmation{
		Request: req,
		Message: fmt.Sprintf("Your coaching session with %s is scheduled for %s at %s.",
			coach.Name, at.Format("2006-01-02"), at.Format("15:04:05")),
	}, nil
}

// Overview returns the department metrics and the automated alert
func (s *Session) Overview() (OverviewView, error) {
	if err := s.requireManager(); err != nil {
		return OverviewView{}, err
	}

	departments := s.catalog.Departments()
	critical := []models.DepartmentMetric{}
	for _, d := range departments {
		if IsCritical(d) {
			critical = append(critical, d)
		}
	}

	return OverviewView{
		Departments: departments,
		Critical:    critical,
		Alert:       alertFor(critical),
	}, nil
}

// IsCritical applies the high-concern thresholds to a department's averages
func IsCritical(d models.DepartmentMetric) bool {
	return d.AvgMood < recommend.LowMoodBelow || d.AvgStress > recommend.HighStressAbove
}

func alertFor(critical []models.DepartmentMetric) string {
	if len(critical) == 0 {
		return NoCriticalAlert
	}
	names := make([]string, 0, len(critical))
	for _, d := range critical {
		names = append(names, d.Department)
	}
	noun := "departments need"
	if len(critical) == 1 {
		noun = "department needs"
	}
	return fmt.Sprintf("Automated Alert: %d %s attention: %s.", len(critical), noun, strings.Join(names, ", "))
}

// DetailedReport aggregates the session's check-ins for managers
func (s *Session) DetailedReport() (ReportView, error) {
	if err := s.requireManager(); err != nil {
		return ReportView{}, err
	}

	checkins, err := s.store.All()
	if err != nil {
		return ReportView{}, err
	}
	summary, err := s.store.Summary()
	if err != nil {
		return ReportView{}, err
	}
	daily, err := s.store.DailyAverages()
	if err != nil {
		return ReportView{}, err
	}

	view := ReportView{
		CheckIns: checkins,
		Trend:    trendOf(checkins),
		Daily:    daily,
		Summary:  summary,
		Empty:    len(checkins) == 0,
	}
	if view.Empty {
		view.Message = NoReportMessage
	}
	return view, nil
}

func (s *Session) requireManager() error {
	if !s.loggedIn {
		return ErrNotLoggedIn
	}
	if s.role != models.RoleHRManager {
		return ErrManagerOnly
	}
	return nil
}
