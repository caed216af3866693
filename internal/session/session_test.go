package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balkashynov/wellbeing/internal/catalog"
	"github.com/balkashynov/wellbeing/internal/clock"
	"github.com/balkashynov/wellbeing/internal/models"
	"github.com/balkashynov/wellbeing/internal/recommend"
)

var fixedNow = time.Date(2026, 3, 10, 14, 25, 30, 0, time.UTC)

func newSession(t *testing.T, opts ...Option) *Session {
	t.Helper()
	cat, err := catalog.Default()
	require.NoError(t, err)

	opts = append([]Option{WithClock(clock.Fixed(fixedNow))}, opts...)
	s, err := New(cat, opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func loggedIn(t *testing.T, username string) *Session {
	t.Helper()
	s := newSession(t)
	require.NoError(t, s.Login(username, "secret"))
	return s
}

func TestLogin(t *testing.T) {
	t.Run("missing username", func(t *testing.T) {
		s := newSession(t)
		assert.ErrorIs(t, s.Login("", "secret"), ErrMissingCredentials)
		assert.False(t, s.LoggedIn())
	})

	t.Run("missing password", func(t *testing.T) {
		s := newSession(t)
		assert.ErrorIs(t, s.Login("jane", ""), ErrMissingCredentials)
		assert.False(t, s.LoggedIn())
	})

	t.Run("employee", func(t *testing.T) {
		s := loggedIn(t, "jane")
		assert.True(t, s.LoggedIn())
		assert.Equal(t, "jane", s.Username())
		assert.Equal(t, models.RoleEmployee, s.Role())
	})

	t.Run("hr in username grants manager role", func(t *testing.T) {
		s := loggedIn(t, "HR.Jane")
		assert.Equal(t, models.RoleHRManager, s.Role())
	})

	t.Run("logout", func(t *testing.T) {
		s := loggedIn(t, "hr-bob")
		s.Logout()
		assert.False(t, s.LoggedIn())
		assert.Equal(t, models.RoleEmployee, s.Role())
	})
}

func TestActionsRequireLogin(t *testing.T) {
	s := newSession(t)

	_, err := s.SubmitCheckIn(5, 5, "")
	assert.ErrorIs(t, err, ErrNotLoggedIn)
	_, err = s.History()
	assert.ErrorIs(t, err, ErrNotLoggedIn)
	_, err = s.Resources("All")
	assert.ErrorIs(t, err, ErrNotLoggedIn)
	_, err = s.Coaching()
	assert.ErrorIs(t, err, ErrNotLoggedIn)
	_, err = s.RequestCoaching("Bob Smith", "", "")
	assert.ErrorIs(t, err, ErrNotLoggedIn)
	_, err = s.Overview()
	assert.ErrorIs(t, err, ErrNotLoggedIn)
	assert.ErrorIs(t, s.SelectRole(models.RoleHRManager), ErrNotLoggedIn)
}

func TestSelectRole(t *testing.T) {
	s := loggedIn(t, "jane")

	require.NoError(t, s.SelectRole(models.RoleHRManager))
	assert.Equal(t, models.RoleHRManager, s.Role())

	require.NoError(t, s.SelectRole(models.RoleEmployee))
	assert.Equal(t, models.RoleEmployee, s.Role())

	assert.Error(t, s.SelectRole(models.Role("admin")))
}

func TestSubmitCheckIn(t *testing.T) {
	s := loggedIn(t, "jane")

	res, err := s.SubmitCheckIn(3, 8, "deadline week")
	require.NoError(t, err)
	assert.Equal(t, CheckInSubmittedMessage, res.Message)
	assert.Equal(t, recommend.HighConcernMessage, res.Recommendation)
	assert.Equal(t, recommend.LevelHighConcern, res.Level)
	assert.Equal(t, fixedNow.Unix(), res.CheckIn.Timestamp.Unix())
	assert.Equal(t, "deadline week", res.CheckIn.Comment)

	res, err = s.SubmitCheckIn(6, 7, "")
	require.NoError(t, err)
	assert.Equal(t, recommend.PositiveMessage, res.Recommendation)
}

func TestSubmitCheckIn_ClampsScores(t *testing.T) {
	s := loggedIn(t, "jane")

	res, err := s.SubmitCheckIn(0, 11, "")
	require.NoError(t, err)
	assert.Equal(t, 1, res.CheckIn.Mood)
	assert.Equal(t, 10, res.CheckIn.Stress)
}

func TestHistory(t *testing.T) {
	s := loggedIn(t, "jane")

	view, err := s.History()
	require.NoError(t, err)
	assert.True(t, view.Empty)
	assert.Equal(t, NoHistoryMessage, view.Message)
	assert.Empty(t, view.CheckIns)
	assert.Empty(t, view.Trend)

	_, err = s.SubmitCheckIn(4, 5, "first")
	require.NoError(t, err)
	_, err = s.SubmitCheckIn(7, 3, "second")
	require.NoError(t, err)

	view, err = s.History()
	require.NoError(t, err)
	assert.False(t, view.Empty)
	assert.Empty(t, view.Message)
	require.Len(t, view.CheckIns, 2)
	assert.Equal(t, "first", view.CheckIns[0].Comment)
	assert.Equal(t, "second", view.CheckIns[1].Comment)
	require.Len(t, view.Trend, 2)
	assert.Equal(t, 4, view.Trend[0].Mood)
	assert.Equal(t, 7, view.Trend[1].Mood)
}

func TestSessionsAreIsolated(t *testing.T) {
	a := loggedIn(t, "jane")
	b := loggedIn(t, "john")

	_, err := a.SubmitCheckIn(5, 5, "")
	require.NoError(t, err)

	view, err := b.History()
	require.NoError(t, err)
	assert.True(t, view.Empty)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestResources(t *testing.T) {
	s := loggedIn(t, "jane")

	view, err := s.Resources("All")
	require.NoError(t, err)
	assert.Len(t, view.Resources, 5)
	assert.Equal(t, "All", view.Category)
	assert.Len(t, view.Options, 6)

	view, err = s.Resources("Nutrition")
	require.NoError(t, err)
	require.Len(t, view.Resources, 1)
	assert.Equal(t, "Healthy Eating for Energy", view.Resources[0].Title)

	_, err = s.Resources("Yoga")
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestRequestCoaching(t *testing.T) {
	s := loggedIn(t, "jane")

	conf, err := s.RequestCoaching("Alice Johnson", "", "")
	require.NoError(t, err)
	assert.Equal(t, "Your coaching session with Alice Johnson is scheduled for 2026-03-11 at 14:25:30.", conf.Message)
	assert.Equal(t, "Stress Management", conf.Request.Coach.Specialty)
	assert.NotEmpty(t, conf.Request.ID)

	conf, err = s.RequestCoaching("carol lee", "2026-03-20", "09:00")
	require.NoError(t, err)
	assert.Equal(t, "Your coaching session with Carol Lee is scheduled for 2026-03-20 at 09:00:00.", conf.Message)

	view, err := s.Coaching()
	require.NoError(t, err)
	assert.Len(t, view.Coaches, 3)
	require.Len(t, view.Requests, 2)
	assert.Equal(t, "Alice Johnson", view.Requests[0].Coach.Name)

	_, err = s.RequestCoaching("Dave", "", "")
	assert.ErrorIs(t, err, ErrUnknownCoach)

	_, err = s.RequestCoaching("Bob Smith", "2020-01-01", "")
	assert.ErrorIs(t, err, ErrInvalidSchedule)
}

func TestOverview(t *testing.T) {
	t.Run("employees are refused", func(t *testing.T) {
		s := loggedIn(t, "jane")
		_, err := s.Overview()
		assert.ErrorIs(t, err, ErrManagerOnly)
		_, err = s.DetailedReport()
		assert.ErrorIs(t, err, ErrManagerOnly)
	})

	t.Run("seed has no critical departments", func(t *testing.T) {
		s := loggedIn(t, "hr.jane")
		view, err := s.Overview()
		require.NoError(t, err)
		assert.Len(t, view.Departments, 4)
		assert.Empty(t, view.Critical)
		assert.Equal(t, NoCriticalAlert, view.Alert)
	})

	t.Run("overview is static", func(t *testing.T) {
		s := loggedIn(t, "hr.jane")
		_, err := s.SubmitCheckIn(1, 10, "")
		require.NoError(t, err)
		view, err := s.Overview()
		require.NoError(t, err)
		assert.Equal(t, 6.2, view.Departments[0].AvgMood)
	})
}

func TestOverview_CriticalDepartments(t *testing.T) {
	cat, err := catalog.Parse([]byte(`
departments:
  - department: Support
    avg_mood: 3.5
    avg_stress: 6.0
    entry_count: 10
  - department: Ops
    avg_mood: 6.0
    avg_stress: 7.5
    entry_count: 8
  - department: Legal
    avg_mood: 6.0
    avg_stress: 7.0
    entry_count: 4
`))
	require.NoError(t, err)

	s, err := New(cat, AsUser("hr", models.RoleHRManager))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	view, err := s.Overview()
	require.NoError(t, err)
	require.Len(t, view.Critical, 2)
	assert.Equal(t, "Support", view.Critical[0].Department)
	assert.Equal(t, "Ops", view.Critical[1].Department)
	assert.Equal(t, "Automated Alert: 2 departments need attention: Support, Ops.", view.Alert)
}

func TestDetailedReport(t *testing.T) {
	s := loggedIn(t, "hr.jane")

	view, err := s.DetailedReport()
	require.NoError(t, err)
	assert.True(t, view.Empty)
	assert.Equal(t, NoReportMessage, view.Message)
	assert.Equal(t, 0, view.Summary.Count)

	_, err = s.SubmitCheckIn(2, 9, "")
	require.NoError(t, err)
	_, err = s.SubmitCheckIn(8, 3, "")
	require.NoError(t, err)

	view, err = s.DetailedReport()
	require.NoError(t, err)
	assert.False(t, view.Empty)
	assert.Len(t, view.CheckIns, 2)
	assert.Len(t, view.Trend, 2)
	assert.Equal(t, 2, view.Summary.Count)
	assert.InDelta(t, 5.0, view.Summary.AvgMood, 0.0001)
	assert.InDelta(t, 6.0, view.Summary.AvgStress, 0.0001)
	require.Len(t, view.Daily, 1)
	assert.Equal(t, 2, view.Daily[0].Entries)
}

func TestRoleForUsername(t *testing.T) {
	assert.Equal(t, models.RoleHRManager, RoleForUsername("shrek"))
	assert.Equal(t, models.RoleHRManager, RoleForUsername("HRteam"))
	assert.Equal(t, models.RoleEmployee, RoleForUsername("alice"))
}
