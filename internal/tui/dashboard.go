package tui

import (
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/balkashynov/wellbeing/internal/models"
	"github.com/balkashynov/wellbeing/internal/parser"
	"github.com/balkashynov/wellbeing/internal/session"
)

const missingCredentialsText = "Please enter both username and password."

// Screen is the top-level view
type Screen int

const (
	ScreenLogin Screen = iota
	ScreenDashboard
)

// Section is one entry of the dashboard navigation
type Section int

const (
	SectionCheckIn Section = iota
	SectionResources
	SectionCoaching
	SectionHistory
	SectionOverview
	SectionReports
)

var (
	employeeSections = []Section{SectionCheckIn, SectionResources, SectionCoaching, SectionHistory}
	managerSections  = []Section{SectionOverview, SectionReports}
)

func (s Section) Title() string {
	switch s {
	case SectionCheckIn:
		return "Check-In"
	case SectionResources:
		return "Resources"
	case SectionCoaching:
		return "Coaching"
	case SectionHistory:
		return "History"
	case SectionOverview:
		return "Overview"
	case SectionReports:
		return "Detailed Reports"
	}
	return ""
}

// Check-in form fields
const (
	fieldMood = iota
	fieldStress
	fieldComment
)

// Coaching form fields
const (
	fieldCoach = iota
	fieldDate
	fieldTime
)

// DashboardModel drives one session through login and the role dashboards.
// Every key press is one request against the session; views are rebuilt from
// the session on each render.
type DashboardModel struct {
	sess   *session.Session
	width  int
	height int

	screen Screen

	// Login form
	loginInputs []textinput.Model
	loginFocus  int
	loginErr    string

	sectionIdx int

	// Check-in form
	mood         int
	stress       int
	checkinField int
	comment      textinput.Model
	lastCheckIn  *session.CheckInResult

	// Resource hub
	categoryIdx int

	// Coaching form
	coachIdx      int
	coachingField int
	dateInput     textinput.Model
	timeInput     textinput.Model
	confirmation  string

	err     error
	shimmer *ShimmerState
}

func newInput(placeholder string, limit int) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = limit
	in.Width = 50
	in.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
	in.PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPlaceholder))
	in.Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))
	return in
}

// NewDashboardModel creates the dashboard for a session. A session that is
// already logged in skips the login screen.
func NewDashboardModel(sess *session.Session, animations bool) DashboardModel {
	username := newInput("Username", 64)
	username.Focus()
	password := newInput("Password", 128)
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	m := DashboardModel{
		sess:        sess,
		screen:      ScreenLogin,
		loginInputs: []textinput.Model{username, password},
		mood:        parser.DefaultScore,
		stress:      parser.DefaultScore,
		comment:     newInput("Additional comments (optional)", 500),
		dateInput:   newInput("Session date: tomorrow, yyyy-mm-dd, 3 days (Enter for tomorrow)", 20),
		timeInput:   newInput("Session time: hh:mm (Enter for now)", 8),
		shimmer:     NewShimmerState(DefaultShimmerConfig(animations)),
	}
	if sess.LoggedIn() {
		m.screen = ScreenDashboard
	}
	return m
}

// Init initializes the model
func (m DashboardModel) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if m.shimmer.ShouldTick() {
		cmds = append(cmds, m.shimmerTick())
	}
	return tea.Batch(cmds...)
}

func (m DashboardModel) shimmerTick() tea.Cmd {
	return tea.Tick(m.shimmer.TickInterval(), func(time.Time) tea.Msg {
		return shimmerTickMsg{}
	})
}

// Screen reports which top-level view is showing
func (m DashboardModel) Screen() Screen { return m.screen }

// Section reports the selected dashboard section
func (m DashboardModel) Section() Section { return m.sections()[m.sectionIdx] }

func (m DashboardModel) sections() []Section {
	if m.sess.Role() == models.RoleHRManager {
		return managerSections
	}
	return employeeSections
}

// Update handles messages
func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case shimmerTickMsg:
		if m.shimmer.ShouldTick() {
			return m, m.shimmerTick()
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.screen == ScreenLogin {
			return m.updateLogin(msg)
		}
		return m.updateDashboard(msg)
	}

	return m, nil
}

func (m DashboardModel) updateLogin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m, tea.Quit

	case "tab", "down", "shift+tab", "up":
		return m.focusLogin(1 - m.loginFocus), nil

	case "enter":
		if m.loginFocus == 0 {
			return m.focusLogin(1), nil
		}
		err := m.sess.Login(m.loginInputs[0].Value(), m.loginInputs[1].Value())
		if errors.Is(err, session.ErrMissingCredentials) {
			m.loginErr = missingCredentialsText
			return m, nil
		}
		if err != nil {
			m.loginErr = err.Error()
			return m, nil
		}
		m.loginErr = ""
		m.loginInputs[1].SetValue("")
		m.screen = ScreenDashboard
		m.sectionIdx = 0
		m.shimmer.Reset()
		return m.focusSectionInputs(), nil
	}

	var cmd tea.Cmd
	m.loginInputs[m.loginFocus], cmd = m.loginInputs[m.loginFocus].Update(msg)
	return m, cmd
}

func (m DashboardModel) focusLogin(i int) DashboardModel {
	m.loginFocus = i
	for j := range m.loginInputs {
		if j == i {
			m.loginInputs[j].Focus()
		} else {
			m.loginInputs[j].Blur()
		}
	}
	return m
}

func (m DashboardModel) updateDashboard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m, tea.Quit

	case "tab":
		m.sectionIdx = (m.sectionIdx + 1) % len(m.sections())
		return m.afterNavigation(), nil

	case "shift+tab":
		n := len(m.sections())
		m.sectionIdx = (m.sectionIdx + n - 1) % n
		return m.afterNavigation(), nil

	case "ctrl+r":
		next := models.RoleHRManager
		if m.sess.Role() == models.RoleHRManager {
			next = models.RoleEmployee
		}
		m.err = m.sess.SelectRole(next)
		m.sectionIdx = 0
		return m.afterNavigation(), nil

	case "ctrl+l":
		m.sess.Logout()
		m.screen = ScreenLogin
		m.lastCheckIn = nil
		m.confirmation = ""
		m.err = nil
		return m.focusLogin(0), nil
	}

	switch m.Section() {
	case SectionCheckIn:
		return m.updateCheckIn(msg)
	case SectionResources:
		return m.updateResources(msg), nil
	case SectionCoaching:
		return m.updateCoaching(msg)
	}

	if msg.String() == "q" {
		return m, tea.Quit
	}
	return m, nil
}

func (m DashboardModel) afterNavigation() DashboardModel {
	m.err = nil
	m.shimmer.Reset()
	return m.focusSectionInputs()
}

// focusSectionInputs gives keyboard focus to the text input of the active
// form field, if any
func (m DashboardModel) focusSectionInputs() DashboardModel {
	m.comment.Blur()
	m.dateInput.Blur()
	m.timeInput.Blur()

	switch m.Section() {
	case SectionCheckIn:
		if m.checkinField == fieldComment {
			m.comment.Focus()
		}
	case SectionCoaching:
		switch m.coachingField {
		case fieldDate:
			m.dateInput.Focus()
		case fieldTime:
			m.timeInput.Focus()
		}
	}
	return m
}

func (m DashboardModel) updateCheckIn(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up":
		if m.checkinField > fieldMood {
			m.checkinField--
		}
		return m.focusSectionInputs(), nil

	case "down":
		if m.checkinField < fieldComment {
			m.checkinField++
		}
		return m.focusSectionInputs(), nil

	case "left", "right":
		if m.checkinField == fieldComment {
			break
		}
		delta := 1
		if msg.String() == "left" {
			delta = -1
		}
		if m.checkinField == fieldMood {
			m.mood = parser.ClampScore(m.mood + delta)
		} else {
			m.stress = parser.ClampScore(m.stress + delta)
		}
		return m, nil

	case "enter":
		res, err := m.sess.SubmitCheckIn(m.mood, m.stress, m.comment.Value())
		m.err = err
		if err == nil {
			m.lastCheckIn = &res
			m.comment.SetValue("")
		}
		return m, nil
	}

	if m.checkinField != fieldComment {
		if msg.String() == "q" {
			return m, tea.Quit
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.comment, cmd = m.comment.Update(msg)
	return m, cmd
}

func (m DashboardModel) updateResources(msg tea.KeyMsg) DashboardModel {
	n := len(m.sess.Catalog().CategoryOptions())
	switch msg.String() {
	case "right", "down":
		m.categoryIdx = (m.categoryIdx + 1) % n
	case "left", "up":
		m.categoryIdx = (m.categoryIdx + n - 1) % n
	}
	return m
}

func (m DashboardModel) updateCoaching(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	coaches := m.sess.Catalog().CoachNames()

	switch msg.String() {
	case "up":
		if m.coachingField > fieldCoach {
			m.coachingField--
		}
		return m.focusSectionInputs(), nil

	case "down":
		if m.coachingField < fieldTime {
			m.coachingField++
		}
		return m.focusSectionInputs(), nil

	case "left", "right":
		if m.coachingField != fieldCoach || len(coaches) == 0 {
			break
		}
		if msg.String() == "right" {
			m.coachIdx = (m.coachIdx + 1) % len(coaches)
		} else {
			m.coachIdx = (m.coachIdx + len(coaches) - 1) % len(coaches)
		}
		return m, nil

	case "enter":
		if len(coaches) == 0 {
			return m, nil
		}
		conf, err := m.sess.RequestCoaching(coaches[m.coachIdx], m.dateInput.Value(), m.timeInput.Value())
		m.err = err
		if err == nil {
			m.confirmation = conf.Message
		}
		return m, nil
	}

	var cmd tea.Cmd
	switch m.coachingField {
	case fieldDate:
		m.dateInput, cmd = m.dateInput.Update(msg)
	case fieldTime:
		m.timeInput, cmd = m.timeInput.Update(msg)
	default:
		if msg.String() == "q" {
			return m, tea.Quit
		}
	}
	return m, cmd
}
