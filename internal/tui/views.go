package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/balkashynov/wellbeing/internal/models"
	"github.com/balkashynov/wellbeing/internal/recommend"
)

const appName = "WellBeing360"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorAccentBright))
	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorPrimaryText))
	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSecondaryText)).
			Italic(true)
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorError))
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSuccess))
	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorHelpText)).
			Italic(true)
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(ColorBorder)).
			Padding(0, 1)
)

// View renders the TUI
func (m DashboardModel) View() string {
	if m.screen == ScreenLogin {
		return m.renderLogin()
	}

	nav := m.renderNav()
	content := m.renderSection()

	// Size the content panel once the terminal size is known
	contentStyle := panelStyle
	if m.width > 0 {
		contentStyle = contentStyle.Width(max(30, m.width-lipgloss.Width(nav)-6))
	}

	body := lipgloss.JoinHorizontal(
		lipgloss.Top,
		panelStyle.Render(nav),
		" ",
		contentStyle.Render(content),
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		"",
		body,
		"",
		m.renderHelpBar(),
	)
}

func (m DashboardModel) renderLogin() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(appName + " Login"))
	b.WriteString("\n\n")
	b.WriteString(labelStyle.Render("Please enter your credentials to continue."))
	b.WriteString("\n\n")
	b.WriteString(m.loginInputs[0].View())
	b.WriteString("\n")
	b.WriteString(m.loginInputs[1].View())
	b.WriteString("\n")
	if m.loginErr != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.loginErr))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("tab switch field · enter login · esc quit"))
	return panelStyle.Render(b.String())
}

func (m DashboardModel) renderNav() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(appName))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(m.sess.Username() + " · " + m.sess.Role().Label()))
	b.WriteString("\n\n")

	for i, s := range m.sections() {
		if i == m.sectionIdx {
			b.WriteString("› ")
			b.WriteString(m.shimmer.Render(s.Title()))
		} else {
			b.WriteString("  ")
			b.WriteString(labelStyle.Render(s.Title()))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m DashboardModel) renderSection() string {
	var body string
	switch m.Section() {
	case SectionCheckIn:
		body = m.renderCheckIn()
	case SectionResources:
		body = m.renderResources()
	case SectionCoaching:
		body = m.renderCoaching()
	case SectionHistory:
		body = m.renderHistory()
	case SectionOverview:
		body = m.renderOverview()
	case SectionReports:
		body = m.renderReports()
	}

	if m.err != nil {
		body += "\n\n" + errorStyle.Render("Error: "+m.err.Error())
	}
	return body
}

func slider(label string, value int, focused bool) string {
	marker := "  "
	if focused {
		marker = "› "
	}
	track := strings.Repeat("━", value-1) + "●" + strings.Repeat("─", 10-value)
	return fmt.Sprintf("%s%-30s %s %2d", marker, label, track, value)
}

func levelStyle(level recommend.Level) lipgloss.Style {
	switch level {
	case recommend.LevelHighConcern:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(ColorError))
	case recommend.LevelModerate:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(ColorWarning))
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSuccess))
	}
}

func (m DashboardModel) renderCheckIn() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Wellness Check-In"))
	b.WriteString("\n\n")
	b.WriteString(slider("How is your mood today?", m.mood, m.checkinField == fieldMood))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("    1 = Very Low, 10 = Excellent"))
	b.WriteString("\n")
	b.WriteString(slider("How stressed are you today?", m.stress, m.checkinField == fieldStress))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("    1 = Not stressed, 10 = Extremely stressed"))
	b.WriteString("\n\n")
	b.WriteString(m.comment.View())

	if m.lastCheckIn != nil {
		b.WriteString("\n\n")
		b.WriteString(successStyle.Render(m.lastCheckIn.Message))
		b.WriteString("\n")
		b.WriteString(levelStyle(m.lastCheckIn.Level).Render(m.lastCheckIn.Recommendation))
	}
	return b.String()
}

func (m DashboardModel) renderResources() string {
	options := m.sess.Catalog().CategoryOptions()
	category := options[m.categoryIdx%len(options)]

	var b strings.Builder
	b.WriteString(titleStyle.Render("Resource Hub"))
	b.WriteString("\n\n")
	b.WriteString("Filter by Category: ‹ ")
	b.WriteString(titleStyle.Render(category))
	b.WriteString(" ›\n\n")

	view, err := m.sess.Resources(category)
	if err != nil {
		return b.String() + errorStyle.Render("Error: "+err.Error())
	}
	if len(view.Resources) == 0 {
		b.WriteString(mutedStyle.Render("No resources in this category."))
		return b.String()
	}
	for _, r := range view.Resources {
		fmt.Fprintf(&b, "- %s (%s)\n", labelStyle.Bold(true).Render(r.Title), r.Category)
	}
	return b.String()
}

func (m DashboardModel) renderCoaching() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Mentorship & Coaching"))
	b.WriteString("\n\nRequest a coaching session:\n\n")

	view, err := m.sess.Coaching()
	if err != nil {
		return b.String() + errorStyle.Render("Error: "+err.Error())
	}

	marker := func(field int) string {
		if m.coachingField == field {
			return "› "
		}
		return "  "
	}

	if len(view.Coaches) > 0 {
		c := view.Coaches[m.coachIdx%len(view.Coaches)]
		fmt.Fprintf(&b, "%sChoose a Coach: ‹ %s › %s\n", marker(fieldCoach),
			titleStyle.Render(c.Name), mutedStyle.Render(c.Specialty))
	}
	b.WriteString(marker(fieldDate) + m.dateInput.View() + "\n")
	b.WriteString(marker(fieldTime) + m.timeInput.View() + "\n")

	if m.confirmation != "" {
		b.WriteString("\n")
		b.WriteString(successStyle.Render(m.confirmation))
		b.WriteString("\n")
	}

	if len(view.Requests) > 0 {
		b.WriteString("\nRequested sessions:\n")
		for _, r := range view.Requests {
			fmt.Fprintf(&b, "  %s  %s\n", r.ScheduledAt.Format("2006-01-02 15:04"), r.Coach.Name)
		}
	}
	return b.String()
}

func checkInTable(checkins []models.CheckIn) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-19s %4s %6s  %s\n", "DATE", "MOOD", "STRESS", "COMMENT")
	b.WriteString(strings.Repeat("─", 60))
	b.WriteString("\n")
	for _, c := range checkins {
		comment := c.Comment
		if len(comment) > 28 {
			comment = comment[:25] + "..."
		}
		fmt.Fprintf(&b, "%-19s %4d %6d  %s\n", c.Timestamp.Format("2006-01-02 15:04:05"), c.Mood, c.Stress, comment)
	}
	return b.String()
}

func (m DashboardModel) renderHistory() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Wellness Check-In History"))
	b.WriteString("\n\n")

	view, err := m.sess.History()
	if err != nil {
		return b.String() + errorStyle.Render("Error: "+err.Error())
	}
	if view.Empty {
		b.WriteString(mutedStyle.Render(view.Message))
		return b.String()
	}

	b.WriteString(checkInTable(view.CheckIns))
	b.WriteString("\n")
	b.WriteString(TrendChart(view.Trend, false, ""))
	return b.String()
}

func (m DashboardModel) renderOverview() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Aggregated Wellness Metrics"))
	b.WriteString("\n\n")

	view, err := m.sess.Overview()
	if err != nil {
		return b.String() + errorStyle.Render("Error: "+err.Error())
	}

	fmt.Fprintf(&b, "%-14s %12s %14s\n", "Department", "Average Mood", "Average Stress")
	for _, d := range view.Departments {
		fmt.Fprintf(&b, "%-14s %12.1f %14.1f\n", d.Department, d.AvgMood, d.AvgStress)
	}

	b.WriteString("\n")
	b.WriteString(titleStyle.Render("Mood by Department"))
	b.WriteString("\n")
	for _, d := range view.Departments {
		fmt.Fprintf(&b, "%-14s %s %.1f\n", d.Department,
			successStyle.Render(Bar(d.AvgMood, 10, 20)), d.AvgMood)
	}

	b.WriteString("\n")
	b.WriteString(titleStyle.Render("Stress by Department"))
	b.WriteString("\n")
	for _, d := range view.Departments {
		fmt.Fprintf(&b, "%-14s %s %.1f\n", d.Department,
			lipgloss.NewStyle().Foreground(lipgloss.Color(ColorWarning)).Render(Bar(d.AvgStress, 10, 20)), d.AvgStress)
	}

	b.WriteString("\n")
	if len(view.Critical) > 0 {
		b.WriteString(errorStyle.Render(view.Alert))
	} else {
		b.WriteString(labelStyle.Render(view.Alert))
	}
	return b.String()
}

func (m DashboardModel) renderReports() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Detailed Employee Wellness Report"))
	b.WriteString("\n\n")

	view, err := m.sess.DetailedReport()
	if err != nil {
		return b.String() + errorStyle.Render("Error: "+err.Error())
	}
	if view.Empty {
		b.WriteString(mutedStyle.Render(view.Message))
		return b.String()
	}

	b.WriteString("Overall Check-In Data:\n")
	b.WriteString(checkInTable(view.CheckIns))
	fmt.Fprintf(&b, "\nEntries: %d · Average mood: %.1f · Average stress: %.1f\n\n",
		view.Summary.Count, view.Summary.AvgMood, view.Summary.AvgStress)

	b.WriteString(titleStyle.Render("Wellness Trends"))
	b.WriteString("\n")
	b.WriteString(TrendChart(view.Trend, true, ""))
	b.WriteString("\n")

	if len(view.Daily) > 1 {
		b.WriteString("\nDaily averages:\n")
		for _, d := range view.Daily {
			fmt.Fprintf(&b, "  %s  mood %.1f  stress %.1f  (%d)\n",
				d.Day.Format("2006-01-02"), d.AvgMood, d.AvgStress, d.Entries)
		}
	}
	return b.String()
}

// renderHelpBar renders the help bar with hotkey hints
func (m DashboardModel) renderHelpBar() string {
	var hint string
	switch m.Section() {
	case SectionCheckIn:
		hint = "↑/↓ field · ←/→ adjust · enter submit · "
	case SectionResources:
		hint = "←/→ category · "
	case SectionCoaching:
		hint = "↑/↓ field · ←/→ coach · enter request · "
	}
	hint += "tab section · ctrl+r switch role · ctrl+l logout · esc quit"
	return helpStyle.Render(hint)
}
