package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/balkashynov/dialr/internal/followups"
	"github.com/balkashynov/dialr/internal/models"
	"github.com/balkashynov/dialr/internal/parser"
)

// Form fields of the add follow-up form
const (
	fieldName = iota
	fieldPhone
	fieldWhen
	fieldPriority
	fieldNotes
	fieldCount
)

var fieldLabels = [fieldCount]string{"Contact name", "Phone number", "When", "Priority", "Notes"}

// followState is the follow-ups screen's local state
type followState struct {
	selected int

	adding bool
	field  int
	inputs []textinput.Model
	// callID links the form to the call it was opened from
	callID string
}

func newFollowState() followState {
	inputs := make([]textinput.Model, fieldCount)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 40
		inputs[i].TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
		inputs[i].PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDisabledText))
		inputs[i].Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))
	}

	inputs[fieldName].Placeholder = "Contact name (required)"
	inputs[fieldName].CharLimit = 80
	inputs[fieldPhone].Placeholder = "Phone number"
	inputs[fieldPhone].CharLimit = 32
	inputs[fieldWhen].Placeholder = "tomorrow 10:00, in 2 hours, 15/12/2026 14:30 (required)"
	inputs[fieldWhen].CharLimit = 40
	inputs[fieldPriority].Placeholder = "low/medium/high (Enter for medium)"
	inputs[fieldPriority].CharLimit = 10
	inputs[fieldNotes].Placeholder = "Notes"
	inputs[fieldNotes].CharLimit = 500

	return followState{inputs: inputs}
}

// open shows an empty form
func (s followState) open() followState {
	s.adding = true
	s.callID = ""
	s.inputs = append([]textinput.Model(nil), s.inputs...)
	for i := range s.inputs {
		s.inputs[i].SetValue("")
	}
	return s.focus(fieldName)
}

// openFromCall shows the form prefilled from a call record
func (s followState) openFromCall(rec models.CallRecord) followState {
	s = s.open()
	s.callID = rec.ID
	s.inputs[fieldName].SetValue(rec.DisplayName())
	s.inputs[fieldPhone].SetValue(rec.Number)
	return s.focus(fieldWhen)
}

func (s followState) close() followState {
	s.adding = false
	s.callID = ""
	s.inputs = append([]textinput.Model(nil), s.inputs...)
	for i := range s.inputs {
		s.inputs[i].Blur()
	}
	return s
}

func (s followState) focus(field int) followState {
	s.field = field
	s.inputs = append([]textinput.Model(nil), s.inputs...)
	for i := range s.inputs {
		if i == field {
			s.inputs[i].Focus()
		} else {
			s.inputs[i].Blur()
		}
	}
	return s
}

// formInput builds scheduler input from the form.
// Returns false when the schedule or priority cannot be parsed.
func (m AppModel) formInput() (followups.Input, bool) {
	values := make([]string, fieldCount)
	for i, in := range m.follow.inputs {
		values[i] = strings.TrimSpace(in.Value())
	}

	when, err := parser.ParseSchedule(values[fieldWhen], m.now())
	if err != nil {
		return followups.Input{}, false
	}
	priority, err := models.ParsePriority(values[fieldPriority])
	if err != nil {
		return followups.Input{}, false
	}

	return followups.Input{
		ContactName:    values[fieldName],
		PhoneNumber:    values[fieldPhone],
		ScheduledDate:  when,
		Notes:          values[fieldNotes],
		Priority:       priority,
		OriginalCallID: m.follow.callID,
	}, true
}

// updateFollowUps handles keys on the follow-ups screen
func (m AppModel) updateFollowUps(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.follow.adding {
		return m.updateFollowUpForm(msg)
	}

	views := m.followUps.List(m.now())
	switch msg.String() {
	case "a", "+":
		m.follow = m.follow.open()
		return m, textinput.Blink
	case "up", "k":
		if m.follow.selected > 0 {
			m.follow.selected--
		}
	case "down", "j":
		if m.follow.selected < len(views)-1 {
			m.follow.selected++
		}
	case "c":
		if m.follow.selected < len(views) {
			return m.dialBack(views[m.follow.selected].PhoneNumber), nil
		}
	case "d", "enter":
		if m.follow.selected < len(views) {
			if _, err := m.followUps.Complete(views[m.follow.selected].ID); err != nil {
				m.log.Debug("complete follow-up ignored", zap.Error(err))
			}
		}
	case "x", "delete":
		if m.follow.selected < len(views) {
			if err := m.followUps.Remove(views[m.follow.selected].ID); err != nil {
				m.log.Debug("remove follow-up ignored", zap.Error(err))
			}
			if m.follow.selected >= m.followUps.Len() && m.follow.selected > 0 {
				m.follow.selected--
			}
		}
	}
	return m, nil
}

func (m AppModel) updateFollowUpForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.follow = m.follow.close()
		return m, nil
	case "tab", "down":
		m.follow = m.follow.focus((m.follow.field + 1) % fieldCount)
		return m, nil
	case "shift+tab", "up":
		m.follow = m.follow.focus((m.follow.field + fieldCount - 1) % fieldCount)
		return m, nil
	case "enter":
		if m.follow.field < fieldCount-1 {
			m.follow = m.follow.focus(m.follow.field + 1)
			return m, nil
		}
		// Incomplete input keeps the form open and changes nothing
		in, ok := m.formInput()
		if !ok {
			return m, nil
		}
		f, err := m.followUps.Add(in)
		if err != nil {
			m.log.Debug("add follow-up ignored", zap.Error(err))
			return m, nil
		}
		m.log.Info("follow-up scheduled", zap.String("id", f.ID), zap.Time("scheduled_date", f.ScheduledDate))
		m.follow = m.follow.close()
		m.follow.selected = m.followUps.Len() - 1
		return m, nil
	}

	var cmd tea.Cmd
	m.follow.inputs = append([]textinput.Model(nil), m.follow.inputs...)
	m.follow.inputs[m.follow.field], cmd = m.follow.inputs[m.follow.field].Update(msg)
	return m, cmd
}

func (m AppModel) renderFollowUps() string {
	var b strings.Builder
	now := m.now()
	width := m.contentWidth() - 4

	b.WriteString(sectionTitle("Follow-ups"))
	b.WriteString("  ")
	b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText)).
		Render(fmt.Sprintf("%d pending", m.followUps.PendingCount(now))))
	if overdue := m.followUps.OverdueCount(now); overdue > 0 {
		b.WriteString("  ")
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorError)).Bold(true).
			Render(fmt.Sprintf("%d overdue", overdue)))
	}
	b.WriteString("\n\n")

	if m.follow.adding {
		b.WriteString(m.renderFollowUpForm(width))
		b.WriteString("\n")
	}

	views := m.followUps.List(now)
	if len(views) == 0 {
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText)).Italic(true).
			Render("No follow-ups scheduled"))
		return b.String()
	}

	for i, v := range views {
		b.WriteString(m.renderFollowUpCard(v, i == m.follow.selected && !m.follow.adding, width))
		b.WriteString("\n")
	}
	return b.String()
}

func (m AppModel) renderFollowUpForm(width int) string {
	var b strings.Builder
	title := "Add Follow-up"
	if m.follow.callID != "" {
		title = "Add Follow-up for call"
	}
	b.WriteString(lipgloss.NewStyle().Bold(true).Render(title))
	b.WriteString("\n\n")

	for i, in := range m.follow.inputs {
		labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText)).Width(14)
		if i == m.follow.field {
			labelStyle = labelStyle.Foreground(lipgloss.Color(ColorAccentBright)).Bold(true)
		}
		b.WriteString(labelStyle.Render(fieldLabels[i]))
		b.WriteString(in.View())
		b.WriteString("\n")
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccentMain)).
		Padding(0, 1).
		Width(width).
		Render(b.String())
}

func (m AppModel) renderFollowUpCard(v followups.View, selected bool, width int) string {
	var b strings.Builder

	nameStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorPrimaryText))
	if v.Derived == models.StatusCompleted {
		nameStyle = nameStyle.Strikethrough(true).Foreground(lipgloss.Color(ColorDisabledText))
	}
	b.WriteString(nameStyle.Render(v.ContactName))
	b.WriteString(" ")
	b.WriteString(badge(string(v.Priority), priorityColor(v.Priority)))
	b.WriteString(" ")
	b.WriteString(badge(string(v.Derived), statusColor(v.Derived)))
	b.WriteString("\n")

	mutedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))
	if v.PhoneNumber != "" {
		b.WriteString(mutedStyle.Render("☎ " + v.PhoneNumber))
		b.WriteString("\n")
	}
	scheduleColor := ColorSecondaryText
	if v.Derived == models.StatusOverdue {
		scheduleColor = ColorError
	}
	b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(scheduleColor)).
		Render("⏰ " + followups.FormatSchedule(v.ScheduledDate, m.now())))

	if v.Notes != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color(ColorSecondaryText)).Render(v.Notes))
	}

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Padding(0, 1).
		Width(width)
	if v.Derived == models.StatusOverdue {
		card = card.BorderForeground(lipgloss.Color(ColorError))
	}
	if selected {
		card = card.BorderForeground(lipgloss.Color(ColorAccentMain))
	}
	return card.Render(b.String())
}

func priorityColor(p models.Priority) string {
	switch p {
	case models.PriorityHigh:
		return ColorError
	case models.PriorityMedium:
		return ColorWarning
	default:
		return ColorSuccess
	}
}

func statusColor(s models.FollowUpStatus) string {
	switch s {
	case models.StatusCompleted:
		return ColorSuccess
	case models.StatusOverdue:
		return ColorError
	default:
		return ColorAccentMain
	}
}
