package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/balkashynov/dialr/internal/config"
	"github.com/balkashynov/dialr/internal/dialer"
	"github.com/balkashynov/dialr/internal/followups"
	"github.com/balkashynov/dialr/internal/history"
	"github.com/balkashynov/dialr/internal/tabs"
)

// Deps are the state containers the shell drives
type Deps struct {
	Session   *dialer.Session
	Calls     *history.Store
	FollowUps *followups.Scheduler
	Profile   config.ProfileConfig
	Log       *zap.Logger
	Now       func() time.Time
	// StartTab selects the first screen; empty means dialer
	StartTab tabs.Tab
}

// AppModel is the full-screen shell: header, active screen and bottom tab bar
type AppModel struct {
	width  int
	height int

	router    *tabs.Router
	session   *dialer.Session
	calls     *history.Store
	followUps *followups.Scheduler
	profile   config.ProfileConfig
	log       *zap.Logger
	now       func() time.Time

	// Per-screen local state
	history  historyState
	follow   followState
	settings settingsState

	// notice is a one-line message under the header, cleared on the next key
	notice string
}

// tickMsg refreshes the in-call clock and relative timestamps
type tickMsg time.Time

// NewAppModel creates the shell model
func NewAppModel(deps Deps) AppModel {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.Log == nil {
		deps.Log = zap.NewNop()
	}
	router := tabs.NewRouter()
	if deps.StartTab != "" {
		_ = router.Select(deps.StartTab)
	}

	return AppModel{
		router:    router,
		session:   deps.Session,
		calls:     deps.Calls,
		followUps: deps.FollowUps,
		profile:   deps.Profile,
		log:       deps.Log,
		now:       deps.Now,
		history:   newHistoryState(),
		follow:    newFollowState(),
		settings:  newSettingsState(deps.Now()),
	}
}

// ActiveTab returns the tab on screen
func (m AppModel) ActiveTab() tabs.Tab {
	return m.router.Active()
}

// Init starts the refresh ticker
func (m AppModel) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles messages
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return m, tick()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.history.search.Width = max(20, m.contentWidth()-14)
		for i := range m.follow.inputs {
			m.follow.inputs[i].Width = max(20, m.contentWidth()-16)
		}
		return m, nil

	case tea.KeyMsg:
		m.notice = ""
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		// Text entry owns the keyboard until it is closed
		if m.capturingText() {
			return m.updateActiveScreen(msg)
		}

		switch msg.String() {
		case "tab":
			m.router.Next()
			return m, nil
		case "shift+tab":
			m.router.Prev()
			return m, nil
		case "q", "esc":
			if m.router.Active() == tabs.Dialer && m.session.IsActive() {
				// Hang up rather than leave mid-call
				return m.endCall(), nil
			}
			return m, tea.Quit
		}
		return m.updateActiveScreen(msg)
	}

	return m, nil
}

// capturingText reports whether a text input has focus
func (m AppModel) capturingText() bool {
	switch m.router.Active() {
	case tabs.History:
		return m.history.searching
	case tabs.FollowUps:
		return m.follow.adding
	}
	return false
}

func (m AppModel) updateActiveScreen(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.router.Active() {
	case tabs.Dialer:
		return m.updateDialer(msg)
	case tabs.History:
		return m.updateHistory(msg)
	case tabs.FollowUps:
		return m.updateFollowUps(msg)
	case tabs.Settings:
		return m.updateSettings(msg)
	}
	return m, nil
}

// placeCall hands the number to the placer. Invalid input does nothing.
func (m AppModel) placeCall() AppModel {
	_, err := m.session.PlaceCall(context.Background())
	switch {
	case err == nil:
	case errors.Is(err, dialer.ErrLineBusy):
		m.notice = "Line busy"
	case errors.Is(err, dialer.ErrCallFailed):
		m.log.Warn("call failed", zap.String("number", m.session.Number()), zap.Error(err))
		m.notice = "Call failed"
	}
	return m
}

// dialBack loads number onto the dial pad and shows the dialer.
// Characters the pad has no key for are dropped. Ignored during a call.
func (m AppModel) dialBack(number string) AppModel {
	if m.session.IsActive() {
		return m
	}
	m.session.Clear()
	for _, r := range number {
		if dialer.IsDialKey(r) {
			_ = m.session.AppendDigit(r)
		}
	}
	_ = m.router.Select(tabs.Dialer)
	return m
}

// endCall hangs up and stores the outgoing record
func (m AppModel) endCall() AppModel {
	rec, err := m.session.EndCall()
	if err != nil {
		return m
	}
	m.log.Info("call ended",
		zap.String("number", rec.Number),
		zap.Int("duration_seconds", rec.DurationSeconds),
	)
	if _, err := m.calls.Add(rec); err != nil {
		m.log.Error("failed to record call", zap.Error(err))
		m.notice = "Could not save call to history"
	}
	return m
}

// View renders the shell
func (m AppModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	header := m.renderHeader()
	tabBar := m.renderTabBar()
	help := m.renderHelpBar()

	bodyHeight := m.height - lipgloss.Height(header) - lipgloss.Height(tabBar) - lipgloss.Height(help)
	if bodyHeight < 3 {
		bodyHeight = 3
	}

	body := m.renderActiveScreen()
	if m.notice != "" {
		noticeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorWarning)).Bold(true)
		body = noticeStyle.Render(m.notice) + "\n\n" + body
	}
	bodyStyle := lipgloss.NewStyle().
		Width(m.contentWidth()).
		Height(bodyHeight).
		MaxHeight(bodyHeight).
		Padding(0, 1)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		bodyStyle.Render(body),
		tabBar,
		help,
	)
}

// renderActiveScreen maps the active tab to its screen
func (m AppModel) renderActiveScreen() string {
	switch m.router.Active() {
	case tabs.History:
		return m.renderHistory()
	case tabs.FollowUps:
		return m.renderFollowUps()
	case tabs.Profile:
		return m.renderProfile()
	case tabs.Settings:
		return m.renderSettings()
	default:
		return m.renderDialer()
	}
}

func (m AppModel) contentWidth() int {
	if m.width > 72 {
		return 72
	}
	return m.width
}

func (m AppModel) renderHeader() string {
	width := m.contentWidth()
	title := lipgloss.NewStyle().Bold(true).Render("Dialing App")

	status := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSuccess)).Render("●") + " Online"
	if !m.settings.online {
		status = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorError)).Render("●") + " Offline"
	}

	gap := width - lipgloss.Width(title) - lipgloss.Width(status) - 2
	if gap < 1 {
		gap = 1
	}
	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorPrimaryText)).
		Background(lipgloss.Color(ColorAccentMain)).
		Padding(0, 1).
		Width(width)
	return headerStyle.Render(title + strings.Repeat(" ", gap) + status)
}

func (m AppModel) renderTabBar() string {
	width := m.contentWidth()
	all := tabs.All()
	cell := width / len(all)

	var cells []string
	for _, t := range all {
		style := lipgloss.NewStyle().
			Width(cell).
			Align(lipgloss.Center).
			Foreground(lipgloss.Color(ColorSecondaryText))
		if t == m.router.Active() {
			style = style.
				Bold(true).
				Foreground(lipgloss.Color(ColorAccentBright)).
				Underline(true)
		}
		cells = append(cells, style.Render(t.Label()))
	}

	barStyle := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), true, false, false, false).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Width(width)
	return barStyle.Render(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
}

func (m AppModel) renderHelpBar() string {
	var helpText string
	switch m.router.Active() {
	case tabs.Dialer:
		if m.session.IsActive() {
			helpText = "enter/e end call · tab switch screen"
		} else {
			helpText = "0-9 * # dial · enter call · backspace delete · ctrl+u clear · tab switch · q quit"
		}
	case tabs.History:
		if m.history.searching {
			helpText = "type to search · enter keep · esc clear"
		} else {
			helpText = "↑/↓ nav · ←/→ filter · / search · c call back · n follow up · tab switch · q quit"
		}
	case tabs.FollowUps:
		if m.follow.adding {
			helpText = "enter next/save · tab/shift+tab move · esc cancel"
		} else {
			helpText = "↑/↓ nav · c call now · a add · d done · x delete · tab switch · q quit"
		}
	case tabs.Settings:
		helpText = "↑/↓ nav · space toggle · s sync now · o online · tab switch · q quit"
	default:
		helpText = "tab/shift+tab switch screen · q quit"
	}

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Italic(true).
		Align(lipgloss.Center).
		Width(m.contentWidth())
	return helpStyle.Render(helpText)
}

// sectionTitle renders a bold screen heading
func sectionTitle(text string) string {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccentBright)).
		Render(text)
}

// badge renders a small colored label
func badge(text, color string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(color)).
		Bold(true).
		Render(fmt.Sprintf("[%s]", text))
}
