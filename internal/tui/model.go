// Package tui provides the Bubble Tea typing interface.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/verte-zerg/typesprint/internal/phrases"
	"github.com/verte-zerg/typesprint/internal/round"
	"github.com/verte-zerg/typesprint/internal/session"
	"github.com/verte-zerg/typesprint/internal/stats"
)

var (
	correctStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#52C41A"))
	incorrectStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	pendingStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	currentWordStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	caretBackground  = lipgloss.Color("#4A4A4A")
	timerStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#B0B0B0"))
	statsStyle       = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#F0F0F0")).
				Padding(0, 1).
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#4A4A4A"))
	congratsStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
)

type keyMap struct {
	Restart key.Binding
	Quit    key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Restart, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func defaultKeyMap() keyMap {
	return keyMap{
		Restart: key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "restart")),
		Quit:    key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
	}
}

type tickMsg round.Tick

// Model implements the Bubble Tea typing UI.
type Model struct {
	round    *round.Round
	picker   *phrases.Picker
	duration int
	log      zerolog.Logger

	keys    keyMap
	help    help.Model
	timebar progress.Model

	width  int
	height int

	result *stats.Result
	err    error
}

// NewModel constructs a typing TUI model around a running round. Restarts
// draw the next phrase from picker.
func NewModel(r *round.Round, picker *phrases.Picker, duration int, log zerolog.Logger) *Model {
	return &Model{
		round:    r,
		picker:   picker,
		duration: duration,
		log:      log,
		keys:     defaultKeyMap(),
		help:     help.New(),
		timebar:  progress.New(progress.WithSolidFill("#C89A3A"), progress.WithoutPercentage()),
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return waitForTick(m.round.Ticks())
}

func waitForTick(ticks <-chan round.Tick) tea.Cmd {
	return func() tea.Msg {
		return tickMsg(<-ticks)
	}
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.timebar.Width = m.contentWidth()
		return m, nil
	case tickMsg:
		st, applied := m.round.Tick(round.Tick(msg))
		if applied && st.GameOver {
			m.finish()
		}
		return m, waitForTick(m.round.Ticks())
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.round.Close()
			return m, tea.Quit
		case key.Matches(msg, m.keys.Restart):
			m.restart()
			return m, nil
		}
		switch msg.Type {
		case tea.KeyBackspace, tea.KeyDelete:
			m.round.Backspace()
		case tea.KeySpace:
			m.typeRunes([]rune{' '})
		case tea.KeyRunes:
			m.typeRunes(msg.Runes)
		}
		return m, nil
	default:
		return m, nil
	}
}

func (m *Model) typeRunes(runes []rune) {
	var st session.State
	for _, r := range runes {
		st = m.round.Type(r)
	}
	if st.GameOver && m.result == nil && m.err == nil {
		m.finish()
	}
}

func (m *Model) finish() {
	res, err := m.round.Result()
	if err != nil {
		m.err = err
		m.log.Error().Err(err).Str("round", m.round.ID().String()).Msg("failed to score round")
		return
	}
	m.result = &res
}

func (m *Model) restart() {
	phrase := m.picker.Next()
	if err := m.round.Restart(phrase, m.duration); err != nil {
		m.err = err
		m.log.Error().Err(err).Msg("failed to restart round")
		return
	}
	m.result = nil
	m.err = nil
}

// View implements tea.Model.
func (m *Model) View() string {
	st := m.round.State()
	target := []rune(st.Target)
	if len(target) == 0 {
		return ""
	}
	cursor := -1
	if pos := m.round.Counters().Position; pos < len(target) && !st.Success {
		cursor = pos
	}
	styled := buildStyledRunes(target, session.Marks(st), cursor)

	text := renderStyledRunes(styled)
	if m.width > 0 {
		text = wrapStyledRunes(styled, m.contentWidth())
	}
	parts := []string{text, "", m.renderTimer(st)}
	if panel := m.renderStats(); panel != "" {
		parts = append(parts, "", panel)
	}
	if st.Success {
		parts = append(parts, congratsStyle.Render("Well done!"))
	}
	parts = append(parts, "", m.help.View(m.keys))
	content := lipgloss.JoinVertical(lipgloss.Center, parts...)
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m *Model) contentWidth() int {
	w := int(float64(m.width) * 0.70)
	if w < 1 {
		w = 1
	}
	return w
}

func (m *Model) renderTimer(st session.State) string {
	line := timerStyle.Render(fmt.Sprintf("Time left: %d s", st.TimeLeft))
	if m.duration <= 0 {
		return line
	}
	frac := float64(st.TimeLeft) / float64(m.duration)
	return line + "\n" + m.timebar.ViewAs(frac)
}

func (m *Model) renderStats() string {
	if m.err != nil {
		return errorStyle.Render(m.err.Error())
	}
	if m.result == nil {
		return ""
	}
	return statsStyle.Render(fmt.Sprintf("Speed: %d %s\nAccuracy: %d%%", m.result.Speed, m.result.Unit, m.result.Accuracy))
}
