// Package tui is the terminal presentation collaborator: four slider rows,
// an integrity gauge, and a character-cell rendering of the diamond.
package tui

// #region imports
import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kibbyd/tensegrity/internal/balance"
	"github.com/kibbyd/tensegrity/internal/scoring"
	"github.com/kibbyd/tensegrity/internal/session"
)

// #endregion imports

// #region keymap

type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Decrease  key.Binding
	Increase  key.Binding
	DecFast   key.Binding
	IncFast   key.Binding
	Reset     key.Binding
	Randomize key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "previous point")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next point")),
		Decrease:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "-1")),
		Increase:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "+1")),
		DecFast:   key.NewBinding(key.WithKeys("shift+left", "H"), key.WithHelp("⇧←", "-5")),
		IncFast:   key.NewBinding(key.WithKeys("shift+right", "L"), key.WithHelp("⇧→", "+5")),
		Reset:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "ideal form")),
		Randomize: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "stress test")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Decrease, k.Increase, k.Reset, k.Randomize, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Decrease, k.Increase},
		{k.DecFast, k.IncFast, k.Reset, k.Randomize, k.Quit},
	}
}

// #endregion keymap

// #region model

// Model drives the interactive panel. All computation goes through the
// session controller; the model only navigates and renders.
type Model struct {
	ctrl  *session.Controller
	frame session.Frame

	cursor int
	gauge  progress.Model
	keys   keyMap
	help   help.Model
	styles Styles

	width  int
	height int
}

// New builds the panel around an existing controller.
func New(ctrl *session.Controller) Model {
	return Model{
		ctrl:   ctrl,
		frame:  ctrl.Frame(),
		gauge:  progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
		keys:   defaultKeyMap(),
		help:   help.New(),
		styles: DefaultStyles(),
	}
}

// Frame exposes the model's current snapshot (for tests).
func (m Model) Frame() session.Frame {
	return m.frame
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// #endregion model

// #region update

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		points := balance.Points()
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			m.cursor = (m.cursor + len(points) - 1) % len(points)
		case key.Matches(msg, m.keys.Down):
			m.cursor = (m.cursor + 1) % len(points)
		case key.Matches(msg, m.keys.Decrease):
			m.adjust(-1)
		case key.Matches(msg, m.keys.Increase):
			m.adjust(1)
		case key.Matches(msg, m.keys.DecFast):
			m.adjust(-5)
		case key.Matches(msg, m.keys.IncFast):
			m.adjust(5)
		case key.Matches(msg, m.keys.Reset):
			m.frame = m.ctrl.Reset()
		case key.Matches(msg, m.keys.Randomize):
			m.frame = m.ctrl.Randomize()
		}
	}
	return m, nil
}

// adjust nudges the selected balance point; the controller clamps.
func (m *Model) adjust(delta int) {
	p := balance.Points()[m.cursor]
	m.frame = m.ctrl.Set(p, m.frame.State.Get(p)+delta)
}

// #endregion update

// #region view

const (
	sliderTrackWidth = 21
	canvasWidth      = 56
	canvasHeight     = 18
)

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Tensegrity — force diamond"))
	b.WriteString("\n\n")

	b.WriteString(m.styles.Canvas.Render(renderCanvas(m.frame.Shape, canvasWidth, canvasHeight)))
	b.WriteString("\n\n")

	for i, effect := range m.frame.Report.Effects {
		b.WriteString(m.sliderRow(i, effect))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Label.Render("Structural integrity"))
	b.WriteString("\n")
	b.WriteString(m.gauge.ViewAs(m.frame.Report.Score / 100))
	b.WriteString(m.styles.Value.Render(fmt.Sprintf("  %.4g", m.frame.Report.Score)))
	b.WriteString(m.styles.Muted.Render("  " + m.frame.Report.Label))
	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render(m.frame.Report.Summary))
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")

	return b.String()
}

// sliderRow renders one balance point: label, track, value, and effect text.
func (m Model) sliderRow(i int, effect scoring.Effect) string {
	selected := i == m.cursor

	label := fmt.Sprintf("%-10s", effect.Label)
	if selected {
		label = m.styles.Selected.Render("› " + label)
	} else {
		label = m.styles.Label.Render("  " + label)
	}

	v := m.frame.State.Get(effect.Point)
	track := sliderTrack(v)
	if selected {
		track = m.styles.Selected.Render(track)
	} else {
		track = m.styles.Muted.Render(track)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		label,
		track,
		m.styles.Value.Render(fmt.Sprintf(" %+3d  ", v)),
		m.bandStyle(effect.Band).Render(string(effect.Band)),
	)
}

// sliderTrack maps [-50, 50] onto a fixed-width track with a center tick.
func sliderTrack(v int) string {
	cells := []rune(strings.Repeat("─", sliderTrackWidth))
	cells[sliderTrackWidth/2] = '┼'
	pos := (v + balance.MaxValue) * (sliderTrackWidth - 1) / (balance.MaxValue - balance.MinValue)
	cells[pos] = '●'
	return "[" + string(cells) + "]"
}

func (m Model) bandStyle(band scoring.Band) lipgloss.Style {
	switch band {
	case scoring.BandLow:
		return m.styles.BandLow
	case scoring.BandHigh:
		return m.styles.BandHigh
	default:
		return m.styles.BandOK
	}
}

// #endregion view
