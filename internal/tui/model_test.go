package tui

import (
	"math/rand"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kibbyd/tensegrity/internal/balance"
	"github.com/kibbyd/tensegrity/internal/session"
)

func newTestModel() Model {
	return New(session.NewController(nil, rand.New(rand.NewSource(1))))
}

func keyPress(m Model, k string) Model {
	var msg tea.KeyMsg
	switch k {
	case "up", "down", "left", "right", "shift+left", "shift+right":
		types := map[string]tea.KeyType{
			"up": tea.KeyUp, "down": tea.KeyDown,
			"left": tea.KeyLeft, "right": tea.KeyRight,
			"shift+left": tea.KeyShiftLeft, "shift+right": tea.KeyShiftRight,
		}
		msg = tea.KeyMsg{Type: types[k]}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestAdjustSelectedPoint(t *testing.T) {
	m := newTestModel()

	m = keyPress(m, "right")
	assert.Equal(t, 1, m.Frame().State.Value)

	m = keyPress(m, "shift+right")
	assert.Equal(t, 6, m.Frame().State.Value)

	m = keyPress(m, "left")
	assert.Equal(t, 5, m.Frame().State.Value)
	assert.Equal(t, 97.5, m.Frame().Report.Score)
}

func TestCursorMovesBetweenPoints(t *testing.T) {
	m := newTestModel()

	m = keyPress(m, "down")
	m = keyPress(m, "right")
	assert.Equal(t, 0, m.Frame().State.Value)
	assert.Equal(t, 1, m.Frame().State.Direction)

	// Wraps around the four points.
	m = keyPress(m, "up")
	m = keyPress(m, "up")
	m = keyPress(m, "right")
	assert.Equal(t, 1, m.Frame().State.Operate)
}

func TestAdjustClampsAtRangeEdge(t *testing.T) {
	m := newTestModel()
	for i := 0; i < 12; i++ {
		m = keyPress(m, "shift+right")
	}
	assert.Equal(t, balance.MaxValue, m.Frame().State.Value)
}

func TestResetAndStressTestKeys(t *testing.T) {
	m := newTestModel()
	m = keyPress(m, "s")
	randomized := m.Frame().State
	for _, p := range balance.Points() {
		v := randomized.Get(p)
		assert.GreaterOrEqual(t, v, balance.MinValue)
		assert.LessOrEqual(t, v, balance.MaxValue)
	}

	m = keyPress(m, "r")
	assert.True(t, m.Frame().State.IsIdeal())
	assert.Equal(t, 100.0, m.Frame().Report.Score)
}

func TestQuitKey(t *testing.T) {
	m := newTestModel()
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestViewShowsAllPoints(t *testing.T) {
	m := newTestModel()
	view := m.View()
	for _, spec := range balance.Specs() {
		assert.Contains(t, view, spec.Label)
	}
	assert.Contains(t, view, "Structural integrity")
	assert.Contains(t, view, "balanced")
}

func TestViewMarksBands(t *testing.T) {
	m := newTestModel()
	for i := 0; i < 8; i++ {
		m = keyPress(m, "shift+right")
	}
	assert.Contains(t, m.View(), "high")
}

func TestSliderTrackPositions(t *testing.T) {
	low := sliderTrack(balance.MinValue)
	high := sliderTrack(balance.MaxValue)
	mid := sliderTrack(0)

	assert.Equal(t, "●", string([]rune(low)[1]))
	assert.Equal(t, "●", string([]rune(high)[sliderTrackWidth]))
	assert.Equal(t, "●", string([]rune(mid)[1+sliderTrackWidth/2]))
	assert.Len(t, []rune(low), sliderTrackWidth+2)
}

func TestRenderCanvasMarksCurves(t *testing.T) {
	m := newTestModel()
	canvas := renderCanvas(m.Frame().Shape, 56, 18)
	require.NotEmpty(t, canvas)
	assert.Contains(t, canvas, "◆")
	assert.Contains(t, canvas, "█")

	// Distorted shape no longer covers the ideal trace everywhere.
	ctrl := session.NewController(nil, rand.New(rand.NewSource(1)))
	f := ctrl.Apply(balance.State{Value: 50, Direction: -50, Exchange: 50, Operate: -50})
	distorted := renderCanvas(f.Shape, 56, 18)
	assert.Contains(t, distorted, "·")
}

func TestRenderCanvasTooSmall(t *testing.T) {
	assert.Empty(t, renderCanvas(newTestModel().Frame().Shape, 4, 2))
}
