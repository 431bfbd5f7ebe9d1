package monitor

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/pidash/internal/config"
	sourcetest "github.com/rileyhilliard/pidash/internal/source/testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T, src *sourcetest.FakeSource, color string) Model {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Color = color
	sampler := NewSampler(src, cfg, nil)
	sampler.now = func() time.Time { return testClock }
	return NewModel(sampler, cfg, "v1.2.3")
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm, cmd
}

func TestNewModel(t *testing.T) {
	m := newTestModel(t, newFakePi(), config.ColorBasic)

	assert.Equal(t, Settings{Interval: time.Second, LogLines: 10, Color: ColorBasic}, m.Settings())
	assert.Equal(t, ColorBasic, m.theme.Mode)
	assert.Equal(t, config.DefaultGraphWidth, m.History().CPU.Len())
	assert.Equal(t, "stream.service", m.journal)
}

func TestModel_InitSamplesImmediately(t *testing.T) {
	m := newTestModel(t, newFakePi(), config.ColorMono)

	cmd := m.Init()
	require.NotNil(t, cmd)
	assert.Equal(t, tickMsg{seq: 0}, cmd())
}

func TestModel_Tick(t *testing.T) {
	m := newTestModel(t, newFakePi(), config.ColorMono)

	m, cmd := update(t, m, tickMsg{seq: 0})
	assert.NotNil(t, cmd, "next tick is scheduled")
	assert.Equal(t, testClock, m.Last().Time)
	assert.Equal(t, uint64(20), m.History().CPU.Latest())
	assert.Equal(t, uint64(48), m.History().Temp.Latest())
}

func TestModel_StaleTickIgnored(t *testing.T) {
	m := newTestModel(t, newFakePi(), config.ColorMono)
	m.seq = 3

	m, cmd := update(t, m, tickMsg{seq: 2})
	assert.Nil(t, cmd)
	assert.True(t, m.Last().Time.IsZero())
	assert.Equal(t, uint64(0), m.History().CPU.Latest())
}

func TestModel_FasterKey(t *testing.T) {
	m := newTestModel(t, newFakePi(), config.ColorMono)

	m, cmd := update(t, m, runeKey('+'))
	assert.Equal(t, 900*time.Millisecond, m.Settings().Interval)
	require.NotNil(t, cmd)
	assert.Equal(t, tickMsg{seq: 1}, cmd(), "key press ends the wait early")
}

func TestModel_SpeedClamp(t *testing.T) {
	m := newTestModel(t, newFakePi(), config.ColorMono)

	for range 20 {
		m, _ = update(t, m, runeKey('+'))
	}
	assert.Equal(t, 100*time.Millisecond, m.Settings().Interval)

	m, _ = update(t, m, runeKey('+'))
	assert.Equal(t, 100*time.Millisecond, m.Settings().Interval)
}

func TestModel_MoreLogLines(t *testing.T) {
	src := newFakePi().SetCommand(
		"l1\nl2\nl3\nl4\nl5\nl6\nl7\nl8\nl9\nl10\nl11",
		"journalctl", "-u", "stream.service", "-n", "11", "--no-pager",
	)
	m := newTestModel(t, src, config.ColorMono)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	m, _ = update(t, m, tickMsg{seq: 0})

	m, cmd := update(t, m, runeKey('.'))
	assert.Equal(t, 11, m.Settings().LogLines)
	require.NotNil(t, cmd, "clear and resample are requested")

	m, _ = update(t, m, tickMsg{seq: m.seq})
	assert.Len(t, m.Last().Logs, 11)

	view := m.View()
	assert.Contains(t, view, "[SYSTEMD LOG: stream.service (11 lines)]")
	assert.Contains(t, view, "l1\n")
	assert.Contains(t, view, "l11\n")
}

func TestModel_FewerLogLinesAtFloor(t *testing.T) {
	m := newTestModel(t, newFakePi(), config.ColorMono)
	m.settings.LogLines = 1
	seq := m.seq

	m, cmd := update(t, m, runeKey(','))
	assert.Equal(t, 1, m.Settings().LogLines)
	require.NotNil(t, cmd)
	assert.Equal(t, tickMsg{seq: seq + 1}, cmd(), "no clear when nothing changed")
}

func TestModel_CycleColor(t *testing.T) {
	m := newTestModel(t, newFakePi(), config.ColorFull)

	m, _ = update(t, m, runeKey('c'))
	assert.Equal(t, ColorBasic, m.Settings().Color)
	assert.Equal(t, ColorBasic, m.theme.Mode)

	m, _ = update(t, m, runeKey('c'))
	m, _ = update(t, m, runeKey('c'))
	assert.Equal(t, ColorFull, m.theme.Mode)
}

func TestModel_Quit(t *testing.T) {
	for _, msg := range []tea.KeyMsg{runeKey('q'), {Type: tea.KeyCtrlC}} {
		t.Run(msg.String(), func(t *testing.T) {
			m := newTestModel(t, newFakePi(), config.ColorMono)

			m, cmd := update(t, m, msg)
			require.NotNil(t, cmd)
			assert.Equal(t, tea.QuitMsg{}, cmd())
			assert.True(t, m.quitting)
			assert.Empty(t, m.View())
		})
	}
}

func TestModel_UnboundKey(t *testing.T) {
	m := newTestModel(t, newFakePi(), config.ColorMono)
	before := m.Settings()

	m, cmd := update(t, m, runeKey('x'))
	assert.Nil(t, cmd)
	assert.Equal(t, before, m.Settings())
	assert.Equal(t, 0, m.seq)
}

func TestModel_WindowSize(t *testing.T) {
	m := newTestModel(t, newFakePi(), config.ColorMono)

	m, cmd := update(t, m, tea.WindowSizeMsg{Width: 100, Height: 50})
	assert.Nil(t, cmd)
	assert.Equal(t, 100, m.width)
	assert.Equal(t, 50, m.height)
	assert.Equal(t, 100, m.help.Width)
}
