package monitor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/rileyhilliard/pidash/internal/util"
)

// Frame size used before the first WindowSizeMsg arrives.
const (
	defaultCols = 120
	defaultRows = 30
)

// minColumnSplit is the smallest left column width of the two-column rows.
const minColumnSplit = 55

// maxCategories is the number of DMA categories listed in the panel.
const maxCategories = 3

// View renders the dashboard.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	cols, rows := m.width, m.height
	if cols <= 0 || rows <= 0 {
		cols, rows = defaultCols, defaultRows
	}
	return strings.Join(m.frame(cols, rows), "\n")
}

// frame builds every row of the screen, footer last.
func (m Model) frame(cols, rows int) []string {
	t := m.theme
	s := m.last
	mid := max(cols/2, minColumnSplit)
	rule := t.Rule.Render(strings.Repeat("-", cols))

	lines := []string{
		t.Title.Render(fmt.Sprintf("=== PI DASHBOARD === %s (%s)", s.Time.Format("15:04:05"), m.version)),
		t.Text.Render(fmt.Sprintf("Uptime: %s | Load: %s", s.Uptime, s.Load)),
		rule,
	}
	lines = append(lines, m.renderSystem(mid)...)
	lines = append(lines, "")
	lines = append(lines, m.renderMemory(mid)...)
	lines = append(lines, "")
	lines = append(lines, m.renderPanels(mid)...)
	lines = append(lines, rule, m.renderNetwork(), rule)
	lines = append(lines, m.renderLogs(cols, rows-1-len(lines))...)

	for len(lines) < rows-1 {
		lines = append(lines, "")
	}
	return append(lines, m.renderFooter())
}

func (m Model) renderSystem(mid int) []string {
	t := m.theme
	peaks := m.sampler.Peaks()

	cpu := RenderGraph(Quantize(SimpleBars(m.history.CPU.Values(), m.graph.CPUScale), m.graph.Height), t.Graph(MetricCPU))
	temp := RenderGraph(Quantize(SimpleBars(m.history.Temp.Values(), m.graph.TempScale), m.graph.Height), t.Graph(MetricTemp))

	lines := columns(mid, []string{t.Heading.Render(MetricCPU.Title())}, []string{t.Heading.Render(MetricTemp.Title())})
	lines = append(lines, columns(mid, cpu, temp)...)
	return append(lines, columns(mid,
		[]string{t.Text.Render(fmt.Sprintf("Usage: %3d%% (Peak: %d%%)", m.last.CPUPercent, peaks.CPU))},
		[]string{t.Text.Render(fmt.Sprintf("Temp: %.1f°C (Peak: %.1f°C)", m.last.TempC, peaks.TempC))},
	)...)
}

func (m Model) renderMemory(mid int) []string {
	t := m.theme
	mem, cma := m.last.Memory, m.last.CMA

	ram := RenderGraph(Quantize(StackedBars(m.history.RAM.Values()), m.graph.Height), t.Graph(MetricRAM))
	cmaGraph := RenderGraph(Quantize(StackedBars(m.history.CMA.Values()), m.graph.Height), t.Graph(MetricCMA))

	lines := columns(mid, []string{t.Heading.Render(MetricRAM.Title())}, []string{t.Heading.Render(MetricCMA.Title())})
	lines = append(lines, columns(mid, ram, cmaGraph)...)
	return append(lines, columns(mid,
		[]string{t.Text.Render(fmt.Sprintf("%d/%d/%d MB", mem.AppKB/1024, mem.CacheKB/1024, mem.TotalKB/1024))},
		[]string{t.Text.Render(fmt.Sprintf("%d/%d/%d MB", cma.ActiveBytes/1024/1024, cma.ReservedKB/1024, cma.TotalKB/1024))},
	)...)
}

func (m Model) renderPanels(mid int) []string {
	t := m.theme
	hw := m.last.Hardware

	throttle := t.Good
	if hw.ThrottledLabel() != "None" {
		throttle = t.Bad
	}
	left := []string{
		t.Heading.Render("[HARDWARE & HEALTH]"),
		t.Text.Render(fmt.Sprintf("Volt: %-7s | H264: %dMHz", hw.Volts, hw.H264MHz)),
		t.Text.Render(fmt.Sprintf("Net Errs/s: %-3d | Throttled: ", m.last.Network.ErrsPerSec)) +
			throttle.Render(hw.ThrottledLabel()),
	}

	right := []string{t.Heading.Render("[DMA-BUFFER DETAILS]")}
	for i, c := range m.last.Categories {
		if i == maxCategories {
			break
		}
		right = append(right, t.Text.Render(fmt.Sprintf("%-12s | %9s | #%d", c.Label, humanize.IBytes(c.Bytes), c.Count)))
	}
	return columns(mid, left, right)
}

func (m Model) renderNetwork() string {
	t := m.theme
	net := m.last.Network
	return t.Net.Render(fmt.Sprintf("Net: %5d kbps Out (Peak: %d)", net.KbpsOut, m.sampler.Peaks().NetKbps)) +
		t.Text.Render(" | Stream: "+util.JoinOrDefault(m.last.Stream, "none"))
}

// renderLogs draws the log panel header and as many of the newest lines as
// fit in room rows.
func (m Model) renderLogs(cols, room int) []string {
	if room <= 0 {
		return nil
	}
	t := m.theme
	n := m.settings.LogLines
	lines := []string{t.Heading.Render(fmt.Sprintf("[SYSTEMD LOG: %s (%d %s)]", m.journal, n, util.Pluralize(n, "line", "lines")))}

	logs := m.last.Logs
	if len(logs) > room-1 {
		logs = logs[len(logs)-(room-1):]
	}
	for _, l := range logs {
		lines = append(lines, t.Muted.Render(util.TailTruncate(l, cols)))
	}
	return lines
}

func (m Model) renderFooter() string {
	return m.theme.Muted.Render("Controls: ") + m.help.View(footerFor(m.settings))
}

// columns lays out two blocks side by side, the right one starting at
// column mid.
func columns(mid int, left, right []string) []string {
	n := max(len(left), len(right))
	out := make([]string, n)
	for i := range out {
		var l, r string
		if i < len(left) {
			l = left[i]
		}
		if i < len(right) {
			r = right[i]
		}
		if r == "" {
			out[i] = l
			continue
		}
		pad := max(mid-lipgloss.Width(l), 1)
		out[i] = l + strings.Repeat(" ", pad) + r
	}
	return out
}
