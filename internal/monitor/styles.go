package monitor

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Dashboard color palette - Gen Z Electric Synthwave
const (
	ColorBorder = lipgloss.Color("#2A2A4A") // Glass border (purple tint)
	ColorShade  = lipgloss.Color("#3C3C3C") // Unfilled stacked cells

	ColorHealthy  = lipgloss.Color("#39FF14") // Neon green
	ColorWarning  = lipgloss.Color("#FFAA00") // Electric amber
	ColorCritical = lipgloss.Color("#FF0055") // Hot red-pink

	ColorTextPrimary = lipgloss.Color("#FFFFFF")
	ColorTextMuted   = lipgloss.Color("#6B6B8D")

	ColorAccent    = lipgloss.Color("#FF2E97") // Neon pink
	ColorAccentDim = lipgloss.Color("#BF40FF") // Neon purple
	ColorGraph     = lipgloss.Color("#00FFFF") // Neon cyan
	ColorMemory    = lipgloss.Color("#3B82F6") // Electric blue
)

// Glyphs used by the graphs.
const (
	GlyphFull  = "█"
	GlyphDense = "▓"
	GlyphLight = "░"
	GlyphBlank = " "
)

// Metric identifies a graphed metric.
type Metric int

const (
	MetricCPU Metric = iota
	MetricTemp
	MetricRAM
	MetricCMA
)

// Title returns the heading drawn above the metric's graph.
func (m Metric) Title() string {
	switch m {
	case MetricCPU:
		return "CPU HISTORY"
	case MetricTemp:
		return "TEMP HISTORY"
	case MetricRAM:
		return "RAM (App/Cache/Tot)"
	case MetricCMA:
		return "CMA (Act/Res/Tot)"
	default:
		return ""
	}
}

// Stacked reports whether the metric is drawn as a two-layer graph.
func (m Metric) Stacked() bool {
	return m == MetricRAM || m == MetricCMA
}

// palette is the set of colors for one color mode.
type palette struct {
	title, text, muted, heading, rule lipgloss.Color
	good, bad, net, shade             lipgloss.Color
	primary, secondary                [4]lipgloss.Color // indexed by Metric
}

var fullPalette = palette{
	title:     ColorGraph,
	text:      ColorTextPrimary,
	muted:     ColorTextMuted,
	heading:   ColorWarning,
	rule:      ColorBorder,
	good:      ColorHealthy,
	bad:       ColorCritical,
	net:       ColorGraph,
	shade:     ColorShade,
	primary:   [4]lipgloss.Color{ColorHealthy, ColorCritical, ColorMemory, ColorAccent},
	secondary: [4]lipgloss.Color{ColorHealthy, ColorCritical, ColorGraph, ColorAccentDim},
}

// basicPalette uses the 16 standard ANSI colors.
var basicPalette = palette{
	title:     "6",
	text:      "7",
	muted:     "8",
	heading:   "3",
	rule:      "8",
	good:      "2",
	bad:       "1",
	net:       "6",
	shade:     "8",
	primary:   [4]lipgloss.Color{"2", "1", "4", "13"},
	secondary: [4]lipgloss.Color{"2", "1", "6", "5"},
}

// profileFor returns the color profile that realises a color mode.
func profileFor(mode ColorMode) termenv.Profile {
	switch mode {
	case ColorBasic:
		return termenv.ANSI
	case ColorMono:
		return termenv.Ascii
	default:
		return termenv.TrueColor
	}
}

// Theme holds every style of the dashboard for one color mode.
type Theme struct {
	Mode    ColorMode
	Title   lipgloss.Style
	Text    lipgloss.Style
	Muted   lipgloss.Style
	Heading lipgloss.Style
	Rule    lipgloss.Style
	Good    lipgloss.Style
	Bad     lipgloss.Style
	Net     lipgloss.Style
	graphs  [4]GraphPalette
}

// NewTheme builds the styles for mode. The styles carry their own renderer,
// so the output does not depend on terminal detection.
func NewTheme(mode ColorMode) Theme {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(profileFor(mode))

	p := fullPalette
	if mode == ColorBasic {
		p = basicPalette
	}
	fg := func(c lipgloss.Color) lipgloss.Style {
		return r.NewStyle().Foreground(c)
	}

	t := Theme{
		Mode:    mode,
		Title:   fg(p.title).Bold(true),
		Text:    fg(p.text),
		Muted:   fg(p.muted),
		Heading: fg(p.heading).Bold(true),
		Rule:    fg(p.rule),
		Good:    fg(p.good),
		Bad:     fg(p.bad),
		Net:     fg(p.net),
	}
	for m := MetricCPU; m <= MetricCMA; m++ {
		if m.Stacked() {
			t.graphs[m] = GraphPalette{
				Primary:   Glyph{Char: GlyphFull, Style: fg(p.primary[m])},
				Secondary: Glyph{Char: GlyphDense, Style: fg(p.secondary[m])},
				Empty:     Glyph{Char: GlyphLight, Style: fg(p.shade)},
			}
			continue
		}
		t.graphs[m] = GraphPalette{
			Primary:   Glyph{Char: GlyphFull, Style: fg(p.primary[m])},
			Secondary: Glyph{Char: GlyphBlank, Style: r.NewStyle()},
			Empty:     Glyph{Char: GlyphBlank, Style: r.NewStyle()},
		}
	}
	return t
}

// Graph returns the glyph palette of a metric.
func (t Theme) Graph(m Metric) GraphPalette {
	return t.graphs[m]
}
