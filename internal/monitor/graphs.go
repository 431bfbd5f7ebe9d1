package monitor

import (
	"math/bits"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Level is the fill state of one graph cell.
type Level uint8

const (
	LevelEmpty Level = iota
	LevelSecondary
	LevelPrimary
)

// Bars is the input of a graph: one column per history point. Secondary is
// nil for single-layer graphs. All slices have the same length.
type Bars struct {
	Primary   []uint64
	Secondary []uint64
	Ceiling   []uint64
}

// Stacked reports whether the bars carry a second layer.
func (b Bars) Stacked() bool {
	return b.Secondary != nil
}

// SimpleBars builds single-layer bars against a fixed scale.
func SimpleBars(values []uint64, scale uint64) Bars {
	ceiling := make([]uint64, len(values))
	for i := range ceiling {
		ceiling[i] = scale
	}
	return Bars{Primary: values, Ceiling: ceiling}
}

// StackedBars builds two-layer bars where each point is scaled against its
// own total. A zero total is treated as 1.
func StackedBars(points []MemPoint) Bars {
	b := Bars{
		Primary:   make([]uint64, len(points)),
		Secondary: make([]uint64, len(points)),
		Ceiling:   make([]uint64, len(points)),
	}
	for i, p := range points {
		b.Primary[i] = p.Val1
		b.Secondary[i] = p.Val2
		b.Ceiling[i] = max(p.Total, 1)
	}
	return b
}

// Threshold is the value a column must reach to fill row (0 = top) of a
// graph with the given height: (height-row)*ceiling/height, truncated.
func Threshold(row, height int, ceiling uint64) uint64 {
	hi, lo := bits.Mul64(uint64(height-row), ceiling)
	q, _ := bits.Div64(hi, lo, uint64(height))
	return q
}

// Quantize maps bars onto a height x len(bars) grid of levels, top row first.
func Quantize(b Bars, height int) [][]Level {
	if height <= 0 {
		return nil
	}

	grid := make([][]Level, height)
	for r := range grid {
		row := make([]Level, len(b.Primary))
		for i, v := range b.Primary {
			thr := Threshold(r, height, b.Ceiling[i])
			switch {
			case v >= thr:
				row[i] = LevelPrimary
			case b.Stacked() && b.Secondary[i] >= thr:
				row[i] = LevelSecondary
			default:
				row[i] = LevelEmpty
			}
		}
		grid[r] = row
	}
	return grid
}

// Glyph is how one level is drawn.
type Glyph struct {
	Char  string
	Style lipgloss.Style
}

// GraphPalette maps each level to a glyph.
type GraphPalette struct {
	Primary   Glyph
	Secondary Glyph
	Empty     Glyph
}

func (p GraphPalette) glyph(l Level) Glyph {
	switch l {
	case LevelPrimary:
		return p.Primary
	case LevelSecondary:
		return p.Secondary
	default:
		return p.Empty
	}
}

// RenderGraph draws a level grid, one string per row. Runs of equal level
// share a single styled span.
func RenderGraph(grid [][]Level, p GraphPalette) []string {
	lines := make([]string, len(grid))
	for r, row := range grid {
		var sb strings.Builder
		for i := 0; i < len(row); {
			j := i
			for j < len(row) && row[j] == row[i] {
				j++
			}
			g := p.glyph(row[i])
			sb.WriteString(g.Style.Render(strings.Repeat(g.Char, j-i)))
			i = j
		}
		lines[r] = sb.String()
	}
	return lines
}
