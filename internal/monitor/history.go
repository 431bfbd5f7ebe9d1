package monitor

import "github.com/rileyhilliard/pidash/internal/config"

// DefaultHistorySize is the number of points each graph shows.
const DefaultHistorySize = config.DefaultGraphWidth

// Window is a fixed-length ring buffer. It is pre-filled with a neutral
// value so its length never changes: each push drops the oldest point.
type Window[T any] struct {
	data []T
	head int
}

// NewWindow creates a window of width points, all set to neutral.
// A non-positive width falls back to DefaultHistorySize.
func NewWindow[T any](width int, neutral T) *Window[T] {
	if width <= 0 {
		width = DefaultHistorySize
	}
	data := make([]T, width)
	for i := range data {
		data[i] = neutral
	}
	return &Window[T]{data: data}
}

// Push appends v as the newest point, evicting the oldest.
func (w *Window[T]) Push(v T) {
	w.data[w.head] = v
	w.head = (w.head + 1) % len(w.data)
}

// Len returns the fixed width of the window.
func (w *Window[T]) Len() int {
	return len(w.data)
}

// Values returns the points oldest first.
func (w *Window[T]) Values() []T {
	n := len(w.data)
	out := make([]T, n)
	for i := range out {
		out[i] = w.data[(w.head+i)%n]
	}
	return out
}

// Latest returns the newest point.
func (w *Window[T]) Latest() T {
	n := len(w.data)
	return w.data[(w.head-1+n)%n]
}

// History holds one window per graphed metric.
type History struct {
	CPU  *Window[uint64]
	Temp *Window[uint64]
	RAM  *Window[MemPoint]
	CMA  *Window[MemPoint]
}

// NewHistory creates windows of the given width. Composite windows start with
// a ceiling of 100 so the empty graphs have a positive scale.
func NewHistory(width int) *History {
	neutral := MemPoint{Total: 100}
	return &History{
		CPU:  NewWindow[uint64](width, 0),
		Temp: NewWindow[uint64](width, 0),
		RAM:  NewWindow(width, neutral),
		CMA:  NewWindow(width, neutral),
	}
}

// Record pushes one point from s into every window.
func (h *History) Record(s Snapshot) {
	h.CPU.Push(s.CPUPercent)
	h.Temp.Push(wholeDegrees(s.TempC))
	h.RAM.Push(s.Memory.Point())
	h.CMA.Push(s.CMA.Point())
}

// wholeDegrees truncates a temperature for the graph. Sub-zero and NaN
// readings graph as 0.
func wholeDegrees(c float64) uint64 {
	if !(c > 0) {
		return 0
	}
	return uint64(c)
}
