// Package monitor implements the live Raspberry Pi dashboard.
//
// # Architecture
//
// The package uses the Bubble Tea framework, which follows The Elm Architecture
// (Model-Update-View pattern):
//
//   - Model: Holds the settings, history windows, and last snapshot
//   - Update: Processes messages (keystrokes, tick events, window size)
//   - View: Renders the current state to a string for display
//
// # Key Components
//
//	Sampler     - Reads every metric through a source.Source, owns rate state and peaks
//	History     - Fixed-width ring buffers feeding the graphs
//	Quantize    - Maps simple or stacked bars onto a grid of fill levels
//	Apply       - Pure control transition for the keyboard commands
//	Model       - The Bubble Tea model driving the sample/render/wait cycle
//
// # Message Flow
//
//  1. tickMsg arrives (immediately at start, then one interval after each sample)
//  2. The Sampler reads all sources and History records one point per graph
//  3. View() re-renders the frame
//  4. A key press applies one transition and requests an immediate tick;
//     ticks scheduled before it are discarded by sequence number
//
// # Keyboard Shortcuts
//
//	[+]          Sample faster (100ms steps, floor 100ms)
//	[-]          Sample slower (100ms steps, ceiling 5s)
//	[.] / [,]    Show more / fewer log lines
//	[c]          Cycle color mode (full, basic, mono)
//	[q] [Ctrl+C] Quit
package monitor
