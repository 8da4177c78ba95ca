// Package monitor implements the live graph TUI and its headless twin.
//
// The package uses the Bubble Tea framework, which follows The Elm Architecture
// (Model-Update-View pattern):
//
//   - Model: Holds the graph.Set and presentation state (renderer, legend, pause)
//   - Update: Processes messages (keystrokes, window size, tick events)
//   - View: Takes a graph.Snapshot and renders it to a string for display
//
// # Message Flow
//
// The graph runs on a single tick cycle, never overlapping:
//
//  1. tickMsg fires at the configured interval (default 250ms)
//  2. The time since the previous tick becomes dt, so late ticks stretch
//     the x axis instead of drifting
//  3. graph.Set.Step samples every series and slides the window
//  4. View() re-renders from a fresh snapshot
//
// A failed tick leaves the set untouched. The error is shown in the footer,
// logged through a rate limited logger, and the next tick retries.
//
// # Renderers
//
// Two renderers consume snapshots: a braille line chart drawn on the axis
// bounds, and a drawille canvas. Press m to switch between them.
//
// # Keyboard Shortcuts
//
//	q, Ctrl+C   - Quit
//	?           - Toggle help overlay
//	r           - Reset the y range
//	m           - Switch renderer
//	l           - Toggle legend
//	p           - Pause / resume sampling
//
// When stdout is not a terminal, RunHeadless drives the same set and prints
// one line per tick instead.
package monitor
