// Package cli implements the sysgraph command-line interface.
//
// # Command Structure
//
// The root command graphs the configured kind, so "sysgraph" alone is the
// same as "sysgraph graph":
//
//	sysgraph [kind]          - Live graph (cpu, usage, memory, load, net, command)
//	sysgraph graph [kind]    - Same, as an explicit subcommand
//	sysgraph sensors [kind]  - Probe which kinds work on this machine
//	sysgraph init            - Create .sysgraph.yaml
//	sysgraph version         - Build information
//
// # Modes
//
// When stdout is a terminal the graph runs as a full-screen Bubble Tea
// program. Otherwise, or with --headless, it prints one line per tick and
// stops after --ticks ticks (or on interrupt), which suits pipes and CI.
//
// # Flag Handling
//
// Global flags (--config, --no-color, --log-file) live on the root command.
// Graph flags are registered on both the root and the graph subcommand and
// override the matching config fields only when given.
//
// # Logging
//
// Tick failures are logged through a rate-limited logger. While the TUI owns
// the terminal, log output goes to --log-file or is discarded.
package cli
