// Package ui provides the styled, non-interactive output of sysgraph's
// subcommands: a header, tables and status symbols. The live graph view
// lives in the monitor package.
//
// Colors are ANSI codes so output stays readable on any palette. Call
// DisableColors for --no-color or when stdout is not a terminal.
package ui
