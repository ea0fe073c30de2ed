// Package terminal restores the controlling terminal after a crash and
// checks that the race runs on an interactive terminal.
//
// tcell owns the terminal while the race runs; this package is only for the
// paths where tcell cannot clean up after itself.
package terminal
