package terminal

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// ErrNotTerminal is returned when the race is started without an interactive terminal
var ErrNotTerminal = errors.New("not a terminal")

// EmergencyReset writes restore sequences to w and puts the tty back in cooked mode
// Safe to call from a panic handler; every failure is ignored
func EmergencyReset(w io.Writer) {
	// Disable mouse tracking and bracketed paste
	w.Write(csiMouseMotionOff)
	w.Write(csiMouseDragOff)
	w.Write(csiMouseClickOff)
	w.Write(csiMouseSGROff)
	w.Write(csiPasteOff)

	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiSGR0)
	w.Write(csiAutoWrapOn)
	w.Write(csiRIS)

	// Flush if it's a file
	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios
	resetTerminalMode()
}

// RequireTTY fails unless both f and stdout are terminals
func RequireTTY(f *os.File) error {
	if !term.IsTerminal(int(f.Fd())) {
		return fmt.Errorf("%w: %s", ErrNotTerminal, f.Name())
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("%w: stdout", ErrNotTerminal)
	}
	return nil
}

// Size returns the terminal size of f
func Size(f *os.File) (width, height int, err error) {
	width, height, err = term.GetSize(int(f.Fd()))
	if err != nil {
		return 0, 0, fmt.Errorf("terminal size: %w", err)
	}
	return width, height, nil
}
