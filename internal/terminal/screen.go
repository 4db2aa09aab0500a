// Package terminal owns the raw-mode terminal for the duration of one
// picker session: it decodes keystrokes from the unbuffered input stream
// and manages the display mode (in-place drawing or the alternate
// buffer) with guaranteed restoration.
package terminal

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

const (
	hideCursor     = "\x1b[?25l"
	showCursor     = "\x1b[?25h"
	saveCursor     = "\x1b7"
	restoreCursor  = "\x1b8"
	clearLine      = "\x1b[2K"
	enterAltScreen = "\x1b[?1049h"
	leaveAltScreen = "\x1b[?1049l"
	cursorHome     = "\x1b[H"
)

// Mode selects how a session uses the screen.
type Mode int

const (
	// ModeInPlace draws over the current prompt line, reserving blank
	// lines below it for description output.
	ModeInPlace Mode = iota
	// ModeAlternate draws in the alternate buffer and restores the
	// primary screen contents on close.
	ModeAlternate
)

// Screen holds the terminal in a modified display and input mode.
// Exactly one exists per session. Open acquires the terminal; Close
// must run on every exit path (callers defer it immediately) and
// restores cooked input, the cursor, and the original buffer.
type Screen struct {
	mode     Mode
	in       *os.File
	out      *os.File
	state    *term.State
	reserved int
}

// Open switches the terminal into the requested mode and records the
// cursor position that PrepareRedraw returns to. reserved is the number
// of lines below the prompt that in-place mode claims for descriptions;
// alternate mode ignores it. A raw-mode failure leaves the terminal
// untouched and is fatal to the session.
func Open(in, out *os.File, mode Mode, reserved int) (*Screen, error) {
	if mode == ModeInPlace && reserved > 0 {
		// Push existing content up before echo is disabled, so the
		// reserved lines exist even at the bottom of the screen.
		if _, err := fmt.Fprint(out, strings.Repeat("\n", reserved)); err != nil {
			return nil, fmt.Errorf("reserve draw space: %w", err)
		}
	}

	state, err := term.MakeRaw(int(in.Fd()))
	if err != nil {
		return nil, fmt.Errorf("enable raw mode: %w", err)
	}
	s := &Screen{mode: mode, in: in, out: out, state: state, reserved: reserved}

	var enter string
	switch mode {
	case ModeAlternate:
		enter = hideCursor + enterAltScreen + cursorHome + saveCursor
	default:
		enter = hideCursor
		if reserved > 0 {
			enter += fmt.Sprintf("\x1b[%dA", reserved)
		}
		enter += saveCursor
	}
	if _, err := fmt.Fprint(out, enter); err != nil {
		_ = term.Restore(int(in.Fd()), state)
		return nil, fmt.Errorf("enter screen mode: %w", err)
	}
	return s, nil
}

// PrepareRedraw returns the cursor to the anchor recorded at Open and
// clears that line so the caller can rewrite the prompt.
func (s *Screen) PrepareRedraw() error {
	if _, err := fmt.Fprint(s.out, restoreCursor+clearLine); err != nil {
		return fmt.Errorf("prepare redraw: %w", err)
	}
	return nil
}

// Close restores the terminal: cursor shown, cooked input mode, primary
// buffer. Restoration is best-effort; a session that is already ending
// must never fail or panic in teardown, so errors are discarded.
func (s *Screen) Close() {
	switch s.mode {
	case ModeAlternate:
		fmt.Fprint(s.out, showCursor+leaveAltScreen)
		_ = term.Restore(int(s.in.Fd()), s.state)
	default:
		fmt.Fprint(s.out, showCursor)
		_ = term.Restore(int(s.in.Fd()), s.state)
		// Leave the shell on a fresh line so its next prompt does not
		// land on top of ours.
		fmt.Fprint(s.out, "\r\n")
	}
}

// IsInteractive reports whether both files are attached to a terminal.
func IsInteractive(in, out *os.File) bool {
	return term.IsTerminal(int(in.Fd())) && term.IsTerminal(int(out.Fd()))
}
