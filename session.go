package pick

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"

	"github.com/moasq/pick/internal/terminal"
)

// screen is the part of the terminal lifecycle the loop owns: the
// per-keystroke redraw and the final teardown. Tests substitute a stub;
// production uses *terminal.Screen.
type screen interface {
	PrepareRedraw() error
	Close()
}

// Choose runs one interactive session on the process terminal and blocks
// until the user confirms or cancels. It returns the confirmed item's
// label, or ErrCanceled when the user backs out with Escape or Ctrl+C.
// The terminal is restored on every exit path, including read and draw
// errors.
func (c Config) Choose(prompt string, opts *Options) (string, error) {
	in, out := os.Stdin, os.Stdout
	if !terminal.IsInteractive(in, out) {
		return "", fmt.Errorf("choose: stdin and stdout must be a terminal")
	}

	mode := terminal.ModeInPlace
	if c.AlternateScreen {
		mode = terminal.ModeAlternate
	}
	scr, err := terminal.Open(in, out, mode, reservedLines(opts, c))
	if err != nil {
		return "", fmt.Errorf("choose: %w", err)
	}

	slog.Debug("picker session started", "items", len(opts.Items()), "alt", c.AlternateScreen)

	r := bufio.NewReader(in)
	w := bufio.NewWriter(out)
	readKey := func() (terminal.Key, error) { return terminal.ReadKey(r) }
	return c.run(prompt, opts, scr, w, readKey)
}

// run is the session loop: draw, read one key, translate it, repeat. It
// is separated from Choose so tests can drive it with a stub screen and
// a scripted key source. The screen is closed here on every exit path,
// confirm, cancel, and error alike.
func (c Config) run(prompt string, opts *Options, scr screen, w *bufio.Writer, readKey func() (terminal.Key, error)) (string, error) {
	defer scr.Close()
	for {
		if err := scr.PrepareRedraw(); err != nil {
			return "", fmt.Errorf("choose: %w", err)
		}
		w.WriteString(renderStrip(prompt, opts, c))
		w.WriteString(renderDescriptions(opts, c))
		if err := w.Flush(); err != nil {
			return "", fmt.Errorf("choose: draw: %w", err)
		}

		key, err := readKey()
		if err != nil {
			return "", fmt.Errorf("choose: read key: %w", err)
		}

		switch act := translate(key, opts, c.Wrap); act.kind {
		case actionConfirm:
			slog.Debug("picker confirmed", "label", opts.CurrentLabel())
			return opts.CurrentLabel(), nil
		case actionCancel:
			slog.Debug("picker canceled")
			return "", ErrCanceled
		default:
			opts = opts.withCurrent(act.target)
		}
	}
}

// YesNo runs a two-item Yes/No session. defaultYes picks which item is
// highlighted first. Cancellation surfaces as ErrCanceled, same as
// Choose.
func (c Config) YesNo(prompt string, defaultYes bool) (bool, error) {
	current := 1
	if defaultYes {
		current = 0
	}
	opts, err := NewOptions(current,
		NewItem("Yes", "y", 'y'),
		NewItem("No", "n", 'n'),
	)
	if err != nil {
		return false, err
	}
	label, err := c.Choose(prompt, opts)
	if err != nil {
		return false, err
	}
	switch label {
	case "Yes":
		return true, nil
	case "No":
		return false, nil
	}
	return false, ErrCanceled
}
