package pick

import "github.com/moasq/pick/internal/terminal"

// actionKind says what the session loop should do with one keystroke.
type actionKind int

const (
	// actionMove rehighlights the item at action.target and redraws.
	actionMove actionKind = iota
	// actionConfirm ends the session with the highlighted item.
	actionConfirm
	// actionCancel ends the session with no selection.
	actionCancel
)

type action struct {
	kind   actionKind
	target int
}

// translate maps one decoded keystroke onto a session action. It is a
// pure function of the key and the current selection state; keys with
// no binding become a move to the current index, which the loop treats
// as a plain redraw.
func translate(key terminal.Key, opts *Options, wrap bool) action {
	if key.Code == terminal.KeyRune && key.Ctrl && key.Rune == 'c' {
		return action{kind: actionCancel}
	}
	switch key.Code {
	case terminal.KeyRune:
		for i, it := range opts.Items() {
			if it.Key != 0 && it.Key == key.Rune {
				return action{kind: actionMove, target: i}
			}
		}
		return action{kind: actionMove, target: opts.Current()}
	case terminal.KeyLeft, terminal.KeyUp:
		return action{kind: actionMove, target: opts.previous(wrap)}
	case terminal.KeyRight, terminal.KeyDown:
		return action{kind: actionMove, target: opts.next(wrap)}
	case terminal.KeyEnter:
		return action{kind: actionConfirm}
	case terminal.KeyEscape:
		return action{kind: actionCancel}
	}
	return action{kind: actionMove, target: opts.Current()}
}
