// Package pick renders an ordered list of choices on a single terminal
// line and lets the user select one with the arrow keys or a per-item
// mnemonic letter.
//
// A minimal session:
//
//	opts, err := pick.OptionsFromStrings("Yes", "So so", "Maybe", "No")
//	if err != nil {
//		return err
//	}
//	label, err := pick.Choose("Do you like Go?", opts)
//	switch {
//	case errors.Is(err, pick.ErrCanceled):
//		// user pressed Esc or Ctrl+C
//	case err != nil:
//		// terminal was unusable
//	default:
//		fmt.Println("picked", label)
//	}
//
// The prompt is drawn in place and redrawn on every keystroke:
//
//	Do you like Go? [ Yes /s/m/n]
//	Do you like Go? [y/ So so /m/n]
//
// Rendering and navigation are controlled by a Config; see Config.Choose
// for the per-session variant.
package pick

import "errors"

// ErrCanceled is returned when the user leaves a session without
// confirming a choice (Esc or Ctrl+C).
var ErrCanceled = errors.New("selection canceled")

// Choose runs one interactive selection with the default configuration
// and returns the confirmed item's label.
func Choose(prompt string, opts *Options) (string, error) {
	cfg := DefaultConfig()
	return cfg.Choose(prompt, opts)
}

// YesNo asks a yes-or-no question with the default configuration.
// defaultYes selects which answer starts highlighted.
func YesNo(prompt string, defaultYes bool) (bool, error) {
	cfg := DefaultConfig()
	return cfg.YesNo(prompt, defaultYes)
}
