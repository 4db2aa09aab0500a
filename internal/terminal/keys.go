package terminal

import "bufio"

// KeyCode identifies what kind of key one decoded event carries.
type KeyCode int

const (
	// KeyRune is a character key; the rune and ctrl flag are set.
	KeyRune KeyCode = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
	// KeyUnknown covers everything the picker has no binding for
	// (tab, backspace, function keys, unrecognized CSI sequences).
	KeyUnknown
)

// Key is one keystroke decoded from a raw-mode input stream.
type Key struct {
	Code KeyCode
	Rune rune // set when Code is KeyRune
	Ctrl bool // set for control chords, e.g. Ctrl+C
}

// ReadKey blocks until one key event can be decoded from r. The reader
// must sit on a terminal in raw mode (or any byte stream emitting the
// same encoding, which is how tests drive it).
func ReadKey(r *bufio.Reader) (Key, error) {
	c, _, err := r.ReadRune()
	if err != nil {
		return Key{}, err
	}
	switch {
	case c == '\r' || c == '\n':
		return Key{Code: KeyEnter}, nil
	case c == 0x1b:
		return readEscape(r)
	case c == '\t' || c == 0x7f || c == 0x08 || c == 0:
		return Key{Code: KeyUnknown}, nil
	case c < 0x20:
		// Raw mode delivers Ctrl+letter as a single byte 0x01..0x1a.
		return Key{Code: KeyRune, Rune: 'a' + c - 1, Ctrl: true}, nil
	}
	return Key{Code: KeyRune, Rune: c}, nil
}

// readEscape decodes the remainder of an escape sequence. A terminal
// sends the whole sequence in one burst, so an ESC with nothing buffered
// behind it is the Escape key itself.
func readEscape(r *bufio.Reader) (Key, error) {
	if r.Buffered() == 0 {
		return Key{Code: KeyEscape}, nil
	}
	b, err := r.ReadByte()
	if err != nil {
		return Key{}, err
	}
	if b != '[' {
		// Alt chord; nothing binds these.
		return Key{Code: KeyUnknown}, nil
	}
	for {
		b, err = r.ReadByte()
		if err != nil {
			return Key{}, err
		}
		switch b {
		case 'A':
			return Key{Code: KeyUp}, nil
		case 'B':
			return Key{Code: KeyDown}, nil
		case 'C':
			return Key{Code: KeyRight}, nil
		case 'D':
			return Key{Code: KeyLeft}, nil
		}
		if b >= 0x40 && b <= 0x7e {
			// Final byte of a CSI sequence we don't bind (Home, End,
			// Delete, function keys).
			return Key{Code: KeyUnknown}, nil
		}
		// Parameter or intermediate byte; keep draining.
	}
}
