package pick

// DescriptionMode controls whether item descriptions are drawn below the
// prompt line.
type DescriptionMode int

const (
	// DescriptionNever draws no description lines.
	DescriptionNever DescriptionMode = iota
	// DescriptionCurrent draws one line describing the highlighted item.
	DescriptionCurrent
	// DescriptionAll draws one line per item, marking the highlighted one.
	DescriptionAll
)

// NameWidth sizes the label column of description lines. Zero disables
// padding, a positive value pads every label to that display width, and
// NameWidthAuto pads to the widest label in the list.
type NameWidth int

// NameWidthAuto pads description labels to the widest label on offer.
const NameWidthAuto NameWidth = -1

// Config is the read-only display and navigation policy for a session.
// The zero value is usable; DefaultConfig fills in the conventional
// delimiter and width policy.
type Config struct {
	// Delimiter separates entries in the option strip, e.g. "/" gives
	// "[ Yes /s/m/n]".
	Delimiter string

	// LeftBracket and RightBracket enclose the option strip. Both empty
	// means no enclosure.
	LeftBracket  string
	RightBracket string

	// Wrap makes Next from the last item cycle to the first and
	// Previous from the first cycle to the last, instead of clamping.
	Wrap bool

	// AlternateScreen runs the session in the terminal's alternate
	// buffer, restoring the primary screen contents on exit.
	AlternateScreen bool

	// Descriptions selects which description lines are drawn.
	Descriptions DescriptionMode

	// NameWidth sizes the label column when descriptions are drawn.
	NameWidth NameWidth
}

// DefaultConfig returns the stock configuration: "/" delimiter, square
// brackets, no wraparound, primary screen, no descriptions, automatic
// label width.
func DefaultConfig() Config {
	return Config{
		Delimiter:    "/",
		LeftBracket:  "[",
		RightBracket: "]",
		NameWidth:    NameWidthAuto,
	}
}

// ParseBrackets splits a bracket shorthand into its left and right
// halves. An even-length string splits down the middle ("()" and "[[]]"
// work as expected); an odd-length string is used whole as the left
// bracket; empty means no brackets.
func ParseBrackets(s string) (left, right string) {
	if s == "" {
		return "", ""
	}
	runes := []rune(s)
	if len(runes)%2 != 0 {
		return s, ""
	}
	half := len(runes) / 2
	return string(runes[:half]), string(runes[half:])
}

// SetBrackets applies ParseBrackets to the config.
func (c *Config) SetBrackets(s string) {
	c.LeftBracket, c.RightBracket = ParseBrackets(s)
}
