package pick

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// descriptionLabelWidth is the fixed label column of the single-line
// description drawn in DescriptionCurrent mode.
const descriptionLabelWidth = 6

// renderStrip builds the one-line option strip: the prompt, then every
// item joined by the delimiter, the highlighted one spelled out as
// " Label " and the rest reduced to their mnemonic rune.
func renderStrip(prompt string, opts *Options, cfg Config) string {
	var b strings.Builder
	if prompt != "" {
		b.WriteString(prompt)
		b.WriteString(" ")
	}
	b.WriteString(cfg.LeftBracket)
	for i, it := range opts.Items() {
		if i > 0 {
			b.WriteString(cfg.Delimiter)
		}
		if i == opts.Current() {
			b.WriteString(" ")
			b.WriteString(it.Label)
			b.WriteString(" ")
		} else if it.Key != 0 {
			b.WriteRune(it.Key)
		}
	}
	b.WriteString(cfg.RightBracket)
	return b.String()
}

// nameColumnWidth resolves the label column width for DescriptionAll
// lines. Auto sizes to the widest label by display width, so double-wide
// runes line up.
func nameColumnWidth(opts *Options, w NameWidth) int {
	switch {
	case w == NameWidthAuto:
		widest := 0
		for _, it := range opts.Items() {
			if lw := runewidth.StringWidth(it.Label); lw > widest {
				widest = lw
			}
		}
		return widest
	case w > 0:
		return int(w)
	}
	return 0
}

// renderDescriptions builds the lines drawn below the option strip.
// Each line starts with "\r\n" and a full clear because the terminal is
// in raw mode and the lines are redrawn in place on every keystroke.
func renderDescriptions(opts *Options, cfg Config) string {
	var b strings.Builder
	switch cfg.Descriptions {
	case DescriptionCurrent:
		it := opts.CurrentItem()
		b.WriteString("\r\n\x1b[2K")
		b.WriteString("    ")
		b.WriteString(runewidth.FillRight(it.Label, descriptionLabelWidth))
		b.WriteString(" ")
		b.WriteString(it.Description)
	case DescriptionAll:
		width := nameColumnWidth(opts, cfg.NameWidth)
		for i, it := range opts.Items() {
			b.WriteString("\r\n\x1b[2K")
			if i == opts.Current() {
				b.WriteString(">")
			} else {
				b.WriteString(" ")
			}
			b.WriteString(" ")
			b.WriteString(runewidth.FillRight(it.Label, width))
			b.WriteString(" ")
			b.WriteString(it.Description)
		}
	}
	return b.String()
}

// reservedLines is how many lines below the prompt a session needs for
// its description mode.
func reservedLines(opts *Options, cfg Config) int {
	switch cfg.Descriptions {
	case DescriptionCurrent:
		return 1
	case DescriptionAll:
		return len(opts.Items()) + 1
	}
	return 0
}
