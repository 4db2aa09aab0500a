package pick

import (
	"strings"
	"unicode"
)

// Item is one selectable choice. Label is shown in full when the item is
// highlighted; Key is the single-rune mnemonic that selects it directly
// and stands in for it in the option strip when it is not highlighted.
// Short is a compact form of the label kept alongside for callers that
// render their own summaries. Description is optional extra text shown
// when the session's description mode asks for it.
type Item struct {
	Label       string
	Short       string
	Key         rune
	Description string
}

// NewItem builds an item with an explicit short form and mnemonic key.
func NewItem(label, short string, key rune) Item {
	return Item{Label: label, Short: short, Key: key}
}

// NewItemWithDescription is NewItem plus a description line.
func NewItemWithDescription(label, short string, key rune, description string) Item {
	return Item{Label: label, Short: short, Key: key, Description: description}
}

// ParseItem builds an item from the shorthand "Label(Short): Description".
// Both the "(Short)" suffix and the ": Description" tail are optional.
// The mnemonic key is the first rune of the short form (or of the label
// when no short form is given), folded to lower case. An uppercase key
// requires NewItem.
//
//	ParseItem("Example")                  // key 'e', short "e"
//	ParseItem("Test: just a test")        // key 't', description set
//	ParseItem("Label(S): with short")     // key 's', short "S"
//	ParseItem("Colon: one:two:three")     // description "one:two:three"
func ParseItem(s string) Item {
	head := s
	description := ""
	if i := strings.Index(s, ":"); i >= 0 {
		head = strings.TrimRight(s[:i], " \t")
		description = strings.TrimSpace(s[i+1:])
	}

	if strings.HasSuffix(head, ")") {
		if open := strings.LastIndex(head, "("); open >= 0 {
			label := strings.TrimRight(head[:open], " \t")
			short := strings.TrimSpace(head[open+1 : len(head)-1])
			return Item{
				Label:       label,
				Short:       short,
				Key:         firstRuneLower(short),
				Description: description,
			}
		}
	}

	key := firstRuneLower(head)
	short := ""
	if key != 0 {
		short = string(key)
	}
	return Item{Label: head, Short: short, Key: key, Description: description}
}

// KeyFor derives a mnemonic from s the way ParseItem does: the first
// rune folded to lower case, or zero for an empty string.
func KeyFor(s string) rune {
	return firstRuneLower(s)
}

func firstRuneLower(s string) rune {
	for _, r := range s {
		return unicode.ToLower(r)
	}
	return 0
}
