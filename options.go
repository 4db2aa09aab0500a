package pick

import "fmt"

// Options holds the ordered list of items offered in one session and the
// index of the highlighted item. The item list never changes after
// construction; navigation produces a copy with a new current index, so
// the zero-I/O transition logic stays testable on plain values.
type Options struct {
	items   []Item
	current int
}

// NewOptions validates the item list and returns the selection state for
// one session. current is the index highlighted first. The list must be
// non-empty, current must be in range, and no two items may share a
// mnemonic key.
func NewOptions(current int, items ...Item) (*Options, error) {
	if err := validateItems(items, current); err != nil {
		return nil, err
	}
	return &Options{items: items, current: current}, nil
}

// OptionsFromStrings builds options by running each element through
// ParseItem, starting at the first item.
func OptionsFromStrings(labels ...string) (*Options, error) {
	items := make([]Item, len(labels))
	for i, l := range labels {
		items[i] = ParseItem(l)
	}
	return NewOptions(0, items...)
}

func validateItems(items []Item, current int) error {
	if len(items) == 0 {
		return fmt.Errorf("options: no items")
	}
	if current < 0 || current >= len(items) {
		return fmt.Errorf("options: current index %d out of bounds (%d items)", current, len(items))
	}
	seen := make(map[rune]struct{}, len(items))
	for _, it := range items {
		if it.Key == 0 {
			// Keyless items are selectable with the arrows only.
			continue
		}
		if _, dup := seen[it.Key]; dup {
			return fmt.Errorf("options: duplicate mnemonic key %q", it.Key)
		}
		seen[it.Key] = struct{}{}
	}
	return nil
}

// Items returns the item list in display order.
func (o *Options) Items() []Item { return o.items }

// Current returns the index of the highlighted item.
func (o *Options) Current() int { return o.current }

// CurrentItem returns the highlighted item.
func (o *Options) CurrentItem() Item { return o.items[o.current] }

// CurrentLabel returns the highlighted item's label.
func (o *Options) CurrentLabel() string { return o.CurrentItem().Label }

// next computes the index after current. With wrap it cycles past the
// end; without, it clamps at the last item.
func (o *Options) next(wrap bool) int {
	n := o.current + 1
	if wrap {
		return n % len(o.items)
	}
	return min(n, len(o.items)-1)
}

// previous computes the index before current. With wrap it cycles to the
// last item from the first; without, it clamps at zero.
func (o *Options) previous(wrap bool) int {
	if o.current == 0 {
		if wrap {
			return len(o.items) - 1
		}
		return 0
	}
	return o.current - 1
}

// withCurrent returns a copy highlighting index i. Callers only pass
// indexes produced by next, previous, or a validated mnemonic match.
func (o *Options) withCurrent(i int) *Options {
	return &Options{items: o.items, current: i}
}
