package pick

import "testing"

func TestParseItem(t *testing.T) {
	tests := []struct {
		in   string
		want Item
	}{
		{"Example", Item{Label: "Example", Short: "e", Key: 'e'}},
		{"Test: just a test", Item{Label: "Test", Short: "t", Key: 't', Description: "just a test"}},
		{"Label(S): with short", Item{Label: "Label", Short: "S", Key: 's', Description: "with short"}},
		{"Maybe(m)", Item{Label: "Maybe", Short: "m", Key: 'm'}},
		{"Colon: one:two:three", Item{Label: "Colon", Short: "c", Key: 'c', Description: "one:two:three"}},
		{"", Item{}},
	}
	for _, tt := range tests {
		if got := ParseItem(tt.in); got != tt.want {
			t.Errorf("ParseItem(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestParseItemFoldsKeyToLowerCase(t *testing.T) {
	it := ParseItem("Quit")
	if it.Key != 'q' {
		t.Fatalf("Key = %q, want 'q'", it.Key)
	}
}

func TestKeyFor(t *testing.T) {
	tests := []struct {
		in   string
		want rune
	}{
		{"short", 's'},
		{"Quit", 'q'},
		{"É", 'é'},
		{"", 0},
	}
	for _, tt := range tests {
		if got := KeyFor(tt.in); got != tt.want {
			t.Errorf("KeyFor(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNewItemKeepsUpperCaseKey(t *testing.T) {
	// Explicit construction is the only way to get an uppercase mnemonic.
	it := NewItem("Quit", "Q", 'Q')
	if it.Key != 'Q' {
		t.Fatalf("Key = %q, want 'Q'", it.Key)
	}
}
