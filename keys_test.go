package pick

import (
	"testing"

	"github.com/moasq/pick/internal/terminal"
)

func TestTranslateArrows(t *testing.T) {
	opts := threeItems(t).withCurrent(1)
	tests := []struct {
		name string
		key  terminal.Key
		want int
	}{
		{"left", terminal.Key{Code: terminal.KeyLeft}, 0},
		{"up", terminal.Key{Code: terminal.KeyUp}, 0},
		{"right", terminal.Key{Code: terminal.KeyRight}, 2},
		{"down", terminal.Key{Code: terminal.KeyDown}, 2},
	}
	for _, tt := range tests {
		act := translate(tt.key, opts, false)
		if act.kind != actionMove || act.target != tt.want {
			t.Errorf("%s: got kind=%d target=%d, want move to %d", tt.name, act.kind, act.target, tt.want)
		}
	}
}

func TestTranslateConfirmAndCancel(t *testing.T) {
	opts := threeItems(t)
	if act := translate(terminal.Key{Code: terminal.KeyEnter}, opts, false); act.kind != actionConfirm {
		t.Fatalf("enter: kind = %d, want confirm", act.kind)
	}
	if act := translate(terminal.Key{Code: terminal.KeyEscape}, opts, false); act.kind != actionCancel {
		t.Fatalf("escape: kind = %d, want cancel", act.kind)
	}
}

func TestTranslateCtrlCBeatsMnemonic(t *testing.T) {
	// An item with mnemonic 'c' must not shadow Ctrl+C.
	opts := mustOptions(t, 0,
		NewItem("Alpha", "a", 'a'),
		NewItem("Charlie", "c", 'c'),
	)
	key := terminal.Key{Code: terminal.KeyRune, Rune: 'c', Ctrl: true}
	if act := translate(key, opts, false); act.kind != actionCancel {
		t.Fatalf("ctrl+c: kind = %d, want cancel", act.kind)
	}
	plain := terminal.Key{Code: terminal.KeyRune, Rune: 'c'}
	if act := translate(plain, opts, false); act.kind != actionMove || act.target != 1 {
		t.Fatalf("plain c: got kind=%d target=%d, want move to 1", act.kind, act.target)
	}
}

func TestTranslateMnemonicJump(t *testing.T) {
	opts := threeItems(t)
	key := terminal.Key{Code: terminal.KeyRune, Rune: 'g'}
	if act := translate(key, opts, false); act.kind != actionMove || act.target != 2 {
		t.Fatalf("got kind=%d target=%d, want move to 2", act.kind, act.target)
	}
}

func TestTranslateMnemonicIsCaseSensitive(t *testing.T) {
	opts := threeItems(t).withCurrent(1)
	key := terminal.Key{Code: terminal.KeyRune, Rune: 'G'}
	act := translate(key, opts, false)
	if act.kind != actionMove || act.target != 1 {
		t.Fatalf("uppercase G matched: got kind=%d target=%d, want no-op at 1", act.kind, act.target)
	}
}

func TestTranslateUnmatchedRuneIsNoOp(t *testing.T) {
	opts := threeItems(t).withCurrent(2)
	key := terminal.Key{Code: terminal.KeyRune, Rune: 'z'}
	act := translate(key, opts, false)
	if act.kind != actionMove || act.target != 2 {
		t.Fatalf("got kind=%d target=%d, want no-op at 2", act.kind, act.target)
	}
}

func TestTranslateUnknownKeyIsNoOp(t *testing.T) {
	opts := threeItems(t).withCurrent(1)
	act := translate(terminal.Key{Code: terminal.KeyUnknown}, opts, false)
	if act.kind != actionMove || act.target != 1 {
		t.Fatalf("got kind=%d target=%d, want no-op at 1", act.kind, act.target)
	}
}

func TestTranslateRespectsWrap(t *testing.T) {
	opts := threeItems(t).withCurrent(2)
	act := translate(terminal.Key{Code: terminal.KeyRight}, opts, true)
	if act.target != 0 {
		t.Fatalf("right with wrap from 2: target = %d, want 0", act.target)
	}
	act = translate(terminal.Key{Code: terminal.KeyRight}, opts, false)
	if act.target != 2 {
		t.Fatalf("right without wrap from 2: target = %d, want 2", act.target)
	}
}
