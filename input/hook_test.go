package input

import (
	"context"
	"errors"
	"testing"

	"github.com/Miuzarte/ApmOverlay/apm"
	hook "github.com/robotn/gohook"
)

func TestHookKeycodeNames(t *testing.T) {
	cases := map[string]apm.Key{
		"q":    apm.KeyQ,
		"f4":   apm.KeyF4,
		"ctrl": apm.KeyLControl,
		"alt":  apm.KeyLAlt,
	}
	for name, want := range cases {
		code, ok := hook.Keycode[name]
		if !ok {
			t.Fatalf("gohook has no keycode %q", name)
		}
		if got := hookKey(code); got != want {
			t.Errorf("hookKey(%q) = %q, want %q", name, got, want)
		}
	}

	if got := hookKey(0xFFF0); got != "VC_FFF0" {
		t.Errorf("unexpected name for unknown code: %q", got)
	}
}

func TestHookApply(t *testing.T) {
	h := NewHook()

	events := []hook.Event{
		{Kind: hook.KeyHold, Keycode: hook.Keycode["ctrl"]},
		{Kind: hook.KeyHold, Keycode: hook.Keycode["q"]},
		{Kind: hook.KeyDown, Keycode: hook.Keycode["a"]}, // typed, ignored
		{Kind: hook.MouseHold, Button: 1},
		{Kind: hook.MouseHold, Button: 3},
		{Kind: hook.MouseMove, Button: 2},
		{Kind: hook.MouseHold, Button: 9}, // unknown button
	}
	for _, e := range events {
		h.apply(e)
	}

	snap := h.Snapshot()
	wantButtons := apm.Buttons(apm.ButtonLeft).With(apm.ButtonMiddle)
	if snap.Buttons != wantButtons {
		t.Fatalf("expected buttons %s, got %s", wantButtons, snap.Buttons)
	}
	wantKeys := apm.NewKeySet(apm.KeyLControl, apm.KeyQ)
	if !snap.Keys.Equal(wantKeys) {
		t.Fatalf("expected keys %s, got %s", wantKeys, snap.Keys)
	}

	h.apply(hook.Event{Kind: hook.KeyUp, Keycode: hook.Keycode["q"]})
	h.apply(hook.Event{Kind: hook.MouseDown, Button: 1})

	if !snap.Keys.Contains(apm.KeyQ) {
		t.Fatalf("snapshot must not share state with the hook")
	}

	snap = h.Snapshot()
	if snap.Buttons != apm.Buttons(apm.ButtonMiddle) {
		t.Fatalf("expected middle button only, got %s", snap.Buttons)
	}
	if !snap.Keys.Equal(apm.NewKeySet(apm.KeyLControl)) {
		t.Fatalf("expected ctrl only, got %s", snap.Keys)
	}

	h.apply(hook.Event{Kind: hook.HookDisabled})
	snap = h.Snapshot()
	if snap.Buttons != 0 || len(snap.Keys) != 0 {
		t.Fatalf("expected state cleared after hook disabled, got %s %s", snap.Buttons, snap.Keys)
	}
}

func TestHookRejectsSecondRun(t *testing.T) {
	h := NewHook()
	h.running.Store(true)

	err := h.run(context.Background())
	if !errors.Is(err, ErrHookRunning) {
		t.Fatalf("expected ErrHookRunning, got %v", err)
	}
	if !h.Running() {
		t.Fatalf("a rejected run must not clear the running flag")
	}
}
