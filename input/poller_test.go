package input

import (
	"testing"

	"github.com/Miuzarte/ApmOverlay/apm"
)

func fakePressed(vks ...uint8) func(uint8) bool {
	down := make(map[uint8]bool, len(vks))
	for _, vk := range vks {
		down[vk] = true
	}
	return func(vk uint8) bool { return down[vk] }
}

func TestPollerSnapshot(t *testing.T) {
	p := newPoller(fakePressed(vkLButton, vkXButton2, 0xA2, vkControl, 'Q'))
	snap := p.Snapshot()

	wantButtons := apm.Buttons(apm.ButtonLeft).With(apm.ButtonX2)
	if snap.Buttons != wantButtons {
		t.Fatalf("expected buttons %s, got %s", wantButtons, snap.Buttons)
	}
	wantKeys := apm.NewKeySet(apm.KeyLControl, apm.KeyQ)
	if !snap.Keys.Equal(wantKeys) {
		t.Fatalf("expected keys %s, got %s", wantKeys, snap.Keys)
	}
	if !apm.QuitRequested(snap.Keys, apm.DefaultQuitChords...) {
		t.Fatalf("expected ctrl+q to request quit")
	}
}

func TestPollerIdle(t *testing.T) {
	snap := newPoller(fakePressed()).Snapshot()
	if snap.Buttons != 0 || len(snap.Keys) != 0 {
		t.Fatalf("expected empty snapshot, got %s %s", snap.Buttons, snap.Keys)
	}
}

func TestVkKey(t *testing.T) {
	cases := []struct {
		vk   uint8
		want apm.Key
		ok   bool
	}{
		{vkLButton, "", false},
		{vkXButton2, "", false},
		{vkShift, "", false},
		{vkControl, "", false},
		{vkMenu, "", false},
		{0xFF, "", false},
		{'A', "A", true},
		{'7', "7", true},
		{0x60, "Num0", true},
		{0x73, apm.KeyF4, true},
		{0x87, "F24", true},
		{0x1B, "Escape", true},
		{0xA4, apm.KeyLAlt, true},
		{0xA5, apm.KeyRAlt, true},
		{0xBA, "VK_BA", true},
	}
	for _, c := range cases {
		got, ok := vkKey(c.vk)
		if got != c.want || ok != c.ok {
			t.Errorf("vkKey(%#x) = %q, %v, want %q, %v", c.vk, got, ok, c.want, c.ok)
		}
	}
}
