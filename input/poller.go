package input

import (
	"github.com/Miuzarte/ApmOverlay/apm"
)

type vkEntry struct {
	vk  uint8
	key apm.Key
}

// Poller reads the global key state on every Snapshot call.
type Poller struct {
	pressed func(vk uint8) bool
	keys    []vkEntry
}

func newPoller(pressed func(vk uint8) bool) *Poller {
	p := &Poller{pressed: pressed}
	for vk := vkFirstKey; vk <= vkLastKey; vk++ {
		if k, ok := vkKey(uint8(vk)); ok {
			p.keys = append(p.keys, vkEntry{uint8(vk), k})
		}
	}
	return p
}

func (p *Poller) Snapshot() (snap apm.Snapshot) {
	for _, b := range vkButtons {
		if p.pressed(b.vk) {
			snap.Buttons = snap.Buttons.With(b.button)
		}
	}
	for _, e := range p.keys {
		if !p.pressed(e.vk) {
			continue
		}
		if snap.Keys == nil {
			snap.Keys = make(apm.KeySet, 4)
		}
		snap.Keys[e.key] = struct{}{}
	}
	return snap
}
