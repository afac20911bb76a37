package input

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/Miuzarte/ApmOverlay/apm"
	hook "github.com/robotn/gohook"
)

var ErrHookRunning = errors.New("input hook already running")

var hookKeycodes = func() map[uint16]apm.Key {
	names := make([]string, 0, len(hook.Keycode))
	for name := range hook.Keycode {
		names = append(names, name)
	}
	// several names share a code, first one in order wins
	sort.Strings(names)

	m := make(map[uint16]apm.Key, len(names))
	for _, name := range names {
		code := hook.Keycode[name]
		if k, ok := hookNames[name]; ok {
			m[code] = k
			continue
		}
		if _, ok := m[code]; !ok {
			m[code] = apm.Key(strings.ToUpper(name))
		}
	}
	return m
}()

func hookKey(code uint16) apm.Key {
	if k, ok := hookKeycodes[code]; ok {
		return k
	}
	return apm.Key(fmt.Sprintf("VC_%04X", code))
}

// Hook mirrors the global input state from libuiohook events.
type Hook struct {
	running atomic.Bool

	mu      sync.Mutex
	buttons apm.Buttons
	keys    apm.KeySet
}

func NewHook() *Hook {
	return &Hook{keys: make(apm.KeySet)}
}

// Run registers the global hook and consumes its events until ctx is done.
func (h *Hook) Run(ctx context.Context) {
	if err := h.run(ctx); err != nil {
		log.Error().Err(err).Msg("hook stopped")
	}
}

func (h *Hook) run(ctx context.Context) error {
	if !h.running.CompareAndSwap(false, true) {
		return ErrHookRunning
	}
	defer h.running.Store(false)

	evChan := hook.Start()
	defer hook.End()
	log.Debug().Msg("hook started")

	for {
		select {
		case <-ctx.Done():
			log.Debug().Msg("hook stopped")
			return nil

		case e, ok := <-evChan:
			if !ok {
				return fmt.Errorf("hook event channel closed")
			}
			h.apply(e)
		}
	}
}

// gohook keeps libuiohook's numbering:
// KeyHold is a press, KeyDown a typed character,
// MouseHold a press, MouseDown a release.
func (h *Hook) apply(e hook.Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	switch e.Kind {
	case hook.KeyHold:
		h.keys[hookKey(e.Keycode)] = struct{}{}
	case hook.KeyUp:
		delete(h.keys, hookKey(e.Keycode))

	case hook.MouseHold:
		if b, ok := hookButton(e.Button); ok {
			h.buttons = h.buttons.With(b)
		}
	case hook.MouseDown:
		if b, ok := hookButton(e.Button); ok {
			h.buttons = h.buttons.Without(b)
		}

	case hook.HookDisabled:
		// releases are lost while disabled
		h.buttons = 0
		clear(h.keys)
	}
}

func hookButton(b uint16) (apm.Button, bool) {
	if int(b) >= len(hookButtons) || hookButtons[b] == 0 {
		return 0, false
	}
	return hookButtons[b], true
}

func (h *Hook) Snapshot() apm.Snapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return apm.Snapshot{Buttons: h.buttons, Keys: h.keys.Clone()}
}

func (h *Hook) Running() bool {
	return h.running.Load()
}
