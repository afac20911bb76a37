package widgets

import (
	"fmt"

	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/layout"
	"gioui.org/op/clip"
)

type filter struct {
	Required key.Modifiers
	Optional key.Modifiers
	names    []key.Name
}

type Shortcut struct {
	Key filter
	F   func(key.Name, key.Modifiers)
}

// Shortcuts only sees key events delivered to the window,
// i.e. while it has keyboard focus.
type Shortcuts struct {
	receiver     any
	eventFilters []event.Filter
	shortcuts    map[key.Name]Shortcut
}

func NewShortcut(required, optional key.Modifiers, names ...key.Name) filter {
	return filter{
		Required: required,
		Optional: optional,
		names:    names,
	}
}

// NewShortcuts does not allow multiple identical non-modifying keys
// cause it uses map for matching internally.
func NewShortcuts(receiver any, shortcuts ...Shortcut) (ss Shortcuts) {
	if len(shortcuts) == 0 {
		panic("no shortcut provided")
	}

	ss.receiver = receiver
	ss.eventFilters = []event.Filter{}
	ss.shortcuts = make(map[key.Name]Shortcut, len(shortcuts))
	for _, s := range shortcuts {
		if s.F == nil {
			panic(fmt.Errorf("nil handler for keys: %v", s.Key.names))
		}
		for _, keyName := range s.Key.names {
			ss.eventFilters = append(ss.eventFilters,
				key.Filter{
					Required: s.Key.Required,
					Optional: s.Key.Optional,
					Name:     keyName,
				},
			)
			if _, ok := ss.shortcuts[keyName]; ok {
				panic(fmt.Errorf("repeated key: %s", keyName))
			}
			ss.shortcuts[keyName] = s
		}
	}

	return
}

// Handle runs the shortcut bound to a pressed key, if any.
func (ss *Shortcuts) Handle(e key.Event) bool {
	if e.State != key.Press {
		return false
	}
	shortcut, ok := ss.shortcuts[e.Name]
	if !ok || !e.Modifiers.Contain(shortcut.Key.Required) {
		return false
	}
	shortcut.F(e.Name, e.Modifiers)
	return true
}

func (ss *Shortcuts) Match(gtx layout.Context) error {
	area := clip.Rect{Max: gtx.Constraints.Max}.Push(gtx.Ops)
	defer area.Pop()
	event.Op(gtx.Ops, ss.receiver)

	for {
		ev, ok := gtx.Event(ss.eventFilters...)
		if !ok {
			break
		}
		switch e := ev.(type) {
		case key.Event:
			ss.Handle(e)

		default:
			return fmt.Errorf("unknown key event[%T]: %v", ev, ev)
		}
	}

	return nil
}
