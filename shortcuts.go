package main

import (
	"gioui.org/io/key"
)

// shortcutQuit handles ctrl+q and alt+f4 while the overlay has focus,
// the tracker sees the same chords globally.
func shortcutQuit(name key.Name, mod key.Modifiers) {
	log.Debug().Msgf("shortcut %s+%s", mod, name)
	requestClose("window shortcut")
}
