//go:build !windows

package main

import (
	"sync"

	"gioui.org/app"
)

const transparentBackdrop = false

var onceWarnOverlay sync.Once

// Gio exposes no always-on-top or transparency option outside Windows.
func handleViewEvent(app.ViewEvent) {
	onceWarnOverlay.Do(func() {
		log.Warn().Msg("always-on-top and transparency are not supported on this platform")
	})
}
