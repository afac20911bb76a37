package main

import (
	"image"

	"gioui.org/app"
	"golang.org/x/sys/windows"
)

// the backdrop color is keyed out by the compositor
const transparentBackdrop = true

func handleViewEvent(e app.ViewEvent) {
	ve, ok := e.(app.Win32ViewEvent)
	if !ok || !ve.Valid() {
		return
	}

	err := applyOverlayStyle(windows.HWND(ve.HWND))
	if err != nil {
		log.Warn().Err(err).Msg("failed to apply overlay style")
	}
}

func applyOverlayStyle(hWnd windows.HWND) error {
	exStyle, err := GetWindowLongPtr(hWnd, GWL_EXSTYLE)
	if err != nil {
		return err
	}
	exStyle |= WS_EX_LAYERED | WS_EX_TOOLWINDOW | WS_EX_TOPMOST
	err = SetWindowLongPtr(hWnd, GWL_EXSTYLE, exStyle)
	if err != nil {
		return err
	}

	err = SetLayeredWindowAttributes(hWnd, colorref(colorBackdrop), 0, LWA_COLORKEY)
	if err != nil {
		return err
	}

	rect, err := GetWindowRect(hWnd)
	if err != nil {
		return err
	}
	size := image.Pt(int(rect.Right-rect.Left), int(rect.Bottom-rect.Top))
	pos := overlayDisplay.Anchor(size, windowMargin)
	log.Debug().Msgf("overlay %dx%d at %v", size.X, size.Y, pos)

	return SetWindowPos(hWnd, HWND_TOPMOST,
		int32(pos.X), int32(pos.Y), 0, 0,
		SWP_NOSIZE|SWP_NOACTIVATE|SWP_SHOWWINDOW,
	)
}

func colorref(c rgba) uint32 {
	return uint32(c.R) | uint32(c.G)<<8 | uint32(c.B)<<16
}
