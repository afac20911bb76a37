package main

import (
	"context"
	"fmt"
	"image/color"
	"time"

	"gioui.org/app"
	"gioui.org/font"
	"gioui.org/io/key"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/paint"
	"gioui.org/unit"

	"github.com/Miuzarte/ApmOverlay/fps"
	"github.com/Miuzarte/ApmOverlay/widgets"
)

const (
	windowTitle  = "APM Tracker"
	windowMargin = 10 // px from the display corner

	fontSize      = 24
	debugFontSize = 11

	frameInterval = time.Second / 60
)

type rgba struct {
	R, G, B, A uint8
}

var (
	colorWhite = rgba{0xFF, 0xFF, 0xFF, 0xFF}
	colorBlack = rgba{0x20, 0x20, 0x20, 0xFF}
	colorCoral = rgba{0xA6, 0x62, 0x61, 0xFF}

	// keyed out on Windows, never appears in text
	colorPurple = rgba{0xFF, 0x00, 0xFF, 0xFF}
)

var colorBackdrop = func() rgba {
	if transparentBackdrop {
		return colorPurple
	}
	return colorBlack
}()

var window app.Window

func windowSize() (w, h unit.Dp) {
	if DEBUG {
		return 220, 80
	}
	return 100, 50
}

var (
	mTheme = widgets.Theme

	apmCounter = widgets.Counter("APM: ", fontSize, layout.NE, 2)

	shortcuts = widgets.NewShortcuts(&window,
		widgets.Shortcut{
			Key: widgets.NewShortcut(key.ModCtrl, 0, "Q"),
			F:   shortcutQuit,
		},
		widgets.Shortcut{
			Key: widgets.NewShortcut(key.ModAlt, 0, key.NameF4),
			F:   shortcutQuit,
		},
	)
)

func init() {
	mTheme.Fg = color.NRGBA(colorCoral)
	mTheme.Bg = color.NRGBA(colorWhite)
	mTheme.ContrastFg = color.NRGBA(colorWhite)
	mTheme.ContrastBg = color.NRGBA(colorCoral)

	apmCounter.LabelStyle = apmCounter.Color(color.NRGBA(colorCoral)).Weight(font.Bold)

	w, h := windowSize()
	window.Option(
		app.Title(windowTitle),
		app.Size(w, h),
		app.MinSize(w, h),
		app.MaxSize(w, h),
		app.Decorated(false),
	)
}

// requestClose asks the window to close, the loop exits on the DestroyEvent.
func requestClose(reason string) {
	if closeRequested {
		return
	}
	closeRequested = true
	log.Info().Msgf("closing: %s", reason)
	window.Perform(system.ActionClose)
}

var closeRequested bool

func windowLoop(ctx context.Context) {
	var ops op.Ops
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		switch e := window.Event().(type) {
		case app.DestroyEvent:
			if e.Err != nil {
				log.Error().Err(e.Err).Msg("window error")
				windowErr = e.Err
			} else {
				log.Debug().Msg("window closed normally")
			}
			return

		case app.ViewEvent:
			handleViewEvent(e)

		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)

			rate, quit := tracker.Update()
			if quit {
				requestClose("global quit shortcut")
			}

			err := shortcuts.Match(gtx)
			if err != nil {
				log.Warn().Err(err).Msg("shortcuts match error")
			}

			layoutOverlay(gtx, rate)

			e.Frame(gtx.Ops)

		case app.ConfigEvent:
		default:
			log.Trace().Msgf("event[%T]: %v", e, e)
		}
	}
}

// frameLoop keeps frames coming while the window is idle,
// input is polled once per frame.
func frameLoop(ctx context.Context) {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			// telling the window on background to response
			window.Invalidate()
			return

		case <-ticker.C:
			window.Invalidate()
		}
	}
}

func layoutOverlay(gtx layout.Context, rate int) {
	paint.Fill(gtx.Ops, color.NRGBA(colorBackdrop))

	apmCounter.Value = rate
	apmCounter.Layout(gtx)

	if DEBUG {
		layoutDebugInfo(gtx)
	}
}

var renderFps = fps.NewCounter(time.Second / 2)

func layoutDebugInfo(gtx layout.Context) layout.Dimensions {
	const ms = float64(time.Millisecond)
	frameRate, frametime := renderFps.Count()
	status := fmt.Sprintf(
		"FPS: %.1f | %.1fms\nCPU: %.1f%% | log: %d",
		frameRate, float64(frametime)/ms,
		cpuMonitor.Percent(), tracker.Len(),
	)

	return layout.SW.Layout(gtx, widgets.Label(debugFontSize, status).Layout)
}
