package main

import (
	"context"
	"os"
	"syscall"
	"time"

	"gioui.org/app"

	"github.com/Miuzarte/ApmOverlay/apm"
	"github.com/Miuzarte/ApmOverlay/contextWaitGroup"
	"github.com/Miuzarte/ApmOverlay/cpuload"
	"github.com/Miuzarte/ApmOverlay/display"
	"github.com/Miuzarte/ApmOverlay/input"

	"github.com/rs/zerolog"
)

// DEBUG enables verbose logging and the FPS/CPU line.
const DEBUG = false

const DISPLAY_INDEX = 0

var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05.000"}).
	With().Timestamp().Str("module", "Overlay").Logger()

func logLevel() zerolog.Level {
	if DEBUG {
		return zerolog.DebugLevel
	}
	return zerolog.InfoLevel
}

var (
	source         apm.Source
	tracker        *apm.Tracker
	overlayDisplay *display.Display
	cpuMonitor     *cpuload.Monitor

	// set by the window loop before it returns
	windowErr error
)

func init() {
	var err error

	// shared by every package logger
	zerolog.SetGlobalLevel(logLevel())

	overlayDisplay, err = display.New(DISPLAY_INDEX)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to resolve display")
	}

	if DEBUG {
		cpuMonitor, err = cpuload.Self(time.Second)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to open own process")
		}
	}

	source = input.Default()
	tracker = apm.New(source)
	log.Debug().Msgf("input source: %T, window: %s", source, tracker.Window())
}

func main() {
	cwg := contextWaitGroup.New(context.Background())
	stop := cwg.WithSignal(syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cwg.GoCancel(windowLoop)
	cwg.Go(frameLoop)

	if runner, ok := source.(interface{ Run(context.Context) }); ok {
		cwg.Go(runner.Run)
	}
	if DEBUG {
		cwg.Go(cpuMonitor.Run)
	}

	go func() {
		cwg.Wait()
		if windowErr != nil {
			os.Exit(1)
		}
		os.Exit(0)
	}()

	app.Main()
}
