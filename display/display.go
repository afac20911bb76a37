package display

import (
	"errors"
	"fmt"
	"image"
	"os"

	"github.com/kbinani/screenshot"
	"github.com/rs/zerolog"
)

var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05.000"}).
	With().Timestamp().Str("module", "Display").Logger()

var (
	ErrNoDisplay       = errors.New("no active display")
	ErrIndexOutOfRange = errors.New("display index out of range")
)

type Display struct {
	bounds image.Rectangle
}

func New(displayIndex int) (*Display, error) {
	numDisplays := screenshot.NumActiveDisplays()
	if numDisplays <= 0 {
		return nil, ErrNoDisplay
	}
	log.Debug().Msgf("numDisplays: %d", numDisplays)
	if displayIndex < 0 || displayIndex >= numDisplays {
		return nil, fmt.Errorf("%w: [%d] of %d", ErrIndexOutOfRange, displayIndex, numDisplays)
	}

	d := FromBounds(screenshot.GetDisplayBounds(displayIndex))
	if d.bounds.Empty() {
		return nil, fmt.Errorf("display [%d] has empty bounds", displayIndex)
	}
	log.Info().Msgf("using display index: %d(%dx%d)", displayIndex, d.bounds.Dx(), d.bounds.Dy())
	return d, nil
}

func FromBounds(bounds image.Rectangle) *Display {
	return &Display{bounds: bounds.Canon()}
}

// Anchor returns the top-left position of a window of size
// pinned to the top-right corner, inset by margin.
// The window is kept inside the display where it fits.
func (d *Display) Anchor(size image.Point, margin int) image.Point {
	margin = max(margin, 0)
	pos := image.Pt(
		d.bounds.Max.X-margin-size.X,
		d.bounds.Min.Y+margin,
	)

	rect := image.Rectangle{Min: pos, Max: pos.Add(size)}
	boundaryCheck(d.bounds, &rect)
	return rect.Min
}

func boundaryCheckPos(constraints image.Rectangle, pos *image.Point) {
	pos.X = max(pos.X, constraints.Min.X)
	pos.Y = max(pos.Y, constraints.Min.Y)
	pos.X = min(pos.X, constraints.Max.X)
	pos.Y = min(pos.Y, constraints.Max.Y)
}

// boundaryCheck moves rect inside constraints keeping its size,
// a rect larger than constraints ends up aligned to constraints.Min.
func boundaryCheck(constraints image.Rectangle, rect *image.Rectangle) {
	size := rect.Size()
	boundaryCheckPos(constraints, &rect.Max)
	rect.Min = rect.Max.Sub(size)
	boundaryCheckPos(constraints, &rect.Min)
	rect.Max = rect.Min.Add(size)
}
