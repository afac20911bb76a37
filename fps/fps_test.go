package fps

import (
	"math"
	"testing"
	"time"
)

func TestCounter(t *testing.T) {
	now := time.Date(2024, 3, 14, 9, 26, 0, 0, time.UTC)
	c := newCounter(time.Second/2, func() time.Time { return now })

	// 20ms frames, the first measurement lands after 500ms
	const frame = 20 * time.Millisecond
	var fps float64
	var frametime time.Duration
	for i := range 24 {
		now = now.Add(frame)
		fps, frametime = c.Count()
		if fps != 0 {
			t.Fatalf("frame %d: expected no measurement before the interval, got %.2f", i, fps)
		}
	}
	if frametime != frame {
		t.Fatalf("expected frametime %s, got %s", frame, frametime)
	}

	now = now.Add(frame)
	fps, _ = c.Count()
	if math.Abs(fps-50) > 1e-9 {
		t.Fatalf("expected 50 fps, got %.2f", fps)
	}
	if c.FPS() != fps {
		t.Fatalf("FPS() disagrees with Count(): %.2f != %.2f", c.FPS(), fps)
	}
}

func TestCounterCopiesShareState(t *testing.T) {
	now := time.Date(2024, 3, 14, 9, 26, 0, 0, time.UTC)
	c := newCounter(0, func() time.Time { return now })
	cp := c

	now = now.Add(100 * time.Millisecond)
	cp.Tick()
	if c.Frametime() != 100*time.Millisecond {
		t.Fatalf("expected shared frametime, got %s", c.Frametime())
	}
	if math.Abs(c.FPS()-10) > 1e-9 {
		t.Fatalf("expected 10 fps, got %.2f", c.FPS())
	}
}
