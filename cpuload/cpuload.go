// Package cpuload samples the CPU usage of a process in the background.
package cpuload

import (
	"context"
	"math"
	"os"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"github.com/shirou/gopsutil/v4/process"
)

var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05.000"}).
	With().Timestamp().Str("module", "CpuLoad").Logger()

// Sampler blocks for interval and returns the CPU percent used during it.
// *process.Process satisfies it.
type Sampler interface {
	PercentWithContext(ctx context.Context, interval time.Duration) (float64, error)
}

type Monitor struct {
	sampler  Sampler
	interval time.Duration
	bits     atomic.Uint64
}

func New(sampler Sampler, interval time.Duration) *Monitor {
	return &Monitor{sampler: sampler, interval: max(interval, time.Millisecond)}
}

// Self monitors the current process.
func Self(interval time.Duration) (*Monitor, error) {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return nil, err
	}
	return New(p, interval), nil
}

// Run samples until ctx is done. Failed samples keep the previous value.
func (m *Monitor) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		percent, err := m.sampler.PercentWithContext(ctx, m.interval)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Warn().Err(err).Msg("failed to measure cpu")
			// keep a failing sampler from spinning
			select {
			case <-ctx.Done():
				return
			case <-time.After(m.interval):
			}
			continue
		}
		m.bits.Store(math.Float64bits(percent))
	}
}

func (m *Monitor) Percent() float64 {
	return math.Float64frombits(m.bits.Load())
}
