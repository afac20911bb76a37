package contextWaitGroup

import (
	"context"
	"os"
	"os/signal"
	"sync"
)

// CWG runs goroutines that share one cancellable context.
type CWG struct {
	sync.WaitGroup
	Ctx    context.Context
	Cancel context.CancelFunc
}

func New(parent context.Context) *CWG {
	ctx, cancel := context.WithCancel(parent)
	return &CWG{Ctx: ctx, Cancel: cancel}
}

func (c *CWG) WithSignal(signals ...os.Signal) (stop context.CancelFunc) {
	c.Ctx, stop = signal.NotifyContext(c.Ctx, signals...)
	return
}

func (c *CWG) Go(f func(context.Context)) {
	c.WaitGroup.Go(func() {
		f(c.Ctx)
	})
}

// GoCancel is Go, but cancels the whole group once f returns.
func (c *CWG) GoCancel(f func(context.Context)) {
	c.WaitGroup.Go(func() {
		defer c.Cancel()
		f(c.Ctx)
	})
}
