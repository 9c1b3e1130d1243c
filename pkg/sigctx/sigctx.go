// Package sigctx provides contexts that cancel on OS signals.
package sigctx

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"time"
)

type signalContext struct {
	context.Context

	cancel   context.CancelFunc
	ch       chan os.Signal
	stopOnce sync.Once
}

// stop cancels the context and releases the signal watcher. Safe to call
// more than once.
func (sc *signalContext) stop() {
	sc.stopOnce.Do(func() {
		signal.Stop(sc.ch)
		sc.cancel()
	})
}

func watch(parent context.Context, cancel context.CancelFunc, sigs []os.Signal) (context.Context, context.CancelFunc) {
	sc := &signalContext{
		Context: parent,
		cancel:  cancel,
		ch:      make(chan os.Signal, 1),
	}
	signal.Notify(sc.ch, sigs...)

	go func() {
		select {
		case <-sc.ch:
			cancel()
		case <-parent.Done():
		}
	}()

	return sc, sc.stop
}

// WithSignal returns a context that cancels when any of the given signals
// arrives. The cancel function must be called to release the watcher.
func WithSignal(parent context.Context, sigs ...os.Signal) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)
	return watch(ctx, cancel, sigs)
}

// WithSignalTimeout returns a context that cancels on signal or after the
// timeout, whichever comes first.
func WithSignalTimeout(parent context.Context, timeout time.Duration, sigs ...os.Signal) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(parent, timeout)
	return watch(ctx, cancel, sigs)
}
