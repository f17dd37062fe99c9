package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/zephyrtronium/coco"
)

// notifyContext returns a context which is cancelled when the process
// receives one of faultSignals. The cause of the cancellation is the fault
// corresponding to the signal.
func notifyContext(parent context.Context) (context.Context, func()) {
	ctx, cancel := context.WithCancelCause(parent)
	ch := make(chan os.Signal, 1)
	sigs := make([]os.Signal, 0, len(faultSignals))
	for s := range faultSignals {
		sigs = append(sigs, s)
	}
	signal.Notify(ch, sigs...)
	done := make(chan struct{})
	go func() {
		select {
		case s := <-ch:
			name := signalName(s)
			log.Noticef("received %s", name)
			cancel(&coco.Fault{Kind: faultSignals[s], Cause: name})
		case <-done:
		}
	}()
	return ctx, func() {
		signal.Stop(ch)
		close(done)
		cancel(nil)
	}
}
