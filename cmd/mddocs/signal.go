package main

import (
	"context"
	"os/signal"
)

// notifyContext returns a context canceled when a shutdown signal arrives.
// In-flight pages finish; queued ones are reported as canceled.
func notifyContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, shutdownSignals...)
}
