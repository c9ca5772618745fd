//go:build !windows

package main

import (
	"os"
	"syscall"
)

// shutdownSignals cancel a running build or verify.
var shutdownSignals = []os.Signal{os.Interrupt, syscall.SIGTERM}
