package main

import (
	"io"
	"os"
	"time"

	"github.com/alnah/go-mddocs/internal/verify"
)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Now    func() time.Time
	Stdout io.Writer
	Stderr io.Writer

	// NewSidebarReader creates the browser used by verify --browser.
	NewSidebarReader func(timeout time.Duration) verify.SidebarReader
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Now:    time.Now,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		NewSidebarReader: func(timeout time.Duration) verify.SidebarReader {
			return verify.NewBrowserChecker(timeout)
		},
	}
}
