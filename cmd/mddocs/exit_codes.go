package main

import (
	"errors"
	"os"

	mddocs "github.com/alnah/go-mddocs"
	"github.com/alnah/go-mddocs/internal/config"
	"github.com/alnah/go-mddocs/internal/dateutil"
	"github.com/alnah/go-mddocs/internal/verify"
)

// Exit codes for the mddocs CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful build or verify
	ExitGeneral = 1 // General/unexpected error, failed pages
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
	ExitBrowser = 4 // Browser/Chrome errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if isBrowserError(err) {
		return ExitBrowser
	}

	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadMarkdown) ||
		errors.Is(err, ErrWriteHTML) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrNoMarkdown) ||
		errors.Is(err, ErrNoPages) ||
		errors.Is(err, verify.ErrRead) ||
		errors.Is(err, mddocs.ErrStyleRead) {
		return ExitIO
	}

	if errors.Is(err, ErrUsage) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, dateutil.ErrInvalidDateFormat) ||
		errors.Is(err, mddocs.ErrUnknownEngine) ||
		errors.Is(err, mddocs.ErrUnknownHighlightStyle) ||
		errors.Is(err, mddocs.ErrStyleNotFound) ||
		errors.Is(err, mddocs.ErrTemplateNotFound) ||
		errors.Is(err, mddocs.ErrInvalidStyle) ||
		errors.Is(err, mddocs.ErrInvalidTemplate) ||
		errors.Is(err, mddocs.ErrInvalidAssetPath) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrInvalidTarget) ||
		errors.Is(err, ErrInvalidTimeout) ||
		errors.Is(err, ErrUnsupportedShell) {
		return ExitUsage
	}

	return ExitGeneral
}
