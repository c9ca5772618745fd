package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/alnah/go-mddocs/internal/fileutil"
	"github.com/alnah/go-mddocs/internal/links"
)

// Sentinel errors for file discovery.
var (
	ErrInvalidExtension   = errors.New("file must have .md or .markdown extension")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
)

// MaxWorkers bounds --workers.
const MaxWorkers = 32

// FileToConvert represents a single file to process.
type FileToConvert struct {
	InputPath  string
	OutputPath string
	RelPath    string // slash path relative to the input root, for config lookups
}

// discoverFiles finds the Markdown files to build. A directory is walked
// and mirrored under outputDir; hidden directories and outputDir itself
// are skipped.
func discoverFiles(inputPath, outputDir string) ([]FileToConvert, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		if !fileutil.IsMarkdown(inputPath) {
			return nil, fmt.Errorf("%w: got %q", ErrInvalidExtension, filepath.Ext(inputPath))
		}
		return []FileToConvert{{
			InputPath:  inputPath,
			OutputPath: singleOutputPath(inputPath, outputDir),
			RelPath:    filepath.Base(inputPath),
		}}, nil
	}

	absOutput, _ := filepath.Abs(outputDir)

	var files []FileToConvert
	err = filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() {
			if path != inputPath && skipDir(path, d.Name(), absOutput) {
				return filepath.SkipDir
			}
			return nil
		}
		if !fileutil.IsMarkdown(path) {
			return nil
		}

		outPath, err := fileutil.MirrorPath(inputPath, path, outputDir, links.PageExt)
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(inputPath, path)
		if err != nil {
			return err
		}
		files = append(files, FileToConvert{
			InputPath:  path,
			OutputPath: outPath,
			RelPath:    filepath.ToSlash(rel),
		})
		return nil
	})

	return files, err
}

// skipDir reports whether a directory met during the walk is left out.
func skipDir(path, name, absOutput string) bool {
	if strings.HasPrefix(name, ".") {
		return true
	}
	abs, err := filepath.Abs(path)
	return err == nil && abs == absOutput
}

// singleOutputPath determines the page path for a single input file.
// An output ending in .html is used as is.
func singleOutputPath(inputPath, outputDir string) string {
	if strings.EqualFold(filepath.Ext(outputDir), links.PageExt) {
		return outputDir
	}
	name := fileutil.ReplaceExt(filepath.Base(inputPath), links.PageExt)
	if outputDir == "" {
		return filepath.Join(filepath.Dir(inputPath), name)
	}
	return filepath.Join(outputDir, name)
}

// isDir reports whether path is an existing directory.
func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > MaxWorkers {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, MaxWorkers)
	}
	return nil
}

// resolveWorkers picks the page worker count: an explicit value, else
// GOMAXPROCS (adjusted by automaxprocs for containers), capped at MaxWorkers.
func resolveWorkers(n int) int {
	if n > 0 {
		return n
	}
	return clamp(runtime.GOMAXPROCS(0), 1, MaxWorkers)
}

// resolveBrowserWorkers picks how many browsers verify runs. Each one is a
// Chrome process, so the automatic value is half of GOMAXPROCS, at most 4.
func resolveBrowserWorkers(n int) int {
	if n > 0 {
		return n
	}
	return clamp(runtime.GOMAXPROCS(0)/2, 1, 4)
}

func clamp(n, lo, hi int) int {
	return min(max(n, lo), hi)
}
