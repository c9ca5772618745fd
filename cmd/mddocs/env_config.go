package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/alnah/go-mddocs/internal/config"
)

// envPrefix marks the environment variables read by mddocs.
const envPrefix = "MDDOCS_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath  string        // MDDOCS_CONFIG: config file name or path
	InputDir    string        // MDDOCS_INPUT_DIR: default input file or directory
	OutputDir   string        // MDDOCS_OUTPUT_DIR: output root
	Style       string        // MDDOCS_STYLE: style name, path or CSS
	Engine      string        // MDDOCS_ENGINE: builtin or goldmark
	Highlight   string        // MDDOCS_HIGHLIGHT: chroma style
	TitlePrefix string        // MDDOCS_TITLE_PREFIX: page title prefix
	Lang        string        // MDDOCS_LANG: html lang attribute
	Workers     int           // MDDOCS_WORKERS: parallel workers
	Timeout     time.Duration // MDDOCS_TIMEOUT: verify --browser page timeout
}

// knownEnvVars lists valid MDDOCS_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"MDDOCS_CONFIG":       true,
	"MDDOCS_INPUT_DIR":    true,
	"MDDOCS_OUTPUT_DIR":   true,
	"MDDOCS_STYLE":        true,
	"MDDOCS_ENGINE":       true,
	"MDDOCS_HIGHLIGHT":    true,
	"MDDOCS_TITLE_PREFIX": true,
	"MDDOCS_LANG":         true,
	"MDDOCS_WORKERS":      true,
	"MDDOCS_TIMEOUT":      true,
	"MDDOCS_CONTAINER":    true, // read by doctor
}

// loadEnvConfig reads configuration from environment variables.
// Malformed numbers and durations are ignored.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath:  os.Getenv("MDDOCS_CONFIG"),
		InputDir:    os.Getenv("MDDOCS_INPUT_DIR"),
		OutputDir:   os.Getenv("MDDOCS_OUTPUT_DIR"),
		Style:       os.Getenv("MDDOCS_STYLE"),
		Engine:      os.Getenv("MDDOCS_ENGINE"),
		Highlight:   os.Getenv("MDDOCS_HIGHLIGHT"),
		TitlePrefix: os.Getenv("MDDOCS_TITLE_PREFIX"),
		Lang:        os.Getenv("MDDOCS_LANG"),
	}

	if workers := os.Getenv("MDDOCS_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}
	if timeout := os.Getenv("MDDOCS_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized MDDOCS_* variables.
// Helps catch typos like MDDOCS_OUTPUT instead of MDDOCS_OUTPUT_DIR.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		name, _, _ := strings.Cut(env, "=")
		if strings.HasPrefix(name, envPrefix) && !knownEnvVars[name] {
			fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
		}
	}
}

// applyEnvConfig fills config values left empty by the file.
// Precedence: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFlags).
// The output directory counts as empty while it holds the default.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.InputDir != "" && cfg.Input.DefaultDir == "" {
		cfg.Input.DefaultDir = env.InputDir
	}
	if env.OutputDir != "" && (cfg.Output.DefaultDir == "" || cfg.Output.DefaultDir == config.DefaultOutputDir) {
		cfg.Output.DefaultDir = env.OutputDir
	}
	if env.Style != "" && cfg.CSS.Style == "" {
		cfg.CSS.Style = env.Style
	}
	if env.Engine != "" && cfg.Markdown.Engine == "" {
		cfg.Markdown.Engine = env.Engine
	}
	if env.Highlight != "" && cfg.Markdown.Highlight == "" {
		cfg.Markdown.Highlight = env.Highlight
	}
	if env.TitlePrefix != "" && cfg.Site.TitlePrefix == "" {
		cfg.Site.TitlePrefix = env.TitlePrefix
	}
	if env.Lang != "" && cfg.Site.Lang == "" {
		cfg.Site.Lang = env.Lang
	}
}
