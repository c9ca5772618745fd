package main

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alnah/go-mddocs/internal/config"
)

func TestRunConfig(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()

		env, stdout, _ := testEnv()
		if err := runConfig(nil, env); err != nil {
			t.Fatalf("runConfig() error = %v", err)
		}
		if !strings.Contains(stdout.String(), "defaultDir: "+config.DefaultOutputDir) {
			t.Errorf("stdout = %q, want default output dir", stdout)
		}
	})

	t.Run("from file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "site.yaml")
		writeFile(t, path, "site:\n  titlePrefix: ChainGraph\n")

		env, stdout, _ := testEnv()
		if err := runConfig([]string{"-c", path}, env); err != nil {
			t.Fatalf("runConfig() error = %v", err)
		}
		if !strings.Contains(stdout.String(), "titlePrefix: ChainGraph") {
			t.Errorf("stdout = %q, want titlePrefix", stdout)
		}
	})

	t.Run("paths", func(t *testing.T) {
		t.Parallel()

		env, stdout, _ := testEnv()
		if err := runConfig([]string{"--paths", "-c", "site"}, env); err != nil {
			t.Fatalf("runConfig() error = %v", err)
		}
		if !strings.HasPrefix(stdout.String(), "site.yaml\nsite.yml\n") {
			t.Errorf("stdout = %q, want working directory entries first", stdout)
		}
	})

	t.Run("paths without name", func(t *testing.T) {
		t.Parallel()

		env, _, _ := testEnv()
		if err := runConfig([]string{"--paths"}, env); !errors.Is(err, ErrUsage) {
			t.Errorf("runConfig() error = %v, want ErrUsage", err)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		env, _, _ := testEnv()
		err := runConfig([]string{"-c", filepath.Join(t.TempDir(), "none.yaml")}, env)
		if !errors.Is(err, config.ErrConfigNotFound) {
			t.Errorf("runConfig() error = %v, want ErrConfigNotFound", err)
		}
	})
}
