package main

import (
	"errors"
	"fmt"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-mddocs/internal/config"
)

// runConfig prints the effective configuration as YAML, after environment
// overrides, or with --paths the locations searched for a config name.
func runConfig(args []string, env *Environment) error {
	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(env.Stderr)
	fs.Usage = func() { printConfigUsage(env.Stderr) }

	var name string
	var paths bool
	fs.StringVarP(&name, "config", "c", "", "config file name or path")
	fs.BoolVar(&paths, "paths", false, "list the files searched for --config NAME")

	if err := parse(fs, args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	envCfg := loadEnvConfig()
	if paths {
		if name == "" {
			name = envCfg.ConfigPath
		}
		if name == "" {
			return fmt.Errorf("%w: --paths needs --config NAME", ErrUsage)
		}
		for _, p := range config.SearchPaths(name) {
			fmt.Fprintln(env.Stdout, p)
		}
		return nil
	}

	cfg, err := loadConfig(name, envCfg)
	if err != nil {
		return err
	}
	applyEnvConfig(envCfg, cfg)

	data, err := config.Dump(cfg)
	if err != nil {
		return fmt.Errorf("rendering config: %w", err)
	}
	_, err = env.Stdout.Write(data)
	return err
}
