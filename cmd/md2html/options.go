package main

import (
	"fmt"

	"github.com/alnah/go-md2html/internal/yamlutil"
)

// runOptions prints the effective conversion options as YAML, after config,
// environment and flags are applied. It accepts the convert flags.
func runOptions(args []string, deps *Dependencies) error {
	flags, _, err := parseConvertFlags(args)
	if err != nil {
		return err
	}
	deps.Logger = newLogger(deps, flags.common)

	cfg, err := resolveConfig(flags, deps)
	if err != nil {
		return err
	}

	out, err := yamlutil.Marshal(cfg.Options)
	if err != nil {
		return fmt.Errorf("encoding options: %w", err)
	}
	_, err = deps.Stdout.Write(out)
	return err
}
