// Package scaffold writes a starter hello config file into a project
// directory.
package scaffold

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/unbound-force/hello/internal/config"
	"gopkg.in/yaml.v3"
)

// Options configures the scaffold operation.
type Options struct {
	// TargetDir is the directory to write into.
	// Defaults to the current working directory.
	TargetDir string

	// Force overwrites an existing config file when true.
	Force bool

	// Version is embedded in the header comment. Defaults to "dev".
	Version string

	// Stdout is the writer for summary output.
	// Defaults to os.Stdout.
	Stdout io.Writer
}

// Result reports what the scaffold operation did.
type Result struct {
	Path        string
	Created     bool
	Skipped     bool
	Overwritten bool
}

func versionMarker(version string) string {
	if version == "" {
		version = "dev"
	}
	return fmt.Sprintf("# scaffolded by hello %s\n", version)
}

// Run writes config.DefaultConfig as YAML to TargetDir/.hello.yaml.
// An existing file is left alone unless opts.Force is set.
func Run(opts Options) (*Result, error) {
	if opts.TargetDir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		opts.TargetDir = cwd
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}

	result := &Result{Path: config.DefaultPath}
	outPath := filepath.Join(opts.TargetDir, config.DefaultPath)

	_, statErr := os.Stat(outPath)
	exists := statErr == nil
	if exists && !opts.Force {
		result.Skipped = true
		printSummary(opts.Stdout, result)
		return result, nil
	}

	body, err := yaml.Marshal(config.DefaultConfig())
	if err != nil {
		return nil, fmt.Errorf("encoding default config: %w", err)
	}
	out := append([]byte(versionMarker(opts.Version)), body...)
	if err := os.WriteFile(outPath, out, 0o644); err != nil {
		return nil, fmt.Errorf("creating %s: %w", config.DefaultPath, err)
	}

	if exists {
		result.Overwritten = true
	} else {
		result.Created = true
	}
	printSummary(opts.Stdout, result)
	return result, nil
}

func printSummary(w io.Writer, r *Result) {
	switch {
	case r.Created:
		fmt.Fprintf(w, "created: %s\n", r.Path)
	case r.Overwritten:
		fmt.Fprintf(w, "overwritten: %s\n", r.Path)
	case r.Skipped:
		fmt.Fprintf(w, "skipped: %s (already exists, use --force to overwrite)\n", r.Path)
	}
}
