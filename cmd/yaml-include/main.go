// Package main provides the CLI entrypoint for yaml-include.
//
// yaml-include resolves a YAML document annotated with directives:
//   - !include, !include_yaml, !include_text and !include_bin pull in other
//     files, or every file matching a glob pattern
//   - !env substitutes environment variables
//
// and prints the expanded document as YAML, JSON or CBOR.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"yaml-include/include"
	"yaml-include/internal/config"
	"yaml-include/internal/logging"
)

// ExitError carries the process exit code for an error.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

const (
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}

		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitFailure)
	}
}

// run holds the CLI logic so tests can drive it without a process.
func run(args []string, stdout, stderr io.Writer) error {
	fs := config.NewFlagSet("yaml-include")
	fs.SetOutput(stderr)
	fs.Usage = func() { printUsage(stderr, fs) }

	cfg, err := config.Parse(fs, args)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			printUsage(stdout, fs)

			return nil
		}

		return &ExitError{Code: exitUsage, Message: err.Error() + "\nRun 'yaml-include --help' for usage."}
	}

	logger := logging.New(cfg.LogLevel, cfg.LogFormat, stderr)
	logger.Debug("configuration loaded", "input", cfg.Input, "format", cfg.Format, "strict", cfg.ErrorOnCircular)

	res, err := include.NewResolver(include.Config{
		Strict: cfg.ErrorOnCircular,
		Logger: logger,
	}).Resolve(cfg.Input)
	if err != nil {
		return &ExitError{Code: exitFailure, Message: "error: " + err.Error()}
	}

	res.Diagnostics.Log(context.Background(), logger)

	out, err := render(cfg, res, logger)
	if err != nil {
		return &ExitError{Code: exitFailure, Message: "error: " + err.Error()}
	}

	if err := write(cfg, out, stdout); err != nil {
		return &ExitError{Code: exitFailure, Message: "error: " + err.Error()}
	}

	return nil
}

func printUsage(w io.Writer, fs *pflag.FlagSet) {
	fmt.Fprint(w, `yaml-include resolves !include and !env directives in a YAML document.

Usage:
  yaml-include [flags] FILE

Flags:
`)
	fmt.Fprint(w, fs.FlagUsages())
	fmt.Fprint(w, `
Every flag can be set through the environment as YAML_INCLUDE_<FLAG>,
e.g. YAML_INCLUDE_ERROR_ON_CIRCULAR=true.
`)
}
