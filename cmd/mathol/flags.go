// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// outputFormat selects how command results are printed.
type outputFormat string

const (
	outputText outputFormat = "text"
	outputYAML outputFormat = "yaml"
)

var _ pflag.Value = (*outputFormat)(nil)

func (f *outputFormat) String() string { return string(*f) }

func (f *outputFormat) Set(s string) error {
	switch v := outputFormat(strings.ToLower(s)); v {
	case outputText, outputYAML:
		*f = v
		return nil
	default:
		return fmt.Errorf("unsupported output %q (want text or yaml)", s)
	}
}

func (f *outputFormat) Type() string { return "format" }

// globalFlags are shared by every subcommand.
type globalFlags struct {
	logLevel  string
	output    outputFormat
	file      string
	precision int
}

func (g *globalFlags) register(fs *pflag.FlagSet) {
	g.output = outputText
	fs.StringVar(&g.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	fs.Var(&g.output, "output", "output format: text or yaml")
	fs.StringVarP(&g.file, "file", "f", "", "path to the YAML system document")
	fs.IntVar(&g.precision, "precision", 10, "decimal places kept in float results")
}
