// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/mathol/internal/sysfile"
)

var errNoFile = errors.New("--file is required")

// Execute builds the command tree and runs it with ctx.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}
	root := &cobra.Command{
		Use:           "mathol",
		Short:         "Determinants, inverses, ranks and linear systems from YAML documents",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			lvl, err := zerolog.ParseLevel(g.logLevel)
			if err != nil {
				return err
			}
			zerolog.SetGlobalLevel(lvl)
			return nil
		},
	}
	g.register(root.PersistentFlags())

	root.AddCommand(
		detCmd(g),
		traceCmd(g),
		rankCmd(g),
		inverseCmd(g),
		classifyCmd(g),
		solveCmd(g),
	)

	return root
}

// loadDocument reads the --file document and logs its shape.
func loadDocument(g *globalFlags) (*sysfile.Document, error) {
	if g.file == "" {
		return nil, errNoFile
	}
	doc, err := sysfile.Load(g.file)
	if err != nil {
		return nil, err
	}
	log.Debug().
		Str("file", g.file).
		Int("rows", doc.Rows).
		Int("columns", doc.Columns).
		Bool("constants", doc.HasConstants()).
		Msg("document loaded")

	return doc, nil
}
