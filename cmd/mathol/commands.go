// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mathol/matrix"
)

var errBadPivotEps = errors.New("--pivot-eps must be finite and non-negative")

// result is the YAML shape of every command's output.
type result struct {
	Op       string              `yaml:"op"`
	Value    *float64            `yaml:"value,omitempty"`
	Rank     *int                `yaml:"rank,omitempty"`
	Kind     *matrix.Solvability `yaml:"kind,omitempty"`
	Solution []float64           `yaml:"solution,omitempty"`
	Matrix   [][]float64         `yaml:"matrix,omitempty"`
}

func detCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "det",
		Short: "Determinant of a square matrix",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := loadMatrix(g)
			if err != nil {
				return err
			}
			det, err := m.Det()
			if err != nil {
				return err
			}
			res, err := scalarResult("det", det, g.precision)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), g, res)
		},
	}
}

func traceCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "trace",
		Short: "Sum of the main diagonal of a square matrix",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := loadMatrix(g)
			if err != nil {
				return err
			}
			tr, err := m.Trace()
			if err != nil {
				return err
			}
			res, err := scalarResult("trace", tr, g.precision)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), g, res)
		},
	}
}

func rankCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "rank",
		Short: "Rank by contiguous minor search",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := loadMatrix(g)
			if err != nil {
				return err
			}
			r, err := m.Rank()
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), g, result{Op: "rank", Rank: &r})
		},
	}
}

func inverseCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "inverse",
		Short: "Inverse of a square matrix via the adjugate",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := loadMatrix(g)
			if err != nil {
				return err
			}
			inv, err := m.Inverse()
			if err != nil {
				return err
			}
			rows, err := roundedRows(inv, g.precision)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), g, result{Op: "inverse", Matrix: rows})
		},
	}
}

func classifyCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "classify",
		Short: "Classify A·x = c as OneSolution, InfiniteSolutions or NoSolution",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadDocument(g)
			if err != nil {
				return err
			}
			a, c, err := doc.System()
			if err != nil {
				return err
			}
			kind, err := matrix.IsSolvable(a, c)
			if err != nil {
				return err
			}
			log.Info().Stringer("kind", kind).Msg("system classified")
			return render(cmd.OutOrStdout(), g, result{Op: "classify", Kind: &kind})
		},
	}
}

func solveCmd(g *globalFlags) *cobra.Command {
	var pivotEps float64
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve A·x = c by Gaussian elimination",
		RunE: func(cmd *cobra.Command, args []string) error {
			if math.IsNaN(pivotEps) || math.IsInf(pivotEps, 0) || pivotEps < 0 {
				return fmt.Errorf("%w: %v", errBadPivotEps, pivotEps)
			}
			doc, err := loadDocument(g)
			if err != nil {
				return err
			}
			a, c, err := doc.System()
			if err != nil {
				return err
			}
			_, x, err := matrix.Solve(a, c, matrix.WithPivotEpsilon(pivotEps))
			if err != nil {
				return err
			}
			if x, err = roundAll(x, g.precision); err != nil {
				return err
			}
			log.Info().Int("unknowns", len(x)).Msg("system solved")
			return render(cmd.OutOrStdout(), g, result{Op: "solve", Solution: x})
		},
	}
	cmd.Flags().Float64Var(&pivotEps, "pivot-eps", matrix.DefaultPivotEpsilon, "pivots with |p| <= pivot-eps count as zero")

	return cmd
}

func loadMatrix(g *globalFlags) (*matrix.Dense[float64], error) {
	doc, err := loadDocument(g)
	if err != nil {
		return nil, err
	}

	return doc.Matrix()
}

func roundedRows(m *matrix.Dense[float64], places int) ([][]float64, error) {
	r, err := matrix.Round(m, places)
	if err != nil {
		return nil, err
	}

	return matrix.ToRows(r)
}

// roundAll rounds every value to the given decimal places, dropping float noise.
func roundAll(vs []float64, places int) ([]float64, error) {
	m, err := matrix.NewDenseFrom(1, len(vs), vs)
	if err != nil {
		return nil, err
	}
	r, err := matrix.Round(m, places)
	if err != nil {
		return nil, err
	}

	return r.Data(), nil
}

func scalarResult(op string, v float64, places int) (result, error) {
	r, err := roundAll([]float64{v}, places)
	if err != nil {
		return result{}, err
	}

	return result{Op: op, Value: &r[0]}, nil
}

// render prints res in the selected format.
func render(w io.Writer, g *globalFlags, res result) error {
	if g.output == outputYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(res); err != nil {
			return err
		}
		return enc.Close()
	}

	var err error
	switch {
	case res.Value != nil:
		_, err = fmt.Fprintln(w, formatFloat(*res.Value))
	case res.Rank != nil:
		_, err = fmt.Fprintln(w, *res.Rank)
	case res.Kind != nil:
		_, err = fmt.Fprintln(w, res.Kind.String())
	case res.Solution != nil:
		for i, v := range res.Solution {
			if _, err = fmt.Fprintf(w, "x%d = %s\n", i+1, formatFloat(v)); err != nil {
				return err
			}
		}
	case res.Matrix != nil:
		for _, row := range res.Matrix {
			cells := make([]string, len(row))
			for j, v := range row {
				cells[j] = formatFloat(v)
			}
			if _, err = fmt.Fprintln(w, cells); err != nil {
				return err
			}
		}
	}

	return err
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
