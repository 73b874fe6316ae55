// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mathol/internal/sysfile"
	"github.com/katalvlaran/mathol/matrix"
)

func writeDoc(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "system.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())

	return out.String(), err
}

func TestCommands_Text(t *testing.T) {
	square := writeDoc(t, "rows: 2\ncolumns: 2\ndata: [4, 7, -3, 8]\n")
	unimodular := writeDoc(t, "rows: 3\ncolumns: 3\ndata: [1, 0, -1, -8, 4, 1, -2, 1, 0]\n")
	wide := writeDoc(t, "rows: 2\ncolumns: 3\ndata: [1, -2, 1, 1, 1, -4]\nconstants: [1, 8]\n")
	system := writeDoc(t, `
rows: 4
columns: 4
data: [2, 1, 4, 3, -1, 2, 1, -1, 3, 4, -1, -2, 4, 3, 2, 1]
constants: [0, 4, 0, 0]
`)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"det", []string{"det", "-f", square}, "53\n"},
		{"trace", []string{"trace", "--file", square}, "12\n"},
		{"rank", []string{"rank", "-f", wide}, "2\n"},
		{"inverse", []string{"inverse", "-f", unimodular}, "[1 1 -4]\n[2 2 -7]\n[0 1 -4]\n"},
		{"classify", []string{"classify", "-f", wide}, "InfiniteSolutions\n"},
		{"solve", []string{"solve", "-f", system}, "x1 = 2\nx2 = -4\nx3 = 6\nx4 = -8\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, err := run(t, tc.args...)
			require.NoError(t, err)
			require.Equal(t, tc.want, out)
		})
	}
}

func TestCommands_YAML(t *testing.T) {
	square := writeDoc(t, "rows: 2\ncolumns: 2\ndata: [4, 7, -3, 8]\nconstants: [1, 2]\n")

	out, err := run(t, "det", "-f", square, "--output", "yaml")
	require.NoError(t, err)
	require.Equal(t, "op: det\nvalue: 53\n", out)

	out, err = run(t, "classify", "-f", square, "--output", "YAML")
	require.NoError(t, err)
	require.Equal(t, "op: classify\nkind: OneSolution\n", out)
}

func TestCommands_Errors(t *testing.T) {
	rect := writeDoc(t, "rows: 2\ncolumns: 3\ndata: [1, 2, 3, 4, 5, 6]\n")
	singular := writeDoc(t, "rows: 2\ncolumns: 2\ndata: [1, 2, 2, 4]\nconstants: [1, 1]\n")

	_, err := run(t, "det")
	require.ErrorIs(t, err, errNoFile)

	_, err = run(t, "det", "-f", rect)
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = run(t, "solve", "-f", rect)
	require.ErrorIs(t, err, sysfile.ErrNoConstants)

	_, err = run(t, "inverse", "-f", singular)
	require.ErrorIs(t, err, matrix.ErrSingular)

	_, err = run(t, "solve", "-f", singular)
	require.ErrorIs(t, err, matrix.ErrUnsolvable)

	square := writeDoc(t, "rows: 2\ncolumns: 2\ndata: [4, 7, -3, 8]\nconstants: [1, 2]\n")
	for _, eps := range []string{"-1", "NaN", "+Inf"} {
		require.NotPanics(t, func() {
			_, err = run(t, "solve", "-f", square, "--pivot-eps", eps)
		})
		require.ErrorIs(t, err, errBadPivotEps, "pivot-eps=%s", eps)
	}
	_, err = run(t, "solve", "-f", square, "--pivot-eps", "1e-9")
	require.NoError(t, err)

	_, err = run(t, "det", "-f", rect, "--output", "json")
	require.Error(t, err)

	_, err = run(t, "det", "-f", rect, "--log-level", "loud")
	require.Error(t, err)
}
