package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/vecsim"
	"github.com/hupe1980/vecsim/internal/vecfile"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeSet(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, vecfile.Save(path, &vecfile.Set{
		Dimensions: 2,
		Labels:     []string{"east", "north", "west"},
		Vectors:    [][]float64{{1, 0}, {0, 1}, {-1, 0}},
	}))
	return path
}

func TestInfo(t *testing.T) {
	out, err := run(t, "info")
	require.NoError(t, err)
	assert.Contains(t, out, "Kernel:")
	assert.Contains(t, out, "AVX2+FMA:")
	assert.Contains(t, out, "ASIMD:")
	assert.Contains(t, out, "Memory size:")
}

func TestBench(t *testing.T) {
	out, err := run(t, "bench", "--dim", "16", "--iterations", "20")
	require.NoError(t, err)
	assert.Contains(t, out, "Dimensions: 16, Iterations: 20")
	assert.Contains(t, out, "Speedup:")

	out, err = run(t, "bench", "--dim", "16", "--iterations", "20", "--simd")
	require.NoError(t, err)
	assert.NotContains(t, out, "Dimensions:")
	assert.Contains(t, out, "SIMD:")
}

func TestTopK(t *testing.T) {
	for _, name := range []string{"set.yaml", "set.yaml.zst", "set.yaml.lz4"} {
		path := writeSet(t, name)

		out, err := run(t, "topk", "--file", path, "--query", "1,0", "-k", "2")
		require.NoError(t, err, name)

		lines := strings.Split(strings.TrimSpace(out), "\n")
		require.Len(t, lines, 3, out)
		assert.Contains(t, lines[1], "east")
		assert.Contains(t, lines[1], "1.000000")
		assert.Contains(t, lines[2], "north")
	}
}

func TestTopKNormalize(t *testing.T) {
	path := writeSet(t, "set.yaml")
	out, err := run(t, "topk", "--file", path, "--query", "0, 5", "-k", "1", "--normalize")
	require.NoError(t, err)
	assert.Contains(t, out, "north")
}

func TestTopKErrors(t *testing.T) {
	path := writeSet(t, "set.yaml")

	_, err := run(t, "topk", "--file", path, "--query", "1,0,0")
	var dm *vecsim.ErrDimensionMismatch
	assert.ErrorAs(t, err, &dm)

	_, err = run(t, "topk", "--file", path, "--query", "1,x")
	assert.Error(t, err)

	_, err = run(t, "topk", "--file", path, "--query", "1,0", "-k", "-2")
	assert.ErrorIs(t, err, vecsim.ErrInvalidK)

	_, err = run(t, "topk", "--query", "1,0")
	assert.Error(t, err)

	_, err = run(t, "--log-format", "xml", "topk", "--file", path, "--query", "1,0")
	assert.Error(t, err)
}

func TestParseVector(t *testing.T) {
	v, err := parseVector(" 1, -2.5 ,3e-1,")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, -2.5, 0.3}, v)

	_, err = parseVector(" , ")
	assert.Error(t, err)
}
