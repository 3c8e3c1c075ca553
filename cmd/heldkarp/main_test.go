package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/heldkarp/tsp"
	"github.com/katalvlaran/heldkarp/tspio"
)

// execute runs the root command with stdin and returns stdout.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Chdir(dir)

	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

const fourCities = "4\n0 29 20 21\n29 0 15 17\n20 15 0 28\n21 17 28 0\n"

func TestSolve_Stdin(t *testing.T) {
	out, err := execute(t, fourCities, "solve")
	require.NoError(t, err)
	assert.Equal(t, "73\n", out)
}

func TestSolve_StdinEngines(t *testing.T) {
	for _, e := range []string{"auto", "scalar", "vector"} {
		out, err := execute(t, "3\n0 10 15\n10 0 20\n15 20 0\n", "solve", "--engine", e)
		require.NoError(t, err, e)
		assert.Equal(t, "45\n", out, e)
	}
}

func TestSolve_Tour(t *testing.T) {
	out, err := execute(t, "3\n0 1 9\n9 0 1\n1 9 0\n", "solve", "--tour")
	require.NoError(t, err)
	assert.Equal(t, "3\n0 1 2 0\n", out)
}

func TestSolve_Errors(t *testing.T) {
	_, err := execute(t, "abc\n", "solve")
	require.ErrorContains(t, err, "invalid N")

	_, err = execute(t, fourCities, "solve", "--max-n", "3")
	require.ErrorContains(t, err, "too large")

	_, err = execute(t, fourCities, "solve", "--engine", "gpu")
	require.ErrorContains(t, err, "unknown engine")

	out, err := execute(t, "3\n0 1 2\n", "solve")
	require.ErrorContains(t, err, "line 2")
	assert.Empty(t, out)
}

func TestSolve_Files(t *testing.T) {
	src := t.TempDir()
	a := filepath.Join(src, "a.txt")
	b := filepath.Join(src, "b.txt")
	require.NoError(t, os.WriteFile(a, []byte(fourCities), 0o600))
	require.NoError(t, os.WriteFile(b, []byte("0\n"), 0o600))

	out, err := execute(t, "", "solve", "--workers", "2", a, b, a)
	require.NoError(t, err)
	assert.Equal(t, "73\n0\n73\n", out)
}

func TestSolve_ConfigFile(t *testing.T) {
	src := t.TempDir()
	cfgPath := filepath.Join(src, "cfg.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("max_n: 3\n"), 0o600))

	_, err := execute(t, fourCities, "--config", cfgPath, "solve")
	require.ErrorContains(t, err, "too large")

	out, err := execute(t, fourCities, "--config", cfgPath, "solve", "--max-n", "0")
	require.NoError(t, err)
	assert.Equal(t, "73\n", out, "flag wins over config")
}

func TestSolve_EnvConfig(t *testing.T) {
	t.Setenv("HELDKARP_ENGINE", "warp")
	_, err := execute(t, fourCities, "solve")
	require.ErrorContains(t, err, "validate config")
}

func TestBench(t *testing.T) {
	out, err := execute(t, "", "bench", "--n", "9", "--count", "2", "--seed", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "n=9")
	assert.Contains(t, out, "scalar")
	assert.Contains(t, out, "vector")
	assert.Contains(t, out, "table=18 KiB", "mixed-case size unit survives rendering")

	_, err = execute(t, "", "bench", "--n", "1")
	require.Error(t, err)

	_, err = execute(t, "", "bench", "--n", "30")
	require.ErrorContains(t, err, "too large")
}

func TestBench_DumpIsSolvableInput(t *testing.T) {
	out, err := execute(t, "", "bench", "--n", "4", "--count", "1", "--seed", "3", "--dump")
	require.NoError(t, err)

	m, err := tspio.Parse(strings.NewReader(out))
	require.NoError(t, err)
	require.Equal(t, 4, m.Order())

	want, err := tsp.RandomMatrix(4, benchMaxCost, 3, false)
	require.NoError(t, err)
	assert.Equal(t, want.Data(), m.Data())
}

func TestCPU(t *testing.T) {
	out, err := execute(t, "", "cpu")
	require.NoError(t, err)
	assert.Contains(t, out, "isa")
	assert.Contains(t, out, "auto engine")
	assert.Contains(t, out, "table at n=25")
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "heldkarp dev"))
}

func TestLogFlags(t *testing.T) {
	_, err := execute(t, fourCities, "--log-level", "shout", "solve")
	require.Error(t, err)

	out, err := execute(t, fourCities, "--log-level", "debug", "--log-format", "json", "solve")
	require.NoError(t, err)
	assert.Equal(t, "73\n", out)
}
