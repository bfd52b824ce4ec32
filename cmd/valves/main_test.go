package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/valves/pressure"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestSolve_ScenarioFile(t *testing.T) {
	path := filepath.Join("..", "..", "scenario", "testdata", "caves.yaml")

	out, err := run(t, "solve", path)
	require.NoError(t, err)
	assert.Equal(t, path+": 1707\n", out)

	out, err = run(t, "solve", "--agents", "1", "--budget", "30", path)
	require.NoError(t, err)
	assert.Equal(t, path+": 1651\n", out)
}

func TestSolve_Plan(t *testing.T) {
	path := filepath.Join("..", "..", "scenario", "testdata", "caves.yaml")
	out, err := run(t, "solve", "--plan", path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, path+": 1707", lines[0])
	assert.Len(t, lines, 7, "six valuable valves opened")
}

func TestSolve_Errors(t *testing.T) {
	_, err := run(t, "solve")
	require.Error(t, err)

	_, err = run(t, "solve", "missing.yaml")
	require.Error(t, err)

	path := filepath.Join("..", "..", "scenario", "testdata", "caves.yaml")
	_, err = run(t, "solve", "--agents", "0", path)
	require.Error(t, err)

	_, err = run(t, "--log-level", "loud", "solve", path)
	require.Error(t, err)
}

func TestGenerateThenSolve(t *testing.T) {
	out, err := run(t, "generate", "--shape", "star", "--size", "2", "--length", "2", "--budget", "10", "--agents", "2")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "star.yaml")
	require.NoError(t, os.WriteFile(path, []byte(out), 0o644))

	out, err = run(t, "solve", path)
	require.NoError(t, err)
	assert.Equal(t, path+": 140\n", out)
}

func TestGenerate_ZeroAgents(t *testing.T) {
	out, err := run(t, "generate", "--shape", "path", "--size", "3", "--agents", "0")
	require.ErrorIs(t, err, pressure.ErrNoAgents)
	assert.Empty(t, out)
}

func TestSolve_ScenarioWithZeroAgents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "idle.yaml")
	doc := "agents: 0\nbudget: 5\nvalves:\n  - {name: AA, tunnels: [BB]}\n  - {name: BB, rate: 3, tunnels: [AA]}\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	_, err := run(t, "solve", path)
	require.ErrorIs(t, err, pressure.ErrNoAgents)

	out, err := run(t, "solve", "--agents", "1", path)
	require.NoError(t, err)
	assert.Equal(t, path+": 9\n", out)
}

func TestGenerate_UnknownShape(t *testing.T) {
	_, err := run(t, "generate", "--shape", "blob")
	require.Error(t, err)
}
