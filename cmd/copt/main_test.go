package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bartolsthoorn/gocopt/internal/log"
)

// min 2x s.t. x <= 5, 1 <= x <= 10.
const feasibleModel = `sense: 1
columns:
  - {name: x, type: C, obj: 2, lower: 1, upper: 10}
rows:
  - {name: cap, sense: L, lower: -1e30, upper: 5, cols: [0], elems: [1]}
`

// x >= 20 can not hold with x <= 10.
const infeasibleModel = `sense: 1
columns:
  - {name: x, type: C, obj: 1, lower: 1, upper: 10}
rows:
  - {name: floor, sense: G, lower: 20, upper: 1e30, cols: [0], elems: [1]}
`

func writeModel(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	all := append([]string{"copt", "--fake", "--no-log"}, args...)
	err := Run(context.Background(), all, strings.NewReader(""), &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func TestSolve(t *testing.T) {
	dir := t.TempDir()
	feasible := writeModel(t, dir, "feasible.lp", feasibleModel)
	infeasible := writeModel(t, dir, "infeasible.mps", infeasibleModel)

	tests := map[string]struct {
		args   []string
		expErr bool
		expOut []string
		noOut  []string
	}{
		"A feasible model should print its optimum.": {
			args:   []string{"--no-history", "solve", feasible},
			expOut: []string{"Status:      Optimal", "Objective:   2", "Variables:   1", "Constraints: 1"},
		},

		"An infeasible model should print its status without an objective.": {
			args:   []string{"--no-history", "solve", infeasible},
			expOut: []string{"Status:      Infeasible"},
			noOut:  []string{"Objective:"},
		},

		"Parameters should be accepted by name.": {
			args:   []string{"--no-history", "solve", "--param", "Threads=2", "--time-limit", "30", feasible},
			expOut: []string{"Status:      Optimal"},
		},

		"An unknown parameter should fail.": {
			args:   []string{"--no-history", "solve", "--param", "NoSuchParam=1", feasible},
			expErr: true,
		},

		"A parameter that is not a number should fail.": {
			args:   []string{"--no-history", "solve", "--param", "Threads=many", feasible},
			expErr: true,
		},

		"A missing model file should fail.": {
			args:   []string{"--no-history", "solve", filepath.Join(dir, "missing.lp")},
			expErr: true,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert := assert.New(t)

			out, _, err := runCLI(t, test.args...)
			if test.expErr {
				assert.Error(err)
				return
			}
			assert.NoError(err)
			for _, exp := range test.expOut {
				assert.Contains(out, exp)
			}
			for _, no := range test.noOut {
				assert.NotContains(out, no)
			}
		})
	}
}

func TestSolveWritesFiles(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	dir := t.TempDir()
	model := writeModel(t, dir, "model.lp", feasibleModel)
	written := filepath.Join(dir, "copy.mps")
	solution := filepath.Join(dir, "model.sol")

	_, _, err := runCLI(t, "--no-history", "solve", "--write", written, "--solution", solution, model)
	require.NoError(err)
	assert.FileExists(written)
	assert.FileExists(solution)

	// The written copy solves to the same optimum.
	out, _, err := runCLI(t, "--no-history", "solve", written)
	require.NoError(err)
	assert.Contains(out, "Objective:   2")
}

func TestSolverLog(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	model := writeModel(t, dir, "model.lp", feasibleModel)

	_, stderr, err := runCLI(t, "--no-history", "solve", "--solver-log", model)
	assert.NoError(err)
	assert.Contains(stderr, "Solving finished")

	_, stderr, err = runCLI(t, "--no-history", "solve", model)
	assert.NoError(err)
	assert.Empty(stderr)
}

func TestHistory(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	dir := t.TempDir()
	db := filepath.Join(dir, "state", "history.db")
	feasible := writeModel(t, dir, "feasible.lp", feasibleModel)
	infeasible := writeModel(t, dir, "infeasible.lp", infeasibleModel)

	out, _, err := runCLI(t, "--history-db", db, "history")
	require.NoError(err)
	assert.Empty(out, "an empty history prints nothing")

	_, _, err = runCLI(t, "--history-db", db, "solve", feasible)
	require.NoError(err)
	_, _, err = runCLI(t, "--history-db", db, "solve", infeasible)
	require.NoError(err)

	out, _, err = runCLI(t, "--history-db", db, "history")
	require.NoError(err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(lines, 3)
	assert.True(strings.HasPrefix(lines[0], "ID"))
	assert.Contains(lines[1], infeasible, "newest runs come first")
	assert.Contains(lines[1], "Infeasible")
	assert.Contains(lines[2], feasible)
	assert.Contains(lines[2], "Optimal")

	out, _, err = runCLI(t, "--history-db", db, "history", "--limit", "1")
	require.NoError(err)
	assert.Len(strings.Split(strings.TrimSpace(out), "\n"), 2)

	// Runs with --no-history are not recorded.
	_, _, err = runCLI(t, "--history-db", db, "--no-history", "solve", feasible)
	require.NoError(err)
	out, _, err = runCLI(t, "--history-db", db, "history", "--limit", "0")
	require.NoError(err)
	assert.Len(strings.Split(strings.TrimSpace(out), "\n"), 3)
}

func TestConvert(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	dir := t.TempDir()
	in := writeModel(t, dir, "model.mps", feasibleModel)
	out := filepath.Join(dir, "model.lp")

	_, _, err := runCLI(t, "convert", in, out)
	require.NoError(err)
	data, err := os.ReadFile(out)
	require.NoError(err)
	assert.Contains(string(data), "name: cap")

	_, _, err = runCLI(t, "convert", in, filepath.Join(dir, "model.txt"))
	assert.Error(err, "an unknown suffix should fail")
}

func TestParams(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	dir := t.TempDir()
	profile := writeModel(t, dir, "profile.yaml", "params:\n  Threads: 3\n")

	out, _, err := runCLI(t, "--profile", profile, "params", "Threads", "TimeLimit")
	require.NoError(err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(lines, 3)
	assert.Equal([]string{"NAME", "TYPE", "CURRENT", "DEFAULT", "MIN", "MAX"}, strings.Fields(lines[0]))
	assert.Equal([]string{"Threads", "int", "3"}, strings.Fields(lines[1])[:3])
	assert.Equal([]string{"TimeLimit", "double"}, strings.Fields(lines[2])[:2])

	_, _, err = runCLI(t, "params", "NoSuchParam")
	assert.Error(err)
}

func TestBanner(t *testing.T) {
	assert := assert.New(t)

	out, _, err := runCLI(t, "banner")
	assert.NoError(err)
	assert.Contains(out, "Cardinal Optimizer")

	out, _, err = runCLI(t, "banner", "--license")
	assert.NoError(err)
	assert.Len(strings.Split(strings.TrimSpace(out), "\n"), 2)
}

func TestInvalidCommand(t *testing.T) {
	_, _, err := runCLI(t, "optimize")
	assert.Error(t, err)
}

// blockingCommand waits for its context and then fails with err.
type blockingCommand struct {
	err error
}

func (c blockingCommand) Name() string { return "blocking" }

func (c blockingCommand) Run(ctx context.Context) error {
	<-ctx.Done()
	return c.err
}

func TestRunCommandStopped(t *testing.T) {
	tests := map[string]struct {
		cmdErr error
		expErr bool
	}{
		"A command that fails after a signal should report its error.": {
			cmdErr: errors.New("could not record run"),
			expErr: true,
		},

		"A command that ends cleanly after a signal should succeed.": {},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert := assert.New(t)

			stop, cancel := context.WithCancel(context.Background())
			cancel()

			err := runCommand(context.Background(), stop, log.Noop, "blocking", blockingCommand{err: test.cmdErr})
			if test.expErr {
				assert.ErrorIs(err, test.cmdErr)
			} else {
				assert.NoError(err)
			}
		})
	}
}
