package copt_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bartolsthoorn/gocopt/copt"
	"github.com/bartolsthoorn/gocopt/internal/native/fake"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) < tol
}

func names[T fmt.Stringer](tags []T) []string {
	out := make([]string, len(tags))
	for i, t := range tags {
		out[i] = t.String()
	}
	return out
}

// newBackend returns a fake backend that accepts exactly the package's
// parameter and attribute vocabulary.
func newBackend(cfg fake.Config) *fake.API {
	cfg.IntParams = names(copt.IntParams())
	cfg.DoubleParams = names(copt.DoubleParams())
	cfg.IntAttrs = names(copt.IntAttrs())
	cfg.DoubleAttrs = names(copt.DoubleAttrs())
	return fake.New(cfg)
}

func newEnv(t *testing.T, cfg fake.Config) (*copt.Env, *fake.API) {
	t.Helper()
	api := newBackend(cfg)
	env, err := copt.NewEnvWithConfig(copt.EnvConfig{Backend: api})
	require.NoError(t, err)
	t.Cleanup(func() { env.Close() })
	return env, api
}

func newModel(t *testing.T, cfg fake.Config) (*copt.Model, *fake.API) {
	t.Helper()
	env, api := newEnv(t, cfg)
	m, err := copt.NewModel(env)
	require.NoError(t, err)
	t.Cleanup(func() { m.Close() })
	return m, api
}

// snapshot returns the fake problem behind the only live model of api.
func snapshot(t *testing.T, api *fake.API) fake.Problem {
	t.Helper()
	probs := api.Problems()
	require.Len(t, probs, 1)
	return probs[0]
}
