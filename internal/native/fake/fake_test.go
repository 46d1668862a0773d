package fake_test

import (
	"path/filepath"
	"sync/atomic"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bartolsthoorn/gocopt/internal/bridge"
	"github.com/bartolsthoorn/gocopt/internal/native"
	"github.com/bartolsthoorn/gocopt/internal/native/fake"
)

func newProb(t *testing.T, api *fake.API) unsafe.Pointer {
	t.Helper()
	env, code := api.CreateEnv()
	require.Equal(t, native.OK, code)
	prob, code := api.CreateProb(env)
	require.Equal(t, native.OK, code)
	t.Cleanup(func() {
		api.DeleteProb(prob)
		api.DeleteEnv(env)
	})
	return prob
}

func TestEnvLifecycle(t *testing.T) {
	assert := assert.New(t)
	api := fake.New(fake.Config{})

	cfg, code := api.CreateEnvConfig()
	assert.Equal(native.OK, code)
	assert.Equal(native.OK, api.SetEnvConfig(cfg, "CLIENT_WAITTIME", "5"))
	env, code := api.CreateEnvWithConfig(cfg)
	assert.Equal(native.OK, code)
	assert.Equal(native.OK, api.DeleteEnvConfig(cfg))

	_, settings, ok := api.EnvSettings(env)
	assert.True(ok)
	assert.Equal(map[string]string{"CLIENT_WAITTIME": "5"}, settings)

	assert.Equal(1, api.LiveEnvs())
	assert.Equal(native.OK, api.DeleteEnv(env))
	assert.Equal(native.Invalid, api.DeleteEnv(env))
	assert.Equal(0, api.LiveEnvs())
}

func TestCreateEnvFailure(t *testing.T) {
	api := fake.New(fake.Config{CreateEnvRetcode: native.License})

	env, code := api.CreateEnv()
	assert.Nil(t, env)
	assert.Equal(t, native.License, code)
}

func TestParams(t *testing.T) {
	tests := map[string]struct {
		name    string
		value   int32
		expCode native.Retcode
	}{
		"Setting a known parameter inside its range should succeed.": {
			name: "Threads", value: 4, expCode: native.OK,
		},
		"Setting a value above the maximum should fail.": {
			name: "Logging", value: 7, expCode: native.Invalid,
		},
		"Setting an unknown parameter should fail.": {
			name: "NoSuchParam", value: 1, expCode: native.Invalid,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert := assert.New(t)
			api := fake.New(fake.Config{IntParams: []string{"Threads", "Logging"}})
			prob := newProb(t, api)

			assert.Equal(test.expCode, api.SetIntParam(prob, test.name, test.value))
			if test.expCode == native.OK {
				var got int32
				assert.Equal(native.OK, api.GetIntParam(prob, test.name, &got))
				assert.Equal(test.value, got)
			}
		})
	}
}

func TestSolveLP(t *testing.T) {
	require := require.New(t)
	api := fake.New(fake.Config{})
	prob := newProb(t, api)

	// min x + 2y, x,y in [1, 10], x + y >= 2.
	require.Equal(native.OK, api.AddCol(prob, 1, nil, nil, native.ColContinuous, 1, 10, "x"))
	require.Equal(native.OK, api.AddCol(prob, 2, nil, nil, native.ColContinuous, 1, 10, "y"))
	require.Equal(native.OK, api.AddRow(prob, []int32{0, 1}, []float64{1, 1}, native.RowGreater, 2, 0, "c"))
	require.Equal(native.OK, api.Solve(prob))

	var status, hasLp int32
	require.Equal(native.OK, api.GetIntAttr(prob, "LpStatus", &status))
	require.Equal(native.OK, api.GetIntAttr(prob, "HasLpSol", &hasLp))
	require.Equal(int32(1), status)
	require.Equal(int32(1), hasLp)

	var obj float64
	require.Equal(native.OK, api.GetDblAttr(prob, "LpObjval", &obj))
	require.InDelta(3.0, obj, 1e-9)

	values := make([]float64, 2)
	slack := make([]float64, 1)
	require.Equal(native.OK, api.GetLpSolution(prob, values, slack, nil, nil))
	require.Equal([]float64{1, 1}, values)
	require.Equal([]float64{2}, slack)
}

func TestSolveMIPUsesStarts(t *testing.T) {
	require := require.New(t)
	api := fake.New(fake.Config{})
	prob := newProb(t, api)

	// max x, x integer in [0, 5], x <= 3.
	require.Equal(native.OK, api.AddCol(prob, 1, nil, nil, native.ColInteger, 0, 5, "x"))
	require.Equal(native.OK, api.AddRow(prob, []int32{0}, []float64{1}, native.RowLess, 3, 0, "c"))
	require.Equal(native.OK, api.SetObjSense(prob, native.Maximize))
	require.Equal(native.OK, api.AddMipStart(prob, []int32{0}, []float64{2}))
	require.Equal(native.OK, api.AddMipStart(prob, []int32{0}, []float64{4}))
	require.Equal(native.OK, api.Solve(prob))

	var best float64
	require.Equal(native.OK, api.GetDblAttr(prob, "BestObj", &best))
	require.Equal(2.0, best)

	var pool int32
	require.Equal(native.OK, api.GetIntAttr(prob, "PoolSols", &pool))
	require.Equal(int32(2), pool)
}

func TestSolveCallbacks(t *testing.T) {
	require := require.New(t)
	api := fake.New(fake.Config{Iterations: 10, EmitInvalidUTF8: true})
	prob := newProb(t, api)
	require.Equal(native.OK, api.AddCol(prob, 1, nil, nil, native.ColContinuous, 0, 1, "x"))

	var lines atomic.Int32
	lh := bridge.RegisterLog(func(string) { lines.Add(1) }, nil)
	defer lh.Release()

	var polls atomic.Int32
	th := bridge.RegisterTerminate(func() bool { return polls.Add(1) == 3 }, nil)
	defer th.Release()

	require.Equal(native.OK, api.SetLogCallback(prob, lh.Userdata()))
	require.Equal(native.OK, api.SetCallback(prob, native.ContextMIPNode, th.Userdata()))
	require.Equal(native.OK, api.Solve(prob))

	var status int32
	require.Equal(native.OK, api.GetIntAttr(prob, "LpStatus", &status))
	require.Equal(int32(10), status)
	require.Equal(int32(3), polls.Load())
	require.Equal(1, api.Calls("Interrupt"))
	// Header, three iterations, the interruption and the final line.
	require.Equal(int32(6), lines.Load())
}

func TestWriteReadRoundTrip(t *testing.T) {
	require := require.New(t)
	api := fake.New(fake.Config{})
	src := newProb(t, api)
	require.Equal(native.OK, api.AddCol(src, 3, nil, nil, native.ColBinary, 0, 1, "b"))
	require.Equal(native.OK, api.AddRow(src, []int32{0}, []float64{2}, native.RowRange, 0, 1, "r"))
	require.Equal(native.OK, api.SetObjConst(src, 1.5))

	path := filepath.Join(t.TempDir(), "model.lp")
	require.Equal(native.OK, api.Write(src, native.FileLP, path))

	dst := newProb(t, api)
	require.Equal(native.OK, api.Read(dst, native.FileMPS, path))

	want, _ := api.Problem(src)
	got, _ := api.Problem(dst)
	require.Equal(want.Cols, got.Cols)
	require.Equal(want.Rows, got.Rows)
	require.Equal(want.ObjConst, got.ObjConst)

	require.Equal(native.File, api.Read(dst, native.FileLP, filepath.Join(t.TempDir(), "missing.lp")))
	require.Equal(native.Invalid, api.Write(dst, native.FileIIS, path))
}
