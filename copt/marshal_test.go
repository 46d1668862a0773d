package copt_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bartolsthoorn/gocopt/copt"
	"github.com/bartolsthoorn/gocopt/internal/native"
	"github.com/bartolsthoorn/gocopt/internal/native/fake"
)

func TestParamRoundTrip(t *testing.T) {
	m, _ := newModel(t, fake.Config{})

	for _, p := range copt.IntParams() {
		t.Run(p.String(), func(t *testing.T) {
			require := require.New(t)

			v, err := m.GetIntParam(p)
			require.NoError(err)
			require.NoError(m.SetIntParam(p, v))
			got, err := m.GetIntParam(p)
			require.NoError(err)
			require.Equal(v, got)
		})
	}
	for _, p := range copt.DoubleParams() {
		t.Run(p.String(), func(t *testing.T) {
			require := require.New(t)

			v, err := m.GetDoubleParam(p)
			require.NoError(err)
			require.NoError(m.SetDoubleParam(p, v))
			got, err := m.GetDoubleParam(p)
			require.NoError(err)
			require.Equal(v, got)
		})
	}
}

func TestParamNames(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("TimeLimit", copt.ParamTimeLimit.String())
	assert.Equal("Logging", copt.ParamLogging.String())
	assert.Equal("LpStatus", copt.AttrLpStatus.String())
	assert.Equal("BestObj", copt.AttrBestObj.String())

	seen := map[string]bool{}
	all := append(append(append(names(copt.IntParams()), names(copt.DoubleParams())...),
		names(copt.IntAttrs())...), names(copt.DoubleAttrs())...)
	for _, n := range all {
		assert.False(seen[n], "duplicate name %s", n)
		seen[n] = true
	}

	for _, p := range copt.IntParams() {
		got, ok := copt.LookupIntParam(p.String())
		assert.True(ok)
		assert.Equal(p, got)
	}
	for _, a := range copt.DoubleAttrs() {
		got, ok := copt.LookupDoubleAttr(a.String())
		assert.True(ok)
		assert.Equal(a, got)
	}
	_, ok := copt.LookupDoubleParam("Threads")
	assert.False(ok)
	_, ok = copt.LookupIntAttr("NoSuchAttr")
	assert.False(ok)
}

func TestParamSet(t *testing.T) {
	tests := map[string]struct {
		set       func(m *copt.Model) error
		expCode   int
		expCalled bool
	}{
		"A value in range should be accepted.": {
			set:       func(m *copt.Model) error { return m.SetIntParam(copt.ParamThreads, 8) },
			expCalled: true,
		},

		"A value out of the native range should be rejected by the solver.": {
			set:       func(m *copt.Model) error { return m.SetIntParam(copt.ParamThreads, 1000) },
			expCode:   int(native.Invalid),
			expCalled: true,
		},

		"A value that does not fit the native buffer should never reach the solver.": {
			set:     func(m *copt.Model) error { return m.SetIntParam(copt.ParamThreads, math.MaxInt32+1) },
			expCode: int(native.Invalid),
		},

		"NaN should never reach the solver.": {
			set:     func(m *copt.Model) error { return m.SetDoubleParam(copt.ParamTimeLimit, math.NaN()) },
			expCode: int(native.Invalid),
		},

		"A double in range should be accepted.": {
			set:       func(m *copt.Model) error { return m.SetDoubleParam(copt.ParamRelGap, 0.01) },
			expCalled: true,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert := assert.New(t)

			m, api := newModel(t, fake.Config{})
			err := test.set(m)
			assert.Equal(test.expCode, copt.Code(err))
			if test.expCode == 0 {
				assert.NoError(err)
			}
			calls := api.Calls("SetIntParam") + api.Calls("SetDblParam")
			assert.Equal(test.expCalled, calls > 0)
		})
	}
}

func TestParamInfo(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	m, _ := newModel(t, fake.Config{
		IntRanges: map[string]fake.Range[int32]{"Threads": {Def: -1, Min: -1, Max: 64}},
	})
	require.NoError(m.SetIntParam(copt.ParamThreads, 4))

	info, err := m.IntParamInfo(copt.ParamThreads)
	require.NoError(err)
	assert.Equal(copt.ParamInfo[int]{Name: "Threads", Current: 4, Default: -1, Min: -1, Max: 64}, info)

	dinfo, err := m.DoubleParamInfo(copt.ParamFeasTol)
	require.NoError(err)
	assert.Equal("FeasTol", dinfo.Name)
	assert.Equal(dinfo.Default, dinfo.Current)
	assert.LessOrEqual(dinfo.Min, dinfo.Default)
	assert.LessOrEqual(dinfo.Default, dinfo.Max)

	require.NoError(m.ResetParams())
	v, err := m.GetIntParam(copt.ParamThreads)
	require.NoError(err)
	assert.Equal(-1, v)
}

func TestUnknownNames(t *testing.T) {
	assert := assert.New(t)

	// A backend that knows nothing rejects every name.
	api := fake.New(fake.Config{
		IntParams:    []string{},
		DoubleParams: []string{},
		IntAttrs:     []string{},
		DoubleAttrs:  []string{},
	})
	env, err := copt.NewEnvWithConfig(copt.EnvConfig{Backend: api})
	assert.NoError(err)
	defer env.Close()
	m, err := copt.NewModel(env)
	assert.NoError(err)
	defer m.Close()

	_, err = m.GetIntParam(copt.ParamLogging)
	assert.Equal(int(native.Invalid), copt.Code(err))
	_, err = m.GetDoubleAttr(copt.AttrBestObj)
	assert.Equal(int(native.Invalid), copt.Code(err))

	var e *copt.Error
	assert.ErrorAs(err, &e)
	assert.Equal("GetDoubleAttr", e.Op)
}

func TestAttrs(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	m, _ := newModel(t, fake.Config{})
	_, err := m.AddVar("b", copt.Binary, 1, 0, 1, nil, nil)
	require.NoError(err)
	_, err = m.AddVar("c", copt.Continuous, 1, 0, 1, nil, nil)
	require.NoError(err)

	tests := map[copt.IntAttr]int{
		copt.AttrCols:      2,
		copt.AttrRows:      0,
		copt.AttrBins:      1,
		copt.AttrInts:      0,
		copt.AttrIsMIP:     1,
		copt.AttrMipStatus: int(copt.StatusUnstarted),
	}
	for attr, exp := range tests {
		got, err := m.GetIntAttr(attr)
		assert.NoError(err, attr.String())
		assert.Equal(exp, got, attr.String())
	}
}
