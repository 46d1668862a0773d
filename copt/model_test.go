package copt_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bartolsthoorn/gocopt/copt"
	"github.com/bartolsthoorn/gocopt/internal/native"
	"github.com/bartolsthoorn/gocopt/internal/native/fake"
)

func TestModelSequentialIndices(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	m, _ := newModel(t, fake.Config{})

	for i := 0; i < 4; i++ {
		v, err := m.AddVar("", copt.Continuous, 0, 0, 10, nil, nil)
		require.NoError(err)
		assert.Equal(copt.Var(i), v)
	}
	for i := 0; i < 3; i++ {
		c, err := m.AddConstr("", copt.Term(copt.Var(i), 1), copt.Less, 5)
		require.NoError(err)
		assert.Equal(copt.Constr(i), c)
	}
	v, err := m.AddVar("late", copt.Binary, 0, 0, 1, []copt.Constr{0, 2}, []float64{1, -1})
	require.NoError(err)
	assert.Equal(copt.Var(4), v)

	assert.Equal(5, m.NumVars())
	assert.Equal(3, m.NumConstrs())
}

func TestModelValidation(t *testing.T) {
	tests := map[string]struct {
		call        func(m *copt.Model) error
		expSentinel error
		expCode     int
		expMethod   string
	}{
		"AddVar with mismatched constraint coefficients should fail before any native call.": {
			call: func(m *copt.Model) error {
				_, err := m.AddVar("x", copt.Continuous, 0, 0, 1, []copt.Constr{0}, nil)
				return err
			},
			expSentinel: copt.ErrDimensionMismatch,
			expMethod:   "AddCol",
		},

		"AddVar with a NUL in the name should fail before any native call.": {
			call: func(m *copt.Model) error {
				_, err := m.AddVar("x\x00", copt.Continuous, 0, 0, 1, nil, nil)
				return err
			},
			expSentinel: copt.ErrInvalidName,
			expMethod:   "AddCol",
		},

		"AddVar with an unknown type should fail before any native call.": {
			call: func(m *copt.Model) error {
				_, err := m.AddVar("x", copt.VarType('Q'), 0, 0, 1, nil, nil)
				return err
			},
			expCode:   int(native.Invalid),
			expMethod: "AddCol",
		},

		"AddConstrTerms with mismatched slices should fail before any native call.": {
			call: func(m *copt.Model) error {
				_, err := m.AddConstrTerms("c", []copt.Var{0, 1}, []float64{1}, copt.Equal, 1)
				return err
			},
			expSentinel: copt.ErrDimensionMismatch,
			expMethod:   "AddRow",
		},

		"AddConstr with a NUL in the name should fail before any native call.": {
			call: func(m *copt.Model) error {
				_, err := m.AddConstr("c\x00", copt.Term(0, 1), copt.Equal, 1)
				return err
			},
			expSentinel: copt.ErrInvalidName,
			expMethod:   "AddRow",
		},

		"A native rejection should surface its code.": {
			call: func(m *copt.Model) error {
				_, err := m.AddVar("x", copt.Continuous, 0, 5, 1, nil, nil)
				return err
			},
			expCode: int(native.Invalid),
		},

		"Reading an unknown suffix should fail with a file error.": {
			call: func(m *copt.Model) error {
				return m.Read("model.txt")
			},
			expSentinel: copt.ErrUnsupportedFormat,
			expCode:     int(native.File),
			expMethod:   "Read",
		},

		"Writing an unknown suffix should fail with a file error.": {
			call: func(m *copt.Model) error {
				return m.Write("model.mps.gz")
			},
			expSentinel: copt.ErrUnsupportedFormat,
			expCode:     int(native.File),
			expMethod:   "Write",
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert := assert.New(t)

			m, api := newModel(t, fake.Config{})
			err := test.call(m)
			assert.Error(err)
			if test.expSentinel != nil {
				assert.ErrorIs(err, test.expSentinel)
			}
			assert.Equal(test.expCode, copt.Code(err))
			if test.expMethod != "" {
				assert.Zero(api.Calls(test.expMethod))
			}
			assert.Zero(m.NumVars())
			assert.Zero(m.NumConstrs())
		})
	}
}

func TestModelAddConstrFoldsOffset(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	m, api := newModel(t, fake.Config{})
	x0, _ := m.AddVar("x0", copt.Continuous, 0, 0, 10, nil, nil)
	x1, _ := m.AddVar("x1", copt.Continuous, 0, 0, 10, nil, nil)

	// x0 + 2 x1 + 3 <= 10  is  x0 + 2 x1 <= 7
	_, err := m.AddConstr("c0", copt.Term(x0, 1).AddTerm(x1, 2).AddConstant(3), copt.Less, 10)
	require.NoError(err)
	// 1 <= x0 - x1 - 1 <= 4  is  2 <= x0 - x1 <= 5
	_, err = m.AddRangeConstr("c1", copt.Term(x0, 1).AddTerm(x1, -1).AddConstant(-1), 1, 4)
	require.NoError(err)
	_, err = m.AddConstrTerms("c2", []copt.Var{x1}, []float64{1}, copt.Greater, 1)
	require.NoError(err)

	p := snapshot(t, api)
	require.Len(p.Rows, 3)

	assert.Equal("c0", p.Rows[0].Name)
	assert.Equal(native.RowLess, p.Rows[0].Sense)
	assert.Equal(7.0, p.Rows[0].Upper)
	assert.Equal([]int32{0, 1}, p.Rows[0].Cols)
	assert.Equal([]float64{1, 2}, p.Rows[0].Elems)

	assert.Equal(native.RowRange, p.Rows[1].Sense)
	assert.Equal(2.0, p.Rows[1].Lower)
	assert.Equal(5.0, p.Rows[1].Upper)

	assert.Equal(native.RowGreater, p.Rows[2].Sense)
	assert.Equal(1.0, p.Rows[2].Lower)
}

func TestModelSetObjective(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	m, api := newModel(t, fake.Config{})
	x0, _ := m.AddVar("x0", copt.Continuous, 0, 0, 10, nil, nil)
	x1, _ := m.AddVar("x1", copt.Continuous, 7, 0, 10, nil, nil)

	require.NoError(m.SetObjective(copt.Term(x0, 3), copt.Maximize))
	assert.Zero(api.Calls("SetObjConst"), "a zero offset should not set the objective constant")

	p := snapshot(t, api)
	assert.Equal(native.Maximize, p.ObjSense)
	assert.Equal(3.0, p.Cols[0].Obj)
	assert.Equal(7.0, p.Cols[1].Obj, "variables outside the expression should keep their coefficient")

	require.NoError(m.SetObjective(copt.Term(x1, -1).AddConstant(2.5), copt.Minimize))
	assert.Equal(1, api.Calls("SetObjConst"))

	p = snapshot(t, api)
	assert.Equal(native.Minimize, p.ObjSense)
	assert.Equal(2.5, p.ObjConst)
	assert.Equal(-1.0, p.Cols[1].Obj)

	err := m.SetObjectiveTerms([]copt.Var{x0}, []float64{1, 2}, copt.Minimize)
	assert.ErrorIs(err, copt.ErrDimensionMismatch)

	sense, err := m.GetIntAttr(copt.AttrObjSense)
	assert.NoError(err)
	assert.Equal(int(native.Minimize), sense)
}

func TestModelSetters(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	m, api := newModel(t, fake.Config{})
	v, _ := m.AddVar("v", copt.Continuous, 0, 0, 10, nil, nil)
	c, _ := m.AddConstrTerms("c", []copt.Var{v}, []float64{1}, copt.Less, 8)

	require.NoError(m.SetVarBounds(v, -1, 3))
	require.NoError(m.SetVarType(v, copt.Integer))
	require.NoError(m.SetConstrBounds(c, 2, 4))
	assert.Error(m.SetVarType(v, copt.VarType('?')))

	p := snapshot(t, api)
	assert.Equal(fake.Column{Name: "v", Type: native.ColInteger, Lower: -1, Upper: 3}, p.Cols[0])
	assert.Equal(2.0, p.Rows[0].Lower)
	assert.Equal(4.0, p.Rows[0].Upper)

	assert.Error(m.SetVarBounds(copt.Var(9), 0, 1))
}

func TestModelAddMipStart(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	m, api := newModel(t, fake.Config{})
	v, _ := m.AddVar("v", copt.Integer, 0, 0, 10, nil, nil)

	require.NoError(m.AddMipStart(nil))
	assert.Zero(api.Calls("AddMipStart"), "an empty start should not reach the solver")

	require.NoError(m.AddMipStart([]copt.VarValue{{Var: v, Value: 3}}))
	assert.Equal([]map[int32]float64{{0: 3}}, snapshot(t, api).MipStarts)
}

func TestModelClosed(t *testing.T) {
	assert := assert.New(t)

	m, api := newModel(t, fake.Config{})
	assert.NoError(m.Close())
	assert.NoError(m.Close())
	assert.Zero(api.LiveProblems())

	_, err := m.AddVar("x", copt.Continuous, 0, 0, 1, nil, nil)
	assert.ErrorIs(err, copt.ErrClosed)
	assert.ErrorIs(m.Optimize(), copt.ErrClosed)
	_, err = m.GetIntParam(copt.ParamLogging)
	assert.ErrorIs(err, copt.ErrClosed)
	assert.NotPanics(m.Terminate)
}

func TestModelClone(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	env, api := newEnv(t, fake.Config{})
	m, err := copt.NewModel(env)
	require.NoError(err)
	defer m.Close()

	_, err = m.AddVar("v", copt.Continuous, 1, 0, 1, nil, nil)
	require.NoError(err)
	require.NoError(m.SetDoubleParam(copt.ParamTimeLimit, 30))

	cp, err := m.Clone()
	require.NoError(err)
	assert.Equal(1, cp.NumVars())

	_, err = cp.AddVar("w", copt.Continuous, 0, 0, 1, nil, nil)
	require.NoError(err)
	assert.Equal(1, m.NumVars())
	assert.Equal(2, cp.NumVars())

	limit, err := cp.GetDoubleParam(copt.ParamTimeLimit)
	assert.NoError(err)
	assert.Equal(30.0, limit)

	// The clone keeps the environment alive on its own.
	require.NoError(env.Close())
	require.NoError(m.Close())
	assert.Equal(1, api.LiveEnvs())
	require.NoError(cp.Close())
	assert.Zero(api.LiveEnvs())
}

func TestModelReadWrite(t *testing.T) {
	tests := map[string]struct {
		file string
	}{
		"LP files should round trip.": {
			file: "model.lp",
		},
		"MPS files should round trip.": {
			file: "model.mps",
		},
		"Suffixes should be matched case-insensitively.": {
			file: "MODEL.MPS",
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert := assert.New(t)
			require := require.New(t)

			env, _ := newEnv(t, fake.Config{})
			path := filepath.Join(t.TempDir(), test.file)

			src, err := copt.NewModel(env)
			require.NoError(err)
			defer src.Close()
			a, _ := src.AddVar("a", copt.Continuous, 1, 0, 4, nil, nil)
			b, _ := src.AddVar("b", copt.Integer, 2, 0, 9, nil, nil)
			_, err = src.AddConstr("c", copt.Sum(copt.Term(a, 1), copt.Term(b, 1)), copt.Less, 5)
			require.NoError(err)
			require.NoError(src.SetObjSense(copt.Maximize))
			require.NoError(src.Write(path))

			dst, err := copt.NewModel(env)
			require.NoError(err)
			defer dst.Close()
			require.NoError(dst.Read(path))

			assert.Equal(2, dst.NumVars())
			assert.Equal(1, dst.NumConstrs())
			sense, err := dst.GetIntAttr(copt.AttrObjSense)
			assert.NoError(err)
			assert.Equal(int(copt.Maximize), sense)

			// New variables continue after the ones read from the file.
			v, err := dst.AddVar("d", copt.Continuous, 0, 0, 1, nil, nil)
			assert.NoError(err)
			assert.Equal(copt.Var(2), v)
		})
	}
}

func TestModelFiles(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	m, _ := newModel(t, fake.Config{})
	dir := t.TempDir()

	_, err := m.AddVar("v", copt.Continuous, 1, 1, 2, nil, nil)
	require.NoError(err)

	err = m.WriteFile(copt.FormatSol, filepath.Join(dir, "m.sol"))
	assert.Equal(int(native.Invalid), copt.Code(err), "there is no solution to write yet")

	require.NoError(m.Optimize())
	require.NoError(m.WriteFile(copt.FormatSol, filepath.Join(dir, "m.sol")))
	require.NoError(m.WriteFile(copt.FormatParam, filepath.Join(dir, "m.par")))
	require.NoError(m.ReadFile(copt.FormatParam, filepath.Join(dir, "m.par")))

	err = m.ReadFile(copt.FormatIIS, filepath.Join(dir, "m.iis"))
	assert.ErrorIs(err, copt.ErrUnsupportedFormat)
	err = m.ReadFile(copt.FormatMPS, filepath.Join(dir, "missing.mps"))
	assert.Equal(int(native.File), copt.Code(err))

	blob, err := m.WriteBlob(true)
	require.NoError(err)
	cp, err := m.Clone()
	require.NoError(err)
	defer cp.Close()
	_, err = cp.AddVar("extra", copt.Continuous, 0, 0, 1, nil, nil)
	require.NoError(err)
	require.NoError(cp.ReadBlob(blob))
	assert.Equal(1, cp.NumVars())

	require.NoError(m.SetLogFile(filepath.Join(dir, "copt.log")))
	assert.ErrorIs(m.SetLogFile("bad\x00.log"), copt.ErrInvalidName)
}
