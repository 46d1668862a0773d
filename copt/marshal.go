package copt

import (
	"math"
	"unsafe"

	"github.com/bartolsthoorn/gocopt/internal/native"
)

// scalar is a buffer type a native accessor reads or writes.
type scalar interface {
	int32 | float64
}

// number is the Go type a tag family is exposed as.
type number interface {
	int | float64
}

type (
	getFunc[B scalar] func(native.API, unsafe.Pointer, string, *B) native.Retcode
	setFunc[B scalar] func(native.API, unsafe.Pointer, string, B) native.Retcode
)

// descriptor ties a tag family to its native accessors and to the conversion
// between the native buffer type B and the Go value type Out. Attribute
// families have no setter and no default/min/max accessors.
type descriptor[B scalar, Out number] struct {
	family string
	decode func(B) Out
	encode func(Out) (B, bool)

	get getFunc[B]
	def getFunc[B]
	min getFunc[B]
	max getFunc[B]
	set setFunc[B]
}

func decodeInt(b int32) int { return int(b) }

func encodeInt(v int) (int32, bool) {
	if v < math.MinInt32 || v > math.MaxInt32 {
		return 0, false
	}
	return int32(v), true
}

func decodeDouble(b float64) float64 { return b }

func encodeDouble(v float64) (float64, bool) { return v, !math.IsNaN(v) }

var (
	intParams = descriptor[int32, int]{
		family: "IntParam",
		decode: decodeInt,
		encode: encodeInt,
		get:    native.API.GetIntParam,
		def:    native.API.GetIntParamDef,
		min:    native.API.GetIntParamMin,
		max:    native.API.GetIntParamMax,
		set:    native.API.SetIntParam,
	}

	doubleParams = descriptor[float64, float64]{
		family: "DoubleParam",
		decode: decodeDouble,
		encode: encodeDouble,
		get:    native.API.GetDblParam,
		def:    native.API.GetDblParamDef,
		min:    native.API.GetDblParamMin,
		max:    native.API.GetDblParamMax,
		set:    native.API.SetDblParam,
	}

	intAttrs = descriptor[int32, int]{
		family: "IntAttr",
		decode: decodeInt,
		get:    native.API.GetIntAttr,
	}

	doubleAttrs = descriptor[float64, float64]{
		family: "DoubleAttr",
		decode: decodeDouble,
		get:    native.API.GetDblAttr,
	}
)

// read calls one of the getters of d for name.
func (d *descriptor[B, Out]) read(api native.API, prob unsafe.Pointer, op, name string, fn getFunc[B]) (Out, error) {
	var (
		buf  B
		zero Out
	)
	if fn == nil {
		return zero, newErrorMsg(op, d.family+" has no such accessor")
	}
	if err := newError(op, fn(api, prob, name, &buf)); err != nil {
		return zero, err
	}
	return d.decode(buf), nil
}

func (d *descriptor[B, Out]) write(api native.API, prob unsafe.Pointer, op, name string, v Out) error {
	if d.set == nil {
		return newErrorMsg(op, d.family+" is read-only")
	}
	b, ok := d.encode(v)
	if !ok {
		return invalidArg(op, name+": value out of range")
	}
	return newError(op, d.set(api, prob, name, b))
}

// ParamInfo describes the current value and the accepted range of a parameter.
type ParamInfo[T number] struct {
	Name    string
	Current T
	Default T
	Min     T
	Max     T
}

func (d *descriptor[B, Out]) info(api native.API, prob unsafe.Pointer, op, name string) (ParamInfo[Out], error) {
	info := ParamInfo[Out]{Name: name}
	targets := []struct {
		fn  getFunc[B]
		out *Out
	}{
		{d.get, &info.Current},
		{d.def, &info.Default},
		{d.min, &info.Min},
		{d.max, &info.Max},
	}
	for _, t := range targets {
		v, err := d.read(api, prob, op, name, t.fn)
		if err != nil {
			return ParamInfo[Out]{}, err
		}
		*t.out = v
	}
	return info, nil
}

// GetIntParam returns the current value of an integer parameter.
func (m *Model) GetIntParam(p IntParam) (int, error) {
	prob, err := m.handle("GetIntParam")
	if err != nil {
		return 0, err
	}
	return intParams.read(m.api, prob, "GetIntParam", p.String(), intParams.get)
}

// SetIntParam sets an integer parameter.
func (m *Model) SetIntParam(p IntParam, value int) error {
	prob, err := m.handle("SetIntParam")
	if err != nil {
		return err
	}
	return intParams.write(m.api, prob, "SetIntParam", p.String(), value)
}

// IntParamInfo returns the current, default, minimum and maximum values of an
// integer parameter.
func (m *Model) IntParamInfo(p IntParam) (ParamInfo[int], error) {
	prob, err := m.handle("IntParamInfo")
	if err != nil {
		return ParamInfo[int]{}, err
	}
	return intParams.info(m.api, prob, "IntParamInfo", p.String())
}

// GetDoubleParam returns the current value of a double parameter.
func (m *Model) GetDoubleParam(p DoubleParam) (float64, error) {
	prob, err := m.handle("GetDoubleParam")
	if err != nil {
		return 0, err
	}
	return doubleParams.read(m.api, prob, "GetDoubleParam", p.String(), doubleParams.get)
}

// SetDoubleParam sets a double parameter.
func (m *Model) SetDoubleParam(p DoubleParam, value float64) error {
	prob, err := m.handle("SetDoubleParam")
	if err != nil {
		return err
	}
	return doubleParams.write(m.api, prob, "SetDoubleParam", p.String(), value)
}

// DoubleParamInfo returns the current, default, minimum and maximum values of
// a double parameter.
func (m *Model) DoubleParamInfo(p DoubleParam) (ParamInfo[float64], error) {
	prob, err := m.handle("DoubleParamInfo")
	if err != nil {
		return ParamInfo[float64]{}, err
	}
	return doubleParams.info(m.api, prob, "DoubleParamInfo", p.String())
}

// GetIntAttr returns an integer attribute.
func (m *Model) GetIntAttr(a IntAttr) (int, error) {
	prob, err := m.handle("GetIntAttr")
	if err != nil {
		return 0, err
	}
	return intAttrs.read(m.api, prob, "GetIntAttr", a.String(), intAttrs.get)
}

// GetDoubleAttr returns a double attribute.
func (m *Model) GetDoubleAttr(a DoubleAttr) (float64, error) {
	prob, err := m.handle("GetDoubleAttr")
	if err != nil {
		return 0, err
	}
	return doubleAttrs.read(m.api, prob, "GetDoubleAttr", a.String(), doubleAttrs.get)
}

// ResetParams restores every parameter to its default.
func (m *Model) ResetParams() error {
	prob, err := m.handle("ResetParams")
	if err != nil {
		return err
	}
	return newError("ResetParams", m.api.ResetParam(prob))
}
