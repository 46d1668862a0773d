//go:build cgo && copt

// Package coptc implements native.API on top of the COPT shared library.
//
// Building it requires the copt build tag and the COPT headers and library on
// the compiler search paths, for example:
//
//	export CGO_CFLAGS="-I$COPT_HOME/include"
//	export CGO_LDFLAGS="-L$COPT_HOME/lib -Wl,-rpath,$COPT_HOME/lib"
//	go build -tags copt ./...
package coptc

/*
#cgo LDFLAGS: -lcopt

#include <stdlib.h>
#include <stdint.h>
#include "copt.h"

extern void goCoptLog(char *msg, void *userdata);
extern int goCoptTerminate(copt_prob *prob, void *cbdata, int cbctx, void *userdata);

static void gocopt_null_log(char *msg, void *userdata) {}

static int gocopt_null_callback(copt_prob *prob, void *cbdata, int cbctx, void *userdata) {
	return 0;
}

static int gocopt_set_log_callback(copt_prob *prob, uintptr_t userdata) {
	if (userdata == 0) {
		return COPT_SetLogCallback(prob, gocopt_null_log, NULL);
	}
	return COPT_SetLogCallback(prob, (void (*)(char *, void *))goCoptLog, (void *)userdata);
}

static int gocopt_set_callback(copt_prob *prob, int cbctx, uintptr_t userdata) {
	if (userdata == 0) {
		return COPT_SetCallback(prob, gocopt_null_callback, cbctx, NULL);
	}
	return COPT_SetCallback(prob, (int (*)(copt_prob *, void *, int, void *))goCoptTerminate, cbctx, (void *)userdata);
}
*/
import "C"

import (
	"unsafe"

	"github.com/bartolsthoorn/gocopt/internal/native"
)

const msgBufSize = 1024

// API talks to libcopt.
type API struct{}

// New returns the libcopt backed API.
func New() API { return API{} }

var _ native.API = API{}

func rc(code C.int) native.Retcode { return native.Retcode(code) }

func intPtr(s []int32) *C.int {
	if len(s) == 0 {
		return nil
	}
	return (*C.int)(&s[0])
}

func dblPtr(s []float64) *C.double {
	if len(s) == 0 {
		return nil
	}
	return (*C.double)(&s[0])
}

func charPtr(s []byte) *C.char {
	if len(s) == 0 {
		return nil
	}
	return (*C.char)(unsafe.Pointer(&s[0]))
}

func prob(p unsafe.Pointer) *C.copt_prob { return (*C.copt_prob)(p) }

func env(p unsafe.Pointer) *C.copt_env { return (*C.copt_env)(p) }

func bufString(buf []byte) string {
	for i, b := range buf {
		if b == 0 {
			return string(buf[:i])
		}
	}
	return string(buf)
}

func (API) GetBanner() (string, native.Retcode) {
	buf := make([]byte, msgBufSize)
	code := C.COPT_GetBanner(charPtr(buf), C.int(len(buf)))
	return bufString(buf), rc(code)
}

func (API) GetRetcodeMsg(code native.Retcode) (string, native.Retcode) {
	buf := make([]byte, msgBufSize)
	ret := C.COPT_GetRetcodeMsg(C.int(code), charPtr(buf), C.int(len(buf)))
	return bufString(buf), rc(ret)
}

func (API) CreateEnvConfig() (unsafe.Pointer, native.Retcode) {
	var cfg *C.copt_env_config
	code := C.COPT_CreateEnvConfig(&cfg)
	return unsafe.Pointer(cfg), rc(code)
}

func (API) SetEnvConfig(config unsafe.Pointer, name, value string) native.Retcode {
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))
	cValue := C.CString(value)
	defer C.free(unsafe.Pointer(cValue))

	return rc(C.COPT_SetEnvConfig((*C.copt_env_config)(config), cName, cValue))
}

func (API) DeleteEnvConfig(config unsafe.Pointer) native.Retcode {
	cfg := (*C.copt_env_config)(config)
	return rc(C.COPT_DeleteEnvConfig(&cfg))
}

func (API) CreateEnv() (unsafe.Pointer, native.Retcode) {
	var e *C.copt_env
	code := C.COPT_CreateEnv(&e)
	return unsafe.Pointer(e), rc(code)
}

func (API) CreateEnvWithPath(licDir string) (unsafe.Pointer, native.Retcode) {
	cDir := C.CString(licDir)
	defer C.free(unsafe.Pointer(cDir))

	var e *C.copt_env
	code := C.COPT_CreateEnvWithPath(cDir, &e)
	return unsafe.Pointer(e), rc(code)
}

func (API) CreateEnvWithConfig(config unsafe.Pointer) (unsafe.Pointer, native.Retcode) {
	var e *C.copt_env
	code := C.COPT_CreateEnvWithConfig((*C.copt_env_config)(config), &e)
	return unsafe.Pointer(e), rc(code)
}

func (API) DeleteEnv(e unsafe.Pointer) native.Retcode {
	p := env(e)
	return rc(C.COPT_DeleteEnv(&p))
}

func (API) GetLicenseMsg(e unsafe.Pointer) (string, native.Retcode) {
	buf := make([]byte, msgBufSize)
	code := C.COPT_GetLicenseMsg(env(e), charPtr(buf), C.int(len(buf)))
	return bufString(buf), rc(code)
}

func (API) CreateProb(e unsafe.Pointer) (unsafe.Pointer, native.Retcode) {
	var p *C.copt_prob
	code := C.COPT_CreateProb(env(e), &p)
	return unsafe.Pointer(p), rc(code)
}

func (API) CreateCopy(src unsafe.Pointer) (unsafe.Pointer, native.Retcode) {
	var p *C.copt_prob
	code := C.COPT_CreateCopy(prob(src), &p)
	return unsafe.Pointer(p), rc(code)
}

func (API) DeleteProb(p unsafe.Pointer) native.Retcode {
	pp := prob(p)
	return rc(C.COPT_DeleteProb(&pp))
}

func (API) AddCol(p unsafe.Pointer, obj float64, rows []int32, elems []float64, colType byte, lower, upper float64, name string) native.Retcode {
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))

	return rc(C.COPT_AddCol(prob(p), C.double(obj),
		C.int(len(rows)), intPtr(rows), dblPtr(elems),
		C.char(colType), C.double(lower), C.double(upper), cName))
}

func (API) AddRow(p unsafe.Pointer, cols []int32, elems []float64, sense byte, bound, upper float64, name string) native.Retcode {
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))

	return rc(C.COPT_AddRow(prob(p),
		C.int(len(cols)), intPtr(cols), dblPtr(elems),
		C.char(sense), C.double(bound), C.double(upper), cName))
}

func (API) SetObjSense(p unsafe.Pointer, sense int32) native.Retcode {
	return rc(C.COPT_SetObjSense(prob(p), C.int(sense)))
}

func (API) SetObjConst(p unsafe.Pointer, constant float64) native.Retcode {
	return rc(C.COPT_SetObjConst(prob(p), C.double(constant)))
}

func (API) SetColObj(p unsafe.Pointer, list []int32, obj []float64) native.Retcode {
	return rc(C.COPT_SetColObj(prob(p), C.int(len(list)), intPtr(list), dblPtr(obj)))
}

func (API) SetColType(p unsafe.Pointer, list []int32, types []byte) native.Retcode {
	return rc(C.COPT_SetColType(prob(p), C.int(len(list)), intPtr(list), charPtr(types)))
}

func (API) SetColLower(p unsafe.Pointer, list []int32, lower []float64) native.Retcode {
	return rc(C.COPT_SetColLower(prob(p), C.int(len(list)), intPtr(list), dblPtr(lower)))
}

func (API) SetColUpper(p unsafe.Pointer, list []int32, upper []float64) native.Retcode {
	return rc(C.COPT_SetColUpper(prob(p), C.int(len(list)), intPtr(list), dblPtr(upper)))
}

func (API) SetRowLower(p unsafe.Pointer, list []int32, lower []float64) native.Retcode {
	return rc(C.COPT_SetRowLower(prob(p), C.int(len(list)), intPtr(list), dblPtr(lower)))
}

func (API) SetRowUpper(p unsafe.Pointer, list []int32, upper []float64) native.Retcode {
	return rc(C.COPT_SetRowUpper(prob(p), C.int(len(list)), intPtr(list), dblPtr(upper)))
}

func (API) Read(p unsafe.Pointer, kind native.FileKind, path string) native.Retcode {
	cPath := C.CString(path)
	defer C.free(unsafe.Pointer(cPath))

	pp := prob(p)
	switch kind {
	case native.FileMPS:
		return rc(C.COPT_ReadMps(pp, cPath))
	case native.FileLP:
		return rc(C.COPT_ReadLp(pp, cPath))
	case native.FileSDPA:
		return rc(C.COPT_ReadSDPA(pp, cPath))
	case native.FileCBF:
		return rc(C.COPT_ReadCbf(pp, cPath))
	case native.FileBin:
		return rc(C.COPT_ReadBin(pp, cPath))
	case native.FileSol:
		return rc(C.COPT_ReadSol(pp, cPath))
	case native.FileBasis:
		return rc(C.COPT_ReadBasis(pp, cPath))
	case native.FileMst:
		return rc(C.COPT_ReadMst(pp, cPath))
	case native.FileParam:
		return rc(C.COPT_ReadParam(pp, cPath))
	default:
		return native.Invalid
	}
}

func (API) Write(p unsafe.Pointer, kind native.FileKind, path string) native.Retcode {
	cPath := C.CString(path)
	defer C.free(unsafe.Pointer(cPath))

	pp := prob(p)
	switch kind {
	case native.FileMPS:
		return rc(C.COPT_WriteMps(pp, cPath))
	case native.FileLP:
		return rc(C.COPT_WriteLp(pp, cPath))
	case native.FileCBF:
		return rc(C.COPT_WriteCbf(pp, cPath))
	case native.FileBin:
		return rc(C.COPT_WriteBin(pp, cPath))
	case native.FileSol:
		return rc(C.COPT_WriteSol(pp, cPath))
	case native.FileBasis:
		return rc(C.COPT_WriteBasis(pp, cPath))
	case native.FileMst:
		return rc(C.COPT_WriteMst(pp, cPath))
	case native.FileParam:
		return rc(C.COPT_WriteParam(pp, cPath))
	case native.FileIIS:
		return rc(C.COPT_WriteIIS(pp, cPath))
	case native.FileRelax:
		return rc(C.COPT_WriteRelax(pp, cPath))
	case native.FilePoolSol:
		return rc(C.COPT_WritePoolSol(pp, cPath))
	default:
		return native.Invalid
	}
}

func (API) ReadBlob(p unsafe.Pointer, blob []byte) native.Retcode {
	if len(blob) == 0 {
		return native.Invalid
	}
	cBlob := C.CBytes(blob)
	defer C.free(cBlob)

	return rc(C.COPT_ReadBlob(prob(p), cBlob, C.COPT_INT64(len(blob))))
}

func (API) WriteBlob(p unsafe.Pointer, compress bool) ([]byte, native.Retcode) {
	var (
		blob unsafe.Pointer
		n    C.COPT_INT64
	)
	try := C.int(0)
	if compress {
		try = 1
	}
	code := C.COPT_WriteBlob(prob(p), try, &blob, &n)
	if code != 0 {
		return nil, rc(code)
	}
	defer C.COPT_FreeBlob(&blob)

	return C.GoBytes(blob, C.int(n)), native.OK
}

func (API) AddMipStart(p unsafe.Pointer, list []int32, values []float64) native.Retcode {
	return rc(C.COPT_AddMipStart(prob(p), C.int(len(list)), intPtr(list), dblPtr(values)))
}

func (API) Solve(p unsafe.Pointer) native.Retcode { return rc(C.COPT_Solve(prob(p))) }

func (API) SolveLp(p unsafe.Pointer) native.Retcode { return rc(C.COPT_SolveLp(prob(p))) }

func (API) Interrupt(p unsafe.Pointer) native.Retcode { return rc(C.COPT_Interrupt(prob(p))) }

func (API) GetSolution(p unsafe.Pointer, values []float64) native.Retcode {
	return rc(C.COPT_GetSolution(prob(p), dblPtr(values)))
}

func (API) GetLpSolution(p unsafe.Pointer, values, slack, rowDual, redCost []float64) native.Retcode {
	return rc(C.COPT_GetLpSolution(prob(p), dblPtr(values), dblPtr(slack), dblPtr(rowDual), dblPtr(redCost)))
}

func (API) GetBasis(p unsafe.Pointer, colBasis, rowBasis []int32) native.Retcode {
	return rc(C.COPT_GetBasis(prob(p), intPtr(colBasis), intPtr(rowBasis)))
}

func (API) GetPoolObjVal(p unsafe.Pointer, index int32) (float64, native.Retcode) {
	var val C.double
	code := C.COPT_GetPoolObjVal(prob(p), C.int(index), &val)
	return float64(val), rc(code)
}

func (API) GetPoolSolution(p unsafe.Pointer, index int32, list []int32, values []float64) native.Retcode {
	return rc(C.COPT_GetPoolSolution(prob(p), C.int(index), C.int(len(list)), intPtr(list), dblPtr(values)))
}

// Parameter and attribute accessors share one shape: name in, scalar out.

type intGetter func(*C.copt_prob, *C.char, *C.int) C.int

type dblGetter func(*C.copt_prob, *C.char, *C.double) C.int

func getInt(fn intGetter, p unsafe.Pointer, name string, out *int32) native.Retcode {
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))

	var val C.int
	code := fn(prob(p), cName, &val)
	*out = int32(val)
	return rc(code)
}

func getDbl(fn dblGetter, p unsafe.Pointer, name string, out *float64) native.Retcode {
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))

	var val C.double
	code := fn(prob(p), cName, &val)
	*out = float64(val)
	return rc(code)
}

func (API) SetIntParam(p unsafe.Pointer, name string, value int32) native.Retcode {
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))

	return rc(C.COPT_SetIntParam(prob(p), cName, C.int(value)))
}

func (API) GetIntParam(p unsafe.Pointer, name string, out *int32) native.Retcode {
	return getInt(func(pp *C.copt_prob, n *C.char, v *C.int) C.int { return C.COPT_GetIntParam(pp, n, v) }, p, name, out)
}

func (API) GetIntParamDef(p unsafe.Pointer, name string, out *int32) native.Retcode {
	return getInt(func(pp *C.copt_prob, n *C.char, v *C.int) C.int { return C.COPT_GetIntParamDef(pp, n, v) }, p, name, out)
}

func (API) GetIntParamMin(p unsafe.Pointer, name string, out *int32) native.Retcode {
	return getInt(func(pp *C.copt_prob, n *C.char, v *C.int) C.int { return C.COPT_GetIntParamMin(pp, n, v) }, p, name, out)
}

func (API) GetIntParamMax(p unsafe.Pointer, name string, out *int32) native.Retcode {
	return getInt(func(pp *C.copt_prob, n *C.char, v *C.int) C.int { return C.COPT_GetIntParamMax(pp, n, v) }, p, name, out)
}

func (API) SetDblParam(p unsafe.Pointer, name string, value float64) native.Retcode {
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))

	return rc(C.COPT_SetDblParam(prob(p), cName, C.double(value)))
}

func (API) GetDblParam(p unsafe.Pointer, name string, out *float64) native.Retcode {
	return getDbl(func(pp *C.copt_prob, n *C.char, v *C.double) C.int { return C.COPT_GetDblParam(pp, n, v) }, p, name, out)
}

func (API) GetDblParamDef(p unsafe.Pointer, name string, out *float64) native.Retcode {
	return getDbl(func(pp *C.copt_prob, n *C.char, v *C.double) C.int { return C.COPT_GetDblParamDef(pp, n, v) }, p, name, out)
}

func (API) GetDblParamMin(p unsafe.Pointer, name string, out *float64) native.Retcode {
	return getDbl(func(pp *C.copt_prob, n *C.char, v *C.double) C.int { return C.COPT_GetDblParamMin(pp, n, v) }, p, name, out)
}

func (API) GetDblParamMax(p unsafe.Pointer, name string, out *float64) native.Retcode {
	return getDbl(func(pp *C.copt_prob, n *C.char, v *C.double) C.int { return C.COPT_GetDblParamMax(pp, n, v) }, p, name, out)
}

func (API) ResetParam(p unsafe.Pointer) native.Retcode { return rc(C.COPT_ResetParam(prob(p))) }

func (API) Reset(p unsafe.Pointer, clearAll bool) native.Retcode {
	all := C.int(0)
	if clearAll {
		all = 1
	}
	return rc(C.COPT_Reset(prob(p), all))
}

func (API) GetIntAttr(p unsafe.Pointer, name string, out *int32) native.Retcode {
	return getInt(func(pp *C.copt_prob, n *C.char, v *C.int) C.int { return C.COPT_GetIntAttr(pp, n, v) }, p, name, out)
}

func (API) GetDblAttr(p unsafe.Pointer, name string, out *float64) native.Retcode {
	return getDbl(func(pp *C.copt_prob, n *C.char, v *C.double) C.int { return C.COPT_GetDblAttr(pp, n, v) }, p, name, out)
}

func (API) SetLogFile(p unsafe.Pointer, path string) native.Retcode {
	cPath := C.CString(path)
	defer C.free(unsafe.Pointer(cPath))

	return rc(C.COPT_SetLogFile(prob(p), cPath))
}

func (API) SetLogCallback(p unsafe.Pointer, userdata uintptr) native.Retcode {
	return rc(C.gocopt_set_log_callback(prob(p), C.uintptr_t(userdata)))
}

func (API) SetCallback(p unsafe.Pointer, cbctx int32, userdata uintptr) native.Retcode {
	return rc(C.gocopt_set_callback(prob(p), C.int(cbctx), C.uintptr_t(userdata)))
}
