// Package native declares the raw COPT entry points used by gocopt.
//
// The API interface mirrors the C ABI one call per method: handles are opaque
// pointers, every call returns a Retcode and array arguments are parallel
// slices whose length is the element count. Implementations perform no
// validation beyond what the native library does; callers are expected to have
// checked names and dimensions already.
package native

import "unsafe"

// Retcode is the integer status returned by every native call.
type Retcode int32

// Native return codes.
const (
	OK        Retcode = 0
	Memory    Retcode = 1
	File      Retcode = 2
	Invalid   Retcode = 3
	License   Retcode = 4
	Internal  Retcode = 5
	Thread    Retcode = 6
	Server    Retcode = 7
	NonConvex Retcode = 8
)

// String returns the symbolic name of the return code.
func (r Retcode) String() string {
	switch r {
	case OK:
		return "OK"
	case Memory:
		return "MEMORY"
	case File:
		return "FILE"
	case Invalid:
		return "INVALID"
	case License:
		return "LICENSE"
	case Internal:
		return "INTERNAL"
	case Thread:
		return "THREAD"
	case Server:
		return "SERVER"
	case NonConvex:
		return "NONCONVEX"
	default:
		return "UNKNOWN"
	}
}

// Terminate callback return values and callback context kinds.
const (
	TerminateContinue int32 = 0
	TerminateStop     int32 = 10

	ContextMIPRelax int32 = 0x1
	ContextMIPSol   int32 = 0x2
	ContextMIPNode  int32 = 0x4
)

// Column types, row senses and objective senses as the C API spells them.
const (
	ColContinuous byte = 'C'
	ColBinary     byte = 'B'
	ColInteger    byte = 'I'

	RowEqual   byte = 'E'
	RowLess    byte = 'L'
	RowGreater byte = 'G'
	RowRange   byte = 'R'
	RowFree    byte = 'N'

	Minimize int32 = 1
	Maximize int32 = -1
)

// Infinity is the value the native library treats as unbounded.
const Infinity = 1e30

// FileKind selects one of the native file readers or writers.
type FileKind int

// Supported file kinds.
const (
	FileMPS FileKind = iota
	FileLP
	FileSDPA
	FileCBF
	FileBin
	FileSol
	FileBasis
	FileMst
	FileParam
	FileIIS
	FileRelax
	FilePoolSol
)

var fileKindNames = [...]string{
	FileMPS:     "mps",
	FileLP:      "lp",
	FileSDPA:    "sdpa",
	FileCBF:     "cbf",
	FileBin:     "bin",
	FileSol:     "sol",
	FileBasis:   "bas",
	FileMst:     "mst",
	FileParam:   "par",
	FileIIS:     "iis",
	FileRelax:   "relax",
	FilePoolSol: "poolsol",
}

// String returns the conventional file extension of the kind, without the dot.
func (k FileKind) String() string {
	if k >= 0 && int(k) < len(fileKindNames) {
		return fileKindNames[k]
	}
	return "unknown"
}

// CanRead reports whether the native library has a reader for the kind.
func (k FileKind) CanRead() bool {
	switch k {
	case FileMPS, FileLP, FileSDPA, FileCBF, FileBin, FileSol, FileBasis, FileMst, FileParam:
		return true
	}
	return false
}

// CanWrite reports whether the native library has a writer for the kind.
func (k FileKind) CanWrite() bool {
	switch k {
	case FileMPS, FileLP, FileCBF, FileBin, FileSol, FileBasis, FileMst, FileParam, FileIIS, FileRelax, FilePoolSol:
		return true
	}
	return false
}

// API is the native COPT surface.
type API interface {
	GetBanner() (string, Retcode)
	GetRetcodeMsg(code Retcode) (string, Retcode)

	CreateEnvConfig() (unsafe.Pointer, Retcode)
	SetEnvConfig(config unsafe.Pointer, name, value string) Retcode
	DeleteEnvConfig(config unsafe.Pointer) Retcode

	CreateEnv() (unsafe.Pointer, Retcode)
	CreateEnvWithPath(licDir string) (unsafe.Pointer, Retcode)
	CreateEnvWithConfig(config unsafe.Pointer) (unsafe.Pointer, Retcode)
	DeleteEnv(env unsafe.Pointer) Retcode
	GetLicenseMsg(env unsafe.Pointer) (string, Retcode)

	CreateProb(env unsafe.Pointer) (unsafe.Pointer, Retcode)
	CreateCopy(prob unsafe.Pointer) (unsafe.Pointer, Retcode)
	DeleteProb(prob unsafe.Pointer) Retcode

	AddCol(prob unsafe.Pointer, obj float64, rows []int32, elems []float64, colType byte, lower, upper float64, name string) Retcode
	AddRow(prob unsafe.Pointer, cols []int32, elems []float64, sense byte, bound, upper float64, name string) Retcode

	SetObjSense(prob unsafe.Pointer, sense int32) Retcode
	SetObjConst(prob unsafe.Pointer, constant float64) Retcode
	SetColObj(prob unsafe.Pointer, list []int32, obj []float64) Retcode
	SetColType(prob unsafe.Pointer, list []int32, types []byte) Retcode
	SetColLower(prob unsafe.Pointer, list []int32, lower []float64) Retcode
	SetColUpper(prob unsafe.Pointer, list []int32, upper []float64) Retcode
	SetRowLower(prob unsafe.Pointer, list []int32, lower []float64) Retcode
	SetRowUpper(prob unsafe.Pointer, list []int32, upper []float64) Retcode

	Read(prob unsafe.Pointer, kind FileKind, path string) Retcode
	Write(prob unsafe.Pointer, kind FileKind, path string) Retcode
	ReadBlob(prob unsafe.Pointer, blob []byte) Retcode
	WriteBlob(prob unsafe.Pointer, compress bool) ([]byte, Retcode)

	AddMipStart(prob unsafe.Pointer, list []int32, values []float64) Retcode
	Solve(prob unsafe.Pointer) Retcode
	SolveLp(prob unsafe.Pointer) Retcode
	Interrupt(prob unsafe.Pointer) Retcode

	// Result buffers may be nil when the caller is not interested in them.
	GetSolution(prob unsafe.Pointer, values []float64) Retcode
	GetLpSolution(prob unsafe.Pointer, values, slack, rowDual, redCost []float64) Retcode
	GetBasis(prob unsafe.Pointer, colBasis, rowBasis []int32) Retcode
	GetPoolObjVal(prob unsafe.Pointer, index int32) (float64, Retcode)
	GetPoolSolution(prob unsafe.Pointer, index int32, list []int32, values []float64) Retcode

	SetIntParam(prob unsafe.Pointer, name string, value int32) Retcode
	GetIntParam(prob unsafe.Pointer, name string, out *int32) Retcode
	GetIntParamDef(prob unsafe.Pointer, name string, out *int32) Retcode
	GetIntParamMin(prob unsafe.Pointer, name string, out *int32) Retcode
	GetIntParamMax(prob unsafe.Pointer, name string, out *int32) Retcode

	SetDblParam(prob unsafe.Pointer, name string, value float64) Retcode
	GetDblParam(prob unsafe.Pointer, name string, out *float64) Retcode
	GetDblParamDef(prob unsafe.Pointer, name string, out *float64) Retcode
	GetDblParamMin(prob unsafe.Pointer, name string, out *float64) Retcode
	GetDblParamMax(prob unsafe.Pointer, name string, out *float64) Retcode

	ResetParam(prob unsafe.Pointer) Retcode
	Reset(prob unsafe.Pointer, clearAll bool) Retcode

	GetIntAttr(prob unsafe.Pointer, name string, out *int32) Retcode
	GetDblAttr(prob unsafe.Pointer, name string, out *float64) Retcode

	SetLogFile(prob unsafe.Pointer, path string) Retcode

	// SetLogCallback installs the log trampoline with the given user data.
	// A zero userdata uninstalls it.
	SetLogCallback(prob unsafe.Pointer, userdata uintptr) Retcode
	// SetCallback installs the terminate trampoline for the callback context.
	// A zero userdata uninstalls it.
	SetCallback(prob unsafe.Pointer, cbctx int32, userdata uintptr) Retcode
}
