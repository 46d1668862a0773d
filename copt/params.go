package copt

//go:generate go tool stringer -type=IntParam,DoubleParam -trimprefix=Param -output=params_string.go

// IntParam names an integer solver parameter. String returns the native name.
type IntParam int

// DoubleParam names a floating point solver parameter. String returns the native name.
type DoubleParam int

// Integer parameters.
const (
	// ParamLogging enables solver log output.
	ParamLogging IntParam = iota

	// ParamLogToConsole enables log output on stdout.
	ParamLogToConsole

	ParamPresolve
	ParamScaling
	ParamDualize

	// ParamLpMethod selects simplex, barrier, crossover or concurrent solving.
	ParamLpMethod

	ParamGPUMode
	ParamGPUDevice
	ParamReqFarkasRay
	ParamDualPrice
	ParamDualPerturb
	ParamCutLevel
	ParamRootCutLevel
	ParamNodeCutRounds
	ParamHeurLevel
	ParamRoundingHeurLevel
	ParamDivingHeurLevel
	ParamFAPHeurLevel
	ParamSubMipHeurLevel
	ParamStrongBranching
	ParamConflictAnalysis

	// ParamNodeLimit bounds the number of branch-and-bound nodes.
	ParamNodeLimit

	ParamMipTasks
	ParamBarHomogeneous
	ParamBarOrder
	ParamBarStart
	ParamBarIterLimit

	// ParamThreads is the number of threads used, -1 picks automatically.
	ParamThreads

	ParamBarThreads
	ParamSimplexThreads
	ParamCrossoverThreads
	ParamCrossover
	ParamSDPMethod
	ParamIISMethod
	ParamFeasRelaxMode
	ParamMipStartMode
	ParamMipStartNodeLimit
	ParamTuneMethod
	ParamTuneMode
	ParamTuneMeasure
	ParamTunePermutes
	ParamTuneOutputLevel
	ParamLazyConstraints
)

// Double parameters.
const (
	// ParamTimeLimit is the solve time limit in seconds.
	ParamTimeLimit DoubleParam = iota

	ParamSolTimeLimit
	ParamMatrixTol

	// ParamFeasTol is the primal feasibility tolerance.
	ParamFeasTol

	ParamDualTol

	// ParamIntTol is the integrality tolerance.
	ParamIntTol

	ParamPDLPTol

	// ParamRelGap is the relative MIP gap at which a solve stops.
	ParamRelGap

	// ParamAbsGap is the absolute MIP gap at which a solve stops.
	ParamAbsGap

	ParamTuneTimeLimit
	ParamTuneTargetTime
	ParamTuneTargetRelGap
)

var (
	intParamsByName    = indexNames(ParamLogging, ParamLazyConstraints)
	doubleParamsByName = indexNames(ParamTimeLimit, ParamTuneTargetRelGap)
)

// IntParams returns every integer parameter.
func IntParams() []IntParam { return enumerate(ParamLogging, ParamLazyConstraints) }

// DoubleParams returns every double parameter.
func DoubleParams() []DoubleParam { return enumerate(ParamTimeLimit, ParamTuneTargetRelGap) }

// LookupIntParam returns the integer parameter with the given native name.
func LookupIntParam(name string) (IntParam, bool) {
	p, ok := intParamsByName[name]
	return p, ok
}

// LookupDoubleParam returns the double parameter with the given native name.
func LookupDoubleParam(name string) (DoubleParam, bool) {
	p, ok := doubleParamsByName[name]
	return p, ok
}

type tag interface {
	~int
	String() string
}

func enumerate[T tag](first, last T) []T {
	out := make([]T, 0, int(last-first)+1)
	for t := first; t <= last; t++ {
		out = append(out, t)
	}
	return out
}

func indexNames[T tag](first, last T) map[string]T {
	m := make(map[string]T, int(last-first)+1)
	for _, t := range enumerate(first, last) {
		m[t.String()] = t
	}
	return m
}
