package copt

//go:generate go tool stringer -type=IntAttr,DoubleAttr -trimprefix=Attr -output=attrs_string.go

// IntAttr names a read-only integer attribute of a model.
type IntAttr int

// DoubleAttr names a read-only floating point attribute of a model.
type DoubleAttr int

const (
	// Model dimensions.
	AttrCols IntAttr = iota
	AttrPSDCols
	AttrRows
	AttrElems
	AttrQElems
	AttrPSDElems
	AttrSymMats
	AttrBins
	AttrInts
	AttrSoss
	AttrCones
	AttrExpCones
	AttrQConstrs
	AttrPSDConstrs
	AttrLMIConstrs
	AttrIndicators
	AttrIISCols
	AttrIISRows
	AttrIISSOSs
	AttrIISIndicators

	// Solve state and statistics.
	AttrObjSense
	AttrLpStatus
	AttrMipStatus
	AttrSimplexIter
	AttrBarrierIter
	AttrNodeCnt
	AttrPoolSols
	AttrTuneResults

	// Availability flags, 1 when true.
	AttrHasLpSol
	AttrHasDualFarkas
	AttrHasPrimalRay
	AttrHasBasis
	AttrHasMipSol
	AttrHasQObj
	AttrHasPSDObj
	AttrHasIIS
	AttrHasFeasRelaxSol
	AttrIsMIP
	AttrIsMinIIS
)

const (
	AttrSolvingTime DoubleAttr = iota
	AttrObjConst
	AttrLpObjval
	AttrBestObj
	AttrBestBnd
	AttrBestGap
	AttrFeasRelaxObj
)

var (
	intAttrsByName    = indexNames(AttrCols, AttrIsMinIIS)
	doubleAttrsByName = indexNames(AttrSolvingTime, AttrFeasRelaxObj)
)

// IntAttrs returns every integer attribute.
func IntAttrs() []IntAttr { return enumerate(AttrCols, AttrIsMinIIS) }

// DoubleAttrs returns every double attribute.
func DoubleAttrs() []DoubleAttr { return enumerate(AttrSolvingTime, AttrFeasRelaxObj) }

// LookupIntAttr returns the integer attribute with the given native name.
func LookupIntAttr(name string) (IntAttr, bool) {
	a, ok := intAttrsByName[name]
	return a, ok
}

// LookupDoubleAttr returns the double attribute with the given native name.
func LookupDoubleAttr(name string) (DoubleAttr, bool) {
	a, ok := doubleAttrsByName[name]
	return a, ok
}
