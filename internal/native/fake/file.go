package fake

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"unsafe"

	"gopkg.in/yaml.v3"

	"github.com/bartolsthoorn/gocopt/internal/native"
)

// Every file the fake writes is a YAML document, whatever its kind. Model kinds
// (MPS, LP, SDPA, CBF, Bin) share one layout so a model written as .lp can be
// read back as .mps.

type columnDoc struct {
	Name  string  `yaml:"name,omitempty"`
	Type  string  `yaml:"type"`
	Obj   float64 `yaml:"obj"`
	Lower float64 `yaml:"lower"`
	Upper float64 `yaml:"upper"`
}

type rowDoc struct {
	Name  string    `yaml:"name,omitempty"`
	Sense string    `yaml:"sense"`
	Lower float64   `yaml:"lower"`
	Upper float64   `yaml:"upper"`
	Cols  []int32   `yaml:"cols,flow"`
	Elems []float64 `yaml:"elems,flow"`
}

type modelDoc struct {
	Sense    int32       `yaml:"sense"`
	ObjConst float64     `yaml:"obj_const,omitempty"`
	Columns  []columnDoc `yaml:"columns"`
	Rows     []rowDoc    `yaml:"rows"`
}

type paramDoc struct {
	Int    map[string]int32   `yaml:"int,omitempty"`
	Double map[string]float64 `yaml:"double,omitempty"`
}

type valuesDoc struct {
	Objective float64   `yaml:"objective,omitempty"`
	Values    []float64 `yaml:"values,flow"`
}

type basisDoc struct {
	Cols []int32 `yaml:"cols,flow"`
	Rows []int32 `yaml:"rows,flow"`
}

type poolDoc struct {
	Solutions []valuesDoc `yaml:"solutions"`
}

func isModelKind(kind native.FileKind) bool {
	switch kind {
	case native.FileMPS, native.FileLP, native.FileSDPA, native.FileCBF, native.FileBin:
		return true
	}
	return false
}

func (pr *problem) modelDoc() modelDoc {
	doc := modelDoc{Sense: pr.objSense, ObjConst: pr.objConst}
	for _, c := range pr.cols {
		doc.Columns = append(doc.Columns, columnDoc{
			Name: c.Name, Type: string(c.Type), Obj: c.Obj, Lower: c.Lower, Upper: c.Upper,
		})
	}
	for _, r := range pr.rows {
		doc.Rows = append(doc.Rows, rowDoc{
			Name: r.Name, Sense: string(r.Sense), Lower: r.Lower, Upper: r.Upper, Cols: r.Cols, Elems: r.Elems,
		})
	}
	return doc
}

func (d modelDoc) problem() (Problem, error) {
	p := Problem{ObjSense: d.Sense, ObjConst: d.ObjConst}
	for i, c := range d.Columns {
		if len(c.Type) != 1 || !validType(c.Type[0]) {
			return Problem{}, fmt.Errorf("column %d: invalid type %q", i, c.Type)
		}
		p.Cols = append(p.Cols, Column{Name: c.Name, Type: c.Type[0], Obj: c.Obj, Lower: c.Lower, Upper: c.Upper})
	}
	for i, r := range d.Rows {
		if len(r.Sense) != 1 || !validSense(r.Sense[0]) {
			return Problem{}, fmt.Errorf("row %d: invalid sense %q", i, r.Sense)
		}
		if len(r.Cols) != len(r.Elems) {
			return Problem{}, fmt.Errorf("row %d: %d columns and %d elements", i, len(r.Cols), len(r.Elems))
		}
		for _, c := range r.Cols {
			if c < 0 || int(c) >= len(p.Cols) {
				return Problem{}, fmt.Errorf("row %d: column %d out of range", i, c)
			}
		}
		p.Rows = append(p.Rows, Row{Name: r.Name, Sense: r.Sense[0], Lower: r.Lower, Upper: r.Upper, Cols: r.Cols, Elems: r.Elems})
	}
	return p, nil
}

func (a *API) Read(p unsafe.Pointer, kind native.FileKind, path string) native.Retcode {
	return a.withProb("Read", p, func(pr *problem) native.Retcode {
		if !kind.CanRead() {
			return native.Invalid
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return native.File
		}
		if err := pr.load(kind, data); err != nil {
			return native.File
		}
		return native.OK
	})
}

func (pr *problem) load(kind native.FileKind, data []byte) error {
	switch {
	case isModelKind(kind):
		var doc modelDoc
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return err
		}
		mp, err := doc.problem()
		if err != nil {
			return err
		}
		pr.restore(mp)

	case kind == native.FileParam:
		var doc paramDoc
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return err
		}
		for k, v := range doc.Int {
			pr.intParams[k] = v
		}
		for k, v := range doc.Double {
			pr.dblParams[k] = v
		}

	case kind == native.FileSol, kind == native.FileMst:
		var doc valuesDoc
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return err
		}
		if len(doc.Values) != len(pr.cols) {
			return errors.New("value count does not match columns")
		}
		start := make(map[int32]float64, len(doc.Values))
		for i, v := range doc.Values {
			start[int32(i)] = v
		}
		pr.mipStarts = append(pr.mipStarts, start)

	case kind == native.FileBasis:
		var doc basisDoc
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return err
		}
		if len(doc.Cols) != len(pr.cols) || len(doc.Rows) != len(pr.rows) {
			return errors.New("basis does not match problem dimensions")
		}

	default:
		return fs.ErrInvalid
	}
	return nil
}

func (a *API) Write(p unsafe.Pointer, kind native.FileKind, path string) native.Retcode {
	return a.withProb("Write", p, func(pr *problem) native.Retcode {
		if !kind.CanWrite() {
			return native.Invalid
		}
		doc, code := pr.dump(kind)
		if code != native.OK {
			return code
		}
		data, err := yaml.Marshal(doc)
		if err != nil {
			return native.Internal
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return native.File
		}
		return native.OK
	})
}

func (pr *problem) dump(kind native.FileKind) (any, native.Retcode) {
	res := pr.result
	switch {
	case isModelKind(kind):
		return pr.modelDoc(), native.OK
	case kind == native.FileParam:
		return paramDoc{Int: pr.intParams, Double: pr.dblParams}, native.OK
	case kind == native.FileSol, kind == native.FileMst:
		if res == nil || !res.hasSol {
			return nil, native.Invalid
		}
		return valuesDoc{Objective: res.obj, Values: res.values}, native.OK
	case kind == native.FileBasis:
		if res == nil || !res.hasSol || res.mip {
			return nil, native.Invalid
		}
		return basisDoc{Cols: res.colBasis, Rows: res.rowBasis}, native.OK
	case kind == native.FilePoolSol:
		if res == nil || len(res.pool) == 0 {
			return nil, native.Invalid
		}
		var doc poolDoc
		for _, s := range res.pool {
			doc.Solutions = append(doc.Solutions, valuesDoc{Objective: s.obj, Values: s.values})
		}
		return doc, native.OK
	}
	// No IIS or feasibility relaxation is ever computed.
	return nil, native.Invalid
}

func (a *API) ReadBlob(p unsafe.Pointer, blob []byte) native.Retcode {
	return a.withProb("ReadBlob", p, func(pr *problem) native.Retcode {
		if len(blob) == 0 {
			return native.Invalid
		}
		if err := pr.load(native.FileBin, blob); err != nil {
			return native.Invalid
		}
		return native.OK
	})
}

func (a *API) WriteBlob(p unsafe.Pointer, compress bool) ([]byte, native.Retcode) {
	var blob []byte
	code := a.withProb("WriteBlob", p, func(pr *problem) native.Retcode {
		data, err := yaml.Marshal(pr.modelDoc())
		if err != nil {
			return native.Internal
		}
		blob = data
		return native.OK
	})
	return blob, code
}
