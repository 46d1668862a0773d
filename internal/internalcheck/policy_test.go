package internalcheck

import (
	"fmt"
	"go/ast"
	"strings"
	"testing"

	"golang.org/x/tools/go/packages"
)

const modulePath = "github.com/bartolsthoorn/gocopt"

// libraryPackages loads every package of the module except commands.
func libraryPackages(t *testing.T, mode packages.LoadMode) []*packages.Package {
	t.Helper()
	pkgs, err := packages.Load(&packages.Config{Mode: mode | packages.NeedFiles}, modulePath+"/...")
	if err != nil {
		t.Fatalf("load packages: %v", err)
	}

	var lib []*packages.Package
	for _, pkg := range pkgs {
		// cgo-only packages have no files without the copt tag.
		if len(pkg.GoFiles) == 0 {
			continue
		}
		if len(pkg.Errors) > 0 {
			t.Fatalf("load %s: %v", pkg.PkgPath, pkg.Errors[0])
		}
		if strings.HasPrefix(pkg.PkgPath, modulePath+"/cmd/") {
			continue
		}
		lib = append(lib, pkg)
	}
	if len(lib) == 0 {
		t.Fatal("no library packages loaded")
	}
	return lib
}

// TestNoProcessOutput checks library code never writes to the process
// streams or exits; output goes through the log.Logger interface.
func TestNoProcessOutput(t *testing.T) {
	pkgs := libraryPackages(t, packages.NeedSyntax|packages.NeedTypesInfo|packages.NeedTypes|packages.NeedFiles|packages.NeedName)

	var findings []string
	for _, pkg := range pkgs {
		for _, file := range pkg.Syntax {
			ast.Inspect(file, func(n ast.Node) bool {
				call, ok := n.(*ast.CallExpr)
				if !ok {
					return true
				}
				selector, ok := call.Fun.(*ast.SelectorExpr)
				if !ok {
					return true
				}
				obj := pkg.TypesInfo.Uses[selector.Sel]
				if obj == nil || obj.Pkg() == nil {
					return true
				}

				if forbidden(obj.Pkg().Path(), obj.Name()) {
					pos := pkg.Fset.Position(call.Pos())
					findings = append(findings, fmt.Sprintf("%s: %s.%s in library code", pos, obj.Pkg().Name(), obj.Name()))
				}
				return true
			})
		}
	}

	if len(findings) > 0 {
		t.Fatalf("output policy violation:\n%s", strings.Join(findings, "\n"))
	}
}

func forbidden(pkgPath, name string) bool {
	switch pkgPath {
	case "fmt":
		switch name {
		case "Print", "Printf", "Println":
			return true
		}
	case "log":
		return true
	case "os":
		return name == "Exit"
	}
	return false
}

// TestLoggerBackends checks only the adapter package imports a concrete
// logging library.
func TestLoggerBackends(t *testing.T) {
	pkgs := libraryPackages(t, packages.NeedName|packages.NeedImports)

	var findings []string
	for _, pkg := range pkgs {
		if pkg.PkgPath == modulePath+"/internal/log/logrus" {
			continue
		}
		for path := range pkg.Imports {
			if path == "github.com/sirupsen/logrus" {
				findings = append(findings, fmt.Sprintf("%s imports %s", pkg.PkgPath, path))
			}
		}
	}

	if len(findings) > 0 {
		t.Fatalf("logger policy violation:\n%s", strings.Join(findings, "\n"))
	}
}
