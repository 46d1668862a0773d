// Package internalcheck holds policy tests over the library packages.
//
// The tests load the module with golang.org/x/tools/go/packages and inspect
// syntax and imports. Nothing in here is meant to be imported.
package internalcheck
