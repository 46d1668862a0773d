//go:build !cgo || !copt

package copt

import "github.com/bartolsthoorn/gocopt/internal/native"

func defaultAPI() (native.API, error) {
	return nil, ErrNotBuilt
}
