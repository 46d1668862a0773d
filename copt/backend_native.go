//go:build cgo && copt

package copt

import (
	"github.com/bartolsthoorn/gocopt/internal/native"
	"github.com/bartolsthoorn/gocopt/internal/native/coptc"
)

func defaultAPI() (native.API, error) {
	return coptc.New(), nil
}
