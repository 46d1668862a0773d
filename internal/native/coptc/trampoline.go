//go:build cgo && copt

package coptc

/*
#include <stdlib.h>
#include <string.h>
#include "copt.h"
*/
import "C"

import (
	"unsafe"

	"github.com/bartolsthoorn/gocopt/internal/bridge"
)

//export goCoptLog
func goCoptLog(msg *C.char, userdata unsafe.Pointer) {
	if msg == nil {
		return
	}
	b := C.GoBytes(unsafe.Pointer(msg), C.int(C.strlen(msg)))
	bridge.Log(uintptr(userdata), b)
}

//export goCoptTerminate
func goCoptTerminate(prob *C.copt_prob, cbdata unsafe.Pointer, cbctx C.int, userdata unsafe.Pointer) C.int {
	ret := bridge.Terminate(uintptr(userdata), func() {
		C.COPT_Interrupt(prob)
	})
	return C.int(ret)
}
