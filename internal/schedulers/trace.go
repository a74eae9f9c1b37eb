package schedulers

import (
	"log"
	"sync/atomic"
)

var tracing atomic.Bool

// SetTrace turns per-process scheduling logs on or off.
func SetTrace(on bool) {
	tracing.Store(on)
}

func trace(v ...interface{}) {
	if tracing.Load() {
		log.Println(v...)
	}
}
