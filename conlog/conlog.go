// SPDX-License-Identifier: GPL-2.0-or-later

// Package conlog prints to the console. Until the driver installs its own
// printers everything goes to the standard logger.
package conlog

import (
	"log"
	"sync"
)

var (
	mu sync.Mutex
	p  = log.Printf
	sp = log.Printf
)

func SetPrintf(f func(string, ...interface{})) {
	p = f
}

func SetSafePrintf(f func(string, ...interface{})) {
	sp = f
}

func Printf(format string, v ...interface{}) {
	p(format, v...)
}

// SafePrintf may be called from any goroutine.
func SafePrintf(format string, v ...interface{}) {
	mu.Lock()
	defer mu.Unlock()
	sp(format, v...)
}
