// SPDX-License-Identifier: GPL-2.0-or-later

package conlog

import (
	"log"
	"sync"
)

var (
	mu        sync.RWMutex
	p         = log.Printf
	developer bool
)

// SetPrintf replaces the sink all console lines are written to.
// A nil f restores the default log.Printf sink.
func SetPrintf(f func(string, ...any)) {
	mu.Lock()
	defer mu.Unlock()
	if f == nil {
		f = log.Printf
	}
	p = f
}

func SetDeveloper(v bool) {
	mu.Lock()
	defer mu.Unlock()
	developer = v
}

func Developer() bool {
	mu.RLock()
	defer mu.RUnlock()
	return developer
}

func Printf(format string, v ...any) {
	mu.RLock()
	f := p
	mu.RUnlock()
	f(format, v...)
}

// DPrintf only prints in developer mode.
func DPrintf(format string, v ...any) {
	if !Developer() {
		return
	}
	Printf(format, v...)
}
