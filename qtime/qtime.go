// SPDX-License-Identifier: GPL-2.0-or-later

// Package qtime is the client clock.
package qtime

import (
	"time"
)

var (
	startTime = time.Now()
)

// QTime returns the time passed since the client started.
func QTime() time.Duration {
	return time.Since(startTime)
}
