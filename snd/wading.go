// SPDX-License-Identifier: GPL-2.0-or-later

package snd

import (
	"time"

	"m59sound/math/vec"
)

// minimal time between two wading sounds per depth class
const wadingDelay = 500 * time.Millisecond

type wading struct {
	played  bool
	last    time.Duration
	lastPos vec.Vec3
	hasPos  bool
}

// wade plays the wading sound of the room when the listener moved below the
// surface of a water sector. pos is in scene space.
func (s *SndSys) wade(pos vec.Vec3) {
	moved := !s.wading.hasPos || s.wading.lastPos != pos
	s.wading.lastPos = pos
	s.wading.hasPos = true
	if !moved {
		return
	}
	w, ok := s.scene.(Waters)
	if !ok {
		return
	}
	floor, depth, ok := w.Water(pos)
	if !ok || depth <= 0 || pos.Y >= floor {
		return
	}
	now := s.now()
	if s.wading.played && now-s.wading.last <= time.Duration(depth)*wadingDelay {
		return
	}
	res := w.WadingSound()
	if res == "" {
		return
	}
	s.start(PlaySound{Resource: res})
	s.wading.played = true
	s.wading.last = now
}
