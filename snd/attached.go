// SPDX-License-Identifier: GPL-2.0-or-later

package snd

import (
	"strings"

	"m59sound/math/vec"
)

// AttachedSounds holds the voices following one scene object. Once a voice
// is added here it belongs to the list and its object.
type AttachedSounds struct {
	voices []Voice
}

func (a *AttachedSounds) Add(v Voice) {
	a.voices = append(a.voices, v)
}

func (a *AttachedSounds) Len() int {
	return len(a.voices)
}

// SetVolume assigns v to every voice in the list.
func (a *AttachedSounds) SetVolume(v float32) {
	for _, s := range a.voices {
		s.SetVolume(v)
	}
}

// SetPosition moves every voice in the list to pos in audio space.
func (a *AttachedSounds) SetPosition(pos vec.Vec3) {
	for _, s := range a.voices {
		s.SetPosition(pos)
	}
}

// remove stops and releases the first voice playing resource.
func (a *AttachedSounds) remove(resource string) bool {
	for i, s := range a.voices {
		if strings.EqualFold(s.Resource(), resource) {
			s.Stop()
			s.Release()
			a.voices = append(a.voices[:i], a.voices[i+1:]...)
			return true
		}
	}
	return false
}

// Reclaim releases every finished voice.
func (a *AttachedSounds) Reclaim() {
	a.voices = reclaim(a.voices, func(v Voice) Voice { return v })
}

// Clear stops and releases all voices, e.g. when the object leaves the scene.
func (a *AttachedSounds) Clear() {
	for _, s := range a.voices {
		s.Stop()
		s.Release()
	}
	a.voices = nil
}
