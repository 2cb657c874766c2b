// SPDX-License-Identifier: GPL-2.0-or-later

package snd

import (
	"github.com/chewxy/math32"

	"m59sound/math"
	"m59sound/math/vec"
)

const (
	// share of the base volume for sounds emitted by the listener itself
	selfOriginScale = 0.7
	// share of the base volume directly behind the listener
	rearScale = 0.4
	// degrees off the look direction where the rear attenuation begins
	reductionAngle = 30.0
	// share of the base volume at exactly 90 degrees
	rightAngleScale = 0.8
	// full width in degrees of the cone around 90 degrees
	rightAngleCone = 180.0
	// below this distance the source counts as being at the listener
	nearDistance = 0.001
)

// Attenuate returns the volume of a sound at soundPos as perceived by a
// listener at listenerPos looking along the unit vector listenerDir.
// Distance falloff is left to the backend, only the direction matters here.
func Attenuate(listenerPos, listenerDir vec.Vec3, selfOrigin bool, soundPos vec.Vec3, baseVolume float32) float32 {
	if selfOrigin {
		return baseVolume * selfOriginScale
	}

	toSound := vec.Sub(soundPos, listenerPos)
	if toSound.Length() <= nearDistance {
		return baseVolume
	}
	toSound = toSound.Normalize()

	dot := math.Clamp(-1, vec.Dot(toSound, listenerDir), 1)
	angle := math.FoldAngle(math.Degrees(math32.Acos(dot)))

	volume := baseVolume

	if angle > reductionAngle {
		progress := (angle - reductionAngle) / (180 - reductionAngle)
		volume *= 1 - (1-rearScale)*progress
	}

	halfCone := float32(rightAngleCone / 2)
	if angle >= 90-halfCone && angle <= 90+halfCone {
		fade := 1 - math32.Abs(angle-90)/halfCone
		volume *= 1 - (1-rightAngleScale)*fade*fade*fade
	}

	return volume
}
