// SPDX-License-Identifier: GPL-2.0-or-later

package math

import "math"

// AngleMod32 changes an angle to be within 0-360 degrees
func AngleMod32(a float32) float32 {
	return float32(AngleMod(float64(a)))
}

// AngleMod changes an angle to be within 0-360 degrees
func AngleMod(a float64) float64 {
	return a - math.Floor(a/360)*360
}

// Degrees converts radians to degrees
func Degrees(rad float32) float32 {
	return rad * (180 / math.Pi)
}

// FoldAngle maps an angle in degrees to its unsigned deviation within 0-180.
func FoldAngle(a float32) float32 {
	a = AngleMod32(a)
	if a > 180 {
		return 360 - a
	}
	return a
}

// Radians converts degrees to radians
func Radians(deg float32) float32 {
	return deg * (math.Pi / 180)
}
