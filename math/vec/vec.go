// SPDX-License-Identifier: GPL-2.0-or-later

package vec

import (
	"github.com/chewxy/math32"
)

type Vec3 struct {
	X, Y, Z float32
}

type Vec2 struct {
	X, Y float32
}

// Length returns the length of the vector
func (v Vec3) Length() float32 {
	return math32.Sqrt(Dot(v, v))
}

// Sub returns a - b
func Sub(a, b Vec3) Vec3 {
	return Vec3{
		X: a.X - b.X,
		Y: a.Y - b.Y,
		Z: a.Z - b.Z,
	}
}

// Scale returns the vector multiplied by the skalar s
func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{
		X: v.X * s,
		Y: v.Y * s,
		Z: v.Z * s,
	}
}

// Normalize returns the normalized vector
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return Vec3{}
	}
	return v.Scale(1 / l)
}

// Dot returns a dot b
func Dot(a Vec3, b Vec3) float32 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// DirectionFromAngle returns the unit heading for an angle in radians,
// 0 pointing along +X and growing towards +Y.
func DirectionFromAngle(rad float32) Vec2 {
	s, c := math32.Sincos(rad)
	return Vec2{c, s}
}

// The audio space is the scene space with the Z axis negated. All
// conversions between the two go through ToAudio and LookToAudio.

// ToAudio converts a scene position into audio space.
func ToAudio(p Vec3) Vec3 {
	return Vec3{p.X, p.Y, -p.Z}
}

// LookToAudio converts a ground plane heading into an audio space look
// vector. Listeners never pitch, so Y is always 0.
func LookToAudio(d Vec2) Vec3 {
	return Vec3{d.X, 0, -d.Y}
}
