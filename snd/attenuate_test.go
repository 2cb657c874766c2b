// SPDX-License-Identifier: GPL-2.0-or-later

package snd

import (
	"testing"

	"github.com/chewxy/math32"

	"m59sound/math/vec"
)

var (
	origin  = vec.Vec3{}
	forward = vec.Vec3{X: 1}
)

// at returns a point at distance 10 and angle deg off forward.
func at(deg float32) vec.Vec3 {
	s, c := math32.Sincos(deg * math32.Pi / 180)
	return vec.Vec3{X: 10 * c, Z: 10 * s}
}

func near(a, b float32) bool {
	return math32.Abs(a-b) < 1e-4
}

func TestAttenuateSelfOrigin(t *testing.T) {
	for _, p := range []vec.Vec3{origin, at(0), at(90), at(180), {X: 1000, Y: -3, Z: 7}} {
		got := Attenuate(origin, forward, true, p, 0.5)
		if got != 0.5*selfOriginScale {
			t.Errorf("Attenuate(self, %v) = %v want %v", p, got, 0.5*selfOriginScale)
		}
	}
}

func TestAttenuateCoincident(t *testing.T) {
	l := vec.Vec3{X: 3, Y: 4, Z: 5}
	for _, p := range []vec.Vec3{l, {X: 3.0005, Y: 4, Z: 5}, {X: 3, Y: 4, Z: 4.9992}} {
		got := Attenuate(l, forward, false, p, 0.8)
		if got != 0.8 {
			t.Errorf("Attenuate(%v, %v) = %v want 0.8", l, p, got)
		}
	}
}

func TestAttenuateAhead(t *testing.T) {
	got := Attenuate(origin, forward, false, at(0), 0.9)
	if !near(got, 0.9) {
		t.Errorf("Attenuate(ahead) = %v want 0.9", got)
	}
}

func TestAttenuateBehind(t *testing.T) {
	got := Attenuate(origin, forward, false, at(180), 1)
	if !near(got, rearScale) {
		t.Errorf("Attenuate(behind) = %v want %v", got, rearScale)
	}
}

func TestAttenuateRightAngle(t *testing.T) {
	// rear: progress 60/150 gives 0.76, side: fade 1 gives 0.8
	want := float32(0.76 * 0.8)
	for _, deg := range []float32{90, -90} {
		got := Attenuate(origin, forward, false, at(deg), 1)
		if !near(got, want) {
			t.Errorf("Attenuate(%v deg) = %v want %v", deg, got, want)
		}
	}
}

func TestAttenuateCubicSide(t *testing.T) {
	// at 30 degrees only the side correction applies: fade 1/3
	fade := float32(1.0 / 3)
	want := 1 - 0.2*fade*fade*fade
	got := Attenuate(origin, forward, false, at(30), 1)
	if !near(got, want) {
		t.Errorf("Attenuate(30 deg) = %v want %v", got, want)
	}
	// at 120 degrees rear 0.64, side fade 2/3
	fade = 2.0 / 3
	want = 0.64 * (1 - 0.2*fade*fade*fade)
	got = Attenuate(origin, forward, false, at(120), 1)
	if !near(got, want) {
		t.Errorf("Attenuate(120 deg) = %v want %v", got, want)
	}
}

func TestAttenuateScalesBase(t *testing.T) {
	full := Attenuate(origin, forward, false, at(135), 1)
	half := Attenuate(origin, forward, false, at(135), 0.5)
	if !near(half, full/2) {
		t.Errorf("Attenuate base 0.5 = %v want %v", half, full/2)
	}
}

func TestAttenuateSymmetric(t *testing.T) {
	for _, deg := range []float32{10, 45, 100, 170} {
		l := Attenuate(origin, forward, false, at(deg), 1)
		r := Attenuate(origin, forward, false, at(-deg), 1)
		if !near(l, r) {
			t.Errorf("Attenuate(%v) = %v but Attenuate(%v) = %v", deg, l, -deg, r)
		}
	}
}

func TestAttenuateNeverNaN(t *testing.T) {
	// float rounding can push the dot product slightly past 1
	look := vec.Vec3{X: 0.6, Z: 0.8}
	for _, p := range []vec.Vec3{{X: 6, Z: 8}, {X: -6, Z: -8}, {X: 0.3, Z: 0.4}} {
		got := Attenuate(origin, look, false, p, 1)
		if math32.IsNaN(got) || got < 0 || got > 1 {
			t.Errorf("Attenuate(%v) = %v", p, got)
		}
	}
}
