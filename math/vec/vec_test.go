package vec

import (
	"testing"

	"github.com/chewxy/math32"
)

var (
	NULL = Vec3{}
)

func near(a, b float32) bool {
	return math32.Abs(a-b) < 1e-5
}

func TestLength(t *testing.T) {
	if NULL.Length() != 0 {
		t.Errorf("Null vector has not 0 length")
	}
	v := Vec3{2, 2, 1}
	if v.Length() != 3 {
		t.Errorf("%v Length is not 3", v)
	}
	v = Vec3{2, 1, 2}
	if v.Length() != 3 {
		t.Errorf("%v Length is not 3", v)
	}
	v = Vec3{1, 2, 2}
	if v.Length() != 3 {
		t.Errorf("%v Length is not 3", v)
	}
}

func TestSub(t *testing.T) {
	v := Vec3{1, 2, 3}
	got := Sub(v, v)
	if got != NULL {
		t.Errorf("Sub(%v,%v) = %v want %v", v, v, got, NULL)
	}
	v2 := Vec3{9, 7, 5}
	got = Sub(v2, v)
	want := Vec3{8, 5, 2}
	if got != want {
		t.Errorf("Sub(%v,%v) = %v want %v", v2, v, got, want)
	}
}

func TestScale(t *testing.T) {
	v := Vec3{1, 2, 3}
	got := v.Scale(2)
	want := Vec3{2, 4, 6}
	if got != want {
		t.Errorf("%v.Scale(2) = %v want %v", v, got, want)
	}
}

func TestNormalize(t *testing.T) {
	if got := NULL.Normalize(); got != NULL {
		t.Errorf("NULL.Normalize() = %v want %v", got, NULL)
	}
	v := Vec3{0, 3, 4}
	got := v.Normalize()
	if !near(got.Length(), 1) || !near(got.Y, 0.6) || !near(got.Z, 0.8) {
		t.Errorf("%v.Normalize() = %v", v, got)
	}
}

func TestDot(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, -5, 6}
	if got := Dot(a, b); got != 12 {
		t.Errorf("Dot(%v,%v) = %v want 12", a, b, got)
	}
}

func TestDirectionFromAngle(t *testing.T) {
	for _, tc := range []struct {
		rad  float32
		want Vec2
	}{
		{0, Vec2{1, 0}},
		{math32.Pi / 2, Vec2{0, 1}},
		{math32.Pi, Vec2{-1, 0}},
	} {
		got := DirectionFromAngle(tc.rad)
		if !near(got.X, tc.want.X) || !near(got.Y, tc.want.Y) {
			t.Errorf("DirectionFromAngle(%v) = %v want %v", tc.rad, got, tc.want)
		}
	}
}

func TestToAudio(t *testing.T) {
	got := ToAudio(Vec3{1, 2, 3})
	if want := (Vec3{1, 2, -3}); got != want {
		t.Errorf("ToAudio = %v want %v", got, want)
	}
	look := LookToAudio(Vec2{0.6, 0.8})
	if want := (Vec3{0.6, 0, -0.8}); look != want {
		t.Errorf("LookToAudio = %v want %v", look, want)
	}
}
