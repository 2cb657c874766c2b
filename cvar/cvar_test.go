// SPDX-License-Identifier: GPL-2.0-or-later

package cvar

import (
	"testing"

	"m59sound/cmd"
)

func TestRegister(t *testing.T) {
	cv := MustRegister("test_register", "2.5", ARCHIVE)
	if cv.Value() != 2.5 || cv.String() != "2.5" || !cv.Archive() {
		t.Errorf("got %v %q %v", cv.Value(), cv.String(), cv.Archive())
	}
	if _, err := Register("TEST_register", "1", NONE); err == nil {
		t.Errorf("Register of a duplicate name succeeded")
	}
	if got, ok := Get("Test_Register"); !ok || got != cv {
		t.Errorf("Get(Test_Register)=%v,%v", got, ok)
	}
	if got, err := GetByID(cv.ID()); err != nil || got != cv {
		t.Errorf("GetByID(%d)=%v,%v", cv.ID(), got, err)
	}
	if _, err := GetByID(-1); err == nil {
		t.Errorf("GetByID(-1) succeeded")
	}
}

func TestCallback(t *testing.T) {
	cv := MustRegister("test_callback", "0", NONE)
	var seen []float32
	cv.SetCallback(func(c *Cvar) { seen = append(seen, c.Value()) })
	cv.SetValue(3)
	cv.SetValue(0.5)
	cv.Toggle()
	cv.Reset()
	want := []float32{3, 0.5, 1, 0}
	if len(seen) != len(want) {
		t.Fatalf("callbacks %v, want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("callback %d got %v, want %v", i, seen[i], want[i])
		}
	}
	if cv.String() != "0" || cv.Bool() {
		t.Errorf("after Reset got %q", cv.String())
	}
}

func TestReadOnly(t *testing.T) {
	cv := MustRegister("test_rom", "1", ROM)
	cv.SetByString("0")
	if cv.String() != "1" {
		t.Errorf("ROM cvar changed to %q", cv.String())
	}
}

func TestCommands(t *testing.T) {
	cv := MustRegister("test_commands", "1", NONE)
	for _, tc := range []struct {
		line string
		want string
	}{
		{"inc test_commands", "2"},
		{"inc test_commands 0.5", "2.5"},
		{"set test_commands 7", "7"},
		{"toggle test_commands", "1"},
		{"cycle test_commands 1 4 9", "4"},
		{"cycle test_commands 1 4 9", "9"},
		{"cycle test_commands 1 4 9", "1"},
		{"reset test_commands", "1"},
	} {
		if ok, err := cmd.Execute(cmd.Parse(tc.line)); !ok || err != nil {
			t.Fatalf("Execute(%q)=%v,%v", tc.line, ok, err)
		}
		if cv.String() != tc.want {
			t.Errorf("after %q got %q, want %q", tc.line, cv.String(), tc.want)
		}
	}

	if ok, _ := Execute(cmd.Parse("test_commands 5")); !ok || cv.String() != "5" {
		t.Errorf("Execute(test_commands 5) got %v %q", ok, cv.String())
	}
	if ok, _ := Execute(cmd.Parse("no_such_cvar 5")); ok {
		t.Errorf("Execute of an unknown cvar succeeded")
	}

	cmd.Execute(cmd.Parse("set test_user_defined 3"))
	if cv, ok := Get("test_user_defined"); !ok || !cv.UserDefined() || cv.Value() != 3 {
		t.Errorf("set did not create a user cvar")
	}
}
