// SPDX-License-Identifier: GPL-2.0-or-later

package cmd

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	for _, tc := range []struct {
		in     string
		wantF  string
		wantAS string
		wantA  []QArg
	}{
		{
			in:     `play door.ogg`,
			wantF:  `play door.ogg`,
			wantAS: `door.ogg`,
			wantA:  []QArg{{"play"}, {"door.ogg"}},
		},
		{
			in:     `music "forest song.ogg"`,
			wantF:  `music "forest song.ogg"`,
			wantAS: `forest song.ogg`,
			wantA:  []QArg{{"music"}, {"forest song.ogg"}},
		},
		{
			in:     ` playat  3 4 rain.ogg `,
			wantF:  `playat  3 4 rain.ogg`,
			wantAS: `3 4 rain.ogg`,
			wantA:  []QArg{{"playat"}, {"3"}, {"4"}, {"rain.ogg"}},
		},
		{
			in:     `stopsound 7 door.ogg // comment`,
			wantF:  `stopsound 7 door.ogg // comment`,
			wantAS: `7 door.ogg // comment`,
			wantA:  []QArg{{"stopsound"}, {"7"}, {"door.ogg"}},
		},
	} {
		arg := Parse(tc.in)
		if tc.wantF != arg.Full() {
			t.Errorf("Parse(%q).Full()=%q, want %q", tc.in, arg.Full(), tc.wantF)
		}
		if tc.wantAS != arg.ArgumentString() {
			t.Errorf("Parse(%q).ArgumentString()=%q, want %q", tc.in, arg.ArgumentString(), tc.wantAS)
		}
		as := arg.Args()
		if len(tc.wantA) != len(as) {
			t.Fatalf("Parse(%q).Args() has len(%d), want %d", tc.in, len(as), len(tc.wantA))
		}
		for i := range tc.wantA {
			if tc.wantA[i] != as[i] {
				t.Errorf("Arg[%d]=%q, want %q", i, as[i], tc.wantA[i])
			}
		}
	}
}

func TestQArg(t *testing.T) {
	if got := (QArg{"12"}).Int(); got != 12 {
		t.Errorf("Int()=%v, want 12", got)
	}
	if got := (QArg{"x"}).Int(); got != 0 {
		t.Errorf("Int()=%v, want 0", got)
	}
	if got := (QArg{"0.5"}).Float32(); got != 0.5 {
		t.Errorf("Float32()=%v, want 0.5", got)
	}
	if !(QArg{"on"}).Bool() || (QArg{"0"}).Bool() {
		t.Errorf("Bool() mismatch")
	}
}

func TestCommands(t *testing.T) {
	c := New()
	called := 0
	if err := c.Add("Play", func(Arguments) error { called++; return nil }); err != nil {
		t.Fatal(err)
	}
	if err := c.Add("play", func(Arguments) error { return nil }); err == nil {
		t.Errorf("Add of a duplicate command succeeded")
	}
	if !c.Exists("PLAY") {
		t.Errorf("Exists(PLAY)=false")
	}
	ok, err := c.Execute(Parse("PLAY a.ogg"))
	if !ok || err != nil || called != 1 {
		t.Errorf("Execute=%v,%v called %d times", ok, err, called)
	}
	if ok, _ := c.Execute(Parse("unknown")); ok {
		t.Errorf("Execute(unknown)=true")
	}
	if ok, _ := c.Execute(Parse("")); ok {
		t.Errorf("Execute(\"\")=true")
	}

	want := errors.New("fail")
	c.Add("fail", func(Arguments) error { return want })
	if _, err := c.Execute(Parse("fail")); err != want {
		t.Errorf("Execute(fail)=%v, want %v", err, want)
	}
	if l := c.List(); len(l) != 2 || l[0] != "fail" || l[1] != "play" {
		t.Errorf("List()=%v", l)
	}
}
