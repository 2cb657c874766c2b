// SPDX-License-Identifier: GPL-2.0-or-later

package cbuf

import (
	"errors"
	"testing"

	"m59sound/cmd"
)

func TestWait(t *testing.T) {
	c := CommandBuffer{}
	runCount := 0
	c.SetCommandExecutors([]Efunc{
		func(cb *CommandBuffer, a cmd.Arguments) (bool, error) {
			runCount++
			return true, nil
		}})
	c.AddText("wait\n")
	c.AddText("test\n")
	c.AddText("test\n")
	c.AddText("wait\n")
	c.AddText("test\n")
	c.Execute()
	if runCount != 0 {
		t.Errorf("runCount=%v, want %v", runCount, 0)
	}
	c.Execute()
	if runCount != 2 {
		t.Errorf("runCount=%v, want %v", runCount, 2)
	}
	c.Execute()
	if runCount != 3 {
		t.Errorf("runCount=%v, want %v", runCount, 3)
	}
}

func TestSplit(t *testing.T) {
	c := CommandBuffer{}
	var got []string
	c.SetCommandExecutors([]Efunc{
		func(cb *CommandBuffer, a cmd.Arguments) (bool, error) {
			got = append(got, a.Full())
			return true, nil
		}})
	c.AddText(`play a.ogg; music "x;y.ogg"` + "\n")
	c.InsertText("stopsound 1 a.ogg")
	if err := c.Execute(); err != nil {
		t.Fatal(err)
	}
	want := []string{"stopsound 1 a.ogg", "play a.ogg", `music "x;y.ogg"`}
	if len(got) != len(want) {
		t.Fatalf("got %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("command %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestExecutorChain(t *testing.T) {
	commands := cmd.New()
	ran := false
	commands.Add("known", func(cmd.Arguments) error { ran = true; return nil })
	fallback := 0
	c := CommandBuffer{}
	c.SetCommandExecutors([]Efunc{
		CommandExecutor(commands),
		func(cb *CommandBuffer, a cmd.Arguments) (bool, error) {
			fallback++
			return a.Args()[0].String() == "other", nil
		}})
	c.AddText("known\nother\nunknown\n")
	if err := c.Execute(); err != nil {
		t.Fatal(err)
	}
	if !ran || fallback != 2 {
		t.Errorf("ran=%v fallback=%d", ran, fallback)
	}

	want := errors.New("broken")
	commands.Add("broken", func(cmd.Arguments) error { return want })
	c.AddText("broken\nknown\n")
	if err := c.Execute(); err != want {
		t.Errorf("Execute()=%v, want %v", err, want)
	}
}
