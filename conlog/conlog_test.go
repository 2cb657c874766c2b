// SPDX-License-Identifier: GPL-2.0-or-later

package conlog

import (
	"fmt"
	"log"
	"testing"
)

func TestPrintf(t *testing.T) {
	t.Cleanup(func() {
		SetPrintf(log.Printf)
		SetSafePrintf(log.Printf)
	})
	var got string
	SetPrintf(func(f string, v ...interface{}) { got += fmt.Sprintf(f, v...) })
	SetSafePrintf(func(f string, v ...interface{}) { got += "safe " + fmt.Sprintf(f, v...) })
	Printf("%d sounds\n", 3)
	SafePrintf("%s", "done")
	if want := "3 sounds\nsafe done"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
