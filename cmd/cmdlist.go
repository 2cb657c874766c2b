// SPDX-License-Identifier: GPL-2.0-or-later

package cmd

import (
	"strings"

	"m59sound/conlog"
)

func (c *Commands) printCmdList() QFunc {
	return func(a Arguments) error {
		args := a.Args()
		cl := c.List()
		switch len(args) {
		default:
			printPartialCmdList(cl, args[1].String())
		case 0, 1:
			printFullCmdList(cl)
		}
		return nil
	}
}

func printFullCmdList(cl []string) {
	for _, c := range cl {
		conlog.SafePrintf("  %s\n", c)
	}
	conlog.SafePrintf("%v commands\n", len(cl))
}

func printPartialCmdList(cl []string, part string) {
	count := 0
	for _, c := range cl {
		if strings.HasPrefix(c, part) {
			conlog.SafePrintf("  %s\n", c)
			count++
		}
	}
	conlog.SafePrintf("%v commands beginning with \"%v\"\n", count, part)
}
