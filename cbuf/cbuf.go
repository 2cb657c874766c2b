// SPDX-License-Identifier: GPL-2.0-or-later

// Package cbuf buffers console lines until the main loop executes them.
package cbuf

import (
	"strings"
	"sync"

	"m59sound/cmd"
)

type CommandBuffer struct {
	mu  sync.Mutex
	buf string
	// a wait command stops the execution until the next frame
	wait      bool
	executors executors
}

func (c *CommandBuffer) SetCommandExecutors(e []Efunc) {
	c.executors = e
}

// next removes the next command from the buffer. Commands are separated by
// newlines or by semicolons outside of quotes.
func (c *CommandBuffer) next() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.buf) == 0 {
		return "", false
	}
	i := 0
	quote := false
LineLoop:
	for i = 0; i < len(c.buf); i++ {
		switch c.buf[i] {
		case '"':
			quote = !quote
		case ';':
			if !quote {
				break LineLoop
			}
		case '\n':
			break LineLoop
		}
	}
	line := c.buf[:i]
	if i < len(c.buf) {
		i++
	}
	c.buf = c.buf[i:]
	return line, true
}

// Execute runs the buffered commands until the buffer is empty or a wait
// command is found.
func (c *CommandBuffer) Execute() error {
	for {
		line, ok := c.next()
		if !ok {
			return nil
		}
		if strings.TrimSpace(line) == "wait" {
			return nil
		}
		if err := c.executors.execute(c, line); err != nil {
			return err
		}
	}
}

// AddText appends text. It may be called from any goroutine.
func (c *CommandBuffer) AddText(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.buf += text
}

func (c *CommandBuffer) InsertText(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.buf = text + "\n" + c.buf
}

// CommandExecutor adapts a command registry to an Efunc.
func CommandExecutor(c *cmd.Commands) Efunc {
	return func(_ *CommandBuffer, a cmd.Arguments) (bool, error) {
		return c.Execute(a)
	}
}
