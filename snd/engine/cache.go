// SPDX-License-Identifier: GPL-2.0-or-later

package engine

import (
	"strings"

	"github.com/gopxl/beep/v2"
)

// cache holds every decoded sound by its lower case resource name.
type cache struct {
	names   map[string]int
	buffers []*beep.Buffer
}

func newCache() *cache {
	return &cache{names: make(map[string]int)}
}

func (c *cache) Get(i int) *beep.Buffer {
	if i < 0 || i >= len(c.buffers) {
		return nil
	}
	return c.buffers[i]
}

func (c *cache) Has(n string) (int, bool) {
	i, ok := c.names[strings.ToLower(n)]
	if !ok {
		return -1, false
	}
	return i, true
}

func (c *cache) Add(n string, b *beep.Buffer) int {
	r := len(c.buffers)
	c.buffers = append(c.buffers, b)
	c.names[strings.ToLower(n)] = r
	return r
}

func (c *cache) Len() int {
	return len(c.buffers)
}
