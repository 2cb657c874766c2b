// SPDX-License-Identifier: GPL-2.0-or-later

package engine

import (
	"sync"

	"github.com/chewxy/math32"
	"github.com/google/uuid"
	"github.com/gopxl/beep/v2"

	"m59sound/math"
	"m59sound/math/vec"
)

// voice implements snd.Voice and beep.Streamer. It is streamed from the
// mixer goroutine so all state is behind mu.
type voice struct {
	mu       sync.Mutex
	id       uuid.UUID
	engine   *Engine
	resource string
	ctrl     *beep.Ctrl
	spatial  bool
	pos      vec.Vec3
	volume   float64
	left     float64
	right    float64
	done     bool
	released bool
}

// rolloff is the inverse distance model: full volume up to MinDistance,
// distance is capped at MaxDistance.
func rolloff(dist float32, o Options) float32 {
	if dist <= o.MinDistance {
		return 1
	}
	dist = math32.Min(dist, o.MaxDistance)
	return o.MinDistance / (o.MinDistance + o.Rolloff*(dist-o.MinDistance))
}

func (v *voice) spatialize(l listener, o Options) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if !v.spatial {
		v.left = 1
		v.right = 1
		return
	}
	d := vec.Sub(v.pos, l.pos)
	gain := rolloff(d.Length(), o)
	dot := vec.Dot(l.right, d.Normalize())
	v.left = float64(math.Clamp(0, (1-dot)*gain, 1))
	v.right = float64(math.Clamp(0, (1+dot)*gain, 1))
}

func (v *voice) Stream(samples [][2]float64) (int, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.done {
		return 0, false
	}
	n, ok := v.ctrl.Stream(samples)
	if !ok {
		v.done = true
	}
	for i := range samples[:n] {
		samples[i][0] *= v.left * v.volume
		samples[i][1] *= v.right * v.volume
	}
	return n, ok
}

func (v *voice) Err() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.ctrl.Err()
}

func (v *voice) SetVolume(f float32) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.volume = float64(math.Clamp(0, f, 1))
}

// SetPosition moves the voice and pans it for the current listener.
func (v *voice) SetPosition(pos vec.Vec3) {
	v.mu.Lock()
	v.pos = pos
	v.mu.Unlock()
	l, o := v.engine.listenerState()
	v.spatialize(l, o)
}

func (v *voice) SetPaused(p bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.ctrl.Paused = p
}

func (v *voice) Stop() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.done = true
}

// Release stops tracking the voice, it still plays to its end.
func (v *voice) Release() {
	v.mu.Lock()
	if v.released {
		v.mu.Unlock()
		return
	}
	v.released = true
	v.mu.Unlock()
	v.engine.release(v.id)
}

func (v *voice) Finished() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.done
}

func (v *voice) Resource() string {
	return v.resource
}
