// SPDX-License-Identifier: GPL-2.0-or-later

// Package engine is the beep based sound backend. It decodes and caches
// resources, mixes voices and applies distance rolloff and panning.
package engine

import (
	"io"
	"sync"

	"github.com/google/uuid"
	"github.com/gopxl/beep/v2"
	"github.com/pkg/errors"

	"m59sound/math/vec"
	"m59sound/snd"
)

// Mixer receives the streamers of new voices, usually the speaker.
type Mixer interface {
	Play(s ...beep.Streamer)
}

type MixerFunc func(s ...beep.Streamer)

func (f MixerFunc) Play(s ...beep.Streamer) {
	f(s...)
}

type Options struct {
	// Dir is the directory resource names are relative to.
	Dir        string
	SampleRate beep.SampleRate
	// Full volume up to MinDistance, no further attenuation past
	// MaxDistance.
	MinDistance float32
	MaxDistance float32
	Rolloff     float32
}

// DefaultOptions are tuned for 16 client units per room unit and a melee
// range of 128 units.
func DefaultOptions(dir string) Options {
	return Options{
		Dir:         dir,
		SampleRate:  44100,
		MinDistance: 64,
		MaxDistance: 3200,
		Rolloff:     0.5,
	}
}

type listener struct {
	pos   vec.Vec3
	right vec.Vec3
}

type Engine struct {
	mu       sync.Mutex
	opts     Options
	mixer    Mixer
	open     func(name string) (io.ReadCloser, error)
	cache    *cache
	listener listener
	voices   map[uuid.UUID]*voice
	closed   bool
}

func New(m Mixer, opts Options) *Engine {
	return &Engine{
		opts:     opts,
		mixer:    m,
		open:     openFile(opts.Dir),
		cache:    newCache(),
		listener: listener{right: vec.Vec3{X: 1}},
		voices:   make(map[uuid.UUID]*voice),
	}
}

func (e *Engine) play(resource string, pos vec.Vec3, spatial, looped, paused bool) (snd.Voice, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return nil, errors.New("sound engine closed")
	}
	buf, err := e.buffer(resource)
	if err != nil {
		return nil, err
	}
	var s beep.Streamer = buf.Streamer(0, buf.Len())
	if looped {
		s, err = beep.Loop2(buf.Streamer(0, buf.Len()))
		if err != nil {
			return nil, errors.Wrapf(err, "looping %s", resource)
		}
	}
	v := &voice{
		id:       uuid.Must(uuid.NewV7()),
		engine:   e,
		resource: resource,
		ctrl:     &beep.Ctrl{Streamer: s, Paused: paused},
		spatial:  spatial,
		pos:      pos,
		volume:   1,
	}
	v.spatialize(e.listener, e.opts)
	e.voices[v.id] = v
	e.mixer.Play(v)
	return v, nil
}

func (e *Engine) Play3D(resource string, pos vec.Vec3, looped, paused bool) (snd.Voice, error) {
	return e.play(resource, pos, true, looped, paused)
}

func (e *Engine) Play2D(resource string, looped, paused bool) (snd.Voice, error) {
	return e.play(resource, vec.Vec3{}, false, looped, paused)
}

// SetListener moves the listener and pans all tracked voices again.
// The audio space is left handed, right is look rotated around +Y.
func (e *Engine) SetListener(pos, look vec.Vec3) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.listener = listener{
		pos:   pos,
		right: vec.Vec3{X: look.Z, Z: -look.X}.Normalize(),
	}
	for _, v := range e.voices {
		v.spatialize(e.listener, e.opts)
	}
}

func (e *Engine) listenerState() (listener, Options) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.listener, e.opts
}

// Close stops all voices. Voices created before keep working but stay
// silent.
func (e *Engine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	for id, v := range e.voices {
		v.Stop()
		delete(e.voices, id)
	}
	e.closed = true
	return nil
}

// Cached returns the number of decoded resources.
func (e *Engine) Cached() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.cache.Len()
}

func (e *Engine) release(id uuid.UUID) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.voices, id)
}
