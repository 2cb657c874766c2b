// SPDX-License-Identifier: GPL-2.0-or-later

package snd

import (
	"errors"
	"fmt"

	"m59sound/math/vec"
)

type fakeVoice struct {
	resource string
	pos      vec.Vec3
	flat     bool
	looped   bool
	volume   float32
	paused   bool
	stopped  int
	released int
	finished bool
}

func (v *fakeVoice) SetVolume(f float32)    { v.volume = f }
func (v *fakeVoice) SetPosition(p vec.Vec3) { v.pos = p }
func (v *fakeVoice) SetPaused(p bool)       { v.paused = p }
func (v *fakeVoice) Stop()                  { v.stopped++ }
func (v *fakeVoice) Release()               { v.released++ }
func (v *fakeVoice) Finished() bool         { return v.finished }
func (v *fakeVoice) Resource() string       { return v.resource }

type fakeBackend struct {
	voices       []*fakeVoice
	missing      map[string]bool
	listenerPos  vec.Vec3
	listenerLook vec.Vec3
	closed       bool
}

func (b *fakeBackend) play(resource string, pos vec.Vec3, flat, looped, paused bool) (Voice, error) {
	if b.missing[resource] {
		return nil, errors.New("not found")
	}
	v := &fakeVoice{
		resource: resource,
		pos:      pos,
		flat:     flat,
		looped:   looped,
		paused:   paused,
		volume:   1,
	}
	b.voices = append(b.voices, v)
	return v, nil
}

func (b *fakeBackend) Play3D(resource string, pos vec.Vec3, looped, paused bool) (Voice, error) {
	return b.play(resource, pos, false, looped, paused)
}

func (b *fakeBackend) Play2D(resource string, looped, paused bool) (Voice, error) {
	return b.play(resource, vec.Vec3{}, true, looped, paused)
}

func (b *fakeBackend) SetListener(pos, look vec.Vec3) {
	b.listenerPos = pos
	b.listenerLook = look
}

func (b *fakeBackend) Close() error {
	b.closed = true
	return nil
}

func (b *fakeBackend) last() *fakeVoice {
	return b.voices[len(b.voices)-1]
}

type fakeSub struct {
	o *fakeObject
}

func (s fakeSub) Unsubscribe() { s.o.subs-- }

type fakeObject struct {
	id     int
	pos    vec.Vec3
	angle  float32
	noPose bool
	sounds *AttachedSounds
	subs   int
	notify func()
}

func (o *fakeObject) ID() int { return o.id }
func (o *fakeObject) Pose() (vec.Vec3, float32, bool) {
	return o.pos, o.angle, !o.noPose
}
func (o *fakeObject) Sounds() *AttachedSounds { return o.sounds }
func (o *fakeObject) Subscribe(f func()) Subscription {
	o.subs++
	o.notify = f
	return fakeSub{o}
}

func (o *fakeObject) move(p vec.Vec3) {
	o.pos = p
	if o.notify != nil {
		o.notify()
	}
}

type fakeScene struct {
	objects map[int]*fakeObject
	height  float32
	floor   float32
	depth   int
	wading  string
}

func newFakeScene(objs ...*fakeObject) *fakeScene {
	s := &fakeScene{objects: make(map[int]*fakeObject)}
	for _, o := range objs {
		s.objects[o.id] = o
	}
	return s
}

func (s *fakeScene) ObjectByID(id int) Object {
	if o, ok := s.objects[id]; ok {
		return o
	}
	return nil
}

func (s *fakeScene) Objects() []Object {
	r := make([]Object, 0, len(s.objects))
	for _, o := range s.objects {
		r = append(r, o)
	}
	return r
}

func (s *fakeScene) HeightAt(x, z float32) (float32, bool) {
	return s.height, s.height != 0
}

func (s *fakeScene) Water(pos vec.Vec3) (float32, int, bool) {
	return s.floor, s.depth, s.depth > 0
}

func (s *fakeScene) WadingSound() string {
	return s.wading
}

func resourceName(i int) string {
	return fmt.Sprintf("wave%02d.ogg", i)
}
