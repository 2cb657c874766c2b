// SPDX-License-Identifier: GPL-2.0-or-later

package room

import (
	"sync"

	"github.com/google/uuid"

	"m59sound/math/vec"
	"m59sound/snd"
)

// Object is a room object with a position in scene space and a heading in
// radians.
type Object struct {
	mu     sync.Mutex
	id     int
	pos    vec.Vec3
	angle  float32
	placed bool
	sounds snd.AttachedSounds
	subs   map[uuid.UUID]func()
}

func NewObject(id int) *Object {
	return &Object{
		id:   id,
		subs: make(map[uuid.UUID]func()),
	}
}

func (o *Object) ID() int {
	return o.id
}

// Pose is not ok until the object got its first position.
func (o *Object) Pose() (vec.Vec3, float32, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.pos, o.angle, o.placed
}

func (o *Object) Sounds() *snd.AttachedSounds {
	return &o.sounds
}

// SetPose moves the object and notifies all subscribers if anything changed.
func (o *Object) SetPose(pos vec.Vec3, angle float32) {
	o.mu.Lock()
	if o.placed && o.pos == pos && o.angle == angle {
		o.mu.Unlock()
		return
	}
	o.pos = pos
	o.angle = angle
	o.placed = true
	subs := make([]func(), 0, len(o.subs))
	for _, f := range o.subs {
		subs = append(subs, f)
	}
	o.mu.Unlock()
	for _, f := range subs {
		f()
	}
}

type subscription struct {
	o  *Object
	id uuid.UUID
}

func (s subscription) Unsubscribe() {
	s.o.mu.Lock()
	defer s.o.mu.Unlock()
	delete(s.o.subs, s.id)
}

func (o *Object) Subscribe(f func()) snd.Subscription {
	o.mu.Lock()
	defer o.mu.Unlock()
	id := uuid.Must(uuid.NewV7())
	o.subs[id] = f
	return subscription{o: o, id: id}
}

func (o *Object) subscribers() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.subs)
}
