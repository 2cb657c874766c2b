// SPDX-License-Identifier: GPL-2.0-or-later

package snd

import (
	"m59sound/math/vec"
)

// Voice is a single playing sound owned by whoever holds it last.
type Voice interface {
	SetVolume(v float32)
	// SetPosition moves a positional voice, in audio space.
	SetPosition(pos vec.Vec3)
	SetPaused(p bool)
	Stop()
	// Release drops the reference. The voice must not be used afterwards.
	Release()
	Finished() bool
	// Resource is the name the voice was started from.
	Resource() string
}

// Backend does the actual mixing, decoding and distance rolloff.
// Positions and look vectors are in audio space, see vec.ToAudio.
type Backend interface {
	Play3D(resource string, pos vec.Vec3, looped, paused bool) (Voice, error)
	Play2D(resource string, looped, paused bool) (Voice, error)
	SetListener(pos, look vec.Vec3)
	Close() error
}

// Subscription is returned by Object.Subscribe.
type Subscription interface {
	Unsubscribe()
}

// Object is anything in the scene a sound can be attached to or that can
// act as listener. Pose is in scene space with the heading in radians.
type Object interface {
	ID() int
	Pose() (pos vec.Vec3, angle float32, ok bool)
	// Sounds returns the list of voices following the object or nil if the
	// object can not carry sounds.
	Sounds() *AttachedSounds
	// Subscribe calls f whenever position or heading change.
	Subscribe(f func()) Subscription
}

type Scene interface {
	// ObjectByID returns nil if there is no such object.
	ObjectByID(id int) Object
	Objects() []Object
	// HeightAt returns the floor height at a position in room units.
	HeightAt(x, z float32) (float32, bool)
}

// Waters is implemented by scenes that know about water sectors.
type Waters interface {
	// Water returns the floor height and depth class of the water sector
	// containing the scene space position pos.
	Water(pos vec.Vec3) (floor float32, depth int, ok bool)
	WadingSound() string
}
