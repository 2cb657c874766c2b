// SPDX-License-Identifier: GPL-2.0-or-later

package snd

import (
	"strings"

	"m59sound/math/vec"
)

// MaxActiveSounds is the number of unattached voices playing at once.
const MaxActiveSounds = 32

// trackedSound is an unattached voice. position and baseVolume never change,
// only the volume of the voice is updated every tick.
type trackedSound struct {
	voice      Voice
	selfOrigin bool
	looped     bool
	position   vec.Vec3
	baseVolume float32
}

// pool keeps the unattached voices in the order they were started.
type pool struct {
	sounds []trackedSound
}

func (p *pool) len() int {
	return len(p.sounds)
}

// reclaim drops finished entries in place, keeping the order of the rest.
func reclaim[T any](s []T, voice func(T) Voice) []T {
	n := 0
	for _, e := range s {
		v := voice(e)
		if v.Finished() {
			v.Release()
			continue
		}
		s[n] = e
		n++
	}
	clear(s[n:])
	return s[:n]
}

func (p *pool) reclaim() {
	p.sounds = reclaim(p.sounds, func(t trackedSound) Voice { return t.voice })
}

// makeRoom evicts the oldest entry if the pool is full.
func (p *pool) makeRoom() {
	if len(p.sounds) < MaxActiveSounds {
		return
	}
	oldest := p.sounds[0]
	oldest.voice.Stop()
	oldest.voice.Release()
	p.sounds[0] = trackedSound{}
	p.sounds = p.sounds[1:]
}

func (p *pool) add(t trackedSound) {
	p.makeRoom()
	p.sounds = append(p.sounds, t)
}

// update reclaims finished entries and sets the volume of all others as
// heard from listener looking along look.
func (p *pool) update(listener, look vec.Vec3) {
	n := 0
	for _, t := range p.sounds {
		if t.voice.Finished() {
			t.voice.Release()
			continue
		}
		t.voice.SetVolume(Attenuate(listener, look, t.selfOrigin, t.position, t.baseVolume))
		p.sounds[n] = t
		n++
	}
	clear(p.sounds[n:])
	p.sounds = p.sounds[:n]
}

// remove stops and releases the first entry playing resource.
func (p *pool) remove(resource string) bool {
	for i, t := range p.sounds {
		if strings.EqualFold(t.voice.Resource(), resource) {
			t.voice.Stop()
			t.voice.Release()
			p.sounds = append(p.sounds[:i], p.sounds[i+1:]...)
			return true
		}
	}
	return false
}

// sweep stops everything except one-shot sounds of the listener itself.
func (p *pool) sweep() {
	n := 0
	for _, t := range p.sounds {
		if !t.looped && t.selfOrigin {
			p.sounds[n] = t
			n++
			continue
		}
		t.voice.Stop()
		t.voice.Release()
	}
	clear(p.sounds[n:])
	p.sounds = p.sounds[:n]
}

func (p *pool) setVolume(v float32) {
	for _, t := range p.sounds {
		t.voice.SetVolume(v)
	}
}

// releaseAll releases every voice without stopping it, the backend is
// expected to go away right after.
func (p *pool) releaseAll() {
	for _, t := range p.sounds {
		t.voice.Release()
	}
	p.sounds = nil
}
