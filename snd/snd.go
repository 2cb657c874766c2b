// SPDX-License-Identifier: GPL-2.0-or-later

package snd

import (
	"log"
	"sync"
	"time"

	"m59sound/math"
	"m59sound/math/vec"
	"m59sound/qtime"
)

const (
	// size of a server grid cell in room units
	CellSize = 1024
	// room units to client units
	rooScale = 0.0625
	// client units added to grid positions, the grid is one based
	cellOffset = 64

	maxVolumeSetting = 10
)

// PlaySound describes a sound request. The source is the object ID if it is
// positive, else the grid cell if Row and Column are positive, else the
// listener itself.
type PlaySound struct {
	ID       int
	Row      int
	Column   int
	Resource string
	Looped   bool
}

// SndSys tracks every sound not attached to a scene object and keeps the
// volume of all sounds in line with the listener. A nil *SndSys is a valid
// disabled sound system.
type SndSys struct {
	mu sync.Mutex

	backend  Backend
	scene    Scene
	pool     pool
	listener Object
	sub      Subscription
	music    Voice
	wading   wading
	now      func() time.Duration

	// settings in 0-10
	soundVolume float32
	musicVolume float32
	disableLoop bool
}

// NewSndSys returns nil if there is no backend, which disables all sound.
func NewSndSys(backend Backend, scene Scene) *SndSys {
	if backend == nil {
		return nil
	}
	return &SndSys{
		backend:     backend,
		scene:       scene,
		now:         qtime.QTime,
		soundVolume: maxVolumeSetting,
		musicVolume: maxVolumeSetting,
	}
}

func (s *SndSys) baseVolume() float32 {
	return s.soundVolume / maxVolumeSetting
}

func (s *SndSys) object(id int) Object {
	if s.scene == nil {
		return nil
	}
	return s.scene.ObjectByID(id)
}

// listenerPose returns the listener position and look vector in audio space.
func (s *SndSys) listenerPose() (pos, look vec.Vec3, ok bool) {
	if s.listener == nil {
		return pos, look, false
	}
	p, angle, ok := s.listener.Pose()
	if !ok {
		return pos, look, false
	}
	return vec.ToAudio(p), vec.LookToAudio(vec.DirectionFromAngle(angle)), true
}

// cellPosition returns the audio space center of a grid cell.
func (s *SndSys) cellPosition(row, column int) vec.Vec3 {
	x := float32(column-1)*CellSize + CellSize/2
	z := float32(row-1)*CellSize + CellSize/2
	var y float32
	if s.scene != nil {
		if h, ok := s.scene.HeightAt(x, z); ok {
			y = h
		}
	}
	return vec.ToAudio(vec.Vec3{
		X: x*rooScale + cellOffset,
		Y: y * rooScale,
		Z: z*rooScale + cellOffset,
	})
}

func (s *SndSys) setListener(o Object) {
	if s.sub != nil {
		s.sub.Unsubscribe()
		s.sub = nil
	}
	s.listener = o
	if o == nil {
		return
	}
	s.sub = o.Subscribe(s.UpdateListener)
	s.updateListener()
}

func (s *SndSys) updateListener() {
	if s.listener == nil {
		return
	}
	p, _, ok := s.listener.Pose()
	if !ok {
		return
	}
	pos, look, _ := s.listenerPose()
	s.backend.SetListener(pos, look)
	s.wade(p)
}

func (s *SndSys) update() {
	pos, look, ok := s.listenerPose()
	if !ok {
		return
	}
	s.pool.update(pos, look)
}

func (s *SndSys) updateSoundVolumes(sounds *AttachedSounds, worldPos vec.Vec3) {
	if sounds == nil {
		return
	}
	soundPos := vec.ToAudio(worldPos)
	sounds.SetPosition(soundPos)
	pos, look, ok := s.listenerPose()
	if !ok {
		return
	}
	sounds.SetVolume(Attenuate(pos, look, false, soundPos, s.baseVolume()))
}

func (s *SndSys) start(ps PlaySound) {
	if ps.Resource == "" {
		return
	}
	if ps.Looped && s.disableLoop {
		return
	}

	s.pool.reclaim()
	s.pool.makeRoom()

	var (
		attach     *AttachedSounds
		selfOrigin bool
		pos        vec.Vec3
	)
	switch {
	case ps.ID > 0:
		if o := s.object(ps.ID); o != nil {
			attach = o.Sounds()
			if p, _, ok := o.Pose(); ok {
				pos = vec.ToAudio(p)
			}
		}
	case ps.Row > 0 && ps.Column > 0:
		pos = s.cellPosition(ps.Row, ps.Column)
	default:
		selfOrigin = true
		if p, _, ok := s.listenerPose(); ok {
			pos = p
		}
	}

	var (
		v   Voice
		err error
	)
	if selfOrigin {
		v, err = s.backend.Play2D(ps.Resource, ps.Looped, true)
	} else {
		v, err = s.backend.Play3D(ps.Resource, pos, ps.Looped, true)
	}
	if err != nil || v == nil {
		log.Printf("could not start sound %q: %v", ps.Resource, err)
		return
	}

	base := s.baseVolume()
	volume := base
	if lp, look, ok := s.listenerPose(); ok {
		volume = Attenuate(lp, look, selfOrigin, pos, base)
	}
	v.SetVolume(volume)

	if attach != nil {
		attach.Add(v)
	} else {
		s.pool.add(trackedSound{
			voice:      v,
			selfOrigin: selfOrigin,
			looped:     ps.Looped,
			position:   pos,
			baseVolume: base,
		})
	}
	v.SetPaused(false)
}

func (s *SndSys) stopSound(ps PlaySound) {
	if ps.Resource == "" {
		return
	}
	if ps.ID > 0 {
		if o := s.object(ps.ID); o != nil {
			if a := o.Sounds(); a != nil && a.remove(ps.Resource) {
				return
			}
		}
	}
	s.pool.remove(ps.Resource)
}

func (s *SndSys) adjustSoundVolume() {
	v := s.baseVolume()
	s.pool.setVolume(v)
	if s.scene == nil {
		return
	}
	for _, o := range s.scene.Objects() {
		if a := o.Sounds(); a != nil {
			a.SetVolume(v)
		}
	}
}

func (s *SndSys) shutdown() {
	s.setListener(nil)
	s.pool.releaseAll()
	if s.music != nil {
		s.music.Stop()
		s.music.Release()
		s.music = nil
	}
	if err := s.backend.Close(); err != nil {
		log.Printf("closing sound backend: %v", err)
	}
}

// The API

// SetListener makes o the object whose pose is used for all volume
// calculations. A nil o disables positional updates.
func (s *SndSys) SetListener(o Object) {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setListener(o)
}

// UpdateListener pushes the listener pose to the backend. It is called on
// pose change notifications of the listener.
func (s *SndSys) UpdateListener() {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.updateListener()
}

// Update is called once per tick.
func (s *SndSys) Update() {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.update()
}

// UpdateSoundVolumes moves all sounds attached to an object to the scene
// position worldPos and sets their volume.
func (s *SndSys) UpdateSoundVolumes(sounds *AttachedSounds, worldPos vec.Vec3) {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.updateSoundVolumes(sounds, worldPos)
}

func (s *SndSys) Start(ps PlaySound) {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.start(ps)
}

// StopSound stops one sound playing ps.Resource, looking at the sounds of
// object ps.ID first.
func (s *SndSys) StopSound(ps PlaySound) {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopSound(ps)
}

// StopSharedSounds stops all unattached sounds but the one-shot sounds of
// the listener itself.
func (s *SndSys) StopSharedSounds() {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pool.sweep()
}

// AdjustSoundVolume sets all voices to the configured sound volume without
// any attenuation.
func (s *SndSys) AdjustSoundVolume() {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.adjustSoundVolume()
}

func (s *SndSys) SetSoundVolume(v float32) {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.soundVolume = math.Clamp(0, v, maxVolumeSetting)
	s.adjustSoundVolume()
}

func (s *SndSys) SetMusicVolume(v float32) {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.musicVolume = math.Clamp(0, v, maxVolumeSetting)
	s.adjustMusicVolume()
}

func (s *SndSys) SetDisableLoopSounds(b bool) {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.disableLoop = b
}

// Active returns the number of unattached sounds.
func (s *SndSys) Active() int {
	if s == nil {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pool.len()
}

// Resources returns the resources of all unattached sounds, oldest first.
func (s *SndSys) Resources() []string {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	r := make([]string, 0, s.pool.len())
	for _, t := range s.pool.sounds {
		r = append(r, t.voice.Resource())
	}
	return r
}

func (s *SndSys) Shutdown() {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shutdown()
}
