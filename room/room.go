// SPDX-License-Identifier: GPL-2.0-or-later

// Package room is the scene the sound system listens to: the objects of the
// current room, its floor heights and its water sectors.
package room

import (
	"sort"
	"sync"

	"m59sound/math/vec"
	"m59sound/snd"
)

type cell struct {
	row, column int
}

// Sector is an axis aligned water area in scene space. Floor is the height
// of the water floor, Depth the depth class (0 is dry).
type Sector struct {
	MinX, MinZ float32
	MaxX, MaxZ float32
	Floor      float32
	Depth      int
}

func (s Sector) contains(p vec.Vec3) bool {
	return p.X >= s.MinX && p.X <= s.MaxX && p.Z >= s.MinZ && p.Z <= s.MaxZ
}

type Room struct {
	mu      sync.Mutex
	objects map[int]*Object
	heights map[cell]float32
	waters  []Sector
	wading  string
}

func New() *Room {
	return &Room{
		objects: make(map[int]*Object),
		heights: make(map[cell]float32),
	}
}

func (r *Room) Add(o *Object) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.objects[o.ID()] = o
}

// Remove takes the object out of the room and stops all its sounds.
func (r *Room) Remove(id int) {
	r.mu.Lock()
	o, ok := r.objects[id]
	delete(r.objects, id)
	r.mu.Unlock()
	if ok {
		o.Sounds().Clear()
	}
}

func (r *Room) Object(id int) (*Object, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.objects[id]
	return o, ok
}

func (r *Room) ObjectByID(id int) snd.Object {
	o, ok := r.Object(id)
	if !ok {
		return nil
	}
	return o
}

// Objects returns all objects ordered by id.
func (r *Room) Objects() []snd.Object {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := make([]int, 0, len(r.objects))
	for id := range r.objects {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	objs := make([]snd.Object, 0, len(ids))
	for _, id := range ids {
		objs = append(objs, r.objects[id])
	}
	return objs
}

// SetHeight sets the floor height in room units of a grid cell.
func (r *Room) SetHeight(row, column int, h float32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.heights[cell{row, column}] = h
}

// HeightAt returns the floor height at room coordinates x, z.
func (r *Room) HeightAt(x, z float32) (float32, bool) {
	if x < 0 || z < 0 {
		return 0, false
	}
	c := cell{
		row:    int(z/snd.CellSize) + 1,
		column: int(x/snd.CellSize) + 1,
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	h, ok := r.heights[c]
	return h, ok
}

func (r *Room) AddWater(s Sector) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.waters = append(r.waters, s)
}

func (r *Room) Water(pos vec.Vec3) (float32, int, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.waters {
		if s.contains(pos) {
			return s.Floor, s.Depth, true
		}
	}
	return 0, 0, false
}

func (r *Room) SetWadingSound(res string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.wading = res
}

func (r *Room) WadingSound() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.wading
}

// UpdateSounds drops finished attached sounds and attenuates the rest at the
// current position of their object. Called once per tick.
func (r *Room) UpdateSounds(s *snd.SndSys) {
	for _, o := range r.Objects() {
		a := o.Sounds()
		a.Reclaim()
		if a.Len() == 0 {
			continue
		}
		if pos, _, ok := o.Pose(); ok {
			s.UpdateSoundVolumes(a, pos)
		}
	}
}
