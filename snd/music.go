// SPDX-License-Identifier: GPL-2.0-or-later

package snd

import (
	"log"
	"strings"
)

func (s *SndSys) startMusic(resource string) {
	if resource == "" || s.musicVolume <= 0 {
		return
	}
	if s.music != nil {
		if strings.EqualFold(s.music.Resource(), resource) {
			return
		}
		s.music.Stop()
		s.music.Release()
		s.music = nil
	}
	v, err := s.backend.Play2D(resource, true, true)
	if err != nil || v == nil {
		log.Printf("could not start music %q: %v", resource, err)
		return
	}
	v.SetVolume(s.musicVolume / maxVolumeSetting)
	v.SetPaused(false)
	s.music = v
}

func (s *SndSys) adjustMusicVolume() {
	if s.music == nil {
		return
	}
	s.music.SetVolume(s.musicVolume / maxVolumeSetting)
}

// StartMusic loops resource as background music, replacing a different
// track. Nothing happens while the music volume is 0.
func (s *SndSys) StartMusic(resource string) {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.startMusic(resource)
}

func (s *SndSys) AdjustMusicVolume() {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.adjustMusicVolume()
}

// Music returns the resource of the current background music.
func (s *SndSys) Music() string {
	if s == nil {
		return ""
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.music == nil {
		return ""
	}
	return s.music.Resource()
}
