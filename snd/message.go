// SPDX-License-Identifier: GPL-2.0-or-later

package snd

import "fmt"

type MessageKind int

const (
	// Player is sent on major changes of the player, e.g. a new room.
	Player MessageKind = iota
	PlayWave
	StopWave
	PlayMusic
	PlayMidi
)

func (k MessageKind) String() string {
	switch k {
	case Player:
		return "Player"
	case PlayWave:
		return "PlayWave"
	case StopWave:
		return "StopWave"
	case PlayMusic:
		return "PlayMusic"
	case PlayMidi:
		return "PlayMidi"
	}
	return fmt.Sprintf("MessageKind(%d)", int(k))
}

// Message is a sound related server message. Sound is used by PlayWave and
// StopWave, Music by PlayMusic and PlayMidi.
type Message struct {
	Kind  MessageKind
	Sound PlaySound
	Music string
}

func (s *SndSys) HandleMessage(m Message) {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	switch m.Kind {
	case Player:
		s.pool.sweep()
	case PlayWave:
		s.start(m.Sound)
	case StopWave:
		s.stopSound(m.Sound)
	case PlayMusic, PlayMidi:
		s.startMusic(m.Music)
	}
}
