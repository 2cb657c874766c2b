// SPDX-License-Identifier: GPL-2.0-or-later

// Package client ties the sound system to the room, the cvars and the
// console.
package client

import (
	"time"

	"m59sound/cbuf"
	"m59sound/cmd"
	"m59sound/cvar"
	"m59sound/cvars"
	"m59sound/math/vec"
	"m59sound/room"
	"m59sound/snd"
)

// AvatarID is the object id of the local player.
const AvatarID = 1

const defaultTickRate = 50 * time.Millisecond

type Client struct {
	snd      *snd.SndSys
	room     *room.Room
	avatar   *room.Object
	commands *cmd.Commands
	cbuf     cbuf.CommandBuffer
}

// New registers the avatar in r and makes it the listener of s. s may be nil
// if sound is disabled.
func New(s *snd.SndSys, r *room.Room) *Client {
	c := &Client{
		snd:      s,
		room:     r,
		avatar:   room.NewObject(AvatarID),
		commands: cmd.New(),
	}
	c.addCommands()
	c.cbuf.SetCommandExecutors([]cbuf.Efunc{
		cbuf.CommandExecutor(c.commands),
		func(_ *cbuf.CommandBuffer, a cmd.Arguments) (bool, error) {
			return cmd.Execute(a)
		},
		func(_ *cbuf.CommandBuffer, a cmd.Arguments) (bool, error) {
			return cvar.Execute(a)
		},
	})

	cvars.SoundVolume.SetCallback(c.onSoundVolumeChange)
	cvars.MusicVolume.SetCallback(c.onMusicVolumeChange)
	cvars.DisableLoopSounds.SetCallback(c.onDisableLoopSoundsChange)
	c.onSoundVolumeChange(cvars.SoundVolume)
	c.onMusicVolumeChange(cvars.MusicVolume)
	c.onDisableLoopSoundsChange(cvars.DisableLoopSounds)

	c.avatar.SetPose(vec.Vec3{}, 0)
	r.Add(c.avatar)
	s.SetListener(c.avatar)
	return c
}

// clampVolume keeps cv within 0-10. It reports false if it had to change cv.
func clampVolume(cv *cvar.Cvar) (float32, bool) {
	v := cv.Value()
	if v > 10 {
		cv.SetByString("10")
		// recursion so exit early
		return 0, false
	}
	if v < 0 {
		cv.SetByString("0")
		// recursion so exit early
		return 0, false
	}
	return v, true
}

func (c *Client) onSoundVolumeChange(cv *cvar.Cvar) {
	if v, ok := clampVolume(cv); ok {
		c.snd.SetSoundVolume(v)
	}
}

func (c *Client) onMusicVolumeChange(cv *cvar.Cvar) {
	if v, ok := clampVolume(cv); ok {
		c.snd.SetMusicVolume(v)
	}
}

func (c *Client) onDisableLoopSoundsChange(cv *cvar.Cvar) {
	c.snd.SetDisableLoopSounds(cv.Bool())
}

func (c *Client) Avatar() *room.Object {
	return c.avatar
}

// AddText queues console input. It may be called from any goroutine.
func (c *Client) AddText(text string) {
	c.cbuf.AddText(text)
}

// Frame runs the queued console commands and updates all sound volumes.
func (c *Client) Frame() error {
	if err := c.cbuf.Execute(); err != nil {
		return err
	}
	c.snd.Update()
	c.room.UpdateSounds(c.snd)
	return nil
}

// TickRate is the current frame interval from sys_ticrate. Values <= 0 fall
// back to 50ms.
func TickRate() time.Duration {
	t := time.Duration(float64(cvars.TickRate.Value()) * float64(time.Millisecond))
	if t <= 0 {
		return defaultTickRate
	}
	return t
}

func (c *Client) Shutdown() {
	cvars.SoundVolume.SetCallback(nil)
	cvars.MusicVolume.SetCallback(nil)
	cvars.DisableLoopSounds.SetCallback(nil)
	c.snd.Shutdown()
}
