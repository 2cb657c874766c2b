// SPDX-License-Identifier: GPL-2.0-or-later

package client

import (
	"m59sound/cmd"
	"m59sound/conlog"
	"m59sound/math"
	"m59sound/math/vec"
	"m59sound/room"
	"m59sound/snd"
)

func (c *Client) addCommands() {
	for name, f := range map[string]cmd.QFunc{
		"play":        c.playCmd,
		"loop":        c.loopCmd,
		"playobj":     c.playObjCmd,
		"playat":      c.playAtCmd,
		"stopsound":   c.stopSoundCmd,
		"stopshared":  c.stopSharedCmd,
		"music":       c.musicCmd,
		"soundlist":   c.soundListCmd,
		"spawn":       c.spawnCmd,
		"despawn":     c.despawnCmd,
		"move":        c.moveCmd,
		"turn":        c.turnCmd,
		"height":      c.heightCmd,
		"water":       c.waterCmd,
		"wadingsound": c.wadingSoundCmd,
	} {
		cmd.Must(c.commands.Add(name, f))
	}
}

func (c *Client) playWave(ps snd.PlaySound) {
	c.snd.HandleMessage(snd.Message{Kind: snd.PlayWave, Sound: ps})
}

// optional trailing loop flag
func looped(args []cmd.QArg, i int) bool {
	return len(args) > i && args[i].Bool()
}

func (c *Client) playCmd(a cmd.Arguments) error {
	args := a.Args()[1:]
	if len(args) < 1 {
		conlog.Printf("play <sound> : play a sound at the listener\n")
		return nil
	}
	for _, res := range args {
		c.playWave(snd.PlaySound{Resource: res.String()})
	}
	return nil
}

func (c *Client) loopCmd(a cmd.Arguments) error {
	args := a.Args()[1:]
	if len(args) != 1 {
		conlog.Printf("loop <sound> : loop a sound at the listener\n")
		return nil
	}
	c.playWave(snd.PlaySound{Resource: args[0].String(), Looped: true})
	return nil
}

func (c *Client) playObjCmd(a cmd.Arguments) error {
	args := a.Args()[1:]
	if len(args) < 2 {
		conlog.Printf("playobj <id> <sound> [loop] : play a sound attached to an object\n")
		return nil
	}
	c.playWave(snd.PlaySound{
		ID:       args[0].Int(),
		Resource: args[1].String(),
		Looped:   looped(args, 2),
	})
	return nil
}

func (c *Client) playAtCmd(a cmd.Arguments) error {
	args := a.Args()[1:]
	if len(args) < 3 {
		conlog.Printf("playat <row> <col> <sound> [loop] : play a sound in a grid cell\n")
		return nil
	}
	c.playWave(snd.PlaySound{
		Row:      args[0].Int(),
		Column:   args[1].Int(),
		Resource: args[2].String(),
		Looped:   looped(args, 3),
	})
	return nil
}

func (c *Client) stopSoundCmd(a cmd.Arguments) error {
	args := a.Args()[1:]
	if len(args) != 2 {
		conlog.Printf("stopsound <id> <sound> : stop a sound, id 0 for unattached ones\n")
		return nil
	}
	c.snd.HandleMessage(snd.Message{
		Kind:  snd.StopWave,
		Sound: snd.PlaySound{ID: args[0].Int(), Resource: args[1].String()},
	})
	return nil
}

func (c *Client) stopSharedCmd(_ cmd.Arguments) error {
	c.snd.HandleMessage(snd.Message{Kind: snd.Player})
	return nil
}

func (c *Client) musicCmd(a cmd.Arguments) error {
	args := a.Args()[1:]
	if len(args) != 1 {
		conlog.Printf("music <sound> : play background music\n")
		return nil
	}
	c.snd.HandleMessage(snd.Message{Kind: snd.PlayMusic, Music: args[0].String()})
	return nil
}

func (c *Client) soundListCmd(_ cmd.Arguments) error {
	for _, r := range c.snd.Resources() {
		conlog.SafePrintf("  %s\n", r)
	}
	conlog.SafePrintf("%d unattached sounds\n", c.snd.Active())
	attached := 0
	for _, o := range c.room.Objects() {
		if n := o.Sounds().Len(); n > 0 {
			conlog.SafePrintf("  object %d: %d sounds\n", o.ID(), n)
			attached += n
		}
	}
	conlog.SafePrintf("%d attached sounds\n", attached)
	if m := c.snd.Music(); m != "" {
		conlog.SafePrintf("music %s\n", m)
	}
	return nil
}

func position(args []cmd.QArg) vec.Vec3 {
	return vec.Vec3{X: args[0].Float32(), Y: args[1].Float32(), Z: args[2].Float32()}
}

func (c *Client) spawnCmd(a cmd.Arguments) error {
	args := a.Args()[1:]
	if len(args) < 4 {
		conlog.Printf("spawn <id> <x> <y> <z> [angle] : place an object\n")
		return nil
	}
	id := args[0].Int()
	if id <= 0 || id == AvatarID {
		conlog.Printf("spawn: invalid id %d\n", id)
		return nil
	}
	var angle float32
	if len(args) > 4 {
		angle = math.Radians(args[4].Float32())
	}
	o, ok := c.room.Object(id)
	if !ok {
		o = room.NewObject(id)
		c.room.Add(o)
	}
	o.SetPose(position(args[1:4]), angle)
	return nil
}

func (c *Client) despawnCmd(a cmd.Arguments) error {
	args := a.Args()[1:]
	if len(args) != 1 {
		conlog.Printf("despawn <id> : remove an object and its sounds\n")
		return nil
	}
	if id := args[0].Int(); id != AvatarID {
		c.room.Remove(id)
	}
	return nil
}

func (c *Client) moveCmd(a cmd.Arguments) error {
	args := a.Args()[1:]
	if len(args) != 3 {
		conlog.Printf("move <x> <y> <z> : move the listener\n")
		return nil
	}
	_, angle, _ := c.avatar.Pose()
	c.avatar.SetPose(position(args), angle)
	return nil
}

func (c *Client) turnCmd(a cmd.Arguments) error {
	args := a.Args()[1:]
	if len(args) != 1 {
		conlog.Printf("turn <degrees> : set the heading of the listener\n")
		return nil
	}
	pos, _, _ := c.avatar.Pose()
	c.avatar.SetPose(pos, math.Radians(math.AngleMod32(args[0].Float32())))
	return nil
}

func (c *Client) heightCmd(a cmd.Arguments) error {
	args := a.Args()[1:]
	if len(args) != 3 {
		conlog.Printf("height <row> <col> <height> : set the floor height of a grid cell\n")
		return nil
	}
	c.room.SetHeight(args[0].Int(), args[1].Int(), args[2].Float32())
	return nil
}

func (c *Client) waterCmd(a cmd.Arguments) error {
	args := a.Args()[1:]
	if len(args) != 6 {
		conlog.Printf("water <minx> <minz> <maxx> <maxz> <floor> <depth> : add a water sector\n")
		return nil
	}
	c.room.AddWater(room.Sector{
		MinX:  args[0].Float32(),
		MinZ:  args[1].Float32(),
		MaxX:  args[2].Float32(),
		MaxZ:  args[3].Float32(),
		Floor: args[4].Float32(),
		Depth: args[5].Int(),
	})
	return nil
}

func (c *Client) wadingSoundCmd(a cmd.Arguments) error {
	args := a.Args()[1:]
	if len(args) != 1 {
		conlog.Printf("wadingsound <sound> : set the wading sound of the room\n")
		return nil
	}
	c.room.SetWadingSound(args[0].String())
	return nil
}
