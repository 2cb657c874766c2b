// SPDX-License-Identifier: GPL-2.0-or-later

package cvars

import (
	"m59sound/cvar"
)

var (
	DisableLoopSounds *cvar.Cvar
	MusicVolume       *cvar.Cvar
	NoSound           *cvar.Cvar
	SoundVolume       *cvar.Cvar
	TickRate          *cvar.Cvar
	Volume            *cvar.Cvar
)

func init() {
	DisableLoopSounds = cvar.MustRegister("disableloopsounds", "0", cvar.ARCHIVE)
	MusicVolume = cvar.MustRegister("musicvolume", "10", cvar.ARCHIVE)
	NoSound = cvar.MustRegister("nosound", "0", cvar.NONE)
	SoundVolume = cvar.MustRegister("soundvolume", "10", cvar.ARCHIVE)
	// milliseconds between two sound updates
	TickRate = cvar.MustRegister("sys_ticrate", "50", cvar.NONE)
	// master volume of the audio device in 0-1
	Volume = cvar.MustRegister("volume", "1", cvar.ARCHIVE)
}
