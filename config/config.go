// SPDX-License-Identifier: GPL-2.0-or-later

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"m59sound/cvars"
)

// Config holds the startup configuration of the sound client.
type Config struct {
	// Directory holding the sound and music resources
	ResourceDir string `yaml:"resource_dir"`

	// Output device
	SampleRate int `yaml:"sample_rate"`
	BufferMS   int `yaml:"buffer_ms"`

	// Milliseconds between two sound updates
	TickMS int `yaml:"tick_ms"`

	// Volumes in 0-10
	SoundVolume       float32 `yaml:"sound_volume"`
	MusicVolume       float32 `yaml:"music_volume"`
	DisableLoopSounds bool    `yaml:"disable_loop_sounds"`
	NoSound           bool    `yaml:"no_sound"`
}

// Default returns the configuration used without a config file.
func Default() Config {
	return Config{
		ResourceDir: "resource",
		SampleRate:  44100,
		BufferMS:    100,
		TickMS:      50,
		SoundVolume: 10,
		MusicVolume: 10,
	}
}

// Load reads a YAML config file. If the file doesn't exist, returns defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if cfg.SampleRate <= 0 {
		return cfg, fmt.Errorf("config %s: invalid sample_rate %d", path, cfg.SampleRate)
	}
	if cfg.BufferMS <= 0 {
		return cfg, fmt.Errorf("config %s: invalid buffer_ms %d", path, cfg.BufferMS)
	}

	return cfg, nil
}

// Apply writes the settings into their cvars. The cvar callbacks clamp the
// volumes.
func (c Config) Apply() {
	cvars.SoundVolume.SetValue(c.SoundVolume)
	cvars.MusicVolume.SetValue(c.MusicVolume)
	cvars.DisableLoopSounds.SetBool(c.DisableLoopSounds)
	cvars.NoSound.SetBool(c.NoSound)
	if c.TickMS > 0 {
		cvars.TickRate.SetValue(float32(c.TickMS))
	}
}
