// SPDX-License-Identifier: GPL-2.0-or-later

// Package speaker plays beep streamers on the default audio device.
package speaker

import (
	"encoding/binary"
	"log"
	"math"
	"sync"

	"github.com/ebitengine/oto/v3"
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
)

const bytesPerFrame = 2 * 4 // stereo float32

var (
	mu      sync.Mutex
	mixer   beep.Mixer
	master  = &effects.Volume{Streamer: &mixer, Base: 2}
	otoCtx  *oto.Context
	player  *oto.Player
	samples [][2]float64
)

// Init opens the audio device. bufferSize is the number of frames mixed at
// once and decides the latency.
func Init(sampleRate beep.SampleRate, bufferSize int) error {
	mu.Lock()
	defer mu.Unlock()
	if player != nil {
		return nil
	}
	// oto allows a single context per process, it survives Close
	if otoCtx == nil {
		ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
			SampleRate:   int(sampleRate),
			ChannelCount: 2,
			Format:       oto.FormatFloat32LE,
			BufferSize:   sampleRate.D(bufferSize),
		})
		if err != nil {
			return err
		}
		<-ready
		otoCtx = ctx
	}
	samples = make([][2]float64, bufferSize)
	player = otoCtx.NewPlayer(reader{})
	player.Play()
	return nil
}

type reader struct{}

// Read is called by oto from its own goroutine.
func (reader) Read(p []byte) (int, error) {
	mu.Lock()
	defer mu.Unlock()
	frames := len(p) / bytesPerFrame
	if len(samples) == 0 {
		clear(p)
		return len(p), nil
	}
	for done := 0; done < frames; {
		chunk := min(frames-done, len(samples))
		buf := samples[:chunk]
		n, ok := master.Stream(buf)
		if !ok {
			n = 0
		}
		clear(buf[n:])
		for i, s := range buf {
			off := (done + i) * bytesPerFrame
			binary.LittleEndian.PutUint32(p[off:], math.Float32bits(float32(s[0])))
			binary.LittleEndian.PutUint32(p[off+4:], math.Float32bits(float32(s[1])))
		}
		done += chunk
	}
	return frames * bytesPerFrame, nil
}

// Play adds streamers to the mix. They are removed once drained.
func Play(s ...beep.Streamer) {
	mu.Lock()
	defer mu.Unlock()
	mixer.Add(s...)
}

// Clear removes everything from the mix.
func Clear() {
	mu.Lock()
	defer mu.Unlock()
	mixer.Clear()
}

// SetVolume sets the linear master volume in 0-1.
func SetVolume(v float64) {
	mu.Lock()
	defer mu.Unlock()
	if v <= 0.001 {
		master.Silent = true
		return
	}
	master.Silent = false
	master.Volume = math.Log2(math.Min(v, 1))
}

// Close stops playback and empties the mix.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	mixer.Clear()
	if player != nil {
		player.Pause()
		if err := player.Close(); err != nil {
			log.Printf("closing audio player: %v", err)
		}
		player = nil
	}
}
