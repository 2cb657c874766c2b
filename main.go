// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/mainthread/v2"
	"golang.org/x/sync/errgroup"

	"m59sound/client"
	"m59sound/commandline"
	"m59sound/config"
	"m59sound/conlog"
	"m59sound/cvar"
	"m59sound/cvars"
	"m59sound/room"
	"m59sound/snd"
	"m59sound/snd/engine"
	"m59sound/snd/speaker"
)

func main() {
	flag.Parse()
	mainthread.Run(func() {
		if err := run(); err != nil {
			log.Printf("fatal: %v", err)
			os.Exit(1)
		}
	})
}

func run() error {
	cfg, err := config.Load(commandline.ConfigFile())
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if d := commandline.BaseDirectory(); d != "" {
		cfg.ResourceDir = d
	}
	cfg.Apply()

	printf := func(format string, v ...interface{}) {
		fmt.Fprintf(os.Stdout, format, v...)
	}
	conlog.SetPrintf(printf)
	conlog.SetSafePrintf(printf)

	r := room.New()
	s, err := newSndSys(cfg, r)
	if err != nil {
		return err
	}
	c := client.New(s, r)
	defer speaker.Close()
	defer mainthread.Call(c.Shutdown)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		tick := client.TickRate()
		ticker := time.NewTicker(tick)
		defer ticker.Stop()
		for {
			select {
			case <-gctx.Done():
				return nil
			case <-ticker.C:
				var err error
				next := tick
				mainthread.Call(func() {
					err = c.Frame()
					next = client.TickRate()
				})
				if err != nil {
					return fmt.Errorf("frame: %w", err)
				}
				if next != tick {
					tick = next
					ticker.Reset(tick)
				}
			}
		}
	})

	// console input, it ends the program on EOF
	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		in := bufio.NewScanner(os.Stdin)
		for in.Scan() {
			lines <- in.Text()
		}
		scanErr <- in.Err()
		close(lines)
	}()
	g.Go(func() error {
		for {
			select {
			case <-gctx.Done():
				return nil
			case l, ok := <-lines:
				if !ok {
					cancel()
					return <-scanErr
				}
				c.AddText(l + "\n")
			}
		}
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("sound client: %w", err)
	}
	return nil
}

func onVolumeChange(cv *cvar.Cvar) {
	v := cv.Value()
	if v > 1 {
		cv.SetByString("1")
		// recursion so exit early
		return
	}
	if v < 0 {
		cv.SetByString("0")
		// recursion so exit early
		return
	}
	speaker.SetVolume(float64(v))
}

// newSndSys returns nil if sound is disabled.
func newSndSys(cfg config.Config, r *room.Room) (*snd.SndSys, error) {
	if !commandline.Sound() || cvars.NoSound.Bool() {
		log.Printf("sound disabled")
		return nil, nil
	}
	rate := beep.SampleRate(cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(time.Duration(cfg.BufferMS)*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("opening audio device: %w", err)
	}
	cvars.Volume.SetCallback(onVolumeChange)
	onVolumeChange(cvars.Volume)
	opts := engine.DefaultOptions(cfg.ResourceDir)
	opts.SampleRate = rate
	return snd.NewSndSys(engine.New(engine.MixerFunc(speaker.Play), opts), r), nil
}
