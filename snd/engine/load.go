// SPDX-License-Identifier: GPL-2.0-or-later

package engine

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"
	"github.com/pkg/errors"
)

const resampleQuality = 4

var ErrUnknownFormat = errors.New("unknown sound format")

type decodeFunc func(rc io.ReadCloser) (beep.StreamSeekCloser, beep.Format, error)

var decoders = map[string]decodeFunc{
	".wav": func(rc io.ReadCloser) (beep.StreamSeekCloser, beep.Format, error) {
		return wav.Decode(rc)
	},
	".ogg": vorbis.Decode,
	".mp3": mp3.Decode,
}

func openFile(dir string) func(name string) (io.ReadCloser, error) {
	return func(name string) (io.ReadCloser, error) {
		return os.Open(filepath.Join(dir, filepath.FromSlash(name)))
	}
}

// load decodes a whole resource into memory at the engine sample rate.
func (e *Engine) load(name string) (*beep.Buffer, error) {
	decode, ok := decoders[strings.ToLower(filepath.Ext(name))]
	if !ok {
		return nil, errors.Wrap(ErrUnknownFormat, name)
	}
	rc, err := e.open(name)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", name)
	}
	s, format, err := decode(rc)
	if err != nil {
		rc.Close()
		return nil, errors.Wrapf(err, "decoding %s", name)
	}
	defer s.Close()

	var src beep.Streamer = s
	if format.SampleRate != e.opts.SampleRate {
		src = beep.Resample(resampleQuality, format.SampleRate, e.opts.SampleRate, s)
	}
	buf := beep.NewBuffer(beep.Format{
		SampleRate:  e.opts.SampleRate,
		NumChannels: 2,
		Precision:   2,
	})
	buf.Append(src)
	if err := s.Err(); err != nil {
		return nil, errors.Wrapf(err, "decoding %s", name)
	}
	return buf, nil
}

// buffer returns the cached sound, loading it on first use.
func (e *Engine) buffer(name string) (*beep.Buffer, error) {
	if i, ok := e.cache.Has(name); ok {
		return e.cache.Get(i), nil
	}
	b, err := e.load(name)
	if err != nil {
		return nil, err
	}
	e.cache.Add(name, b)
	return b, nil
}
