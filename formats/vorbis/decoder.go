// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/ik5/duckmix/audio"
)

// oggReader is the slice of oggvorbis.Reader the source needs; a seam for
// tests.
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

const readBufSamples = 4096

// source adapts an ogg reader to audio.Source. The reader already yields
// interleaved float32 in [-1, 1], so samples need no conversion and decode
// directly into the caller's buffer.
type source struct {
	dec oggReader
}

func (s *source) SampleRate() int { return s.dec.SampleRate() }
func (s *source) Channels() int   { return s.dec.Channels() }
func (s *source) BufSize() int    { return readBufSamples }
func (s *source) Close() error    { return nil }

func (s *source) ReadSamples(dst []float32) (int, error) {
	// The reader hands out whole frames only; trim dst so a short buffer
	// cannot ask it to split one.
	usable := len(dst) - len(dst)%s.dec.Channels()
	if usable == 0 {
		return 0, nil
	}

	return s.dec.Read(dst[:usable])
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening vorbis stream: %w", err)
	}

	return &source{dec: dec}, nil
}
