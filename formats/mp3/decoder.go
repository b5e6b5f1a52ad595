// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/duckmix/audio"
)

// mp3Reader is the slice of gomp3.Decoder the source needs; a seam for
// tests.
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

const (
	bytesPerSample = 2 // 16-bit little-endian PCM
	stereoChannels = 2 // go-mp3 always emits two channels
	pcmBufBytes    = 8192
)

// source adapts an mp3 reader's byte stream of interleaved int16 PCM to
// audio.Source.
type source struct {
	dec mp3Reader
	pcm []byte
}

func (s *source) SampleRate() int { return s.dec.SampleRate() }
func (s *source) Channels() int   { return stereoChannels }
func (s *source) BufSize() int    { return cap(s.pcm) / bytesPerSample }
func (s *source) Close() error    { return nil }

func (s *source) ReadSamples(dst []float32) (int, error) {
	need := len(dst) * bytesPerSample
	if cap(s.pcm) < need {
		s.pcm = make([]byte, need)
	}
	raw := s.pcm[:need]

	n, err := s.dec.Read(raw)

	// go-mp3 reads never split an int16 across calls.
	count := n / bytesPerSample
	for i := 0; i < count; i++ {
		v := int16(binary.LittleEndian.Uint16(raw[i*bytesPerSample:]))
		dst[i] = float32(v) / 32768.0
	}

	return count, err
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("opening mp3 stream: %w", err)
	}

	return &source{dec: dec, pcm: make([]byte, pcmBufBytes)}, nil
}
