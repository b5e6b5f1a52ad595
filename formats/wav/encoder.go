// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ik5/duckmix/audio"
	"github.com/ik5/duckmix/utils"
)

// WritePCM16 writes interleaved int16 PCM as a canonical 16-bit WAV at
// sampleRate with the given channel count. The output is a 44-byte header
// followed by the samples, little-endian, nothing else.
func WritePCM16(w io.Writer, sampleRate, channels int, samples []int16) error {
	if channels < 1 {
		return ErrBadChannelCount
	}

	numChannels := uint16(channels)
	bitsPerSample := uint16(16)
	blockAlign := numChannels * (bitsPerSample / 8)
	byteRate := uint32(sampleRate) * uint32(blockAlign)
	dataSize := uint32(len(samples) * 2)
	riffSize := 36 + dataSize

	header := make([]byte, 44)

	// RIFF header (12 bytes)
	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], riffSize)
	copy(header[8:12], "WAVE")

	// fmt chunk (24 bytes)
	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16) // PCM fmt chunk size
	binary.LittleEndian.PutUint16(header[20:22], 1)  // PCM format
	binary.LittleEndian.PutUint16(header[22:24], numChannels)
	binary.LittleEndian.PutUint32(header[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(header[28:32], byteRate)
	binary.LittleEndian.PutUint16(header[32:34], blockAlign)
	binary.LittleEndian.PutUint16(header[34:36], bitsPerSample)

	// data chunk header (8 bytes)
	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], dataSize)

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("writing wav header: %w", err)
	}

	if len(samples) == 0 {
		return nil
	}

	// Write sample data in chunks to bound the conversion buffer
	const chunkSize = 8192

	buf := make([]byte, min(len(samples), chunkSize)*2)

	for i := 0; i < len(samples); i += chunkSize {
		end := min(i+chunkSize, len(samples))
		chunk := samples[i:end]

		buf = buf[:len(chunk)*2]
		for j, s := range chunk {
			binary.LittleEndian.PutUint16(buf[j*2:j*2+2], uint16(s))
		}

		if _, err := w.Write(buf); err != nil {
			return fmt.Errorf("writing wav data: %w", err)
		}
	}

	return nil
}

// Encode writes sig to w as 16-bit PCM WAV. Samples are clamped to [-1, 1]
// and scaled asymmetrically (negative by 32768, non-negative by 32767) so
// the extremes hit the int16 bounds exactly without overflow.
func Encode(w io.Writer, sig *audio.Signal) error {
	if err := sig.Validate(); err != nil {
		return err
	}

	floats := sig.Interleaved()
	samples := make([]int16, len(floats))

	for i, v := range floats {
		samples[i] = utils.Float32ToInt16(v)
	}

	return WritePCM16(w, sig.SampleRate(), sig.Channels(), samples)
}

// EncodeBytes returns sig as a complete WAV file payload.
func EncodeBytes(sig *audio.Signal) ([]byte, error) {
	var buf bytes.Buffer

	// Header plus two bytes per sample
	buf.Grow(44 + sig.Frames()*sig.Channels()*2)

	if err := Encode(&buf, sig); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
