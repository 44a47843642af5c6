// SPDX-License-Identifier: EPL-2.0

// Package audiotest builds synthetic audio files for tests.
package audiotest

import (
	"bytes"
	"encoding/binary"
	"math"
)

// WAV format tags used by the builders.
const (
	FormatPCM       = 1
	FormatIEEEFloat = 3
	FormatGSM610    = 49
)

// WAV assembles a complete little-endian WAV file: canonical 44-byte header
// followed by data. audioFormat is the fmt chunk format tag.
func WAV(audioFormat uint16, bits, channels, sampleRate int, data []byte) []byte {
	blockAlign := channels * bits / 8
	byteRate := sampleRate * blockAlign

	buf := new(bytes.Buffer)
	buf.WriteString("RIFF")
	binary.Write(buf, binary.LittleEndian, uint32(36+len(data)))
	buf.WriteString("WAVE")
	buf.WriteString("fmt ")
	binary.Write(buf, binary.LittleEndian, uint32(16))
	binary.Write(buf, binary.LittleEndian, audioFormat)
	binary.Write(buf, binary.LittleEndian, uint16(channels))
	binary.Write(buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(buf, binary.LittleEndian, uint32(byteRate))
	binary.Write(buf, binary.LittleEndian, uint16(blockAlign))
	binary.Write(buf, binary.LittleEndian, uint16(bits))
	buf.WriteString("data")
	binary.Write(buf, binary.LittleEndian, uint32(len(data)))
	buf.Write(data)

	return buf.Bytes()
}

// S16LE serializes int16 samples little-endian.
func S16LE(samples ...int16) []byte {
	out := make([]byte, 2*len(samples))
	for i, s := range samples {
		binary.LittleEndian.PutUint16(out[2*i:], uint16(s))
	}

	return out
}

// F32LE serializes float32 samples little-endian.
func F32LE(samples ...float32) []byte {
	out := make([]byte, 4*len(samples))
	for i, s := range samples {
		binary.LittleEndian.PutUint32(out[4*i:], math.Float32bits(s))
	}

	return out
}

// StereoRamp generates frames of interleaved stereo int16 samples where the
// left channel holds the frame index and the right channel holds the frame
// index plus delta. Useful for checking per-frame averaging.
func StereoRamp(frames int, delta int16) []int16 {
	out := make([]int16, 0, 2*frames)
	for i := 0; i < frames; i++ {
		left := int16(i % 1000)
		out = append(out, left, left+delta)
	}

	return out
}
