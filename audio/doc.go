// SPDX-License-Identifier: EPL-2.0

// Package audio provides the sample model and the mono downmix at the heart
// of the conversion pipeline.
//
// # Sample Model
//
// Decoded audio moves through the pipeline as planar Buffers tagged with a
// SampleFormat:
//
//	type Buffer struct {
//	    Format SampleFormat
//	    Data   [][]float64 // Data[channel][frame]
//	}
//
// Sample values stay in the raw domain of their source format: an unsigned
// 8-bit sample is stored as 0..255, a signed 16-bit sample as -32768..32767
// and a float sample as-is. Keeping raw values lets every format-specific
// normalization rule live in one place, the downmixer, instead of being
// duplicated across decoders.
//
// # Downmixing
//
// Downmix collapses every frame of a buffer to one int16 sample:
//
//	n, err := audio.Downmix(sink, buf)
//
// Per frame, each channel's sample is normalized into a common signed float
// domain, the channels are averaged, and the average is rescaled to the
// int16 range. The normalization rule is looked up by sample format:
//
//	unsigned 8-bit   v/128 - 1
//	unsigned 16-bit  v/32768 - 1
//	unsigned 32-bit  v/2147483648 - 1
//	signed 8-bit     v/128
//	signed 16-bit    v            (average used directly, no rescale)
//	signed 32-bit    v/32768      (average used directly, no rescale)
//	float 32/64-bit  v
//
// Most rules rescale the channel average by 32767 before truncation; the
// signed 16-bit and signed 32-bit rules do not, as their input is already
// in (or near) the target integer range. That asymmetry is deliberate: it
// keeps the output bit-identical with the established conversion behavior.
//
// The 24-bit representations have no rule. Their buffers are skipped
// without error and contribute zero output samples.
//
// # Streaming
//
// Downmix writes each produced sample to its SampleWriter immediately.
// Buffers are transient, one packet's worth of frames at a time, so memory
// use stays flat regardless of input size.
package audio
