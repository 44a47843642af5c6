// SPDX-License-Identifier: EPL-2.0

// Package codec builds decoders for probed tracks.
//
// The only codec family here is PCM in its ten sample layouts (unsigned and
// signed 8/16/24/32-bit integers, 32/64-bit floats), all little-endian and
// interleaved on the wire. Format packages that lean on a decoding library
// (mp3, vorbis) emit their output as one of these layouts, so a single
// decoder family covers every track the demuxers produce.
package codec
