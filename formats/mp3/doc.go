// SPDX-License-Identifier: EPL-2.0

// Package mp3 demuxes MP3 streams using github.com/hajimehoshi/go-mp3.
//
// go-mp3 exposes its output as a stream of 16-bit little-endian stereo PCM,
// so the single track of an MP3 stream is reported as pcm_s16 with two
// channels and packets carry chunks of that stream. Importing the package
// registers the format with the default demux registry.
package mp3
