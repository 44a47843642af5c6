// SPDX-License-Identifier: EPL-2.0

// Package vorbis demuxes Ogg Vorbis streams using
// github.com/jfreymuth/oggvorbis.
//
// The decoder produces interleaved float32 samples, so the single track is
// reported as pcm_f32 and packets serialize those samples little-endian.
// Importing the package registers the format with the default demux
// registry.
package vorbis
