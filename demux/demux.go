// SPDX-License-Identifier: EPL-2.0

package demux

import (
	"github.com/srgrn/monoid/audio"
)

// Track describes one stream of a probed container.
type Track struct {
	// ID tags the packets belonging to this track.
	ID uint32
	// Format is the sample representation of decoded packet payloads.
	// audio.FormatUnknown marks a track whose codec has no decoder.
	Format audio.SampleFormat
	// Channels is the number of interleaved channels per frame.
	Channels int
	// SampleRate in Hz; 0 when the container does not state it.
	SampleRate int
	// BitsPerSample as declared by the container; 0 when unknown.
	BitsPerSample int
	// TotalFrames per channel; 0 when unknown.
	TotalFrames int64
}

// Packet is one chunk of encoded payload pulled from a demuxer, tagged with
// the track it belongs to.
type Packet struct {
	TrackID uint32
	Data    []byte
}

// Demuxer exposes the tracks of a probed stream and a pull interface over
// its packets.
type Demuxer interface {
	// Tracks lists the discoverable tracks. The slice is fixed at probe
	// time.
	Tracks() []Track

	// NextPacket returns the next packet of the stream. It returns io.EOF
	// when the stream is exhausted and ErrResetRequired when stream
	// parameters changed mid-stream; the caller must retry the pull after
	// a reset rather than treat it as end of stream.
	NextPacket() (*Packet, error)
}
