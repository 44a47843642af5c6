// SPDX-License-Identifier: EPL-2.0

package codec

import (
	"fmt"

	"github.com/srgrn/monoid/audio"
	"github.com/srgrn/monoid/demux"
)

// Decoder turns the packets of one track into decoded buffers.
type Decoder interface {
	// Decode converts one packet payload into a planar buffer. The buffer
	// is only valid until the next call.
	Decode(pkt *demux.Packet) (*audio.Buffer, error)
}

// New builds a decoder for the given track. It fails with
// ErrUnsupportedCodec when no decoder matches the track's format.
func New(track demux.Track) (Decoder, error) {
	if track.Format == audio.FormatUnknown {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedCodec, track.Format)
	}

	read, ok := sampleReaders[track.Format]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedCodec, track.Format)
	}

	channels := track.Channels
	if channels < 1 {
		channels = 1
	}

	return &pcmDecoder{
		format:   track.Format,
		channels: channels,
		read:     read,
	}, nil
}
