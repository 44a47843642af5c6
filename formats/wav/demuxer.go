package wav

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-audio/riff"

	"github.com/srgrn/monoid/audio"
	"github.com/srgrn/monoid/demux"
)

const (
	formatPCM       = 1
	formatIEEEFloat = 3

	// frames served per packet
	packetFrames = 1024
)

// Format is the WAV container format. It registers itself into the default
// demux registry on import.
type Format struct{}

func (Format) Name() string { return "wav" }

func (Format) Sniff(header []byte) bool {
	return len(header) >= 12 &&
		bytes.Equal(header[0:4], []byte("RIFF")) &&
		bytes.Equal(header[8:12], []byte("WAVE"))
}

func (Format) Open(src *demux.Source) (demux.Demuxer, error) {
	return newDemuxer(src)
}

func init() {
	demux.Register(Format{})
}

// demuxer walks the RIFF chunks of a WAV stream and serves slices of the
// data chunk as packets.
type demuxer struct {
	track      demux.Track
	data       *riff.Chunk
	blockAlign int
	buf        []byte
}

func newDemuxer(src *demux.Source) (*demuxer, error) {
	parser := riff.New(src)

	if err := parser.ParseHeaders(); err != nil {
		return nil, fmt.Errorf("parsing RIFF headers: %w", err)
	}

	fmtSeen := false

	for {
		chunk, err := parser.NextChunk()
		if err != nil {
			if err == io.EOF {
				return nil, ErrNoDataChunk
			}

			return nil, fmt.Errorf("walking chunks: %w", err)
		}

		switch chunk.ID {
		case riff.FmtID:
			if err := chunk.DecodeWavHeader(parser); err != nil {
				return nil, fmt.Errorf("decoding fmt chunk: %w", err)
			}

			fmtSeen = true
		case riff.DataFormatID:
			if !fmtSeen {
				return nil, ErrNoFmtChunk
			}

			return demuxerFor(parser, chunk), nil
		default:
			chunk.Drain()
		}
	}
}

func demuxerFor(parser *riff.Parser, data *riff.Chunk) *demuxer {
	channels := int(parser.NumChannels)
	bits := int(parser.BitsPerSample)

	blockAlign := int(parser.BlockAlign)
	if blockAlign == 0 {
		blockAlign = channels * bits / 8
	}

	var totalFrames int64
	if blockAlign > 0 {
		totalFrames = int64(data.Size) / int64(blockAlign)
	}

	return &demuxer{
		track: demux.Track{
			ID:            0,
			Format:        sampleFormat(parser.WavAudioFormat, parser.BitsPerSample),
			Channels:      channels,
			SampleRate:    int(parser.SampleRate),
			BitsPerSample: bits,
			TotalFrames:   totalFrames,
		},
		data:       data,
		blockAlign: blockAlign,
	}
}

// sampleFormat maps the fmt chunk's audio format tag and bit depth to a
// sample representation. Compressed or unrecognized layouts map to
// FormatUnknown, the null codec.
func sampleFormat(audioFormat, bits uint16) audio.SampleFormat {
	switch audioFormat {
	case formatPCM:
		switch bits {
		case 8:
			return audio.FormatU8
		case 16:
			return audio.FormatS16
		case 24:
			return audio.FormatS24
		case 32:
			return audio.FormatS32
		}
	case formatIEEEFloat:
		switch bits {
		case 32:
			return audio.FormatF32
		case 64:
			return audio.FormatF64
		}
	}

	return audio.FormatUnknown
}

func (d *demuxer) Tracks() []demux.Track {
	return []demux.Track{d.track}
}

// NextPacket serves up to packetFrames whole frames of raw PCM from the
// data chunk. The packet payload is only valid until the next pull.
func (d *demuxer) NextPacket() (*demux.Packet, error) {
	if d.blockAlign <= 0 {
		return nil, io.EOF
	}

	want := packetFrames * d.blockAlign
	if cap(d.buf) < want {
		d.buf = make([]byte, want)
	}

	buf := d.buf[:want]
	read := 0

	for read < want {
		n, err := d.data.Read(buf[read:])
		read += n

		if err != nil || n == 0 {
			break
		}
	}

	// drop a trailing partial frame
	read -= read % d.blockAlign
	if read == 0 {
		return nil, io.EOF
	}

	return &demux.Packet{TrackID: d.track.ID, Data: buf[:read]}, nil
}
