package aiff

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	goaiff "github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"

	"github.com/srgrn/monoid/audio"
	"github.com/srgrn/monoid/demux"
)

const packetFrames = 1024

// Format is the AIFF/AIFC container format. go-audio's aiff decoder reads
// frames into integer buffers; packets re-serialize them as little-endian
// PCM at the declared bit depth, so the shared PCM decoders apply.
type Format struct{}

func init() {
	demux.Register(Format{})
}

func (Format) Name() string { return "aiff" }

func (Format) Sniff(header []byte) bool {
	return len(header) >= 12 &&
		bytes.Equal(header[0:4], []byte("FORM")) &&
		(bytes.Equal(header[8:12], []byte("AIFF")) || bytes.Equal(header[8:12], []byte("AIFC")))
}

func (Format) Open(src *demux.Source) (demux.Demuxer, error) {
	dec := goaiff.NewDecoder(src)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}

	dec.ReadInfo()

	format := dec.Format()
	if format == nil {
		return nil, ErrUnsupportedAiffLayout
	}

	bits := int(dec.BitDepth)
	channels := format.NumChannels

	d := &demuxer{
		dec:    dec,
		stride: bits / 8,
		track: demux.Track{
			ID:            0,
			Format:        sampleFormat(bits),
			Channels:      channels,
			SampleRate:    format.SampleRate,
			BitsPerSample: bits,
			TotalFrames:   int64(dec.NumSampleFrames),
		},
	}

	d.intBuf = &goaudio.IntBuffer{
		Format: format,
		Data:   make([]int, packetFrames*channels),
	}
	d.buf = make([]byte, d.stride*packetFrames*channels)

	return d, nil
}

// sampleFormat maps an AIFF bit depth to a sample representation. AIFF
// integer samples are always signed.
func sampleFormat(bits int) audio.SampleFormat {
	switch bits {
	case 8:
		return audio.FormatS8
	case 16:
		return audio.FormatS16
	case 24:
		return audio.FormatS24
	case 32:
		return audio.FormatS32
	}

	return audio.FormatUnknown
}

type demuxer struct {
	dec    *goaiff.Decoder
	track  demux.Track
	stride int
	intBuf *goaudio.IntBuffer
	buf    []byte
}

func (d *demuxer) Tracks() []demux.Track {
	return []demux.Track{d.track}
}

func (d *demuxer) NextPacket() (*demux.Packet, error) {
	if d.track.Format == audio.FormatUnknown || d.stride == 0 {
		return nil, io.EOF
	}

	n, err := d.dec.PCMBuffer(d.intBuf)
	if n == 0 {
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}

		return nil, io.EOF
	}

	for i := 0; i < n; i++ {
		v := d.intBuf.Data[i]
		switch d.stride {
		case 1:
			d.buf[i] = byte(int8(v))
		case 2:
			binary.LittleEndian.PutUint16(d.buf[2*i:], uint16(int16(v)))
		case 3:
			d.buf[3*i] = byte(v)
			d.buf[3*i+1] = byte(v >> 8)
			d.buf[3*i+2] = byte(v >> 16)
		case 4:
			binary.LittleEndian.PutUint32(d.buf[4*i:], uint32(int32(v)))
		}
	}

	return &demux.Packet{TrackID: d.track.ID, Data: d.buf[:n*d.stride]}, nil
}
