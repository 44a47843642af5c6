package vorbis

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/jfreymuth/oggvorbis"

	"github.com/srgrn/monoid/audio"
	"github.com/srgrn/monoid/demux"
)

const packetFrames = 1024

// Format is the Ogg Vorbis format. The oggvorbis reader decodes to float32,
// so the track is reported as pcm_f32 and packets carry little-endian
// float32 samples.
type Format struct{}

func init() {
	demux.Register(Format{})
}

func (Format) Name() string { return "ogg vorbis" }

func (Format) Sniff(header []byte) bool {
	return len(header) >= 4 && bytes.Equal(header[0:4], []byte("OggS"))
}

func (Format) Open(src *demux.Source) (demux.Demuxer, error) {
	dec, err := oggvorbis.NewReader(src)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	var totalFrames int64
	if l := dec.Length(); l > 0 {
		totalFrames = l
	}

	channels := dec.Channels()

	return &demuxer{
		dec: dec,
		track: demux.Track{
			ID:          0,
			Format:      audio.FormatF32,
			Channels:    channels,
			SampleRate:  dec.SampleRate(),
			TotalFrames: totalFrames,
		},
		floats: make([]float32, packetFrames*channels),
		buf:    make([]byte, 4*packetFrames*channels),
	}, nil
}

type demuxer struct {
	dec    *oggvorbis.Reader
	track  demux.Track
	floats []float32
	buf    []byte
	// carry holds samples of a partial frame from a short read
	carry []float32
}

func (d *demuxer) Tracks() []demux.Track {
	return []demux.Track{d.track}
}

func (d *demuxer) NextPacket() (*demux.Packet, error) {
	n := copy(d.floats, d.carry)
	d.carry = d.carry[:0]

	m, err := d.dec.Read(d.floats[n:])
	n += m

	if n == 0 {
		if err != nil {
			return nil, err
		}

		return nil, io.EOF
	}

	if rem := n % d.track.Channels; rem != 0 {
		n -= rem
		d.carry = append(d.carry, d.floats[n:n+rem]...)
	}

	if n == 0 {
		return nil, io.EOF
	}

	for i := 0; i < n; i++ {
		binary.LittleEndian.PutUint32(d.buf[4*i:], math.Float32bits(d.floats[i]))
	}

	return &demux.Packet{TrackID: d.track.ID, Data: d.buf[:4*n]}, nil
}
