// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"bytes"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/srgrn/monoid/audio"
	"github.com/srgrn/monoid/demux"
)

// bytesPerFrame of go-mp3 output: always stereo 16-bit.
const bytesPerFrame = 4

const packetSize = 8192

// Format is the MP3 format. go-mp3 fuses demuxing and decoding, so packets
// here carry decoded 16-bit stereo PCM and the track reports pcm_s16.
type Format struct{}

func init() {
	demux.Register(Format{})
}

func (Format) Name() string { return "mp3" }

func (Format) Sniff(header []byte) bool {
	if len(header) >= 3 && bytes.Equal(header[0:3], []byte("ID3")) {
		return true
	}

	// frame sync: 11 set bits
	return len(header) >= 2 && header[0] == 0xff && header[1]&0xe0 == 0xe0
}

func (Format) Open(src *demux.Source) (demux.Demuxer, error) {
	dec, err := gomp3.NewDecoder(src)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	var totalFrames int64
	if l := dec.Length(); l > 0 {
		totalFrames = l / bytesPerFrame
	}

	return &demuxer{
		dec: dec,
		track: demux.Track{
			ID:         0,
			Format:     audio.FormatS16,
			Channels:   2,
			SampleRate: dec.SampleRate(),
			// bits per sample is not declared by the container
			TotalFrames: totalFrames,
		},
		buf: make([]byte, packetSize),
	}, nil
}

type demuxer struct {
	dec   *gomp3.Decoder
	track demux.Track
	buf   []byte
	// carry holds a partial frame left over from a short read
	carry []byte
}

func (d *demuxer) Tracks() []demux.Track {
	return []demux.Track{d.track}
}

func (d *demuxer) NextPacket() (*demux.Packet, error) {
	n := copy(d.buf, d.carry)
	d.carry = d.carry[:0]

	m, err := d.dec.Read(d.buf[n:])
	n += m

	if n == 0 {
		if err != nil {
			return nil, err
		}

		return nil, io.EOF
	}

	if rem := n % bytesPerFrame; rem != 0 {
		n -= rem
		d.carry = append(d.carry, d.buf[n:n+rem]...)
	}

	if n == 0 {
		return nil, io.EOF
	}

	return &demux.Packet{TrackID: d.track.ID, Data: d.buf[:n]}, nil
}
