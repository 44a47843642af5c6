// SPDX-License-Identifier: EPL-2.0

package codec

import (
	"encoding/binary"
	"math"

	"github.com/srgrn/monoid/audio"
	"github.com/srgrn/monoid/demux"
)

// sampleReader pulls one raw sample value out of b. Integer values are
// returned in their native domain (an unsigned 8-bit sample as 0..255);
// float values as-is. len(b) is at least the format's BytesPerSample.
type sampleReader func(b []byte) float64

var sampleReaders = map[audio.SampleFormat]sampleReader{
	audio.FormatU8: func(b []byte) float64 {
		return float64(b[0])
	},
	audio.FormatS8: func(b []byte) float64 {
		return float64(int8(b[0]))
	},
	audio.FormatU16: func(b []byte) float64 {
		return float64(binary.LittleEndian.Uint16(b))
	},
	audio.FormatS16: func(b []byte) float64 {
		return float64(int16(binary.LittleEndian.Uint16(b)))
	},
	audio.FormatU24: func(b []byte) float64 {
		return float64(uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16)
	},
	audio.FormatS24: func(b []byte) float64 {
		v := int32(b[0]) | int32(b[1])<<8 | int32(b[2])<<16
		// sign-extend from 24 bits
		if v&0x800000 != 0 {
			v |= ^int32(0xffffff)
		}
		return float64(v)
	},
	audio.FormatU32: func(b []byte) float64 {
		return float64(binary.LittleEndian.Uint32(b))
	},
	audio.FormatS32: func(b []byte) float64 {
		return float64(int32(binary.LittleEndian.Uint32(b)))
	},
	audio.FormatF32: func(b []byte) float64 {
		return float64(math.Float32frombits(binary.LittleEndian.Uint32(b)))
	},
	audio.FormatF64: func(b []byte) float64 {
		return math.Float64frombits(binary.LittleEndian.Uint64(b))
	},
}

// pcmDecoder deinterleaves little-endian PCM packet payloads into planar
// buffers of the track's sample format.
type pcmDecoder struct {
	format   audio.SampleFormat
	channels int
	read     sampleReader
	buf      *audio.Buffer
}

func (d *pcmDecoder) Decode(pkt *demux.Packet) (*audio.Buffer, error) {
	if pkt == nil {
		return nil, ErrNilPacket
	}

	stride := d.format.BytesPerSample()
	frames := len(pkt.Data) / (stride * d.channels)

	if d.buf == nil || d.buf.Channels() != d.channels || d.buf.Frames() != frames {
		d.buf = audio.NewBuffer(d.format, d.channels, frames)
	}

	for frame := 0; frame < frames; frame++ {
		base := frame * stride * d.channels
		for ch := 0; ch < d.channels; ch++ {
			off := base + ch*stride
			d.buf.Data[ch][frame] = d.read(pkt.Data[off : off+stride])
		}
	}

	return d.buf, nil
}
