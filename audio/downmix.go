// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"github.com/srgrn/monoid/utils"
)

// SampleWriter consumes mono 16-bit samples one at a time.
type SampleWriter interface {
	WriteSample(s int16) error
}

// normRule describes how one sample format is brought into the signed float
// domain before averaging: normalized = raw/scale - offset. When rescale is
// set the channel average is multiplied by 32767 before truncation to int16;
// signed 16-bit input is already in the target range and signed 32-bit input
// lands there after its division, so those two skip the rescale step. This
// keeps downmix output bit-identical with the established behavior.
type normRule struct {
	scale   float32
	offset  float32
	rescale bool
}

// 24-bit formats intentionally carry no rule; their buffers are skipped.
var normRules = map[SampleFormat]normRule{
	FormatU8:  {scale: 128.0, offset: 1.0, rescale: true},
	FormatU16: {scale: 32768.0, offset: 1.0, rescale: true},
	FormatU32: {scale: 2147483648.0, offset: 1.0, rescale: true},
	FormatS8:  {scale: 128.0, offset: 0.0, rescale: true},
	FormatS16: {scale: 1.0, offset: 0.0, rescale: false},
	FormatS32: {scale: 32768.0, offset: 0.0, rescale: false},
	FormatF32: {scale: 1.0, offset: 0.0, rescale: true},
	FormatF64: {scale: 1.0, offset: 0.0, rescale: true},
}

// Downmix averages every frame of buf across all channels into a single
// int16 sample and writes it to dst immediately. It returns the number of
// samples written. Buffers of a format with no normalization rule (the
// 24-bit representations) are skipped without error and contribute zero
// samples.
func Downmix(dst SampleWriter, buf *Buffer) (int, error) {
	rule, ok := normRules[buf.Format]
	if !ok {
		return 0, nil
	}

	channels := buf.Channels()
	if channels == 0 {
		return 0, nil
	}

	frames := buf.Frames()
	written := 0

	for frame := 0; frame < frames; frame++ {
		var sum float32
		for ch := 0; ch < channels; ch++ {
			sum += float32(buf.Data[ch][frame])/rule.scale - rule.offset
		}

		mono := sum / float32(channels)
		if rule.rescale {
			mono *= 32767.0
		}

		err := dst.WriteSample(utils.ClampToInt16(mono))
		if err != nil {
			return written, err
		}

		written++
	}

	return written, nil
}
