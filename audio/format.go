// SPDX-License-Identifier: EPL-2.0

package audio

// SampleFormat identifies the in-memory representation of decoded samples.
// FormatUnknown doubles as the "null" codec tag for tracks whose payload
// cannot be decoded.
type SampleFormat uint8

const (
	FormatUnknown SampleFormat = iota
	FormatU8
	FormatU16
	FormatU24
	FormatU32
	FormatS8
	FormatS16
	FormatS24
	FormatS32
	FormatF32
	FormatF64
)

var formatNames = map[SampleFormat]string{
	FormatUnknown: "unknown",
	FormatU8:      "pcm_u8",
	FormatU16:     "pcm_u16",
	FormatU24:     "pcm_u24",
	FormatU32:     "pcm_u32",
	FormatS8:      "pcm_s8",
	FormatS16:     "pcm_s16",
	FormatS24:     "pcm_s24",
	FormatS32:     "pcm_s32",
	FormatF32:     "pcm_f32",
	FormatF64:     "pcm_f64",
}

func (f SampleFormat) String() string {
	name, ok := formatNames[f]
	if !ok {
		return "invalid"
	}

	return name
}

// BytesPerSample returns the size of one sample of this format on the wire,
// or 0 for FormatUnknown.
func (f SampleFormat) BytesPerSample() int {
	switch f {
	case FormatU8, FormatS8:
		return 1
	case FormatU16, FormatS16:
		return 2
	case FormatU24, FormatS24:
		return 3
	case FormatU32, FormatS32, FormatF32:
		return 4
	case FormatF64:
		return 8
	default:
		return 0
	}
}
