// SPDX-License-Identifier: EPL-2.0

package audio

// Buffer holds the decoded samples of one packet in planar form:
// Data[channel][frame]. Sample values are kept in the raw domain of the
// source format (an unsigned 8-bit sample is stored as 0..255, a float
// sample as-is); normalization happens during downmixing. A Buffer lives
// for one packet iteration only.
type Buffer struct {
	Format SampleFormat
	Data   [][]float64
}

// NewBuffer allocates a planar buffer for the given format.
func NewBuffer(format SampleFormat, channels, frames int) *Buffer {
	data := make([][]float64, channels)
	for ch := range data {
		data[ch] = make([]float64, frames)
	}

	return &Buffer{
		Format: format,
		Data:   data,
	}
}

// Channels returns the number of channel planes.
func (b *Buffer) Channels() int { return len(b.Data) }

// Frames returns the number of sample frames per channel.
func (b *Buffer) Frames() int {
	if len(b.Data) == 0 {
		return 0
	}

	return len(b.Data[0])
}
