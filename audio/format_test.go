// SPDX-License-Identifier: EPL-2.0

package audio

import "testing"

func TestSampleFormat_BytesPerSample(t *testing.T) {
	t.Parallel()

	tests := []struct {
		format SampleFormat
		want   int
	}{
		{FormatUnknown, 0},
		{FormatU8, 1},
		{FormatS8, 1},
		{FormatU16, 2},
		{FormatS16, 2},
		{FormatU24, 3},
		{FormatS24, 3},
		{FormatU32, 4},
		{FormatS32, 4},
		{FormatF32, 4},
		{FormatF64, 8},
	}

	for _, tt := range tests {
		if got := tt.format.BytesPerSample(); got != tt.want {
			t.Errorf("%s.BytesPerSample() = %d, want %d", tt.format, got, tt.want)
		}
	}
}

func TestSampleFormat_String(t *testing.T) {
	t.Parallel()

	if got := FormatS16.String(); got != "pcm_s16" {
		t.Errorf("FormatS16.String() = %q, want %q", got, "pcm_s16")
	}

	if got := SampleFormat(200).String(); got != "invalid" {
		t.Errorf("SampleFormat(200).String() = %q, want %q", got, "invalid")
	}
}

func TestNewBuffer(t *testing.T) {
	t.Parallel()

	buf := NewBuffer(FormatF32, 3, 256)

	if buf.Channels() != 3 {
		t.Errorf("Channels() = %d, want 3", buf.Channels())
	}

	if buf.Frames() != 256 {
		t.Errorf("Frames() = %d, want 256", buf.Frames())
	}
}
