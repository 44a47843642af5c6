// SPDX-License-Identifier: EPL-2.0

package mp3

import "testing"

func TestFormat_Sniff(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		header []byte
		want   bool
	}{
		{"id3 tag", []byte("ID3\x04\x00\x00\x00\x00\x00\x00\x00\x00"), true},
		{"frame sync", []byte{0xff, 0xfb, 0x90, 0x00}, true},
		{"frame sync mpeg2", []byte{0xff, 0xf3, 0x18, 0xc4}, true},
		{"broken sync", []byte{0xff, 0x1b, 0x90, 0x00}, false},
		{"wav header", []byte("RIFFxxxxWAVE"), false},
		{"ogg header", []byte("OggS\x00\x02\x00\x00"), false},
		{"empty", nil, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := (Format{}).Sniff(tt.header); got != tt.want {
				t.Errorf("Sniff(%q) = %v, want %v", tt.header, got, tt.want)
			}
		})
	}
}
