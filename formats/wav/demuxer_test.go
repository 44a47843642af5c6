package wav

import (
	"bytes"
	"io"
	"testing"

	"github.com/srgrn/monoid/audio"
	"github.com/srgrn/monoid/demux"
	"github.com/srgrn/monoid/internal/audiotest"
)

func sourceFor(data []byte) *demux.Source {
	return demux.NewSource(bytes.NewReader(data), int64(len(data)))
}

func TestFormat_Sniff(t *testing.T) {
	t.Parallel()

	file := audiotest.WAV(audiotest.FormatPCM, 16, 2, 8000, nil)

	if !(Format{}).Sniff(file[:12]) {
		t.Error("Sniff() = false for a WAV header")
	}

	if (Format{}).Sniff([]byte("RIFFxxxxAVI ")) {
		t.Error("Sniff() = true for a non-WAVE RIFF file")
	}

	if (Format{}).Sniff([]byte("RIFF")) {
		t.Error("Sniff() = true for a truncated header")
	}
}

func TestDemuxer_TrackMetadata(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		audioFormat uint16
		bits        int
		want        audio.SampleFormat
	}{
		{"pcm 8-bit", audiotest.FormatPCM, 8, audio.FormatU8},
		{"pcm 16-bit", audiotest.FormatPCM, 16, audio.FormatS16},
		{"pcm 24-bit", audiotest.FormatPCM, 24, audio.FormatS24},
		{"pcm 32-bit", audiotest.FormatPCM, 32, audio.FormatS32},
		{"float 32-bit", audiotest.FormatIEEEFloat, 32, audio.FormatF32},
		{"float 64-bit", audiotest.FormatIEEEFloat, 64, audio.FormatF64},
		{"gsm is null codec", audiotest.FormatGSM610, 16, audio.FormatUnknown},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			data := make([]byte, 100*2*tt.bits/8)
			file := audiotest.WAV(tt.audioFormat, tt.bits, 2, 44100, data)

			d, err := newDemuxer(sourceFor(file))
			if err != nil {
				t.Fatalf("newDemuxer() error = %v", err)
			}

			tracks := d.Tracks()
			if len(tracks) != 1 {
				t.Fatalf("Tracks() len = %d, want 1", len(tracks))
			}

			track := tracks[0]
			if track.Format != tt.want {
				t.Errorf("Format = %s, want %s", track.Format, tt.want)
			}

			if track.Channels != 2 {
				t.Errorf("Channels = %d, want 2", track.Channels)
			}

			if track.SampleRate != 44100 {
				t.Errorf("SampleRate = %d, want 44100", track.SampleRate)
			}

			if track.BitsPerSample != tt.bits {
				t.Errorf("BitsPerSample = %d, want %d", track.BitsPerSample, tt.bits)
			}

			if track.TotalFrames != 100 {
				t.Errorf("TotalFrames = %d, want 100", track.TotalFrames)
			}
		})
	}
}

func TestDemuxer_PacketsCoverAllFrames(t *testing.T) {
	t.Parallel()

	// more frames than one packet holds, not a multiple of the packet size
	const frames = 2500

	samples := audiotest.StereoRamp(frames, 1)
	file := audiotest.WAV(audiotest.FormatPCM, 16, 2, 8000, audiotest.S16LE(samples...))

	d, err := newDemuxer(sourceFor(file))
	if err != nil {
		t.Fatalf("newDemuxer() error = %v", err)
	}

	var payload []byte

	for {
		pkt, err := d.NextPacket()
		if err == io.EOF {
			break
		}

		if err != nil {
			t.Fatalf("NextPacket() error = %v", err)
		}

		if len(pkt.Data)%4 != 0 {
			t.Fatalf("packet of %d bytes is not frame aligned", len(pkt.Data))
		}

		payload = append(payload, pkt.Data...)
	}

	want := audiotest.S16LE(samples...)
	if !bytes.Equal(payload, want) {
		t.Errorf("reassembled payload differs: got %d bytes, want %d", len(payload), len(want))
	}
}

func TestDemuxer_EmptyDataChunk(t *testing.T) {
	t.Parallel()

	file := audiotest.WAV(audiotest.FormatPCM, 16, 1, 8000, nil)

	d, err := newDemuxer(sourceFor(file))
	if err != nil {
		t.Fatalf("newDemuxer() error = %v", err)
	}

	if _, err := d.NextPacket(); err != io.EOF {
		t.Errorf("NextPacket() error = %v, want io.EOF", err)
	}
}

func TestDemuxer_TruncatedFile(t *testing.T) {
	t.Parallel()

	file := audiotest.WAV(audiotest.FormatPCM, 16, 1, 8000, nil)

	if _, err := newDemuxer(sourceFor(file[:20])); err == nil {
		t.Error("newDemuxer() error = nil for truncated file")
	}
}
