// SPDX-License-Identifier: EPL-2.0

package convert

import (
	"encoding/binary"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/srgrn/monoid/demux"
	"github.com/srgrn/monoid/formats/wav"
	"github.com/srgrn/monoid/internal/audiotest"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeInput(t *testing.T, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	return path
}

// readMonoWav reads back a finished output file through the wav demuxer.
func readMonoWav(t *testing.T, path string) (demux.Track, []int16) {
	t.Helper()

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Open(%s) error = %v", path, err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}

	d, err := wav.Format{}.Open(demux.NewSource(f, fi.Size()))
	if err != nil {
		t.Fatalf("opening output: %v", err)
	}

	var samples []int16

	for {
		pkt, err := d.NextPacket()
		if err == io.EOF {
			break
		}

		if err != nil {
			t.Fatalf("NextPacket() error = %v", err)
		}

		for i := 0; i+1 < len(pkt.Data); i += 2 {
			samples = append(samples, int16(binary.LittleEndian.Uint16(pkt.Data[i:])))
		}
	}

	return d.Tracks()[0], samples
}

func TestJob_EndToEndStereo16(t *testing.T) {
	t.Parallel()

	const frames = 1000

	in := audiotest.StereoRamp(frames, 3)
	path := writeInput(t, "in.wav",
		audiotest.WAV(audiotest.FormatPCM, 16, 2, 8000, audiotest.S16LE(in...)))

	job := Start(path, Options{Logger: quietLogger()})

	res := job.Wait()
	if res.Err != nil {
		t.Fatalf("Wait() error = %v", res.Err)
	}

	if res.OutputPath != OutputPath(path) {
		t.Errorf("OutputPath = %q, want %q", res.OutputPath, OutputPath(path))
	}

	if job.State() != StateSucceeded {
		t.Errorf("State() = %s, want %s", job.State(), StateSucceeded)
	}

	track, samples := readMonoWav(t, res.OutputPath)

	if track.Channels != 1 || track.BitsPerSample != 16 || track.SampleRate != 8000 {
		t.Errorf("output track = %+v, want mono 16-bit 8000 Hz", track)
	}

	if len(samples) != frames {
		t.Fatalf("output frames = %d, want %d", len(samples), frames)
	}

	// signed 16-bit input averages directly, truncating toward zero
	for i, got := range samples {
		left := float32(in[2*i])
		right := float32(in[2*i+1])
		want := int16((left + right) / 2)

		if got != want {
			t.Fatalf("sample[%d] = %d, want %d", i, got, want)
		}
	}
}

func TestJob_EmptyInputProducesValidEmptyOutput(t *testing.T) {
	t.Parallel()

	path := writeInput(t, "empty.wav", audiotest.WAV(audiotest.FormatPCM, 16, 2, 8000, nil))

	res := Start(path, Options{Logger: quietLogger()}).Wait()
	if res.Err != nil {
		t.Fatalf("Wait() error = %v", res.Err)
	}

	track, samples := readMonoWav(t, res.OutputPath)

	if len(samples) != 0 {
		t.Errorf("output frames = %d, want 0", len(samples))
	}

	if track.Channels != 1 || track.SampleRate != 8000 {
		t.Errorf("output track = %+v, want mono 8000 Hz", track)
	}
}

func TestJob_UnsupportedFormat(t *testing.T) {
	t.Parallel()

	path := writeInput(t, "notes.txt", []byte("this is not audio at all"))

	job := Start(path, Options{Logger: quietLogger()})

	res := job.Wait()
	if !errors.Is(res.Err, ErrUnsupportedFormat) {
		t.Errorf("Wait() error = %v, want ErrUnsupportedFormat", res.Err)
	}

	if job.State() != StateFailed {
		t.Errorf("State() = %s, want %s", job.State(), StateFailed)
	}

	if _, err := os.Stat(OutputPath(path)); !os.IsNotExist(err) {
		t.Error("output file exists after failed probe")
	}
}

func TestJob_NullCodecTrack(t *testing.T) {
	t.Parallel()

	path := writeInput(t, "gsm.wav",
		audiotest.WAV(audiotest.FormatGSM610, 16, 1, 8000, make([]byte, 64)))

	res := Start(path, Options{Logger: quietLogger()}).Wait()
	if !errors.Is(res.Err, ErrNoSupportedTrack) {
		t.Errorf("Wait() error = %v, want ErrNoSupportedTrack", res.Err)
	}

	if _, err := os.Stat(OutputPath(path)); !os.IsNotExist(err) {
		t.Error("output file exists after track selection failure")
	}
}

func TestJob_UnknownSampleRate(t *testing.T) {
	t.Parallel()

	path := writeInput(t, "norate.wav",
		audiotest.WAV(audiotest.FormatPCM, 16, 2, 0, make([]byte, 16)))

	res := Start(path, Options{Logger: quietLogger()}).Wait()
	if !errors.Is(res.Err, ErrUnknownSampleRate) {
		t.Errorf("Wait() error = %v, want ErrUnknownSampleRate", res.Err)
	}
}

func TestJob_OpenError(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "missing.wav")

	res := Start(path, Options{Logger: quietLogger()}).Wait()
	if !errors.Is(res.Err, ErrOpen) {
		t.Errorf("Wait() error = %v, want ErrOpen", res.Err)
	}
}

func TestOutputPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"song.mp3", "song_mono.wav"},
		{"/tmp/a/b.flac", "/tmp/a/b_mono.wav"},
		{"noext", "noext_mono.wav"},
		{"already_mono.wav", "already_mono_mono.wav"},
	}

	for _, tt := range tests {
		if got := OutputPath(tt.in); got != tt.want {
			t.Errorf("OutputPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestProgress_String(t *testing.T) {
	t.Parallel()

	p := Progress{Percent: 42.35, Packets: 400}
	if got := p.String(); got != "42.3%" {
		t.Errorf("String() = %q, want %q", got, "42.3%")
	}
}
