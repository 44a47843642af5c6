// SPDX-License-Identifier: EPL-2.0

package convert

import (
	"fmt"
	"os"

	"github.com/srgrn/monoid/demux"
)

// Info describes the primary audio track of a file.
type Info struct {
	Channels      int
	SampleRate    int
	BitsPerSample int
	// TotalFrames per channel; 0 when the container does not state it.
	TotalFrames int64
}

// DurationSeconds returns the track duration and whether it is known.
func (i *Info) DurationSeconds() (float64, bool) {
	if i.TotalFrames == 0 || i.SampleRate == 0 {
		return 0, false
	}

	return float64(i.TotalFrames) / float64(i.SampleRate), true
}

// Inspect probes the file at path and reports the metadata of its first
// decodable track. It is synchronous and reads no audio data beyond what
// probing requires.
func Inspect(path string) (*Info, error) {
	return inspect(path, demux.Default)
}

func inspect(path string, registry *demux.Registry) (*Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpen, err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMetadata, err)
	}

	dmx, err := registry.Probe(demux.NewSource(f, fi.Size()))
	if err != nil {
		return nil, err
	}

	track, ok := selectTrack(dmx.Tracks())
	if !ok {
		return nil, ErrNoSupportedTrack
	}

	if track.SampleRate == 0 {
		return nil, ErrUnknownSampleRate
	}

	bits := track.BitsPerSample
	if bits == 0 {
		bits = 16
	}

	return &Info{
		Channels:      track.Channels,
		SampleRate:    track.SampleRate,
		BitsPerSample: bits,
		TotalFrames:   track.TotalFrames,
	}, nil
}
