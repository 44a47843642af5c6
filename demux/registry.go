// SPDX-License-Identifier: EPL-2.0

package demux

import (
	"fmt"
	"io"
	"sync"
)

// sniffLen is how many leading bytes a format gets to inspect.
const sniffLen = 12

// Format probes and opens one container format.
type Format interface {
	// Name of the format, e.g. "wav".
	Name() string
	// Sniff reports whether the leading bytes of a stream look like this
	// format. header holds up to sniffLen bytes.
	Sniff(header []byte) bool
	// Open parses the stream and returns a demuxer over it. The source is
	// positioned at the start of the stream.
	Open(src *Source) (Demuxer, error)
}

// Registry holds formats in registration order. Detection is content based:
// the first format whose Sniff accepts the stream header wins, so formats
// with weak magic (mp3) should be registered last.
type Registry struct {
	mtx     sync.Mutex
	formats []Format
}

func NewRegistry() *Registry {
	return &Registry{}
}

func (r *Registry) Register(f Format) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.formats = append(r.formats, f)
}

// Probe identifies the container format of src by content and opens a
// demuxer for it. It fails with ErrUnsupportedFormat when no registered
// format recognizes the stream.
func (r *Registry) Probe(src *Source) (Demuxer, error) {
	header := make([]byte, sniffLen)

	n, err := io.ReadFull(src, header)
	if err != nil && err != io.ErrUnexpectedEOF {
		return nil, fmt.Errorf("reading stream header: %w", err)
	}

	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("rewinding after sniff: %w", err)
	}

	r.mtx.Lock()
	formats := make([]Format, len(r.formats))
	copy(formats, r.formats)
	r.mtx.Unlock()

	for _, f := range formats {
		if !f.Sniff(header[:n]) {
			continue
		}

		d, err := f.Open(src)
		if err != nil {
			return nil, fmt.Errorf("opening %s stream: %w", f.Name(), err)
		}

		return d, nil
	}

	return nil, ErrUnsupportedFormat
}

// Default is the registry the format packages register into from init().
var Default = NewRegistry()

// Register adds a format to the Default registry.
func Register(f Format) {
	Default.Register(f)
}

// Probe probes src against the Default registry.
func Probe(src *Source) (Demuxer, error) {
	return Default.Probe(src)
}
