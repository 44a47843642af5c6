// SPDX-License-Identifier: EPL-2.0

package demux

import (
	"fmt"
	"io"
	"sync/atomic"
)

// Source wraps a seekable stream of known total length and counts the bytes
// served by Read. Progress for a running conversion is derived from that
// counter, so it is read-volume based: Seek forwards to the inner stream
// without touching the count. Each job owns its own Source; the counter is
// never shared between jobs.
type Source struct {
	r    io.ReadSeeker
	size int64
	read atomic.Uint64
}

// NewSource wraps r, which must hold size bytes in total.
func NewSource(r io.ReadSeeker, size int64) *Source {
	return &Source{
		r:    r,
		size: size,
	}
}

func (s *Source) Read(p []byte) (int, error) {
	n, err := s.r.Read(p)
	if n > 0 {
		s.read.Add(uint64(n))
	}

	if err != nil && err != io.EOF {
		return n, fmt.Errorf("%w", err)
	}

	return n, err
}

func (s *Source) Seek(offset int64, whence int) (int64, error) {
	pos, err := s.r.Seek(offset, whence)
	if err != nil {
		return pos, fmt.Errorf("%w", err)
	}

	return pos, nil
}

// Size returns the total length of the underlying stream in bytes.
func (s *Source) Size() int64 { return s.size }

// BytesRead returns how many bytes Read has served so far. Monotonically
// non-decreasing; safe to call from another goroutine.
func (s *Source) BytesRead() uint64 { return s.read.Load() }
