// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"os"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
)

// flushFrames is how many samples the writer batches before handing them to
// the encoder.
const flushFrames = 2048

// Writer streams mono 16-bit samples into a new WAV file. Finalize must be
// called exactly once after the last sample to patch the header sizes; a
// Writer that is abandoned instead (Close without Finalize) leaves an
// invalid file behind which the caller is expected to delete.
type Writer struct {
	f         *os.File
	enc       *gowav.Encoder
	buf       *goaudio.IntBuffer
	n         int
	wrote     bool
	finalized bool
}

// NewWriter creates the file at path and prepares a mono 16-bit PCM WAV
// stream at sampleRate.
func NewWriter(path string, sampleRate int) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", path, err)
	}

	return &Writer{
		f:   f,
		enc: gowav.NewEncoder(f, sampleRate, 16, 1, 1),
		buf: &goaudio.IntBuffer{
			Format: &goaudio.Format{
				NumChannels: 1,
				SampleRate:  sampleRate,
			},
			SourceBitDepth: 16,
			Data:           make([]int, flushFrames),
		},
	}, nil
}

// WriteSample appends one mono sample to the stream.
func (w *Writer) WriteSample(s int16) error {
	if w.finalized {
		return ErrFinalized
	}

	w.buf.Data[w.n] = int(s)
	w.n++

	if w.n == flushFrames {
		return w.flush()
	}

	return nil
}

func (w *Writer) flush() error {
	if w.n == 0 {
		return nil
	}

	chunk := *w.buf
	chunk.Data = w.buf.Data[:w.n]

	if err := w.enc.Write(&chunk); err != nil {
		return fmt.Errorf("writing samples: %w", err)
	}

	w.n = 0
	w.wrote = true

	return nil
}

// Finalize flushes pending samples, patches the header length fields and
// closes the file. A stream that received zero samples still finalizes into
// a structurally valid, empty mono file.
func (w *Writer) Finalize() error {
	if w.finalized {
		return ErrFinalized
	}
	w.finalized = true

	if err := w.flush(); err != nil {
		w.f.Close()
		return err
	}

	if !w.wrote {
		// force the encoder to emit the header and an empty data chunk
		empty := *w.buf
		empty.Data = w.buf.Data[:0]

		if err := w.enc.Write(&empty); err != nil {
			w.f.Close()
			return fmt.Errorf("writing empty data chunk: %w", err)
		}
	}

	if err := w.enc.Close(); err != nil {
		w.f.Close()
		return fmt.Errorf("finalizing encoder: %w", err)
	}

	if err := w.f.Close(); err != nil {
		return fmt.Errorf("closing output: %w", err)
	}

	return nil
}

// Close releases the file handle without finalizing. Used when a job is
// cancelled or fails before the stream completes.
func (w *Writer) Close() error {
	if w.finalized {
		return nil
	}
	w.finalized = true

	if err := w.f.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}
