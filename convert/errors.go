// SPDX-License-Identifier: EPL-2.0

package convert

import (
	"errors"

	"github.com/srgrn/monoid/codec"
	"github.com/srgrn/monoid/demux"
)

var (
	// ErrOpen wraps a failure to open the input file.
	ErrOpen = errors.New("failed to open file")
	// ErrMetadata wraps a failure to stat the input file.
	ErrMetadata = errors.New("failed to get file metadata")
	// ErrNoSupportedTrack is returned when no track has a decodable codec.
	ErrNoSupportedTrack = errors.New("no supported audio tracks")
	// ErrUnknownSampleRate is returned when the selected track does not
	// declare a sample rate.
	ErrUnknownSampleRate = errors.New("unknown sample rate")
	// ErrCreateOutput wraps a failure to create the output file.
	ErrCreateOutput = errors.New("failed to create WAV file")
	// ErrDecode wraps a packet decode failure. Fatal for the job.
	ErrDecode = errors.New("decode error")
	// ErrWrite wraps a sample write failure.
	ErrWrite = errors.New("write error")
	// ErrFinalize wraps a sink finalize failure.
	ErrFinalize = errors.New("finalize error")
	// ErrCancelled is the terminal error of a cancelled job.
	ErrCancelled = errors.New("conversion cancelled")

	// ErrUnsupportedFormat is returned when no format recognizes the input.
	ErrUnsupportedFormat = demux.ErrUnsupportedFormat
	// ErrUnsupportedCodec is returned when the selected track's codec has
	// no decoder.
	ErrUnsupportedCodec = codec.ErrUnsupportedCodec
)
