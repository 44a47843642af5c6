// SPDX-License-Identifier: EPL-2.0

package demux

import "errors"

var (
	// ErrUnsupportedFormat is returned by Probe when no registered format
	// recognizes the stream content.
	ErrUnsupportedFormat = errors.New("unsupported format")

	// ErrResetRequired is returned by NextPacket when stream parameters
	// changed mid-stream. It is recoverable: retry the pull.
	ErrResetRequired = errors.New("stream reset required")
)
