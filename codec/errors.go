// SPDX-License-Identifier: EPL-2.0

package codec

import "errors"

var (
	// ErrUnsupportedCodec is returned by New when no decoder implementation
	// matches the track's format.
	ErrUnsupportedCodec = errors.New("unsupported codec")

	// ErrNilPacket is returned by Decode when called without a packet.
	ErrNilPacket = errors.New("nil packet")
)
