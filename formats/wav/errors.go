package wav

import "errors"

var (
	ErrNoFmtChunk  = errors.New("data chunk before fmt chunk")
	ErrNoDataChunk = errors.New("no data chunk found")
	ErrFinalized   = errors.New("writer already finalized")
)
