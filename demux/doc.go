// SPDX-License-Identifier: EPL-2.0

// Package demux probes container formats and pulls tagged packets out of
// them.
//
// A Source wraps the input stream and counts bytes as they are read, which
// is what conversion progress is derived from. Probe identifies the
// container by content against a registry of formats; format packages under
// formats/ register themselves into the Default registry from init(), so
// importing them for side effect is enough:
//
//	import _ "github.com/srgrn/monoid/formats/wav"
//
//	src := demux.NewSource(f, size)
//	d, err := demux.Probe(src)
//
// The returned Demuxer lists tracks and serves packets. A track whose
// format is audio.FormatUnknown has no decoder (the "null" codec).
package demux
