// SPDX-License-Identifier: EPL-2.0

// Package wav demuxes WAV containers and writes mono 16-bit WAV output.
//
// The demuxer walks RIFF chunks with github.com/go-audio/riff and serves
// raw slices of the data chunk as packets. PCM layouts (unsigned 8-bit,
// signed 16/24/32-bit) and IEEE float layouts (32/64-bit) map to their
// sample formats; compressed layouts yield a track with the null codec.
//
// Importing the package registers the format with the default demux
// registry:
//
//	import _ "github.com/srgrn/monoid/formats/wav"
//
// The Writer is the output side: it streams int16 samples into a new file
// through github.com/go-audio/wav's encoder and patches the header sizes on
// Finalize.
//
//	w, err := wav.NewWriter("out_mono.wav", 8000)
//	if err != nil {
//	    // Handle error
//	}
//	for _, s := range samples {
//	    if err := w.WriteSample(s); err != nil {
//	        // Handle error
//	    }
//	}
//	if err := w.Finalize(); err != nil {
//	    // Handle error
//	}
package wav
