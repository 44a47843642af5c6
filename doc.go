// SPDX-License-Identifier: EPL-2.0

// Package monoid converts audio files of arbitrary container formats to
// mono 16-bit PCM WAV files, streaming the whole way through.
//
// # Overview
//
// A conversion incrementally demuxes the input, decodes one packet at a
// time, averages all channels of every frame into a single normalized
// sample, rescales it to the 16-bit integer range and appends it to the
// output file. Nothing larger than one packet is ever held in memory, so
// inputs of any size convert in constant space.
//
// The pipeline is assembled from small packages:
//
//   - demux: byte-counting input source, content-based format probing and
//     packet pulling
//   - codec: per-sample-format PCM decoding into planar buffers
//   - audio: the sample model and the mono downmix with its per-format
//     normalization rules
//   - formats/wav, formats/mp3, formats/vorbis, formats/aiff: container
//     support, registered on import
//   - convert: the background job with progress reporting and cooperative
//     cancellation
//
// # Converting
//
// The simplest path is the synchronous wrapper:
//
//	out, err := monoid.ConvertToMono("interview.mp3")
//	if err != nil {
//	    // Handle error
//	}
//	fmt.Println("wrote", out)
//
// For progress and cancellation, start a job and keep its handle:
//
//	job := monoid.Start("interview.mp3", convert.Options{})
//
//	go func() {
//	    for p := range job.Progress() {
//	        fmt.Println(p)
//	    }
//	}()
//
//	// somewhere else, possibly another goroutine:
//	job.Cancel()
//
//	res := job.Wait()
//
// Cancellation is cooperative and observed within one packet iteration; a
// cancelled job removes its partial output file.
//
// # Inspecting
//
// Inspect probes a file without converting it:
//
//	info, err := monoid.Inspect("interview.mp3")
//	if err != nil {
//	    // Handle error
//	}
//	fmt.Println(info.Channels, info.SampleRate)
//
// # Supported inputs
//
// WAV (integer and float PCM), AIFF/AIFC, MP3 and Ogg Vorbis. Output is
// always a mono, 16-bit, same-sample-rate WAV; there is no resampling and
// no lossy re-encoding.
package monoid
