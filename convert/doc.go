// SPDX-License-Identifier: EPL-2.0

// Package convert orchestrates streaming audio-to-mono conversions.
//
// Start launches one background job per call and returns a Job handle
// immediately:
//
//	job := convert.Start("song.flac", convert.Options{})
//
//	for p := range job.Progress() {
//	    fmt.Println(p) // "12.5%"
//	}
//
//	res := job.Wait()
//	if res.Err != nil {
//	    // Handle error
//	}
//	fmt.Println("wrote", res.OutputPath)
//
// The job walks its state machine from opening through probing and the
// decode loop to finalizing. Each job owns its cancellation flag and byte
// counter, so concurrent jobs never interfere; Cancel stops the decode loop
// within one packet iteration and removes the partial output file. Progress
// notifications ride a bounded channel with a drop-oldest policy, while the
// terminal result is always delivered through Wait.
//
// Inspect is the synchronous counterpart: it probes a file and reports
// track metadata without converting anything.
//
// Probing uses the default demux registry; callers must import the format
// packages they want recognized (the root monoid package imports all of
// them).
package convert
