// SPDX-License-Identifier: EPL-2.0

package monoid

import (
	"github.com/srgrn/monoid/convert"

	// register all supported container formats
	_ "github.com/srgrn/monoid/formats/aiff"
	_ "github.com/srgrn/monoid/formats/mp3"
	_ "github.com/srgrn/monoid/formats/vorbis"
	_ "github.com/srgrn/monoid/formats/wav"
)

// Start launches a background conversion of the audio file at inputPath to
// a mono 16-bit WAV next to it and returns the job handle immediately.
//
// The returned handle exposes progress notifications, cooperative
// cancellation and the terminal result:
//
//	job := monoid.Start("podcast.mp3", convert.Options{})
//	res := job.Wait()
//
// See the convert package for the full job lifecycle.
func Start(inputPath string, opts convert.Options) *convert.Job {
	return convert.Start(inputPath, opts)
}

// ConvertToMono converts the audio file at inputPath to a mono 16-bit WAV
// synchronously and returns the output path. It is a convenience wrapper
// for callers that do not need progress or cancellation.
func ConvertToMono(inputPath string) (string, error) {
	res := convert.Start(inputPath, convert.Options{}).Wait()
	if res.Err != nil {
		return "", res.Err
	}

	return res.OutputPath, nil
}

// Inspect probes the audio file at path and reports the metadata of its
// first decodable track without converting anything.
func Inspect(path string) (*convert.Info, error) {
	return convert.Inspect(path)
}
