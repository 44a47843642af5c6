// SPDX-License-Identifier: EPL-2.0

package convert

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/srgrn/monoid/audio"
	"github.com/srgrn/monoid/codec"
	"github.com/srgrn/monoid/demux"
	"github.com/srgrn/monoid/formats/wav"
)

const (
	defaultProgressInterval = 100
	defaultProgressBuffer   = 16
)

// Options tune a conversion job. The zero value is usable.
type Options struct {
	// Logger receives job lifecycle events. Defaults to slog.Default().
	Logger *slog.Logger
	// ProgressInterval is how many packets pass between progress
	// notifications. Defaults to 100.
	ProgressInterval int
	// ProgressBuffer is the capacity of the progress channel. When the
	// consumer lags, the oldest pending notification is dropped to make
	// room. Defaults to 16.
	ProgressBuffer int
	// Registry overrides the format registry used for probing. Defaults
	// to demux.Default.
	Registry *demux.Registry
	// OutputPath overrides the derived output path.
	OutputPath string
}

// Job is the handle of one background conversion. Every job owns its own
// cancellation flag and progress state; concurrent jobs do not interfere.
type Job struct {
	inputPath  string
	outputPath string
	opts       Options
	log        *slog.Logger

	cancelled atomic.Bool
	state     atomic.Int32

	progress chan Progress
	result   Result
	done     chan struct{}
}

// Start launches a background conversion of the file at inputPath to a mono
// 16-bit WAV and returns its handle immediately. Success or failure is
// reported through Wait or Done, never synchronously.
func Start(inputPath string, opts Options) *Job {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	if opts.ProgressInterval <= 0 {
		opts.ProgressInterval = defaultProgressInterval
	}

	if opts.ProgressBuffer <= 0 {
		opts.ProgressBuffer = defaultProgressBuffer
	}

	if opts.Registry == nil {
		opts.Registry = demux.Default
	}

	outputPath := opts.OutputPath
	if outputPath == "" {
		outputPath = OutputPath(inputPath)
	}

	j := &Job{
		inputPath:  inputPath,
		outputPath: outputPath,
		opts:       opts,
		log:        opts.Logger.With("input", inputPath),
		progress:   make(chan Progress, opts.ProgressBuffer),
		done:       make(chan struct{}),
	}

	go j.run()

	return j
}

// OutputPath derives the output file path for an input path: the extension
// is stripped and "_mono.wav" appended, so it can never collide with the
// input.
func OutputPath(inputPath string) string {
	return strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + "_mono.wav"
}

// Cancel asks the job to stop. It is idempotent and has no effect once the
// job has finished. Cancellation is cooperative: the decode loop observes
// it within one packet iteration.
func (j *Job) Cancel() {
	j.cancelled.Store(true)
}

// State returns the job's current lifecycle state.
func (j *Job) State() State {
	return State(j.state.Load())
}

// Progress returns the channel of periodic progress notifications. It is
// closed when the job finishes.
func (j *Job) Progress() <-chan Progress {
	return j.progress
}

// Done returns a channel closed when the job reaches a terminal state.
func (j *Job) Done() <-chan struct{} {
	return j.done
}

// Wait blocks until the job finishes and returns its terminal result.
// Unlike progress notifications, the result is always delivered.
func (j *Job) Wait() Result {
	<-j.done
	return j.result
}

func (j *Job) setState(s State) {
	j.state.Store(int32(s))
}

// emitProgress delivers p without blocking the decode loop: when the
// channel is full the oldest pending notification is dropped.
func (j *Job) emitProgress(p Progress) {
	for {
		select {
		case j.progress <- p:
			return
		default:
		}

		select {
		case <-j.progress:
		default:
		}
	}
}

func (j *Job) finish(state State, res Result) {
	j.setState(state)
	j.result = res
	close(j.progress)
	close(j.done)

	if res.Err != nil {
		j.log.Warn("conversion failed", "state", state, "error", res.Err)
		return
	}

	j.log.Info("conversion finished", "output", res.OutputPath)
}

func (j *Job) fail(err error) {
	j.finish(StateFailed, Result{Err: err})
}

// discard abandons the sink and deletes the partial output file. Partial
// files are removed on every failure path, not only cancellation.
func (j *Job) discard(sink *wav.Writer) {
	if sink == nil {
		return
	}

	if err := sink.Close(); err != nil {
		j.log.Warn("closing partial output", "error", err)
	}

	if err := os.Remove(j.outputPath); err != nil {
		j.log.Warn("removing partial output", "error", err)
	}
}

func (j *Job) run() {
	j.log.Debug("converting file")

	j.setState(StateOpening)

	f, err := os.Open(j.inputPath)
	if err != nil {
		j.fail(fmt.Errorf("%w: %v", ErrOpen, err))
		return
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		j.fail(fmt.Errorf("%w: %v", ErrMetadata, err))
		return
	}

	src := demux.NewSource(f, fi.Size())

	j.setState(StateProbing)

	dmx, err := j.opts.Registry.Probe(src)
	if err != nil {
		j.fail(err)
		return
	}

	track, ok := selectTrack(dmx.Tracks())
	if !ok {
		j.fail(ErrNoSupportedTrack)
		return
	}

	if track.SampleRate == 0 {
		j.fail(ErrUnknownSampleRate)
		return
	}

	dec, err := codec.New(track)
	if err != nil {
		j.fail(err)
		return
	}

	if j.cancelled.Load() {
		j.finish(StateCancelled, Result{Err: ErrCancelled})
		return
	}

	sink, err := wav.NewWriter(j.outputPath, track.SampleRate)
	if err != nil {
		j.fail(fmt.Errorf("%w: %v", ErrCreateOutput, err))
		return
	}

	j.setState(StateDecoding)
	j.emitProgress(Progress{})

	totalBytes := src.Size()
	packets := 0

	for {
		if j.cancelled.Load() {
			j.discard(sink)
			j.finish(StateCancelled, Result{Err: ErrCancelled})
			return
		}

		pkt, err := dmx.NextPacket()
		if errors.Is(err, demux.ErrResetRequired) {
			continue
		}

		if err != nil {
			// past a successful probe, any pull error ends the
			// stream, io.EOF or not
			if err != io.EOF {
				j.log.Debug("packet stream ended", "error", err)
			}

			break
		}

		if pkt.TrackID != track.ID {
			continue
		}

		packets++
		if packets%j.opts.ProgressInterval == 0 {
			p := Progress{
				Percent: float64(src.BytesRead()) / float64(totalBytes) * 100.0,
				Packets: packets,
			}
			j.log.Debug("progress", "percent", p.Percent, "packets", packets)
			j.emitProgress(p)
		}

		buf, err := dec.Decode(pkt)
		if err != nil {
			j.discard(sink)
			j.fail(fmt.Errorf("%w: %v", ErrDecode, err))

			return
		}

		if _, err := audio.Downmix(sink, buf); err != nil {
			j.discard(sink)
			j.fail(fmt.Errorf("%w: %v", ErrWrite, err))

			return
		}
	}

	j.setState(StateFinalizing)

	if err := sink.Finalize(); err != nil {
		j.discard(sink)
		j.fail(fmt.Errorf("%w: %v", ErrFinalize, err))

		return
	}

	j.log.Debug("packets processed", "packets", packets)
	j.finish(StateSucceeded, Result{OutputPath: j.outputPath})
}

// selectTrack picks the first track whose codec is decodable.
func selectTrack(tracks []demux.Track) (demux.Track, bool) {
	for _, t := range tracks {
		if t.Format != audio.FormatUnknown {
			return t, true
		}
	}

	return demux.Track{}, false
}
