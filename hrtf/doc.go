// SPDX-License-Identifier: EPL-2.0

// Package hrtf renders a sound source as a binaural signal from measured
// head-related impulse responses.
//
// # Dataset
//
// A Dataset is loaded once from a directory of left-ear impulse responses,
// one file per direction:
//
//	elev{e}/L{e}e{a:03}a.dat
//
// for elevations e in -40, -30, ..., 90 and azimuths a in 0..359. Each file
// holds 512 big-endian int16 taps. Missing files are missing measurements,
// but every elevation band needs at least one, otherwise loading fails with
// a *CoverageError:
//
//	ds, err := hrtf.Load("full", hrtf.WithLogger(logger))
//	if errors.Is(err, hrtf.ErrNoCoverage) {
//	    // incomplete dataset
//	}
//
// The right ear's response for azimuth a is the left ear's response for
// azimuth 360-a. A Dataset is read-only and can be shared by many engines.
//
// # Engine
//
// An Engine holds one source/listener geometry and the tail of the previous
// block. Each ProcessBlock call picks the elevation band and the nearest
// measured azimuth, convolves the mono downmix with both ears' filters,
// divides by the integer distance and advances the tail:
//
//	e, _ := hrtf.NewEngine(ds)
//	e.SetSourcePosition(1, 0, 0)
//	status := e.ProcessBlock(left, right) // left and right rewritten in place
//
// Degenerate geometry and mismatched channel lengths are reported through
// Status and leave the block untouched.
//
// An Engine must be driven from one goroutine at a time, normally the audio
// callback that owns it.
//
// # Streaming
//
// Source adapts an Engine to audio.Source so decoded files can be rendered
// with the rest of the audio pipeline, optionally moving the source between
// blocks with a Trajectory such as Orbit.
package hrtf
