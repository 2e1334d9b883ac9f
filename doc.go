// SPDX-License-Identifier: EPL-2.0

// Package audhrtf places a sound at a point in 3D space around a listener
// wearing headphones, using measured head-related impulse responses.
//
// # Quick Start
//
//	// Load the impulse responses once; they can be shared by many engines.
//	ds, err := hrtf.Load("full")
//	if err != nil {
//	    // an elevation band has no measurements, or a file is malformed
//	}
//
//	// One engine per sound source.
//	engine, _ := hrtf.NewEngine(ds)
//	engine.SetSourcePosition(0, 2, 0) // two units in front of the listener
//
//	// Decode any supported file and render it.
//	src, _ := wav.Decoder{}.Decode(file)
//	stereo, rate, err := audhrtf.SpatializeToStereo16(src, engine, 44100, 512, nil)
//
//	wav.WritePCM16(out, rate, 2, stereo)
//
// # Packages
//
//   - geom: 3D vectors
//   - hrtf: dataset loading, the spatialization engine and its streaming Source
//   - audio: PCM16 Source interface, resampling, channel folding, registry
//   - formats/wav, formats/mp3, formats/vorbis, formats/aiff: decoders
//
// # Real-time use
//
// For a live audio callback, skip the pipeline and call Engine.ProcessBlock
// directly with the callback's left and right buffers. It allocates only when
// the block grows past its largest previous size and does no I/O.
//
// cmd/hrtfplay is a complete example that moves a source around the listener
// and either writes the result to a WAV file or plays it.
package audhrtf
