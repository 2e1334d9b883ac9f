// SPDX-License-Identifier: EPL-2.0

// Package audio provides the PCM16 streaming primitives that feed the binaural
// renderer.
//
// This package contains:
//   - Source interface for interleaved int16 audio
//   - Resampler for sample rate conversion
//   - StereoMixer to fold any channel layout into two channels
//   - PCMReader to expose a Source as little-endian bytes
//   - Format registry for decoder registration
//
// # Source Interface
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []int16) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// Decoders, processors and the hrtf package's binaural Source all implement
// it, so they chain into pipelines:
//
//	res := audio.NewResampler(src, 44100)
//	stereo := audio.NewStereoMixer(res)
//	buf := make([]int16, 4096)
//	n, err := stereo.ReadSamples(buf)
//
// # Sample Format
//
// Samples are signed 16-bit integers, interleaved by channel. This is the
// format impulse responses are stored in, so the renderer works on it
// directly without float conversion.
//
// # Error Handling
//
// ReadSamples returns io.EOF when no more data is available; it may return
// the final samples together with io.EOF. Always consume n before checking
// err.
package audio
