// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes 16-bit PCM WAV files.
//
// Decoding is done by github.com/go-audio/wav, which walks the RIFF chunk list,
// so files with LIST or other extra chunks before the data chunk are accepted.
// Any channel count and sample rate is supported; only 16-bit integer PCM is.
//
//	src, err := wav.Decoder{}.Decode(file)
//	if errors.Is(err, wav.ErrNotWavFile) {
//	    // not a RIFF/WAVE stream
//	}
//	buf := make([]int16, 4096)
//	n, err := src.ReadSamples(buf)
//
// WritePCM16 writes interleaved samples with a canonical 44-byte header:
//
//	err := wav.WritePCM16(out, 44100, 2, stereo)
package wav
