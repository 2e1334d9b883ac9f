// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 files with github.com/hajimehoshi/go-mp3.
//
// go-mp3 always emits 16-bit stereo at the file's sample rate, so the source
// reports two channels even for mono MP3s:
//
//	src, err := mp3.Decoder{}.Decode(file)
//	buf := make([]int16, 4096)
//	n, err := src.ReadSamples(buf)
//
// Pair it with audio.NewResampler to match an impulse-response dataset's rate.
package mp3
