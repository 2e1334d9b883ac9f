// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis files with github.com/jfreymuth/oggvorbis.
//
// Vorbis decodes to floating point; samples are scaled and clamped to int16
// so the stream can go straight into the binaural renderer:
//
//	src, err := vorbis.Decoder{}.Decode(file)
//	buf := make([]int16, 4096)
//	n, err := src.ReadSamples(buf)
package vorbis
