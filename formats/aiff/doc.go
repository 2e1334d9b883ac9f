// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF files with github.com/go-audio/aiff.
//
// Integer PCM of 8, 16, 24 or 32 bits is accepted and narrowed to 16 bits by
// shifting, keeping the most significant bits:
//
//	src, err := aiff.Decoder{}.Decode(file)
//	if errors.Is(err, aiff.ErrUnsupportedBitDepth) {
//	    // e.g. 12-bit or compressed AIFC
//	}
//
// go-audio needs an io.ReadSeeker; other readers are buffered in memory first.
package aiff
