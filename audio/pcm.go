// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"encoding/binary"
	"fmt"
	"io"
)

// ReadAll drains src using a buffer of bufferSize samples and returns every
// sample read. io.EOF is not reported as an error.
func ReadAll(src Source, bufferSize int) ([]int16, error) {
	c := max(src.Channels(), 1)
	if bufferSize <= 0 {
		bufferSize = c * 1024
	}
	if bufferSize%c != 0 {
		bufferSize += c - bufferSize%c
	}

	out := make([]int16, 0, bufferSize)
	buf := make([]int16, bufferSize)

	for {
		n, err := src.ReadSamples(buf)
		out = append(out, buf[:n]...)

		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return out, fmt.Errorf("%w", err)
		}
	}
}

// PCMReader exposes a Source as a byte stream of little-endian int16 samples,
// the layout audio devices and WAV data chunks expect.
type PCMReader struct {
	src     Source
	samples []int16
	pending []byte
	buf     []byte
	err     error
}

// NewPCMReader reads from src in chunks of bufferSize samples.
func NewPCMReader(src Source, bufferSize int) *PCMReader {
	c := max(src.Channels(), 1)
	if bufferSize < c {
		bufferSize = c
	}
	bufferSize -= bufferSize % c

	return &PCMReader{
		src:     src,
		samples: make([]int16, bufferSize),
		buf:     make([]byte, 2*bufferSize),
	}
}

func (p *PCMReader) Read(b []byte) (int, error) {
	for len(p.pending) == 0 {
		if p.err != nil {
			return 0, p.err
		}

		n, err := p.src.ReadSamples(p.samples)
		for i, s := range p.samples[:n] {
			binary.LittleEndian.PutUint16(p.buf[2*i:], uint16(s))
		}
		p.pending = p.buf[:2*n]
		if err != nil {
			p.err = err
		}
	}

	n := copy(b, p.pending)
	p.pending = p.pending[n:]

	return n, nil
}
