// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/ik5/audhrtf/utils"
)

// Resampler streams from src to a target sample rate using cubic interpolation.
// Works on interleaved samples; preserves channel count.
// A one-pole low-pass runs on the input when downsampling.
//
// An input of N frames yields ceil(N*dstRate/srcRate) output frames.
type Resampler struct {
	src      Source
	dstRate  int
	ratio    float64 // source frames per output frame
	channels int

	// Window around the current source frame k: k-1, k, k+1, k+2, in PCM16
	// units. Slots past either end of the stream repeat the nearest real frame
	// and have hasFrame unset.
	frames   [4][]float32
	hasFrame [4]bool
	primed   bool

	// fractional position between frames[1] and frames[2]
	pos float64

	srcBuf []int16
	eof    bool

	filterState []float32
	seeded      bool
	useFilter   bool
	filterAlpha float32
}

// NewResampler converts src to dstRate, which must be positive.
func NewResampler(src Source, dstRate int) *Resampler {
	channels := src.Channels()
	ratio := float64(src.SampleRate()) / float64(dstRate)

	r := &Resampler{
		src:         src,
		dstRate:     dstRate,
		ratio:       ratio,
		channels:    channels,
		srcBuf:      make([]int16, channels),
		useFilter:   ratio > 1.0,
		filterAlpha: 0.5,
		filterState: make([]float32, channels),
	}

	for i := range r.frames {
		r.frames[i] = make([]float32, channels)
	}

	return r
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// readFrame reads one source frame into dst. It reports false once the source
// is exhausted.
func (r *Resampler) readFrame(dst []float32) (bool, error) {
	if r.eof {
		return false, nil
	}

	n, err := r.src.ReadSamples(r.srcBuf)
	if err == io.EOF {
		r.eof = true
	} else if err != nil {
		return false, fmt.Errorf("%w", err)
	}

	if n < r.channels {
		return false, nil
	}

	if r.useFilter && !r.seeded {
		// start the filter at the first frame instead of ramping from silence
		for c, s := range r.srcBuf {
			r.filterState[c] = float32(s)
		}
		r.seeded = true
	}

	for c, s := range r.srcBuf {
		v := float32(s)
		if r.useFilter {
			v = r.filterAlpha*v + (1-r.filterAlpha)*r.filterState[c]
			r.filterState[c] = v
		}
		dst[c] = v
	}

	return true, nil
}

// fill loads slot i, repeating slot i-1 when the source is done.
func (r *Resampler) fill(i int) error {
	ok, err := r.readFrame(r.frames[i])
	if err != nil {
		return err
	}
	if !ok {
		copy(r.frames[i], r.frames[i-1])
	}
	r.hasFrame[i] = ok

	return nil
}

func (r *Resampler) prime() error {
	ok, err := r.readFrame(r.frames[1])
	if err != nil {
		return err
	}
	if !ok {
		return io.EOF
	}

	r.hasFrame[1] = true
	copy(r.frames[0], r.frames[1])

	for i := 2; i < len(r.frames); i++ {
		if err := r.fill(i); err != nil {
			return err
		}
	}
	r.primed = true

	return nil
}

// advance moves the window forward by one source frame.
func (r *Resampler) advance() error {
	r.frames[0], r.frames[1], r.frames[2], r.frames[3] = r.frames[1], r.frames[2], r.frames[3], r.frames[0]
	r.hasFrame[0], r.hasFrame[1], r.hasFrame[2] = r.hasFrame[1], r.hasFrame[2], r.hasFrame[3]

	return r.fill(3)
}

// ReadSamples produces dst samples at the target rate.
// dst length should be a multiple of the channel count.
func (r *Resampler) ReadSamples(dst []int16) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	written := 0
	framesNeeded := len(dst) / r.channels

	for written < framesNeeded {
		for r.pos >= 1.0 {
			r.pos -= 1.0
			if err := r.advance(); err != nil {
				return written * r.channels, err
			}
		}

		if !r.hasFrame[1] {
			return written * r.channels, io.EOF
		}

		alpha := float32(r.pos)
		base := written * r.channels
		for c := range r.channels {
			y := utils.CubicInterpolate(r.frames[0][c], r.frames[1][c], r.frames[2][c], r.frames[3][c], alpha)
			dst[base+c] = utils.ClampInt16(y)
		}

		written++
		r.pos += r.ratio
	}

	return written * r.channels, nil
}
