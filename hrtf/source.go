// SPDX-License-Identifier: EPL-2.0

package hrtf

import (
	"fmt"
	"io"

	"github.com/ik5/audhrtf/audio"
)

// Trajectory is called before each block with the index of the block's first
// frame. It typically moves the source or listener of e.
type Trajectory func(e *Engine, frame int64, sampleRate int)

// Source renders a stereo audio.Source through an Engine in fixed-size
// blocks, as an audio callback would. The final block may be shorter.
//
// It implements audio.Source and produces two interleaved channels.
type Source struct {
	src        audio.Source
	engine     *Engine
	trajectory Trajectory

	block       int
	left, right []int16
	in          []int16
	out         []int16
	pending     []int16

	frame   int64
	skipped int
	err     error
}

// NewSource wraps src, which must have two channels. blockFrames is the number
// of frames handed to ProcessBlock per call. trajectory may be nil.
func NewSource(src audio.Source, e *Engine, blockFrames int, trajectory Trajectory) (*Source, error) {
	if e == nil {
		return nil, ErrNilEngine
	}
	if src.Channels() != 2 {
		return nil, fmt.Errorf("%w: got %d channels", ErrNotStereo, src.Channels())
	}
	if blockFrames <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBlockSize, blockFrames)
	}

	return &Source{
		src:        src,
		engine:     e,
		trajectory: trajectory,
		block:      blockFrames,
		left:       make([]int16, blockFrames),
		right:      make([]int16, blockFrames),
		in:         make([]int16, 2*blockFrames),
		out:        make([]int16, 2*blockFrames),
	}, nil
}

func (s *Source) SampleRate() int { return s.src.SampleRate() }
func (s *Source) Channels() int   { return 2 }
func (s *Source) BufSize() int    { return 2 * s.block }

func (s *Source) Close() error {
	if err := s.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// Skipped counts blocks that ProcessBlock passed through unchanged.
func (s *Source) Skipped() int { return s.skipped }

// Frames is the number of frames rendered so far.
func (s *Source) Frames() int64 { return s.frame }

func (s *Source) ReadSamples(dst []int16) (int, error) {
	if len(dst)%2 != 0 {
		return 0, audio.ErrInvalidDstSize
	}

	written := 0
	for written < len(dst) {
		if len(s.pending) == 0 {
			if s.err != nil {
				if written > 0 && s.err == io.EOF {
					return written, nil
				}
				return written, s.err
			}
			s.renderBlock()
			continue
		}

		n := copy(dst[written:], s.pending)
		s.pending = s.pending[n:]
		written += n
	}

	return written, nil
}

// renderBlock reads up to one block, spatializes it and queues the result.
func (s *Source) renderBlock() {
	filled := 0
	for filled < len(s.in) {
		n, err := s.src.ReadSamples(s.in[filled:])
		filled += n
		if err != nil {
			s.err = err
			break
		}
		if n == 0 {
			break
		}
	}

	frames := filled / 2
	if frames == 0 {
		if s.err == nil {
			s.err = io.EOF
		}
		return
	}

	for f := range frames {
		s.left[f] = s.in[2*f]
		s.right[f] = s.in[2*f+1]
	}

	if s.trajectory != nil {
		s.trajectory(s.engine, s.frame, s.src.SampleRate())
	}
	if s.engine.ProcessBlock(s.left[:frames], s.right[:frames]).Skipped() {
		s.skipped++
	}
	s.frame += int64(frames)

	for f := range frames {
		s.out[2*f] = s.left[f]
		s.out[2*f+1] = s.right[f]
	}
	s.pending = s.out[:2*frames]
}
