// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// StereoMixer folds any channel layout into two channels.
//
// Mono is copied to both sides. Stereo passes through. With more channels,
// even-numbered channels are averaged into the left output and odd-numbered
// channels into the right.
type StereoMixer struct {
	src Source
	tmp []int16
}

func NewStereoMixer(src Source) *StereoMixer {
	return &StereoMixer{
		src: src,
		tmp: make([]int16, 8192),
	}
}

func (m *StereoMixer) SampleRate() int { return m.src.SampleRate() }
func (m *StereoMixer) Channels() int   { return 2 }
func (m *StereoMixer) BufSize() int    { return m.src.BufSize() }
func (m *StereoMixer) Close() error {
	if err := m.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

func (m *StereoMixer) ReadSamples(dst []int16) (int, error) {
	if len(dst)%2 != 0 {
		return 0, ErrInvalidDstSize
	}
	if len(dst) == 0 {
		return 0, nil
	}

	channels := m.src.Channels()
	if channels == 2 {
		return m.src.ReadSamples(dst)
	}

	frames := len(dst) / 2
	need := frames * channels
	if cap(m.tmp) < need {
		m.tmp = make([]int16, need)
	}
	tmp := m.tmp[:need]

	n, err := m.src.ReadSamples(tmp)
	got := n / channels
	if got == 0 {
		return 0, err
	}

	switch channels {
	case 1:
		for f := range got {
			dst[2*f] = tmp[f]
			dst[2*f+1] = tmp[f]
		}
	default:
		leftCount := int32((channels + 1) / 2)
		rightCount := int32(channels / 2)
		for f := range got {
			var l, r int32
			base := f * channels
			for c := range channels {
				if c&1 == 0 {
					l += int32(tmp[base+c])
				} else {
					r += int32(tmp[base+c])
				}
			}
			dst[2*f] = int16(l / leftCount)
			dst[2*f+1] = int16(r / rightCount)
		}
	}

	return got * 2, err
}
