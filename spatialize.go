// SPDX-License-Identifier: EPL-2.0

package audhrtf

import (
	"fmt"

	"github.com/ik5/audhrtf/audio"
	"github.com/ik5/audhrtf/hrtf"
)

// SpatializeToStereo16 renders src as binaural stereo through e and collects
// the result as interleaved 16-bit PCM.
//
// The pipeline is:
//  1. resample src to targetRate, the rate the impulse responses were measured at
//  2. fold its channels to stereo
//  3. run e over blocks of blockFrames frames, calling trajectory before each
//  4. read everything back
//
// trajectory may be nil to keep the engine's geometry fixed. The engine's
// history is carried over from whatever it processed before.
//
// Returns the samples, the output sample rate and any decoding error.
func SpatializeToStereo16(src audio.Source, e *hrtf.Engine, targetRate, blockFrames int, trajectory hrtf.Trajectory) ([]int16, int, error) {
	if targetRate <= 0 {
		return nil, 0, fmt.Errorf("%w: %d", audio.ErrInvalidRate, targetRate)
	}

	var stream audio.Source = src
	if src.SampleRate() != targetRate {
		stream = audio.NewResampler(stream, targetRate)
	}
	stream = audio.NewStereoMixer(stream)

	binaural, err := hrtf.NewSource(stream, e, blockFrames, trajectory)
	if err != nil {
		return nil, targetRate, fmt.Errorf("%w", err)
	}

	pcm, err := audio.ReadAll(binaural, 2*blockFrames)
	if err != nil {
		return nil, targetRate, fmt.Errorf("%w", err)
	}

	return pcm, targetRate, nil
}
