// SPDX-License-Identifier: EPL-2.0

package audio_test

import (
	"fmt"
	"io"

	"github.com/ik5/audhrtf/audio"
	"github.com/ik5/audhrtf/internal/audiotest"
)

// Example_resampler demonstrates how to use the Resampler to change sample rates.
func Example_resampler() {
	// one second of a 440 Hz tone at 48 kHz
	source := audiotest.NewSineSource(48000, 1, 48000, 440, 16000)

	resampler := audio.NewResampler(source, 16000)

	fmt.Printf("Output sample rate: %d Hz\n", resampler.SampleRate())
	fmt.Printf("Channels: %d\n", resampler.Channels())

	buf := make([]int16, 4096)
	totalSamples := 0

	for {
		n, err := resampler.ReadSamples(buf)
		totalSamples += n

		if err == io.EOF {
			break
		}
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
	}

	fmt.Printf("Total samples read: %d\n", totalSamples)
	// Output:
	// Output sample rate: 16000 Hz
	// Channels: 1
	// Total samples read: 16000
}

// Example_stereoMixer demonstrates widening mono to stereo.
func Example_stereoMixer() {
	source := audiotest.NewSliceSource(16000, 1, []int16{10, 20, 30})

	stereo := audio.NewStereoMixer(source)

	fmt.Printf("Input channels: %d\n", source.Channels())
	fmt.Printf("Output channels: %d\n", stereo.Channels())

	samples, _ := audio.ReadAll(stereo, 0)
	fmt.Println(samples)
	// Output:
	// Input channels: 1
	// Output channels: 2
	// [10 10 20 20 30 30]
}

// Example_processingChain resamples a quad file, folds it to stereo and
// exposes it as little-endian bytes for a sound card.
func Example_processingChain() {
	source := audiotest.NewConstantSource(88200, 4, 8820, 1000)

	resampled := audio.NewResampler(source, 44100)
	stereo := audio.NewStereoMixer(resampled)

	data, err := io.ReadAll(audio.NewPCMReader(stereo, 1024))
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Printf("%d Hz, %d channels, %d bytes\n", stereo.SampleRate(), stereo.Channels(), len(data))
	// Output:
	// 44100 Hz, 2 channels, 17640 bytes
}
