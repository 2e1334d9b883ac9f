// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"io"
	"math"
	"testing"

	"github.com/ik5/audhrtf/internal/audiotest"
)

func drain(t *testing.T, src Source, chunk int) []int16 {
	t.Helper()

	out, err := ReadAll(src, chunk)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}

	return out
}

func TestResampler_Metadata(t *testing.T) {
	t.Parallel()

	resampler := NewResampler(audiotest.NewSilentSource(44100, 2, 1000), 8000)

	if resampler.SampleRate() != 8000 {
		t.Errorf("Resampler.SampleRate() = %d, want 8000", resampler.SampleRate())
	}
	if resampler.Channels() != 2 {
		t.Errorf("Resampler.Channels() = %d, want 2", resampler.Channels())
	}
}

func TestResampler_SameRate(t *testing.T) {
	t.Parallel()

	samples := []int16{0, 1200, -1200, 32767, -32768, 5, -5, 999}
	resampler := NewResampler(audiotest.NewSliceSource(8000, 1, samples), 8000)

	got := drain(t, resampler, 3)
	if len(got) != len(samples) {
		t.Fatalf("read %d samples, want %d", len(got), len(samples))
	}
	for i := range samples {
		if got[i] != samples[i] {
			t.Errorf("sample %d = %d, want %d", i, got[i], samples[i])
		}
	}
}

func TestResampler_FrameCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		from, to int
		frames   int
		want     int
	}{
		{"upsample x2", 8000, 16000, 100, 200},
		{"downsample x2", 16000, 8000, 100, 50},
		{"downsample x2 odd", 16000, 8000, 101, 51},
		{"same rate", 44100, 44100, 77, 77},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := audiotest.NewConstantSource(tt.from, 2, tt.frames, -4000)
			got := drain(t, NewResampler(src, tt.to), 64)

			if len(got) != 2*tt.want {
				t.Fatalf("read %d frames, want %d", len(got)/2, tt.want)
			}
			// a constant stays constant through the filter and interpolation
			for i, s := range got {
				if s != -4000 {
					t.Fatalf("sample %d = %d, want -4000", i, s)
				}
			}
		})
	}
}

func TestResampler_StereoPreserved(t *testing.T) {
	t.Parallel()

	src := audiotest.NewMockSource(44100, 2, 1000, func(_ int, channel int) int16 {
		if channel == 0 {
			return 3000
		}
		return 7000
	})

	got := drain(t, NewResampler(src, 8000), 20)
	if len(got) == 0 {
		t.Fatal("no samples read")
	}

	// ceil(1000 * 8000 / 44100) frames, give or take rounding in the step
	if frames := len(got) / 2; frames < 181 || frames > 183 {
		t.Errorf("read %d frames, want about 182", frames)
	}

	for f := range len(got) / 2 {
		if got[2*f] != 3000 || got[2*f+1] != 7000 {
			t.Fatalf("frame %d = (%d, %d), want (3000, 7000)", f, got[2*f], got[2*f+1])
		}
	}
}

func TestResampler_SineShape(t *testing.T) {
	t.Parallel()

	// 100 Hz at 8 kHz upsampled to 16 kHz: every output sample should sit
	// close to the ideal sine at its own time
	const amp = 10000
	src := audiotest.NewSineSource(8000, 1, 800, 100, amp)
	got := drain(t, NewResampler(src, 16000), 256)

	for i := 4; i < len(got)-4; i++ {
		want := amp * math.Sin(2*math.Pi*100*float64(i)/16000)
		if math.Abs(float64(got[i])-want) > 60 {
			t.Fatalf("sample %d = %d, want about %.0f", i, got[i], want)
		}
	}
}

func TestResampler_EOF(t *testing.T) {
	t.Parallel()

	resampler := NewResampler(audiotest.NewSilentSource(44100, 1, 100), 8000)
	drain(t, resampler, 1024)

	n, err := resampler.ReadSamples(make([]int16, 16))
	if n != 0 || err != io.EOF {
		t.Errorf("after EOF ReadSamples() = (%d, %v), want (0, EOF)", n, err)
	}
}

func TestResampler_EmptySource(t *testing.T) {
	t.Parallel()

	resampler := NewResampler(audiotest.NewSilentSource(44100, 2, 0), 8000)

	n, err := resampler.ReadSamples(make([]int16, 16))
	if n != 0 || err != io.EOF {
		t.Errorf("ReadSamples() = (%d, %v), want (0, EOF)", n, err)
	}
}

func TestResampler_VeryShortSource(t *testing.T) {
	t.Parallel()

	got := drain(t, NewResampler(audiotest.NewConstantSource(8000, 1, 1, 42), 16000), 10)
	if len(got) != 2 || got[0] != 42 || got[1] != 42 {
		t.Errorf("single frame upsampled = %v, want [42 42]", got)
	}
}

type errSource struct {
	Source
}

func (errSource) ReadSamples([]int16) (int, error) { return 0, errors.New("device gone") }

func TestResampler_SourceError(t *testing.T) {
	t.Parallel()

	resampler := NewResampler(errSource{audiotest.NewSilentSource(8000, 1, 10)}, 16000)
	if _, err := resampler.ReadSamples(make([]int16, 4)); err == nil || err == io.EOF {
		t.Errorf("ReadSamples() error = %v, want source error", err)
	}
}

func TestResampler_InvalidDstSize(t *testing.T) {
	t.Parallel()

	resampler := NewResampler(audiotest.NewSilentSource(44100, 2, 1000), 8000)
	if _, err := resampler.ReadSamples(make([]int16, 7)); err != ErrInvalidDstSize {
		t.Errorf("ReadSamples() with invalid size error = %v, want ErrInvalidDstSize", err)
	}
}

func TestResampler_Close(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSilentSource(44100, 2, 10)
	if err := NewResampler(src, 8000).Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if !src.Closed() {
		t.Error("Close() did not close the source")
	}
}

func TestResampler_ConsecutiveReadsMatchSingleRead(t *testing.T) {
	t.Parallel()

	whole := drain(t, NewResampler(audiotest.NewSineSource(44100, 2, 2000, 440, 8000), 22050), 8192)
	split := drain(t, NewResampler(audiotest.NewSineSource(44100, 2, 2000, 440, 8000), 22050), 6)

	if len(whole) != len(split) {
		t.Fatalf("lengths differ: %d vs %d", len(whole), len(split))
	}
	for i := range whole {
		if whole[i] != split[i] {
			t.Fatalf("sample %d differs: %d vs %d", i, whole[i], split[i])
		}
	}
}

func TestResampler_MinimalAllocs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping allocation test in short mode")
	}

	src := audiotest.NewSineSource(44100, 2, 1000000, 440, 8000)
	resampler := NewResampler(src, 8000)
	buf := make([]int16, 4096)
	resampler.ReadSamples(buf)

	allocs := testing.AllocsPerRun(100, func() {
		_, _ = resampler.ReadSamples(buf)
	})
	if allocs > 0 {
		t.Errorf("Resampler.ReadSamples() allocated %v times per call", allocs)
	}
}

func BenchmarkResampler_Downsample(b *testing.B) {
	src := audiotest.NewSineSource(44100, 2, 100000, 440, 8000)
	resampler := NewResampler(src, 8000)
	buf := make([]int16, 4096)

	b.ReportAllocs()
	for b.Loop() {
		if _, err := resampler.ReadSamples(buf); err == io.EOF {
			src.Reset()
			resampler = NewResampler(src, 8000)
		}
	}
}

func BenchmarkResampler_Upsample(b *testing.B) {
	src := audiotest.NewSineSource(8000, 2, 100000, 440, 8000)
	resampler := NewResampler(src, 44100)
	buf := make([]int16, 4096)

	b.ReportAllocs()
	for b.Loop() {
		if _, err := resampler.ReadSamples(buf); err == io.EOF {
			src.Reset()
			resampler = NewResampler(src, 44100)
		}
	}
}
