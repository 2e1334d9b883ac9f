// SPDX-License-Identifier: EPL-2.0

package hrtf

import (
	"errors"
	"fmt"
)

var (
	// ErrNoCoverage indicates an elevation band without a single measured azimuth.
	ErrNoCoverage = errors.New("elevation band has no impulse responses")

	// ErrImpulseSize indicates a dataset file that is not exactly ImpulseBytes long.
	ErrImpulseSize = errors.New("impulse response file has wrong size")

	// ErrNilDataset is returned when an engine is built without a dataset.
	ErrNilDataset = errors.New("dataset must not be nil")

	// ErrNilEngine is returned when a binaural source is built without an engine.
	ErrNilEngine = errors.New("engine must not be nil")

	// ErrNotStereo is returned when the wrapped source is not two-channel.
	ErrNotStereo = errors.New("binaural source needs stereo input")

	// ErrInvalidBlockSize is returned for a non-positive block size.
	ErrInvalidBlockSize = errors.New("block size must be positive")

	// ErrInvalidOption is returned for out of range option values.
	ErrInvalidOption = errors.New("invalid option")
)

// CoverageError reports which elevation band failed the coverage check.
// It unwraps to ErrNoCoverage.
type CoverageError struct {
	Band      int
	Elevation int
}

func (e *CoverageError) Error() string {
	return fmt.Sprintf("band %d (elevation %d): %v", e.Band, e.Elevation, ErrNoCoverage)
}

func (e *CoverageError) Unwrap() error { return ErrNoCoverage }
