// SPDX-License-Identifier: EPL-2.0

package hrtf

import (
	"fmt"
	"math"

	"github.com/ik5/audhrtf/geom"
)

// TapFractionBits is the number of fractional bits in stored filter taps.
// Convolution sums are shifted right by this amount to land back in sample
// range.
const TapFractionBits = 16

// Status tells whether ProcessBlock touched the block.
type Status int

const (
	// StatusProcessed means the block was spatialized and history advanced.
	StatusProcessed Status = iota
	// StatusSkippedGeometry means the source sits on the listener or the face
	// or up vector is zero. The block and history are untouched.
	StatusSkippedGeometry
	// StatusSkippedLength means the channels differ in length. The block and
	// history are untouched.
	StatusSkippedLength
)

func (s Status) String() string {
	switch s {
	case StatusProcessed:
		return "processed"
	case StatusSkippedGeometry:
		return "skipped: degenerate geometry"
	case StatusSkippedLength:
		return "skipped: channel length mismatch"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Skipped reports whether the block was left unchanged.
func (s Status) Skipped() bool { return s != StatusProcessed }

// Selection is the filter pair chosen for the current geometry.
type Selection struct {
	// Band is the elevation band index.
	Band int
	// Azimuth is the measured azimuth found by the nearest-available search.
	Azimuth int
	// Mirror is the measured azimuth used for the opposite ear.
	Mirror int
	// Swapped is set when the source is on the listener's left, so the
	// Azimuth filter feeds the right channel instead of the left.
	Swapped bool
	// Divisor is the integer distance attenuation, 1 within unit distance.
	Divisor int
}

// EngineOption configures an Engine.
type EngineOption func(*engineConfig) error

type engineConfig struct {
	fractionBits int
}

// WithFractionBits overrides TapFractionBits for datasets stored in another
// fixed-point format.
func WithFractionBits(bits int) EngineOption {
	return func(c *engineConfig) error {
		if bits < 0 || bits > 48 {
			return fmt.Errorf("%w: fraction bits must be in [0, 48], got %d", ErrInvalidOption, bits)
		}
		c.fractionBits = bits
		return nil
	}
}

// Engine spatializes one sound source for one listener.
//
// The geometry setters only store values. ProcessBlock is the single
// operation with a side effect beyond its arguments: every processed block
// advances the engine's history so the next block convolves against its tail.
// An Engine is not safe for concurrent use; many engines may share a Dataset.
type Engine struct {
	dataset *Dataset
	shift   uint

	src, dest geom.Vector3
	face, up  geom.Vector3

	history [TapCount]int16
	mid     []int16
}

// NewEngine creates an engine over d with the listener at the origin facing
// +Y with +Z up, and the source one unit to the right.
func NewEngine(d *Dataset, opts ...EngineOption) (*Engine, error) {
	if d == nil {
		return nil, ErrNilDataset
	}

	cfg := engineConfig{fractionBits: TapFractionBits}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	return &Engine{
		dataset: d,
		shift:   uint(cfg.fractionBits),
		src:     geom.Vec3(1, 0, 0),
		face:    geom.Vec3(0, 1, 0),
		up:      geom.Vec3(0, 0, 1),
	}, nil
}

// Open loads the dataset at root and returns an engine bound to it.
func Open(root string, opts ...Option) (*Engine, error) {
	d, err := Load(root, opts...)
	if err != nil {
		return nil, fmt.Errorf("load hrtf dataset: %w", err)
	}

	return NewEngine(d)
}

func (e *Engine) Dataset() *Dataset { return e.dataset }

func (e *Engine) SetListenerPosition(x, y, z float64) { e.dest = geom.Vec3(x, y, z) }
func (e *Engine) SetSourcePosition(x, y, z float64)   { e.src = geom.Vec3(x, y, z) }

// SetFaceVector sets the listener's forward direction. It is stored normalized.
func (e *Engine) SetFaceVector(x, y, z float64) { e.face = geom.Vec3(x, y, z).Normalized() }

// SetUpVector sets the listener's up direction. It is stored normalized.
func (e *Engine) SetUpVector(x, y, z float64) { e.up = geom.Vec3(x, y, z).Normalized() }

func (e *Engine) ListenerPosition() geom.Vector3 { return e.dest }
func (e *Engine) SourcePosition() geom.Vector3   { return e.src }
func (e *Engine) FaceVector() geom.Vector3       { return e.face }
func (e *Engine) UpVector() geom.Vector3         { return e.up }

// ClearHistory resets the carried tail to silence.
func (e *Engine) ClearHistory() {
	e.history = [TapCount]int16{}
}

// History returns a copy of the carried tail, oldest sample first.
func (e *Engine) History() [TapCount]int16 {
	return e.history
}

// Resolve computes the filter selection ProcessBlock would use with the
// current geometry. It returns StatusSkippedGeometry for degenerate geometry.
func (e *Engine) Resolve() (Selection, Status) {
	relative := e.src.Sub(e.dest)
	if relative.IsZero() || e.face.IsZero() || e.up.IsZero() {
		return Selection{}, StatusSkippedGeometry
	}

	horizontal := relative.Sub(e.up.Scale(relative.Dot(e.up)))
	lateral := e.face.Cross(e.up)

	// nearest band: 90° from up is elevation 0, which is band bandOffset
	elevation := 90 - relative.AngleDegrees(e.up)
	band := int(math.Floor(bandOffset + 0.5 + elevation/bandStep))
	band = min(max(band, 0), Bands-1)

	az := int(math.Floor(horizontal.AngleDegrees(e.face) + 0.5))
	az = e.dataset.resolveAzimuth(band, az)

	mirror := MirrorAzimuth(az)
	if !e.dataset.Present(band, mirror) {
		mirror = e.dataset.nearestAzimuth(band, mirror)
	}

	divisor := 1
	if n := int(relative.Norm()); n > 1 {
		divisor = n
	}

	return Selection{
		Band:    band,
		Azimuth: az,
		Mirror:  mirror,
		Swapped: horizontal.Dot(lateral) < 0,
		Divisor: divisor,
	}, StatusProcessed
}

// ProcessBlock replaces left and right in place with the binaural rendering
// of their mono downmix, then advances the history with that downmix.
//
// Degenerate geometry or unequal lengths leave both slices and the history
// untouched, reported through the returned Status. Output samples wrap on
// int16 overflow; nothing is clipped.
func (e *Engine) ProcessBlock(left, right []int16) Status {
	sel, status := e.Resolve()
	if status != StatusProcessed {
		return status
	}
	if len(left) != len(right) {
		return StatusSkippedLength
	}

	lf, _ := e.dataset.Lookup(sel.Band, sel.Azimuth)
	rf, _ := e.dataset.Lookup(sel.Band, sel.Mirror)
	if lf == nil || rf == nil {
		// only possible with an empty band, which Load rejects
		return StatusSkippedGeometry
	}
	if sel.Swapped {
		lf, rf = rf, lf
	}

	n := len(left)
	mid := e.downmix(left, right)

	for i := range n {
		var accL, accR int64

		direct := min(i, TapCount-1)
		for j := 0; j <= direct; j++ {
			s := int64(mid[i-j])
			accL += s * int64(lf[j])
			accR += s * int64(rf[j])
		}
		for j := direct + 1; j < TapCount; j++ {
			s := int64(e.history[TapCount+i-j])
			accL += s * int64(lf[j])
			accR += s * int64(rf[j])
		}

		l := int16(accL >> e.shift)
		r := int16(accR >> e.shift)
		if sel.Divisor > 1 {
			l = int16(int(l) / sel.Divisor)
			r = int16(int(r) / sel.Divisor)
		}
		left[i] = l
		right[i] = r
	}

	e.pushHistory(mid)

	return StatusProcessed
}

// downmix averages the channels with an arithmetic shift into the reusable
// mid buffer.
func (e *Engine) downmix(left, right []int16) []int16 {
	n := len(left)
	if cap(e.mid) < n {
		e.mid = make([]int16, n)
	}
	mid := e.mid[:n]

	for i := range n {
		mid[i] = int16((int32(left[i]) + int32(right[i])) >> 1)
	}

	return mid
}

func (e *Engine) pushHistory(mid []int16) {
	n := len(mid)
	if n >= TapCount {
		copy(e.history[:], mid[n-TapCount:])
		return
	}

	copy(e.history[:], e.history[n:])
	copy(e.history[TapCount-n:], mid)
}
