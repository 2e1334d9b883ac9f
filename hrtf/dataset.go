// SPDX-License-Identifier: EPL-2.0

package hrtf

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"golang.org/x/sync/errgroup"
)

const (
	// TapCount is the number of samples in every impulse response.
	TapCount = 512
	// ImpulseBytes is the on-disk size of one impulse response.
	ImpulseBytes = TapCount * 2

	// Bands is the number of elevation bands, from -40° to 90° in 10° steps.
	Bands = 14
	// Azimuths is the number of azimuth slots per band, one per degree.
	Azimuths = 360

	bandOffset = 4
	bandStep   = 10
)

// ImpulseResponse is one ear's measured filter for one direction. Taps are
// fixed-point values, see TapFractionBits.
type ImpulseResponse [TapCount]int16

// Dataset holds left-ear impulse responses indexed by elevation band and
// azimuth degree. A nil slot means the direction was not measured. The right
// ear is never stored: it is the left-ear response of the mirrored azimuth.
//
// A Dataset is immutable once loaded and safe for concurrent use.
type Dataset struct {
	bands [Bands][Azimuths]*ImpulseResponse
}

// ElevationDegrees converts a band index to its elevation angle.
func ElevationDegrees(band int) int {
	return (band - bandOffset) * bandStep
}

// ImpulsePath is the dataset-relative path of the file holding the
// measurement for band and azimuth.
func ImpulsePath(band, azimuth int) string {
	elev := ElevationDegrees(band)
	return fmt.Sprintf("elev%d/L%de%03da.dat", elev, elev, azimuth)
}

// MirrorAzimuth returns the azimuth reflected across the median plane.
func MirrorAzimuth(azimuth int) int {
	return (Azimuths - azimuth) % Azimuths
}

// Lookup returns the response measured at band and azimuth.
func (d *Dataset) Lookup(band, azimuth int) (*ImpulseResponse, bool) {
	if band < 0 || band >= Bands || azimuth < 0 || azimuth >= Azimuths {
		return nil, false
	}

	ir := d.bands[band][azimuth]
	return ir, ir != nil
}

// Present reports whether a measurement exists for band and azimuth.
func (d *Dataset) Present(band, azimuth int) bool {
	_, ok := d.Lookup(band, azimuth)
	return ok
}

// Coverage counts the measured azimuths in band.
func (d *Dataset) Coverage(band int) int {
	if band < 0 || band >= Bands {
		return 0
	}

	n := 0
	for _, ir := range d.bands[band] {
		if ir != nil {
			n++
		}
	}

	return n
}

// Option configures dataset loading.
type Option func(*loadConfig)

type loadConfig struct {
	logger *slog.Logger
}

// WithLogger sets the logger used to report per-band coverage.
func WithLogger(l *slog.Logger) Option {
	return func(c *loadConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// Load reads a dataset rooted at the directory root. An empty root means the
// current directory.
func Load(root string, opts ...Option) (*Dataset, error) {
	if root == "" {
		root = "."
	}

	return LoadContext(context.Background(), os.DirFS(root), opts...)
}

// LoadFS reads a dataset from fsys.
func LoadFS(fsys fs.FS, opts ...Option) (*Dataset, error) {
	return LoadContext(context.Background(), fsys, opts...)
}

// LoadContext reads every band of the dataset in fsys concurrently.
//
// A missing file is a missing measurement. Loading fails with a
// *CoverageError if any band ends up empty, with ErrImpulseSize if a file is
// not exactly ImpulseBytes long, or with the underlying error for any other
// read failure.
func LoadContext(ctx context.Context, fsys fs.FS, opts ...Option) (*Dataset, error) {
	cfg := loadConfig{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	d := &Dataset{}
	eg, ctx := errgroup.WithContext(ctx)

	for band := range Bands {
		eg.Go(func() error {
			return d.loadBand(ctx, fsys, band, cfg.logger)
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	present := 0
	for band := range Bands {
		present += d.Coverage(band)
	}
	cfg.logger.Info("hrtf dataset loaded", "bands", Bands, "measurements", present)

	return d, nil
}

// loadBand only writes d.bands[band], so bands can load in parallel.
func (d *Dataset) loadBand(ctx context.Context, fsys fs.FS, band int, logger *slog.Logger) error {
	found := 0

	for az := range Azimuths {
		if err := ctx.Err(); err != nil {
			return err
		}

		ir, err := readImpulse(fsys, ImpulsePath(band, az))
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return err
		}

		d.bands[band][az] = ir
		found++
	}

	logger.Debug("hrtf band scanned",
		"band", band,
		"elevation", ElevationDegrees(band),
		"azimuths", found)

	if found == 0 {
		return &CoverageError{Band: band, Elevation: ElevationDegrees(band)}
	}

	return nil
}

func readImpulse(fsys fs.FS, name string) (*ImpulseResponse, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	if len(data) != ImpulseBytes {
		return nil, fmt.Errorf("%s: %w: got %d bytes, want %d", name, ErrImpulseSize, len(data), ImpulseBytes)
	}

	ir := new(ImpulseResponse)
	for i := range ir {
		ir[i] = int16(binary.BigEndian.Uint16(data[2*i:]))
	}

	return ir, nil
}
