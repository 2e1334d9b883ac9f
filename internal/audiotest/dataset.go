// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"testing/fstest"
)

const (
	taps       = 512
	bands      = 14
	bandOffset = 4
)

// Measurement is one left-ear impulse response placed in a synthetic dataset.
type Measurement struct {
	Band    int
	Azimuth int
	Taps    []int16
}

// DatasetPath mirrors the on-disk naming of an impulse response file.
func DatasetPath(band, azimuth int) string {
	elev := (band - bandOffset) * 10
	return fmt.Sprintf("elev%d/L%de%03da.dat", elev, elev, azimuth)
}

// EncodeImpulse returns the 1024-byte big-endian encoding of taps, zero padded
// or truncated to 512 samples.
func EncodeImpulse(t []int16) []byte {
	out := make([]byte, taps*2)
	for i := 0; i < taps && i < len(t); i++ {
		binary.BigEndian.PutUint16(out[2*i:], uint16(t[i]))
	}

	return out
}

// Impulse returns a filter with value at tap index and zeros elsewhere.
func Impulse(index int, value int16) []int16 {
	t := make([]int16, taps)
	t[index] = value
	return t
}

// EveryBand returns one measurement per elevation band at azimuth, all with
// the same taps. Combine it with specific measurements to satisfy coverage.
func EveryBand(azimuth int, t []int16) []Measurement {
	ms := make([]Measurement, 0, bands)
	for b := range bands {
		ms = append(ms, Measurement{Band: b, Azimuth: azimuth, Taps: t})
	}

	return ms
}

// DatasetFS builds an in-memory dataset. Later measurements replace earlier
// ones at the same direction.
func DatasetFS(ms ...Measurement) fstest.MapFS {
	fsys := fstest.MapFS{}
	for _, m := range ms {
		fsys[DatasetPath(m.Band, m.Azimuth)] = &fstest.MapFile{
			Data: EncodeImpulse(m.Taps),
			Mode: 0o644,
		}
	}

	return fsys
}

// WriteDataset writes measurements under dir using the on-disk layout.
func WriteDataset(dir string, ms ...Measurement) error {
	for _, m := range ms {
		p := filepath.Join(dir, filepath.FromSlash(DatasetPath(m.Band, m.Azimuth)))
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(p, EncodeImpulse(m.Taps), 0o644); err != nil {
			return err
		}
	}

	return nil
}
