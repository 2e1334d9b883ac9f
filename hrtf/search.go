// SPDX-License-Identifier: EPL-2.0

package hrtf

// halfRange is the modulus of the compatibility azimuth probe, which only
// ever visits 0..180.
const halfRange = 181

// resolveAzimuth finds the measured azimuth used for az in band.
//
// The probe alternates downward and upward from az inside 0..180, checking the
// downward candidate first. Bands measured only on 181..359 are never reached by
// that probe, so after a full lap it falls back to the nearest measured azimuth
// on the whole circle.
func (d *Dataset) resolveAzimuth(band, az int) int {
	down, up := az, az
	for range halfRange {
		if d.Present(band, down) {
			return down
		}
		if d.Present(band, up) {
			return up
		}
		down = (down + halfRange - 1) % halfRange
		up = (up + 1) % halfRange
	}

	return d.nearestAzimuth(band, az)
}

// nearestAzimuth returns the measured azimuth in band with the smallest
// circular distance to az, preferring the lower-numbered side on ties.
// It returns az itself when the band is empty.
func (d *Dataset) nearestAzimuth(band, az int) int {
	az = ((az % Azimuths) + Azimuths) % Azimuths
	for dist := range Azimuths/2 + 1 {
		lo := (az - dist + Azimuths) % Azimuths
		if d.Present(band, lo) {
			return lo
		}
		hi := (az + dist) % Azimuths
		if d.Present(band, hi) {
			return hi
		}
	}

	return az
}
