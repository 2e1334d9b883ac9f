// SPDX-License-Identifier: EPL-2.0

package hrtf

import "math"

// Orbit moves the source on a horizontal circle of the given radius around
// the listener's position, at height above it, turning speed radians per
// second counter-clockwise from the +X axis.
func Orbit(radius, height, speed float64) Trajectory {
	return func(e *Engine, frame int64, sampleRate int) {
		if sampleRate <= 0 {
			return
		}

		theta := speed * float64(frame) / float64(sampleRate)
		c := e.ListenerPosition()
		e.SetSourcePosition(
			c.X+radius*math.Cos(theta),
			c.Y+radius*math.Sin(theta),
			c.Z+height,
		)
	}
}
