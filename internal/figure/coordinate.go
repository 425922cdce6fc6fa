package figure

import (
	"fmt"
	"strings"
)

// Coordinate is an (x, y) pair in a two-dimensional plot, with optional
// asymmetric error magnitudes on each axis. A coordinate is immutable once
// constructed; the With* methods return modified copies.
//
// Error magnitudes alone are inert: error bars are only drawn when the owning
// plot also carries the matching error character and direction options (see
// XError, XErrorDirection and their y-axis counterparts).
type Coordinate struct {
	x, y       float64
	errX, errY *float64
}

// XY constructs a coordinate without error magnitudes.
func XY(x, y float64) Coordinate {
	return Coordinate{x: x, y: y}
}

// WithXError returns a copy of the coordinate with an error magnitude on the
// x axis.
func (c Coordinate) WithXError(err float64) Coordinate {
	c.errX = &err
	return c
}

// WithYError returns a copy of the coordinate with an error magnitude on the
// y axis.
func (c Coordinate) WithYError(err float64) Coordinate {
	c.errY = &err
	return c
}

// X reports the x value.
func (c Coordinate) X() float64 { return c.x }

// Y reports the y value.
func (c Coordinate) Y() float64 { return c.y }

// String renders the coordinate as a parenthesized comma pair, followed by an
// error suffix when either error magnitude is set. An unset magnitude renders
// as zero in the suffix.
func (c Coordinate) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "(%s,%s)", formatFloat(c.x), formatFloat(c.y))

	if c.errX != nil || c.errY != nil {
		var errX, errY float64
		if c.errX != nil {
			errX = *c.errX
		}
		if c.errY != nil {
			errY = *c.errY
		}
		fmt.Fprintf(&sb, "\t+- (%s,%s)", formatFloat(errX), formatFloat(errY))
	}

	return sb.String()
}
