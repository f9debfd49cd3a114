// Package lighting provides the directional light used for shading.
package lighting

import (
	stdmath "math"

	"github.com/Faultbox/roonium/pkg/math"
)

// SunDirection converts longitude/latitude angles in degrees to a unit
// vector pointing towards the light. Longitude rotates around Y starting at
// +Z, latitude is the elevation above the horizon.
func SunDirection(longitude, latitude float32) math.Vec3 {
	lon := float64(math.DegToRad(longitude))
	lat := float64(math.DegToRad(latitude))

	return math.Vec3{
		X: float32(stdmath.Cos(lat) * stdmath.Sin(lon)),
		Y: float32(stdmath.Sin(lat)),
		Z: float32(stdmath.Cos(lat) * stdmath.Cos(lon)),
	}
}
