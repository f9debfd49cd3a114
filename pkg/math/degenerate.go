package math

import (
	"errors"
	"fmt"
)

// ErrDegenerateGeometry is reported by the diagnostic checks when an input
// would produce a collapsed or non-finite basis.
var ErrDegenerateGeometry = errors.New("degenerate geometry")

// parallelEpsilon bounds |cross(forward, up)| below which up is treated as
// parallel to the view direction.
const parallelEpsilon = 1e-6

// CheckLookAt reports whether LookAt(eye, center, up) would yield a
// degenerate basis. LookAt itself never checks.
func CheckLookAt(eye, center, up Vec3) error {
	if !eye.IsFinite() || !center.IsFinite() || !up.IsFinite() {
		return fmt.Errorf("look-at input not finite: %w", ErrDegenerateGeometry)
	}
	f := center.Sub(eye)
	if f.Length() == 0 {
		return fmt.Errorf("look-at eye equals center %v: %w", eye, ErrDegenerateGeometry)
	}
	if f.Normalize().Cross(up.Normalize()).Length() < parallelEpsilon {
		return fmt.Errorf("look-at up %v parallel to forward: %w", up, ErrDegenerateGeometry)
	}
	return nil
}

// CheckNormalize reports whether v has no direction to normalize.
func CheckNormalize(v Vec3) error {
	if !v.IsFinite() {
		return fmt.Errorf("vector %v not finite: %w", v, ErrDegenerateGeometry)
	}
	if v.Length() == 0 {
		return fmt.Errorf("zero-length vector: %w", ErrDegenerateGeometry)
	}
	return nil
}
