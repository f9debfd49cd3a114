package math

// Vec4 is a 4-component vector.
type Vec4 [4]float32

// Dot returns the inner product of v and other.
func (v Vec4) Dot(other Vec4) float32 {
	return v[0]*other[0] + v[1]*other[1] + v[2]*other[2] + v[3]*other[3]
}
