package math

import "math"

// Mat4 is a 4x4 matrix in column-major order (OpenGL compatible).
// Element (col, row) lives at index col*4+row.
// Layout: [m0 m4 m8  m12]
//
//	[m1 m5 m9  m13]
//	[m2 m6 m10 m14]
//	[m3 m7 m11 m15]
type Mat4 [16]float32

// Identity returns an identity matrix.
func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// SetIdentity resets m to the identity matrix.
func (m *Mat4) SetIdentity() {
	*m = Identity()
}

// Multiply stores a * b in dst: dst[c][r] = sum_k a[k][r] * b[c][k].
// The product is built in a temporary, so dst may alias a or b.
func Multiply(dst, a, b *Mat4) {
	var t Mat4
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += a[k*4+r] * b[c*4+k]
			}
			t[c*4+r] = sum
		}
	}
	*dst = t
}

// Mul multiplies this matrix by another (m * other).
func (m Mat4) Mul(other Mat4) Mat4 {
	var result Mat4
	Multiply(&result, &m, &other)
	return result
}

// Perspective returns a symmetric-frustum perspective projection matrix.
// fovY is the full vertical field of view in radians, aspect is width/height.
// Requires 0 < near < far; this is not checked.
func Perspective(fovY, aspect, near, far float32) Mat4 {
	a := float32(1.0 / math.Tan(float64(fovY)/2.0))

	return Mat4{
		a / aspect, 0, 0, 0,
		0, a, 0, 0,
		0, 0, -((far + near) / (far - near)), -1,
		0, 0, -((2 * far * near) / (far - near)), 0,
	}
}

// TranslateInPlace folds a translation by (x, y, z) into the last column of m,
// expressed in m's own basis.
func (m *Mat4) TranslateInPlace(x, y, z float32) {
	t := Vec4{x, y, z, 0}
	for i := 0; i < 4; i++ {
		r := Vec4{m[0*4+i], m[1*4+i], m[2*4+i], m[3*4+i]}
		m[3*4+i] += r.Dot(t)
	}
}

// LookAt returns a right-handed view matrix looking from eye to center.
// up must not be parallel to center-eye and center must differ from eye;
// see CheckLookAt.
func LookAt(eye, center, up Vec3) Mat4 {
	f := center.Sub(eye).Normalize()
	s := f.Cross(up).Normalize()
	t := s.Cross(f)

	m := Mat4{
		s.X, t.X, -f.X, 0,
		s.Y, t.Y, -f.Y, 0,
		s.Z, t.Z, -f.Z, 0,
		0, 0, 0, 1,
	}
	m.TranslateInPlace(-eye.X, -eye.Y, -eye.Z)
	return m
}

// RotateY returns src rotated around its local Y axis (src * rotation).
// angle is in radians.
func RotateY(src Mat4, angle float32) Mat4 {
	c := float32(math.Cos(float64(angle)))
	s := float32(math.Sin(float64(angle)))

	rot := Identity()
	rot[0] = c
	rot[2] = -s
	rot[8] = s
	rot[10] = c

	return src.Mul(rot)
}

// TransformPoint transforms a 3D point by this matrix (assumes w=1).
func (m Mat4) TransformPoint(p Vec3) Vec3 {
	x := m[0]*p.X + m[4]*p.Y + m[8]*p.Z + m[12]
	y := m[1]*p.X + m[5]*p.Y + m[9]*p.Z + m[13]
	z := m[2]*p.X + m[6]*p.Y + m[10]*p.Z + m[14]
	w := m[3]*p.X + m[7]*p.Y + m[11]*p.Z + m[15]
	if w != 0 && w != 1 {
		return Vec3{x / w, y / w, z / w}
	}
	return Vec3{x, y, z}
}

// IsFinite reports whether every element is a finite number.
func (m Mat4) IsFinite() bool {
	for _, v := range m {
		if !finite(v) {
			return false
		}
	}
	return true
}

// Ptr returns a pointer to the first element (for OpenGL uniform calls).
func (m *Mat4) Ptr() *float32 {
	return &m[0]
}

// DegToRad converts degrees to radians.
func DegToRad(deg float32) float32 {
	return deg * math.Pi / 180
}
