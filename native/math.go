package native

import "github.com/chewxy/math32"

// Float32 linear algebra for the value types. Only what the binding and
// its callers need for transforms; the native library does the heavy
// geometry work.

func (v Vector3) Add(o Vector3) Vector3 {
	return Vector3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

func (v Vector3) Sub(o Vector3) Vector3 {
	return Vector3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

func (v Vector3) Scale(s float32) Vector3 {
	return Vector3{v.X * s, v.Y * s, v.Z * s}
}

func (v Vector3) Dot(o Vector3) float32 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

func (v Vector3) Cross(o Vector3) Vector3 {
	return Vector3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

func (v Vector3) Length() float32 {
	return math32.Sqrt(v.Dot(v))
}

// Normalized returns v scaled to unit length; the zero vector is returned
// unchanged.
func (v Vector3) Normalized() Vector3 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}

func (q Quaternion) Length() float32 {
	return math32.Sqrt(q.W*q.W + q.X*q.X + q.Y*q.Y + q.Z*q.Z)
}

// Normalized returns q scaled to unit length; the zero quaternion becomes
// identity.
func (q Quaternion) Normalized() Quaternion {
	l := q.Length()
	if l == 0 {
		return Quaternion{W: 1}
	}
	inv := 1 / l
	return Quaternion{q.W * inv, q.X * inv, q.Y * inv, q.Z * inv}
}

// RotationMatrix expands q into a 3x3 rotation embedded in a 4x4 matrix.
func (q Quaternion) RotationMatrix() Matrix4x4 {
	n := q.Normalized()
	w, x, y, z := n.W, n.X, n.Y, n.Z
	m := Identity()
	m.A1 = 1 - 2*(y*y+z*z)
	m.A2 = 2 * (x*y - z*w)
	m.A3 = 2 * (x*z + y*w)
	m.B1 = 2 * (x*y + z*w)
	m.B2 = 1 - 2*(x*x+z*z)
	m.B3 = 2 * (y*z - x*w)
	m.C1 = 2 * (x*z - y*w)
	m.C2 = 2 * (y*z + x*w)
	m.C3 = 1 - 2*(x*x+y*y)
	return m
}

// Identity returns the 4x4 identity matrix.
func Identity() Matrix4x4 {
	return Matrix4x4{
		A1: 1,
		B2: 1,
		C3: 1,
		D4: 1,
	}
}

// IsIdentity reports whether m is the identity within epsilon.
func (m Matrix4x4) IsIdentity(epsilon float32) bool {
	id := Identity()
	a := [16]float32{m.A1, m.A2, m.A3, m.A4, m.B1, m.B2, m.B3, m.B4, m.C1, m.C2, m.C3, m.C4, m.D1, m.D2, m.D3, m.D4}
	b := [16]float32{id.A1, id.A2, id.A3, id.A4, id.B1, id.B2, id.B3, id.B4, id.C1, id.C2, id.C3, id.C4, id.D1, id.D2, id.D3, id.D4}
	for i := range a {
		if math32.Abs(a[i]-b[i]) > epsilon {
			return false
		}
	}
	return true
}

// Mul returns m * o (row-major, row vectors on the left).
func (m Matrix4x4) Mul(o Matrix4x4) Matrix4x4 {
	return Matrix4x4{
		A1: m.A1*o.A1 + m.A2*o.B1 + m.A3*o.C1 + m.A4*o.D1,
		A2: m.A1*o.A2 + m.A2*o.B2 + m.A3*o.C2 + m.A4*o.D2,
		A3: m.A1*o.A3 + m.A2*o.B3 + m.A3*o.C3 + m.A4*o.D3,
		A4: m.A1*o.A4 + m.A2*o.B4 + m.A3*o.C4 + m.A4*o.D4,
		B1: m.B1*o.A1 + m.B2*o.B1 + m.B3*o.C1 + m.B4*o.D1,
		B2: m.B1*o.A2 + m.B2*o.B2 + m.B3*o.C2 + m.B4*o.D2,
		B3: m.B1*o.A3 + m.B2*o.B3 + m.B3*o.C3 + m.B4*o.D3,
		B4: m.B1*o.A4 + m.B2*o.B4 + m.B3*o.C4 + m.B4*o.D4,
		C1: m.C1*o.A1 + m.C2*o.B1 + m.C3*o.C1 + m.C4*o.D1,
		C2: m.C1*o.A2 + m.C2*o.B2 + m.C3*o.C2 + m.C4*o.D2,
		C3: m.C1*o.A3 + m.C2*o.B3 + m.C3*o.C3 + m.C4*o.D3,
		C4: m.C1*o.A4 + m.C2*o.B4 + m.C3*o.C4 + m.C4*o.D4,
		D1: m.D1*o.A1 + m.D2*o.B1 + m.D3*o.C1 + m.D4*o.D1,
		D2: m.D1*o.A2 + m.D2*o.B2 + m.D3*o.C2 + m.D4*o.D2,
		D3: m.D1*o.A3 + m.D2*o.B3 + m.D3*o.C3 + m.D4*o.D3,
		D4: m.D1*o.A4 + m.D2*o.B4 + m.D3*o.C4 + m.D4*o.D4,
	}
}

// Transposed returns the transpose of m.
func (m Matrix4x4) Transposed() Matrix4x4 {
	return Matrix4x4{
		A1: m.A1, A2: m.B1, A3: m.C1, A4: m.D1,
		B1: m.A2, B2: m.B2, B3: m.C2, B4: m.D2,
		C1: m.A3, C2: m.B3, C3: m.C3, C4: m.D3,
		D1: m.A4, D2: m.B4, D3: m.C4, D4: m.D4,
	}
}

// Translation returns a matrix translating by t.
func Translation(t Vector3) Matrix4x4 {
	m := Identity()
	m.A4 = t.X
	m.B4 = t.Y
	m.C4 = t.Z
	return m
}

// Scaling returns a matrix scaling by s per axis.
func Scaling(s Vector3) Matrix4x4 {
	m := Identity()
	m.A1 = s.X
	m.B2 = s.Y
	m.C3 = s.Z
	return m
}

// TransformPosition applies m to p as a point (w = 1).
func (m Matrix4x4) TransformPosition(p Vector3) Vector3 {
	return Vector3{
		m.A1*p.X + m.A2*p.Y + m.A3*p.Z + m.A4,
		m.B1*p.X + m.B2*p.Y + m.B3*p.Z + m.B4,
		m.C1*p.X + m.C2*p.Y + m.C3*p.Z + m.C4,
	}
}
