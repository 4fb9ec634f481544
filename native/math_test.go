package native

import (
	"testing"

	"github.com/chewxy/math32"
)

const eps = 1e-5

func almostEqual(a, b float32) bool { return math32.Abs(a-b) <= eps }

func vecEqual(a, b Vector3) bool {
	return almostEqual(a.X, b.X) && almostEqual(a.Y, b.Y) && almostEqual(a.Z, b.Z)
}

func TestVector3Ops(t *testing.T) {
	a := Vector3{1, 2, 3}
	b := Vector3{4, 5, 6}

	if got := a.Add(b); !vecEqual(got, Vector3{5, 7, 9}) {
		t.Errorf("Add = %v", got)
	}
	if got := a.Dot(b); !almostEqual(got, 32) {
		t.Errorf("Dot = %v", got)
	}
	if got := a.Cross(b); !vecEqual(got, Vector3{-3, 6, -3}) {
		t.Errorf("Cross = %v", got)
	}
	if got := (Vector3{3, 4, 0}).Length(); !almostEqual(got, 5) {
		t.Errorf("Length = %v", got)
	}
	if got := (Vector3{0, 0, 7}).Normalized(); !vecEqual(got, Vector3{0, 0, 1}) {
		t.Errorf("Normalized = %v", got)
	}
	if got := (Vector3{}).Normalized(); !vecEqual(got, Vector3{}) {
		t.Errorf("zero Normalized = %v", got)
	}
}

func TestQuaternionRotation(t *testing.T) {
	// 90 degrees about Z maps +X to +Y.
	half := math32.Pi / 4
	q := Quaternion{W: math32.Cos(half), Z: math32.Sin(half)}
	m := q.RotationMatrix()
	if got := m.TransformPosition(Vector3{1, 0, 0}); !vecEqual(got, Vector3{0, 1, 0}) {
		t.Errorf("rotated +X = %v, want +Y", got)
	}

	if got := (Quaternion{}).Normalized(); got != (Quaternion{W: 1}) {
		t.Errorf("zero quaternion normalized to %v, want identity", got)
	}
}

func TestMatrixComposition(t *testing.T) {
	if !Identity().IsIdentity(eps) {
		t.Fatal("Identity() not identity")
	}
	tr := Translation(Vector3{10, 0, 0})
	sc := Scaling(Vector3{2, 2, 2})

	// Row-major with translation in the fourth column: M * p applies M.
	got := tr.Mul(sc).TransformPosition(Vector3{1, 1, 1})
	if !vecEqual(got, Vector3{12, 2, 2}) {
		t.Errorf("translate(scale(p)) = %v, want {12 2 2}", got)
	}

	if m := tr.Transposed().Transposed(); m != tr {
		t.Error("double transpose changed matrix")
	}
}
