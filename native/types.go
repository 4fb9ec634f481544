package native

// Ptr is a raw native address. All pointer-typed C fields are mirrored as
// Ptr so struct size and field offsets match the C ABI on 64-bit targets.
type Ptr = uintptr

// Vector2 mirrors aiVector2D.
type Vector2 struct {
	X, Y float32
}

// Vector3 mirrors aiVector3D.
type Vector3 struct {
	X, Y, Z float32
}

// Color3 mirrors aiColor3D.
type Color3 struct {
	R, G, B float32
}

// Color4 mirrors aiColor4D.
type Color4 struct {
	R, G, B, A float32
}

// Quaternion mirrors aiQuaternion (w, x, y, z order).
type Quaternion struct {
	W, X, Y, Z float32
}

// Matrix4x4 mirrors aiMatrix4x4: row-major, translation in the fourth
// column (A4, B4, C4).
type Matrix4x4 struct {
	A1, A2, A3, A4 float32
	B1, B2, B3, B4 float32
	C1, C2, C3, C4 float32
	D1, D2, D3, D4 float32
}

// AABB mirrors aiAABB.
type AABB struct {
	Min Vector3
	Max Vector3
}

// Texel mirrors aiTexel, BGRA byte order.
type Texel struct {
	B, G, R, A uint8
}
