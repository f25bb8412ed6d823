package gosieview

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vector3 is an immutable 3 component vector. Every method returns a new
// value and leaves the receiver untouched.
type Vector3 struct {
	X float64
	Y float64
	Z float64
}

func NewVector3(x, y, z float64) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

func Vector3FromVec(v mgl64.Vec3) Vector3 {
	return Vector3{X: v[0], Y: v[1], Z: v[2]}
}

func (v Vector3) Add(o Vector3) Vector3 {
	return Vector3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

func (v Vector3) Sub(o Vector3) Vector3 {
	return Vector3{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

func (v Vector3) Mul(scalar float64) Vector3 {
	return Vector3{X: v.X * scalar, Y: v.Y * scalar, Z: v.Z * scalar}
}

func (v Vector3) Negate() Vector3 {
	return v.Mul(-1)
}

func (v Vector3) Dot(o Vector3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross calculates the right-handed cross product v × o.
func (v Vector3) Cross(o Vector3) Vector3 {
	return Vector3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// Len does not overflow or underflow for any finite v.
func (v Vector3) Len() float64 {
	return math.Hypot(math.Hypot(v.X, v.Y), v.Z)
}

// Normalize returns the unit vector pointing the same way as v. It fails
// with ErrZeroLength when v has no direction and with ErrNonFinite when a
// component is NaN or infinite.
func (v Vector3) Normalize() (Vector3, error) {
	if !v.finite() {
		return Vector3{}, ErrNonFinite
	}
	largest := math.Max(math.Abs(v.X), math.Max(math.Abs(v.Y), math.Abs(v.Z)))
	if largest == 0 {
		return Vector3{}, ErrZeroLength
	}

	// Bring the largest component to 1 first so the squares stay in range.
	s := Vector3{X: v.X / largest, Y: v.Y / largest, Z: v.Z / largest}
	length := math.Sqrt(s.Dot(s))
	return Vector3{X: s.X / length, Y: s.Y / length, Z: s.Z / length}, nil
}

func (v Vector3) finite() bool {
	return isFinite(v.X) && isFinite(v.Y) && isFinite(v.Z)
}

func (v Vector3) DistanceTo(o Vector3) float64 {
	return v.Sub(o).Len()
}

// ToVector4 promotes v to a point (W=1).
func (v Vector3) ToVector4() Vector4 {
	return Vector4{X: v.X, Y: v.Y, Z: v.Z, W: 1}
}

func (v Vector3) Vec3() mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}
