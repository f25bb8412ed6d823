package gosieview

import "github.com/go-gl/mathgl/mgl64"

// Vector4 is a homogeneous vector. Points carry W=1 and directions W=0, so
// point-point gives a direction and point+direction stays a point.
type Vector4 struct {
	X float64
	Y float64
	Z float64
	W float64
}

var (
	// WorldUp is the fixed world Y axis used to derive the camera's right vector.
	WorldUp = Vector4{X: 0, Y: 1, Z: 0, W: 0}
	Origin4 = Vector4{X: 0, Y: 0, Z: 0, W: 1}
)

func NewVector4(x, y, z, w float64) Vector4 {
	return Vector4{X: x, Y: y, Z: z, W: w}
}

func NewPoint(x, y, z float64) Vector4 {
	return Vector4{X: x, Y: y, Z: z, W: 1}
}

func NewDirection(x, y, z float64) Vector4 {
	return Vector4{X: x, Y: y, Z: z, W: 0}
}

func Vector4FromVec(v mgl64.Vec4) Vector4 {
	return Vector4{X: v[0], Y: v[1], Z: v[2], W: v[3]}
}

func (v Vector4) Add(o Vector4) Vector4 {
	return Vector4{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z, W: v.W + o.W}
}

func (v Vector4) Sub(o Vector4) Vector4 {
	return Vector4{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z, W: v.W - o.W}
}

func (v Vector4) Mul(scalar float64) Vector4 {
	return Vector4{X: v.X * scalar, Y: v.Y * scalar, Z: v.Z * scalar, W: v.W * scalar}
}

// Dot ignores W.
func (v Vector4) Dot(o Vector4) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross treats both operands as directions; the result has W=0.
func (v Vector4) Cross(o Vector4) Vector4 {
	c := v.ToVector3().Cross(o.ToVector3())
	return Vector4{X: c.X, Y: c.Y, Z: c.Z, W: 0}
}

// Len is the length of the XYZ part.
func (v Vector4) Len() float64 {
	return v.ToVector3().Len()
}

// Normalize scales XYZ to unit length and keeps W as is.
func (v Vector4) Normalize() (Vector4, error) {
	n, err := v.ToVector3().Normalize()
	if err != nil {
		return Vector4{}, err
	}
	return Vector4{X: n.X, Y: n.Y, Z: n.Z, W: v.W}, nil
}

func (v Vector4) finite() bool {
	return v.ToVector3().finite() && isFinite(v.W)
}

// DistanceTo is the Euclidean distance between the XYZ parts.
func (v Vector4) DistanceTo(o Vector4) float64 {
	return v.ToVector3().DistanceTo(o.ToVector3())
}

func (v Vector4) ToVector3() Vector3 {
	return Vector3{X: v.X, Y: v.Y, Z: v.Z}
}

func (v Vector4) Vec4() mgl64.Vec4 {
	return mgl64.Vec4{v.X, v.Y, v.Z, v.W}
}
