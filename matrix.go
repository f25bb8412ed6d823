package gosieview

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// Matrix4 is an immutable 4x4 matrix. Elements are addressed row-major
// (At(row, col)) and vectors are treated as columns, so A.Mul(B) applied
// to v transforms v by B first and then by A.
//
// Storage is an mgl64.Mat4, which is column-major internally.
type Matrix4 struct {
	m mgl64.Mat4
}

// NewMatrix4 builds a matrix from its 16 elements listed row by row.
func NewMatrix4(
	m11, m12, m13, m14,
	m21, m22, m23, m24,
	m31, m32, m33, m34,
	m41, m42, m43, m44 float64,
) Matrix4 {
	return Matrix4{m: mgl64.Mat4FromRows(
		mgl64.Vec4{m11, m12, m13, m14},
		mgl64.Vec4{m21, m22, m23, m24},
		mgl64.Vec4{m31, m32, m33, m34},
		mgl64.Vec4{m41, m42, m43, m44},
	)}
}

func MatrixFromMat4(m mgl64.Mat4) Matrix4 {
	return Matrix4{m: m}
}

func Identity() Matrix4 {
	return Matrix4{m: mgl64.Ident4()}
}

// CreateRotation returns the Rodrigues rotation of radians about axis.
// axis must already be unit length; a non-unit axis yields a shearing
// matrix and is not corrected here.
func CreateRotation(axis Vector3, radians float64) Matrix4 {
	return Matrix4{m: mgl64.HomogRotate3D(radians, axis.Vec3())}
}

func CreateXRotation(radians float64) Matrix4 {
	return Matrix4{m: mgl64.HomogRotate3DX(radians)}
}

func CreateYRotation(radians float64) Matrix4 {
	return Matrix4{m: mgl64.HomogRotate3DY(radians)}
}

func CreateZRotation(radians float64) Matrix4 {
	return Matrix4{m: mgl64.HomogRotate3DZ(radians)}
}

func CreateTranslation(offset Vector3) Matrix4 {
	return Matrix4{m: mgl64.Translate3D(offset.X, offset.Y, offset.Z)}
}

// CreateScale fails with ErrZeroScale when any axis factor is exactly zero,
// since the result would collapse the subject onto a plane.
func CreateScale(factor Vector3) (Matrix4, error) {
	switch {
	case factor.X == 0:
		return Matrix4{}, fmt.Errorf("scale x: %w", ErrZeroScale)
	case factor.Y == 0:
		return Matrix4{}, fmt.Errorf("scale y: %w", ErrZeroScale)
	case factor.Z == 0:
		return Matrix4{}, fmt.Errorf("scale z: %w", ErrZeroScale)
	}
	return Matrix4{m: mgl64.Scale3D(factor.X, factor.Y, factor.Z)}, nil
}

func CreateUniformScale(factor float64) (Matrix4, error) {
	return CreateScale(NewVector3(factor, factor, factor))
}

// Mul returns m*o.
func (m Matrix4) Mul(o Matrix4) Matrix4 {
	return Matrix4{m: m.m.Mul4(o.m)}
}

// Transform returns m*v with v as a column vector, W included.
func (m Matrix4) Transform(v Vector4) Vector4 {
	return Vector4FromVec(m.m.Mul4x1(v.Vec4()))
}

func (m Matrix4) At(row, col int) float64 {
	return m.m.At(row, col)
}

func (m Matrix4) Row(row int) Vector4 {
	return Vector4FromVec(m.m.Row(row))
}

func (m Matrix4) Mat4() mgl64.Mat4 {
	return m.m
}

func (m Matrix4) ApproxEqual(o Matrix4, eps float64) bool {
	return m.m.ApproxEqualThreshold(o.m, eps)
}

func (m Matrix4) String() string {
	var sb strings.Builder
	for row := 0; row < 4; row++ {
		if row > 0 {
			sb.WriteString("\n")
		}
		for col := 0; col < 4; col++ {
			if col > 0 {
				sb.WriteString(" ")
			}
			sb.WriteString(fmt.Sprintf("%f", m.At(row, col)))
		}
	}
	return sb.String()
}
