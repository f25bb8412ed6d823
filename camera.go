package gosieview

import (
	"fmt"
	"math"
)

const (
	// DefaultFieldOfView is 110 degrees, close to human FoV.
	DefaultFieldOfView = 1.919862

	// parallelEpsilon is the smallest |gaze × worldUp| still treated as a
	// usable right vector.
	parallelEpsilon = 1e-9
)

var (
	DefaultCameraPosition = NewPoint(50, 50, -350)
	DefaultCameraTarget   = Origin4
)

// Camera keeps a position, a look-at target and the orthonormal basis
// derived from them, plus the projection parameters of its view frustum.
//
// Camera is not safe for concurrent use; Scene serialises access to it.
type Camera struct {
	position Vector4
	target   Vector4

	gaze  Vector4
	right Vector4
	up    Vector4

	fov         float64
	near        float64
	far         float64
	aspectRatio float64

	leftBottomNear Vector3
	rightTopFar    Vector3
}

// NewCamera places a camera at DefaultCameraPosition looking at the origin.
func NewCamera(near, far, aspectRatio float64) (*Camera, error) {
	if err := validateProjection(DefaultFieldOfView, near, far); err != nil {
		return nil, err
	}
	if err := validateAspectRatio(aspectRatio); err != nil {
		return nil, err
	}

	c := &Camera{
		position:    DefaultCameraPosition,
		target:      DefaultCameraTarget,
		fov:         DefaultFieldOfView,
		near:        near,
		far:         far,
		aspectRatio: aspectRatio,
	}
	if err := c.calculateAxis(); err != nil {
		return nil, err
	}
	c.calculateViewFrustum()
	return c, nil
}

func (c *Camera) Position() Vector4       { return c.position }
func (c *Camera) Target() Vector4         { return c.target }
func (c *Camera) Gaze() Vector4           { return c.gaze }
func (c *Camera) Right() Vector4          { return c.right }
func (c *Camera) Up() Vector4             { return c.up }
func (c *Camera) FieldOfView() float64    { return c.fov }
func (c *Camera) Near() float64           { return c.near }
func (c *Camera) Far() float64            { return c.far }
func (c *Camera) AspectRatio() float64    { return c.aspectRatio }
func (c *Camera) LeftBottomNear() Vector3 { return c.leftBottomNear }
func (c *Camera) RightTopFar() Vector3    { return c.rightTopFar }

// basisFor derives gaze, right and up for a camera at position looking at
// target. It fails when the two coincide or when the gaze is vertical.
func basisFor(position, target Vector4) (gaze, right, up Vector4, err error) {
	if !position.finite() || !target.finite() {
		return gaze, right, up, fmt.Errorf("position %v target %v: %w", position, target, ErrNonFinite)
	}
	gaze, err = target.Sub(position).Normalize()
	if err != nil {
		return gaze, right, up, fmt.Errorf("gaze: %w", err)
	}

	r := gaze.Cross(WorldUp)
	if r.Len() < parallelEpsilon {
		return gaze, right, up, ErrDegenerateAxis
	}
	right, err = r.Normalize()
	if err != nil {
		return gaze, right, up, fmt.Errorf("right: %w", err)
	}

	up, err = right.Cross(gaze).Normalize()
	if err != nil {
		return gaze, right, up, fmt.Errorf("up: %w", err)
	}
	return gaze, right, up, nil
}

func (c *Camera) calculateAxis() error {
	gaze, right, up, err := basisFor(c.position, c.target)
	if err != nil {
		return err
	}
	c.gaze, c.right, c.up = gaze, right, up
	return nil
}

// calculateViewFrustum stores the frustum as two camera-local corners. The
// far corner keeps the near plane's width and height; only Z differs.
func (c *Camera) calculateViewFrustum() {
	height := math.Tan(c.fov/2) * c.near
	width := height * c.aspectRatio

	halfWidth := width / 2
	halfHeight := height / 2

	c.leftBottomNear = NewVector3(-halfWidth, -halfHeight, c.near)
	c.rightTopFar = NewVector3(halfWidth, halfHeight, c.far)
}

// Zoom dollies along the gaze by factor. The move also carries one unit of
// right+up regardless of factor. A move that would leave the camera at a
// non-finite position is rejected and nothing changes.
func (c *Camera) Zoom(factor float64) error {
	if !isFinite(factor) {
		return fmt.Errorf("zoom %f: %w", factor, ErrNonFinite)
	}
	translation := c.right.Add(c.up).Add(c.gaze.Mul(factor))
	return c.translate(translation)
}

// Pan moves position and target together. X and Y are negated so that a
// screen drag moves the scene with the pointer.
func (c *Camera) Pan(translation Vector4) error {
	if !translation.ToVector3().finite() {
		return fmt.Errorf("pan %v: %w", translation, ErrNonFinite)
	}
	xTranslation := c.right.Mul(-translation.X)
	yTranslation := c.up.Mul(-translation.Y)
	zTranslation := c.gaze.Mul(translation.Z)

	return c.translate(xTranslation.Add(yTranslation).Add(zTranslation))
}

func (c *Camera) translate(move Vector4) error {
	position := c.position.Add(move)
	target := c.target.Add(move)
	if !position.finite() || !target.finite() {
		return fmt.Errorf("move by %v: %w", move, ErrNonFinite)
	}
	c.position, c.target = position, target
	return nil
}

// Orbit swings the position around the target: first about the camera's up
// axis by xRadians, then about its right axis by -yRadians. The target does
// not move. An orbit that would leave the gaze vertical is rejected with
// ErrDegenerateAxis and the camera is left as it was.
func (c *Camera) Orbit(xRadians, yRadians float64) error {
	if !isFinite(xRadians) || !isFinite(yRadians) {
		return fmt.Errorf("orbit (%f, %f): %w", xRadians, yRadians, ErrNonFinite)
	}
	xRotation := CreateRotation(c.up.ToVector3(), xRadians)
	yRotation := CreateRotation(c.right.ToVector3(), -yRadians)

	// yRotation * xRotation: the x rotation is applied first.
	rotation := yRotation.Mul(xRotation)

	offset := c.position.Sub(c.target)
	position := c.target.Add(rotation.Transform(offset))
	position.W = 1

	gaze, right, up, err := basisFor(position, c.target)
	if err != nil {
		return fmt.Errorf("orbit (%f, %f): %w", xRadians, yRadians, err)
	}

	c.position = position
	c.gaze, c.right, c.up = gaze, right, up
	return nil
}

// LookAt re-seats the camera. Nothing changes if the new pair has no
// usable basis.
func (c *Camera) LookAt(position, target Vector4) error {
	position.W, target.W = 1, 1
	gaze, right, up, err := basisFor(position, target)
	if err != nil {
		return fmt.Errorf("look at: %w", err)
	}
	c.position, c.target = position, target
	c.gaze, c.right, c.up = gaze, right, up
	return nil
}

// UpdateAspectRatio recomputes the frustum only; the axis is untouched.
func (c *Camera) UpdateAspectRatio(aspectRatio float64) error {
	if err := validateAspectRatio(aspectRatio); err != nil {
		return err
	}
	c.aspectRatio = aspectRatio
	c.calculateViewFrustum()
	return nil
}

func (c *Camera) SetFieldOfView(radians float64) error {
	if err := validateProjection(radians, c.near, c.far); err != nil {
		return err
	}
	c.fov = radians
	c.calculateViewFrustum()
	return nil
}

func (c *Camera) SetClipPlanes(near, far float64) error {
	if err := validateProjection(c.fov, near, far); err != nil {
		return err
	}
	c.near, c.far = near, far
	c.calculateViewFrustum()
	return nil
}

func validateProjection(fov, near, far float64) error {
	if !isFinite(fov) || fov <= 0 || fov >= math.Pi {
		return fmt.Errorf("field of view %f: %w", fov, ErrInvalidProjection)
	}
	if !isFinite(near) || !isFinite(far) || near <= 0 || far <= near {
		return fmt.Errorf("clip planes near=%f far=%f: %w", near, far, ErrInvalidProjection)
	}
	return nil
}

func validateAspectRatio(aspectRatio float64) error {
	if !isFinite(aspectRatio) || aspectRatio <= 0 {
		return fmt.Errorf("aspect ratio %f: %w", aspectRatio, ErrInvalidProjection)
	}
	return nil
}
