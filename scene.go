package gosieview

import (
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
)

const (
	DefaultWidth  = 800.0
	DefaultHeight = 600.0
	DefaultNear   = 1.0
	DefaultFar    = 1.5
)

type sceneEntry struct {
	id     uuid.UUID
	entity Entity
}

// Scene owns the camera, the viewport size and the entities, and turns them
// into one render matrix per frame. All methods are safe for concurrent
// use; each one holds the scene lock for its whole duration, including
// Render.
type Scene struct {
	mu       sync.Mutex
	camera   *Camera
	width    float64
	height   float64
	entities []sceneEntry
}

// NewScene creates an 800x600 scene with the default camera and an Origin
// marker already added.
func NewScene() (*Scene, error) {
	camera, err := NewCamera(DefaultNear, DefaultFar, DefaultWidth/DefaultHeight)
	if err != nil {
		return nil, fmt.Errorf("new scene: %w", err)
	}
	s := &Scene{
		camera: camera,
		width:  DefaultWidth,
		height: DefaultHeight,
	}
	s.Add(NewOrigin())
	return s, nil
}

// Add registers e and returns the handle used to remove it again.
func (s *Scene) Add(e Entity) uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.New()
	s.entities = append(s.entities, sceneEntry{id: id, entity: e})
	LogDebug("scene: added entity %s (%T)", id, e)
	return id
}

func (s *Scene) Remove(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, entry := range s.entities {
		if entry.id == id {
			s.entities = append(s.entities[:i], s.entities[i+1:]...)
			LogDebug("scene: removed entity %s", id)
			return true
		}
	}
	return false
}

func (s *Scene) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entities)
}

// Camera returns a snapshot of the camera.
func (s *Scene) Camera() Camera {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.camera
}

func (s *Scene) Size() (width, height float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.width, s.height
}

// SetSize resizes the viewport and pushes the new aspect ratio to the
// camera. Non-positive sizes are rejected and the old size is kept.
func (s *Scene) SetSize(width, height float64) error {
	if !isFinite(width) || !isFinite(height) || width <= 0 || height <= 0 {
		return fmt.Errorf("set size %fx%f: %w", width, height, ErrInvalidViewport)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.camera.UpdateAspectRatio(width / height); err != nil {
		return fmt.Errorf("set size %fx%f: %w", width, height, err)
	}
	s.width, s.height = width, height
	LogDebug("scene: viewport %.0fx%.0f aspect %.4f", width, height, width/height)
	return nil
}

func (s *Scene) Zoom(factor float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.camera.Zoom(factor)
}

func (s *Scene) Pan(translation Vector4) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.camera.Pan(translation)
}

func (s *Scene) Orbit(xRadians, yRadians float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.camera.Orbit(xRadians, yRadians)
}

func (s *Scene) LookAt(position, target Vector4) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.camera.LookAt(position, target)
}

func (s *Scene) SetFieldOfView(radians float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.camera.SetFieldOfView(radians)
}

func (s *Scene) SetClipPlanes(near, far float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.camera.SetClipPlanes(near, far)
}

// Transform applies m to every entity in world space.
func (s *Scene) Transform(m Matrix4) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, entry := range s.entities {
		entry.entity.Transform(m)
	}
}

func (s *Scene) RenderMatrix() (Matrix4, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return RenderTransform(s.camera, s.width, s.height)
}

// Render draws every entity onto surface, farthest from the camera first.
// Entities at equal distance keep the order they were added in.
func (s *Scene) Render(surface Surface) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	transformation, err := RenderTransform(s.camera, s.width, s.height)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	cameraPosition := s.camera.Position()
	for _, e := range s.drawOrder(cameraPosition) {
		e.Render(surface, transformation, cameraPosition)
	}
	return nil
}

func (s *Scene) drawOrder(cameraPosition Vector4) []Entity {
	type ranked struct {
		entity   Entity
		distance float64
	}
	order := make([]ranked, len(s.entities))
	for i, entry := range s.entities {
		order[i] = ranked{entity: entry.entity, distance: entry.entity.DistanceTo(cameraPosition)}
	}
	sort.SliceStable(order, func(i, j int) bool {
		return order[i].distance > order[j].distance
	})

	sorted := make([]Entity, len(order))
	for i, r := range order {
		sorted[i] = r.entity
	}
	return sorted
}

// RenderTransform composes the world to pixel matrix for c on a
// width x height viewport:
//
//	screen * orthographic * perspective * cameraSpace
//
// so cameraSpace is applied first.
func RenderTransform(c *Camera, width, height float64) (Matrix4, error) {
	screen, err := ScreenTransform(width, height)
	if err != nil {
		return Matrix4{}, err
	}
	orthographic, err := OrthographicTransform(c)
	if err != nil {
		return Matrix4{}, err
	}
	return screen.
		Mul(orthographic).
		Mul(PerspectiveTransform(c)).
		Mul(CameraSpaceTransform(c)), nil
}

// CameraSpaceTransform moves the camera to the origin and then projects onto
// its right, up and gaze axes.
func CameraSpaceTransform(c *Camera) Matrix4 {
	u, v, n := c.Right(), c.Up(), c.Gaze()

	rotation := NewMatrix4(
		u.X, u.Y, u.Z, 0,
		v.X, v.Y, v.Z, 0,
		n.X, n.Y, n.Z, 0,
		0, 0, 0, 1)

	translation := CreateTranslation(c.Position().ToVector3().Negate())

	// rotation * translation: translate first.
	return rotation.Mul(translation)
}

// PerspectiveTransform folds the near/far mapping into W; the divide happens
// when a point is projected.
func PerspectiveTransform(c *Camera) Matrix4 {
	near, far := c.Near(), c.Far()

	return NewMatrix4(
		near, 0, 0, 0,
		0, near, 0, 0,
		0, 0, near+far, -far*near,
		0, 0, 1, 0)
}

// OrthographicTransform maps the frustum box onto the [-1,1] cube by
// centring it on the origin and then scaling each axis.
func OrthographicTransform(c *Camera) (Matrix4, error) {
	lbn, rtf := c.LeftBottomNear(), c.RightTopFar()
	left, right := lbn.X, rtf.X
	bottom, top := lbn.Y, rtf.Y
	near, far := lbn.Z, rtf.Z

	translation := CreateTranslation(NewVector3(
		-(left+right)/2,
		-(bottom+top)/2,
		-(near+far)/2,
	))
	scaling, err := CreateScale(NewVector3(
		2/(right-left),
		2/(top-bottom),
		2/(near-far),
	))
	if err != nil {
		return Matrix4{}, fmt.Errorf("orthographic: %w", err)
	}

	// scaling * translation: translate first.
	return scaling.Mul(translation), nil
}

// ScreenTransform scales the [-1,1] square up to the viewport and shifts it
// so that pixel centres sit on half coordinates.
func ScreenTransform(width, height float64) (Matrix4, error) {
	halfWidth := width / 2
	halfHeight := height / 2

	scaling, err := CreateScale(NewVector3(halfWidth, halfHeight, 1))
	if err != nil {
		return Matrix4{}, fmt.Errorf("screen: %w", err)
	}
	translation := CreateTranslation(NewVector3(halfWidth-0.5, halfHeight-0.5, 0))

	// translation * scaling: scale first.
	return translation.Mul(scaling), nil
}
