package gosieview

// CameraControl is the manipulation surface the input layer drives. *Scene
// implements it.
type CameraControl interface {
	Zoom(factor float64) error
	Pan(translation Vector4) error
	Orbit(xRadians, yRadians float64) error
	SetSize(width, height float64) error
}

type Button int

const (
	ButtonNone Button = iota
	ButtonLeft
	ButtonRight
	ButtonMiddle
)

type Key int

const (
	KeyOrbitLeft Key = iota
	KeyOrbitRight
	KeyOrbitUp
	KeyOrbitDown
	KeyZoomIn
	KeyZoomOut
)

// ControlSettings tunes how far pointer and key input move the camera.
type ControlSettings struct {
	// OrbitSpeed is radians per pixel dragged with the left button.
	OrbitSpeed float64
	// PanSpeed is world units per pixel dragged with the right button.
	PanSpeed float64
	// ZoomStep is the zoom factor per wheel notch or zoom key press.
	ZoomStep float64
	// MaxOrbitStep caps a single orbit step, in radians.
	MaxOrbitStep float64
	// KeyOrbitStep is the orbit per arrow key press, in radians.
	KeyOrbitStep float64
}

func DefaultControlSettings() ControlSettings {
	return ControlSettings{
		OrbitSpeed:   0.01,
		PanSpeed:     0.5,
		ZoomStep:     10,
		MaxOrbitStep: 0.5,
		KeyOrbitStep: 0.05,
	}
}

// Controller turns pointer, wheel and key events into camera calls on the
// CameraControl it was built with. It keeps drag state, so events must come
// from a single goroutine.
type Controller struct {
	control  CameraControl
	settings ControlSettings
	dragging Button
	last     Vector2
}

func NewController(control CameraControl, settings ControlSettings) *Controller {
	return &Controller{
		control:  control,
		settings: settings,
	}
}

func (c *Controller) Settings() ControlSettings {
	return c.settings
}

func (c *Controller) SetSettings(settings ControlSettings) {
	c.settings = settings
}

func (c *Controller) Dragging() Button {
	return c.dragging
}

func (c *Controller) PointerDown(button Button, x, y float64) {
	if c.dragging != ButtonNone {
		return
	}
	c.dragging = button
	c.last = Vector2{X: x, Y: y}
}

func (c *Controller) PointerUp(button Button) {
	if c.dragging == button {
		c.dragging = ButtonNone
	}
}

// PointerMove orbits while the left button is held and pans while the
// right one is.
func (c *Controller) PointerMove(x, y float64) {
	pos := Vector2{X: x, Y: y}
	delta := pos.Sub(c.last)
	c.last = pos
	if delta.Len() == 0 {
		return
	}

	switch c.dragging {
	case ButtonLeft:
		c.orbit(delta.X*c.settings.OrbitSpeed, delta.Y*c.settings.OrbitSpeed)
	case ButtonRight:
		c.pan(NewDirection(delta.X*c.settings.PanSpeed, delta.Y*c.settings.PanSpeed, 0))
	}
}

func (c *Controller) Wheel(dy float64) {
	if dy == 0 {
		return
	}
	c.zoom(dy * c.settings.ZoomStep)
}

func (c *Controller) Key(k Key) {
	step := c.settings.KeyOrbitStep
	switch k {
	case KeyOrbitLeft:
		c.orbit(-step, 0)
	case KeyOrbitRight:
		c.orbit(step, 0)
	case KeyOrbitUp:
		c.orbit(0, step)
	case KeyOrbitDown:
		c.orbit(0, -step)
	case KeyZoomIn:
		c.zoom(c.settings.ZoomStep)
	case KeyZoomOut:
		c.zoom(-c.settings.ZoomStep)
	}
}

func (c *Controller) Resize(width, height float64) {
	if err := c.control.SetSize(width, height); err != nil {
		LogWarn("controller: resize ignored: %v", err)
	}
}

func (c *Controller) orbit(xRadians, yRadians float64) {
	limit := c.settings.MaxOrbitStep
	xRadians = clamp(xRadians, -limit, limit)
	yRadians = clamp(yRadians, -limit, limit)

	if err := c.control.Orbit(xRadians, yRadians); err != nil {
		LogWarn("controller: orbit ignored: %v", err)
	}
}

func (c *Controller) zoom(factor float64) {
	if err := c.control.Zoom(factor); err != nil {
		LogWarn("controller: zoom ignored: %v", err)
	}
}

func (c *Controller) pan(translation Vector4) {
	if err := c.control.Pan(translation); err != nil {
		LogWarn("controller: pan ignored: %v", err)
	}
}
