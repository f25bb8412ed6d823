package gosieview

import (
	"errors"
	"math"
	"testing"
)

type orbitCall struct{ x, y float64 }

// fakeControl records every camera call the controller makes.
type fakeControl struct {
	zooms    []float64
	pans     []Vector4
	orbits   []orbitCall
	sizes    [][2]float64
	orbitErr error
	moveErr  error
	sizeErr  error
}

func (f *fakeControl) Zoom(factor float64) error {
	f.zooms = append(f.zooms, factor)
	return f.moveErr
}

func (f *fakeControl) Pan(translation Vector4) error {
	f.pans = append(f.pans, translation)
	return f.moveErr
}

func (f *fakeControl) Orbit(xRadians, yRadians float64) error {
	f.orbits = append(f.orbits, orbitCall{xRadians, yRadians})
	return f.orbitErr
}

func (f *fakeControl) SetSize(width, height float64) error {
	f.sizes = append(f.sizes, [2]float64{width, height})
	return f.sizeErr
}

var _ CameraControl = (*Scene)(nil)

func TestLeftDragOrbits(t *testing.T) {
	testCases := []struct {
		name     string
		dx, dy   float64
		expected orbitCall
	}{
		{"small", 10, -5, orbitCall{0.1, -0.05}},
		{"clamped x", 200, 0, orbitCall{0.5, 0}},
		{"clamped both", -300, 90, orbitCall{-0.5, 0.5}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			fake := &fakeControl{}
			c := NewController(fake, DefaultControlSettings())

			c.PointerDown(ButtonLeft, 100, 100)
			c.PointerMove(100+tc.dx, 100+tc.dy)

			if len(fake.orbits) != 1 {
				t.Fatalf("orbit calls = %d, want 1", len(fake.orbits))
			}
			got := fake.orbits[0]
			if !almostEqual(got.x, tc.expected.x) || !almostEqual(got.y, tc.expected.y) {
				t.Errorf("Orbit(%f, %f), want Orbit(%f, %f)", got.x, got.y, tc.expected.x, tc.expected.y)
			}
			if len(fake.pans) != 0 {
				t.Errorf("left drag panned")
			}
		})
	}
}

func TestRightDragPans(t *testing.T) {
	fake := &fakeControl{}
	c := NewController(fake, DefaultControlSettings())

	c.PointerDown(ButtonRight, 10, 10)
	c.PointerMove(14, 8)
	c.PointerMove(14, 8)

	if len(fake.pans) != 1 {
		t.Fatalf("pan calls = %d, want 1 (a zero move is ignored)", len(fake.pans))
	}
	if want := NewDirection(2, -1, 0); !almostEqualVector4(fake.pans[0], want) {
		t.Errorf("Pan(%v), want %v", fake.pans[0], want)
	}
	if len(fake.orbits) != 0 {
		t.Errorf("right drag orbited")
	}
}

func TestPointerState(t *testing.T) {
	fake := &fakeControl{}
	c := NewController(fake, DefaultControlSettings())

	c.PointerMove(50, 50)
	if len(fake.orbits)+len(fake.pans) != 0 {
		t.Errorf("moving without a button moved the camera")
	}

	c.PointerDown(ButtonLeft, 0, 0)
	c.PointerDown(ButtonRight, 0, 0)
	if c.Dragging() != ButtonLeft {
		t.Errorf("Dragging() = %v, want the first button held", c.Dragging())
	}

	c.PointerUp(ButtonRight)
	if c.Dragging() != ButtonLeft {
		t.Errorf("releasing another button ended the drag")
	}
	c.PointerUp(ButtonLeft)
	if c.Dragging() != ButtonNone {
		t.Errorf("Dragging() = %v after release", c.Dragging())
	}

	c.PointerMove(80, 80)
	if len(fake.orbits)+len(fake.pans) != 0 {
		t.Errorf("moving after release moved the camera")
	}
}

func TestWheelZooms(t *testing.T) {
	fake := &fakeControl{}
	c := NewController(fake, DefaultControlSettings())

	c.Wheel(0)
	c.Wheel(1)
	c.Wheel(-2)

	want := []float64{10, -20}
	if len(fake.zooms) != len(want) {
		t.Fatalf("zooms = %v, want %v", fake.zooms, want)
	}
	for i := range want {
		if fake.zooms[i] != want[i] {
			t.Errorf("zoom %d = %f, want %f", i, fake.zooms[i], want[i])
		}
	}
}

func TestKeys(t *testing.T) {
	fake := &fakeControl{}
	c := NewController(fake, DefaultControlSettings())

	for _, k := range []Key{KeyOrbitLeft, KeyOrbitRight, KeyOrbitUp, KeyOrbitDown, KeyZoomIn, KeyZoomOut} {
		c.Key(k)
	}

	wantOrbits := []orbitCall{{-0.05, 0}, {0.05, 0}, {0, 0.05}, {0, -0.05}}
	if len(fake.orbits) != len(wantOrbits) {
		t.Fatalf("orbits = %v, want %v", fake.orbits, wantOrbits)
	}
	for i, want := range wantOrbits {
		if fake.orbits[i] != want {
			t.Errorf("orbit %d = %v, want %v", i, fake.orbits[i], want)
		}
	}
	if len(fake.zooms) != 2 || fake.zooms[0] != 10 || fake.zooms[1] != -10 {
		t.Errorf("zooms = %v, want [10 -10]", fake.zooms)
	}
}

func TestControllerSurvivesRejectedCalls(t *testing.T) {
	fake := &fakeControl{orbitErr: ErrDegenerateAxis, moveErr: ErrNonFinite, sizeErr: ErrInvalidViewport}
	c := NewController(fake, DefaultControlSettings())

	c.Key(KeyOrbitUp)
	c.Key(KeyZoomIn)
	c.Wheel(1)
	c.PointerDown(ButtonRight, 0, 0)
	c.PointerMove(3, 3)
	c.Resize(0, 0)
	c.Resize(640, 480)

	if len(fake.zooms) != 2 || len(fake.pans) != 1 {
		t.Errorf("zooms = %v pans = %v, want every call still made", fake.zooms, fake.pans)
	}

	if len(fake.orbits) != 1 {
		t.Errorf("orbit calls = %d, want 1", len(fake.orbits))
	}
	if len(fake.sizes) != 2 || fake.sizes[1] != [2]float64{640, 480} {
		t.Errorf("sizes = %v", fake.sizes)
	}
}

func TestSetSettings(t *testing.T) {
	fake := &fakeControl{}
	c := NewController(fake, DefaultControlSettings())

	settings := DefaultControlSettings()
	settings.ZoomStep = 3
	c.SetSettings(settings)
	if c.Settings() != settings {
		t.Errorf("Settings() = %+v, want %+v", c.Settings(), settings)
	}

	c.Wheel(1)
	if len(fake.zooms) != 1 || fake.zooms[0] != 3 {
		t.Errorf("zooms = %v, want [3]", fake.zooms)
	}
}

func TestControllerDrivesScene(t *testing.T) {
	s := newTestScene(t)
	c := NewController(s, DefaultControlSettings())
	before := s.Camera()

	c.PointerDown(ButtonLeft, 0, 0)
	c.PointerMove(20, 0)
	c.PointerUp(ButtonLeft)

	after := s.Camera()
	if after.Position() == before.Position() {
		t.Errorf("orbit drag did not move the camera")
	}
	if after.Target() != before.Target() {
		t.Errorf("orbit drag moved the target")
	}

	c.Resize(1280, 720)
	if w, h := s.Size(); w != 1280 || h != 720 {
		t.Errorf("Size() = %fx%f, want 1280x720", w, h)
	}
	c.Resize(-1, 720)
	if w, h := s.Size(); w != 1280 || h != 720 {
		t.Errorf("rejected resize changed the size to %fx%f", w, h)
	}
	if err := s.SetSize(-1, 720); !errors.Is(err, ErrInvalidViewport) {
		t.Errorf("SetSize(-1, 720) error = %v", err)
	}
}

func TestControllerRejectsNonFiniteSettings(t *testing.T) {
	s := newTestScene(t)
	settings := DefaultControlSettings()
	settings.OrbitSpeed = math.NaN()
	settings.ZoomStep = math.Inf(1)
	c := NewController(s, settings)
	before := s.Camera()

	c.PointerDown(ButtonLeft, 0, 0)
	c.PointerMove(10, 0)
	c.Wheel(1)

	if after := s.Camera(); after != before {
		t.Errorf("non-finite settings moved the camera to %v", after.Position())
	}
}
