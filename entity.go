package gosieview

// projectEpsilon is the smallest homogeneous W that can still be divided
// through. Anything at or behind the camera plane falls below it.
const projectEpsilon = 1e-9

// Entity is anything the scene can place, order and draw.
type Entity interface {
	// Transform applies a world space transform to the entity in place.
	Transform(m Matrix4)
	// DistanceTo reports how far the entity is from p; the scene draws the
	// farthest entity first.
	DistanceTo(p Vector4) float64
	// Render draws the entity. m maps world space to pixels and
	// cameraPosition is where the viewer stands in world space.
	Render(s Surface, m Matrix4, cameraPosition Vector4)
}

// Project maps a world space point through m and divides by W. ok is false
// when W is too small to divide, in which case the point must not be drawn.
func Project(m Matrix4, p Vector4) (screen Vector2, ok bool) {
	v := m.Transform(p)
	if v.W <= projectEpsilon {
		return Vector2{}, false
	}
	return Vector2{X: v.X / v.W, Y: v.Y / v.W}, true
}

func transformAll(m Matrix4, points []Vector4) {
	for i, p := range points {
		points[i] = m.Transform(p)
	}
}

func centroid(points []Vector4) Vector4 {
	if len(points) == 0 {
		return Origin4
	}
	var sum Vector4
	for _, p := range points {
		sum = sum.Add(p)
	}
	mid := sum.Mul(1 / float64(len(points)))
	mid.W = 1
	return mid
}
