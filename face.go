package gosieview

import (
	"image/color"
	"sort"
)

// Face is a flat convex polygon in world space.
type Face struct {
	Points []Vector4
	Col    color.RGBA
}

func NewFace(col color.RGBA, points ...Vector4) *Face {
	pnts := make([]Vector4, len(points))
	copy(pnts, points)
	return &Face{Points: pnts, Col: col}
}

func (f *Face) Copy() *Face {
	return NewFace(f.Col, f.Points...)
}

func (f *Face) Transform(m Matrix4) {
	transformAll(m, f.Points)
}

// get midpoint of the face
func (f *Face) MidPoint() Vector4 {
	return centroid(f.Points)
}

// get the distance from the face to a point
func (f *Face) DistanceTo(p Vector4) float64 {
	return f.MidPoint().DistanceTo(p)
}

// Project maps every corner through m. It fails if any corner cannot be
// projected.
func (f *Face) Project(m Matrix4) ([]Vector2, bool) {
	projected := make([]Vector2, 0, len(f.Points))
	for _, p := range f.Points {
		s, ok := Project(m, p)
		if !ok {
			return nil, false
		}
		projected = append(projected, s)
	}
	return projected, true
}

// sortFacesByDistance orders faces so that the faces farther from pos come
// first. Equal distances keep their relative order.
func sortFacesByDistance(faces []*Face, pos Vector4) {
	sort.SliceStable(faces, func(i, j int) bool {
		return faces[i].DistanceTo(pos) > faces[j].DistanceTo(pos)
	})
}
