package gosieview

import (
	"fmt"
	"image/color"
)

var (
	cubeOutline    = color.RGBA{R: 20, G: 20, B: 20, A: 255}
	cubeFaceColors = [6]color.RGBA{
		{R: 220, G: 60, B: 60, A: 255},
		{R: 60, G: 200, B: 60, A: 255},
		{R: 60, G: 90, B: 220, A: 255},
		{R: 230, G: 200, B: 50, A: 255},
		{R: 200, G: 70, B: 200, A: 255},
		{R: 60, G: 200, B: 210, A: 255},
	}
)

// Cube is an axis aligned cube centred on the origin until transformed.
type Cube struct {
	faces []*Face
}

// NewCube builds a cube with edges of length size.
func NewCube(size float64) (*Cube, error) {
	if size <= 0 || !isFinite(size) {
		return nil, fmt.Errorf("cube size %f must be positive", size)
	}
	h := size / 2

	lbn := NewPoint(-h, -h, -h)
	rbn := NewPoint(h, -h, -h)
	rtn := NewPoint(h, h, -h)
	ltn := NewPoint(-h, h, -h)
	lbf := NewPoint(-h, -h, h)
	rbf := NewPoint(h, -h, h)
	rtf := NewPoint(h, h, h)
	ltf := NewPoint(-h, h, h)

	return &Cube{faces: []*Face{
		NewFace(cubeFaceColors[0], lbn, rbn, rtn, ltn),
		NewFace(cubeFaceColors[1], rbf, lbf, ltf, rtf),
		NewFace(cubeFaceColors[2], lbf, lbn, ltn, ltf),
		NewFace(cubeFaceColors[3], rbn, rbf, rtf, rtn),
		NewFace(cubeFaceColors[4], ltn, rtn, rtf, ltf),
		NewFace(cubeFaceColors[5], lbf, rbf, rbn, lbn),
	}}, nil
}

func (c *Cube) Clone() *Cube {
	faces := make([]*Face, len(c.faces))
	for i, f := range c.faces {
		faces[i] = f.Copy()
	}
	return &Cube{faces: faces}
}

func (c *Cube) Faces() []*Face {
	return c.faces
}

func (c *Cube) Transform(m Matrix4) {
	for _, f := range c.faces {
		f.Transform(m)
	}
}

func (c *Cube) Centre() Vector4 {
	mids := make([]Vector4, len(c.faces))
	for i, f := range c.faces {
		mids[i] = f.MidPoint()
	}
	return centroid(mids)
}

func (c *Cube) DistanceTo(p Vector4) float64 {
	return c.Centre().DistanceTo(p)
}

// Render paints the faces back to front as seen from cameraPosition.
func (c *Cube) Render(s Surface, m Matrix4, cameraPosition Vector4) {
	ordered := make([]*Face, len(c.faces))
	copy(ordered, c.faces)
	sortFacesByDistance(ordered, cameraPosition)

	for _, f := range ordered {
		points, ok := f.Project(m)
		if !ok {
			continue
		}
		s.FillPolygon(points, f.Col, cubeOutline)
	}
}
