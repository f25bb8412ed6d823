package gosieview

import "image/color"

type drawnLine struct {
	from, to Vector2
	clr      color.RGBA
}

type drawnPolygon struct {
	points       []Vector2
	fill, stroke color.RGBA
}

// recordingSurface is a Surface mock that keeps everything drawn on it.
type recordingSurface struct {
	lines    []drawnLine
	polygons []drawnPolygon
}

func (s *recordingSurface) DrawLine(from, to Vector2, clr color.RGBA) {
	s.lines = append(s.lines, drawnLine{from: from, to: to, clr: clr})
}

func (s *recordingSurface) FillPolygon(points []Vector2, fill, stroke color.RGBA) {
	s.polygons = append(s.polygons, drawnPolygon{points: points, fill: fill, stroke: stroke})
}
