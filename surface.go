package gosieview

import "image/color"

// Surface is the drawing target an Entity paints onto. Coordinates are in
// pixels, already projected by the scene's render matrix.
type Surface interface {
	DrawLine(from, to Vector2, clr color.RGBA)
	// FillPolygon fills a convex polygon and strokes its outline. A zero
	// stroke colour means no outline.
	FillPolygon(points []Vector2, fill, stroke color.RGBA)
}
