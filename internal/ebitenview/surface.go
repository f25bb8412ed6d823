package ebitenview

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/smasonuk/gosieview"
)

var (
	whiteImage = ebiten.NewImage(3, 3)
	whiteSub   *ebiten.Image
)

func init() {
	whiteImage.Fill(color.White)
	whiteSub = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}

// Surface paints projected entities onto an ebiten image.
type Surface struct {
	screen      *ebiten.Image
	StrokeWidth float32
}

var _ gosieview.Surface = (*Surface)(nil)

func NewSurface(screen *ebiten.Image) *Surface {
	return &Surface{screen: screen, StrokeWidth: 1}
}

// Reset points the surface at the image for the current frame.
func (s *Surface) Reset(screen *ebiten.Image) {
	s.screen = screen
}

func (s *Surface) DrawLine(from, to gosieview.Vector2, clr color.RGBA) {
	vector.StrokeLine(s.screen, float32(from.X), float32(from.Y), float32(to.X), float32(to.Y), s.StrokeWidth, clr, true)
}

func (s *Surface) FillPolygon(points []gosieview.Vector2, fill, stroke color.RGBA) {
	xp := make([]float32, len(points))
	yp := make([]float32, len(points))
	for i, p := range points {
		xp[i], yp[i] = float32(p.X), float32(p.Y)
	}
	fillConvexPolygon(s.screen, xp, yp, fill)
	if stroke != (color.RGBA{}) {
		drawPolygonOutline(s.screen, xp, yp, s.StrokeWidth, stroke)
	}
}

func colorComponents(clr color.RGBA) (r, g, b, a float32) {
	return float32(clr.R) / 255.0, float32(clr.G) / 255.0, float32(clr.B) / 255.0, float32(clr.A) / 255.0
}

// fillConvexPolygon fans triangles out from the first point, so the
// polygon must be convex.
func fillConvexPolygon(screen *ebiten.Image, xp, yp []float32, clr color.RGBA) {
	if len(xp) < 3 {
		return
	}

	indices := make([]uint16, 0, (len(xp)-2)*3)
	for i := 2; i < len(xp); i++ {
		indices = append(indices, 0, uint16(i-1), uint16(i))
	}

	cr, cg, cb, ca := colorComponents(clr)
	vertices := make([]ebiten.Vertex, len(xp))
	for i := range xp {
		vertices[i] = ebiten.Vertex{
			DstX:   xp[i],
			DstY:   yp[i],
			SrcX:   1,
			SrcY:   1,
			ColorR: cr,
			ColorG: cg,
			ColorB: cb,
			ColorA: ca,
		}
	}

	op := &ebiten.DrawTrianglesOptions{}
	op.AntiAlias = true
	screen.DrawTriangles(vertices, indices, whiteSub, op)
}

// drawPolygonOutline strokes the closed path through the given points.
func drawPolygonOutline(screen *ebiten.Image, xp, yp []float32, strokeWidth float32, clr color.RGBA) {
	if len(xp) < 2 {
		return
	}

	var path vector.Path
	path.MoveTo(xp[0], yp[0])
	for i := 1; i < len(xp); i++ {
		path.LineTo(xp[i], yp[i])
	}
	path.Close()

	strokeOp := &vector.StrokeOptions{
		Width: strokeWidth,
	}
	vertices, indices := path.AppendVerticesAndIndicesForStroke(nil, nil, strokeOp)

	cr, cg, cb, ca := colorComponents(clr)
	for i := range vertices {
		vertices[i].ColorR = cr
		vertices[i].ColorG = cg
		vertices[i].ColorB = cb
		vertices[i].ColorA = ca
		vertices[i].SrcX = 1
		vertices[i].SrcY = 1
	}

	drawOp := &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	}
	screen.DrawTriangles(vertices, indices, whiteSub, drawOp)
}
