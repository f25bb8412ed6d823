package gosieview

import "image/color"

const originAxisLength = 100

var (
	axisXColor = color.RGBA{R: 255, A: 255}
	axisYColor = color.RGBA{G: 255, A: 255}
	axisZColor = color.RGBA{B: 255, A: 255}
)

// Origin marks the world origin with one coloured segment per axis: red X,
// green Y and blue Z.
type Origin struct {
	// points holds the centre followed by the tip of each axis.
	points [4]Vector4
}

func NewOrigin() *Origin {
	return &Origin{points: [4]Vector4{
		Origin4,
		NewPoint(originAxisLength, 0, 0),
		NewPoint(0, originAxisLength, 0),
		NewPoint(0, 0, originAxisLength),
	}}
}

func (o *Origin) Transform(m Matrix4) {
	transformAll(m, o.points[:])
}

func (o *Origin) DistanceTo(p Vector4) float64 {
	return o.points[0].DistanceTo(p)
}

func (o *Origin) Render(s Surface, m Matrix4, cameraPosition Vector4) {
	centre, ok := Project(m, o.points[0])
	if !ok {
		return
	}
	colours := [3]color.RGBA{axisXColor, axisYColor, axisZColor}
	for i, clr := range colours {
		tip, ok := Project(m, o.points[i+1])
		if !ok {
			continue
		}
		s.DrawLine(centre, tip, clr)
	}
}
