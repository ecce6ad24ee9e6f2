// pkg/render/canvas/canvas.go
package canvas

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Canvas рисует заливку и обводку произвольных контуров через DrawTriangles.
// Буферы вершин переиспользуются между вызовами.
type Canvas struct {
	fillImg  *ebiten.Image
	fillVs   []ebiten.Vertex
	fillIs   []uint16
	strokeVs []ebiten.Vertex
	strokeIs []uint16
}

func New() *Canvas {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)
	return &Canvas{
		fillImg:  fillImg,
		fillVs:   make([]ebiten.Vertex, 0, 16),
		fillIs:   make([]uint16, 0, 16),
		strokeVs: make([]ebiten.Vertex, 0, 32),
		strokeIs: make([]uint16, 0, 32),
	}
}

func paint(vs []ebiten.Vertex, c color.RGBA) {
	for i := range vs {
		vs[i].SrcX = 0
		vs[i].SrcY = 0
		vs[i].ColorR = float32(c.R) / 255
		vs[i].ColorG = float32(c.G) / 255
		vs[i].ColorB = float32(c.B) / 255
		vs[i].ColorA = float32(c.A) / 255
	}
}

// FillPath заливает контур цветом c.
func (cv *Canvas) FillPath(target *ebiten.Image, path *vector.Path, c color.RGBA) {
	cv.fillVs, cv.fillIs = path.AppendVerticesAndIndicesForFilling(cv.fillVs[:0], cv.fillIs[:0])
	paint(cv.fillVs, c)
	target.DrawTriangles(cv.fillVs, cv.fillIs, cv.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

// StrokePath обводит контур линией толщиной width.
func (cv *Canvas) StrokePath(target *ebiten.Image, path *vector.Path, width float32, c color.RGBA) {
	cv.strokeVs, cv.strokeIs = path.AppendVerticesAndIndicesForStroke(cv.strokeVs[:0], cv.strokeIs[:0], &vector.StrokeOptions{
		Width:    width,
		LineJoin: vector.LineJoinRound,
	})
	paint(cv.strokeVs, c)
	target.DrawTriangles(cv.strokeVs, cv.strokeIs, cv.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

// Ship рисует корабль-стрелку с носом по углу rotation.
func (cv *Canvas) Ship(target *ebiten.Image, x, y, radius, rotation float32, fill color.RGBA, stroke bool) {
	path := vector.Path{}
	points := [4][2]float64{{1, 0}, {-0.7, 0.7}, {-0.35, 0}, {-0.7, -0.7}}
	sin, cos := math.Sincos(float64(rotation))
	for i, p := range points {
		px := x + radius*float32(p[0]*cos-p[1]*sin)
		py := y + radius*float32(p[0]*sin+p[1]*cos)
		if i == 0 {
			path.MoveTo(px, py)
		} else {
			path.LineTo(px, py)
		}
	}
	path.Close()
	cv.FillPath(target, &path, fill)
	if stroke {
		cv.StrokePath(target, &path, 1.5, color.RGBA{255, 255, 255, 200})
	}
}

// Circle рисует круг.
func (cv *Canvas) Circle(target *ebiten.Image, x, y, radius float32, fill color.RGBA, stroke bool) {
	vector.DrawFilledCircle(target, x, y, radius, fill, true)
	if stroke {
		vector.StrokeCircle(target, x, y, radius, 1, color.White, true)
	}
}

// Square рисует квадрат со стороной 2*half, повёрнутый на rotation.
func (cv *Canvas) Square(target *ebiten.Image, x, y, half, rotation float32, fill color.RGBA, stroke bool) {
	path := vector.Path{}
	sin, cos := math.Sincos(float64(rotation))
	corners := [4][2]float64{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}
	for i, p := range corners {
		px := x + half*float32(p[0]*cos-p[1]*sin)
		py := y + half*float32(p[0]*sin+p[1]*cos)
		if i == 0 {
			path.MoveTo(px, py)
		} else {
			path.LineTo(px, py)
		}
	}
	path.Close()
	cv.FillPath(target, &path, fill)
	if stroke {
		cv.StrokePath(target, &path, 2, color.RGBA{60, 40, 20, 255})
	}
}
