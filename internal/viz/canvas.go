package viz

import "strings"

// Braille patterns pack a 2x4 dot cell into one rune (offset 0x2800),
// giving the phase canvas sub-character resolution.
var brailleDot = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// Canvas is a braille dot matrix. Coordinates are in dots: the drawable
// area is (Width*2) x (Height*4).
type Canvas struct {
	Width, Height int
	grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{Width: w, Height: h, grid: make([][]rune, h)}
	for i := range c.grid {
		c.grid[i] = make([]rune, w)
	}
	c.Clear()
	return c
}

func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.grid[row][col] |= rune(brailleDot[y%4][x%2])
}

func (c *Canvas) Clear() {
	for i := range c.grid {
		for j := range c.grid[i] {
			c.grid[i][j] = 0x2800
		}
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.grid {
		b.WriteString(string(row))
		b.WriteByte('\n')
	}
	return b.String()
}

// PlotXY scales a point cloud into the canvas and sets one dot per point.
// The bounding box is padded slightly so extreme points stay visible.
func (c *Canvas) PlotXY(xs, ys []float64) {
	if len(xs) == 0 || len(xs) != len(ys) {
		return
	}

	minX, maxX := bounds(xs)
	minY, maxY := bounds(ys)
	padX := (maxX - minX) * 0.05
	padY := (maxY - minY) * 0.05
	minX, maxX = minX-padX, maxX+padX
	minY, maxY = minY-padY, maxY+padY
	if maxX == minX {
		maxX = minX + 1
	}
	if maxY == minY {
		maxY = minY + 1
	}

	dw, dh := c.Width*2-1, c.Height*4-1
	for i := range xs {
		px := int((xs[i] - minX) / (maxX - minX) * float64(dw))
		py := dh - int((ys[i]-minY)/(maxY-minY)*float64(dh))
		c.Set(px, py)
	}
}

func bounds(vs []float64) (lo, hi float64) {
	lo, hi = vs[0], vs[0]
	for _, v := range vs[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}
