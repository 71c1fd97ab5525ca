package viz

import (
	"strings"

	"github.com/jsperk/chaoslab/internal/logistic"
)

// BifurcationASCII renders a sweep as a scatter: growth rate left to
// right, population bottom to top. Point order does not matter.
func BifurcationASCII(points []logistic.Point, width, height int) string {
	if len(points) == 0 || width <= 0 || height <= 0 {
		return ""
	}

	minR, maxR := points[0].R, points[0].R
	minP, maxP := points[0].P, points[0].P
	for _, pt := range points[1:] {
		if pt.R < minR {
			minR = pt.R
		}
		if pt.R > maxR {
			maxR = pt.R
		}
		if pt.P < minP {
			minP = pt.P
		}
		if pt.P > maxP {
			maxP = pt.P
		}
	}
	if maxR == minR {
		maxR = minR + 1
	}
	if maxP == minP {
		maxP = minP + 1
	}

	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = make([]rune, width)
		for j := range canvas[i] {
			canvas[i][j] = ' '
		}
	}

	for _, pt := range points {
		col := int((pt.R - minR) / (maxR - minR) * float64(width-1))
		row := height - 1 - int((pt.P-minP)/(maxP-minP)*float64(height-1))
		canvas[row][col] = '•'
	}

	var b strings.Builder
	for _, row := range canvas {
		b.WriteString(strings.TrimRight(string(row), " "))
		b.WriteByte('\n')
	}
	return b.String()
}
