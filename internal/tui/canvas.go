package tui

// #region imports
import (
	"strings"

	"github.com/kibbyd/tensegrity/internal/geometry"
)

// #endregion imports

// #region canvas

// samplesPerEdge controls curve flattening for the character grid. Terminal
// cells are coarse, so a modest count is plenty.
const samplesPerEdge = 48

// renderCanvas rasters the ideal and current curves into a rune grid of the
// given size, scaling down from the 800×600 canvas space.
func renderCanvas(current geometry.Shape, width, height int) string {
	if width < 8 || height < 4 {
		return ""
	}

	grid := make([][]rune, height)
	for y := range grid {
		grid[y] = make([]rune, width)
		for x := range grid[y] {
			grid[y][x] = ' '
		}
	}

	plot := func(pts []geometry.Vertex, mark rune) {
		for _, p := range pts {
			x := int(p.X / geometry.CanvasWidth * float64(width-1))
			y := int(p.Y / geometry.CanvasHeight * float64(height-1))
			if x < 0 || x >= width || y < 0 || y >= height {
				continue
			}
			grid[y][x] = mark
		}
	}

	plot(geometry.IdealShape().SamplePoints(samplesPerEdge), '·')
	plot(current.SamplePoints(samplesPerEdge), '█')
	for _, v := range current.Vertices() {
		plot([]geometry.Vertex{v}, '◆')
	}

	rows := make([]string, height)
	for y, row := range grid {
		rows[y] = strings.TrimRight(string(row), " ")
	}
	return strings.Join(rows, "\n")
}

// #endregion canvas
