// Package geometry converts a balance state into the diamond's vertex
// positions and closed curve descriptor. All functions are pure and total
// over the pre-clamped [-50, 50] domain; out-of-range inputs still produce
// coordinates, they are just off the canvas.
package geometry

// #region imports
import (
	"fmt"
	"strings"

	"github.com/kibbyd/tensegrity/internal/balance"
)

// #endregion imports

// #region constants

// Canvas coordinate space. Renderers must honor this 800×600 contract.
const (
	CanvasWidth  = 800.0
	CanvasHeight = 600.0

	CenterX = 400.0
	CenterY = 300.0

	TopAnchorY    = 120.0
	BottomAnchorY = 480.0
	LeftAnchorX   = 220.0
	RightAnchorX  = 580.0
)

// #endregion constants

// #region types

// Vertex is a 2D point in canvas space.
type Vertex struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Segment is one quadratic curve piece: from the previous point, through
// Ctrl, ending at End.
type Segment struct {
	Ctrl Vertex `json:"ctrl"`
	End  Vertex `json:"end"`
}

// Shape is the diamond at one balance state: four vertices plus the closed
// curve through them in cyclic order top→right→bottom→left→top. Fully
// determined by the state; exists only transiently.
type Shape struct {
	Top    Vertex `json:"top"`
	Right  Vertex `json:"right"`
	Bottom Vertex `json:"bottom"`
	Left   Vertex `json:"left"`

	Segments [4]Segment `json:"segments"`
}

// #endregion types

// #region compute

// ComputeShape maps the four balance values to the diamond's geometry.
//
// The vertex formulas are a compatibility contract and are intentionally
// asymmetric: value and operate move horizontally at ×2 on fixed rails,
// exchange and direction move at ×1 with a coupled half-magnitude vertical
// shift. Preserved verbatim, not corrected.
func ComputeShape(s balance.State) Shape {
	top := Vertex{X: CenterX + 2*float64(s.Value), Y: TopAnchorY}
	right := Vertex{X: RightAnchorX + float64(s.Exchange), Y: CenterY + float64(s.Exchange)/2}
	bottom := Vertex{X: CenterX + 2*float64(s.Operate), Y: BottomAnchorY}
	left := Vertex{X: LeftAnchorX + float64(s.Direction), Y: CenterY + float64(s.Direction)/2}

	return Shape{
		Top:      top,
		Right:    right,
		Bottom:   bottom,
		Left:     left,
		Segments: curveSegments(top, right, bottom, left),
	}
}

// curveSegments builds the four quadratic segments with the fixed per-edge
// control-point offsets. The offsets are a visual-fidelity contract.
func curveSegments(top, right, bottom, left Vertex) [4]Segment {
	return [4]Segment{
		{Ctrl: Vertex{X: mid(top.X, right.X) + 15, Y: mid(top.Y, right.Y)}, End: right},
		{Ctrl: Vertex{X: mid(right.X, bottom.X), Y: right.Y + 50}, End: bottom},
		{Ctrl: Vertex{X: mid(bottom.X, left.X) - 30, Y: mid(bottom.Y, left.Y)}, End: left},
		{Ctrl: Vertex{X: mid(left.X, top.X), Y: left.Y - 50}, End: top},
	}
}

func mid(a, b float64) float64 {
	return (a + b) / 2
}

// #endregion compute

// #region ideal

var ideal = ComputeShape(balance.State{})
var idealPath = ideal.PathData()

// IdealShape returns the constant reference shape computed from the all-zero
// state. Computed once at package init, never recalculated.
func IdealShape() Shape {
	return ideal
}

// IdealPathData returns the reference curve's path descriptor.
func IdealPathData() string {
	return idealPath
}

// #endregion ideal

// #region path

// PathData renders the closed curve as an SVG path descriptor:
// a move to the top vertex, four quadratic segments, then Z.
func (sh Shape) PathData() string {
	var b strings.Builder
	fmt.Fprintf(&b, "M %s %s", coord(sh.Top.X), coord(sh.Top.Y))
	for _, seg := range sh.Segments {
		fmt.Fprintf(&b, " Q %s %s %s %s",
			coord(seg.Ctrl.X), coord(seg.Ctrl.Y),
			coord(seg.End.X), coord(seg.End.Y))
	}
	b.WriteString(" Z")
	return b.String()
}

// coord formats a coordinate without trailing zeros (120 not 120.000000).
func coord(v float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", v), "0"), ".")
}

// #endregion path

// #region sample

// Vertices returns the four vertices in cyclic order.
func (sh Shape) Vertices() [4]Vertex {
	return [4]Vertex{sh.Top, sh.Right, sh.Bottom, sh.Left}
}

// SamplePoints flattens the closed curve into perEdge points per segment,
// starting at the top vertex. Used by raster renderers (the terminal canvas).
func (sh Shape) SamplePoints(perEdge int) []Vertex {
	if perEdge < 1 {
		perEdge = 1
	}
	pts := make([]Vertex, 0, 4*perEdge+1)
	start := sh.Top
	pts = append(pts, start)
	for _, seg := range sh.Segments {
		for i := 1; i <= perEdge; i++ {
			t := float64(i) / float64(perEdge)
			pts = append(pts, quadPoint(start, seg.Ctrl, seg.End, t))
		}
		start = seg.End
	}
	return pts
}

// quadPoint evaluates the quadratic Bézier (1−t)²P0 + 2(1−t)tC + t²P1.
func quadPoint(p0, c, p1 Vertex, t float64) Vertex {
	u := 1 - t
	return Vertex{
		X: u*u*p0.X + 2*u*t*c.X + t*t*p1.X,
		Y: u*u*p0.Y + 2*u*t*c.Y + t*t*p1.Y,
	}
}

// #endregion sample
