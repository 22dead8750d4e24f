// Package render turns a session frame into a standalone SVG document.
// Output lives in the geometry engine's 800×600 coordinate space.
package render

// #region imports
import (
	"fmt"
	"strings"

	"github.com/kibbyd/tensegrity/internal/balance"
	"github.com/kibbyd/tensegrity/internal/geometry"
	"github.com/kibbyd/tensegrity/internal/session"
)

// #endregion imports

// #region options

// Options selects which optional layers the document includes.
type Options struct {
	ShowIdeal  bool // dashed reference curve for the ideal form
	ShowLabels bool // vertex and force-field labels
	Caption    bool // integrity score caption along the bottom edge
}

// DefaultOptions enables every layer.
func DefaultOptions() Options {
	return Options{ShowIdeal: true, ShowLabels: true, Caption: true}
}

// #endregion options

// #region corner-labels

// The four force fields sit at fixed canvas corners so that each diamond
// vertex falls between the two forces its balance point mediates.
var cornerLabels = []struct {
	name   string
	x, y   float64
	anchor string
}{
	{"Investors", 40, 60, "start"},
	{"Customers", 760, 60, "end"},
	{"Employees", 40, 560, "start"},
	{"Market", 760, 560, "end"},
}

// #endregion corner-labels

// #region svg

// SVG renders one frame as a complete SVG document.
func SVG(frame session.Frame, opts Options) string {
	var b strings.Builder

	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`,
		int(geometry.CanvasWidth), int(geometry.CanvasHeight),
		int(geometry.CanvasWidth), int(geometry.CanvasHeight))
	b.WriteString("\n")
	fmt.Fprintf(&b, `  <rect width="%d" height="%d" fill="#10141a"/>`,
		int(geometry.CanvasWidth), int(geometry.CanvasHeight))
	b.WriteString("\n")

	if opts.ShowLabels {
		for _, c := range cornerLabels {
			fmt.Fprintf(&b, `  <text x="%g" y="%g" text-anchor="%s" fill="#5c6773" font-family="sans-serif" font-size="16">%s</text>`,
				c.x, c.y, c.anchor, c.name)
			b.WriteString("\n")
		}
	}

	if opts.ShowIdeal {
		fmt.Fprintf(&b, `  <path d="%s" fill="none" stroke="#3d4856" stroke-width="1.5" stroke-dasharray="6 6"/>`,
			frame.IdealPath)
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, `  <path d="%s" fill="rgba(94,174,255,0.12)" stroke="#5eaeff" stroke-width="2.5"/>`,
		frame.Path)
	b.WriteString("\n")

	// Vertices run top→right→bottom→left, which is value→exchange→operate→direction.
	vertexPoints := [4]balance.Point{
		balance.PointValue, balance.PointExchange, balance.PointOperate, balance.PointDirection,
	}
	for i, v := range frame.Shape.Vertices() {
		fmt.Fprintf(&b, `  <circle cx="%g" cy="%g" r="6" fill="#5eaeff"/>`, v.X, v.Y)
		b.WriteString("\n")
		if opts.ShowLabels {
			if spec, ok := balance.SpecFor(vertexPoints[i]); ok {
				fmt.Fprintf(&b, `  <text x="%g" y="%g" text-anchor="middle" fill="#c8d2dc" font-family="sans-serif" font-size="13">%s</text>`,
					v.X, v.Y-12, spec.Label)
				b.WriteString("\n")
			}
		}
	}

	if opts.Caption {
		fmt.Fprintf(&b, `  <text x="%g" y="%g" text-anchor="middle" fill="#c8d2dc" font-family="sans-serif" font-size="18">Structural integrity %s — %s</text>`,
			geometry.CanvasWidth/2, geometry.CanvasHeight-14, formatScore(frame.Report.Score), frame.Report.Label)
		b.WriteString("\n")
	}

	b.WriteString("</svg>\n")
	return b.String()
}

// formatScore drops the fraction when the score is whole (87 not 87.0).
func formatScore(score float64) string {
	if score == float64(int(score)) {
		return fmt.Sprintf("%d", int(score))
	}
	return fmt.Sprintf("%.1f", score)
}

// #endregion svg
