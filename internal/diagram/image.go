package diagram

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/foundationlab/gofla/internal/layout"
)

// Component fill colors
var (
	tendonColor = color.RGBA{R: 231, G: 76, B: 60, A: 180}
	groutColor  = color.RGBA{R: 52, G: 152, B: 219, A: 150}
	shaftColor  = color.RGBA{R: 46, G: 204, B: 113, A: 130}
)

// circlePoints approximates a circle as a closed polyline.
func circlePoints(cx, cy, r float64) plotter.XYs {
	const segments = 64
	pts := make(plotter.XYs, segments+1)
	for i := 0; i <= segments; i++ {
		angle := 2 * math.Pi * float64(i) / segments
		pts[i] = plotter.XY{X: cx + r*math.Cos(angle), Y: cy + r*math.Sin(angle)}
	}
	return pts
}

func addCircleOutline(p *plot.Plot, cx, cy, r float64, width vg.Length, dashed bool) error {
	line, err := plotter.NewLine(circlePoints(cx, cy, r))
	if err != nil {
		return err
	}
	line.LineStyle.Width = width
	line.LineStyle.Color = color.RGBA{R: 44, G: 62, B: 80, A: 255}
	if dashed {
		line.LineStyle.Dashes = []vg.Length{vg.Points(6), vg.Points(4)}
	}
	p.Add(line)
	return nil
}

func addFilledCircle(p *plot.Plot, cx, cy, r float64, fill color.Color) error {
	poly, err := plotter.NewPolygon(circlePoints(cx, cy, r))
	if err != nil {
		return err
	}
	poly.Color = fill
	poly.LineStyle.Color = color.Black
	poly.LineStyle.Width = vg.Points(0.5)
	p.Add(poly)
	return nil
}

func addLabel(p *plot.Plot, x, y float64, text string) error {
	l, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    []plotter.XY{{X: x, Y: y}},
		Labels: []string{text},
	})
	if err != nil {
		return err
	}
	p.Add(l)
	return nil
}

// ExportPlanDiagram exports the foundation plan view to an image file.
// The format follows the file extension (png, svg, pdf), defaulting to png.
func ExportPlanDiagram(l layout.Layout, filename string) error {
	p := plot.New()
	p.Title.Text = "Foundation Cross-Section"
	p.X.Label.Text = "X (meters)"
	p.Y.Label.Text = "Y (meters)"

	outer := l.Foundation.OuterRadius()
	extent := outer + 1

	// Square ranges keep the circles round
	p.X.Min, p.X.Max = -extent, extent
	p.Y.Min, p.Y.Max = -extent, extent

	if err := addCircleOutline(p, 0, 0, outer, vg.Points(3), false); err != nil {
		return err
	}
	if inner := l.Foundation.InnerRadius(); inner > 0 {
		if err := addCircleOutline(p, 0, 0, inner, vg.Points(2), true); err != nil {
			return err
		}
	}

	for _, t := range l.Tendons {
		if err := addFilledCircle(p, t.X, t.Y, t.Radius(), tendonColor); err != nil {
			return err
		}
		if err := addLabel(p, t.X, t.Y, fmt.Sprintf("T%d", t.ID)); err != nil {
			return err
		}
	}
	for _, g := range l.GroutConnections {
		if err := addFilledCircle(p, g.X, g.Y, g.Radius(), groutColor); err != nil {
			return err
		}
		if err := addLabel(p, g.X, g.Y, fmt.Sprintf("G%d", g.ID)); err != nil {
			return err
		}
	}
	for _, a := range l.AccessShafts {
		if err := addFilledCircle(p, a.X, a.Y, a.Radius(), shaftColor); err != nil {
			return err
		}
		if err := addLabel(p, a.X, a.Y, fmt.Sprintf("A%d", a.ID)); err != nil {
			return err
		}
	}

	// Center marker
	center, err := plotter.NewScatter(plotter.XYs{{X: 0, Y: 0}})
	if err != nil {
		return err
	}
	center.GlyphStyle.Color = color.Black
	center.GlyphStyle.Radius = vg.Points(3)
	p.Add(center)

	// Create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		os.MkdirAll(dir, 0755)
	}

	size := 8 * vg.Inch
	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(size, size, filename)
	default:
		return p.Save(size, size, filename+".png")
	}
}
