package export

import (
	"bytes"
	"fmt"
	"math"
	"os"

	svg "github.com/ajstarks/svgo"

	"github.com/brepfeat/aag/pkg/aag"
	"github.com/brepfeat/aag/pkg/geomkernel"
)

// SVGOptions configures AAG debug visualization export.
type SVGOptions struct {
	Width      int
	Height     int
	NodeRadius int
	Margin     int
	ShowLabels bool
	ShowLegend bool
	Title      string
}

// DefaultSVGOptions returns sensible default AAG SVG export options.
func DefaultSVGOptions() SVGOptions {
	return SVGOptions{
		Width:      1200,
		Height:     900,
		NodeRadius: 16,
		Margin:     60,
		ShowLabels: true,
		ShowLegend: true,
		Title:      "Attributed Adjacency Graph",
	}
}

// WriteSVG renders g as a circular node-link diagram: faces positioned
// on a circle in FID order, colored by surface kind, arcs drawn as
// lines colored by convexity.
func WriteSVG(g *aag.Graph, path string, opts SVGOptions) error {
	if opts.Width <= 0 {
		opts.Width = 1200
	}
	if opts.Height <= 0 {
		opts.Height = 900
	}
	if opts.NodeRadius <= 0 {
		opts.NodeRadius = 16
	}
	if opts.Margin <= 0 {
		opts.Margin = 60
	}

	buf := new(bytes.Buffer)
	canvas := svg.New(buf)
	canvas.Start(opts.Width, opts.Height)
	canvas.Rect(0, 0, opts.Width, opts.Height, "fill:#1a1a2e")

	positions := circularLayout(g.FaceCount(), opts)

	for _, arc := range g.Arcs() {
		from, to := positions[int(arc.A)], positions[int(arc.B)]
		color := convexityColor(arc.Convexity)
		canvas.Line(int(from.x), int(from.y), int(to.x), int(to.y),
			fmt.Sprintf("stroke:%s;stroke-width:2;opacity:0.8", color))
	}

	for fid := aag.FID(0); int(fid) < g.FaceCount(); fid++ {
		p := positions[int(fid)]
		attrs := g.Attrs(fid)
		color := surfaceColor(attrs.Surface)
		canvas.Circle(int(p.x), int(p.y), opts.NodeRadius,
			fmt.Sprintf("fill:%s;stroke:#fff;stroke-width:2;opacity:0.9", color))
		if opts.ShowLabels {
			canvas.Text(int(p.x), int(p.y+4), fmt.Sprintf("%d", fid),
				"text-anchor:middle;font-size:10px;fill:#fff")
		}
	}

	if opts.ShowLegend {
		drawLegend(canvas, opts)
	}
	if opts.Title != "" {
		canvas.Text(opts.Margin, 30, opts.Title, "font-size:18px;fill:#fff;font-weight:bold")
	}

	canvas.End()
	return os.WriteFile(path, buf.Bytes(), 0644)
}

type point struct{ x, y float64 }

func circularLayout(n int, opts SVGOptions) []point {
	positions := make([]point, n)
	if n == 0 {
		return positions
	}
	centerX := float64(opts.Width) / 2
	centerY := float64(opts.Height) / 2
	radius := math.Min(float64(opts.Width), float64(opts.Height))/2 - float64(opts.Margin) - float64(opts.NodeRadius)
	step := 2 * math.Pi / float64(n)
	for i := range positions {
		angle := float64(i) * step
		positions[i] = point{
			x: centerX + radius*math.Cos(angle),
			y: centerY + radius*math.Sin(angle),
		}
	}
	return positions
}

func surfaceColor(k geomkernel.SurfaceKind) string {
	switch k {
	case geomkernel.Plane:
		return "#4299e1"
	case geomkernel.Cylinder:
		return "#48bb78"
	case geomkernel.Cone:
		return "#ed8936"
	case geomkernel.Sphere:
		return "#9f7aea"
	case geomkernel.Torus:
		return "#f56565"
	default:
		return "#718096"
	}
}

func convexityColor(c aag.Convexity) string {
	switch c {
	case aag.Convex:
		return "#48bb78"
	case aag.Concave:
		return "#f56565"
	default:
		return "#a0aec0"
	}
}

func drawLegend(canvas *svg.SVG, opts SVGOptions) {
	entries := []struct {
		label string
		color string
	}{
		{"plane", surfaceColor(geomkernel.Plane)},
		{"cylinder", surfaceColor(geomkernel.Cylinder)},
		{"cone", surfaceColor(geomkernel.Cone)},
		{"sphere", surfaceColor(geomkernel.Sphere)},
		{"torus", surfaceColor(geomkernel.Torus)},
		{"convex arc", convexityColor(aag.Convex)},
		{"concave arc", convexityColor(aag.Concave)},
		{"smooth arc", convexityColor(aag.Smooth)},
	}

	x := opts.Width - 160
	y := opts.Height - 20*len(entries) - 20
	for _, e := range entries {
		canvas.Circle(x, y, 6, fmt.Sprintf("fill:%s", e.color))
		canvas.Text(x+14, y+4, e.label, "font-size:12px;fill:#fff")
		y += 20
	}
}
