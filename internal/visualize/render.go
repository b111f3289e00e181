package visualize

import (
	"fmt"
	"image/color"

	"github.com/rbelina/svmviz/internal/dataset"
	"github.com/rbelina/svmviz/internal/render"
)

var (
	regionNegative = color.RGBA{R: 255, G: 224, B: 220, A: 255}
	regionPositive = color.RGBA{R: 215, G: 236, B: 255, A: 255}
	sampleNegative = color.RGBA{R: 200, G: 30, B: 30, A: 255}
	samplePositive = color.RGBA{R: 20, G: 90, B: 200, A: 255}
	supportColor   = color.RGBA{R: 20, G: 20, B: 20, A: 255}
	boundaryColor  = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	marginColor    = color.RGBA{R: 120, G: 120, B: 120, A: 255}
)

// Render layers the diagram onto the backend: predicted class regions
// first, then the training samples, support-vector markers, and finally
// the decision and margin lines.
func Render(backend render.Backend, field *Field, samples, supportVectors []dataset.Sample, boundary *Boundary) error {
	if field == nil || field.Grid == nil {
		return fmt.Errorf("no prediction field to render")
	}
	if len(field.Labels) != len(field.Grid.Points) {
		return fmt.Errorf("field does not match grid: %d labels for %d points", len(field.Labels), len(field.Grid.Points))
	}

	backend.AddPoints(labeledLayer("region -1", field.Grid.Points, field.Labels, -1, regionNegative, render.MarkerPixel, 3))
	backend.AddPoints(labeledLayer("region +1", field.Grid.Points, field.Labels, 1, regionPositive, render.MarkerPixel, 3))

	backend.AddPoints(labeledLayer("class -1", dataset.Points(samples), dataset.Labels(samples), -1, sampleNegative, render.MarkerDisc, 4))
	backend.AddPoints(labeledLayer("class +1", dataset.Points(samples), dataset.Labels(samples), 1, samplePositive, render.MarkerDisc, 4))

	svLayer := render.PointSet{
		Name:   "support vectors",
		Color:  supportColor,
		Marker: render.MarkerRing,
		Size:   7,
	}
	for _, sv := range supportVectors {
		x, y := sv.Point.Floats()
		svLayer.Points = append(svLayer.Points, render.Point{X: x, Y: y})
	}
	backend.AddPoints(svLayer)

	if boundary != nil {
		backend.AddLine(toRenderLine("decision boundary", boundary.Decision, boundaryColor, false))
		backend.AddLine(toRenderLine("margin -1", boundary.LowerMargin, marginColor, true))
		backend.AddLine(toRenderLine("margin +1", boundary.UpperMargin, marginColor, true))
	}

	return nil
}

func labeledLayer(name string, points []dataset.Point2D, labels []int, wantLabel int, c color.RGBA, marker render.Marker, size int) render.PointSet {
	layer := render.PointSet{
		Name:   name,
		Color:  c,
		Marker: marker,
		Size:   size,
	}
	for i, p := range points {
		if labels[i] != wantLabel {
			continue
		}
		x, y := p.Floats()
		layer.Points = append(layer.Points, render.Point{X: x, Y: y})
	}
	return layer
}

func toRenderLine(name string, l Line, c color.RGBA, dashed bool) render.Line {
	return render.Line{
		Name:      name,
		Vertical:  l.Vertical,
		Slope:     l.Slope,
		Intercept: l.Intercept,
		X1:        l.X1,
		Color:     c,
		Dashed:    dashed,
	}
}
