package render

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/pkg/errors"
)

// PlotDataBackend writes the diagram as a JSON plot document for a
// sidecar plotting tool instead of rasterizing it locally. Every layer
// becomes one series; lines are emitted in slope/intercept (or
// vertical) form so the plotter can span whatever axis range it ends up
// with.
type PlotDataBackend struct {
	Title string

	points []PointSet
	lines  []Line
}

type plotDocument struct {
	Title     string       `json:"title"`
	Timestamp time.Time    `json:"timestamp"`
	Series    []plotSeries `json:"series"`
}

type plotSeries struct {
	Name   string      `json:"name"`
	Type   string      `json:"type"` // "scatter" or "line"
	Data   []plotPoint `json:"data,omitempty"`
	Line   *plotLine   `json:"line,omitempty"`
	Color  string      `json:"color"`
	Marker string      `json:"marker,omitempty"`
	Dashed bool        `json:"dashed,omitempty"`
}

type plotPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type plotLine struct {
	Vertical  bool    `json:"vertical"`
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`
	X         float64 `json:"x,omitempty"`
}

func NewPlotDataBackend(title string) *PlotDataBackend {
	return &PlotDataBackend{Title: title}
}

func (pb *PlotDataBackend) AddPoints(ps PointSet) {
	pb.points = append(pb.points, ps)
}

func (pb *PlotDataBackend) AddLine(l Line) {
	pb.lines = append(pb.lines, l)
}

func (pb *PlotDataBackend) Save(path string) error {
	doc := plotDocument{
		Title:     pb.Title,
		Timestamp: time.Now(),
	}

	for _, ps := range pb.points {
		series := plotSeries{
			Name:   ps.Name,
			Type:   "scatter",
			Color:  hexColor(ps),
			Marker: markerName(ps.Marker),
			Data:   make([]plotPoint, len(ps.Points)),
		}
		for i, p := range ps.Points {
			series.Data[i] = plotPoint{X: p.X, Y: p.Y}
		}
		doc.Series = append(doc.Series, series)
	}

	for _, l := range pb.lines {
		doc.Series = append(doc.Series, plotSeries{
			Name:   l.Name,
			Type:   "line",
			Color:  fmt.Sprintf("#%02x%02x%02x", l.Color.R, l.Color.G, l.Color.B),
			Dashed: l.Dashed,
			Line: &plotLine{
				Vertical:  l.Vertical,
				Slope:     l.Slope,
				Intercept: l.Intercept,
				X:         l.X1,
			},
		})
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encoding plot document")
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrap(err, "writing plot document")
	}
	return nil
}

func hexColor(ps PointSet) string {
	return fmt.Sprintf("#%02x%02x%02x", ps.Color.R, ps.Color.G, ps.Color.B)
}

func markerName(m Marker) string {
	switch m {
	case MarkerDisc:
		return "disc"
	case MarkerRing:
		return "ring"
	default:
		return "pixel"
	}
}
