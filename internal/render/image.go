package render

import (
	"image"
	"image/color"
	"image/png"
	"math"
	"os"

	"github.com/pkg/errors"
)

// ImageBackend rasterizes the diagram to a PNG file. Data coordinates
// are mapped linearly onto the pixel area, keeping a fixed padding
// around the data bounds.
type ImageBackend struct {
	Width   int
	Height  int
	Padding int

	points []PointSet
	lines  []Line
}

func NewImageBackend(width, height int) *ImageBackend {
	if width <= 0 {
		width = 800
	}
	if height <= 0 {
		height = 600
	}
	return &ImageBackend{
		Width:   width,
		Height:  height,
		Padding: 30,
	}
}

func (ib *ImageBackend) AddPoints(ps PointSet) {
	ib.points = append(ib.points, ps)
}

func (ib *ImageBackend) AddLine(l Line) {
	ib.lines = append(ib.lines, l)
}

func (ib *ImageBackend) Save(path string) error {
	if len(ib.points) == 0 {
		return errors.New("nothing to draw")
	}

	minX, maxX, minY, maxY := ib.dataBounds()

	img := image.NewNRGBA(image.Rect(0, 0, ib.Width, ib.Height))
	for y := 0; y < ib.Height; y++ {
		for x := 0; x < ib.Width; x++ {
			img.Set(x, y, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
		}
	}

	proj := newProjection(minX, maxX, minY, maxY, ib.Width, ib.Height, ib.Padding)

	for _, ps := range ib.points {
		ib.drawPoints(img, proj, ps)
	}
	for _, l := range ib.lines {
		ib.drawLine(img, proj, l, minX, maxX, minY, maxY)
	}

	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating image file")
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return errors.Wrap(err, "encoding png")
	}
	return nil
}

func (ib *ImageBackend) dataBounds() (minX, maxX, minY, maxY float64) {
	first := true
	for _, ps := range ib.points {
		for _, p := range ps.Points {
			if first {
				minX, maxX, minY, maxY = p.X, p.X, p.Y, p.Y
				first = false
				continue
			}
			minX = math.Min(minX, p.X)
			maxX = math.Max(maxX, p.X)
			minY = math.Min(minY, p.Y)
			maxY = math.Max(maxY, p.Y)
		}
	}

	// Degenerate extents still need a nonzero span to project onto.
	if maxX == minX {
		minX, maxX = minX-1, maxX+1
	}
	if maxY == minY {
		minY, maxY = minY-1, maxY+1
	}
	return minX, maxX, minY, maxY
}

type projection struct {
	minX, minY     float64
	scaleX, scaleY float64
	height, pad    int
}

func newProjection(minX, maxX, minY, maxY float64, width, height, pad int) projection {
	return projection{
		minX:   minX,
		minY:   minY,
		scaleX: float64(width-2*pad) / (maxX - minX),
		scaleY: float64(height-2*pad) / (maxY - minY),
		height: height,
		pad:    pad,
	}
}

func (pr projection) toPixel(x, y float64) (int, int) {
	px := pr.pad + int(math.Round((x-pr.minX)*pr.scaleX))
	// Flip y so larger values are higher in the image.
	py := pr.height - pr.pad - int(math.Round((y-pr.minY)*pr.scaleY))
	return px, py
}

func (ib *ImageBackend) drawPoints(img *image.NRGBA, proj projection, ps PointSet) {
	size := ps.Size
	if size <= 0 {
		size = 1
	}

	for _, p := range ps.Points {
		px, py := proj.toPixel(p.X, p.Y)

		switch ps.Marker {
		case MarkerPixel:
			fillSquare(img, px, py, size, ps.Color)
		case MarkerDisc:
			fillDisc(img, px, py, size, ps.Color)
		case MarkerRing:
			strokeRing(img, px, py, size, ps.Color)
		}
	}
}

func fillSquare(img *image.NRGBA, cx, cy, size int, c color.RGBA) {
	for dy := -size / 2; dy <= size/2; dy++ {
		for dx := -size / 2; dx <= size/2; dx++ {
			setPixel(img, cx+dx, cy+dy, c)
		}
	}
}

func fillDisc(img *image.NRGBA, cx, cy, radius int, c color.RGBA) {
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy <= radius*radius {
				setPixel(img, cx+dx, cy+dy, c)
			}
		}
	}
}

func strokeRing(img *image.NRGBA, cx, cy, radius int, c color.RGBA) {
	outer := radius * radius
	inner := (radius - 1) * (radius - 1)
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			d := dx*dx + dy*dy
			if d <= outer && d >= inner {
				setPixel(img, cx+dx, cy+dy, c)
			}
		}
	}
}

func setPixel(img *image.NRGBA, x, y int, c color.RGBA) {
	if !(image.Point{X: x, Y: y}).In(img.Bounds()) {
		return
	}
	img.Set(x, y, color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A})
}

// drawLine samples the line across the visible data range and plots the
// resulting pixels, alternating on/off runs when dashed.
func (ib *ImageBackend) drawLine(img *image.NRGBA, proj projection, l Line, minX, maxX, minY, maxY float64) {
	const dashLen = 6

	steps := 4 * (ib.Width + ib.Height)
	drawn := 0

	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)

		var x, y float64
		if l.Vertical {
			x = l.X1
			y = minY + t*(maxY-minY)
		} else {
			x = minX + t*(maxX-minX)
			y = l.Slope*x + l.Intercept
			if y < minY || y > maxY {
				continue
			}
		}

		drawn++
		if l.Dashed && (drawn/dashLen)%2 == 1 {
			continue
		}

		px, py := proj.toPixel(x, y)
		setPixel(img, px, py, l.Color)
	}
}
