package completion

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"

	"carebridge/models"
)

// RenderSignature rasterizes the captured strokes to a PNG: black ink on a
// white background, points joined by straight segments. Coordinates are
// clamped to the canvas.
func RenderSignature(strokes []models.Stroke, width, height int) ([]byte, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid signature canvas %dx%d", width, height)
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.White)
		}
	}

	for _, stroke := range strokes {
		pts := stroke.Points
		if len(pts) == 1 {
			plot(img, pts[0].X, pts[0].Y)
			continue
		}
		for i := 1; i < len(pts); i++ {
			drawSegment(img, pts[i-1], pts[i])
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode signature: %w", err)
	}
	return buf.Bytes(), nil
}

// drawSegment plots the line between two samples, stepping one pixel at a
// time so fast pen moves do not leave gaps.
func drawSegment(img *image.RGBA, a, b models.Point) {
	dx := b.X - a.X
	dy := b.Y - a.Y
	steps := int(math.Max(math.Abs(dx), math.Abs(dy)))
	if steps == 0 {
		plot(img, a.X, a.Y)
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		plot(img, a.X+dx*t, a.Y+dy*t)
	}
}

func plot(img *image.RGBA, x, y float64) {
	bounds := img.Bounds()
	px := int(math.Round(x))
	py := int(math.Round(y))
	if px < bounds.Min.X || px >= bounds.Max.X || py < bounds.Min.Y || py >= bounds.Max.Y {
		return
	}
	img.Set(px, py, color.Black)
}
