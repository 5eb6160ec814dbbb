// https://depts.washington.edu/acelab/proj/dollar/dollar.pdf

package stroke

import (
	"errors"
	"math"

	"github.com/ThatOtherAndrew/Glyphcast/internal/models"
)

const (
	NumPoints  = 64
	SquareSize = 250.0
	// MinPoints is the shortest raw stroke accepted as a template or a query.
	MinPoints = 10
)

// flatExtent is the bounding box extent below which an axis is not scaled.
const flatExtent = 1e-9

var (
	ErrTooFewPoints     = errors.New("stroke has too few points")
	ErrDegenerateStroke = errors.New("stroke has zero or non-finite length")
)

// Step 1

// Resample returns exactly n points spaced evenly along the path.
// The input is not modified.
func Resample(points models.Stroke, n int) models.Stroke {
	if len(points) == 0 || n <= 0 {
		return nil
	}
	I := PathLength(points) / float64(n-1)
	D := 0.0
	src := points.Clone()
	newPoints := make(models.Stroke, 0, n)
	newPoints = append(newPoints, src[0])
	for i := 1; i < len(src); i++ {
		d := Distance(src[i-1], src[i])
		if d > 0 && D+d >= I {
			qx := src[i-1].X + ((I-D)/d)*(src[i].X-src[i-1].X)
			qy := src[i-1].Y + ((I-D)/d)*(src[i].Y-src[i-1].Y)
			q := models.Point{X: qx, Y: qy}
			newPoints = append(newPoints, q)
			// q becomes the start of the next segment
			src = append(src[:i], append(models.Stroke{q}, src[i:]...)...)
			D = 0
		} else {
			D += d
		}
	}
	for len(newPoints) < n {
		newPoints = append(newPoints, src[len(src)-1])
	}
	return newPoints[:n]
}

func PathLength(A models.Stroke) float64 {
	d := 0.0
	for i := 1; i < len(A); i++ {
		d += Distance(A[i-1], A[i])
	}
	return d
}

func Distance(a, b models.Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// Step 2

// IndicativeAngle is the angle from the first point to the centroid.
func IndicativeAngle(points models.Stroke) float64 {
	c := Centroid(points)
	return math.Atan2(c.Y-points[0].Y, c.X-points[0].X)
}

// RotateBy rotates points about their centroid.
func RotateBy(points models.Stroke, radians float64) models.Stroke {
	c := Centroid(points)
	cos, sin := math.Cos(radians), math.Sin(radians)
	newPoints := make(models.Stroke, len(points))
	for i, p := range points {
		newPoints[i] = models.Point{
			X: (p.X-c.X)*cos - (p.Y-c.Y)*sin + c.X,
			Y: (p.X-c.X)*sin + (p.Y-c.Y)*cos + c.Y,
		}
	}
	return newPoints
}

// Step 3

// ScaleTo maps the bounding box onto a size×size square, each axis on its own.
// A flat axis is left as it is.
func ScaleTo(points models.Stroke, size float64) models.Stroke {
	B := BoundingBox(points)
	sx, sy := 1.0, 1.0
	if B.Width > flatExtent {
		sx = size / B.Width
	}
	if B.Height > flatExtent {
		sy = size / B.Height
	}
	newPoints := make(models.Stroke, len(points))
	for i, p := range points {
		newPoints[i] = models.Point{X: p.X * sx, Y: p.Y * sy}
	}
	return newPoints
}

// TranslateTo moves points so that their centroid is k.
func TranslateTo(points models.Stroke, k models.Point) models.Stroke {
	c := Centroid(points)
	newPoints := make(models.Stroke, len(points))
	for i, p := range points {
		newPoints[i] = models.Point{X: p.X + k.X - c.X, Y: p.Y + k.Y - c.Y}
	}
	return newPoints
}

type Rect struct {
	X, Y, Width, Height float64
}

func BoundingBox(points models.Stroke) Rect {
	if len(points) == 0 {
		return Rect{}
	}
	minX, minY := points[0].X, points[0].Y
	maxX, maxY := points[0].X, points[0].Y
	for _, p := range points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

func Centroid(points models.Stroke) models.Point {
	var x, y float64
	for _, p := range points {
		x += p.X
		y += p.Y
	}
	n := float64(len(points))
	return models.Point{X: x / n, Y: y / n}
}

// Entry point

// Normalize runs the full pipeline: resample, rotate by the negative
// indicative angle, scale to the square and translate to the origin.
func Normalize(points models.Stroke) (models.Stroke, error) {
	if len(points) < MinPoints {
		return nil, ErrTooFewPoints
	}
	if !finite(points) {
		return nil, ErrDegenerateStroke
	}
	if L := PathLength(points); !(L > 0) || math.IsInf(L, 1) {
		return nil, ErrDegenerateStroke
	}
	// Step 1
	points = Resample(points, NumPoints)
	// Step 2
	points = RotateBy(points, -IndicativeAngle(points))
	// Step 3
	points = ScaleTo(points, SquareSize)
	points = TranslateTo(points, models.Point{X: 0, Y: 0})

	// extreme magnitudes can still overflow inside the pipeline
	if !finite(points) {
		return nil, ErrDegenerateStroke
	}
	return points, nil
}

func finite(points models.Stroke) bool {
	for _, p := range points {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
			return false
		}
	}
	return true
}
