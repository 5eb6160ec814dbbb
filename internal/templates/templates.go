// Package templates provides the built-in gesture set and the helpers that
// place unit-space strokes on a drawing surface.
package templates

import (
	"math"
	"sort"

	"github.com/ThatOtherAndrew/Glyphcast/internal/models"
	"github.com/ThatOtherAndrew/Glyphcast/internal/stroke"
)

func p(x, y float64) models.Point { return models.Point{X: x, Y: y} }

// Defaults returns the shorthand characters in 0..1 coordinates.
func Defaults() models.Snapshot {
	return models.Snapshot{
		"a": {{p(0.2, 0.6), p(0.2, 0.3), p(0.5, 0.1), p(0.8, 0.3), p(0.8, 0.7), p(0.5, 0.5), p(0.2, 0.5)}},
		"b": {{p(0.2, 0.1), p(0.2, 0.9), p(0.7, 0.9), p(0.7, 0.5), p(0.2, 0.5), p(0.7, 0.1)}},
		"c": {{p(0.8, 0.2), p(0.3, 0.2), p(0.2, 0.5), p(0.3, 0.8), p(0.8, 0.8)}},
		"d": {{p(0.8, 0.1), p(0.8, 0.9), p(0.2, 0.9), p(0.2, 0.2), p(0.8, 0.2)}},
		"e": {{p(0.8, 0.3), p(0.2, 0.3), p(0.2, 0.5), p(0.8, 0.5), p(0.2, 0.7), p(0.8, 0.7)}},
		"f": {{p(0.7, 0.1), p(0.2, 0.1), p(0.2, 0.9), p(0.2, 0.5), p(0.7, 0.5)}},
		"g": {{p(0.8, 0.2), p(0.2, 0.2), p(0.2, 0.7), p(0.8, 0.7), p(0.8, 0.95), p(0.2, 0.95)}},
		"h": {{p(0.2, 0.1), p(0.2, 0.9), p(0.2, 0.5), p(0.8, 0.5), p(0.8, 0.1), p(0.8, 0.9)}},
		"i": {{p(0.5, 0.15), p(0.5, 0.85)}},
		"l": {{p(0.5, 0.1), p(0.5, 0.9)}},
		"o": {{p(0.5, 0.2), p(0.8, 0.35), p(0.8, 0.65), p(0.5, 0.8), p(0.2, 0.65), p(0.2, 0.35), p(0.5, 0.2)}},
		"s": {{p(0.8, 0.2), p(0.2, 0.2), p(0.2, 0.45), p(0.8, 0.55), p(0.8, 0.8), p(0.2, 0.8)}},
		"t": {{p(0.2, 0.15), p(0.8, 0.15), p(0.5, 0.15), p(0.5, 0.85)}},
	}
}

// Scale maps unit coordinates onto a width×height surface.
func Scale(snap models.Snapshot, width, height float64) models.Snapshot {
	out := make(models.Snapshot, len(snap))
	for name, strokes := range snap {
		for _, s := range strokes {
			out[name] = append(out[name], Denormalize(s, width, height))
		}
	}
	return out
}

// Denormalize multiplies unit coordinates by the surface size.
func Denormalize(points models.Stroke, width, height float64) models.Stroke {
	out := make(models.Stroke, len(points))
	for i, pt := range points {
		out[i] = models.Point{X: pt.X * width, Y: pt.Y * height}
	}
	return out
}

// Densify inserts evenly spaced samples on every segment until the stroke
// has at least n points. Vertices are kept.
func Densify(points models.Stroke, n int) models.Stroke {
	if len(points) < 2 || len(points) >= n {
		return points.Clone()
	}
	segments := len(points) - 1
	per := int(math.Ceil(float64(n-1) / float64(segments)))
	out := make(models.Stroke, 0, segments*per+1)
	for i := 0; i < segments; i++ {
		a, b := points[i], points[i+1]
		for k := 0; k < per; k++ {
			t := float64(k) / float64(per)
			out = append(out, models.Point{X: a.X + t*(b.X-a.X), Y: a.Y + t*(b.Y-a.Y)})
		}
	}
	return append(out, points[len(points)-1])
}

// Registrar is satisfied by *gestures.Recognizer.
type Registrar interface {
	AddGesture(name string, raw models.Stroke) error
}

// Register densifies and adds every stroke of snap in name order.
func Register(r Registrar, snap models.Snapshot) error {
	names := make([]string, 0, len(snap))
	for name := range snap {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		for _, s := range snap[name] {
			if err := r.AddGesture(name, Densify(s, stroke.MinPoints)); err != nil {
				return err
			}
		}
	}
	return nil
}

// Seed registers the defaults scaled to a width×height surface.
func Seed(r Registrar, width, height float64) error {
	return Register(r, Scale(Defaults(), width, height))
}
