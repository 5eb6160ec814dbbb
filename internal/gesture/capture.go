package gestures

import (
	"github.com/ThatOtherAndrew/Glyphcast/internal/models"
)

const (
	MaxPoints = 2048
	// minSpacing is the squared distance a sample must move to be kept.
	minSpacing = 4
)

// Recorder collects pointer samples for one gesture. Strokes separated
// by Lift are concatenated.
type Recorder struct {
	points models.Stroke
	lifted bool
}

func NewRecorder() *Recorder {
	return &Recorder{lifted: true}
}

// Add records a sample and reports whether it was kept.
func (r *Recorder) Add(x, y float64) bool {
	newPoint := models.Point{X: x, Y: y}

	shouldAdd := false
	if len(r.points) == 0 || r.lifted {
		shouldAdd = true
	} else {
		lastPoint := r.points[len(r.points)-1]
		dx := newPoint.X - lastPoint.X
		dy := newPoint.Y - lastPoint.Y
		shouldAdd = dx*dx+dy*dy > minSpacing
	}

	if shouldAdd {
		r.lifted = false
		r.points = append(r.points, newPoint)
		if len(r.points) > MaxPoints {
			r.points = r.points[len(r.points)-MaxPoints:]
		}
	}
	return shouldAdd
}

// Lift ends the current stroke.
func (r *Recorder) Lift() {
	r.lifted = true
}

func (r *Recorder) Len() int {
	return len(r.points)
}

func (r *Recorder) Points() models.Stroke {
	return r.points.Clone()
}

func (r *Recorder) Reset() {
	r.points = nil
	r.lifted = true
}
