package models

import (
	"time"
)

// Unknown is the name returned when nothing could be matched.
const Unknown = "UNKNOWN"

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Stroke is an ordered, chronological sequence of samples.
type Stroke []Point

// Clone returns a copy that shares no memory with s.
func (s Stroke) Clone() Stroke {
	if s == nil {
		return nil
	}
	out := make(Stroke, len(s))
	copy(out, s)
	return out
}

// Template is a registered gesture. Points has already been through the
// normalization pipeline; Raw is the stroke as it was registered.
type Template struct {
	Name   string
	Points Stroke
	Raw    Stroke
}

type Result struct {
	Name    string        `json:"name"`
	Score   float64       `json:"score"`
	Elapsed time.Duration `json:"-"`
}

// NoMatch is the defined result for short strokes, degenerate strokes and
// empty libraries.
func NoMatch() Result {
	return Result{Name: Unknown, Score: 0}
}

// Snapshot maps a gesture name to the raw point lists of its variants.
type Snapshot map[string][]Stroke

// Count returns the number of strokes across all names.
func (s Snapshot) Count() int {
	n := 0
	for _, strokes := range s {
		n += len(strokes)
	}
	return n
}
