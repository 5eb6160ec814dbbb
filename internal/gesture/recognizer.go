package gestures

import (
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/ThatOtherAndrew/Glyphcast/internal/models"
	"github.com/ThatOtherAndrew/Glyphcast/internal/stroke"
)

// Metric selects how a candidate is scored against a template.
type Metric int

const (
	// MetricCosine scans cyclic index offsets of the dot product score.
	MetricCosine Metric = iota
	// MetricPathDistance golden-section searches rotations of the candidate
	// and scores the mean point distance on [0, 1].
	MetricPathDistance
)

func (m Metric) String() string {
	switch m {
	case MetricCosine:
		return "cosine"
	case MetricPathDistance:
		return "path"
	default:
		return fmt.Sprintf("Metric(%d)", int(m))
	}
}

// ParseMetric accepts the names returned by String.
func ParseMetric(s string) (Metric, error) {
	switch s {
	case "cosine", "":
		return MetricCosine, nil
	case "path":
		return MetricPathDistance, nil
	default:
		return 0, fmt.Errorf("unknown metric: %s", s)
	}
}

// Accuracy rescales a score onto [0, 1] for threshold comparisons.
func (m Metric) Accuracy(score float64) float64 {
	if m == MetricCosine {
		score /= stroke.NumPoints
	}
	return math.Max(0, math.Min(score, 1))
}

func (m Metric) score(template, candidate models.Stroke) float64 {
	if m == MetricPathDistance {
		return stroke.PathScore(candidate, template)
	}
	return stroke.OptimalCosineDistance(template, candidate)
}

type Option func(*Recognizer)

func WithMetric(m Metric) Option {
	return func(r *Recognizer) { r.metric = m }
}

func WithLogger(l *slog.Logger) Option {
	return func(r *Recognizer) {
		if l != nil {
			r.logger = l
		}
	}
}

// Recognizer matches strokes against the templates of its own Library.
// It must not be mutated while Recognize is running.
type Recognizer struct {
	library *Library
	metric  Metric
	logger  *slog.Logger
}

func New(opts ...Option) *Recognizer {
	r := &Recognizer{
		library: NewLibrary(),
		metric:  MetricCosine,
		logger:  Logger(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Recognizer) Metric() Metric {
	return r.metric
}

// AddGesture registers raw as a new template named name.
func (r *Recognizer) AddGesture(name string, raw models.Stroke) error {
	_, err := r.library.Add(name, raw)
	return err
}

// Recognize returns the best matching template. Short, degenerate or
// unmatched strokes yield models.NoMatch. Equal scores go to the
// lexicographically smaller name, so ties do not depend on registration order.
func (r *Recognizer) Recognize(raw models.Stroke) models.Result {
	if len(raw) < stroke.MinPoints {
		r.logger.Debug("gesture too short", "points", len(raw))
		return models.NoMatch()
	}
	candidate, err := stroke.Normalize(raw)
	if err != nil {
		r.logger.Debug("gesture rejected", "err", err)
		return models.NoMatch()
	}

	start := time.Now()
	best := models.NoMatch()
	bestScore := math.Inf(-1)
	for i, t := range r.library.All() {
		score := r.metric.score(t.Points, candidate)
		r.logger.Debug("template scored", "template", i, "name", t.Name, "score", score)
		if score > bestScore || (score == bestScore && t.Name < best.Name) {
			bestScore = score
			best.Name = t.Name
		}
	}
	if math.IsInf(bestScore, -1) {
		return models.NoMatch()
	}
	best.Score = bestScore
	best.Elapsed = time.Since(start)

	r.logger.Info("gesture matched", "name", best.Name, "score", best.Score, "metric", r.metric)
	return best
}

// Names returns the distinct registered names.
func (r *Recognizer) Names() []string {
	return r.library.Names()
}

func (r *Recognizer) Clear() {
	r.library.Clear()
}

func (r *Recognizer) TemplateCount() int {
	return r.library.Count()
}

func (r *Recognizer) Export() models.Snapshot {
	return r.library.Export()
}

func (r *Recognizer) Import(snap models.Snapshot) error {
	return r.library.Import(snap)
}
