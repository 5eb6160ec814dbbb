package server

import (
	"time"

	gestures "github.com/ThatOtherAndrew/Glyphcast/internal/gesture"
	"github.com/ThatOtherAndrew/Glyphcast/internal/labels"
	"github.com/ThatOtherAndrew/Glyphcast/internal/models"
)

// Message types
const (
	TypeHello     = "hello"
	TypeAdd       = "add"
	TypeRecognize = "recognize"
	TypeClear     = "clear"
	TypeList      = "list"
	TypeExport    = "export"
	TypeImport    = "import"
	TypePoint     = "point"
	TypeLift      = "lift"
	TypeTrain     = "train"
	TypeCommit    = "commit"
	TypeError     = "error"
)

// Request is a client message. Only the fields its type needs are read.
// add, recognize and train fall back to the session's captured samples when
// Points is empty.
type Request struct {
	Type    string          `json:"type"`
	ID      uint32          `json:"id,omitempty"`
	Name    string          `json:"name,omitempty"`
	Points  models.Stroke   `json:"points,omitempty"`
	Library models.Snapshot `json:"library,omitempty"`
}

type Response struct {
	Type    string   `json:"type"`
	ID      uint32   `json:"id,omitempty"`
	Session string   `json:"session"`
	Name    string   `json:"name,omitempty"`
	Result  *Result  `json:"result,omitempty"`
	Names   []string `json:"names,omitempty"`
	Count   int      `json:"count"`
	// Captured is the number of samples held by the session's recorder.
	Captured int             `json:"captured,omitempty"`
	Library  models.Snapshot `json:"library,omitempty"`
	Error    string          `json:"error,omitempty"`
}

// Result is a recognition outcome as sent to clients. ElapsedTime is in
// milliseconds.
type Result struct {
	Name        string  `json:"name"`
	Label       string  `json:"label"`
	Score       float64 `json:"score"`
	Accuracy    float64 `json:"accuracy"`
	Matched     bool    `json:"matched"`
	ElapsedTime float64 `json:"elapsedTime"`
}

func newResult(res models.Result, metric gestures.Metric, threshold float64) *Result {
	accuracy := metric.Accuracy(res.Score)
	return &Result{
		Name:        res.Name,
		Label:       labels.Label(res.Name),
		Score:       res.Score,
		Accuracy:    accuracy,
		Matched:     res.Name != models.Unknown && accuracy >= threshold,
		ElapsedTime: float64(res.Elapsed) / float64(time.Millisecond),
	}
}
