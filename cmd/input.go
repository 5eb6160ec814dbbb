package cmd

import (
	"encoding/json"
	"io"
	"os"

	"github.com/ThatOtherAndrew/Glyphcast/internal/config"
	gestures "github.com/ThatOtherAndrew/Glyphcast/internal/gesture"
	"github.com/ThatOtherAndrew/Glyphcast/internal/templates"
	"github.com/pkg/errors"
)

// readJSON decodes path into v. "-" reads stdin.
func readJSON(path string, v any) error {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return errors.Wrap(err, "open input")
		}
		defer f.Close()
		r = f
	}
	return errors.Wrapf(json.NewDecoder(r).Decode(v), "decode %s", path)
}

// loadRecognizer builds a recognizer from the saved library, optionally
// seeded with the built-in templates.
func loadRecognizer(settings *config.Settings, metric gestures.Metric, builtin bool) (*gestures.Recognizer, error) {
	saved, err := gestures.LoadGestures()
	if err != nil {
		return nil, err
	}
	rec := gestures.New(gestures.WithMetric(metric))
	if err := rec.Import(saved); err != nil {
		return nil, err
	}
	if builtin {
		if err := templates.Seed(rec, settings.SurfaceWidth, settings.SurfaceHeight); err != nil {
			return nil, err
		}
	}
	return rec, nil
}
