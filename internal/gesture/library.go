package gestures

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/ThatOtherAndrew/Glyphcast/internal/models"
	"github.com/ThatOtherAndrew/Glyphcast/internal/stroke"
)

// Library holds normalized templates in registration order. Several
// templates may share a name; each is matched on its own.
//
// A Library is not safe for concurrent use.
type Library struct {
	templates []models.Template
}

func NewLibrary() *Library {
	return &Library{}
}

// Add normalizes raw and stores it under name.
func (l *Library) Add(name string, raw models.Stroke) (models.Template, error) {
	t, err := newTemplate(name, raw)
	if err != nil {
		return models.Template{}, err
	}
	l.templates = append(l.templates, t)
	return t, nil
}

func newTemplate(name string, raw models.Stroke) (models.Template, error) {
	points, err := stroke.Normalize(raw)
	if err != nil {
		return models.Template{}, errors.Wrapf(err, "gesture %q", name)
	}
	return models.Template{Name: name, Points: points, Raw: raw.Clone()}, nil
}

// All returns every template. The slice must not be modified.
func (l *Library) All() []models.Template {
	return l.templates
}

// Templates returns the variants registered under name.
func (l *Library) Templates(name string) []models.Template {
	var out []models.Template
	for _, t := range l.templates {
		if t.Name == name {
			out = append(out, t)
		}
	}
	return out
}

// Names returns each distinct name once, in order of first registration.
func (l *Library) Names() []string {
	seen := make(map[string]bool)
	names := []string{}
	for _, t := range l.templates {
		if !seen[t.Name] {
			seen[t.Name] = true
			names = append(names, t.Name)
		}
	}
	return names
}

func (l *Library) Count() int {
	return len(l.templates)
}

func (l *Library) Clear() {
	l.templates = nil
}

// Export returns the raw registered points grouped by name.
func (l *Library) Export() models.Snapshot {
	snap := make(models.Snapshot)
	for _, t := range l.templates {
		snap[t.Name] = append(snap[t.Name], t.Raw.Clone())
	}
	return snap
}

// Import replaces the contents of the library with snap. Every stroke is run
// through the pipeline again. If any stroke is rejected the library is left
// unchanged.
func (l *Library) Import(snap models.Snapshot) error {
	names := make([]string, 0, len(snap))
	for name := range snap {
		names = append(names, name)
	}
	sort.Strings(names)

	templates := make([]models.Template, 0, snap.Count())
	for _, name := range names {
		for i, raw := range snap[name] {
			t, err := newTemplate(name, raw)
			if err != nil {
				return errors.Wrapf(err, "variant %d", i)
			}
			templates = append(templates, t)
		}
	}
	l.templates = templates
	return nil
}
