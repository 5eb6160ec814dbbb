package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ThatOtherAndrew/Glyphcast/internal/config"
	gestures "github.com/ThatOtherAndrew/Glyphcast/internal/gesture"
	"github.com/ThatOtherAndrew/Glyphcast/internal/models"
)

func TestReadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stroke.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"x":1,"y":2},{"x":3,"y":4}]`), 0644))

	var s models.Stroke
	require.NoError(t, readJSON(path, &s))
	assert.Equal(t, models.Stroke{{X: 1, Y: 2}, {X: 3, Y: 4}}, s)

	assert.Error(t, readJSON(filepath.Join(t.TempDir(), "missing.json"), &s))
}

func TestLoadRecognizer(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	var line models.Stroke
	for i := 0; i < 12; i++ {
		line = append(line, models.Point{X: float64(i), Y: float64(i * i)})
	}
	require.NoError(t, gestures.SaveGesture("curve", []models.Stroke{line}))

	rec, err := loadRecognizer(config.Default(), gestures.MetricCosine, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"curve"}, rec.Names())

	rec, err = loadRecognizer(config.Default(), gestures.MetricCosine, true)
	require.NoError(t, err)
	assert.Equal(t, 14, rec.TemplateCount())
}

func TestCommandsRegistered(t *testing.T) {
	for _, name := range []string{"list", "remove", "learn", "recognize", "serve", "completion"} {
		c, _, err := rootCmd.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, c.Name())
	}
}

func TestSaveSamplesSplit(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	var curve models.Stroke
	for i := 0; i < 12; i++ {
		curve = append(curve, models.Point{X: float64(i), Y: float64(i * i)})
	}

	names, err := saveSamples("c", []models.Stroke{curve, curve}, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"c-0", "c-1"}, names)

	names, err = saveSamples("u", []models.Stroke{curve, curve}, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"u"}, names)

	saved, err := gestures.LoadGestures()
	require.NoError(t, err)
	assert.Len(t, saved["c-0"], 1)
	assert.Len(t, saved["c-1"], 1)
	assert.Len(t, saved["u"], 2)
}
