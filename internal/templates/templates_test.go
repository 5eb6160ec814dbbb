package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gestures "github.com/ThatOtherAndrew/Glyphcast/internal/gesture"
	"github.com/ThatOtherAndrew/Glyphcast/internal/models"
	"github.com/ThatOtherAndrew/Glyphcast/internal/stroke"
)

func TestDefaultsAreUnitSpace(t *testing.T) {
	snap := Defaults()
	assert.Len(t, snap, 13)
	for name, strokes := range snap {
		for _, s := range strokes {
			for _, pt := range s {
				assert.True(t, pt.X >= 0 && pt.X <= 1 && pt.Y >= 0 && pt.Y <= 1, "%s: %v", name, pt)
			}
		}
	}
}

func TestScale(t *testing.T) {
	snap := Scale(models.Snapshot{"x": {{{X: 0.5, Y: 0.25}, {X: 1, Y: 1}}}}, 600, 400)
	assert.Equal(t, models.Stroke{{X: 300, Y: 100}, {X: 600, Y: 400}}, snap["x"][0])
}

func TestDensify(t *testing.T) {
	line := models.Stroke{{X: 0, Y: 0}, {X: 0, Y: 90}}
	out := Densify(line, stroke.MinPoints)
	require.Len(t, out, 10)
	assert.Equal(t, line[0], out[0])
	assert.Equal(t, line[1], out[9])
	assert.InDelta(t, 10.0, out[1].Y, 1e-9)

	l := models.Stroke{{X: 50, Y: 50}, {X: 50, Y: 150}, {X: 150, Y: 150}}
	out = Densify(l, stroke.MinPoints)
	assert.GreaterOrEqual(t, len(out), stroke.MinPoints)
	assert.Contains(t, out, l[1])

	long := make(models.Stroke, 12)
	assert.Equal(t, long, Densify(long, stroke.MinPoints))
}

func TestSeed(t *testing.T) {
	r := gestures.New()
	require.NoError(t, Seed(r, 600, 400))
	assert.Equal(t, 13, r.TemplateCount())
	// registered in name order
	assert.Equal(t, []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "l", "o", "s", "t"}, r.Names())

	for _, name := range []string{"c", "e", "o", "t"} {
		s := Densify(Defaults()[name][0], stroke.MinPoints)
		drawn := make(models.Stroke, len(s))
		for i, pt := range s {
			drawn[i] = models.Point{X: pt.X*600 + 5, Y: pt.Y*400 - 3}
		}
		assert.Equal(t, name, r.Recognize(drawn).Name)
	}
}

func TestRegisterSortsNames(t *testing.T) {
	r := gestures.New()
	snap := models.Snapshot{
		"L": {{{X: 50, Y: 50}, {X: 50, Y: 150}, {X: 150, Y: 150}}},
		"A": {{{X: 50, Y: 150}, {X: 100, Y: 50}, {X: 150, Y: 150}, {X: 60, Y: 100}, {X: 140, Y: 100}}},
	}
	require.NoError(t, Register(r, snap))
	assert.Equal(t, []string{"A", "L"}, r.Names())
}
