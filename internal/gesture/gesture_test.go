package gestures_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ThatOtherAndrew/Glyphcast/internal/config"
	gestures "github.com/ThatOtherAndrew/Glyphcast/internal/gesture"
	"github.com/ThatOtherAndrew/Glyphcast/internal/models"
)

func TestLoadGesturesMissingFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	snap, err := gestures.LoadGestures()
	require.NoError(t, err)
	assert.Empty(t, snap)
}

func TestSaveLoadRemove(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	require.NoError(t, gestures.SaveGesture("L", []models.Stroke{corner()}))
	require.NoError(t, gestures.SaveGesture("Z", []models.Stroke{zigzag(), zigzag()}))
	// saving again replaces the variants
	require.NoError(t, gestures.SaveGesture("L", []models.Stroke{corner(), corner()}))

	snap, err := gestures.LoadGestures()
	require.NoError(t, err)
	assert.Len(t, snap["L"], 2)
	assert.Len(t, snap["Z"], 2)
	assert.Equal(t, corner(), snap["L"][0])

	r := gestures.New()
	require.NoError(t, r.Import(snap))
	assert.Equal(t, 4, r.TemplateCount())

	require.NoError(t, gestures.RemoveGesture("L"))
	err = gestures.RemoveGesture("L")
	assert.ErrorIs(t, err, gestures.ErrGestureNotFound)

	snap, err = gestures.LoadGestures()
	require.NoError(t, err)
	assert.NotContains(t, snap, "L")
}

func TestLoadGesturesCorruptFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path, err := config.GetPath()
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, []byte("[1,2"), 0644))

	_, err = gestures.LoadGestures()
	assert.Error(t, err)
}

func TestRecorderSpacingAndLift(t *testing.T) {
	rec := gestures.NewRecorder()
	assert.True(t, rec.Add(0, 0))
	assert.False(t, rec.Add(1, 1))
	assert.True(t, rec.Add(3, 0))

	rec.Lift()
	// first sample of a new stroke is always kept
	assert.True(t, rec.Add(3, 0))
	assert.Equal(t, 3, rec.Len())

	pts := rec.Points()
	pts[0].X = 99
	assert.Equal(t, 0.0, rec.Points()[0].X)

	rec.Reset()
	assert.Zero(t, rec.Len())
}

func TestRecorderCap(t *testing.T) {
	rec := gestures.NewRecorder()
	for i := 0; i < gestures.MaxPoints+10; i++ {
		rec.Add(float64(i*3), 0)
	}
	require.Equal(t, gestures.MaxPoints, rec.Len())
	assert.Equal(t, 30.0, rec.Points()[0].X)
}

func TestLibraryNamesOrder(t *testing.T) {
	lib := gestures.NewLibrary()
	for _, name := range []string{"b", "a", "b", "c"} {
		_, err := lib.Add(name, corner())
		require.NoError(t, err)
	}
	assert.Equal(t, []string{"b", "a", "c"}, lib.Names())
	assert.Len(t, lib.Templates("b"), 2)
	assert.Empty(t, lib.Templates("zzz"))
	assert.Equal(t, 4, lib.Count())

	tmpl := lib.Templates("a")[0]
	assert.Len(t, tmpl.Points, 64)
	assert.Equal(t, corner(), tmpl.Raw)
}
