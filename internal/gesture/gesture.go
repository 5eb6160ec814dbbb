package gestures

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"

	"github.com/ThatOtherAndrew/Glyphcast/internal/config"
	"github.com/ThatOtherAndrew/Glyphcast/internal/models"
)

var ErrGestureNotFound = errors.New("gesture not found")

// LoadGestures reads the saved library. A missing file is an empty library.
func LoadGestures() (models.Snapshot, error) {
	configFile, err := config.GetPath()
	if err != nil {
		return nil, err
	}
	return readSnapshot(configFile)
}

// SaveGesture stores strokes as the variants of name, replacing any that
// were saved before.
func SaveGesture(name string, strokes []models.Stroke) error {
	configFile, err := config.GetPath()
	if err != nil {
		return err
	}

	gestures, err := readSnapshot(configFile)
	if err != nil {
		return err
	}
	gestures[name] = strokes

	return writeSnapshot(configFile, gestures)
}

// RemoveGesture deletes every saved variant of name.
func RemoveGesture(name string) error {
	configFile, err := config.GetPath()
	if err != nil {
		return err
	}

	gestures, err := readSnapshot(configFile)
	if err != nil {
		return err
	}
	if _, ok := gestures[name]; !ok {
		return errors.Wrap(ErrGestureNotFound, name)
	}
	delete(gestures, name)

	return writeSnapshot(configFile, gestures)
}

func readSnapshot(path string) (models.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return models.Snapshot{}, nil
		}
		return nil, errors.Wrap(err, "read gestures")
	}

	gestures := models.Snapshot{}
	if err := json.Unmarshal(data, &gestures); err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}
	if gestures == nil {
		gestures = models.Snapshot{}
	}
	return gestures, nil
}

func writeSnapshot(path string, gestures models.Snapshot) error {
	data, err := json.Marshal(gestures)
	if err != nil {
		return errors.Wrap(err, "encode gestures")
	}
	return errors.Wrap(os.WriteFile(path, data, 0644), "write gestures")
}
