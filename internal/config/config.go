package config

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/pkg/errors"
)

type Settings struct {
	AccuracyThreshold float64 `json:"accuracy_threshold"`
	SamplesPerGesture int     `json:"samples_per_gesture"`
	SurfaceWidth      float64 `json:"surface_width"`
	SurfaceHeight     float64 `json:"surface_height"`
	ListenAddr        string  `json:"listen_addr"`
	BuiltinTemplates  bool    `json:"builtin_templates"`
	// AllowedOrigins are extra browser origins the WebSocket service accepts.
	AllowedOrigins []string `json:"allowed_origins"`
}

func Default() *Settings {
	return &Settings{
		AccuracyThreshold: 0.75,
		SamplesPerGesture: 3,
		SurfaceWidth:      600,
		SurfaceHeight:     400,
		ListenAddr:        "127.0.0.1:8765",
		BuiltinTemplates:  true,
	}
}

// Dir returns ~/.config/glyphcast, creating it if needed.
func Dir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "home directory")
	}
	configDir := filepath.Join(homeDir, ".config", "glyphcast")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return "", errors.Wrap(err, "create config directory")
	}
	return configDir, nil
}

func GetPath() (string, error) {
	configDir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "gestures.json"), nil
}

func GetSettingsPath() (string, error) {
	configDir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "settings.json"), nil
}

func LoadSettings() (*Settings, error) {
	settingsPath, err := GetSettingsPath()
	if err != nil {
		return nil, err
	}

	defaultSettings := Default()

	data, err := os.ReadFile(settingsPath)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("Creating default settings file at %s", settingsPath)
			if err := createDefaultSettings(settingsPath, defaultSettings); err != nil {
				log.Printf("Failed to create default settings file: %v", err)
			}
			return defaultSettings, nil
		}
		return nil, errors.Wrap(err, "read settings")
	}

	// Check for unrecognised keys
	var rawSettings map[string]interface{}
	if err := json.Unmarshal(data, &rawSettings); err != nil {
		log.Printf("Invalid settings file, using defaults: %v", err)
		return defaultSettings, nil
	}

	knownKeys := getKnownKeys(Settings{})
	for key := range rawSettings {
		if !knownKeys[key] {
			log.Printf("Warning: unrecognised setting key '%s' in settings file", key)
		}
	}

	// Missing keys keep their defaults
	settings := Default()
	if err := json.Unmarshal(data, settings); err != nil {
		log.Printf("Invalid settings file, using defaults: %v", err)
		return defaultSettings, nil
	}

	settings.validate(defaultSettings)
	return settings, nil
}

func (s *Settings) validate(def *Settings) {
	if s.AccuracyThreshold < 0.0 || s.AccuracyThreshold > 1.0 {
		log.Printf("Invalid accuracy_threshold value %.2f, must be between 0.0 and 1.0, using default %.2f",
			s.AccuracyThreshold, def.AccuracyThreshold)
		s.AccuracyThreshold = def.AccuracyThreshold
	}
	if s.SamplesPerGesture < 1 {
		log.Printf("Invalid samples_per_gesture value %d, must be at least 1, using default %d",
			s.SamplesPerGesture, def.SamplesPerGesture)
		s.SamplesPerGesture = def.SamplesPerGesture
	}
	if s.SurfaceWidth <= 0 || s.SurfaceHeight <= 0 {
		log.Printf("Invalid surface size %.0fx%.0f, using default %.0fx%.0f",
			s.SurfaceWidth, s.SurfaceHeight, def.SurfaceWidth, def.SurfaceHeight)
		s.SurfaceWidth, s.SurfaceHeight = def.SurfaceWidth, def.SurfaceHeight
	}
	if s.ListenAddr == "" {
		s.ListenAddr = def.ListenAddr
	}
}

func createDefaultSettings(path string, settings *Settings) error {
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func getKnownKeys(v interface{}) map[string]bool {
	keys := make(map[string]bool)
	t := reflect.TypeOf(v)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if jsonTag := field.Tag.Get("json"); jsonTag != "" {
			// Handle json tags like "field,omitempty"
			tagName := strings.Split(jsonTag, ",")[0]
			if tagName != "-" {
				keys[tagName] = true
			}
		}
	}
	return keys
}
