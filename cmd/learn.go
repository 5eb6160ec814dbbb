package cmd

import (
	"fmt"
	"log"

	"github.com/ThatOtherAndrew/Glyphcast/internal/config"
	gestures "github.com/ThatOtherAndrew/Glyphcast/internal/gesture"
	"github.com/ThatOtherAndrew/Glyphcast/internal/labels"
	"github.com/ThatOtherAndrew/Glyphcast/internal/models"
	"github.com/spf13/cobra"
)

var learnSplit bool

var learnCmd = &cobra.Command{
	Use:   "learn [gesture] [strokes.json|-]",
	Short: "Save drawn samples as the variants of a gesture",
	Long: `Reads a JSON array of strokes, each an array of {"x": .., "y": ..} points,
and saves them as the variants of the named gesture. Existing variants of that
name are replaced.

With --split every sample is saved as its own gesture named "<gesture>-<i>",
starting at 0.`,
	Args: cobra.ExactArgs(2),
	Run:  learnGesture,
}

func init() {
	rootCmd.AddCommand(learnCmd)
	learnCmd.Flags().BoolVar(&learnSplit, "split", false, "Save each sample as a separate <gesture>-<i> gesture")
}

func learnGesture(cmd *cobra.Command, args []string) {
	settings, err := config.LoadSettings()
	if err != nil {
		log.Fatal("Failed to load settings:", err)
	}

	var samples []models.Stroke
	if err := readJSON(args[1], &samples); err != nil {
		log.Fatal("Failed to read samples: ", err)
	}
	if len(samples) < settings.SamplesPerGesture {
		log.Fatalf("Need at least %d samples, got %d", settings.SamplesPerGesture, len(samples))
	}

	// every sample must be usable as a template
	check := gestures.New()
	for i, s := range samples {
		if err := check.AddGesture(args[0], s); err != nil {
			log.Fatalf("Sample %d rejected: %v", i+1, err)
		}
		log.Printf("Captured gesture %d/%d", i+1, len(samples))
	}

	names, err := saveSamples(args[0], samples, learnSplit)
	if err != nil {
		log.Fatal("Failed to save gesture:", err)
	}
	for _, name := range names {
		fmt.Println("Gesture saved:", name)
	}
}

func saveSamples(name string, samples []models.Stroke, split bool) ([]string, error) {
	if !split {
		return []string{name}, gestures.SaveGesture(name, samples)
	}
	names := make([]string, 0, len(samples))
	for i, s := range samples {
		variant := labels.Variant(name, i)
		if err := gestures.SaveGesture(variant, []models.Stroke{s}); err != nil {
			return names, err
		}
		names = append(names, variant)
	}
	return names, nil
}
