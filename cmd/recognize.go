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

var (
	recognizeMetric  string
	recognizeBuiltin bool
)

var recognizeCmd = &cobra.Command{
	Use:   "recognize [stroke.json|-]",
	Short: "Match a stroke against the saved gestures",
	Args:  cobra.ExactArgs(1),
	Run:   recognizeStroke,
}

func init() {
	rootCmd.AddCommand(recognizeCmd)
	recognizeCmd.Flags().StringVar(&recognizeMetric, "metric", "cosine", "Scoring metric: cosine or path")
	recognizeCmd.Flags().BoolVar(&recognizeBuiltin, "builtin", false, "Include the built-in letter templates")
}

func recognizeStroke(cmd *cobra.Command, args []string) {
	settings, err := config.LoadSettings()
	if err != nil {
		log.Fatal("Failed to load settings:", err)
	}
	metric, err := gestures.ParseMetric(recognizeMetric)
	if err != nil {
		log.Fatal(err)
	}

	var points models.Stroke
	if err := readJSON(args[0], &points); err != nil {
		log.Fatal("Failed to read stroke: ", err)
	}

	rec, err := loadRecognizer(settings, metric, recognizeBuiltin)
	if err != nil {
		log.Fatal("Failed to load gestures:", err)
	}
	log.Printf("Loaded %d template(s)", rec.TemplateCount())

	res := rec.Recognize(points)
	accuracy := metric.Accuracy(res.Score)
	if res.Name != models.Unknown && accuracy >= settings.AccuracyThreshold {
		fmt.Printf("Matched gesture: %s (label %s, score %.3f, accuracy %.2f%%, %s)\n",
			res.Name, labels.Label(res.Name), res.Score, accuracy*100, res.Elapsed)
	} else {
		fmt.Printf("No confident match (best: %s, score %.3f, accuracy %.2f%%)\n",
			res.Name, res.Score, accuracy*100)
	}
}
