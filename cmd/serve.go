package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/ThatOtherAndrew/Glyphcast/internal/config"
	gestures "github.com/ThatOtherAndrew/Glyphcast/internal/gesture"
	"github.com/ThatOtherAndrew/Glyphcast/internal/server"
	"github.com/spf13/cobra"
)

var (
	serveAddr   string
	serveMetric string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve gesture recognition over WebSocket",
	Run:   serve,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default from settings)")
	serveCmd.Flags().StringVar(&serveMetric, "metric", "cosine", "Scoring metric: cosine or path")
}

func serve(cmd *cobra.Command, args []string) {
	settings, err := config.LoadSettings()
	if err != nil {
		log.Fatal("Failed to load settings:", err)
	}
	metric, err := gestures.ParseMetric(serveMetric)
	if err != nil {
		log.Fatal(err)
	}
	addr := serveAddr
	if addr == "" {
		addr = settings.ListenAddr
	}

	saved, err := gestures.LoadGestures()
	if err != nil {
		log.Fatal("Failed to load gestures:", err)
	}
	log.Printf("Loaded %d gesture(s)", len(saved))

	srv := server.New(server.Options{
		Threshold:      settings.AccuracyThreshold,
		Metric:         metric,
		Library:        saved,
		Builtin:        settings.BuiltinTemplates,
		SurfaceWidth:   settings.SurfaceWidth,
		SurfaceHeight:  settings.SurfaceHeight,
		AllowedOrigins: settings.AllowedOrigins,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Printf("Listening on ws://%s/ws", addr)
	if err := srv.ListenAndServe(ctx, addr); err != nil {
		log.Fatal("Server stopped:", err)
	}
}
