package cmd

import (
	"fmt"
	"log"

	gestures "github.com/ThatOtherAndrew/Glyphcast/internal/gesture"
	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:   "remove [gesture]",
	Short: "Remove a gesture and all of its variants",
	Run:   removeGesture,
}

func init() {
	rootCmd.AddCommand(removeCmd)
	log.SetFlags(0)
}

func removeGesture(cmd *cobra.Command, args []string) {

	if len(args) <= 0 {
		log.Fatalf("Please specify a gesture")
	}

	if err := gestures.RemoveGesture(args[0]); err != nil {
		log.Fatal("Failed to remove gesture: ", err)
	}

	fmt.Println("Removed gesture:", args[0])
}
