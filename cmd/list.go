package cmd

import (
	"fmt"
	"log"
	"sort"

	gestures "github.com/ThatOtherAndrew/Glyphcast/internal/gesture"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all registered gestures",
	Run:   listGestures,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func listGestures(cmd *cobra.Command, args []string) {

	gestures, err := gestures.LoadGestures()
	if err != nil {
		log.Fatal("Failed to load gestures:", err)
	}
	if len(gestures) == 0 {
		fmt.Println("No gestures registered")
		return
	}

	names := make([]string, 0, len(gestures))
	for name := range gestures {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Println("Registered gestures:")
	for _, name := range names {
		fmt.Printf("   %s (%d variants)\n", name, len(gestures[name]))
	}
}
