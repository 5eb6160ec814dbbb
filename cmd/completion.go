package cmd

import (
	"github.com/spf13/cobra"
)

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Print a shell completion script for glyphcast",
	Long: `Print a completion script for the given shell to stdout.

To load completions for the current bash session:

    source <(glyphcast completion bash)
`,
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	DisableFlagsInUseLine: true,
	RunE:                  writeCompletion,
}

func init() {
	rootCmd.AddCommand(completionCmd)
}

// writeCompletion generates the script for args[0], which Args has already
// checked against ValidArgs.
func writeCompletion(cmd *cobra.Command, args []string) error {
	root, out := cmd.Root(), cmd.OutOrStdout()
	switch args[0] {
	case "zsh":
		return root.GenZshCompletion(out)
	case "fish":
		return root.GenFishCompletion(out, true)
	case "powershell":
		return root.GenPowerShellCompletionWithDesc(out)
	default:
		return root.GenBashCompletionV2(out, true)
	}
}
