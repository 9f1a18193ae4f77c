package commands

import (
	"github.com/spf13/cobra"

	"github.com/thoreinstein/catlog/pkg/fileutil"
)

// catPick holds the value of the --pick flag.
var catPick bool

func init() {
	catCmd.Flags().BoolVar(&catPick, "pick", false,
		"choose the file with a fuzzy finder over the current directory")
	rootCmd.AddCommand(catCmd)
}

var catCmd = &cobra.Command{
	Use:   "cat [file]",
	Short: "Print a file line by line",
	Long: `Print a file to standard output, one line at a time.

Without an argument the filename is read from standard input, the same
way the root command does. With --pick a fuzzy finder lists the regular
files in the current directory.`,
	Example: `  # Print a named file
  catlog cat notes.txt

  # Read the filename from stdin
  echo notes.txt | catlog cat

  # Pick interactively
  catlog cat --pick

  See Also: catlog write`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCat,
}

func runCat(cmd *cobra.Command, args []string) error {
	path, err := catTarget(cmd, args)
	if err != nil {
		return commandError(err)
	}

	if _, err := fileutil.PrintLines(cmd.Context(), cmd.OutOrStdout(), path); err != nil {
		return commandError(err)
	}
	return nil
}

// catTarget resolves the file to print from args, --pick, or a prompt.
func catTarget(cmd *cobra.Command, args []string) (string, error) {
	switch {
	case len(args) == 1:
		return args[0], nil
	case catPick:
		return newPrompter(cmd).PickFile(".")
	default:
		return newPrompter(cmd).Line(appConfig.Prompt.Text)
	}
}
