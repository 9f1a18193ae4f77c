package commands

import (
	"github.com/spf13/cobra"

	"github.com/thoreinstein/catlog/pkg/fileutil"
)

// writePath and writeContent hold the write command's flags. Empty means
// use the configured value.
var (
	writePath    string
	writeContent string
)

func init() {
	writeCmd.Flags().StringVar(&writePath, "path", "",
		"file to write (default: output.path from config)")
	writeCmd.Flags().StringVar(&writeContent, "content", "",
		"text to write (default: output.content from config)")
	rootCmd.AddCommand(writeCmd)
}

var writeCmd = &cobra.Command{
	Use:   "write",
	Short: "Write the configured string to the output file",
	Long: `Create or truncate the output file and write a fixed string to it.

A WARN record naming the file is logged before anything is written.`,
	Example: `  # Write "Hello, world!" to output.txt
  catlog write

  # Override both
  catlog write --path greeting.txt --content "hi there"

  See Also: catlog cat, catlog config show`,
	Args: cobra.NoArgs,
	RunE: runWrite,
}

func runWrite(cmd *cobra.Command, _ []string) error {
	path := appConfig.Output.Path
	if writePath != "" {
		path = writePath
	}
	content := appConfig.Output.Content
	if cmd.Flags().Changed("content") {
		content = writeContent
	}

	if err := fileutil.WriteFile(cmd.Context(), path, content); err != nil {
		return commandError(err)
	}
	return nil
}
