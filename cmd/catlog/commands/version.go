package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/catlog/cmd"
)

func init() {
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:         "version",
	Short:       "Print the version information",
	Long:        `Print the version, commit, and build date of catlog.`,
	Args:        cobra.NoArgs,
	Annotations: map[string]string{annotationConfigOptional: "", annotationNoLogging: ""},
	Run: func(c *cobra.Command, _ []string) {
		fmt.Fprint(c.OutOrStdout(), cmd.Summary())
	},
}
