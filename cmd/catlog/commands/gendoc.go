package commands

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/thoreinstein/catlog/internal/errors"
	"github.com/thoreinstein/catlog/internal/paths"
)

// genDocDir and genDocFormat hold the gen-doc flags.
var (
	genDocDir    string
	genDocFormat string
)

var genDocCmd = &cobra.Command{
	Use:         "gen-doc",
	Short:       "Generate reference documentation for the CLI",
	Hidden:      true,
	Args:        cobra.NoArgs,
	Annotations: map[string]string{annotationConfigOptional: "", annotationNoLogging: ""},
	RunE:        runGenDoc,
}

func init() {
	genDocCmd.Flags().StringVarP(&genDocDir, "dir", "d", "", "output directory for documentation")
	genDocCmd.Flags().StringVar(&genDocFormat, "format", "markdown", "documentation format: markdown, man")
	rootCmd.AddCommand(genDocCmd)
}

func runGenDoc(cmd *cobra.Command, _ []string) error {
	if genDocDir == "" {
		return errors.NewUserError(errors.Mark(errors.New("output directory is required"), errors.ErrInvalidFlag),
			"Pass --dir")
	}

	if err := paths.EnsureDir(genDocDir, paths.DefaultDirPerm); err != nil {
		return commandError(errors.Wrap(err, "creating output directory"))
	}

	var err error
	switch genDocFormat {
	case "markdown", "md":
		err = doc.GenMarkdownTreeCustom(rootCmd, genDocDir, filePrepender, linkHandler)
	case "man":
		err = doc.GenManTree(rootCmd, &doc.GenManHeader{Title: "CATLOG", Section: "1"}, genDocDir)
	default:
		return flagError("--format", errors.Newf("unknown format %q (valid: markdown, man)", genDocFormat))
	}
	if err != nil {
		return commandError(errors.Wrap(err, "generating documentation"))
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Documentation generated in %s\n", genDocDir)
	return nil
}

func filePrepender(filename string) string {
	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	// catlog_config_show.md -> catlog config show
	title := strings.ReplaceAll(base, "_", " ")

	return fmt.Sprintf("---\ntitle: %q\ndescription: %q\n---\n", title, "Reference for "+title)
}

func linkHandler(name string) string {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	return strings.ToLower(base) + ".md"
}
