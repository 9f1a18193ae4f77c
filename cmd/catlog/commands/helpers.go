package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/catlog/internal/cli/prompt"
	"github.com/thoreinstein/catlog/internal/errors"
)

// newPrompter returns a terminal prompter when cmd reads the real stdin,
// and a plain one on the command's streams otherwise.
func newPrompter(cmd *cobra.Command) *prompt.Prompter {
	if cmd.InOrStdin() == os.Stdin && cmd.OutOrStdout() == os.Stdout {
		return prompt.NewPrompter()
	}
	return prompt.NewPrompterWithIO(cmd.InOrStdin(), cmd.OutOrStdout())
}

// commandError attaches an exit code and suggestion to a failure from the
// prompt or file layers.
func commandError(err error) error {
	var exitErr *errors.ExitError
	if errors.As(err, &exitErr) {
		return err
	}

	switch {
	case errors.Is(err, prompt.ErrInputClosed):
		return errors.NewUserError(err, "Provide a filename on standard input")
	case errors.Is(err, prompt.ErrInvalidSelection), errors.Is(err, prompt.ErrNoOptions):
		return errors.NewUserError(err, "")
	}

	var ioErr *errors.IOError
	if errors.As(err, &ioErr) {
		switch ioErr.Kind {
		case errors.IONotFound:
			return errors.NewSystemError(err, "Check the path and try again")
		case errors.IOPermissionDenied:
			return errors.NewSystemError(err, "Check the file permissions")
		}
	}
	return errors.NewSystemError(err, "")
}

// PrintError writes err and any suggestion it carries to w.
func PrintError(w io.Writer, err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(w, "%s %v\n", color.New(color.FgRed, color.Bold).Sprint("Error:"), err)

	var exitErr *errors.ExitError
	if errors.As(err, &exitErr) && exitErr.Suggestion != "" {
		fmt.Fprintln(w, color.YellowString(exitErr.Suggestion))
	}
}
