package prompt

import (
	"fmt"
	"strconv"

	"github.com/thoreinstein/catlog/internal/errors"
)

// Select prints a numbered list and returns the index of the chosen option.
//
// Returns:
//   - ErrNoOptions if the list is empty
//   - 0 without prompting if only one option exists
//   - 0 if the answer is empty
//   - ErrInvalidSelection if the answer is not a number in range
//   - ErrInputClosed if input ends before an answer
func (p *Prompter) Select(title string, options []string) (int, error) {
	if len(options) == 0 {
		return 0, ErrNoOptions
	}
	if len(options) == 1 {
		return 0, nil
	}

	fmt.Fprintf(p.writer, "%s:\n", title)
	for i, opt := range options {
		fmt.Fprintf(p.writer, "  [%d] %s\n", i+1, opt)
	}

	input, err := p.Line("Select [1]: ")
	if err != nil {
		return 0, err
	}
	if input == "" {
		return 0, nil
	}

	selection, err := strconv.Atoi(input)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidSelection, "%q is not a number", input)
	}
	if selection < 1 || selection > len(options) {
		return 0, errors.Wrapf(ErrInvalidSelection, "%d is out of range [1-%d]", selection, len(options))
	}

	return selection - 1, nil
}
