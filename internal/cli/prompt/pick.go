package prompt

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/ktr0731/go-fuzzyfinder"
	"golang.org/x/term"

	"github.com/thoreinstein/catlog/internal/errors"
)

// previewLines is how many lines of a file the picker preview shows.
const previewLines = 40

// findFunc returns the index of the chosen item.
type findFunc func(items []string, preview func(i int) string) (int, error)

func fuzzyFind(items []string, preview func(i int) string) (int, error) {
	idx, err := fuzzyfinder.Find(
		items,
		func(i int) string { return items[i] },
		fuzzyfinder.WithPromptString("file> "),
		fuzzyfinder.WithPreviewWindow(func(i, _, _ int) string {
			if i == -1 {
				return ""
			}
			return preview(i)
		}),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return 0, ErrInputClosed
		}
		return 0, errors.Wrap(err, "fuzzy finder")
	}
	return idx, nil
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// PickFile lets the user choose one of the regular files in dir and returns
// its path joined with dir. On a terminal it opens a fuzzy finder with a
// preview of the file; otherwise it falls back to a numbered list.
func (p *Prompter) PickFile(dir string) (string, error) {
	files, err := listFiles(dir)
	if err != nil {
		return "", err
	}
	if len(files) == 0 {
		return "", errors.Wrapf(ErrNoOptions, "no files in %s", dir)
	}

	var idx int
	if p.interactive {
		idx, err = p.find(files, func(i int) string {
			return preview(filepath.Join(dir, files[i]), previewLines)
		})
	} else {
		idx, err = p.Select("Files in "+dir, files)
	}
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, files[idx]), nil
}

// listFiles returns the sorted names of regular, non-hidden files in dir.
func listFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.NewIOError(errors.OpOpen, dir, err)
	}

	var files []string
	for _, e := range entries {
		if !e.Type().IsRegular() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		files = append(files, e.Name())
	}
	slices.Sort(files)
	return files, nil
}

// preview returns up to n lines of the file at path, or a short error note.
func preview(path string, n int) string {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Sprintf("(cannot open: %v)", err)
	}
	defer f.Close()

	var sb strings.Builder
	scanner := bufio.NewScanner(f)
	for i := 0; i < n && scanner.Scan(); i++ {
		sb.WriteString(scanner.Text())
		sb.WriteByte('\n')
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(&sb, "(read error: %v)", err)
	}
	return sb.String()
}
