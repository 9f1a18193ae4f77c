package commands

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/catlog/internal/errors"
)

func TestWrite_Defaults(t *testing.T) {
	dir, _ := isolate(t)
	a := fakeActivation(t)

	_, _, err := execute(t, "", "write")
	require.NoError(t, err)

	if got := readFile(t, filepath.Join(dir, "output.txt")); got != "Hello, world!" {
		t.Errorf("output.txt = %q, want Hello, world!", got)
	}
	if !strings.Contains(a.logs.String(), "writing to file") {
		t.Errorf("logs = %q, want writing to file", a.logs.String())
	}
}

func TestWrite_Flags(t *testing.T) {
	dir, _ := isolate(t)
	fakeActivation(t)

	_, _, err := execute(t, "", "write", "--path", "greeting.txt", "--content", "hi there")
	require.NoError(t, err)

	if got := readFile(t, filepath.Join(dir, "greeting.txt")); got != "hi there" {
		t.Errorf("greeting.txt = %q, want hi there", got)
	}
}

func TestWrite_EmptyContentFlag(t *testing.T) {
	dir, _ := isolate(t)
	fakeActivation(t)
	writeFile(t, filepath.Join(dir, "output.txt"), "old contents")

	_, _, err := execute(t, "", "write", "--content", "")
	require.NoError(t, err)

	if got := readFile(t, filepath.Join(dir, "output.txt")); got != "" {
		t.Errorf("output.txt = %q, want empty", got)
	}
}

func TestWrite_EnvOverride(t *testing.T) {
	dir, _ := isolate(t)
	fakeActivation(t)
	t.Setenv("CATLOG_OUTPUT_PATH", "env.txt")
	t.Setenv("CATLOG_OUTPUT_CONTENT", "from env")

	_, _, err := execute(t, "", "write")
	require.NoError(t, err)

	if got := readFile(t, filepath.Join(dir, "env.txt")); got != "from env" {
		t.Errorf("env.txt = %q, want from env", got)
	}
}

func TestWrite_MissingDirectory(t *testing.T) {
	isolate(t)
	a := fakeActivation(t)

	_, _, err := execute(t, "", "write", "--path", filepath.Join("no", "such", "dir.txt"))
	require.Error(t, err)

	var ioErr *errors.IOError
	require.True(t, errors.As(err, &ioErr))
	if ioErr.Op != errors.OpCreate {
		t.Errorf("Op = %q, want create", ioErr.Op)
	}
	if errors.ExitCode(err) != errors.ExitSystem {
		t.Errorf("ExitCode() = %d, want %d", errors.ExitCode(err), errors.ExitSystem)
	}
	// The WARN record is only logged once the file is open
	if strings.Contains(a.logs.String(), "writing to file") {
		t.Errorf("logs = %q, want no writing record on failure", a.logs.String())
	}
}
