package commands

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/catlog/internal/errors"
)

func TestGenDoc_Markdown(t *testing.T) {
	isolate(t)
	fakeActivation(t)
	out := filepath.Join(t.TempDir(), "docs")

	_, _, err := execute(t, "", "gen-doc", "--dir", out)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(out, "catlog_config_show.md"))
	require.NoError(t, err)

	content := string(data)
	if !strings.HasPrefix(content, "---\ntitle: \"catlog config show\"\n") {
		t.Errorf("missing front matter:\n%s", content)
	}
	if !strings.Contains(content, "catlog_config.md") {
		t.Errorf("expected link to parent command:\n%s", content)
	}
}

func TestGenDoc_SkipsLogging(t *testing.T) {
	isolate(t)
	a := fakeActivation(t)

	_, _, err := execute(t, "", "gen-doc", "--dir", t.TempDir())
	require.NoError(t, err)
	if a.config != nil {
		t.Error("gen-doc should not activate logging")
	}
}

func TestGenDoc_Man(t *testing.T) {
	isolate(t)
	fakeActivation(t)
	out := t.TempDir()

	_, _, err := execute(t, "", "gen-doc", "--dir", out, "--format", "man")
	require.NoError(t, err)

	if _, err := os.Stat(filepath.Join(out, "catlog-cat.1")); err != nil {
		t.Errorf("man page not generated: %v", err)
	}
}

func TestGenDoc_RequiresDir(t *testing.T) {
	isolate(t)
	fakeActivation(t)

	_, _, err := execute(t, "", "gen-doc")
	require.Error(t, err)
	if !errors.Is(err, errors.ErrInvalidFlag) {
		t.Errorf("error = %v, want ErrInvalidFlag", err)
	}
}

func TestFilePrepender(t *testing.T) {
	got := filePrepender("/tmp/docs/catlog_write.md")
	want := "---\ntitle: \"catlog write\"\ndescription: \"Reference for catlog write\"\n---\n"
	if got != want {
		t.Errorf("filePrepender() = %q, want %q", got, want)
	}
}
