package doctorcmd

import (
	"os"
	"path/filepath"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/go-ports/jasper/cmd/jasper/shared"
	"github.com/go-ports/jasper/internal/config"
	"github.com/go-ports/jasper/internal/diagnose"
)

func pythonCheck(c *qt.C, report *diagnose.Report) diagnose.Check {
	c.Helper()
	for _, ch := range report.Checks {
		if ch.Name == "python" {
			return ch
		}
	}
	c.Fatalf("no python check in report")
	return diagnose.Check{}
}

func TestCollect_PythonDetailCarriesActivationError(t *testing.T) {
	c := qt.New(t)

	missing := filepath.Join(t.TempDir(), "nowhere")
	ctx := &shared.Context{
		Lookup:       config.MapLookup(map[string]string{config.EnvOverride: missing, config.EnvHome: t.TempDir()}),
		TargetScript: filepath.Join(t.TempDir(), "jasper.py"),
	}

	report, err := New(ctx).collect()
	c.Assert(err, qt.IsNil)

	py := pythonCheck(c, report)
	c.Assert(py.OK, qt.IsFalse)
	c.Assert(py.Detail, qt.Contains, "virtual environment not found")
	c.Assert(py.Detail, qt.Contains, filepath.Join(missing, "bin", "activate"))
}

func TestCollect_PythonDetailCarriesInterpreterError(t *testing.T) {
	c := qt.New(t)

	root := t.TempDir()
	bin := filepath.Join(root, "bin")
	c.Assert(os.MkdirAll(bin, 0o755), qt.IsNil)
	c.Assert(os.WriteFile(filepath.Join(bin, "activate"), []byte("# activate\n"), 0o644), qt.IsNil)
	// An empty PATH leaves only the virtualenv's bin, which has no python.
	t.Setenv("PATH", "")

	ctx := &shared.Context{
		Lookup:       config.MapLookup(map[string]string{config.EnvOverride: root, config.EnvHome: t.TempDir()}),
		TargetScript: filepath.Join(t.TempDir(), "jasper.py"),
	}

	report, err := New(ctx).collect()
	c.Assert(err, qt.IsNil)

	py := pythonCheck(c, report)
	c.Assert(py.OK, qt.IsFalse)
	c.Assert(py.Detail, qt.Contains, "python interpreter not found")
	c.Assert(py.Detail, qt.Contains, bin)
}
