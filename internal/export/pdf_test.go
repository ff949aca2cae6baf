package export

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openresume/resume-builder/internal/types"
)

func quietLogger() logrus.FieldLogger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestNewPDFExporterDefaults(t *testing.T) {
	e := NewPDFExporter()
	assert.Equal(t, DefaultTimeout, e.timeout)
	assert.False(t, e.Busy())
}

func TestNewPDFExporterOptions(t *testing.T) {
	e := NewPDFExporter(
		WithChromePath("/opt/chrome"),
		WithTimeout(5*time.Second),
		WithLogger(quietLogger()),
	)
	assert.Equal(t, "/opt/chrome", e.chromePath)
	assert.Equal(t, 5*time.Second, e.timeout)
}

func TestExportSingleFlight(t *testing.T) {
	e := NewPDFExporter(WithLogger(quietLogger()))

	// Simulate an in-flight print by holding the flag directly.
	require.True(t, e.busy.CompareAndSwap(false, true))
	defer e.busy.Store(false)

	_, err := e.Export(context.Background(), types.NewDefaultResume())
	assert.ErrorIs(t, err, ErrExportInFlight)
	assert.True(t, e.Busy())
}

func TestExportReleasesBusyOnRenderError(t *testing.T) {
	e := NewPDFExporter(WithLogger(quietLogger()))

	// A nil record renders the default resume; to force an early failure
	// without a browser, cancel the context and point at a bogus binary.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	e.chromePath = filepath.Join(t.TempDir(), "no-such-chrome")

	_, err := e.Export(ctx, types.NewDefaultResume())
	require.Error(t, err)
	assert.False(t, e.Busy())
}

func TestRenderAll(t *testing.T) {
	dir := t.TempDir()
	data := types.NewDefaultResume()
	data.Personal.FullName = "Ada Lovelace"
	data.Summary = "Analyst and programmer."

	paths, err := RenderAll(context.Background(), data, dir)
	require.NoError(t, err)
	require.Len(t, paths, len(types.Templates()))

	for i, info := range types.Templates() {
		assert.Equal(t, filepath.Join(dir, string(info.ID)+".html"), paths[i])
		content, readErr := os.ReadFile(paths[i])
		require.NoError(t, readErr)
		assert.Contains(t, string(content), "Ada Lovelace")
	}
}

func TestRenderAllDoesNotMutateInput(t *testing.T) {
	data := types.NewDefaultResume()
	data.Template = types.TemplateExecutive

	_, err := RenderAll(context.Background(), data, t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, types.TemplateExecutive, data.Template)
}

func TestRenderAllOutputsDiffer(t *testing.T) {
	dir := t.TempDir()
	data := types.NewDefaultResume()
	data.Personal.FullName = "Ada Lovelace"

	paths, err := RenderAll(context.Background(), data, dir)
	require.NoError(t, err)

	seen := make(map[string]string)
	for _, path := range paths {
		content, readErr := os.ReadFile(path)
		require.NoError(t, readErr)
		for prior, priorPath := range seen {
			assert.NotEqual(t, prior, string(content),
				"%s and %s rendered identically", priorPath, path)
		}
		seen[string(content)] = path
	}
}

func TestRenderAllNilData(t *testing.T) {
	paths, err := RenderAll(context.Background(), nil, t.TempDir())
	require.NoError(t, err)
	assert.Len(t, paths, len(types.Templates()))
}

func TestChromePathFromEnv(t *testing.T) {
	t.Setenv("CHROME_PATH", "/usr/bin/chromium")
	e := NewPDFExporter()
	assert.Equal(t, "/usr/bin/chromium", e.chromePath)

	e = NewPDFExporter(WithChromePath("/opt/custom"))
	assert.True(t, strings.HasPrefix(e.chromePath, "/opt/"))
}
