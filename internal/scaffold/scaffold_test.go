package scaffold

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/addondocs/cli/internal/output"
	"github.com/addondocs/cli/internal/project"
)

// fixture builds the fixed directory layout the scaffolder expects:
// <root>/addon (manifest, README) next to <root>/dummy (consumer app).
type fixture struct {
	t        *testing.T
	addonDir string
	baseDir  string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	root := t.TempDir()
	f := &fixture{
		t:        t,
		addonDir: filepath.Join(root, "addon"),
		baseDir:  filepath.Join(root, "dummy"),
	}
	require.NoError(t, os.MkdirAll(f.addonDir, 0o755))
	require.NoError(t, os.MkdirAll(f.baseDir, 0o755))
	return f
}

func (f *fixture) writeManifest(content string) {
	f.t.Helper()
	require.NoError(f.t, os.WriteFile(filepath.Join(f.addonDir, "package.json"), []byte(content), 0o644))
}

func (f *fixture) writeReadme(content string) {
	f.t.Helper()
	require.NoError(f.t, os.WriteFile(filepath.Join(f.addonDir, "README.md"), []byte(content), 0o644))
}

func (f *fixture) writeRouter(content string) {
	f.t.Helper()
	appDir := filepath.Join(f.baseDir, "app")
	require.NoError(f.t, os.MkdirAll(appDir, 0o755))
	require.NoError(f.t, os.WriteFile(filepath.Join(appDir, "router.js"), []byte(content), 0o644))
}

func (f *fixture) read(rel string) string {
	f.t.Helper()
	data, err := os.ReadFile(filepath.Join(f.baseDir, filepath.FromSlash(rel)))
	require.NoError(f.t, err)
	return string(data)
}

func (f *fixture) run() (*Result, error) {
	return New(Options{BaseDir: f.baseDir}).Run()
}

func TestRunWithFullManifest(t *testing.T) {
	f := newFixture(t)
	f.writeManifest(`{"name": "Foo", "repository": "https://x"}`)

	res, err := f.run()
	require.NoError(t, err)

	app := f.read("app/templates/application.hbs")
	assert.Contains(t, app, `@name="Foo"`)
	assert.Contains(t, app, `@githubUrl="https://x"`)
	assert.NotContains(t, app, "[[")
	assert.NotContains(t, app, "]]")
	// Handlebars expressions pass through untouched.
	assert.Contains(t, app, "{{outlet}}")

	assert.Contains(t, res.Written, "app/templates/application.hbs")
	assert.Contains(t, res.Written, "app/templates/index.hbs")
	assert.Contains(t, res.Written, "app/templates/docs.hbs")
	assert.Contains(t, res.Written, "app/templates/docs/index.md")
}

func TestRunMissingRepositoryRendersUndefined(t *testing.T) {
	f := newFixture(t)
	f.writeManifest(`{"name": "Foo"}`)

	_, err := f.run()
	require.NoError(t, err)

	app := f.read("app/templates/application.hbs")
	assert.Contains(t, app, `@name="Foo"`)
	assert.Contains(t, app, `@githubUrl="undefined"`)
}

func TestRunMissingManifestRendersUndefined(t *testing.T) {
	f := newFixture(t)

	res, err := f.run()
	require.NoError(t, err)

	app := f.read("app/templates/application.hbs")
	assert.Contains(t, app, `@name="undefined"`)
	assert.Contains(t, app, `@githubUrl="undefined"`)
	assert.NotEmpty(t, res.Written)
}

func TestRunCopiesReadmeByteForByte(t *testing.T) {
	f := newFixture(t)
	readme := "# My Addon\n\nSome *markdown* with\twhitespace\nand unicode: ✔\n"
	f.writeReadme(readme)

	_, err := f.run()
	require.NoError(t, err)

	assert.Equal(t, readme, f.read("app/templates/docs/index.md"))
}

func TestRunWritesPlaceholderWithoutReadme(t *testing.T) {
	f := newFixture(t)

	_, err := f.run()
	require.NoError(t, err)

	placeholder, err := blueprintFile(blueprintDocsIndex)
	require.NoError(t, err)
	assert.Equal(t, string(placeholder), f.read("app/templates/docs/index.md"))
}

func TestRunSkipsAbsentRouter(t *testing.T) {
	f := newFixture(t)

	var logBuf bytes.Buffer
	output.SetLogOutput(&logBuf)
	defer output.SetLogOutput(os.Stderr)

	res, err := f.run()
	require.NoError(t, err)

	assert.NoFileExists(t, filepath.Join(f.baseDir, "app", "router.js"))
	assert.Contains(t, res.Skipped, "app/router.js")
	assert.NotContains(t, res.Written, "app/router.js")
	assert.Contains(t, logBuf.String(), "router not found")
}

func TestRunOverwritesExistingRouter(t *testing.T) {
	f := newFixture(t)
	f.writeRouter("// previous router content, arbitrary\n")

	res, err := f.run()
	require.NoError(t, err)

	want, err := blueprintFile(blueprintRouter)
	require.NoError(t, err)
	assert.Equal(t, string(want), f.read("app/router.js"))
	assert.Contains(t, res.Written, "app/router.js")
	assert.Empty(t, res.Skipped)
}

func TestRunIsIdempotent(t *testing.T) {
	f := newFixture(t)
	f.writeManifest(`{"name": "Foo", "repository": "https://x"}`)
	f.writeReadme("# Docs\n")
	f.writeRouter("// seed\n")

	_, err := f.run()
	require.NoError(t, err)

	targets := []string{
		"app/router.js",
		"app/templates/application.hbs",
		"app/templates/docs/index.md",
		"app/templates/index.hbs",
		"app/templates/docs.hbs",
	}

	first := make(map[string]string, len(targets))
	for _, target := range targets {
		first[target] = f.read(target)
	}

	_, err = f.run()
	require.NoError(t, err)

	for _, target := range targets {
		assert.Equal(t, first[target], f.read(target), "second run changed %s", target)
	}
}

func TestRunMalformedManifestWritesNothing(t *testing.T) {
	f := newFixture(t)
	f.writeManifest(`{"name": "Foo"`)
	f.writeRouter("// seed\n")

	_, err := f.run()
	require.Error(t, err)
	assert.ErrorIs(t, err, project.ErrMalformedManifest)

	// The manifest is loaded before any emitter runs.
	assert.Equal(t, "// seed\n", f.read("app/router.js"))
	assert.NoFileExists(t, filepath.Join(f.baseDir, "app", "templates", "application.hbs"))
	assert.NoDirExists(t, filepath.Join(f.baseDir, "app", "templates"))
}

func TestRunDryRunWritesNothing(t *testing.T) {
	f := newFixture(t)
	f.writeManifest(`{"name": "Foo", "repository": "https://x"}`)
	f.writeRouter("// seed\n")

	res, err := New(Options{BaseDir: f.baseDir, DryRun: true}).Run()
	require.NoError(t, err)

	assert.Equal(t, "// seed\n", f.read("app/router.js"))
	assert.NoDirExists(t, filepath.Join(f.baseDir, "app", "templates"))
	assert.Len(t, res.Written, 5)
}

func TestRunCreatesParentDirectories(t *testing.T) {
	f := newFixture(t)

	_, err := f.run()
	require.NoError(t, err)

	assert.DirExists(t, filepath.Join(f.baseDir, "app", "templates", "docs"))
}
