package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/addondocs/cli/internal/output"
	"github.com/addondocs/cli/internal/project"
)

// Options configures a scaffold run.
type Options struct {
	// BaseDir is the consumer application directory. The addon root is
	// derived from it (sibling "addon" directory).
	BaseDir string

	// DryRun resolves paths and renders content but writes nothing.
	DryRun bool
}

// Result reports what a run did. Paths are relative to the consumer root.
type Result struct {
	// Written lists the files that were written (or would be, in dry-run).
	Written []string

	// Skipped lists the targets that were skipped with a warning.
	Skipped []string

	// Paths are the resolved roots used by the run.
	Paths project.Paths
}

// Scaffolder executes the fixed emitter sequence against one directory tree.
type Scaffolder struct {
	opts     Options
	paths    project.Paths
	manifest project.Manifest
}

// New creates a scaffolder for the given options.
func New(opts Options) *Scaffolder {
	return &Scaffolder{
		opts:  opts,
		paths: project.ResolvePaths(opts.BaseDir),
	}
}

// Run loads the manifest and executes every emitter in sequence.
//
// The manifest is loaded before any emitter so a malformed manifest aborts
// the run with nothing written. Emitters are order-insensitive and
// independent; the sequence below is cosmetic. There is no rollback: on an
// emitter failure, files already written stay on disk.
func (s *Scaffolder) Run() (*Result, error) {
	manifest, err := project.LoadManifest(s.paths.ManifestPath())
	if err != nil {
		return nil, err
	}
	s.manifest = manifest

	res := &Result{Paths: s.paths}

	emitters := []struct {
		name string
		emit func(*Result) error
	}{
		{"router", s.emitRouter},
		{"application template", s.emitApplicationTemplate},
		{"docs index", s.emitDocsIndex},
		{"index layout", s.emitIndexLayout},
		{"docs layout", s.emitDocsLayout},
	}

	for _, e := range emitters {
		if err := e.emit(res); err != nil {
			return nil, fmt.Errorf("emitting %s: %w", e.name, err)
		}
	}

	return res, nil
}

// emitRouter overwrites app/router.js with the documentation-aware router.
//
// The only conditional emitter: if the consumer has no router.js the
// scaffolder has nothing to hook into, so it warns and skips rather than
// planting a router in a tree that is not an app.
func (s *Scaffolder) emitRouter(res *Result) error {
	target := filepath.Join(s.paths.AppDir(), "router.js")

	if _, err := os.Stat(target); os.IsNotExist(err) {
		output.Warn("router not found, skipping", "path", target)
		res.Skipped = append(res.Skipped, s.rel(target))
		return nil
	} else if err != nil {
		return fmt.Errorf("checking %s: %w", target, err)
	}

	content, err := blueprintFile(blueprintRouter)
	if err != nil {
		return err
	}

	return s.write(res, target, content)
}

// emitApplicationTemplate writes app/templates/application.hbs with the
// addon name and repository URL substituted verbatim.
func (s *Scaffolder) emitApplicationTemplate(res *Result) error {
	data := TemplateData{
		Name:          orUndefined(s.manifest.Name),
		RepositoryURL: orUndefined(s.manifest.Repository.URL),
	}

	content, err := renderApplication(data)
	if err != nil {
		return err
	}

	target := filepath.Join(s.paths.TemplatesDir(), "application.hbs")
	return s.write(res, target, content)
}

// emitDocsIndex copies the addon README byte-for-byte to
// app/templates/docs/index.md, or writes a fixed placeholder when the addon
// has no README.
func (s *Scaffolder) emitDocsIndex(res *Result) error {
	content, err := os.ReadFile(s.paths.ReadmePath())
	if os.IsNotExist(err) {
		output.Warn("addon README not found, writing placeholder docs index", "path", s.paths.ReadmePath())
		content, err = blueprintFile(blueprintDocsIndex)
	}
	if err != nil {
		return err
	}

	target := filepath.Join(s.paths.DocsDir(), "index.md")
	return s.write(res, target, content)
}

// emitIndexLayout writes the fixed app/templates/index.hbs layout.
func (s *Scaffolder) emitIndexLayout(res *Result) error {
	content, err := blueprintFile(blueprintIndexLayout)
	if err != nil {
		return err
	}

	target := filepath.Join(s.paths.TemplatesDir(), "index.hbs")
	return s.write(res, target, content)
}

// emitDocsLayout writes the fixed app/templates/docs.hbs layout.
func (s *Scaffolder) emitDocsLayout(res *Result) error {
	content, err := blueprintFile(blueprintDocsLayout)
	if err != nil {
		return err
	}

	target := filepath.Join(s.paths.TemplatesDir(), "docs.hbs")
	return s.write(res, target, content)
}

// write ensures the parent directory exists, then writes content to target,
// overwriting any existing file. In dry-run mode nothing touches the disk.
func (s *Scaffolder) write(res *Result, target string, content []byte) error {
	relPath := s.rel(target)

	if s.opts.DryRun {
		output.Info("would write", "path", relPath)
		res.Written = append(res.Written, relPath)
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", filepath.Dir(target), err)
	}

	if err := os.WriteFile(target, content, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", target, err)
	}

	output.Debug("wrote file", "path", relPath)
	res.Written = append(res.Written, relPath)
	return nil
}

// rel reports target relative to the consumer root for display; falls back
// to the absolute path when the roots do not share a prefix.
func (s *Scaffolder) rel(target string) string {
	rel, err := filepath.Rel(s.paths.ConsumerRoot, target)
	if err != nil {
		return target
	}
	return filepath.ToSlash(rel)
}
