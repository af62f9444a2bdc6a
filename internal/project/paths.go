// Package project resolves the addon/consumer directory layout and loads the
// addon manifest.
package project

import "path/filepath"

// Paths contains the two roots every emitter works against.
type Paths struct {
	// AddonRoot is the directory containing the addon package being
	// documented (its package.json and README.md).
	AddonRoot string

	// ConsumerRoot is the directory of the test application that hosts the
	// generated documentation site. All files are emitted under it.
	ConsumerRoot string
}

// ResolvePaths derives both roots from one base working directory.
//
// The addon root is the sibling "addon" directory of the base (parent of base,
// joined with "addon"); the consumer root is the base itself. Pure path
// arithmetic: neither directory is checked for existence — emitters handle
// absence per file.
func ResolvePaths(baseDir string) Paths {
	return Paths{
		AddonRoot:    filepath.Join(filepath.Dir(baseDir), "addon"),
		ConsumerRoot: baseDir,
	}
}

// AppDir returns the consumer app directory (app/).
func (p Paths) AppDir() string {
	return filepath.Join(p.ConsumerRoot, "app")
}

// TemplatesDir returns the consumer templates directory (app/templates/).
func (p Paths) TemplatesDir() string {
	return filepath.Join(p.ConsumerRoot, "app", "templates")
}

// DocsDir returns the consumer docs templates directory (app/templates/docs/).
func (p Paths) DocsDir() string {
	return filepath.Join(p.ConsumerRoot, "app", "templates", "docs")
}

// ManifestPath returns the path of the addon manifest (package.json).
func (p Paths) ManifestPath() string {
	return filepath.Join(p.AddonRoot, "package.json")
}

// ReadmePath returns the path of the addon README.
func (p Paths) ReadmePath() string {
	return filepath.Join(p.AddonRoot, "README.md")
}
