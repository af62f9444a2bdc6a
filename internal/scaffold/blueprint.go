// Package scaffold writes the documentation tooling files into a consumer
// application tree.
package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"
)

//go:embed blueprint/*
var blueprintFS embed.FS

// Blueprint file names within the embedded filesystem.
const (
	blueprintRouter      = "blueprint/router.js"
	blueprintApplication = "blueprint/application.hbs.tmpl"
	blueprintIndexLayout = "blueprint/index.hbs"
	blueprintDocsLayout  = "blueprint/docs.hbs"
	blueprintDocsIndex   = "blueprint/index.md"
)

// TemplateData holds the values substituted into the application template.
// Both fields are rendered verbatim, without escaping or validation.
type TemplateData struct {
	// Name is the addon package name.
	Name string

	// RepositoryURL is the addon repository URL.
	RepositoryURL string
}

// undefinedToken is rendered for manifest fields that were absent. This
// mirrors the historical behavior of the scaffolder and is relied on by
// consumers that grep for it; missing metadata degrades output rather than
// failing the run.
const undefinedToken = "undefined"

// orUndefined substitutes the undefined token for empty values.
func orUndefined(s string) string {
	if s == "" {
		return undefinedToken
	}
	return s
}

// blueprintFile returns the raw content of an embedded blueprint file.
func blueprintFile(name string) ([]byte, error) {
	data, err := blueprintFS.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("reading blueprint %s: %w", name, err)
	}
	return data, nil
}

// renderApplication renders the application template with the given data.
//
// The template uses [[ ]] delimiters so that literal Handlebars expressions
// ({{outlet}} and friends) pass through untouched.
func renderApplication(data TemplateData) ([]byte, error) {
	raw, err := blueprintFile(blueprintApplication)
	if err != nil {
		return nil, err
	}

	tmpl, err := template.New("application.hbs").Delims("[[", "]]").Parse(string(raw))
	if err != nil {
		return nil, fmt.Errorf("parsing application template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing application template: %w", err)
	}

	return buf.Bytes(), nil
}
