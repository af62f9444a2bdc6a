package project

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/addondocs/cli/internal/output"
)

// ErrMalformedManifest indicates the manifest exists but is not valid JSON.
// This is the one unrecoverable input error: the run aborts before any file
// is written.
var ErrMalformedManifest = errors.New("malformed manifest")

// Manifest is the addon metadata read from package.json. Immutable after
// load; zero values mean the field was absent.
type Manifest struct {
	// Name is the addon package name.
	Name string `json:"name"`

	// Repository is the addon repository reference.
	Repository Repository `json:"repository"`
}

// Repository models the package.json "repository" field, which is either a
// bare URL string or an object of the form {"type": "git", "url": "..."}.
type Repository struct {
	URL string
}

// UnmarshalJSON accepts both the string and the object form.
func (r *Repository) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		r.URL = s
		return nil
	}

	var obj struct {
		URL string `json:"url"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("repository must be a string or an object with a url field: %w", err)
	}
	r.URL = obj.URL
	return nil
}

// MarshalJSON writes the string form.
func (r Repository) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.URL)
}

// LoadManifest reads the addon manifest at path.
//
// An absent file is expected (warn, return an empty manifest). A present but
// malformed file is fatal: the error propagates and no emitter may run.
func LoadManifest(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		output.Warn("addon manifest not found, continuing without metadata", "path", path)
		return Manifest{}, nil
	}
	if err != nil {
		return Manifest{}, fmt.Errorf("reading manifest %s: %w", path, err)
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("parsing manifest %s: %w: %w", path, ErrMalformedManifest, err)
	}

	return m, nil
}
