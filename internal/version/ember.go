package version

import (
	"bytes"
	"os/exec"
	"regexp"
	"strings"
)

// emberVersionRegex matches ember-cli version output like "ember-cli: 5.12.0".
var emberVersionRegex = regexp.MustCompile(`\d+\.\d+\.\d+(?:-[a-zA-Z0-9.]+)?`)

// EmberBinaryInfo contains ember-cli binary information. The scaffolder does
// not need ember to run; this is purely diagnostic output for `version`.
type EmberBinaryInfo struct {
	// Version is the ember-cli version.
	Version string `json:"version"`

	// Path is the path to the ember binary.
	Path string `json:"path"`

	// Found indicates if the ember binary was found.
	Found bool `json:"found"`

	// Message provides additional detail when detection fails.
	Message string `json:"message,omitempty"`
}

// DetectEmberBinary finds and inspects the ember-cli installation on PATH.
func DetectEmberBinary() EmberBinaryInfo {
	path, err := exec.LookPath("ember")
	if err != nil {
		return EmberBinaryInfo{
			Found:   false,
			Message: "ember binary not found in PATH",
		}
	}

	version, err := getEmberVersion(path)
	if err != nil {
		return EmberBinaryInfo{
			Path:    path,
			Found:   true,
			Message: "failed to get ember version: " + err.Error(),
		}
	}

	return EmberBinaryInfo{
		Version: version,
		Path:    path,
		Found:   true,
	}
}

// getEmberVersion executes 'ember version' and extracts the version string.
func getEmberVersion(emberPath string) (string, error) {
	cmd := exec.Command(emberPath, "version")
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	if err := cmd.Run(); err != nil {
		return "", err
	}

	return extractVersion(out.String())
}

// extractVersion extracts the ember-cli version from version output.
//
// Output format:
//
//	ember-cli: 5.12.0
//	node: 20.11.0
//	os: linux x64
func extractVersion(output string) (string, error) {
	for _, line := range strings.Split(output, "\n") {
		if !strings.HasPrefix(strings.TrimSpace(line), "ember-cli:") {
			continue
		}
		if match := emberVersionRegex.FindString(line); match != "" {
			return match, nil
		}
	}

	// Fall back to the first version-shaped token anywhere in the output.
	if match := emberVersionRegex.FindString(output); match != "" {
		return match, nil
	}

	return "", &versionParseError{output: output}
}

// String returns a human-readable ember binary info string.
func (e EmberBinaryInfo) String() string {
	if !e.Found {
		return "  Binary Version: not found\n  Binary Path:    -"
	}

	if e.Version == "" {
		return "  Binary Version: unknown (" + e.Message + ")\n  Binary Path:    " + e.Path
	}

	return "  Binary Version: " + e.Version + "\n  Binary Path:    " + e.Path
}

// versionParseError indicates failure to parse ember version output.
type versionParseError struct {
	output string
}

func (e *versionParseError) Error() string {
	return "failed to parse ember version from output: " + e.output
}
