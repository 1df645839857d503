// Package document reads layout documents: YAML descriptions of view trees
// that can be built into [view.Node] trees, laid out and captured back into
// snapshots.
//
// A document looks like:
//
//	version: v1
//	viewport: {width: 320, height: 200}
//	root:
//	  kind: column
//	  padding: 8
//	  spacing: 4
//	  fillWidth: true
//	  children:
//	    - kind: label
//	      text: Hello
//	    - kind: fixed
//	      width: 120
//	      height: {pref: 40, min: 20}
//	      growHeight: true
package document

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/boxlayout/pkg/errors"
)

// SchemaVersion is the newest document version this package reads.
// Documents with the same major version and an older or equal version are
// accepted.
const SchemaVersion = "v1.1.0"

// Document is a parsed layout document.
type Document struct {
	Version  string    `yaml:"version"`
	Viewport *Viewport `yaml:"viewport,omitempty"`
	Root     *Node     `yaml:"root"`
}

// Viewport is the size a document asks to be arranged at.
type Viewport struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Parse decodes and validates a document. Unknown fields are rejected.
func Parse(data []byte) (*Document, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if stderrors.Is(err, io.EOF) {
			return nil, &errors.DocumentError{Path: "document", Reason: "empty document"}
		}
		return nil, fmt.Errorf("parse document: %w", err)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Load reads and parses the document at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Validate checks the version and every node without building views.
func (d *Document) Validate() error {
	if err := checkVersion(d.Version); err != nil {
		return err
	}
	if d.Viewport != nil && (d.Viewport.Width <= 0 || d.Viewport.Height <= 0) {
		return &errors.DocumentError{Path: "document", Field: "viewport",
			Reason: fmt.Sprintf("must be positive, got %gx%g", d.Viewport.Width, d.Viewport.Height)}
	}
	if d.Root == nil {
		return &errors.DocumentError{Path: "document", Reason: "missing root"}
	}
	_, err := newBuilder(BuildOptions{}).node(d.Root, "root")
	return err
}

// NormalizeVersion adds the "v" prefix semver comparisons need.
func NormalizeVersion(v string) string {
	v = strings.TrimSpace(v)
	if v != "" && !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	return v
}

func checkVersion(v string) error {
	if strings.TrimSpace(v) == "" {
		return &errors.DocumentError{Path: "document", Field: "version", Reason: "is required"}
	}
	nv := NormalizeVersion(v)
	if !semver.IsValid(nv) {
		return &errors.DocumentError{Path: "document", Field: "version",
			Reason: fmt.Sprintf("%q is not a semantic version", v)}
	}
	if semver.Major(nv) != semver.Major(SchemaVersion) {
		return &errors.DocumentError{Path: "document", Field: "version",
			Reason: fmt.Sprintf("major version %s is not supported (want %s)", semver.Major(nv), semver.Major(SchemaVersion))}
	}
	if semver.Compare(nv, SchemaVersion) > 0 {
		return &errors.DocumentError{Path: "document", Field: "version",
			Reason: fmt.Sprintf("%s is newer than the supported %s", nv, SchemaVersion)}
	}
	return nil
}
