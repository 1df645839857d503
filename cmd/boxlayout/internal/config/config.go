// Package config loads the optional boxlayout.yaml configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/boxlayout/pkg/text"
)

const (
	// FileName is the configuration file looked up by default.
	FileName = "boxlayout.yaml"
	// EnvVar names a configuration file; --config takes precedence.
	EnvVar = "BOXLAYOUT_CONFIG"
)

// Config represents boxlayout.yaml.
type Config struct {
	Viewport ViewportConfig `yaml:"viewport"`
	Font     FontConfig     `yaml:"font"`
	Output   OutputConfig   `yaml:"output"`
	Verbose  bool           `yaml:"verbose,omitempty"`
}

// ViewportConfig is the default arrange size.
type ViewportConfig struct {
	Width  float64 `yaml:"width,omitempty"`
	Height float64 `yaml:"height,omitempty"`
}

// FontConfig selects the face labels are measured with.
type FontConfig struct {
	Face string  `yaml:"face,omitempty"`
	Size float64 `yaml:"size,omitempty"`
	DPI  float64 `yaml:"dpi,omitempty"`
}

// OutputConfig selects how arranged bounds are printed.
type OutputConfig struct {
	Format string `yaml:"format,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	// Source is the file the values came from, or empty for defaults.
	Source string

	ViewportWidth  float64
	ViewportHeight float64
	Font           text.Style
	Format         string
	Verbose        bool

	// ProjectRoot, ModulePath and ProjectName describe the enclosing Go
	// module, if any.
	ProjectRoot string
	ModulePath  string
	ProjectName string
}

// Output formats.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// LoadOptional reads the file at path if present.
func LoadOptional(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &cfg, nil
}

// Resolve finds the configuration file and resolves defaults. An explicit
// path (or one named by BOXLAYOUT_CONFIG) must exist; otherwise
// boxlayout.yaml is looked up in the working directory and then in the
// enclosing Go module's root.
func Resolve(explicit string) (*Resolved, error) {
	root, _ := FindProjectRoot()

	path := strings.TrimSpace(explicit)
	if path == "" {
		path = strings.TrimSpace(os.Getenv(EnvVar))
	}
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file: %w", err)
		}
	} else {
		path = lookup(root)
	}

	cfg := &Config{}
	if path != "" {
		var err error
		if cfg, err = LoadOptional(path); err != nil {
			return nil, err
		}
	}

	r, err := cfg.resolve()
	if err != nil {
		if path != "" {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return nil, err
	}
	r.Source = path

	if root != "" {
		r.ProjectRoot = root
		if mp, err := modulePath(root); err == nil {
			r.ModulePath = mp
			r.ProjectName = projectName(mp)
		}
	}
	return r, nil
}

func lookup(root string) string {
	if _, err := os.Stat(FileName); err == nil {
		return FileName
	}
	if root != "" {
		p := filepath.Join(root, FileName)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

func (c *Config) resolve() (*Resolved, error) {
	r := &Resolved{
		ViewportWidth:  c.Viewport.Width,
		ViewportHeight: c.Viewport.Height,
		Font: text.Style{
			Face: strings.ToLower(strings.TrimSpace(c.Font.Face)),
			Size: c.Font.Size,
			DPI:  c.Font.DPI,
		},
		Format:  strings.ToLower(strings.TrimSpace(c.Output.Format)),
		Verbose: c.Verbose,
	}
	def := text.DefaultStyle()
	if r.ViewportWidth == 0 {
		r.ViewportWidth = 800
	}
	if r.ViewportHeight == 0 {
		r.ViewportHeight = 600
	}
	if r.Font.Face == "" {
		r.Font.Face = def.Face
	}
	if r.Font.Size == 0 {
		r.Font.Size = def.Size
	}
	if r.Font.DPI == 0 {
		r.Font.DPI = def.DPI
	}
	if r.Format == "" {
		r.Format = FormatText
	}

	if r.ViewportWidth < 0 || r.ViewportHeight < 0 {
		return nil, fmt.Errorf("viewport must be positive, got %gx%g", r.ViewportWidth, r.ViewportHeight)
	}
	if r.Font.Size < 0 || r.Font.DPI < 0 {
		return nil, fmt.Errorf("font size and dpi must be positive")
	}
	switch r.Font.Face {
	case text.FaceGoRegular, text.FaceBasic:
	default:
		return nil, fmt.Errorf("unknown font face %q (want %s or %s)", r.Font.Face, text.FaceGoRegular, text.FaceBasic)
	}
	if err := ValidateFormat(r.Format); err != nil {
		return nil, err
	}
	return r, nil
}

// ValidateFormat reports whether format is a known output format.
func ValidateFormat(format string) error {
	switch format {
	case FormatText, FormatYAML:
		return nil
	default:
		return fmt.Errorf("unknown output format %q (want %s or %s)", format, FormatText, FormatYAML)
	}
}

// FindProjectRoot walks up from the current directory to find go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not in a Go module (no go.mod found)")
		}
		dir = parent
	}
}

func modulePath(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		return "", fmt.Errorf("failed to read go.mod: %w", err)
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return "", fmt.Errorf("could not determine module path from go.mod")
	}
	return path, nil
}

// projectName is the last element of the module path without its major
// version suffix.
func projectName(modulePath string) string {
	prefix, _, ok := module.SplitPathVersion(modulePath)
	if !ok {
		prefix = modulePath
	}
	if i := strings.LastIndex(prefix, "/"); i >= 0 {
		prefix = prefix[i+1:]
	}
	return prefix
}
