package document

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/boxlayout/pkg/graphics"
	"github.com/go-drift/boxlayout/pkg/view"
)

// Snapshot records the committed geometry of a laid out view tree. Bounds
// are relative to the parent, as committed.
type Snapshot struct {
	Name     string     `yaml:"name,omitempty"`
	Kind     string     `yaml:"kind"`
	X        float64    `yaml:"x"`
	Y        float64    `yaml:"y"`
	Width    float64    `yaml:"width"`
	Height   float64    `yaml:"height"`
	Scale    []float64  `yaml:"scale,omitempty,flow"`
	Children []Snapshot `yaml:"children,omitempty"`
}

// Capture records n and its managed descendants.
func Capture(n view.Node) Snapshot {
	b := n.Base()
	r := b.Bounds()
	s := Snapshot{
		Name:   b.Name,
		Kind:   n.Kind(),
		X:      r.Left,
		Y:      r.Top,
		Width:  r.Width(),
		Height: r.Height(),
	}
	if sx, sy := b.Scale(); sx != 1 || sy != 1 {
		s.Scale = []float64{sx, sy}
	}
	for _, c := range view.Children(n) {
		if c.Base().Hidden || c.Base().Unmanaged {
			continue
		}
		s.Children = append(s.Children, Capture(c))
	}
	return s
}

// Bounds returns the snapshot's bounds.
func (s Snapshot) Bounds() graphics.Rect {
	return graphics.RectFromLTWH(s.X, s.Y, s.Width, s.Height)
}

// WriteYAML encodes the snapshot as YAML.
func (s Snapshot) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return enc.Close()
}

// ReadSnapshot decodes a snapshot written by WriteYAML.
func ReadSnapshot(r io.Reader) (Snapshot, error) {
	var s Snapshot
	if err := yaml.NewDecoder(r).Decode(&s); err != nil {
		return Snapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}
	return s, nil
}

// WriteText prints one line per node with absolute bounds, indented by depth.
func WriteText(w io.Writer, root view.Node) error {
	var err error
	view.Walk(root, func(n view.Node, depth int, abs graphics.Rect) bool {
		if err != nil {
			return false
		}
		line := fmt.Sprintf("%s%s %s %v", strings.Repeat("  ", depth), n, n.Kind(), abs)
		if sx, sy := n.Base().Scale(); sx != 1 || sy != 1 {
			line += fmt.Sprintf(" scale=%gx%g", sx, sy)
		}
		_, err = fmt.Fprintln(w, line)
		return true
	})
	return err
}

// Diff lists the paths whose bounds differ between two snapshots.
func Diff(want, got Snapshot) []string {
	var out []string
	diff("root", want, got, &out)
	return out
}

func diff(path string, want, got Snapshot, out *[]string) {
	if want.Kind != got.Kind || want.Name != got.Name {
		*out = append(*out, fmt.Sprintf("%s: node %s %q, got %s %q", path, want.Kind, want.Name, got.Kind, got.Name))
		return
	}
	if !want.Bounds().ApproxEqual(got.Bounds()) {
		*out = append(*out, fmt.Sprintf("%s: bounds %v, got %v", path, want.Bounds(), got.Bounds()))
	}
	if len(want.Children) != len(got.Children) {
		*out = append(*out, fmt.Sprintf("%s: %d children, got %d", path, len(want.Children), len(got.Children)))
		return
	}
	for i := range want.Children {
		diff(fmt.Sprintf("%s.children[%d]", path, i), want.Children[i], got.Children[i], out)
	}
}
