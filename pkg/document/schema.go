package document

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/boxlayout/pkg/graphics"
	"github.com/go-drift/boxlayout/pkg/layout"
)

// Node is one element of a layout document.
type Node struct {
	Kind string `yaml:"kind"`
	Name string `yaml:"name,omitempty"`
	Text string `yaml:"text,omitempty"`

	Width  *Extent `yaml:"width,omitempty"`
	Height *Extent `yaml:"height,omitempty"`

	Margin  Insets  `yaml:"margin,omitempty"`
	Padding Insets  `yaml:"padding,omitempty"`
	Border  Insets  `yaml:"border,omitempty"`
	Spacing float64 `yaml:"spacing,omitempty"`

	Align  string `yaml:"align,omitempty"`
	LeanX  string `yaml:"leanX,omitempty"`
	LeanY  string `yaml:"leanY,omitempty"`
	Region string `yaml:"region,omitempty"`

	GrowWidth  bool `yaml:"growWidth,omitempty"`
	GrowHeight bool `yaml:"growHeight,omitempty"`
	FillWidth  bool `yaml:"fillWidth,omitempty"`
	FillHeight bool `yaml:"fillHeight,omitempty"`
	KeepAspect bool `yaml:"keepAspect,omitempty"`
	Uniform    bool `yaml:"uniform,omitempty"`
	Columns    int  `yaml:"columns,omitempty"`

	Hidden    bool `yaml:"hidden,omitempty"`
	Unmanaged bool `yaml:"unmanaged,omitempty"`

	Children []*Node `yaml:"children,omitempty"`
}

// Extent holds the size constraints along one axis. In YAML it is either a
// number (the preferred size) or a mapping with min, pref and max.
type Extent struct {
	Min  *float64 `yaml:"min,omitempty"`
	Pref *float64 `yaml:"pref,omitempty"`
	Max  *float64 `yaml:"max,omitempty"`
}

// UnmarshalYAML accepts a scalar or a mapping.
func (e *Extent) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		var v float64
		if err := value.Decode(&v); err != nil {
			return fmt.Errorf("line %d: extent: %w", value.Line, err)
		}
		*e = Extent{Pref: &v}
		return nil
	}
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: extent must be a number or a mapping", value.Line)
	}
	type plain Extent
	var p plain
	if err := value.Decode(&p); err != nil {
		return err
	}
	*e = Extent(p)
	return nil
}

func (e *Extent) values() (lo, pref, hi float64) {
	lo, pref, hi = layout.Unset, layout.Unset, layout.Unset
	if e == nil {
		return
	}
	if e.Min != nil {
		lo = *e.Min
	}
	if e.Pref != nil {
		pref = *e.Pref
	}
	if e.Max != nil {
		hi = *e.Max
	}
	return
}

// Insets are edge insets. In YAML they are a number for every side, a
// sequence of [all], [vertical, horizontal] or [top, right, bottom, left],
// or a mapping with top, right, bottom and left.
type Insets graphics.EdgeInsets

// UnmarshalYAML accepts the scalar, sequence and mapping forms.
func (in *Insets) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var v float64
		if err := value.Decode(&v); err != nil {
			return fmt.Errorf("line %d: insets: %w", value.Line, err)
		}
		*in = Insets(graphics.EdgeInsetsAll(v))
	case yaml.SequenceNode:
		var vs []float64
		if err := value.Decode(&vs); err != nil {
			return fmt.Errorf("line %d: insets: %w", value.Line, err)
		}
		switch len(vs) {
		case 1:
			*in = Insets(graphics.EdgeInsetsAll(vs[0]))
		case 2:
			*in = Insets(graphics.EdgeInsetsSymmetric(vs[1], vs[0]))
		case 4:
			*in = Insets{Top: vs[0], Right: vs[1], Bottom: vs[2], Left: vs[3]}
		default:
			return fmt.Errorf("line %d: insets need 1, 2 or 4 values, got %d", value.Line, len(vs))
		}
	case yaml.MappingNode:
		var m struct {
			Top    float64 `yaml:"top"`
			Right  float64 `yaml:"right"`
			Bottom float64 `yaml:"bottom"`
			Left   float64 `yaml:"left"`
		}
		if err := value.Decode(&m); err != nil {
			return err
		}
		*in = Insets{Top: m.Top, Right: m.Right, Bottom: m.Bottom, Left: m.Left}
	default:
		return fmt.Errorf("line %d: insets must be a number, sequence or mapping", value.Line)
	}
	return nil
}

// IsZero lets omitempty drop zero insets when encoding.
func (in Insets) IsZero() bool { return graphics.EdgeInsets(in).IsZero() }

func (in Insets) edges() graphics.EdgeInsets { return graphics.EdgeInsets(in) }

func (in Insets) finite() bool {
	return finite(in.Top) && finite(in.Right) && finite(in.Bottom) && finite(in.Left)
}

func (in Insets) negative() bool {
	return in.Top < 0 || in.Right < 0 || in.Bottom < 0 || in.Left < 0
}
