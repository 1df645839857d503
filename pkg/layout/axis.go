package layout

import (
	"fmt"
	"math"
	"strings"

	"github.com/go-drift/boxlayout/pkg/graphics"
)

// Axis identifies a layout direction.
type Axis int

const (
	// Horizontal is the X axis; extents along it are widths.
	Horizontal Axis = iota
	// Vertical is the Y axis; extents along it are heights.
	Vertical
)

// String returns a human-readable representation of the axis.
func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// Cross returns the perpendicular axis.
func (a Axis) Cross() Axis {
	if a == Horizontal {
		return Vertical
	}
	return Horizontal
}

// leading returns the inset before content along the axis (left or top).
func leading(e graphics.EdgeInsets, a Axis) float64 {
	if a == Horizontal {
		return e.Left
	}
	return e.Top
}

// trailing returns the inset after content along the axis (right or bottom).
func trailing(e graphics.EdgeInsets, a Axis) float64 {
	if a == Horizontal {
		return e.Right
	}
	return e.Bottom
}

// Alignment places content that does not fill its area. Each factor is in
// [0, 1]: 0 is the start (left or top), 1 is the end.
type Alignment struct {
	X float64
	Y float64
}

var (
	AlignTopLeft      = Alignment{X: 0, Y: 0}
	AlignTopCenter    = Alignment{X: 0.5, Y: 0}
	AlignTopRight     = Alignment{X: 1, Y: 0}
	AlignCenterLeft   = Alignment{X: 0, Y: 0.5}
	AlignCenter       = Alignment{X: 0.5, Y: 0.5}
	AlignCenterRight  = Alignment{X: 1, Y: 0.5}
	AlignBottomLeft   = Alignment{X: 0, Y: 1}
	AlignBottomCenter = Alignment{X: 0.5, Y: 1}
	AlignBottomRight  = Alignment{X: 1, Y: 1}
)

var namedAlignments = map[string]Alignment{
	"top_left":      AlignTopLeft,
	"top_center":    AlignTopCenter,
	"top_right":     AlignTopRight,
	"center_left":   AlignCenterLeft,
	"center":        AlignCenter,
	"center_right":  AlignCenterRight,
	"bottom_left":   AlignBottomLeft,
	"bottom_center": AlignBottomCenter,
	"bottom_right":  AlignBottomRight,
}

// ParseAlignment resolves names like "top_left" or "center".
func ParseAlignment(name string) (Alignment, error) {
	a, ok := namedAlignments[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Alignment{}, fmt.Errorf("unknown alignment %q", name)
	}
	return a, nil
}

func (a Alignment) along(axis Axis) float64 {
	if axis == Horizontal {
		return a.X
	}
	return a.Y
}

// Lean overrides the container alignment for a single child along one axis.
// The zero value means the child has no lean.
type Lean struct {
	factor float64
	set    bool
}

// LeanTo returns a lean with the given factor, clamped to [0, 1].
func LeanTo(factor float64) Lean {
	return Lean{factor: math.Max(0, math.Min(factor, 1)), set: true}
}

var (
	// NoLean defers to the container alignment.
	NoLean = Lean{}
	// LeanStart leans to the left or top.
	LeanStart = LeanTo(0)
	// LeanCenter leans to the middle.
	LeanCenter = LeanTo(0.5)
	// LeanEnd leans to the right or bottom.
	LeanEnd = LeanTo(1)
)

// ParseLean resolves "start", "center", "end" (and their left/top,
// right/bottom synonyms). An empty name is NoLean.
func ParseLean(name string) (Lean, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "":
		return NoLean, nil
	case "start", "left", "top":
		return LeanStart, nil
	case "center", "middle":
		return LeanCenter, nil
	case "end", "right", "bottom":
		return LeanEnd, nil
	default:
		return NoLean, fmt.Errorf("unknown lean %q", name)
	}
}

// IsSet reports whether the lean overrides the container alignment.
func (l Lean) IsSet() bool { return l.set }

// Factor returns the alignment factor, or 0 when unset.
func (l Lean) Factor() float64 { return l.factor }

func (l Lean) String() string {
	if !l.set {
		return "none"
	}
	return fmt.Sprintf("%g", l.factor)
}

// Region assigns a child of a border container to one of its five areas.
type Region int

const (
	// RegionCenter is the default region and grows in both directions.
	RegionCenter Region = iota
	RegionTop
	RegionBottom
	RegionLeft
	RegionRight
)

// String returns a human-readable representation of the region.
func (r Region) String() string {
	switch r {
	case RegionCenter:
		return "center"
	case RegionTop:
		return "top"
	case RegionBottom:
		return "bottom"
	case RegionLeft:
		return "left"
	case RegionRight:
		return "right"
	default:
		return fmt.Sprintf("Region(%d)", int(r))
	}
}

// ParseRegion resolves a region name. An empty name is RegionCenter.
func ParseRegion(name string) (Region, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "center":
		return RegionCenter, nil
	case "top":
		return RegionTop, nil
	case "bottom":
		return RegionBottom, nil
	case "left":
		return RegionLeft, nil
	case "right":
		return RegionRight, nil
	default:
		return RegionCenter, fmt.Errorf("unknown region %q", name)
	}
}
