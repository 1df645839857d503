package layout

import (
	"math"

	"github.com/go-drift/boxlayout/pkg/graphics"
)

// Unset marks a size constraint as unspecified. Unset sizes are derived from
// content (preferred), treated as zero (minimum) or as unbounded (maximum).
const Unset = -1.0

// SizeConstraints is the read-only snapshot of an element's sizing policy.
//
// The zero value pins every size to 0; start from [DefaultConstraints] and
// override the fields you need.
type SizeConstraints struct {
	MinWidth   float64
	PrefWidth  float64
	MaxWidth   float64
	MinHeight  float64
	PrefHeight float64
	MaxHeight  float64

	// Margin is the space this element asks for around itself. Margins of
	// adjacent siblings collapse by maximum.
	Margin graphics.EdgeInsets

	// GrowWidth and GrowHeight claim a share of leftover space.
	GrowWidth  bool
	GrowHeight bool

	// LeanX and LeanY override the parent's alignment for this element only.
	LeanX Lean
	LeanY Lean

	// Region places the element inside a border container.
	Region Region
}

// DefaultConstraints returns constraints with every size unset, no margin,
// no growth and no lean.
func DefaultConstraints() SizeConstraints {
	return SizeConstraints{
		MinWidth:   Unset,
		PrefWidth:  Unset,
		MaxWidth:   Unset,
		MinHeight:  Unset,
		PrefHeight: Unset,
		MaxHeight:  Unset,
	}
}

// Fixed returns default constraints with the preferred size set.
func Fixed(width, height float64) SizeConstraints {
	c := DefaultConstraints()
	c.PrefWidth = width
	c.PrefHeight = height
	return c
}

func isSet(v float64) bool { return v >= 0 }

// Min returns the effective minimum along the axis. Unset is 0.
func (c SizeConstraints) Min(axis Axis) float64 {
	v := c.MinWidth
	if axis == Vertical {
		v = c.MinHeight
	}
	if !isSet(v) {
		return 0
	}
	return v
}

// Max returns the effective maximum along the axis. Unset is +Inf.
func (c SizeConstraints) Max(axis Axis) float64 {
	v := c.MaxWidth
	if axis == Vertical {
		v = c.MaxHeight
	}
	if !isSet(v) {
		return math.Inf(1)
	}
	return v
}

// Pref returns the preferred size along the axis, or Unset.
func (c SizeConstraints) Pref(axis Axis) float64 {
	v := c.PrefWidth
	if axis == Vertical {
		v = c.PrefHeight
	}
	if !isSet(v) {
		return Unset
	}
	return v
}

// Clamp bounds v by the minimum and maximum along the axis. When the
// minimum exceeds the maximum the minimum wins.
func (c SizeConstraints) Clamp(axis Axis, v float64) float64 {
	return math.Max(c.Min(axis), math.Min(v, c.Max(axis)))
}

// Grows reports whether the element claims leftover space along the axis.
func (c SizeConstraints) Grows(axis Axis) bool {
	if axis == Horizontal {
		return c.GrowWidth
	}
	return c.GrowHeight
}

// Lean returns the alignment override along the axis.
func (c SizeConstraints) Lean(axis Axis) Lean {
	if axis == Horizontal {
		return c.LeanX
	}
	return c.LeanY
}
