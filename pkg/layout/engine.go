package layout

import "github.com/go-drift/boxlayout/pkg/graphics"

// PrefWidth returns the preferred width of e given a known height, or Unset
// when the height is unknown. No element is written to.
func PrefWidth(e Element, height float64) float64 {
	return NewProxy(e).PrefWidth(height)
}

// PrefHeight returns the preferred height of e given a known width.
func PrefHeight(e Element, width float64) float64 {
	return NewProxy(e).PrefHeight(width)
}

// BestWidth returns the preferred width of e clamped to its constraints.
func BestWidth(e Element, height float64) float64 {
	return NewProxy(e).BestWidth(height)
}

// BestHeight returns the preferred height of e clamped to its constraints.
func BestHeight(e Element, width float64) float64 {
	return NewProxy(e).BestHeight(width)
}

// Measure returns the best size of e, resolving the width first and the
// height for that width.
func Measure(e Element) graphics.Size {
	p := NewProxy(e)
	w := p.BestWidth(Unset)
	return graphics.Size{Width: w, Height: p.BestHeight(w)}
}

// Plan computes where the children of e go if e were given the size
// width x height, without committing anything. Placements are ordered by
// Index. Leaves have no placements.
func Plan(e Element, width, height float64) []Placement {
	p := NewProxy(e)
	if p.container == nil {
		return nil
	}
	return p.container.Place(width, height)
}

// Arrange commits bounds to e and lays out its subtree inside them. Every
// element reachable through LayoutChildren receives exactly one
// CommitBounds call, with bounds relative to its parent.
func Arrange(e Element, bounds graphics.Rect) {
	NewProxy(e).Arrange(bounds)
}
