package layout

import (
	"fmt"

	"github.com/go-drift/boxlayout/pkg/errors"
	"github.com/go-drift/boxlayout/pkg/graphics"
)

// MaxDepth bounds the depth of an element tree. Deeper trees are treated as
// cyclic and rejected with a contract violation.
const MaxDepth = 512

// Proxy stands in for one element during a single layout call.
//
// A proxy tree mirrors the element subtree it was built from and memoizes
// best sizes for the lifetime of the call. It never writes to the element
// except through [Proxy.Arrange]. Build a new tree for every call: a proxy
// does not observe later changes to its element.
type Proxy struct {
	// Index is the element's position in its parent's LayoutChildren, or -1
	// for the root and for synthetic proxies.
	Index int
	// Constraints is the snapshot taken when the proxy was built.
	Constraints SizeConstraints

	elem Element

	// Effective grow flags. Border layout forces its center to grow.
	growWidth  bool
	growHeight bool

	container *ParentProxy

	bestWidths  map[float64]float64
	bestHeights map[float64]float64
}

// NewProxy builds the proxy tree for e and its managed descendants.
// It panics with a *errors.ContractError if the tree is deeper than MaxDepth
// or a container breaks its child contract.
func NewProxy(e Element) *Proxy {
	return newProxy(e, -1, 0)
}

func newProxy(e Element, index, depth int) *Proxy {
	if depth > MaxDepth {
		panic(&errors.ContractError{
			Op:      "layout.NewProxy",
			Element: describe(e),
			Reason:  fmt.Sprintf("tree deeper than %d levels, children are probably cyclic", MaxDepth),
		})
	}
	c := e.SizeConstraints()
	p := &Proxy{
		Index:       index,
		Constraints: c,
		elem:        e,
		growWidth:   c.GrowWidth,
		growHeight:  c.GrowHeight,
	}
	if ct, ok := e.(Container); ok {
		p.container = newParentProxy(p, ct.LayoutSpec(), ct.LayoutChildren(), depth)
	}
	return p
}

// newSynthetic returns a container proxy with no backing element.
func newSynthetic(spec Spec, children []*Proxy) *Proxy {
	p := &Proxy{Index: -1, Constraints: DefaultConstraints()}
	p.container = &ParentProxy{
		Proxy:     p,
		Spec:      spec,
		Children:  children,
		algo:      algorithmFor(spec.Kind),
		growCount: [2]int{-1, -1},
	}
	return p
}

// Element returns the proxied element, or nil for a synthetic proxy.
func (p *Proxy) Element() Element { return p.elem }

// Container returns the parent proxy when the element is a container.
func (p *Proxy) Container() *ParentProxy { return p.container }

func (p *Proxy) margin() graphics.EdgeInsets { return p.Constraints.Margin }

func (p *Proxy) lean(axis Axis) Lean { return p.Constraints.Lean(axis) }

func (p *Proxy) grows(axis Axis) bool {
	if axis == Horizontal {
		return p.growWidth
	}
	return p.growHeight
}

// PrefWidth returns the preferred width given a known height (Unset when
// unknown). A preferred width in the constraints wins over content.
func (p *Proxy) PrefWidth(height float64) float64 {
	return p.pref(Horizontal, height)
}

// PrefHeight returns the preferred height given a known width.
func (p *Proxy) PrefHeight(width float64) float64 {
	return p.pref(Vertical, width)
}

// BestWidth returns PrefWidth clamped to the width constraints.
func (p *Proxy) BestWidth(height float64) float64 {
	return p.best(Horizontal, height)
}

// BestHeight returns PrefHeight clamped to the height constraints.
func (p *Proxy) BestHeight(width float64) float64 {
	return p.best(Vertical, width)
}

func (p *Proxy) pref(axis Axis, other float64) float64 {
	if v := p.Constraints.Pref(axis); isSet(v) {
		return v
	}
	if other < 0 {
		other = Unset
	}
	var v float64
	switch {
	case p.container != nil:
		v = p.container.prefExtent(axis, other)
	case p.elem != nil:
		v = p.elem.Measure(axis, other)
	}
	if !(v > 0) {
		return 0
	}
	return v
}

func (p *Proxy) best(axis Axis, other float64) float64 {
	if other < 0 {
		other = Unset
	}
	memo := &p.bestWidths
	if axis == Vertical {
		memo = &p.bestHeights
	}
	if v, ok := (*memo)[other]; ok {
		return v
	}
	v := p.Constraints.Clamp(axis, p.pref(axis, other))
	if *memo == nil {
		*memo = make(map[float64]float64)
	}
	(*memo)[other] = v
	return v
}

// Arrange commits bounds to the element, places its children inside them
// and recurses, so every element in the tree is committed exactly once.
func (p *Proxy) Arrange(bounds graphics.Rect) {
	if p.elem != nil {
		p.elem.CommitBounds(bounds)
	}
	if p.container == nil {
		return
	}
	for _, pl := range p.container.place(bounds.Width(), bounds.Height()) {
		child := p.container.byIndex[pl.Index]
		if s, ok := child.elem.(Scalable); ok {
			s.CommitScale(pl.ScaleX, pl.ScaleY)
		}
		child.Arrange(pl.Bounds)
	}
}
