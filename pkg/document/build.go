package document

import (
	"fmt"
	"math"
	"strings"

	"github.com/go-drift/boxlayout/pkg/errors"
	"github.com/go-drift/boxlayout/pkg/layout"
	"github.com/go-drift/boxlayout/pkg/text"
	"github.com/go-drift/boxlayout/pkg/view"
)

// BuildOptions configures Build.
type BuildOptions struct {
	// Metrics measures labels. Nil means text.Shared().
	Metrics *text.MetricsCache
}

// Build validates the document and returns its view tree.
func (d *Document) Build(opts BuildOptions) (view.Node, error) {
	if err := checkVersion(d.Version); err != nil {
		return nil, err
	}
	if d.Root == nil {
		return nil, &errors.DocumentError{Path: "document", Reason: "missing root"}
	}
	return newBuilder(opts).node(d.Root, "root")
}

type builder struct {
	opts BuildOptions
}

func newBuilder(opts BuildOptions) *builder {
	return &builder{opts: opts}
}

func (b *builder) node(n *Node, path string) (view.Node, error) {
	fail := func(field, format string, args ...any) error {
		return &errors.DocumentError{Path: path, Field: field, Reason: fmt.Sprintf(format, args...)}
	}
	if n == nil {
		return nil, fail("", "empty node")
	}

	c := layout.DefaultConstraints()
	for _, ext := range []struct {
		field string
		e     *Extent
	}{{"width", n.Width}, {"height", n.Height}} {
		for _, v := range []*float64{ext.e.minPtr(), ext.e.prefPtr(), ext.e.maxPtr()} {
			if v == nil {
				continue
			}
			if !finite(*v) {
				return nil, fail(ext.field, "must be finite, got %g", *v)
			}
			if *v < 0 {
				return nil, fail(ext.field, "must not be negative, got %g", *v)
			}
		}
	}
	c.MinWidth, c.PrefWidth, c.MaxWidth = n.Width.values()
	c.MinHeight, c.PrefHeight, c.MaxHeight = n.Height.values()

	for _, in := range []struct {
		field  string
		insets Insets
	}{{"margin", n.Margin}, {"padding", n.Padding}, {"border", n.Border}} {
		if !in.insets.finite() {
			return nil, fail(in.field, "must be finite")
		}
		if in.insets.negative() {
			return nil, fail(in.field, "must not be negative")
		}
	}
	if !finite(n.Spacing) {
		return nil, fail("spacing", "must be finite, got %g", n.Spacing)
	}
	if n.Spacing < 0 {
		return nil, fail("spacing", "must not be negative, got %g", n.Spacing)
	}
	c.Margin = n.Margin.edges()
	c.GrowWidth, c.GrowHeight = n.GrowWidth, n.GrowHeight

	var err error
	if c.LeanX, err = layout.ParseLean(n.LeanX); err != nil {
		return nil, fail("leanX", "%v", err)
	}
	if c.LeanY, err = layout.ParseLean(n.LeanY); err != nil {
		return nil, fail("leanY", "%v", err)
	}
	if c.Region, err = layout.ParseRegion(n.Region); err != nil {
		return nil, fail("region", "%v", err)
	}

	kind := strings.ToLower(strings.TrimSpace(n.Kind))
	var v view.Node
	switch kind {
	case "":
		return nil, fail("kind", "is required")
	case "label", "fixed", "empty":
		if len(n.Children) > 0 {
			return nil, fail("children", "a %s has no children", kind)
		}
		v = b.leaf(kind, n)
	default:
		if n.Text != "" {
			return nil, fail("text", "only labels have text")
		}
		g, err := b.group(kind, n, path, fail)
		if err != nil {
			return nil, err
		}
		v = g
	}

	base := v.Base()
	base.Constraints = c
	base.Hidden = n.Hidden
	base.Unmanaged = n.Unmanaged
	return v, nil
}

func (b *builder) leaf(kind string, n *Node) view.Node {
	switch kind {
	case "label":
		return view.New(n.Name, &view.Label{
			Text:    n.Text,
			Padding: n.Padding.edges(),
			Metrics: b.opts.Metrics,
		})
	case "fixed":
		_, w, _ := n.Width.values()
		_, h, _ := n.Height.values()
		return view.New(n.Name, view.Fixed{Width: max(w, 0), Height: max(h, 0)})
	default:
		return view.New(n.Name, nil)
	}
}

func (b *builder) group(kind string, n *Node, path string, fail func(string, string, ...any) error) (*view.Group, error) {
	k, err := layout.ParseKind(kind)
	if err != nil {
		return nil, fail("kind", "unknown kind %q", n.Kind)
	}
	spec := layout.Spec{
		Kind:       k,
		Padding:    n.Padding.edges(),
		Border:     n.Border.edges(),
		Spacing:    n.Spacing,
		FillWidth:  n.FillWidth,
		FillHeight: n.FillHeight,
		KeepAspect: n.KeepAspect,
		Uniform:    n.Uniform,
		Columns:    n.Columns,
	}
	if n.Align != "" {
		if spec.Align, err = layout.ParseAlignment(n.Align); err != nil {
			return nil, fail("align", "%v", err)
		}
	}
	if n.Columns < 0 {
		return nil, fail("columns", "must not be negative, got %d", n.Columns)
	}

	g := view.NewGroup(n.Name, spec)
	claimed := map[layout.Region]string{}
	managed := 0
	for i, cn := range n.Children {
		childPath := fmt.Sprintf("%s.children[%d]", path, i)
		child, err := b.node(cn, childPath)
		if err != nil {
			return nil, err
		}
		g.Add(child)

		cb := child.Base()
		if cb.Hidden || cb.Unmanaged {
			continue
		}
		managed++
		if k == layout.KindBorder {
			r := cb.Constraints.Region
			if prev, ok := claimed[r]; ok {
				return nil, fail("children", "region %s claimed by %s and %s", r, prev, childPath)
			}
			claimed[r] = childPath
		}
	}
	if (k == layout.KindBox || k == layout.KindScaleBox) && managed > 1 {
		return nil, fail("children", "a %s holds at most one child, got %d", k, managed)
	}
	return g, nil
}

func (e *Extent) minPtr() *float64 {
	if e == nil {
		return nil
	}
	return e.Min
}

func (e *Extent) prefPtr() *float64 {
	if e == nil {
		return nil
	}
	return e.Pref
}

func (e *Extent) maxPtr() *float64 {
	if e == nil {
		return nil
	}
	return e.Max
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
