package layout

import (
	"fmt"

	"github.com/go-drift/boxlayout/pkg/errors"
)

// borderLayout arranges up to five children by region: a column of
// [top, middle, bottom] where middle is a synthetic row of
// [left, center, right]. The center grows in both directions.
type borderLayout struct{}

func newBorderColumn(pp *ParentProxy) *ParentProxy {
	var slots [5]*Proxy
	for _, c := range pp.Children {
		r := c.Constraints.Region
		if r < RegionCenter || r > RegionRight {
			panic(&errors.ContractError{
				Op:      "layout.Border",
				Element: describe(pp.elem),
				Reason:  fmt.Sprintf("child %s has invalid region %s", describe(c.elem), r),
			})
		}
		if prev := slots[r]; prev != nil {
			panic(&errors.ContractError{
				Op:      "layout.Border",
				Element: describe(pp.elem),
				Reason:  fmt.Sprintf("region %s claimed by both %s and %s", r, describe(prev.elem), describe(c.elem)),
			})
		}
		slots[r] = c
	}

	if center := slots[RegionCenter]; center != nil {
		center.growWidth, center.growHeight = true, true
	}
	var row *Proxy
	if middle := present(slots[RegionLeft], slots[RegionCenter], slots[RegionRight]); len(middle) > 0 {
		row = newSynthetic(Spec{
			Kind:       KindRow,
			Spacing:    pp.Spec.Spacing,
			FillHeight: true,
		}, middle)
		row.growWidth, row.growHeight = true, true
	}

	col := newSynthetic(Spec{
		Kind:      KindColumn,
		Padding:   pp.Spec.Padding,
		Border:    pp.Spec.Border,
		Spacing:   pp.Spec.Spacing,
		Align:     pp.Spec.Align,
		FillWidth: true,
	}, present(slots[RegionTop], row, slots[RegionBottom]))
	return col.container
}

func present(ps ...*Proxy) []*Proxy {
	out := ps[:0]
	for _, p := range ps {
		if p != nil {
			out = append(out, p)
		}
	}
	return out
}

func (borderLayout) place(p *ParentProxy, width, height float64) []Placement {
	col := p.inner
	colPls := col.algo.place(col, width, height)
	out := make([]Placement, 0, len(p.Children))
	for i, pl := range colPls {
		c := col.Children[i]
		if c.Index >= 0 {
			out = append(out, pl)
			continue
		}
		// The middle row is placed at its final size as if at the origin,
		// then moved to where the column put it.
		for _, rp := range c.container.place(pl.Bounds.Width(), pl.Bounds.Height()) {
			rp.Bounds = rp.Bounds.Translate(pl.Bounds.Left, pl.Bounds.Top)
			out = append(out, rp)
		}
	}
	return out
}

func (borderLayout) pref(p *ParentProxy, axis Axis, other float64) float64 {
	return p.inner.prefExtent(axis, other)
}
