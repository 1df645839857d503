package layout

import "math"

// boxLayout places a single child inside the content area, stretched when
// it fills or grows and aligned otherwise.
type boxLayout struct{}

func (boxLayout) place(p *ParentProxy, width, height float64) []Placement {
	c := p.Children[0]
	return []Placement{boxFrame(p.Spec, c, width, height).placement(c.Index)}
}

// stackLayout overlaps its children, each placed as the child of a box.
type stackLayout struct{}

func (stackLayout) place(p *ParentProxy, width, height float64) []Placement {
	pls := make([]Placement, len(p.Children))
	for i, c := range p.Children {
		pls[i] = boxFrame(p.Spec, c, width, height).placement(c.Index)
	}
	return pls
}

// boxFrame resolves the width first, since heights commonly depend on it.
func boxFrame(spec Spec, c *Proxy, width, height float64) frame {
	m := c.margin()
	leadX, availX := area(spec, m, Horizontal, width)
	leadY, availY := area(spec, m, Vertical, height)

	heightHint := Unset
	if availY >= 0 && (spec.FillHeight || c.grows(Vertical)) {
		heightHint = availY
	}

	var f frame
	f.pos[Horizontal], f.ext[Horizontal] = boxFit(spec, c, Horizontal, leadX, availX, heightHint)
	f.pos[Vertical], f.ext[Vertical] = boxFit(spec, c, Vertical, leadY, availY, f.ext[Horizontal])
	return f
}

func boxFit(spec Spec, c *Proxy, axis Axis, lead, avail, other float64) (pos, ext float64) {
	if avail < 0 {
		return lead, c.best(axis, other)
	}
	if spec.fills(axis) || c.grows(axis) {
		return lead, avail
	}
	ext = c.best(axis, other)
	if ext >= avail {
		return lead, avail
	}
	return lead + math.Round((avail-ext)*alignFactor(spec, c, axis)), ext
}
