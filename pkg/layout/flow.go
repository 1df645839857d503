package layout

import "math"

// flowLayout places children one after another along axis: a column when
// axis is Vertical, a row when it is Horizontal.
type flowLayout struct {
	axis Axis
}

func (f flowLayout) place(p *ParentProxy, width, height float64) []Placement {
	main, cross := f.axis, f.axis.Cross()
	spec := p.Spec
	size := [2]float64{width, height}
	frames := make([]frame, len(p.Children))

	// A container that fills its main axis stretches its last child when
	// no child grows on its own.
	promoted := -1
	if spec.fills(main) && p.GrowCount(main) == 0 {
		promoted = len(p.Children) - 1
	}

	// Main axis: margins, padding and spacing collapse by maximum.
	cursor := leading(spec.Border, main)
	prevMargin := leading(spec.Padding, main)
	for i, c := range p.Children {
		m := c.margin()
		gap := math.Max(leading(m, main), prevMargin)
		if i > 0 {
			gap = math.Max(gap, spec.Spacing)
		}
		cursor = math.Round(cursor + gap)
		frames[i].pos[main] = cursor
		frames[i].ext[main] = c.best(main, f.crossHint(spec, c, size[cross]))
		cursor += frames[i].ext[main]
		prevMargin = trailing(m, main)
	}

	if size[main] >= 0 {
		end := cursor + math.Max(trailing(spec.Padding, main), prevMargin) + trailing(spec.Border, main)
		extra := int(math.Round(size[main] - end))
		f.distribute(p, frames, extra, promoted)
	}

	// Cross axis: each child on its own.
	for i, c := range p.Children {
		lead, avail := area(spec, c.margin(), cross, size[cross])
		frames[i].pos[cross] = lead
		switch {
		case avail < 0:
			frames[i].ext[cross] = c.best(cross, frames[i].ext[main])
		case spec.fills(cross) || c.grows(cross):
			frames[i].ext[cross] = avail
		default:
			ext := c.best(cross, frames[i].ext[main])
			if ext > avail {
				ext = avail
			} else if ext < avail {
				factor := spec.Align.along(cross)
				if l := c.lean(cross); l.IsSet() {
					factor = math.Max(factor, l.Factor())
				}
				frames[i].pos[cross] += math.Round((avail - ext) * factor)
			}
			frames[i].ext[cross] = ext
		}
	}

	pls := make([]Placement, len(frames))
	for i, fr := range frames {
		pls[i] = fr.placement(p.Children[i].Index)
	}
	return pls
}

// crossHint returns the cross extent a child is measured against along the
// main axis: the extent the cross pass will give it, or Unset.
func (f flowLayout) crossHint(spec Spec, c *Proxy, crossSize float64) float64 {
	cross := f.axis.Cross()
	_, avail := area(spec, c.margin(), cross, crossSize)
	if avail < 0 {
		return Unset
	}
	if spec.fills(cross) || c.grows(cross) {
		return avail
	}
	return math.Min(c.best(cross, Unset), avail)
}

// distribute hands extra main-axis space to growers in whole units, the
// first |extra mod n| growers getting one more unit each. Without growers,
// positive extra shifts children by alignment and negative extra overflows.
func (f flowLayout) distribute(p *ParentProxy, frames []frame, extra, promoted int) {
	if extra == 0 {
		return
	}
	main := f.axis
	grows := func(i int) bool {
		return i == promoted || p.Children[i].grows(main)
	}

	n := 0
	for i := range frames {
		if grows(i) {
			n++
		}
	}

	if n > 0 {
		each := extra / n
		rem := extra % n
		step := each + 1
		if extra < 0 {
			rem = -rem
			step = each - 1
		}
		shift, seen := 0.0, 0
		for i := range frames {
			frames[i].pos[main] += shift
			if !grows(i) {
				continue
			}
			d := each
			if seen < rem {
				d = step
			}
			seen++
			old := frames[i].ext[main]
			frames[i].ext[main] = math.Max(old+float64(d), 0)
			shift += frames[i].ext[main] - old
		}
		return
	}

	if extra < 0 {
		return
	}
	// Once a child is shifted, later children shift at least as far so
	// they never overlap it.
	factor := p.Spec.Align.along(main)
	for i, c := range p.Children {
		if l := c.lean(main); l.IsSet() {
			factor = math.Max(factor, l.Factor())
		}
		frames[i].pos[main] += math.Round(float64(extra) * factor)
	}
}
