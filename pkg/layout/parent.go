package layout

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/go-drift/boxlayout/pkg/errors"
	"github.com/go-drift/boxlayout/pkg/graphics"
)

// algorithm places the children of a container inside a width and height,
// either of which may be Unset during measurement. Except for border
// layout, the result holds one placement per child in Children order.
type algorithm interface {
	place(p *ParentProxy, width, height float64) []Placement
}

// prefSizer is implemented by algorithms whose preferred size is not the
// extent of a dry run.
type prefSizer interface {
	pref(p *ParentProxy, axis Axis, other float64) float64
}

// marginless is implemented by algorithms that ignore child margins.
type marginless interface {
	ignoresMargins()
}

// ParentProxy is the proxy of a container element.
type ParentProxy struct {
	*Proxy

	// Spec is the container's layout policy.
	Spec Spec
	// Children are the proxies placed by the algorithm, in layout order.
	Children []*Proxy

	algo algorithm

	// byIndex maps LayoutChildren indices to proxies.
	byIndex []*Proxy
	// inner is the column a border container delegates to.
	inner *ParentProxy

	growCount [2]int
}

func newParentProxy(owner *Proxy, spec Spec, elems []Element, depth int) *ParentProxy {
	pp := &ParentProxy{
		Proxy:     owner,
		Spec:      spec,
		growCount: [2]int{-1, -1},
	}
	pp.byIndex = make([]*Proxy, len(elems))
	for i, e := range elems {
		if e == nil {
			panic(&errors.ContractError{
				Op:      "layout.NewProxy",
				Element: describe(owner.elem),
				Reason:  fmt.Sprintf("child %d is nil", i),
			})
		}
		pp.byIndex[i] = newProxy(e, i, depth+1)
	}
	pp.Children = pp.byIndex

	switch spec.Kind {
	case KindBox, KindScaleBox:
		if len(elems) > 1 {
			panic(&errors.ContractError{
				Op:      "layout." + spec.Kind.String(),
				Element: describe(owner.elem),
				Reason:  fmt.Sprintf("%s holds at most one child, got %d", spec.Kind, len(elems)),
			})
		}
	case KindBorder:
		pp.inner = newBorderColumn(pp)
	}
	pp.algo = algorithmFor(spec.Kind)
	return pp
}

func algorithmFor(kind Kind) algorithm {
	switch kind {
	case KindColumn:
		return flowLayout{axis: Vertical}
	case KindRow:
		return flowLayout{axis: Horizontal}
	case KindBox:
		return boxLayout{}
	case KindScaleBox:
		return scaleLayout{}
	case KindBorder:
		return borderLayout{}
	case KindStack:
		return stackLayout{}
	case KindGrid:
		return gridLayout{}
	default:
		panic(&errors.ContractError{
			Op:     "layout.NewProxy",
			Reason: fmt.Sprintf("unknown layout kind %s", kind),
		})
	}
}

// Place computes the placements of the children for the given size and
// returns them ordered by Index. Width or height may be Unset.
func (pp *ParentProxy) Place(width, height float64) []Placement {
	pls := pp.place(width, height)
	slices.SortStableFunc(pls, func(a, b Placement) int {
		return cmp.Compare(a.Index, b.Index)
	})
	return pls
}

func (pp *ParentProxy) place(width, height float64) []Placement {
	if len(pp.Children) == 0 {
		return nil
	}
	return pp.algo.place(pp, width, height)
}

// GrowCount returns the number of children that grow along the axis.
func (pp *ParentProxy) GrowCount(axis Axis) int {
	if pp.growCount[axis] < 0 {
		n := 0
		for _, c := range pp.Children {
			if c.grows(axis) {
				n++
			}
		}
		pp.growCount[axis] = n
	}
	return pp.growCount[axis]
}

// prefExtent measures the container along axis given the other extent.
// An empty container measures as its insets.
func (pp *ParentProxy) prefExtent(axis Axis, other float64) float64 {
	if len(pp.Children) == 0 {
		ins := pp.Spec.insets()
		return leading(ins, axis) + trailing(ins, axis)
	}
	if s, ok := pp.algo.(prefSizer); ok {
		return s.pref(pp, axis, other)
	}
	return pp.dryRun(axis, other)
}

// dryRun places the children with the measured axis unresolved and reads
// back the far edge of the children plus the trailing inset.
func (pp *ParentProxy) dryRun(axis Axis, other float64) float64 {
	width, height := Unset, other
	if axis == Vertical {
		width, height = other, Unset
	}
	return pp.extent(axis, pp.algo.place(pp, width, height))
}

func (pp *ParentProxy) extent(axis Axis, pls []Placement) float64 {
	_, noMargins := pp.algo.(marginless)
	pad := trailing(pp.Spec.Padding, axis)
	end := 0.0
	for i, pl := range pls {
		e := far(pl.Bounds, axis)
		if noMargins {
			e += pad
		} else {
			e += math.Max(pad, trailing(pp.Children[i].margin(), axis))
		}
		end = math.Max(end, e)
	}
	return math.Round(end + trailing(pp.Spec.Border, axis))
}

func far(r graphics.Rect, axis Axis) float64 {
	if axis == Horizontal {
		return r.Right
	}
	return r.Bottom
}

// area returns the leading offset and the available extent for a child
// along axis. Padding collapses against the child's margin; the border is
// added. The available extent is Unset when size is.
func area(spec Spec, margin graphics.EdgeInsets, axis Axis, size float64) (lead, avail float64) {
	lead = leading(spec.Border, axis) + math.Max(leading(spec.Padding, axis), leading(margin, axis))
	if size < 0 {
		return lead, Unset
	}
	trail := trailing(spec.Border, axis) + math.Max(trailing(spec.Padding, axis), trailing(margin, axis))
	return lead, math.Max(size-lead-trail, 0)
}

// frame is scratch geometry indexed by Axis.
type frame struct {
	pos [2]float64
	ext [2]float64
}

func (f frame) placement(index int) Placement {
	return Placement{
		Index:  index,
		Bounds: graphics.RectFromLTWH(f.pos[Horizontal], f.pos[Vertical], f.ext[Horizontal], f.ext[Vertical]),
		ScaleX: 1,
		ScaleY: 1,
	}
}

// alignFactor returns the child's lean when set, else the container's
// alignment along axis.
func alignFactor(spec Spec, c *Proxy, axis Axis) float64 {
	if l := c.lean(axis); l.IsSet() {
		return l.Factor()
	}
	return spec.Align.along(axis)
}
