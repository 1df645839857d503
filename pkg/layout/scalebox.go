package layout

import (
	"log"
	"math"
	"sync"

	"github.com/go-drift/boxlayout/pkg/graphics"
)

var emptyScaleWarning sync.Once

// scaleLayout keeps its child at its natural size and scales it to fit the
// content area instead of resizing it.
type scaleLayout struct{}

func (scaleLayout) place(p *ParentProxy, width, height float64) []Placement {
	spec := p.Spec
	c := p.Children[0]
	m := c.margin()
	leadX, availX := area(spec, m, Horizontal, width)
	leadY, availY := area(spec, m, Vertical, height)

	cw := c.best(Horizontal, Unset)
	ch := c.best(Vertical, cw)
	pl := frame{pos: [2]float64{leadX, leadY}, ext: [2]float64{cw, ch}}.placement(c.Index)
	if availX < 0 || availY < 0 {
		return []Placement{pl}
	}
	if cw <= 0 || ch <= 0 {
		emptyScaleWarning.Do(func() {
			log.Printf("WARNING: scale box child %s has no natural size (%gx%g); it is left unscaled.",
				describe(c.elem), cw, ch)
		})
	}

	sx, sy := 1.0, 1.0
	if cw > 0 && (spec.FillWidth || cw > availX) {
		sx = availX / cw
	}
	if ch > 0 && (spec.FillHeight || ch > availY) {
		sy = availY / ch
	}
	if spec.KeepAspect || (spec.FillWidth && spec.FillHeight) {
		s := math.Min(sx, sy)
		sx, sy = s, s
	}

	// The scale pivots on the child's center, so the unscaled bounds are
	// offset by half the size change.
	ax := alignFactor(spec, c, Horizontal)
	ay := alignFactor(spec, c, Vertical)
	x := math.Round(leadX + (availX-cw*sx)*ax + cw/2*sx - cw/2)
	y := math.Round(leadY + (availY-ch*sy)*ay + ch/2*sy - ch/2)
	pl.Bounds = graphics.RectFromLTWH(x, y, cw, ch)
	pl.ScaleX, pl.ScaleY = sx, sy
	return []Placement{pl}
}

// pref keeps the child's aspect ratio when the other extent is known and
// either fills or is smaller than the natural one.
func (scaleLayout) pref(p *ParentProxy, axis Axis, other float64) float64 {
	if other >= 0 {
		cross := axis.Cross()
		natOther := p.dryRun(cross, Unset)
		if natOther > 0 && (p.Spec.fills(cross) || other < natOther) {
			nat := p.dryRun(axis, Unset)
			return math.Ceil(other * nat / natOther)
		}
	}
	return p.dryRun(axis, other)
}
