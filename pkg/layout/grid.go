package layout

import (
	"log"
	"math"
	"sync"
)

var zeroCellWarning sync.Once

// gridLayout places children row-major in equal cells. Leftover space is not
// redistributed and child margins, grow flags and leans are ignored.
type gridLayout struct{}

func (gridLayout) ignoresMargins() {}

func (gridLayout) place(p *ParentProxy, width, height float64) []Placement {
	spec := p.Spec
	ins := spec.insets()
	n := len(p.Children)
	cw, ch := cellSize(p)

	cols := n
	switch {
	case width >= 0:
		step := cw + spec.Spacing
		if step > 0 {
			areaW := math.Max(width-ins.Horizontal(), 0)
			cols = int(math.Floor((areaW + spec.Spacing) / step))
		} else {
			zeroCellWarning.Do(func() {
				log.Printf("WARNING: grid %s measured zero-width cells; placing all children in one row.",
					describe(p.elem))
			})
		}
		cols = max(cols, 1)
	case spec.Columns > 0:
		cols = spec.Columns
	}

	pls := make([]Placement, n)
	for i, c := range p.Children {
		row, col := i/cols, i%cols
		f := frame{
			pos: [2]float64{
				ins.Left + float64(col)*(cw+spec.Spacing),
				ins.Top + float64(row)*(ch+spec.Spacing),
			},
			ext: [2]float64{cw, ch},
		}
		pls[i] = f.placement(c.Index)
	}
	return pls
}

// cellSize is the first child's best size when uniform, else the largest
// best size of any child on each axis.
func cellSize(p *ParentProxy) (w, h float64) {
	if p.Spec.Uniform {
		first := p.Children[0]
		w = first.best(Horizontal, Unset)
		return w, first.best(Vertical, w)
	}
	for _, c := range p.Children {
		cw := c.best(Horizontal, Unset)
		w = math.Max(w, cw)
		h = math.Max(h, c.best(Vertical, cw))
	}
	return w, h
}
