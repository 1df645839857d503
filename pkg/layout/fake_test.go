package layout

import "github.com/go-drift/boxlayout/pkg/graphics"

// fakeLeaf is a minimal element for engine tests.
type fakeLeaf struct {
	name        string
	constraints SizeConstraints
	measure     func(axis Axis, other float64) float64

	measureCalls int
	commits      int
	bounds       graphics.Rect
	scaleX       float64
	scaleY       float64
}

func leaf(name string, w, h float64) *fakeLeaf {
	return &fakeLeaf{name: name, constraints: Fixed(w, h)}
}

func (f *fakeLeaf) String() string                   { return f.name }
func (f *fakeLeaf) SizeConstraints() SizeConstraints { return f.constraints }
func (f *fakeLeaf) LayoutChildren() []Element        { return nil }

func (f *fakeLeaf) Measure(axis Axis, other float64) float64 {
	f.measureCalls++
	if f.measure == nil {
		return 0
	}
	return f.measure(axis, other)
}

func (f *fakeLeaf) CommitBounds(r graphics.Rect) {
	f.commits++
	f.bounds = r
}

func (f *fakeLeaf) CommitScale(sx, sy float64) {
	f.scaleX, f.scaleY = sx, sy
}

// fakeBox is a container element.
type fakeBox struct {
	fakeLeaf
	spec     Spec
	children []Element
}

func box(name string, spec Spec, children ...Element) *fakeBox {
	return &fakeBox{
		fakeLeaf: fakeLeaf{name: name, constraints: DefaultConstraints()},
		spec:     spec,
		children: children,
	}
}

func (b *fakeBox) LayoutSpec() Spec          { return b.spec }
func (b *fakeBox) LayoutChildren() []Element { return b.children }

// wrapText measures like a 100 pixel wide string of 10 pixel lines.
func wrapText(axis Axis, other float64) float64 {
	if axis == Horizontal {
		return 100
	}
	if other <= 0 || other >= 100 {
		return 10
	}
	lines := int(100 / other)
	if float64(lines)*other < 100 {
		lines++
	}
	return float64(lines) * 10
}

func rect(x, y, w, h float64) graphics.Rect {
	return graphics.RectFromLTWH(x, y, w, h)
}
