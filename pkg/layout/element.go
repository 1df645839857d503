package layout

import (
	"fmt"
	"strings"

	"github.com/go-drift/boxlayout/pkg/graphics"
)

// Element is the collaborator contract between the engine and an element
// tree. The engine reads constraints, children and measurements, and writes
// bounds only through CommitBounds while arranging.
type Element interface {
	// SizeConstraints returns a snapshot of the element's sizing policy.
	SizeConstraints() SizeConstraints

	// LayoutChildren returns the children that participate in layout, in
	// layout order. Hidden or unmanaged children are filtered out by the
	// element. Leaves return nil.
	LayoutChildren() []Element

	// Measure returns the content extent along axis given the known extent
	// along the other axis (Unset when unknown). It must be free of side
	// effects and return the same result for the same arguments.
	// Containers are measured by the engine and never have Measure called.
	Measure(axis Axis, other float64) float64

	// CommitBounds stores the final bounds, relative to the parent's origin.
	// It is called exactly once per element for each Arrange.
	CommitBounds(bounds graphics.Rect)
}

// Container is an element whose children are placed by the engine.
type Container interface {
	Element
	LayoutSpec() Spec
}

// Scalable receives the scale factors computed by a scale box for its child.
// Children of other containers receive 1, 1.
type Scalable interface {
	CommitScale(sx, sy float64)
}

// Kind selects the placement algorithm of a container.
type Kind int

const (
	KindColumn Kind = iota
	KindRow
	KindBox
	KindScaleBox
	KindBorder
	KindStack
	KindGrid
)

var kindNames = [...]string{
	KindColumn:   "column",
	KindRow:      "row",
	KindBox:      "box",
	KindScaleBox: "scalebox",
	KindBorder:   "border",
	KindStack:    "stack",
	KindGrid:     "grid",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind resolves a kind name such as "column" or "scalebox".
func ParseKind(name string) (Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("unknown layout kind %q", name)
}

// Spec is a container's layout policy.
type Spec struct {
	Kind Kind

	// Padding is collapsed against child margins; Border is added on top.
	Padding graphics.EdgeInsets
	Border  graphics.EdgeInsets

	// Spacing is the minimum gap between adjacent children.
	Spacing float64

	// Align positions children that do not fill the available space.
	Align Alignment

	// FillWidth and FillHeight make children take the full cross-axis
	// extent. Along the main axis of a row (width) or column (height) they
	// promote the last child to a grower when no child grows.
	FillWidth  bool
	FillHeight bool

	// KeepAspect makes a scale box use one scale factor for both axes.
	KeepAspect bool

	// Uniform sizes every grid cell like the first child.
	Uniform bool

	// Columns is the grid column count used while the width is unknown.
	Columns int
}

func (s Spec) fills(axis Axis) bool {
	if axis == Horizontal {
		return s.FillWidth
	}
	return s.FillHeight
}

// insets returns border plus padding, the space an empty container occupies.
func (s Spec) insets() graphics.EdgeInsets {
	return s.Border.Add(s.Padding)
}

// Placement is the computed geometry of one child.
type Placement struct {
	// Index is the child's position in the parent's LayoutChildren.
	Index int
	// Bounds are relative to the parent's origin.
	Bounds graphics.Rect
	// ScaleX and ScaleY are 1 except under a scale box.
	ScaleX float64
	ScaleY float64
}

func describe(e Element) string {
	if e == nil {
		return "<synthetic>"
	}
	if s, ok := e.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", e)
}
