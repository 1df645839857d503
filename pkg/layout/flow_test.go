package layout

import (
	"testing"

	"github.com/go-drift/boxlayout/pkg/graphics"
)

func TestColumn_GrowerTakesExtra(t *testing.T) {
	a := leaf("a", 40, 50)
	b := leaf("b", 40, 50)
	b.constraints.GrowHeight = true
	col := box("col", Spec{Kind: KindColumn}, a, b)

	Arrange(col, rect(0, 0, 100, 200))

	if want := rect(0, 0, 40, 50); !a.bounds.ApproxEqual(want) {
		t.Errorf("a = %v, want %v", a.bounds, want)
	}
	if want := rect(0, 50, 40, 150); !b.bounds.ApproxEqual(want) {
		t.Errorf("b = %v, want %v", b.bounds, want)
	}
}

func TestColumn_GrowerRemainder(t *testing.T) {
	tests := []struct {
		name    string
		height  float64
		heights []float64
	}{
		{"positive", 107, []float64{36, 36, 35}},
		{"negative", 20, []float64{6, 7, 7}},
		{"exact", 30, []float64{10, 10, 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var kids []Element
			var leaves []*fakeLeaf
			for i := 0; i < 3; i++ {
				l := leaf("g", 10, 10)
				l.constraints.GrowHeight = true
				kids = append(kids, l)
				leaves = append(leaves, l)
			}
			Arrange(box("col", Spec{Kind: KindColumn}, kids...), rect(0, 0, 10, tt.height))

			y := 0.0
			for i, l := range leaves {
				if l.bounds.Height() != tt.heights[i] {
					t.Errorf("child %d height = %g, want %g", i, l.bounds.Height(), tt.heights[i])
				}
				if l.bounds.Top != y {
					t.Errorf("child %d y = %g, want %g", i, l.bounds.Top, y)
				}
				y = l.bounds.Bottom
			}
			if y != tt.height {
				t.Errorf("children end at %g, want %g", y, tt.height)
			}
		})
	}
}

func TestRow_GrowerRemainder(t *testing.T) {
	tests := []struct {
		name   string
		width  float64
		widths []float64
	}{
		{"positive", 107, []float64{36, 36, 35}},
		{"negative", 20, []float64{6, 7, 7}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var kids []Element
			var leaves []*fakeLeaf
			for i := 0; i < 3; i++ {
				l := leaf("g", 10, 10)
				l.constraints.GrowWidth = true
				kids = append(kids, l)
				leaves = append(leaves, l)
			}
			Arrange(box("row", Spec{Kind: KindRow}, kids...), rect(0, 0, tt.width, 10))

			x := 0.0
			for i, l := range leaves {
				if l.bounds.Width() != tt.widths[i] {
					t.Errorf("child %d width = %g, want %g", i, l.bounds.Width(), tt.widths[i])
				}
				if l.bounds.Left != x {
					t.Errorf("child %d x = %g, want %g", i, l.bounds.Left, x)
				}
				if l.bounds.Top != 0 || l.bounds.Height() != 10 {
					t.Errorf("child %d cross bounds = %v, want y 0 height 10", i, l.bounds)
				}
				x = l.bounds.Right
			}
			if x != tt.width {
				t.Errorf("children end at %g, want %g", x, tt.width)
			}
		})
	}
}

func TestColumn_MarginSpacingCollapse(t *testing.T) {
	tests := []struct {
		name                 string
		bottom, top, spacing float64
		wantGap              float64
	}{
		{"margin bottom wins", 6, 3, 4, 6},
		{"margin top wins", 2, 9, 4, 9},
		{"spacing wins", 2, 3, 12, 12},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := leaf("a", 10, 10)
			a.constraints.Margin.Bottom = tt.bottom
			b := leaf("b", 10, 10)
			b.constraints.Margin.Top = tt.top
			col := box("col", Spec{Kind: KindColumn, Spacing: tt.spacing}, a, b)

			Arrange(col, rect(0, 0, 50, 100))

			if gap := b.bounds.Top - a.bounds.Bottom; gap != tt.wantGap {
				t.Errorf("gap = %g, want %g", gap, tt.wantGap)
			}
			if got, want := PrefHeight(col, Unset), 20+tt.wantGap; got != want {
				t.Errorf("PrefHeight = %g, want %g", got, want)
			}
		})
	}
}

func TestRow_MarginCollapseScenario(t *testing.T) {
	a := leaf("a", 20, 10)
	a.constraints.Margin.Right = 4
	b := leaf("b", 20, 10)
	b.constraints.Margin.Left = 8
	row := box("row", Spec{Kind: KindRow, Spacing: 10}, a, b)

	Arrange(row, rect(0, 0, 200, 10))

	if gap := b.bounds.Left - a.bounds.Right; gap != 10 {
		t.Errorf("gap = %g, want 10", gap)
	}
	if got := PrefWidth(row, Unset); got != 50 {
		t.Errorf("PrefWidth = %g, want 50", got)
	}
}

func TestColumn_PaddingCollapsesWithMargin(t *testing.T) {
	a := leaf("a", 10, 10)
	a.constraints.Margin = graphics.EdgeInsets{Top: 8, Left: 2, Bottom: 2}
	col := box("col", Spec{
		Kind:    KindColumn,
		Padding: graphics.EdgeInsetsAll(5),
		Border:  graphics.EdgeInsetsAll(1),
	}, a)

	if got := PrefHeight(col, Unset); got != 1+8+10+5+1 {
		t.Errorf("PrefHeight = %g, want %g", got, 1+8+10+5+1.0)
	}
	if got := PrefWidth(col, Unset); got != 1+5+10+5+1 {
		t.Errorf("PrefWidth = %g, want %g", got, 1+5+10+5+1.0)
	}

	Arrange(col, rect(0, 0, 100, 100))
	if a.bounds.Left != 6 || a.bounds.Top != 9 {
		t.Errorf("a origin = (%g, %g), want (6, 9)", a.bounds.Left, a.bounds.Top)
	}
}

func TestRow_FillWidthPromotesLastChild(t *testing.T) {
	a := leaf("a", 20, 10)
	b := leaf("b", 30, 10)
	row := box("row", Spec{Kind: KindRow, FillWidth: true}, a, b)

	Arrange(row, rect(0, 0, 100, 10))

	if want := rect(0, 0, 20, 10); !a.bounds.ApproxEqual(want) {
		t.Errorf("a = %v, want %v", a.bounds, want)
	}
	if want := rect(20, 0, 80, 10); !b.bounds.ApproxEqual(want) {
		t.Errorf("b = %v, want %v", b.bounds, want)
	}
}

func TestRow_FillWidthKeepsExplicitGrowers(t *testing.T) {
	a := leaf("a", 20, 10)
	a.constraints.GrowWidth = true
	b := leaf("b", 30, 10)
	row := box("row", Spec{Kind: KindRow, FillWidth: true}, a, b)

	Arrange(row, rect(0, 0, 100, 10))

	if a.bounds.Width() != 70 || b.bounds.Width() != 30 {
		t.Errorf("widths = %g, %g, want 70, 30", a.bounds.Width(), b.bounds.Width())
	}
}

func TestRow_NoFillShiftsByAlignment(t *testing.T) {
	a := leaf("a", 20, 10)
	b := leaf("b", 30, 10)
	row := box("row", Spec{Kind: KindRow, Align: AlignTopRight}, a, b)

	Arrange(row, rect(0, 0, 100, 10))

	if a.bounds.Left != 50 || a.bounds.Width() != 20 {
		t.Errorf("a = %v, want x=50 w=20", a.bounds)
	}
	if b.bounds.Left != 70 || b.bounds.Width() != 30 {
		t.Errorf("b = %v, want x=70 w=30", b.bounds)
	}
}

func TestRow_LeanShiftsFollowingChildren(t *testing.T) {
	a := leaf("a", 20, 10)
	a.constraints.LeanX = LeanCenter
	b := leaf("b", 30, 10)
	row := box("row", Spec{Kind: KindRow}, a, b)

	Arrange(row, rect(0, 0, 100, 10))

	if a.bounds.Left != 25 {
		t.Errorf("a.x = %g, want 25", a.bounds.Left)
	}
	if b.bounds.Left != 45 {
		t.Errorf("b.x = %g, want 45", b.bounds.Left)
	}
}

func TestColumn_FillHeightPromotesLastChild(t *testing.T) {
	a := leaf("a", 10, 10)
	b := leaf("b", 10, 10)
	col := box("col", Spec{Kind: KindColumn, FillHeight: true}, a, b)

	Arrange(col, rect(0, 0, 10, 100))

	if b.bounds.Height() != 90 {
		t.Errorf("b height = %g, want 90", b.bounds.Height())
	}
}

func TestColumn_OverflowWithoutGrowers(t *testing.T) {
	a := leaf("a", 10, 10)
	b := leaf("b", 10, 10)
	col := box("col", Spec{Kind: KindColumn, Align: AlignBottomLeft}, a, b)

	Arrange(col, rect(0, 0, 10, 15))

	if want := rect(0, 10, 10, 10); !b.bounds.ApproxEqual(want) {
		t.Errorf("b = %v, want %v (overflow left as is)", b.bounds, want)
	}
}

func TestColumn_CrossAxis(t *testing.T) {
	tests := []struct {
		name  string
		spec  Spec
		lean  Lean
		grow  bool
		wantX float64
		wantW float64
	}{
		{"intrinsic", Spec{Kind: KindColumn}, NoLean, false, 0, 20},
		{"fill", Spec{Kind: KindColumn, FillWidth: true}, NoLean, false, 0, 100},
		{"grow", Spec{Kind: KindColumn}, NoLean, true, 0, 100},
		{"lean end", Spec{Kind: KindColumn}, LeanEnd, false, 80, 20},
		{"align center", Spec{Kind: KindColumn, Align: AlignCenter}, NoLean, false, 40, 20},
		{"lean below align", Spec{Kind: KindColumn, Align: AlignCenter}, LeanStart, false, 40, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := leaf("a", 20, 10)
			a.constraints.LeanX = tt.lean
			a.constraints.GrowWidth = tt.grow
			Arrange(box("col", tt.spec, a), rect(0, 0, 100, 10))
			if a.bounds.Left != tt.wantX || a.bounds.Width() != tt.wantW {
				t.Errorf("bounds = %v, want x=%g w=%g", a.bounds, tt.wantX, tt.wantW)
			}
		})
	}
}

func TestColumn_CrossOverflowClamps(t *testing.T) {
	a := leaf("a", 150, 10)
	Arrange(box("col", Spec{Kind: KindColumn}, a), rect(0, 0, 100, 10))
	if a.bounds.Width() != 100 {
		t.Errorf("width = %g, want 100", a.bounds.Width())
	}
}

func TestColumn_WrappedTextHeightFollowsWidth(t *testing.T) {
	label := &fakeLeaf{name: "label", constraints: DefaultConstraints(), measure: wrapText}
	col := box("col", Spec{Kind: KindColumn}, label)

	if got := PrefWidth(col, Unset); got != 100 {
		t.Errorf("PrefWidth = %g, want 100", got)
	}
	if got := PrefHeight(col, 50); got != 20 {
		t.Errorf("PrefHeight(50) = %g, want 20", got)
	}
	if got := PrefHeight(col, 30); got != 40 {
		t.Errorf("PrefHeight(30) = %g, want 40", got)
	}

	Arrange(col, rect(0, 0, 50, 100))
	if want := rect(0, 0, 50, 20); !label.bounds.ApproxEqual(want) {
		t.Errorf("label = %v, want %v", label.bounds, want)
	}
}
