package view

import (
	"github.com/go-drift/boxlayout/pkg/graphics"
	"github.com/go-drift/boxlayout/pkg/layout"
	"github.com/go-drift/boxlayout/pkg/text"
)

// Fixed content has the same size regardless of the other extent.
type Fixed struct {
	Width  float64
	Height float64
}

func (Fixed) Kind() string { return "fixed" }

func (f Fixed) Measure(axis layout.Axis, _ float64) float64 {
	if axis == layout.Horizontal {
		return f.Width
	}
	return f.Height
}

// Label is text content. Its height depends on the width it wraps at.
type Label struct {
	Text    string
	Padding graphics.EdgeInsets
	// Metrics measures the text. Nil means text.Shared().
	Metrics *text.MetricsCache
}

func (*Label) Kind() string { return "label" }

func (l *Label) metrics() *text.MetricsCache {
	if l.Metrics != nil {
		return l.Metrics
	}
	return text.Shared()
}

// Measure returns the unwrapped width, or the height when wrapped at the
// known width less padding.
func (l *Label) Measure(axis layout.Axis, other float64) float64 {
	m := l.metrics()
	if axis == layout.Horizontal {
		return m.Size(l.Text, 0).Width + l.Padding.Horizontal()
	}
	wrap := 0.0
	if other >= 0 {
		// Wrapping at under a pixel would break every rune onto a line.
		wrap = max(other-l.Padding.Horizontal(), 1)
	}
	return m.Size(l.Text, wrap).Height + l.Padding.Vertical()
}

// NewFixed returns a leaf with fixed content.
func NewFixed(name string, width, height float64) *View {
	return New(name, Fixed{Width: width, Height: height})
}

// NewLabel returns a leaf showing s measured with the shared metrics cache.
func NewLabel(name, s string) *View {
	return New(name, &Label{Text: s})
}
