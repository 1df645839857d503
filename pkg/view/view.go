// Package view is an in-memory element tree for the layout engine.
//
// A tree is built from leaves ([View]) with optional measured [Content] and
// containers ([Group]) carrying a [layout.Spec]. Hidden and unmanaged nodes
// stay in the tree but are skipped by layout.
package view

import (
	"fmt"

	"github.com/go-drift/boxlayout/pkg/graphics"
	"github.com/go-drift/boxlayout/pkg/layout"
)

// Node is a view or group in a tree.
type Node interface {
	layout.Element
	// Base returns the view holding the node's common state.
	Base() *View
	// Kind names the node type, e.g. "label" or "column".
	Kind() string
}

// Content measures the inside of a leaf view.
type Content interface {
	Kind() string
	Measure(axis layout.Axis, other float64) float64
}

// View is a leaf node. Groups embed it.
type View struct {
	Name        string
	Constraints layout.SizeConstraints
	Content     Content

	// Hidden views are not laid out.
	Hidden bool
	// Unmanaged views are positioned by their owner, not by layout.
	Unmanaged bool

	bounds  graphics.Rect
	scaleX  float64
	scaleY  float64
	commits int
}

// New returns a leaf view with default constraints.
func New(name string, content Content) *View {
	return &View{
		Name:        name,
		Constraints: layout.DefaultConstraints(),
		Content:     content,
		scaleX:      1,
		scaleY:      1,
	}
}

func (v *View) Base() *View { return v }

func (v *View) Kind() string {
	if v.Content == nil {
		return "empty"
	}
	return v.Content.Kind()
}

func (v *View) String() string {
	if v.Name == "" {
		return v.Kind()
	}
	return v.Name
}

func (v *View) SizeConstraints() layout.SizeConstraints { return v.Constraints }

func (v *View) LayoutChildren() []layout.Element { return nil }

func (v *View) Measure(axis layout.Axis, other float64) float64 {
	if v.Content == nil {
		return 0
	}
	return v.Content.Measure(axis, other)
}

func (v *View) CommitBounds(r graphics.Rect) {
	v.bounds = r
	v.commits++
}

func (v *View) CommitScale(sx, sy float64) {
	v.scaleX, v.scaleY = sx, sy
}

// Bounds returns the last committed bounds, relative to the parent.
func (v *View) Bounds() graphics.Rect { return v.bounds }

// Scale returns the last committed scale factors.
func (v *View) Scale() (sx, sy float64) { return v.scaleX, v.scaleY }

// Commits returns how many times bounds were committed.
func (v *View) Commits() int { return v.commits }

func (v *View) managed() bool { return !v.Hidden && !v.Unmanaged }

// Group is a container node.
type Group struct {
	View
	Spec     layout.Spec
	Children []Node
}

// NewGroup returns a container with default constraints.
func NewGroup(name string, spec layout.Spec, children ...Node) *Group {
	g := &Group{Spec: spec, Children: children}
	g.View = *New(name, nil)
	return g
}

// Add appends children and returns the group.
func (g *Group) Add(children ...Node) *Group {
	g.Children = append(g.Children, children...)
	return g
}

func (g *Group) Kind() string { return g.Spec.Kind.String() }

func (g *Group) String() string {
	if g.Name == "" {
		return g.Kind()
	}
	return g.Name
}

func (g *Group) LayoutSpec() layout.Spec { return g.Spec }

// LayoutChildren returns the visible, managed children in order.
func (g *Group) LayoutChildren() []layout.Element {
	out := make([]layout.Element, 0, len(g.Children))
	for _, c := range g.Children {
		if c.Base().managed() {
			out = append(out, c)
		}
	}
	return out
}

// Children returns the children of n, or nil for leaves.
func Children(n Node) []Node {
	if g, ok := n.(*Group); ok {
		return g.Children
	}
	return nil
}

// Layout arranges the tree at the origin with the given size.
func Layout(root Node, size graphics.Size) {
	layout.Arrange(root, graphics.RectFromLTWH(0, 0, size.Width, size.Height))
}

// LayoutToFit arranges the tree at its best size and returns that size.
func LayoutToFit(root Node) graphics.Size {
	size := layout.Measure(root)
	Layout(root, size)
	return size
}

// Walk visits managed nodes depth first with their absolute bounds. Returning
// false from fn skips the node's children.
func Walk(root Node, fn func(n Node, depth int, abs graphics.Rect) bool) {
	walk(root, 0, graphics.Offset{}, fn)
}

func walk(n Node, depth int, origin graphics.Offset, fn func(Node, int, graphics.Rect) bool) {
	b := n.Base()
	if !b.managed() {
		return
	}
	abs := b.bounds.Translate(origin.X, origin.Y)
	if !fn(n, depth, abs) {
		return
	}
	for _, c := range Children(n) {
		walk(c, depth+1, abs.Origin(), fn)
	}
}

// Find returns the first managed node named name.
func Find(root Node, name string) (Node, bool) {
	var found Node
	Walk(root, func(n Node, _ int, _ graphics.Rect) bool {
		if found != nil {
			return false
		}
		if n.Base().Name == name {
			found = n
			return false
		}
		return true
	})
	return found, found != nil
}

// MustFind is like Find but panics when no node matches.
func MustFind(root Node, name string) Node {
	n, ok := Find(root, name)
	if !ok {
		panic(fmt.Sprintf("view: no node named %q", name))
	}
	return n
}
